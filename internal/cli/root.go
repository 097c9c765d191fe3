package cli

import (
	"fmt"

	"github.com/martijn/watchlist/internal/core/service"
	"github.com/martijn/watchlist/internal/infrastructure/sqlite"
	"github.com/martijn/watchlist/internal/logging"
	"github.com/martijn/watchlist/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootOptions carries the state shared by all commands of one invocation
type rootOptions struct {
	cfgFile string
	cfg     *config.Config
	logger  *logrus.Logger
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Watchlist - a personal movie list",
		Long: `Watchlist keeps a single owner's list of movies.

It provides:
- A web interface to browse the list
- Login protected create, edit and delete of entries
- Commands to create the database, seed sample data and set the login`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for commands that don't need it
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}

			opts.cfg = cfg
			opts.logger = logger
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is "+config.DefaultConfigPath+")")

	rootCmd.AddCommand(
		newServerCommand(opts),
		newInitDBCommand(opts),
		newForgeCommand(opts),
		newAdminCommand(opts),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// initServices opens the database and wires the services on top of it
func (o *rootOptions) initServices() (*Services, error) {
	db, err := sqlite.New(o.cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)

	return &Services{
		DB:           db,
		AuthService:  service.NewAuthService(userRepo),
		OwnerService: service.NewOwnerService(userRepo),
		MovieService: service.NewMovieService(sqlite.NewMovieRepository(db)),
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB           *sqlite.DB
	AuthService  *service.AuthService
	OwnerService *service.OwnerService
	MovieService *service.MovieService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
