package cli

import (
	"context"
	"fmt"

	"github.com/martijn/watchlist/internal/core/service"
	"github.com/martijn/watchlist/internal/infrastructure/sqlite"
	"github.com/spf13/cobra"
)

const forgeOwnerName = "Alex Goke"

type fixtureMovie struct {
	Title string
	Year  string
}

var forgeMovies = []fixtureMovie{
	{"My Neighbor Totoro", "1988"},
	{"Dead Poets Society", "1989"},
	{"A Perfect World", "1993"},
	{"Leon", "1994"},
	{"Mahjong", "1996"},
	{"Swallowtail Butterfly", "1996"},
	{"King of Comedy", "1999"},
	{"Devils on the Doorstep", "1999"},
	{"WALL-E", "2008"},
	{"The Pork of Music", "2012"},
}

func newForgeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "forge",
		Short: "Generate fake data",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.initServices()
			if err != nil {
				return err
			}
			defer services.Close()

			if err := forge(cmd.Context(), services.DB, forgeOwnerName, forgeMovies); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Done.")
			return nil
		},
	}
}

// forge writes the owner and the movies in one transaction, so a failure
// leaves the database untouched.
func forge(ctx context.Context, db *sqlite.DB, ownerName string, movies []fixtureMovie) error {
	return db.WithTx(ctx, func(ctx context.Context, repos sqlite.Repositories) error {
		if _, err := service.NewOwnerService(repos.Users).EnsureOwner(ctx, ownerName); err != nil {
			return fmt.Errorf("failed to create owner: %w", err)
		}

		movieService := service.NewMovieService(repos.Movies)
		for _, m := range movies {
			if _, err := movieService.Create(ctx, m.Title, m.Year); err != nil {
				return fmt.Errorf("failed to create movie %q: %w", m.Title, err)
			}
		}
		return nil
	})
}
