package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitDBCommand(opts *rootOptions) *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "initdb",
		Short: "Initialize the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.initServices()
			if err != nil {
				return err
			}
			defer services.Close()

			ctx := cmd.Context()
			if drop {
				if err := services.DB.DropSchema(ctx); err != nil {
					return fmt.Errorf("failed to drop tables: %w", err)
				}
			}
			if err := services.DB.CreateSchema(ctx); err != nil {
				return fmt.Errorf("failed to create tables: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Initialized database.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&drop, "drop", false, "Create after drop")
	return cmd
}
