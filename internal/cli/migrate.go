package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SeatingService/internal/infra/storage/migrate"
)

func NewMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configPath, false)
			if err != nil {
				return err
			}
			defer a.close()

			applied, err := migrate.Up(cmd.Context(), a.db, a.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", applied)
			return nil
		},
	}
}
