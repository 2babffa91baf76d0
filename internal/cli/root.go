package cli

import (
	"github.com/spf13/cobra"
)

// Version задается при сборке через -ldflags "-X .../internal/cli.Version=..."
var Version = "dev"

const defaultConfigPath = "config.toml"

func NewRoot() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "seating",
		Short:         "Seat capacity and reservation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to TOML config")

	cmd.AddCommand(NewServeCmd(&configPath))
	cmd.AddCommand(NewCheckCmd(&configPath))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	cmd.AddCommand(NewVersionCmd())
	return cmd
}
