package commands

import (
	"github.com/spf13/cobra"

	"github.com/gandi/gansible/cmd/gansible/handlers"
	"github.com/gandi/gansible/internal/config"
)

// Init returns the command that runs the configuration wizard.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		Long: `Create a configuration file interactively.

The wizard asks for the API key, the endpoint and the per-command
defaults, then writes the answers as YAML.

Examples:
  # Write gansible.yaml in the current directory
  gansible init

  # Write somewhere else
  gansible init -o ~/.config/gansible.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultPath, "Path of the generated file")

	return cmd
}
