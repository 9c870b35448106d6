package commands

import (
	"github.com/spf13/cobra"

	"github.com/gandi/gansible/cmd/gansible/handlers"
	"github.com/gandi/gansible/internal/config"
)

// Pvlan returns the private VLAN command.
func Pvlan() *cobra.Command {
	var configPath string
	var opts handlers.PvlanOptions

	cmd := &cobra.Command{
		Use:   "pvlan",
		Short: "Manage private VLANs",
		Long: `Manage private VLANs.

Examples:
  # Create a VLAN with an addressing plan
  gansible pvlan --state created --name db --datacenter FR-SD3 \
    --subnet 10.7.0.0/24 --gateway 10.7.0.1

  # Delete it
  gansible pvlan --state deleted --name db --datacenter FR-SD3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Pvlan(cmd.Context(), configPath, opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to configuration file")
	cmd.Flags().StringVar(&opts.State, "state", "created", "Target state (created|deleted)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "VLAN name")
	cmd.Flags().StringVar(&opts.Datacenter, "datacenter", "", "Datacenter name")
	cmd.Flags().StringVar(&opts.Subnet, "subnet", "", "Subnet in CIDR form")
	cmd.Flags().StringVar(&opts.Gateway, "gateway", "", "Gateway address inside the subnet")

	return cmd
}
