package commands

import (
	"github.com/spf13/cobra"

	"github.com/gandi/gansible/cmd/gansible/handlers"
	"github.com/gandi/gansible/internal/config"
)

// Iface returns the network interface command.
func Iface() *cobra.Command {
	var configPath string
	var opts handlers.IfaceOptions

	cmd := &cobra.Command{
		Use:   "iface",
		Short: "Manage network interfaces",
		Long: `Manage network interfaces.

An interface is private when --vlan names an existing VLAN, public
otherwise. Public interfaces need --ip-version.

Examples:
  # Private interface with a fixed address
  gansible iface --state created --datacenter FR-SD3 --vlan db --ip 10.7.0.10

  # Public IPv6 interface
  gansible iface --state created --datacenter FR-SD3 --ip-version 6

  # Delete by id
  gansible iface --state deleted --datacenter FR-SD3 --id 42`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Iface(cmd.Context(), configPath, opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to configuration file")
	cmd.Flags().StringVar(&opts.State, "state", "created", "Target state (created|deleted)")
	cmd.Flags().StringVar(&opts.Datacenter, "datacenter", "", "Datacenter name")
	cmd.Flags().StringVar(&opts.Vlan, "vlan", "", "VLAN name for a private interface")
	cmd.Flags().StringVar(&opts.IPAddress, "ip", "", "Fixed address inside the VLAN subnet")
	cmd.Flags().IntVar(&opts.IPVersion, "ip-version", 0, "IP version of a public interface (4 or 6)")
	cmd.Flags().Float64Var(&opts.Bandwidth, "bandwidth", 0, "Interface bandwidth in kbit/s")
	cmd.Flags().IntVar(&opts.ID, "id", 0, "Interface id, for --state deleted")

	return cmd
}
