package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gandi/gansible/cmd/gansible/handlers"
	"github.com/gandi/gansible/internal/config"
)

// Inventory returns the dynamic inventory command.
//
// The flags mirror what Ansible expects from an inventory script:
// --list dumps every group with host facts under _meta, --host prints
// the facts of one host.
//
// Environment variables:
//
//	GANDI_API_KEY: hosting API key (overrides the config file)
func Inventory() *cobra.Command {
	var configPath string
	var list bool
	var host string

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Serve as an Ansible dynamic inventory",
		Long: `Serve as an Ansible dynamic inventory.

Hosts are grouped by farm, datacenter and private VLAN. Host facts are
published under _meta so Ansible issues a single call.

Examples:
  # Full inventory, the way Ansible calls it
  gansible inventory --list

  # Facts of one host
  gansible inventory --host web1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list == (host != "") {
				return fmt.Errorf("specify exactly one of --list or --host")
			}
			if list {
				return handlers.InventoryList(cmd.Context(), configPath)
			}
			return handlers.InventoryHost(cmd.Context(), configPath, host)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to configuration file")
	cmd.Flags().BoolVar(&list, "list", false, "Print the full inventory")
	cmd.Flags().StringVar(&host, "host", "", "Print the variables of one host")

	return cmd
}
