package commands

import (
	"github.com/spf13/cobra"

	"github.com/gandi/gansible/cmd/gansible/handlers"
	"github.com/gandi/gansible/internal/config"
)

// VPS returns the virtual machine lifecycle command.
//
// The --state flag selects the operation: created, deleted, started,
// stopped or rebooted. Every operation prints a JSON result with a
// changed flag, the way an Ansible module reports.
func VPS() *cobra.Command {
	var configPath string
	var opts handlers.VPSOptions

	cmd := &cobra.Command{
		Use:   "vps",
		Short: "Manage virtual machines",
		Long: `Manage virtual machines.

Examples:
  # Create two web servers in a farm
  gansible vps --state created --name web1 --name web2 \
    --datacenter FR-SD3 --image "Debian 8" --machine-type "Small instance" --farm web

  # Create with a custom size and an extra volume
  gansible vps --state created --name db1 --datacenter FR-SD3 \
    --image "Debian 8" --machine-type custom --cores 4 --memory 4096 --disk 20 \
    --extra-disk data:100

  # Stop, then delete
  gansible vps --state stopped --name web1 --datacenter FR-SD3
  gansible vps --state deleted --name web1 --datacenter FR-SD3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.VPS(cmd.Context(), configPath, opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to configuration file")
	cmd.Flags().StringVar(&opts.State, "state", "created", "Target state (created|deleted|started|stopped|rebooted)")
	cmd.Flags().StringArrayVar(&opts.Names, "name", nil, "Instance name (repeatable)")
	cmd.Flags().StringVar(&opts.Datacenter, "datacenter", "", "Datacenter name")
	cmd.Flags().StringVar(&opts.Image, "image", "Debian 8", "Image label or volume name to boot from")
	cmd.Flags().StringVar(&opts.MachineType, "machine-type", "Small instance", "Catalog size name, or custom")
	cmd.Flags().IntVar(&opts.Cores, "cores", 0, "Cores for a custom machine type")
	cmd.Flags().IntVar(&opts.Memory, "memory", 0, "Memory in MiB for a custom machine type")
	cmd.Flags().IntVar(&opts.Disk, "disk", 0, "System disk in GiB for a custom machine type")
	cmd.Flags().Float64Var(&opts.Bandwidth, "bandwidth", 0, "Interface bandwidth in kbit/s")
	cmd.Flags().StringArrayVar(&opts.ExtraDisks, "extra-disk", nil, "Extra volume as name:size, size in GiB (repeatable)")
	cmd.Flags().StringArrayVar(&opts.PrivateIfaces, "private-iface", nil, "Private interface as vlan[:ip] (repeatable)")
	cmd.Flags().StringVar(&opts.User, "user", "", "Login created on the instance")
	cmd.Flags().StringVar(&opts.Password, "password", "", "Password of the created login")
	cmd.Flags().IntSliceVar(&opts.SSHKeyIDs, "ssh-key", nil, "SSH key id to authorize (repeatable)")
	cmd.Flags().StringVar(&opts.Farm, "farm", "", "Farm the instances join")

	return cmd
}
