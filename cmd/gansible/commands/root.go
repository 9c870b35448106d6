// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the gansible CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gansible",
		Short: "Drive Gandi hosting from Ansible",
		// Runtime failures already reach the caller as JSON payloads
		// or error lines; re-printing usage would corrupt the output
		// Ansible parses.
		SilenceUsage: true,
	}

	cmd.AddCommand(Inventory())
	cmd.AddCommand(VPS())
	cmd.AddCommand(Pvlan())
	cmd.AddCommand(Iface())

	cmd.AddCommand(Init())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
