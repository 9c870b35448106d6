// Package main is the entry point for the gansible CLI.
//
// gansible is a command-line companion for driving Gandi hosting from
// Ansible: it serves as a dynamic inventory script and manages virtual
// machines, private VLANs and network interfaces through the hosting
// API.
//
// Commands: inventory, vps, pvlan, iface, init, version, completion.
//
// For detailed usage information, run:
//
//	gansible --help
package main

import (
	"fmt"
	"os"

	"github.com/gandi/gansible/cmd/gansible/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
