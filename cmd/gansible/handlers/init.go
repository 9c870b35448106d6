package handlers

import (
	"context"
	"fmt"

	"github.com/gandi/gansible/internal/config"
	"github.com/gandi/gansible/internal/config/wizard"
	"github.com/gandi/gansible/internal/ui"
)

// Factory function variables for init - can be replaced in tests.
var (
	wizardFileExists       = wizard.FileExists
	wizardConfirmOverwrite = wizard.ConfirmOverwrite
	wizardRunWizard        = wizard.RunWizard
	wizardWriteConfig      = wizard.WriteConfig
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if wizardFileExists(outputPath) {
		ok, err := wizardConfirmOverwrite(outputPath)
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		if !ok {
			fmt.Println("Aborted; existing file left untouched.")
			return nil
		}
	}

	printWelcome()

	cfg, err := wizardRunWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	if err := wizardWriteConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println(ui.Title("gansible - Gandi hosting for Ansible"))
	fmt.Println()
	fmt.Println(ui.Dim("This wizard creates a configuration file for the inventory and"))
	fmt.Println(ui.Dim("resource commands."))
	fmt.Println()
}

// printInitSuccess prints the success message with next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println(ui.Success("Configuration saved!"))
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	if cfg.Datacenter != "" {
		fmt.Printf("  Default datacenter: %s\n", cfg.Datacenter)
	}
	fmt.Println()
	fmt.Println(ui.Section("Next Steps"))
	fmt.Println("  1. Check the connection:")
	fmt.Printf("     gansible inventory --list -c %s\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Point Ansible at it with an executable wrapper:")
	fmt.Println("     #!/bin/sh")
	fmt.Println("     exec gansible inventory \"$@\"")
	fmt.Println()
}
