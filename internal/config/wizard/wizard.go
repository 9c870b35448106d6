package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/gandi/gansible/internal/config"
	"github.com/gandi/gansible/internal/platform/gandi"
)

// OTEEndpoint is the operate-test-environment endpoint, a sandbox that
// mirrors the production API without touching real resources.
const OTEEndpoint = "https://rpc.ote.gandi.net/xmlrpc/"

// RunWizard runs the interactive configuration wizard and returns the
// answers as a Config. The context is used for cancellation support
// (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*config.Config, error) {
	cfg := &config.Config{}

	if err := runCredentialsGroup(ctx, cfg); err != nil {
		return nil, fmt.Errorf("credentials: %w", err)
	}

	if err := runDefaultsGroup(ctx, cfg); err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}

	return cfg, nil
}

// runCredentialsGroup prompts for the API key and the endpoint.
func runCredentialsGroup(ctx context.Context, cfg *config.Config) error {
	cfg.Endpoint = gandi.DefaultEndpoint

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API Key").
				Description("Your hosting API key from the account admin page").
				Value(&cfg.APIKey).
				Validate(validateAPIKey),
			huh.NewSelect[string]().
				Title("Endpoint").
				Description("Production acts on real resources; OTE is a sandbox").
				Options(
					huh.NewOption("Production", gandi.DefaultEndpoint),
					huh.NewOption("OTE (test)", OTEEndpoint),
				).
				Value(&cfg.Endpoint),
		).Title("Credentials"),
	).RunWithContext(ctx)
}

// runDefaultsGroup prompts for the optional per-command defaults.
func runDefaultsGroup(ctx context.Context, cfg *config.Config) error {
	cfg.SSHUser = "root"

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default Datacenter (Optional)").
				Description("Datacenter name used when --datacenter is not given").
				Placeholder("FR-SD3 (or leave empty)").
				Value(&cfg.Datacenter),
			huh.NewInput().
				Title("Inventory SSH User").
				Description("Published as ansible_ssh_user for every host").
				Value(&cfg.SSHUser),
		).Title("Defaults"),
	).RunWithContext(ctx)
}

func validateAPIKey(key string) error {
	if key == "" {
		return errAPIKeyRequired
	}
	if strings.ContainsAny(key, " \t") {
		return errAPIKeyInvalid
	}
	return nil
}
