// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gandi/gansible/internal/config"
	"github.com/gandi/gansible/internal/modules"
	"github.com/gandi/gansible/internal/platform/gandi"
)

// Factory function variables - can be replaced in tests for dependency
// injection.
var (
	// loadConfig resolves the configuration from file and environment.
	loadConfig = config.Load

	// newClient creates the hosting API client.
	newClient = func(cfg *config.Config) (gandi.Client, error) {
		return gandi.NewRealClient(cfg.APIKey, gandi.WithEndpoint(cfg.Endpoint))
	}

	// stdout is where JSON results are written.
	stdout io.Writer = os.Stdout
)

// setup loads the configuration and opens a client from it.
func setup(configPath string) (*config.Config, gandi.Client, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	client, err := newClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}

// printJSON writes the indented JSON form of v to stdout.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}

// moduleResult reports one resource operation the way an Ansible module
// does: a JSON payload on stdout either way, plus a non-nil error on
// failure so the process exits non-zero.
func moduleResult(result interface{}, err error) error {
	if err != nil {
		if printErr := printJSON(modules.NewFailure(err)); printErr != nil {
			return printErr
		}
		return err
	}
	return printJSON(result)
}
