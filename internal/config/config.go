// Package config loads and validates the gansible configuration file.
package config

import (
	"fmt"

	"github.com/gandi/gansible/internal/platform/gandi"
)

// EnvAPIKey and EnvEndpoint override the file values when set.
const (
	EnvAPIKey   = "GANDI_API_KEY"
	EnvEndpoint = "GANDI_API_ENDPOINT"
)

// DefaultPath is where commands look for the config when --config is
// not given.
const DefaultPath = "gansible.yaml"

// Config holds the application configuration.
type Config struct {
	// APIKey authenticates every hosting API call.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`

	// Endpoint is the XML-RPC endpoint. Empty selects the production
	// endpoint.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// Datacenter is the default datacenter name for resource commands,
	// overridable per invocation with --datacenter.
	Datacenter string `mapstructure:"datacenter" yaml:"datacenter"`

	// SSHUser is the login reported in inventory host vars.
	SSHUser string `mapstructure:"ssh_user" yaml:"ssh_user"`
}

// Validate checks the configuration and returns a detailed error if
// validation fails.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required (set it in the config file or %s)", EnvAPIKey)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = gandi.DefaultEndpoint
	}
	if c.SSHUser == "" {
		c.SSHUser = "root"
	}
}
