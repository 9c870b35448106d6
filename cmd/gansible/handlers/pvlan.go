package handlers

import (
	"context"
	"fmt"

	"github.com/gandi/gansible/internal/modules"
)

// PvlanOptions carries the pvlan command flags.
type PvlanOptions struct {
	State      string
	Name       string
	Datacenter string
	Subnet     string
	Gateway    string
}

// Pvlan runs one private VLAN operation and prints its result.
func Pvlan(ctx context.Context, configPath string, opts PvlanOptions) error {
	cfg, client, err := setup(configPath)
	if err != nil {
		return moduleResult(nil, err)
	}
	if opts.Datacenter == "" {
		opts.Datacenter = cfg.Datacenter
	}
	svc := modules.NewVlanService(client)

	switch opts.State {
	case "created":
		result, err := svc.Create(ctx, opts.Name, opts.Datacenter, opts.Subnet, opts.Gateway)
		return moduleResult(result, err)
	case "deleted":
		result, err := svc.Delete(ctx, opts.Name, opts.Datacenter)
		return moduleResult(result, err)
	default:
		return fmt.Errorf("unknown state %q: expected created or deleted", opts.State)
	}
}
