package handlers

import (
	"context"
	"fmt"

	"github.com/gandi/gansible/internal/modules"
)

// IfaceOptions carries the iface command flags.
type IfaceOptions struct {
	State      string
	Datacenter string
	Vlan       string
	IPAddress  string
	IPVersion  int
	Bandwidth  float64
	ID         int
}

// Iface runs one network interface operation and prints its result.
func Iface(ctx context.Context, configPath string, opts IfaceOptions) error {
	cfg, client, err := setup(configPath)
	if err != nil {
		return moduleResult(nil, err)
	}
	if opts.Datacenter == "" {
		opts.Datacenter = cfg.Datacenter
	}
	svc := modules.NewIfaceService(client)

	switch opts.State {
	case "created":
		result, err := svc.Create(ctx, modules.IfaceCreateOpts{
			Datacenter: opts.Datacenter,
			Vlan:       opts.Vlan,
			IPAddress:  opts.IPAddress,
			IPVersion:  opts.IPVersion,
			Bandwidth:  opts.Bandwidth,
		})
		return moduleResult(result, err)
	case "deleted":
		if opts.ID == 0 {
			return fmt.Errorf("must specify an --id to delete")
		}
		result, err := svc.Delete(ctx, opts.Datacenter, opts.ID)
		return moduleResult(result, err)
	default:
		return fmt.Errorf("unknown state %q: expected created or deleted", opts.State)
	}
}
