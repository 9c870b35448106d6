package handlers

import (
	"context"

	"github.com/gandi/gansible/internal/inventory"
)

// InventoryList prints the full inventory: every farm, datacenter and
// VLAN group, plus host facts under _meta. Failures come out as a
// failed payload so the caller never mistakes them for an empty
// inventory.
func InventoryList(ctx context.Context, configPath string) error {
	inv, err := buildInventory(ctx, configPath)
	return moduleResult(inv, err)
}

// InventoryHost prints the variables of a single host. An unknown name
// is a failure, never an empty fact map.
func InventoryHost(ctx context.Context, configPath, host string) error {
	inv, err := buildInventory(ctx, configPath)
	if err != nil {
		return moduleResult(nil, err)
	}

	vars, err := inv.Host(host)
	return moduleResult(vars, err)
}

func buildInventory(ctx context.Context, configPath string) (*inventory.Inventory, error) {
	cfg, client, err := setup(configPath)
	if err != nil {
		return nil, err
	}

	snap, err := inventory.Fetch(ctx, client)
	if err != nil {
		return nil, err
	}

	return inventory.Build(snap, inventory.WithSSHUser(cfg.SSHUser))
}
