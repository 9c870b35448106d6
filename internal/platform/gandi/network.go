package gandi

import (
	"context"
	"fmt"
)

// ListIfaces returns all network interfaces on the account.
func (c *RealClient) ListIfaces(ctx context.Context) ([]Iface, error) {
	var rows []rpcIface
	if err := c.call(ctx, "hosting.iface.list", c.args(), &rows); err != nil {
		return nil, fmt.Errorf("failed to list ifaces: %w", err)
	}
	ifaces := make([]Iface, 0, len(rows))
	for i := range rows {
		ifaces = append(ifaces, rows[i].toIface())
	}
	return ifaces, nil
}

// ListVlans returns all private VLANs on the account.
func (c *RealClient) ListVlans(ctx context.Context) ([]Vlan, error) {
	var rows []rpcVlan
	if err := c.call(ctx, "hosting.vlan.list", c.args(), &rows); err != nil {
		return nil, fmt.Errorf("failed to list vlans: %w", err)
	}
	vlans := make([]Vlan, 0, len(rows))
	for i := range rows {
		vlans = append(vlans, rows[i].toVlan())
	}
	return vlans, nil
}

// CreateIface creates a network interface and returns the registered
// record.
func (c *RealClient) CreateIface(ctx context.Context, opts IfaceCreateOpts) (*Iface, error) {
	spec := ifaceSpec(opts)
	spec["datacenter_id"] = opts.DatacenterID

	var ops []rpcOperation
	if err := c.call(ctx, "hosting.iface.create", c.args(spec), &ops); err != nil {
		return nil, fmt.Errorf("failed to create iface: %w", err)
	}
	for _, op := range ops {
		if op.IfaceID != 0 {
			return c.getIface(ctx, op.IfaceID)
		}
	}
	return nil, fmt.Errorf("iface create returned no iface id")
}

func (c *RealClient) getIface(ctx context.Context, id int) (*Iface, error) {
	var row rpcIface
	if err := c.call(ctx, "hosting.iface.info", c.args(id), &row); err != nil {
		return nil, fmt.Errorf("failed to get iface %d: %w", id, err)
	}
	iface := row.toIface()
	return &iface, nil
}

// DeleteIface deletes a network interface.
func (c *RealClient) DeleteIface(ctx context.Context, id int) error {
	var op rpcOperation
	if err := c.call(ctx, "hosting.iface.delete", c.args(id), &op); err != nil {
		return fmt.Errorf("failed to delete iface %d: %w", id, err)
	}
	return nil
}

// CreateVlan creates a private VLAN and returns the registered record.
func (c *RealClient) CreateVlan(ctx context.Context, opts VlanCreateOpts) (*Vlan, error) {
	spec := map[string]interface{}{
		"name":          opts.Name,
		"datacenter_id": opts.DatacenterID,
	}
	if opts.Subnet != "" {
		spec["subnet"] = opts.Subnet
	}
	if opts.Gateway != "" {
		spec["gateway"] = opts.Gateway
	}

	var row rpcVlan
	if err := c.call(ctx, "hosting.vlan.create", c.args(spec), &row); err != nil {
		return nil, fmt.Errorf("failed to create vlan %s: %w", opts.Name, err)
	}
	vlan := row.toVlan()
	return &vlan, nil
}

// DeleteVlan deletes a private VLAN.
func (c *RealClient) DeleteVlan(ctx context.Context, id int) error {
	var op rpcOperation
	if err := c.call(ctx, "hosting.vlan.delete", c.args(id), &op); err != nil {
		return fmt.Errorf("failed to delete vlan %d: %w", id, err)
	}
	return nil
}
