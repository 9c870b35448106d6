package gandi

import (
	"context"
	"fmt"
)

// ListDisks returns all storage volumes on the account.
func (c *RealClient) ListDisks(ctx context.Context) ([]Disk, error) {
	var rows []rpcDisk
	if err := c.call(ctx, "hosting.disk.list", c.args(), &rows); err != nil {
		return nil, fmt.Errorf("failed to list disks: %w", err)
	}
	disks := make([]Disk, 0, len(rows))
	for i := range rows {
		disks = append(disks, rows[i].toDisk())
	}
	return disks, nil
}

// CreateDisk creates a storage volume. Size is in GiB; the API counts in
// MiB.
func (c *RealClient) CreateDisk(ctx context.Context, opts DiskCreateOpts) (*Disk, error) {
	spec := map[string]interface{}{
		"datacenter_id": opts.DatacenterID,
		"size":          opts.Size * 1024,
	}
	if opts.Name != "" {
		spec["name"] = opts.Name
	}

	var ops []rpcOperation
	if err := c.call(ctx, "hosting.disk.create", c.args(spec), &ops); err != nil {
		return nil, fmt.Errorf("failed to create disk: %w", err)
	}
	for _, op := range ops {
		if op.DiskID != 0 {
			return &Disk{ID: op.DiskID, Name: opts.Name, Size: opts.Size, DatacenterID: opts.DatacenterID}, nil
		}
	}
	return nil, fmt.Errorf("disk create returned no disk id")
}

// AttachDisk attaches a volume to a VM.
func (c *RealClient) AttachDisk(ctx context.Context, nodeID, diskID int) error {
	var op rpcOperation
	if err := c.call(ctx, "hosting.vm.disk_attach", c.args(nodeID, diskID), &op); err != nil {
		return fmt.Errorf("failed to attach disk %d to vm %d: %w", diskID, nodeID, err)
	}
	return nil
}
