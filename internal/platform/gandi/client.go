// Package gandi provides a wrapper around the Gandi hosting XML-RPC API.
package gandi

import "context"

// InventorySource lists the four collections the inventory is built
// from. Implementations return point-in-time snapshots; the four calls
// are independent and not transactional.
type InventorySource interface {
	ListNodes(ctx context.Context) ([]Node, error)
	ListLocations(ctx context.Context) ([]Location, error)
	ListIfaces(ctx context.Context) ([]Iface, error)
	ListVlans(ctx context.Context) ([]Vlan, error)
}

// NodeManager defines the lifecycle operations on hosting VMs.
type NodeManager interface {
	GetNode(ctx context.Context, id int) (*Node, error)
	CreateNode(ctx context.Context, opts NodeCreateOpts) (*Node, error)
	// DeleteNode cascades: attached disks and interfaces created with the
	// node are released with it.
	DeleteNode(ctx context.Context, id int) error
	StartNode(ctx context.Context, id int) error
	StopNode(ctx context.Context, id int) error
	RebootNode(ctx context.Context, id int) error

	ListImages(ctx context.Context, datacenterID int) ([]Image, error)
	ListSizes(ctx context.Context) ([]Size, error)
	ListDisks(ctx context.Context) ([]Disk, error)
	CreateDisk(ctx context.Context, opts DiskCreateOpts) (*Disk, error)
	AttachDisk(ctx context.Context, nodeID, diskID int) error
}

// IfaceManager defines the operations on network interfaces.
type IfaceManager interface {
	CreateIface(ctx context.Context, opts IfaceCreateOpts) (*Iface, error)
	DeleteIface(ctx context.Context, id int) error
}

// VlanManager defines the operations on private VLANs.
type VlanManager interface {
	CreateVlan(ctx context.Context, opts VlanCreateOpts) (*Vlan, error)
	DeleteVlan(ctx context.Context, id int) error
}

// Client combines all hosting API surfaces.
type Client interface {
	InventorySource
	NodeManager
	IfaceManager
	VlanManager
}
