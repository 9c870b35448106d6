package gandi

import "context"

// MockClient is a mock implementation of Client.
type MockClient struct {
	ListNodesFunc     func(ctx context.Context) ([]Node, error)
	ListLocationsFunc func(ctx context.Context) ([]Location, error)
	ListIfacesFunc    func(ctx context.Context) ([]Iface, error)
	ListVlansFunc     func(ctx context.Context) ([]Vlan, error)

	GetNodeFunc    func(ctx context.Context, id int) (*Node, error)
	CreateNodeFunc func(ctx context.Context, opts NodeCreateOpts) (*Node, error)
	DeleteNodeFunc func(ctx context.Context, id int) error
	StartNodeFunc  func(ctx context.Context, id int) error
	StopNodeFunc   func(ctx context.Context, id int) error
	RebootNodeFunc func(ctx context.Context, id int) error

	ListImagesFunc func(ctx context.Context, datacenterID int) ([]Image, error)
	ListSizesFunc  func(ctx context.Context) ([]Size, error)
	ListDisksFunc  func(ctx context.Context) ([]Disk, error)
	CreateDiskFunc func(ctx context.Context, opts DiskCreateOpts) (*Disk, error)
	AttachDiskFunc func(ctx context.Context, nodeID, diskID int) error

	CreateIfaceFunc func(ctx context.Context, opts IfaceCreateOpts) (*Iface, error)
	DeleteIfaceFunc func(ctx context.Context, id int) error

	CreateVlanFunc func(ctx context.Context, opts VlanCreateOpts) (*Vlan, error)
	DeleteVlanFunc func(ctx context.Context, id int) error
}

// Ensure interface compliance
var _ Client = (*MockClient)(nil)

// ListNodes mocks listing VMs.
func (m *MockClient) ListNodes(ctx context.Context) ([]Node, error) {
	if m.ListNodesFunc != nil {
		return m.ListNodesFunc(ctx)
	}
	return nil, nil
}

// ListLocations mocks listing datacenters.
func (m *MockClient) ListLocations(ctx context.Context) ([]Location, error) {
	if m.ListLocationsFunc != nil {
		return m.ListLocationsFunc(ctx)
	}
	return nil, nil
}

// ListIfaces mocks listing interfaces.
func (m *MockClient) ListIfaces(ctx context.Context) ([]Iface, error) {
	if m.ListIfacesFunc != nil {
		return m.ListIfacesFunc(ctx)
	}
	return nil, nil
}

// ListVlans mocks listing VLANs.
func (m *MockClient) ListVlans(ctx context.Context) ([]Vlan, error) {
	if m.ListVlansFunc != nil {
		return m.ListVlansFunc(ctx)
	}
	return nil, nil
}

// GetNode mocks fetching one VM.
func (m *MockClient) GetNode(ctx context.Context, id int) (*Node, error) {
	if m.GetNodeFunc != nil {
		return m.GetNodeFunc(ctx, id)
	}
	return &Node{ID: id, Name: "mock-node", State: StateRunning}, nil
}

// CreateNode mocks VM creation.
func (m *MockClient) CreateNode(ctx context.Context, opts NodeCreateOpts) (*Node, error) {
	if m.CreateNodeFunc != nil {
		return m.CreateNodeFunc(ctx, opts)
	}
	return &Node{ID: 1, Name: opts.Name, State: StateBeingCreated}, nil
}

// DeleteNode mocks VM deletion.
func (m *MockClient) DeleteNode(ctx context.Context, id int) error {
	if m.DeleteNodeFunc != nil {
		return m.DeleteNodeFunc(ctx, id)
	}
	return nil
}

// StartNode mocks powering on a VM.
func (m *MockClient) StartNode(ctx context.Context, id int) error {
	if m.StartNodeFunc != nil {
		return m.StartNodeFunc(ctx, id)
	}
	return nil
}

// StopNode mocks halting a VM.
func (m *MockClient) StopNode(ctx context.Context, id int) error {
	if m.StopNodeFunc != nil {
		return m.StopNodeFunc(ctx, id)
	}
	return nil
}

// RebootNode mocks restarting a VM.
func (m *MockClient) RebootNode(ctx context.Context, id int) error {
	if m.RebootNodeFunc != nil {
		return m.RebootNodeFunc(ctx, id)
	}
	return nil
}

// ListImages mocks listing images.
func (m *MockClient) ListImages(ctx context.Context, datacenterID int) ([]Image, error) {
	if m.ListImagesFunc != nil {
		return m.ListImagesFunc(ctx, datacenterID)
	}
	return nil, nil
}

// ListSizes mocks listing instance flavors.
func (m *MockClient) ListSizes(ctx context.Context) ([]Size, error) {
	if m.ListSizesFunc != nil {
		return m.ListSizesFunc(ctx)
	}
	return nil, nil
}

// ListDisks mocks listing volumes.
func (m *MockClient) ListDisks(ctx context.Context) ([]Disk, error) {
	if m.ListDisksFunc != nil {
		return m.ListDisksFunc(ctx)
	}
	return nil, nil
}

// CreateDisk mocks volume creation.
func (m *MockClient) CreateDisk(ctx context.Context, opts DiskCreateOpts) (*Disk, error) {
	if m.CreateDiskFunc != nil {
		return m.CreateDiskFunc(ctx, opts)
	}
	return &Disk{ID: 1, Name: opts.Name, Size: opts.Size}, nil
}

// AttachDisk mocks attaching a volume.
func (m *MockClient) AttachDisk(ctx context.Context, nodeID, diskID int) error {
	if m.AttachDiskFunc != nil {
		return m.AttachDiskFunc(ctx, nodeID, diskID)
	}
	return nil
}

// CreateIface mocks interface creation.
func (m *MockClient) CreateIface(ctx context.Context, opts IfaceCreateOpts) (*Iface, error) {
	if m.CreateIfaceFunc != nil {
		return m.CreateIfaceFunc(ctx, opts)
	}
	return &Iface{ID: 1, Extra: IfaceExtra{VlanName: opts.VlanName, Bandwidth: opts.Bandwidth, DatacenterID: opts.DatacenterID}}, nil
}

// DeleteIface mocks interface deletion.
func (m *MockClient) DeleteIface(ctx context.Context, id int) error {
	if m.DeleteIfaceFunc != nil {
		return m.DeleteIfaceFunc(ctx, id)
	}
	return nil
}

// CreateVlan mocks VLAN creation.
func (m *MockClient) CreateVlan(ctx context.Context, opts VlanCreateOpts) (*Vlan, error) {
	if m.CreateVlanFunc != nil {
		return m.CreateVlanFunc(ctx, opts)
	}
	return &Vlan{ID: 1, Name: opts.Name, Subnet: opts.Subnet, Gateway: opts.Gateway, DatacenterID: opts.DatacenterID}, nil
}

// DeleteVlan mocks VLAN deletion.
func (m *MockClient) DeleteVlan(ctx context.Context, id int) error {
	if m.DeleteVlanFunc != nil {
		return m.DeleteVlanFunc(ctx, id)
	}
	return nil
}
