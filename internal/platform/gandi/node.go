package gandi

import (
	"context"
	"fmt"
)

// ListNodes returns all hosting VMs on the account. Public and private
// addresses are joined in from the interface list, since hosting.vm.list
// only carries interface ids.
func (c *RealClient) ListNodes(ctx context.Context) ([]Node, error) {
	var vms []rpcVM
	if err := c.call(ctx, "hosting.vm.list", c.args(), &vms); err != nil {
		return nil, fmt.Errorf("failed to list vms: %w", err)
	}
	ifaces, err := c.ListIfaces(ctx)
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, 0, len(vms))
	for i := range vms {
		nodes = append(nodes, vms[i].toNode(ifaces))
	}
	return nodes, nil
}

// ListLocations returns the datacenters available to the account.
func (c *RealClient) ListLocations(ctx context.Context) ([]Location, error) {
	var dcs []rpcDatacenter
	if err := c.call(ctx, "hosting.datacenter.list", c.args(), &dcs); err != nil {
		return nil, fmt.Errorf("failed to list datacenters: %w", err)
	}
	locations := make([]Location, 0, len(dcs))
	for i := range dcs {
		locations = append(locations, dcs[i].toLocation())
	}
	return locations, nil
}

// GetNode returns one VM with its interfaces and addresses resolved.
func (c *RealClient) GetNode(ctx context.Context, id int) (*Node, error) {
	var vm rpcVM
	if err := c.call(ctx, "hosting.vm.info", c.args(id), &vm); err != nil {
		return nil, fmt.Errorf("failed to get vm %d: %w", id, err)
	}
	ifaces := make([]Iface, 0, len(vm.Ifaces))
	for i := range vm.Ifaces {
		iface := vm.Ifaces[i].toIface()
		// vm.info nests interfaces without repeating the owner id.
		iface.NodeID = vm.ID
		ifaces = append(ifaces, iface)
	}
	node := vm.toNode(ifaces)
	return &node, nil
}

// CreateNode creates a VM and returns it once the API has registered the
// record. The instance keeps booting in the background; callers that need
// a running node watch its state themselves.
func (c *RealClient) CreateNode(ctx context.Context, opts NodeCreateOpts) (*Node, error) {
	spec := map[string]interface{}{
		"hostname":      opts.Name,
		"datacenter_id": opts.DatacenterID,
		"memory":        opts.Size.RAM,
		"cores":         opts.Size.Cores,
		"bandwidth":     opts.Size.Bandwidth,
	}
	if opts.Farm != "" {
		spec["farm"] = opts.Farm
	}
	if opts.Login != "" {
		spec["login"] = opts.Login
		spec["password"] = opts.Password
	}
	if len(opts.SSHKeyIDs) > 0 {
		spec["keys"] = opts.SSHKeyIDs
	}
	if len(opts.Interfaces) > 0 {
		spec["ip_version"] = 4
		ifaces := map[string]interface{}{}
		for kind, list := range opts.Interfaces {
			specs := make([]map[string]interface{}, 0, len(list))
			for _, iface := range list {
				specs = append(specs, ifaceSpec(iface))
			}
			ifaces[kind] = specs
		}
		spec["ifaces"] = ifaces
	}

	diskSpec := map[string]interface{}{
		"datacenter_id": opts.DatacenterID,
		"name":          fmt.Sprintf("sys_%s", opts.Name),
	}
	if opts.Size.Disk > 0 {
		diskSpec["size"] = opts.Size.Disk * 1024
	}

	var ops []rpcOperation
	if err := c.call(ctx, "hosting.vm.create_from", c.args(spec, diskSpec, opts.ImageID), &ops); err != nil {
		return nil, fmt.Errorf("failed to create vm %s: %w", opts.Name, err)
	}
	for _, op := range ops {
		if op.VMID != 0 {
			return c.GetNode(ctx, op.VMID)
		}
	}
	return nil, fmt.Errorf("vm create for %s returned no vm id", opts.Name)
}

// DeleteNode deletes a VM. The API cascades to the disks and interfaces
// that were created with it.
func (c *RealClient) DeleteNode(ctx context.Context, id int) error {
	var ops []rpcOperation
	if err := c.call(ctx, "hosting.vm.delete", c.args(id), &ops); err != nil {
		return fmt.Errorf("failed to delete vm %d: %w", id, err)
	}
	return nil
}

// StartNode powers on a halted VM.
func (c *RealClient) StartNode(ctx context.Context, id int) error {
	var op rpcOperation
	if err := c.call(ctx, "hosting.vm.start", c.args(id), &op); err != nil {
		return fmt.Errorf("failed to start vm %d: %w", id, err)
	}
	return nil
}

// StopNode halts a running VM.
func (c *RealClient) StopNode(ctx context.Context, id int) error {
	var op rpcOperation
	if err := c.call(ctx, "hosting.vm.stop", c.args(id), &op); err != nil {
		return fmt.Errorf("failed to stop vm %d: %w", id, err)
	}
	return nil
}

// RebootNode restarts a running VM.
func (c *RealClient) RebootNode(ctx context.Context, id int) error {
	var op rpcOperation
	if err := c.call(ctx, "hosting.vm.reboot", c.args(id), &op); err != nil {
		return fmt.Errorf("failed to reboot vm %d: %w", id, err)
	}
	return nil
}

// ListImages returns the OS images available in a datacenter.
func (c *RealClient) ListImages(ctx context.Context, datacenterID int) ([]Image, error) {
	filter := map[string]interface{}{"datacenter_id": datacenterID}
	var imgs []rpcImage
	if err := c.call(ctx, "hosting.image.list", c.args(filter), &imgs); err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	images := make([]Image, 0, len(imgs))
	for i := range imgs {
		images = append(images, imgs[i].toImage())
	}
	return images, nil
}

// instanceTypes is the fixed hosting offering. The API exposes no size
// catalog, so the client ships the table.
var instanceTypes = []Size{
	{ID: 1, Name: "Small instance", Cores: 1, RAM: 256, Disk: 3, Bandwidth: 10240},
	{ID: 2, Name: "Medium instance", Cores: 1, RAM: 1024, Disk: 20, Bandwidth: 10240},
	{ID: 3, Name: "Large instance", Cores: 2, RAM: 2048, Disk: 50, Bandwidth: 10240},
	{ID: 4, Name: "Extra Large instance", Cores: 4, RAM: 4096, Disk: 100, Bandwidth: 10240},
}

// ListSizes returns the instance flavors of the hosting offering.
func (c *RealClient) ListSizes(_ context.Context) ([]Size, error) {
	sizes := make([]Size, len(instanceTypes))
	copy(sizes, instanceTypes)
	return sizes, nil
}

func ifaceSpec(opts IfaceCreateOpts) map[string]interface{} {
	spec := map[string]interface{}{}
	if opts.VlanName != "" {
		spec["vlan"] = opts.VlanName
	}
	if opts.IPAddress != "" {
		spec["ip"] = opts.IPAddress
	}
	if opts.IPVersion != 0 {
		spec["ip_version"] = opts.IPVersion
	}
	if opts.Bandwidth > 0 {
		spec["bandwidth"] = opts.Bandwidth
	}
	return spec
}
