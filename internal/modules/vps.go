package modules

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gandi/gansible/internal/platform/gandi"
)

// MachineTypeCustom selects a size built from explicit cores/memory/disk
// values instead of a catalog entry.
const MachineTypeCustom = "custom"

// defaultBandwidth is applied when the caller gives no interface
// bandwidth; the API rejects creates without one.
const defaultBandwidth = 102400.0

// VPSService manages hosting VM lifecycles.
type VPSService struct {
	client gandi.Client
}

// NewVPSService returns a VPSService over the given client.
func NewVPSService(client gandi.Client) *VPSService {
	return &VPSService{client: client}
}

// VPSResult is the payload of a vps operation.
type VPSResult struct {
	Datacenter    string      `json:"datacenter"`
	State         string      `json:"state"`
	Changed       bool        `json:"changed"`
	InstanceData  interface{} `json:"instance_data,omitempty"`
	InstanceNames interface{} `json:"instance_names,omitempty"`
	Name          string      `json:"name,omitempty"`
}

// InstanceInfo is the published description of one VM.
type InstanceInfo struct {
	Image         string      `json:"image"`
	Cores         int         `json:"cores"`
	RAM           int         `json:"ram"`
	Name          string      `json:"name"`
	DatacenterID  int         `json:"datacenter_id"`
	PublicIfaces  []IfaceInfo `json:"public_ifaces"`
	PrivateIfaces []IfaceInfo `json:"private_ifaces"`
	CName         string      `json:"cname"`
	Farm          string      `json:"farm"`
}

// IfaceInfo describes one interface of a VM.
type IfaceInfo struct {
	ID        int      `json:"id"`
	Bandwidth float64  `json:"bandwidth"`
	Vlan      string   `json:"vlan"`
	IfaceName string   `json:"iface_name"`
	IPs       []IPInfo `json:"ips"`
}

// IPInfo describes one address with its DNS record type.
type IPInfo struct {
	ID         int    `json:"id"`
	IP         string `json:"ip"`
	RecordType string `json:"record_type"`
	Version    int    `json:"version"`
}

// ExtraDisk describes an additional volume to create and attach.
type ExtraDisk struct {
	Name string
	Size int
}

// VPSCreateOpts holds the arguments of a create operation.
type VPSCreateOpts struct {
	Names       []string
	Image       string
	MachineType string
	Cores       int
	Memory      int
	Disk        int
	Bandwidth   float64
	ExtraDisks  []ExtraDisk
	Datacenter  string
	User        string
	Password    string
	SSHKeyIDs   []int
	Farm        string
	Interfaces  map[string][]gandi.IfaceCreateOpts
}

// Create brings the named instances into existence. Names that already
// resolve to a VM are reported but not recreated; the existence check
// and the create are separate API calls and a racing creator can slip
// between them. Extra disks are only created and attached alongside
// newly created instances.
func (s *VPSService) Create(ctx context.Context, opts VPSCreateOpts) (*VPSResult, error) {
	if len(opts.Names) == 0 {
		return nil, &MissingArgumentError{Field: "name"}
	}
	if opts.Datacenter == "" {
		return nil, &MissingArgumentError{Field: "datacenter"}
	}

	location, err := s.location(ctx, opts.Datacenter)
	if err != nil {
		return nil, err
	}
	dcID, _ := strconv.Atoi(location.ID)

	imageID, err := s.image(ctx, opts.Image, dcID, opts.Datacenter)
	if err != nil {
		return nil, err
	}

	size, err := s.size(ctx, opts)
	if err != nil {
		return nil, err
	}

	existing, err := s.client.ListNodes(ctx)
	if err != nil {
		return nil, err
	}

	changed := false
	var created []gandi.Node
	for _, name := range opts.Names {
		node := nodeByName(existing, name)
		if node == nil {
			node, err = s.client.CreateNode(ctx, gandi.NodeCreateOpts{
				Name:         name,
				DatacenterID: dcID,
				ImageID:      imageID,
				Size:         size,
				Login:        opts.User,
				Password:     opts.Password,
				SSHKeyIDs:    opts.SSHKeyIDs,
				Farm:         opts.Farm,
				Interfaces:   opts.Interfaces,
			})
			if err != nil {
				return nil, unexpectedError("creating instance", name, err)
			}
			changed = true

			for _, disk := range opts.ExtraDisks {
				if err := s.attachExtraDisk(ctx, node, disk, dcID); err != nil {
					return nil, err
				}
			}
		}
		created = append(created, *node)
	}

	infos, names, err := s.describeAll(ctx, created, opts.Image)
	if err != nil {
		return nil, err
	}

	return &VPSResult{
		Datacenter:    opts.Datacenter,
		State:         "running",
		Changed:       changed,
		InstanceData:  scalarOrList(infos),
		InstanceNames: scalarOrList(names),
	}, nil
}

// Terminate deletes the named instances. Unknown names are skipped; the
// delete cascades to the disks and interfaces owned by the VM.
func (s *VPSService) Terminate(ctx context.Context, datacenter string, names []string) (*VPSResult, error) {
	if len(names) == 0 {
		return nil, &MissingArgumentError{Field: "name"}
	}

	existing, err := s.client.ListNodes(ctx)
	if err != nil {
		return nil, err
	}

	changed := false
	var infos []InstanceInfo
	var terminated []string
	for _, name := range names {
		node := nodeByName(existing, name)
		if node == nil {
			continue
		}
		info, err := s.describe(ctx, *node, "")
		if err != nil {
			return nil, err
		}
		if err := s.client.DeleteNode(ctx, node.ID); err != nil {
			return nil, unexpectedError("terminating instance", name, err)
		}
		infos = append(infos, info)
		terminated = append(terminated, name)
		changed = true
	}

	return &VPSResult{
		Datacenter:    datacenter,
		State:         "deleted",
		Changed:       changed,
		InstanceData:  scalarOrList(infos),
		InstanceNames: scalarOrList(terminated),
	}, nil
}

// Start powers on the named instances. Unknown names are skipped.
func (s *VPSService) Start(ctx context.Context, datacenter string, names []string) (*VPSResult, error) {
	return s.power(ctx, datacenter, names, "started", "starting instance", s.client.StartNode)
}

// Stop halts the named instances. Unknown names are skipped.
func (s *VPSService) Stop(ctx context.Context, datacenter string, names []string) (*VPSResult, error) {
	return s.power(ctx, datacenter, names, "halted", "stopping instance", s.client.StopNode)
}

// Reboot restarts the named instances. Unknown names are skipped.
func (s *VPSService) Reboot(ctx context.Context, datacenter string, names []string) (*VPSResult, error) {
	return s.power(ctx, datacenter, names, "rebooted", "rebooting instance", s.client.RebootNode)
}

func (s *VPSService) power(ctx context.Context, datacenter string, names []string, state, action string, op func(context.Context, int) error) (*VPSResult, error) {
	if len(names) == 0 {
		return nil, &MissingArgumentError{Field: "name"}
	}

	existing, err := s.client.ListNodes(ctx)
	if err != nil {
		return nil, err
	}

	changed := false
	for _, name := range names {
		node := nodeByName(existing, name)
		if node == nil {
			continue
		}
		if err := op(ctx, node.ID); err != nil {
			return nil, unexpectedError(action, name, err)
		}
		changed = true
	}

	return &VPSResult{
		Datacenter:    datacenter,
		State:         state,
		Changed:       changed,
		InstanceNames: scalarOrList(names),
	}, nil
}

func (s *VPSService) location(ctx context.Context, name string) (*gandi.Location, error) {
	locations, err := s.client.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	for i := range locations {
		if locations[i].Name == name {
			return &locations[i], nil
		}
	}
	return nil, &LookupFailure{Kind: "datacenter", Name: name}
}

// image resolves an image label inside a datacenter, falling back to
// disk images so instances can boot from an existing volume.
func (s *VPSService) image(ctx context.Context, name string, dcID int, datacenter string) (int, error) {
	if name == "" {
		return 0, &MissingArgumentError{Field: "image"}
	}
	images, err := s.client.ListImages(ctx, dcID)
	if err != nil {
		return 0, err
	}
	for _, img := range images {
		if img.Name == name {
			return img.ID, nil
		}
	}
	disks, err := s.client.ListDisks(ctx)
	if err != nil {
		return 0, err
	}
	for _, disk := range disks {
		if disk.Name == name {
			return disk.ID, nil
		}
	}
	return 0, fmt.Errorf("no such image or volume %q on %s", name, datacenter)
}

func (s *VPSService) size(ctx context.Context, opts VPSCreateOpts) (gandi.Size, error) {
	if opts.MachineType == MachineTypeCustom {
		size := gandi.Size{
			Name:      fmt.Sprintf("%d cores instance", opts.Cores),
			Cores:     opts.Cores,
			RAM:       opts.Memory,
			Disk:      opts.Disk,
			Bandwidth: opts.Bandwidth,
		}
		if size.Bandwidth == 0 {
			size.Bandwidth = defaultBandwidth
		}
		return size, nil
	}

	sizes, err := s.client.ListSizes(ctx)
	if err != nil {
		return gandi.Size{}, err
	}
	for _, size := range sizes {
		if size.Name == opts.MachineType {
			return size, nil
		}
	}
	return gandi.Size{}, &LookupFailure{Kind: "machine type", Name: opts.MachineType}
}

func (s *VPSService) attachExtraDisk(ctx context.Context, node *gandi.Node, disk ExtraDisk, dcID int) error {
	created, err := s.client.CreateDisk(ctx, gandi.DiskCreateOpts{
		Name:         disk.Name,
		Size:         disk.Size,
		DatacenterID: dcID,
	})
	if err != nil {
		return fmt.Errorf("failed to create disk for %s: %w", node.Name, err)
	}
	if err := s.client.AttachDisk(ctx, node.ID, created.ID); err != nil {
		return fmt.Errorf("error when attaching %s to %s: %w", disk.Name, node.Name, err)
	}
	return nil
}

func (s *VPSService) describeAll(ctx context.Context, nodes []gandi.Node, image string) ([]InstanceInfo, []string, error) {
	var infos []InstanceInfo
	var names []string
	for _, node := range nodes {
		info, err := s.describe(ctx, node, image)
		if err != nil {
			return nil, nil, err
		}
		infos = append(infos, info)
		names = append(names, info.Name)
	}
	return infos, names, nil
}

// describe flattens one VM into its published form. Interfaces are
// numbered i0, i1, ... in list order; the first one provides the cname
// target.
func (s *VPSService) describe(ctx context.Context, node gandi.Node, image string) (InstanceInfo, error) {
	ifaces, err := s.client.ListIfaces(ctx)
	if err != nil {
		return InstanceInfo{}, err
	}

	info := InstanceInfo{
		Image:        image,
		Cores:        node.Extra.Cores,
		RAM:          node.Extra.Memory,
		Name:         node.Name,
		DatacenterID: node.Extra.DatacenterID,
		Farm:         node.Extra.Farm,
	}

	count := 0
	for _, iface := range ifaces {
		if iface.NodeID != node.ID {
			continue
		}
		vlanName := iface.Extra.VlanName
		if vlanName == "" {
			vlanName = "public"
		}
		ifaceInfo := IfaceInfo{
			ID:        iface.ID,
			Bandwidth: iface.Extra.Bandwidth,
			Vlan:      vlanName,
			IfaceName: fmt.Sprintf("i%d", count),
		}
		for _, ip := range iface.IPs {
			recordType := "A"
			if ip.Version != 4 {
				recordType = "AAAA"
			}
			ifaceInfo.IPs = append(ifaceInfo.IPs, IPInfo{
				ID: ip.ID, IP: ip.Address, RecordType: recordType, Version: ip.Version,
			})
		}
		if vlanName == "public" {
			info.PublicIfaces = append(info.PublicIfaces, ifaceInfo)
		} else {
			info.PrivateIfaces = append(info.PrivateIfaces, ifaceInfo)
		}
		if count == 0 {
			info.CName = fmt.Sprintf("%s.%s", ifaceInfo.IfaceName, vlanName)
		}
		count++
	}

	return info, nil
}

func nodeByName(nodes []gandi.Node, name string) *gandi.Node {
	for i := range nodes {
		if nodes[i].Name == name {
			return &nodes[i]
		}
	}
	return nil
}
