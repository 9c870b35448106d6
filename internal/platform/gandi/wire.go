package gandi

import "strconv"

// Wire-level records as the hosting API returns them. Kept separate from
// the exported types so API field churn stays confined to this file.

type rpcVM struct {
	ID           int        `xmlrpc:"id"`
	Hostname     string     `xmlrpc:"hostname"`
	State        string     `xmlrpc:"state"`
	DatacenterID int        `xmlrpc:"datacenter_id"`
	Memory       int        `xmlrpc:"memory"`
	Cores        int        `xmlrpc:"cores"`
	Farm         string     `xmlrpc:"farm"`
	AIActive     bool       `xmlrpc:"ai_active"`
	Description  string     `xmlrpc:"description"`
	DiskIDs      []int      `xmlrpc:"disks_id"`
	IfaceIDs     []int      `xmlrpc:"ifaces_id"`
	Ifaces       []rpcIface `xmlrpc:"ifaces"`
}

type rpcDatacenter struct {
	ID      int    `xmlrpc:"id"`
	Code    string `xmlrpc:"dc_code"`
	Country string `xmlrpc:"country"`
}

type rpcIface struct {
	ID           int         `xmlrpc:"id"`
	VMID         int         `xmlrpc:"vm_id"`
	Bandwidth    float64     `xmlrpc:"bandwidth"`
	DatacenterID int         `xmlrpc:"datacenter_id"`
	Vlan         *rpcVlanRef `xmlrpc:"vlan"`
	IPs          []rpcIP     `xmlrpc:"ips"`
}

type rpcVlanRef struct {
	ID   int    `xmlrpc:"id"`
	Name string `xmlrpc:"name"`
}

type rpcIP struct {
	ID      int    `xmlrpc:"id"`
	Address string `xmlrpc:"ip"`
	Version int    `xmlrpc:"version"`
}

type rpcVlan struct {
	ID           int    `xmlrpc:"id"`
	Name         string `xmlrpc:"name"`
	Subnet       string `xmlrpc:"subnet"`
	Gateway      string `xmlrpc:"gateway"`
	DatacenterID int    `xmlrpc:"datacenter_id"`
}

type rpcImage struct {
	ID           int    `xmlrpc:"disk_id"`
	Label        string `xmlrpc:"label"`
	DatacenterID int    `xmlrpc:"datacenter_id"`
}

type rpcDisk struct {
	ID           int    `xmlrpc:"id"`
	Name         string `xmlrpc:"name"`
	Size         int    `xmlrpc:"size"`
	DatacenterID int    `xmlrpc:"datacenter_id"`
}

// rpcOperation is the async operation handle most mutating calls return.
// The resource id fields are populated depending on the call.
type rpcOperation struct {
	ID      int `xmlrpc:"id"`
	VMID    int `xmlrpc:"vm_id"`
	IfaceID int `xmlrpc:"iface_id"`
	VlanID  int `xmlrpc:"vlan_id"`
	DiskID  int `xmlrpc:"disk_id"`
}

func (vm *rpcVM) toNode(ifaces []Iface) Node {
	node := Node{
		ID:    vm.ID,
		Name:  vm.Hostname,
		State: toNodeState(vm.State),
		Extra: NodeExtra{
			DatacenterID: vm.DatacenterID,
			Farm:         vm.Farm,
			Memory:       vm.Memory,
			Cores:        vm.Cores,
			AIActive:     vm.AIActive,
			Description:  vm.Description,
			Disks:        vm.DiskIDs,
			Ifaces:       vm.IfaceIDs,
		},
	}
	for _, iface := range ifaces {
		if iface.NodeID != vm.ID {
			continue
		}
		for _, ip := range iface.IPs {
			if iface.Extra.VlanName != "" {
				node.PrivateIPs = append(node.PrivateIPs, ip.Address)
			} else {
				node.PublicIPs = append(node.PublicIPs, ip.Address)
			}
		}
	}
	return node
}

func toNodeState(state string) NodeState {
	switch s := NodeState(state); s {
	case StateRunning, StateHalted, StatePaused, StateLocked, StateBeingCreated, StateDeleted:
		return s
	default:
		return StateUnknown
	}
}

func (dc *rpcDatacenter) toLocation() Location {
	return Location{
		ID:      strconv.Itoa(dc.ID),
		Name:    dc.Code,
		Country: dc.Country,
	}
}

func (ifc *rpcIface) toIface() Iface {
	iface := Iface{
		ID:     ifc.ID,
		NodeID: ifc.VMID,
		Extra: IfaceExtra{
			Bandwidth:    ifc.Bandwidth,
			DatacenterID: ifc.DatacenterID,
		},
	}
	if ifc.Vlan != nil {
		iface.Extra.VlanName = ifc.Vlan.Name
	}
	for _, ip := range ifc.IPs {
		iface.IPs = append(iface.IPs, IfaceIP{ID: ip.ID, Address: ip.Address, Version: ip.Version})
	}
	return iface
}

func (v *rpcVlan) toVlan() Vlan {
	return Vlan{
		ID:           v.ID,
		Name:         v.Name,
		Subnet:       v.Subnet,
		Gateway:      v.Gateway,
		DatacenterID: v.DatacenterID,
	}
}

func (img *rpcImage) toImage() Image {
	return Image{ID: img.ID, Name: img.Label, DatacenterID: img.DatacenterID}
}

func (d *rpcDisk) toDisk() Disk {
	return Disk{ID: d.ID, Name: d.Name, Size: d.Size, DatacenterID: d.DatacenterID}
}
