package inventory

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gandi/gansible/internal/platform/gandi"
)

// Snapshot is the point-in-time input of one aggregation run. The four
// collections come from independent list calls and are consistent at
// best effort only.
type Snapshot struct {
	Nodes     []gandi.Node
	Locations []gandi.Location
	Ifaces    []gandi.Iface
	Vlans     []gandi.Vlan
}

// Fetch pulls the four collections from the provider in a fixed
// sequence. Nothing is cached between calls; every invocation hits the
// API again.
func Fetch(ctx context.Context, src gandi.InventorySource) (Snapshot, error) {
	var snap Snapshot
	var err error
	if snap.Nodes, err = src.ListNodes(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("fetch nodes: %w", err)
	}
	if snap.Locations, err = src.ListLocations(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("fetch locations: %w", err)
	}
	if snap.Ifaces, err = src.ListIfaces(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("fetch ifaces: %w", err)
	}
	if snap.Vlans, err = src.ListVlans(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("fetch vlans: %w", err)
	}
	return snap, nil
}

// BuildOption adjusts how a snapshot is folded.
type BuildOption func(*buildOptions)

type buildOptions struct {
	sshUser string
}

// WithSSHUser sets the ansible_ssh_user published for every host.
// Empty keeps the default of "root".
func WithSSHUser(user string) BuildOption {
	return func(o *buildOptions) {
		if user != "" {
			o.sshUser = user
		}
	}
}

// Build folds a snapshot into an Inventory. The transform is
// all-or-nothing: the first failed lookup aborts and no partial result
// is returned. Running Build twice on the same snapshot yields the same
// groups and meta map.
//
// Per node, in order: resolve the datacenter, derive the node's VLAN
// names from its interfaces, record host facts, then append the node to
// its farm, datacenter and VLAN groups. Group membership order follows
// node order in the snapshot.
func Build(snap Snapshot, opts ...BuildOption) (*Inventory, error) {
	options := buildOptions{sshUser: "root"}
	for _, opt := range opts {
		opt(&options)
	}

	inv := newInventory()

	for _, node := range snap.Nodes {
		location, err := locationByID(snap.Locations, node.Extra.DatacenterID)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", node.Name, err)
		}
		vlanNames := nodeVlanNames(node, snap.Ifaces)

		inv.meta[node.Name] = hostVars(node, options.sshUser)

		if node.Extra.Farm != "" {
			if err := inv.add(node.Extra.Farm, node.Name, nil); err != nil {
				return nil, err
			}
		}

		dcVars := DatacenterVars{DatacenterID: location.ID, Country: location.Country}
		if err := inv.add(location.Name, node.Name, dcVars); err != nil {
			return nil, err
		}

		for _, name := range vlanNames {
			vlan, err := vlanByName(snap.Vlans, name)
			if err != nil {
				return nil, fmt.Errorf("node %s: %w", node.Name, err)
			}
			vlanVars := VlanVars{VlanID: vlan.ID, Subnet: vlan.Subnet, Gateway: vlan.Gateway}
			if err := inv.add(vlan.Name, node.Name, vlanVars); err != nil {
				return nil, err
			}
		}
	}

	return inv, nil
}

// locationByID resolves a node's datacenter. The location identifier is
// the string form of an integer; exactly one location must match.
func locationByID(locations []gandi.Location, datacenterID int) (gandi.Location, error) {
	var found gandi.Location
	matches := 0
	for _, loc := range locations {
		id, err := strconv.Atoi(loc.ID)
		if err != nil {
			return gandi.Location{}, fmt.Errorf("location %q has non-numeric id %q", loc.Name, loc.ID)
		}
		if id == datacenterID {
			if matches == 0 {
				found = loc
			}
			matches++
		}
	}
	if matches != 1 {
		return gandi.Location{}, &LookupError{Kind: "datacenter", Name: strconv.Itoa(datacenterID), Matches: matches}
	}
	return found, nil
}

// vlanByName resolves a VLAN reference; exactly one record must match.
func vlanByName(vlans []gandi.Vlan, name string) (gandi.Vlan, error) {
	var found gandi.Vlan
	matches := 0
	for _, vlan := range vlans {
		if vlan.Name == name {
			if matches == 0 {
				found = vlan
			}
			matches++
		}
	}
	if matches != 1 {
		return gandi.Vlan{}, &LookupError{Kind: "vlan", Name: name, Matches: matches}
	}
	return found, nil
}

// nodeVlanNames collects the distinct VLAN names of a node's interfaces,
// first-seen order. Public interfaces carry no VLAN and are skipped.
func nodeVlanNames(node gandi.Node, ifaces []gandi.Iface) []string {
	var names []string
	seen := map[string]bool{}
	for _, iface := range ifaces {
		if iface.NodeID != node.ID || iface.Extra.VlanName == "" {
			continue
		}
		if seen[iface.Extra.VlanName] {
			continue
		}
		seen[iface.Extra.VlanName] = true
		names = append(names, iface.Extra.VlanName)
	}
	return names
}

// hostVars flattens one node into its published fact dictionary.
func hostVars(node gandi.Node, sshUser string) HostVars {
	vars := HostVars{
		NodeID:         node.ID,
		State:          string(node.State),
		AnsibleSSHUser: sshUser,
		PublicIPs:      node.PublicIPs,
		PrivateIPs:     node.PrivateIPs,
		AIActive:       node.Extra.AIActive,
		DatacenterID:   node.Extra.DatacenterID,
		Description:    node.Extra.Description,
		Farm:           node.Extra.Farm,
		Memory:         node.Extra.Memory,
		Ifaces:         node.Extra.Ifaces,
		Disks:          node.Extra.Disks,
		Cores:          node.Extra.Cores,
	}
	if len(node.PublicIPs) > 0 {
		vars.AnsibleSSHHost = node.PublicIPs[0]
	}
	return vars
}
