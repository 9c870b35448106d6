// Package inventory turns hosting API snapshots into the grouped
// host/variable structure an orchestration host consumes.
package inventory

import (
	"encoding/json"
	"fmt"
)

// MetaKey is the reserved group key carrying per-host facts. No farm,
// datacenter or VLAN may use it as a name.
const MetaKey = "_meta"

// HostVars is the flat fact dictionary published for one host.
type HostVars struct {
	NodeID         int      `json:"node_id"`
	State          string   `json:"state"`
	AnsibleSSHHost string   `json:"ansible_ssh_host"`
	AnsibleSSHUser string   `json:"ansible_ssh_user"`
	PublicIPs      []string `json:"public_ips"`
	PrivateIPs     []string `json:"private_ips"`
	AIActive       bool     `json:"ai_active"`
	DatacenterID   int      `json:"datacenter_id"`
	Description    string   `json:"description"`
	Farm           string   `json:"farm"`
	Memory         int      `json:"memory"`
	Ifaces         []int    `json:"ifaces"`
	Disks          []int    `json:"disks"`
	Cores          int      `json:"cores"`
}

// DatacenterVars are the group variables of a datacenter group.
type DatacenterVars struct {
	DatacenterID string `json:"datacenter_id"`
	Country      string `json:"country"`
}

// VlanVars are the group variables of a VLAN group.
type VlanVars struct {
	VlanID  int    `json:"vlan_id"`
	Subnet  string `json:"subnet"`
	Gateway string `json:"gateway"`
}

// Group is one inventory group: an ordered member list plus optional
// group variables. Groups without vars serialize as a bare host array,
// groups with vars as {"hosts": [...], "vars": {...}}.
type Group struct {
	Hosts []string
	Vars  interface{}
}

// MarshalJSON renders the group in the dynamic-inventory wire format.
func (g *Group) MarshalJSON() ([]byte, error) {
	if g.Vars == nil {
		return json.Marshal(g.Hosts)
	}
	return json.Marshal(struct {
		Hosts []string    `json:"hosts"`
		Vars  interface{} `json:"vars"`
	}{Hosts: g.Hosts, Vars: g.Vars})
}

// Inventory is the aggregation result: group membership plus the meta
// map of per-host facts. It is built once by Build and read-only
// afterwards.
type Inventory struct {
	groups map[string]*Group
	meta   map[string]HostVars
}

func newInventory() *Inventory {
	return &Inventory{
		groups: map[string]*Group{},
		meta:   map[string]HostVars{},
	}
}

// add appends a host to a group, creating the group on first sight.
// Group vars are fixed by whoever creates the group; later adds never
// update them. Membership order follows call order.
func (inv *Inventory) add(group, host string, vars interface{}) error {
	if group == MetaKey {
		return fmt.Errorf("group name %q is reserved", MetaKey)
	}
	g, ok := inv.groups[group]
	if !ok {
		g = &Group{Vars: vars}
		inv.groups[group] = g
	}
	g.Hosts = append(g.Hosts, host)
	return nil
}

// Group returns a named group, or nil when absent.
func (inv *Inventory) Group(name string) *Group {
	return inv.groups[name]
}

// Host returns the fact dictionary of one host, or NotFoundError when
// the name is absent from the meta map.
func (inv *Inventory) Host(name string) (HostVars, error) {
	vars, ok := inv.meta[name]
	if !ok {
		return HostVars{}, &NotFoundError{Host: name}
	}
	return vars, nil
}

// MarshalJSON renders the full inventory: every group under its name,
// plus the reserved meta key holding {"hostvars": {...}}. Keys come out
// sorted, matching the consumer-facing contract.
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(inv.groups)+1)
	for name, group := range inv.groups {
		out[name] = group
	}
	out[MetaKey] = map[string]interface{}{"hostvars": inv.meta}
	return json.Marshal(out)
}
