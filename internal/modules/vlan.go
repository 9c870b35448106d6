package modules

import (
	"context"
	"strconv"

	"github.com/gandi/gansible/internal/platform/gandi"
)

// VlanService manages private VLANs.
type VlanService struct {
	client gandi.Client
}

// NewVlanService returns a VlanService over the given client.
func NewVlanService(client gandi.Client) *VlanService {
	return &VlanService{client: client}
}

// VlanResult is the payload of a pvlan operation.
type VlanResult struct {
	Datacenter string     `json:"datacenter"`
	State      string     `json:"state"`
	Name       string     `json:"name"`
	PvlanData  *PvlanData `json:"pvlan_data,omitempty"`
	Changed    bool       `json:"changed"`
}

// PvlanData is the published description of one private VLAN.
type PvlanData struct {
	Name         string `json:"name"`
	Subnet       string `json:"subnet"`
	Gateway      string `json:"gateway"`
	DatacenterID int    `json:"datacenter_id"`
}

// Create ensures a VLAN with the given name exists in the datacenter.
// An existing VLAN with that name short-circuits the create and is
// reported unchanged; the check and the create are not atomic.
func (s *VlanService) Create(ctx context.Context, name, datacenter, subnet, gateway string) (*VlanResult, error) {
	if name == "" {
		return nil, &MissingArgumentError{Field: "name"}
	}
	if datacenter == "" {
		return nil, &MissingArgumentError{Field: "datacenter"}
	}

	location, err := s.location(ctx, datacenter)
	if err != nil {
		return nil, err
	}
	dcID, _ := strconv.Atoi(location.ID)

	changed := false
	vlan, err := s.vlanByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if vlan == nil {
		vlan, err = s.client.CreateVlan(ctx, gandi.VlanCreateOpts{
			Name:         name,
			DatacenterID: dcID,
			Subnet:       subnet,
			Gateway:      gateway,
		})
		if err != nil {
			return nil, unexpectedError("creating pvlan", name, err)
		}
		changed = true
	}

	return &VlanResult{
		Datacenter: datacenter,
		State:      "created",
		Name:       name,
		Changed:    changed,
		PvlanData: &PvlanData{
			Name:         vlan.Name,
			Subnet:       vlan.Subnet,
			Gateway:      vlan.Gateway,
			DatacenterID: vlan.DatacenterID,
		},
	}, nil
}

// Delete removes a VLAN by name. An absent name is reported unchanged,
// not an error.
func (s *VlanService) Delete(ctx context.Context, name, datacenter string) (*VlanResult, error) {
	if name == "" {
		return nil, &MissingArgumentError{Field: "name"}
	}

	vlan, err := s.vlanByName(ctx, name)
	if err != nil {
		return nil, err
	}

	changed := false
	if vlan != nil {
		if err := s.client.DeleteVlan(ctx, vlan.ID); err != nil {
			return nil, unexpectedError("deleting pvlan", name, err)
		}
		changed = true
	}

	return &VlanResult{
		Datacenter: datacenter,
		State:      "deleted",
		Name:       name,
		Changed:    changed,
	}, nil
}

func (s *VlanService) location(ctx context.Context, name string) (*gandi.Location, error) {
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

func (s *VlanService) vlanByName(ctx context.Context, name string) (*gandi.Vlan, error) {
	vlans, err := s.client.ListVlans(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vlans {
		if vlans[i].Name == name {
			return &vlans[i], nil
		}
	}
	return nil, nil
}
