package modules

import (
	"context"
	"strconv"

	"github.com/gandi/gansible/internal/platform/gandi"
)

// IfaceService manages network interfaces.
type IfaceService struct {
	client gandi.Client
}

// NewIfaceService returns an IfaceService over the given client.
func NewIfaceService(client gandi.Client) *IfaceService {
	return &IfaceService{client: client}
}

// IfaceResult is the payload of an iface operation.
type IfaceResult struct {
	Datacenter string     `json:"datacenter"`
	State      string     `json:"state"`
	IfaceData  *IfaceData `json:"iface_data,omitempty"`
	IfaceID    int        `json:"iface_id,omitempty"`
	Changed    bool       `json:"changed"`
}

// IfaceData is the published description of one interface.
type IfaceData struct {
	Vlan         string  `json:"vlan"`
	Bandwidth    float64 `json:"bandwidth"`
	DatacenterID int     `json:"datacenter_id"`
}

// IfaceCreateOpts holds the arguments of a create operation.
type IfaceCreateOpts struct {
	Datacenter string
	Vlan       string
	IPAddress  string
	IPVersion  int
	Bandwidth  float64
}

// Create creates an interface, private when a VLAN name is given and
// public otherwise. Public interfaces need an explicit IP version.
func (s *IfaceService) Create(ctx context.Context, opts IfaceCreateOpts) (*IfaceResult, error) {
	if opts.Datacenter == "" {
		return nil, &MissingArgumentError{Field: "datacenter"}
	}

	location, err := s.location(ctx, opts.Datacenter)
	if err != nil {
		return nil, err
	}
	dcID, _ := strconv.Atoi(location.ID)

	if opts.Vlan != "" {
		if err := s.checkVlan(ctx, opts.Vlan); err != nil {
			return nil, err
		}
	} else if opts.IPVersion == 0 {
		return nil, &MissingArgumentError{Field: "ip_version"}
	}

	iface, err := s.client.CreateIface(ctx, gandi.IfaceCreateOpts{
		DatacenterID: dcID,
		VlanName:     opts.Vlan,
		IPAddress:    opts.IPAddress,
		IPVersion:    opts.IPVersion,
		Bandwidth:    opts.Bandwidth,
	})
	if err != nil {
		return nil, unexpectedError("creating iface in", opts.Datacenter, err)
	}

	return &IfaceResult{
		Datacenter: opts.Datacenter,
		State:      "created",
		Changed:    true,
		IfaceData: &IfaceData{
			Vlan:         iface.Extra.VlanName,
			Bandwidth:    iface.Extra.Bandwidth,
			DatacenterID: iface.Extra.DatacenterID,
		},
	}, nil
}

// Delete removes an interface by id. An unknown id is reported
// unchanged, not an error.
func (s *IfaceService) Delete(ctx context.Context, datacenter string, id int) (*IfaceResult, error) {
	ifaces, err := s.client.ListIfaces(ctx)
	if err != nil {
		return nil, err
	}

	changed := false
	for _, iface := range ifaces {
		if iface.ID != id {
			continue
		}
		if err := s.client.DeleteIface(ctx, id); err != nil {
			return nil, unexpectedError("deleting iface", strconv.Itoa(id), err)
		}
		changed = true
		break
	}

	return &IfaceResult{
		Datacenter: datacenter,
		State:      "deleted",
		IfaceID:    id,
		Changed:    changed,
	}, nil
}

func (s *IfaceService) location(ctx context.Context, name string) (*gandi.Location, error) {
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

func (s *IfaceService) checkVlan(ctx context.Context, name string) error {
	vlans, err := s.client.ListVlans(ctx)
	if err != nil {
		return err
	}
	for _, vlan := range vlans {
		if vlan.Name == name {
			return nil
		}
	}
	return &LookupFailure{Kind: "vlan", Name: name}
}
