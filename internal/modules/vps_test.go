package modules

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gandi/gansible/internal/platform/gandi"
)

func vpsMock() *gandi.MockClient {
	return &gandi.MockClient{
		ListLocationsFunc: func(context.Context) ([]gandi.Location, error) {
			return []gandi.Location{
				{ID: "1", Name: "FR-SD3", Country: "FR"},
				{ID: "4", Name: "LU-BI1", Country: "LU"},
			}, nil
		},
		ListImagesFunc: func(_ context.Context, dcID int) ([]gandi.Image, error) {
			return []gandi.Image{{ID: 90, Name: "Debian 8", DatacenterID: dcID}}, nil
		},
		ListSizesFunc: func(context.Context) ([]gandi.Size, error) {
			return []gandi.Size{{ID: 1, Name: "Small instance", Cores: 1, RAM: 256, Disk: 3, Bandwidth: 10240}}, nil
		},
		ListNodesFunc:  func(context.Context) ([]gandi.Node, error) { return nil, nil },
		ListIfacesFunc: func(context.Context) ([]gandi.Iface, error) { return nil, nil },
	}
}

func TestVPSCreate(t *testing.T) {
	t.Parallel()

	mock := vpsMock()
	var gotOpts gandi.NodeCreateOpts
	mock.CreateNodeFunc = func(_ context.Context, opts gandi.NodeCreateOpts) (*gandi.Node, error) {
		gotOpts = opts
		return &gandi.Node{ID: 55, Name: opts.Name, State: gandi.StateBeingCreated,
			Extra: gandi.NodeExtra{DatacenterID: opts.DatacenterID, Cores: 1, Memory: 256, Farm: opts.Farm}}, nil
	}
	mock.ListIfacesFunc = func(context.Context) ([]gandi.Iface, error) {
		return []gandi.Iface{
			{ID: 100, NodeID: 55, IPs: []gandi.IfaceIP{{ID: 1, Address: "203.0.113.9", Version: 4}}, Extra: gandi.IfaceExtra{Bandwidth: 10240}},
			{ID: 101, NodeID: 55, Extra: gandi.IfaceExtra{VlanName: "db"}, IPs: []gandi.IfaceIP{{ID: 2, Address: "fd00::9", Version: 6}}},
		}, nil
	}

	svc := NewVPSService(mock)
	result, err := svc.Create(context.Background(), VPSCreateOpts{
		Names:       []string{"web1"},
		Image:       "Debian 8",
		MachineType: "Small instance",
		Datacenter:  "FR-SD3",
		Farm:        "web",
	})
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.Equal(t, "running", result.State)
	assert.Equal(t, "FR-SD3", result.Datacenter)
	assert.Equal(t, "web1", result.InstanceNames)

	assert.Equal(t, 1, gotOpts.DatacenterID)
	assert.Equal(t, 90, gotOpts.ImageID)
	assert.Equal(t, "web", gotOpts.Farm)

	info, ok := result.InstanceData.(InstanceInfo)
	require.True(t, ok, "single instance collapses to a bare object")
	assert.Equal(t, "web1", info.Name)
	require.Len(t, info.PublicIfaces, 1)
	require.Len(t, info.PrivateIfaces, 1)
	assert.Equal(t, "i0", info.PublicIfaces[0].IfaceName)
	assert.Equal(t, "i0.public", info.CName)
	assert.Equal(t, "A", info.PublicIfaces[0].IPs[0].RecordType)
	assert.Equal(t, "AAAA", info.PrivateIfaces[0].IPs[0].RecordType)
}

func TestVPSCreateExistingNodeIsNotRecreated(t *testing.T) {
	t.Parallel()

	mock := vpsMock()
	mock.ListNodesFunc = func(context.Context) ([]gandi.Node, error) {
		return []gandi.Node{{ID: 55, Name: "web1", State: gandi.StateRunning, Extra: gandi.NodeExtra{DatacenterID: 1}}}, nil
	}
	mock.CreateNodeFunc = func(context.Context, gandi.NodeCreateOpts) (*gandi.Node, error) {
		t.Fatal("existing node must not be recreated")
		return nil, nil
	}

	svc := NewVPSService(mock)
	result, err := svc.Create(context.Background(), VPSCreateOpts{
		Names: []string{"web1"}, Image: "Debian 8", MachineType: "Small instance", Datacenter: "FR-SD3",
	})
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Equal(t, "web1", result.InstanceNames)
}

func TestVPSCreateArgumentValidation(t *testing.T) {
	t.Parallel()

	svc := NewVPSService(vpsMock())

	_, err := svc.Create(context.Background(), VPSCreateOpts{Datacenter: "FR-SD3"})
	var missing *MissingArgumentError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Field)

	_, err = svc.Create(context.Background(), VPSCreateOpts{Names: []string{"web1"}})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "datacenter", missing.Field)
}

func TestVPSCreateInvalidDatacenter(t *testing.T) {
	t.Parallel()

	svc := NewVPSService(vpsMock())
	_, err := svc.Create(context.Background(), VPSCreateOpts{
		Names: []string{"web1"}, Image: "Debian 8", MachineType: "Small instance", Datacenter: "AQ-SP1",
	})

	var lookup *LookupFailure
	require.ErrorAs(t, err, &lookup)
	assert.Equal(t, "datacenter", lookup.Kind)
}

func TestVPSCreateImageFallsBackToDisk(t *testing.T) {
	t.Parallel()

	mock := vpsMock()
	mock.ListImagesFunc = func(context.Context, int) ([]gandi.Image, error) { return nil, nil }
	mock.ListDisksFunc = func(context.Context) ([]gandi.Disk, error) {
		return []gandi.Disk{{ID: 200, Name: "golden-master", Size: 10}}, nil
	}
	var gotImageID int
	mock.CreateNodeFunc = func(_ context.Context, opts gandi.NodeCreateOpts) (*gandi.Node, error) {
		gotImageID = opts.ImageID
		return &gandi.Node{ID: 1, Name: opts.Name}, nil
	}

	svc := NewVPSService(mock)
	_, err := svc.Create(context.Background(), VPSCreateOpts{
		Names: []string{"web1"}, Image: "golden-master", MachineType: "Small instance", Datacenter: "FR-SD3",
	})
	require.NoError(t, err)
	assert.Equal(t, 200, gotImageID)
}

func TestVPSCreateUnknownImage(t *testing.T) {
	t.Parallel()

	mock := vpsMock()
	mock.ListImagesFunc = func(context.Context, int) ([]gandi.Image, error) { return nil, nil }

	svc := NewVPSService(mock)
	_, err := svc.Create(context.Background(), VPSCreateOpts{
		Names: []string{"web1"}, Image: "NoSuchOS", MachineType: "Small instance", Datacenter: "FR-SD3",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such image or volume")
}

func TestVPSCreateCustomSize(t *testing.T) {
	t.Parallel()

	mock := vpsMock()
	var gotSize gandi.Size
	mock.CreateNodeFunc = func(_ context.Context, opts gandi.NodeCreateOpts) (*gandi.Node, error) {
		gotSize = opts.Size
		return &gandi.Node{ID: 1, Name: opts.Name}, nil
	}
	mock.ListSizesFunc = func(context.Context) ([]gandi.Size, error) {
		t.Fatal("custom sizes must not consult the catalog")
		return nil, nil
	}

	svc := NewVPSService(mock)
	_, err := svc.Create(context.Background(), VPSCreateOpts{
		Names: []string{"db1"}, Image: "Debian 8", MachineType: MachineTypeCustom,
		Cores: 4, Memory: 4096, Disk: 50, Datacenter: "FR-SD3",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, gotSize.Cores)
	assert.Equal(t, 4096, gotSize.RAM)
	assert.Equal(t, defaultBandwidth, gotSize.Bandwidth, "unset bandwidth gets the default")
}

func TestVPSCreateAttachesExtraDisks(t *testing.T) {
	t.Parallel()

	mock := vpsMock()
	mock.CreateNodeFunc = func(_ context.Context, opts gandi.NodeCreateOpts) (*gandi.Node, error) {
		return &gandi.Node{ID: 77, Name: opts.Name}, nil
	}
	var createdDisks []gandi.DiskCreateOpts
	mock.CreateDiskFunc = func(_ context.Context, opts gandi.DiskCreateOpts) (*gandi.Disk, error) {
		createdDisks = append(createdDisks, opts)
		return &gandi.Disk{ID: 300 + len(createdDisks), Name: opts.Name, Size: opts.Size}, nil
	}
	var attached [][2]int
	mock.AttachDiskFunc = func(_ context.Context, nodeID, diskID int) error {
		attached = append(attached, [2]int{nodeID, diskID})
		return nil
	}

	svc := NewVPSService(mock)
	_, err := svc.Create(context.Background(), VPSCreateOpts{
		Names: []string{"web1"}, Image: "Debian 8", MachineType: "Small instance", Datacenter: "FR-SD3",
		ExtraDisks: []ExtraDisk{{Name: "data", Size: 10}, {Name: "logs", Size: 5}},
	})
	require.NoError(t, err)
	require.Len(t, createdDisks, 2)
	assert.Equal(t, "data", createdDisks[0].Name)
	assert.Equal(t, [][2]int{{77, 301}, {77, 302}}, attached)
}

func TestVPSTerminate(t *testing.T) {
	t.Parallel()

	mock := vpsMock()
	mock.ListNodesFunc = func(context.Context) ([]gandi.Node, error) {
		return []gandi.Node{{ID: 55, Name: "web1", Extra: gandi.NodeExtra{DatacenterID: 1}}}, nil
	}
	var deleted []int
	mock.DeleteNodeFunc = func(_ context.Context, id int) error {
		deleted = append(deleted, id)
		return nil
	}

	svc := NewVPSService(mock)
	result, err := svc.Terminate(context.Background(), "FR-SD3", []string{"web1", "ghost"})
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.Equal(t, "deleted", result.State)
	assert.Equal(t, []int{55}, deleted)
	assert.Equal(t, "web1", result.InstanceNames, "single termination collapses to a scalar")
}

func TestVPSTerminateNothingMatches(t *testing.T) {
	t.Parallel()

	svc := NewVPSService(vpsMock())
	result, err := svc.Terminate(context.Background(), "FR-SD3", []string{"ghost"})
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Nil(t, result.InstanceData)
	assert.Nil(t, result.InstanceNames)
}

func TestVPSPowerOperations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state string
		run   func(svc *VPSService, ctx context.Context) (*VPSResult, error)
		spy   func(mock *gandi.MockClient, calls *[]int)
	}{
		{
			name:  "start",
			state: "started",
			run: func(svc *VPSService, ctx context.Context) (*VPSResult, error) {
				return svc.Start(ctx, "FR-SD3", []string{"web1", "ghost"})
			},
			spy: func(mock *gandi.MockClient, calls *[]int) {
				mock.StartNodeFunc = func(_ context.Context, id int) error {
					*calls = append(*calls, id)
					return nil
				}
			},
		},
		{
			name:  "stop",
			state: "halted",
			run: func(svc *VPSService, ctx context.Context) (*VPSResult, error) {
				return svc.Stop(ctx, "FR-SD3", []string{"web1", "ghost"})
			},
			spy: func(mock *gandi.MockClient, calls *[]int) {
				mock.StopNodeFunc = func(_ context.Context, id int) error {
					*calls = append(*calls, id)
					return nil
				}
			},
		},
		{
			name:  "reboot",
			state: "rebooted",
			run: func(svc *VPSService, ctx context.Context) (*VPSResult, error) {
				return svc.Reboot(ctx, "FR-SD3", []string{"web1", "ghost"})
			},
			spy: func(mock *gandi.MockClient, calls *[]int) {
				mock.RebootNodeFunc = func(_ context.Context, id int) error {
					*calls = append(*calls, id)
					return nil
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock := vpsMock()
			mock.ListNodesFunc = func(context.Context) ([]gandi.Node, error) {
				return []gandi.Node{{ID: 55, Name: "web1"}}, nil
			}
			var calls []int
			tt.spy(mock, &calls)

			result, err := tt.run(NewVPSService(mock), context.Background())
			require.NoError(t, err)
			assert.True(t, result.Changed)
			assert.Equal(t, tt.state, result.State)
			assert.Equal(t, []int{55}, calls, "unknown names are skipped")
		})
	}
}

func TestVPSStartSurfacesProviderError(t *testing.T) {
	t.Parallel()

	mock := vpsMock()
	mock.ListNodesFunc = func(context.Context) ([]gandi.Node, error) {
		return []gandi.Node{{ID: 55, Name: "web1"}}, nil
	}
	cause := errors.New("api unavailable")
	mock.StartNodeFunc = func(context.Context, int) error { return cause }

	svc := NewVPSService(mock)
	_, err := svc.Start(context.Background(), "FR-SD3", []string{"web1"})
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "starting instance web1")
}
