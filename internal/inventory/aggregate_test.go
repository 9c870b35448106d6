package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gandi/gansible/internal/platform/gandi"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Nodes: []gandi.Node{
			{
				ID: 10, Name: "h1", State: gandi.StateRunning,
				PublicIPs:  []string{"203.0.113.7"},
				PrivateIPs: []string{"192.168.1.7", "192.168.2.7"},
				Extra: gandi.NodeExtra{
					DatacenterID: 1, Farm: "f1", Memory: 1024, Cores: 2,
					Ifaces: []int{100, 101, 102}, Disks: []int{200},
				},
			},
			{
				ID: 11, Name: "h2", State: gandi.StateHalted,
				Extra: gandi.NodeExtra{DatacenterID: 1, Farm: "f1"},
			},
		},
		Locations: []gandi.Location{
			{ID: "1", Name: "Paris", Country: "FR"},
			{ID: "4", Name: "Bissen", Country: "LU"},
		},
		Ifaces: []gandi.Iface{
			{ID: 100, NodeID: 10},
			{ID: 101, NodeID: 10, Extra: gandi.IfaceExtra{VlanName: "db"}},
			{ID: 102, NodeID: 10, Extra: gandi.IfaceExtra{VlanName: "web"}},
		},
		Vlans: []gandi.Vlan{
			{ID: 5, Name: "db", Subnet: "192.168.1.0/24", Gateway: "192.168.1.254"},
			{ID: 6, Name: "web", Subnet: "192.168.2.0/24"},
		},
	}
}

func TestBuildGroupsNodes(t *testing.T) {
	t.Parallel()

	inv, err := Build(testSnapshot())
	require.NoError(t, err)

	farm := inv.Group("f1")
	require.NotNil(t, farm)
	assert.Equal(t, []string{"h1", "h2"}, farm.Hosts)
	assert.Nil(t, farm.Vars)

	dc := inv.Group("Paris")
	require.NotNil(t, dc)
	assert.Equal(t, []string{"h1", "h2"}, dc.Hosts)
	assert.Equal(t, DatacenterVars{DatacenterID: "1", Country: "FR"}, dc.Vars)

	db := inv.Group("db")
	require.NotNil(t, db)
	assert.Equal(t, []string{"h1"}, db.Hosts)
	assert.Equal(t, VlanVars{VlanID: 5, Subnet: "192.168.1.0/24", Gateway: "192.168.1.254"}, db.Vars)

	web := inv.Group("web")
	require.NotNil(t, web)
	assert.Equal(t, []string{"h1"}, web.Hosts)

	assert.Nil(t, inv.Group("Bissen"), "unused datacenter must not produce a group")
}

func TestBuildWithSSHUser(t *testing.T) {
	t.Parallel()

	inv, err := Build(testSnapshot(), WithSSHUser("admin"))
	require.NoError(t, err)

	vars, err := inv.Host("h1")
	require.NoError(t, err)
	assert.Equal(t, "admin", vars.AnsibleSSHUser)

	inv, err = Build(testSnapshot(), WithSSHUser(""))
	require.NoError(t, err)
	vars, err = inv.Host("h1")
	require.NoError(t, err)
	assert.Equal(t, "root", vars.AnsibleSSHUser, "empty user keeps the default")
}

func TestBuildHostVars(t *testing.T) {
	t.Parallel()

	inv, err := Build(testSnapshot())
	require.NoError(t, err)

	vars, err := inv.Host("h1")
	require.NoError(t, err)
	assert.Equal(t, 10, vars.NodeID)
	assert.Equal(t, "running", vars.State)
	assert.Equal(t, "203.0.113.7", vars.AnsibleSSHHost)
	assert.Equal(t, "root", vars.AnsibleSSHUser)
	assert.Equal(t, []string{"192.168.1.7", "192.168.2.7"}, vars.PrivateIPs)
	assert.Equal(t, 1, vars.DatacenterID)
	assert.Equal(t, "f1", vars.Farm)
	assert.Equal(t, []int{100, 101, 102}, vars.Ifaces)

	// No public address leaves the ssh host empty rather than crashing.
	vars2, err := inv.Host("h2")
	require.NoError(t, err)
	assert.Empty(t, vars2.AnsibleSSHHost)
}

func TestBuildNodeWithoutFarm(t *testing.T) {
	t.Parallel()

	snap := testSnapshot()
	snap.Nodes[0].Extra.Farm = ""
	snap.Nodes = snap.Nodes[:1]

	inv, err := Build(snap)
	require.NoError(t, err)
	assert.Nil(t, inv.Group("f1"))
	require.NotNil(t, inv.Group("Paris"))

	vars, err := inv.Host("h1")
	require.NoError(t, err)
	assert.Empty(t, vars.Farm)
}

func TestBuildDatacenterLookupFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		locations []gandi.Location
		matches   int
	}{
		{
			name:      "no match",
			locations: []gandi.Location{{ID: "2", Name: "Bissen", Country: "LU"}},
			matches:   0,
		},
		{
			name: "ambiguous",
			locations: []gandi.Location{
				{ID: "1", Name: "Paris", Country: "FR"},
				{ID: "1", Name: "Paris-bis", Country: "FR"},
			},
			matches: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			snap := testSnapshot()
			snap.Locations = tt.locations

			inv, err := Build(snap)
			assert.Nil(t, inv, "lookup failure must not return a partial inventory")

			var lookupErr *LookupError
			require.ErrorAs(t, err, &lookupErr)
			assert.Equal(t, "datacenter", lookupErr.Kind)
			assert.Equal(t, tt.matches, lookupErr.Matches)
		})
	}
}

func TestBuildVlanLookupFailure(t *testing.T) {
	t.Parallel()

	snap := testSnapshot()
	snap.Vlans = snap.Vlans[:1] // "web" disappears

	inv, err := Build(snap)
	assert.Nil(t, inv)

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "vlan", lookupErr.Kind)
	assert.Equal(t, "web", lookupErr.Name)
}

func TestBuildNonNumericLocationID(t *testing.T) {
	t.Parallel()

	snap := testSnapshot()
	snap.Locations[0].ID = "paris"

	_, err := Build(snap)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-numeric")
}

func TestBuildDuplicateVlanInterfaces(t *testing.T) {
	t.Parallel()

	snap := testSnapshot()
	snap.Ifaces = append(snap.Ifaces, gandi.Iface{ID: 103, NodeID: 10, Extra: gandi.IfaceExtra{VlanName: "db"}})

	inv, err := Build(snap)
	require.NoError(t, err)
	assert.Equal(t, []string{"h1"}, inv.Group("db").Hosts, "host must appear once per VLAN group")
}

func TestBuildIsIdempotent(t *testing.T) {
	t.Parallel()

	snap := testSnapshot()

	first, err := Build(snap)
	require.NoError(t, err)
	second, err := Build(snap)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestBuildRejectsReservedGroupName(t *testing.T) {
	t.Parallel()

	snap := testSnapshot()
	snap.Nodes[0].Extra.Farm = MetaKey

	_, err := Build(snap)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved")
}

func TestFetchSequencesCalls(t *testing.T) {
	t.Parallel()

	var calls []string
	client := &gandi.MockClient{
		ListNodesFunc: func(context.Context) ([]gandi.Node, error) {
			calls = append(calls, "nodes")
			return nil, nil
		},
		ListLocationsFunc: func(context.Context) ([]gandi.Location, error) {
			calls = append(calls, "locations")
			return nil, nil
		},
		ListIfacesFunc: func(context.Context) ([]gandi.Iface, error) {
			calls = append(calls, "ifaces")
			return nil, nil
		},
		ListVlansFunc: func(context.Context) ([]gandi.Vlan, error) {
			calls = append(calls, "vlans")
			return nil, nil
		},
	}

	_, err := Fetch(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, []string{"nodes", "locations", "ifaces", "vlans"}, calls)
}

func TestFetchAbortsOnFirstError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	client := &gandi.MockClient{
		ListLocationsFunc: func(context.Context) ([]gandi.Location, error) {
			return nil, cause
		},
		ListIfacesFunc: func(context.Context) ([]gandi.Iface, error) {
			t.Fatal("ifaces must not be fetched after a failure")
			return nil, nil
		},
	}

	_, err := Fetch(context.Background(), client)
	require.ErrorIs(t, err, cause)
}
