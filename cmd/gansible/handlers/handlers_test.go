package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gandi/gansible/internal/config"
	"github.com/gandi/gansible/internal/platform/gandi"
)

// withTestClient swaps the factory functions for one test and collects
// everything the handler writes to stdout.
func withTestClient(t *testing.T, client gandi.Client) *bytes.Buffer {
	t.Helper()

	origLoad := loadConfig
	origNew := newClient
	origStdout := stdout
	t.Cleanup(func() {
		loadConfig = origLoad
		newClient = origNew
		stdout = origStdout
	})

	loadConfig = func(string) (*config.Config, error) {
		return &config.Config{APIKey: "test-key", Endpoint: gandi.DefaultEndpoint, SSHUser: "root"}, nil
	}
	newClient = func(*config.Config) (gandi.Client, error) {
		return client, nil
	}

	var buf bytes.Buffer
	stdout = io.Writer(&buf)
	return &buf
}

// decodeJSON parses the handler output into a generic map.
func decodeJSON(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

// testClient returns a mock with the fixtures the handler tests share:
// one datacenter, one image, one catalog size, one VM on one VLAN.
func testClient() *gandi.MockClient {
	return &gandi.MockClient{
		ListNodesFunc: func(context.Context) ([]gandi.Node, error) {
			return []gandi.Node{{
				ID: 10, Name: "web1", State: gandi.StateRunning,
				PublicIPs:  []string{"203.0.113.7"},
				PrivateIPs: []string{"10.7.0.10"},
				Extra:      gandi.NodeExtra{DatacenterID: 1, Farm: "web", Cores: 1, Memory: 256},
			}}, nil
		},
		ListLocationsFunc: func(context.Context) ([]gandi.Location, error) {
			return []gandi.Location{{ID: "1", Name: "FR-SD3", Country: "FR"}}, nil
		},
		ListIfacesFunc: func(context.Context) ([]gandi.Iface, error) {
			return []gandi.Iface{
				{ID: 100, NodeID: 10, IPs: []gandi.IfaceIP{{ID: 1, Address: "203.0.113.7", Version: 4}}},
				{ID: 101, NodeID: 10, Extra: gandi.IfaceExtra{VlanName: "db"}, IPs: []gandi.IfaceIP{{ID: 2, Address: "10.7.0.10", Version: 4}}},
			}, nil
		},
		ListVlansFunc: func(context.Context) ([]gandi.Vlan, error) {
			return []gandi.Vlan{{ID: 7, Name: "db", Subnet: "10.7.0.0/24", Gateway: "10.7.0.1", DatacenterID: 1}}, nil
		},
		ListImagesFunc: func(_ context.Context, dcID int) ([]gandi.Image, error) {
			return []gandi.Image{{ID: 90, Name: "Debian 8", DatacenterID: dcID}}, nil
		},
		ListSizesFunc: func(context.Context) ([]gandi.Size, error) {
			return []gandi.Size{{ID: 1, Name: "Small instance", Cores: 1, RAM: 256, Disk: 3, Bandwidth: 10240}}, nil
		},
	}
}
