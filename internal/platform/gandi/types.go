package gandi

// NodeState is the lifecycle state of a hosting VM as reported by the API.
type NodeState string

// Node states returned by hosting.vm.list.
const (
	StateRunning      NodeState = "running"
	StateHalted       NodeState = "halted"
	StatePaused       NodeState = "paused"
	StateLocked       NodeState = "locked"
	StateBeingCreated NodeState = "being_created"
	StateDeleted      NodeState = "deleted"
	StateUnknown      NodeState = "unknown"
)

// Node is a hosting VM. PublicIPs and PrivateIPs are derived from the
// node's interfaces: addresses on a VLAN interface are private, the rest
// are public.
type Node struct {
	ID         int
	Name       string
	State      NodeState
	PublicIPs  []string
	PrivateIPs []string
	Extra      NodeExtra
}

// NodeExtra carries the provider-specific node fields. Farm is optional
// and empty when the node carries no grouping label.
type NodeExtra struct {
	DatacenterID int
	Farm         string
	Memory       int
	Cores        int
	AIActive     bool
	Description  string
	Disks        []int
	Ifaces       []int
}

// Location is a datacenter. ID is the string form of a numeric
// identifier; nodes reference it through NodeExtra.DatacenterID.
type Location struct {
	ID      string
	Name    string
	Country string
}

// Iface is a network interface owned by at most one node. VlanName is
// empty for public interfaces.
type Iface struct {
	ID     int
	NodeID int
	IPs    []IfaceIP
	Extra  IfaceExtra
}

// IfaceIP is one address bound to an interface.
type IfaceIP struct {
	ID      int
	Address string
	Version int
}

// IfaceExtra carries the provider-specific interface fields.
type IfaceExtra struct {
	VlanName     string
	Bandwidth    float64
	DatacenterID int
}

// Vlan is a private layer-2 segment. Subnet and Gateway are optional and
// empty when the VLAN has no addressing configured.
type Vlan struct {
	ID           int
	Name         string
	Subnet       string
	Gateway      string
	DatacenterID int
}

// Image is an OS image available in a datacenter.
type Image struct {
	ID           int
	Name         string
	DatacenterID int
}

// Disk is a storage volume.
type Disk struct {
	ID           int
	Name         string
	Size         int
	DatacenterID int
}

// Size is an instance flavor. Custom sizes are built by callers from
// explicit cores/memory values instead of a catalog entry.
type Size struct {
	ID        int
	Name      string
	Cores     int
	RAM       int
	Disk      int
	Bandwidth float64
}

// NodeCreateOpts holds all parameters for creating a hosting VM.
type NodeCreateOpts struct {
	Name         string
	DatacenterID int
	ImageID      int
	Size         Size
	Login        string
	Password     string
	SSHKeyIDs    []int
	Farm         string
	// Interfaces describes the public and private attachments requested
	// at creation time, keyed the way the API expects ("publics",
	// "privates").
	Interfaces map[string][]IfaceCreateOpts
}

// IfaceCreateOpts holds all parameters for creating an interface.
type IfaceCreateOpts struct {
	DatacenterID int
	VlanName     string
	IPAddress    string
	IPVersion    int
	Bandwidth    float64
}

// VlanCreateOpts holds all parameters for creating a private VLAN.
type VlanCreateOpts struct {
	Name         string
	DatacenterID int
	Subnet       string
	Gateway      string
}

// DiskCreateOpts holds all parameters for creating a storage volume.
type DiskCreateOpts struct {
	Name         string
	Size         int
	DatacenterID int
}
