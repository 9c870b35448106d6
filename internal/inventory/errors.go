package inventory

import "fmt"

// LookupError reports a failed join between a node and its referenced
// datacenter or VLAN. Any LookupError aborts the whole build; partial
// inventories are never returned.
type LookupError struct {
	Kind    string // "datacenter" or "vlan"
	Name    string // the reference that failed to resolve
	Matches int
}

func (e *LookupError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("%s lookup failed: %q matched no record", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s lookup failed: %q is ambiguous (%d matches)", e.Kind, e.Name, e.Matches)
}

// NotFoundError reports a host name absent from the inventory meta map.
type NotFoundError struct {
	Host string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("host %q not found in inventory", e.Host)
}
