package modules

import "fmt"

// MissingArgumentError reports a required module argument that was not
// supplied. It is raised before any API call is issued.
type MissingArgumentError struct {
	Field string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("must specify a %q", e.Field)
}

// LookupFailure reports a named resource (datacenter, image, machine
// type, vlan) that could not be resolved against the provider. The
// operation aborts; nothing is rolled back because nothing was created.
type LookupFailure struct {
	Kind string
	Name string
}

func (e *LookupFailure) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Kind, e.Name)
}
