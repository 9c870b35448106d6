// Package modules implements the resource operations behind the vps,
// pvlan and iface commands: argument validation, name resolution against
// the provider, the CRUD call itself, and uniform result shaping.
//
// Every operation checks for an existing resource by name before
// creating one. The check and the create are two API calls; a concurrent
// creator can win the race in between. That window is accepted.
package modules

import "fmt"

// Failure is the JSON payload emitted when an operation fails.
type Failure struct {
	Failed  bool   `json:"failed"`
	Msg     string `json:"msg"`
	Changed bool   `json:"changed"`
}

// NewFailure wraps an error into the failure payload.
func NewFailure(err error) Failure {
	return Failure{Failed: true, Msg: err.Error()}
}

// scalarOrList collapses a single-element slice to its element, the way
// the module consumers expect: one resource yields a bare object, many
// yield a list, none yields null.
func scalarOrList[T any](items []T) interface{} {
	switch len(items) {
	case 0:
		return nil
	case 1:
		return items[0]
	default:
		return items
	}
}

func unexpectedError(action, name string, err error) error {
	return fmt.Errorf("unexpected error when %s %s: %w", action, name, err)
}
