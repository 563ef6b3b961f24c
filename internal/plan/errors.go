package plan

import (
	"errors"
	"fmt"
)

// ErrNoCell indicates a plot position with no designated cell.
var ErrNoCell = errors.New("no designated cell at position")

// UnknownStrategyError indicates a policy naming a strategy that is
// not implemented.
type UnknownStrategyError struct {
	// Kind is "sizing" or "materials".
	Kind string
	// Name is the unresolved strategy name.
	Name string
}

// Error implements the error interface.
func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown %s strategy %q", e.Kind, e.Name)
}
