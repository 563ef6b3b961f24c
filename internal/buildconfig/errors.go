package buildconfig

import (
	"errors"
	"fmt"
)

// Errors returned by policy configuration operations.
var (
	// ErrUnknownPhase indicates a phase name with no configuration.
	ErrUnknownPhase = errors.New("unknown phase")

	// ErrBadPattern indicates a submenu pattern that does not compile.
	ErrBadPattern = errors.New("invalid submenu pattern")
)

// ParseError represents an error while parsing a policy file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// SubmenuConflictError indicates a command matched by more than one
// submenu pattern. The planner needs exactly one submenu per command,
// so overlapping patterns are a configuration error.
type SubmenuConflictError struct {
	// Command is the offending command string.
	Command string
	// Patterns are the sources of every pattern that matched.
	Patterns []string
}

// Error implements the error interface.
func (e *SubmenuConflictError) Error() string {
	return fmt.Sprintf("command %q matches %d submenu patterns %v, want at most one",
		e.Command, len(e.Patterns), e.Patterns)
}
