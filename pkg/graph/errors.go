package graph

import (
	"errors"
	"fmt"
)

// Construction sentinels. Analysis never returns these.
var (
	ErrDuplicateNode = errors.New("duplicate node")
	ErrUnknownNode   = errors.New("unknown node")
	ErrSelfLoop      = errors.New("self-loop not allowed")
	ErrEmptyLabel    = errors.New("empty node label")
	ErrSealed        = errors.New("graph is sealed")
)

// Error provides structured information for a failed graph construction step.
type Error struct {
	Op    string // Operation that failed ("add_node", "add_edge", "build")
	Label string // Offending node label, or first endpoint for edges
	Other string // Second endpoint for edge operations
	Cause error  // Underlying sentinel
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Other != "" {
		return fmt.Sprintf("%s (%q, %q): %v", e.Op, e.Label, e.Other, e.Cause)
	}
	if e.Label != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Label, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building graph errors.
type ErrorBuilder struct {
	err Error
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: Error{Op: op}}
}

// Node sets the offending node label.
func (b *ErrorBuilder) Node(label string) *ErrorBuilder {
	b.err.Label = label
	return b
}

// Edge sets both edge endpoints.
func (b *ErrorBuilder) Edge(a, c string) *ErrorBuilder {
	b.err.Label = a
	b.err.Other = c
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// DuplicateNodeError reports a label that is already present.
func DuplicateNodeError(label string) error {
	return NewError("add_node").Node(label).Cause(ErrDuplicateNode).Err()
}

// UnknownNodeError reports an edge endpoint that is not in the graph.
func UnknownNodeError(a, b string) error {
	return NewError("add_edge").Edge(a, b).Cause(ErrUnknownNode).Err()
}

// SelfLoopError reports an edge whose endpoints are the same node.
func SelfLoopError(label string) error {
	return NewError("add_edge").Edge(label, label).Cause(ErrSelfLoop).Err()
}

// IsConstructionError returns true if err came from graph construction.
func IsConstructionError(err error) bool {
	return errors.Is(err, ErrDuplicateNode) ||
		errors.Is(err, ErrUnknownNode) ||
		errors.Is(err, ErrSelfLoop) ||
		errors.Is(err, ErrEmptyLabel) ||
		errors.Is(err, ErrSealed)
}
