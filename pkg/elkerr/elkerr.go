// Package elkerr defines the typed error taxonomy from spec.md §7,
// grounded on _examples/original_source/elkpy/exceptions.py's exception
// hierarchy (ElkError and its three subclasses), translated into a single
// Go error type carrying a Kind so callers can branch with errors.As
// instead of a type switch over four distinct error types.
package elkerr

import "fmt"

// Kind distinguishes the four error surfaces spec.md §7 names.
type Kind int

const (
	// MissingArgument: the top-level graph argument was absent.
	MissingArgument Kind = iota
	// InvalidGraph: structural/id validation failed.
	InvalidGraph
	// UnsupportedConfiguration: the requested algorithm id is unknown, or
	// an algorithmic precondition (e.g. a FIRST-constraint cycle) failed.
	UnsupportedConfiguration
	// UnsupportedGraph: a cross-hierarchy edge was present under
	// SEPARATE_CHILDREN.
	UnsupportedGraph
)

func (k Kind) String() string {
	switch k {
	case MissingArgument:
		return "MissingArgument"
	case InvalidGraph:
		return "InvalidGraph"
	case UnsupportedConfiguration:
		return "UnsupportedConfiguration"
	case UnsupportedGraph:
		return "UnsupportedGraph"
	default:
		return "Unknown"
	}
}

// Error is the single error type the engine returns. Message already
// includes the compatibility prefix for UnsupportedConfiguration/
// UnsupportedGraph kinds (spec.md §7: "the message prefix is part of the
// contract: tests match on it").
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewMissingArgument builds a MissingArgument error.
func NewMissingArgument(msg string) *Error {
	return &Error{Kind: MissingArgument, Message: msg}
}

// NewInvalidGraph builds an InvalidGraph error.
func NewInvalidGraph(msg string) *Error {
	return &Error{Kind: InvalidGraph, Message: msg}
}

// NewUnsupportedConfiguration builds an UnsupportedConfiguration error
// with the required org.eclipse.elk.core exception-name prefix.
func NewUnsupportedConfiguration(msg string) *Error {
	return &Error{
		Kind:    UnsupportedConfiguration,
		Message: fmt.Sprintf("org.eclipse.elk.core.UnsupportedConfigurationException: %s", msg),
	}
}

// NewUnsupportedGraph builds an UnsupportedGraph error with the required
// org.eclipse.elk.core exception-name prefix.
func NewUnsupportedGraph(msg string) *Error {
	return &Error{
		Kind:    UnsupportedGraph,
		Message: fmt.Sprintf("org.eclipse.elk.core.UnsupportedGraphException: %s", msg),
	}
}

// Is makes errors.Is match any two *Error values of the same Kind,
// regardless of message, in addition to the usual errors.As(err, *Error)
// pattern.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
