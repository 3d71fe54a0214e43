// Released under an MIT license. See LICENSE.

// Package failure provides ren's recoverable error payload type.
package failure

import (
	"fmt"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
)

const name = "error"

// Failure identifiers, one per domain error class.
const (
	Access       = "access"
	Ancestry     = "ancestry"
	Argument     = "argument"
	Frozen       = "frozen"
	Isotope      = "isotope-misuse"
	QuoteDepth   = "quote-depth"
	Sequence     = "sequence"
	TypeMismatch = "type-mismatch"
	Unbound      = "unbound"
	Unhandled    = "unhandled"
)

// T (failure) is a recoverable domain error. Raised failures travel as
// isotopes; caught failures are ordinary plain values.
type T struct {
	id      string
	message string
}

type failure = T

// New creates a failure with the id and formatted message.
func New(id, format string, args ...interface{}) *failure {
	return &failure{id: id, message: fmt.Sprintf(format, args...)}
}

// Raise panics with a new failure. The trampoline recovers failures at
// its step boundary; anything else that panics is fatal.
func Raise(id, format string, args ...interface{}) {
	panic(New(id, format, args...))
}

// Equal returns true if h is a failure with the same id and message.
func (e *failure) Equal(h heart.I) bool {
	return Is(h) && e.id == To(h).id && e.message == To(h).message
}

// Error makes a failure usable as a Go error.
func (e *failure) Error() string {
	return e.String()
}

// ID returns the identifier of the failure e.
func (e *failure) ID() string {
	return e.id
}

// Literal returns the literal representation of the failure e.
func (e *failure) Literal() string {
	return "(error " + e.id + " " + fmt.Sprintf("%q", e.message) + ")"
}

// Message returns the message of the failure e.
func (e *failure) Message() string {
	return e.message
}

// Name returns the type name for the failure e.
func (e *failure) Name() string {
	return name
}

// String returns the text of the failure e.
func (e *failure) String() string {
	return "** " + e.id + " error: " + e.message
}

// UnstableIsotope marks the isotopic form of a failure (a raised error)
// as unstorable.
func (e *failure) UnstableIsotope() {}

// Is returns true if h is a failure.
func Is(h heart.I) bool {
	_, ok := h.(*failure)

	return ok
}

// To returns a failure if h is a failure; Otherwise it panics.
func To(h heart.I) *failure {
	if e, ok := h.(*failure); ok {
		return e
	}

	panic(h.Name() + " cannot be used in an error context")
}
