// Released under an MIT license. See LICENSE.

// Package text provides ren's string payload type.
package text

import (
	"github.com/michaelmacinnis/adapted"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/literal"
)

const name = "text"

// T (text) wraps Go's string type.
type T string

type text = T

// New creates a text payload from the string v.
func New(v string) heart.I {
	t := text(v)

	return &t
}

// Equal returns true if h is a text with the same value.
func (t *text) Equal(h heart.I) bool {
	return Is(h) && t.String() == To(h).String()
}

// Literal returns the literal representation of the text t.
func (t *text) Literal() string {
	return adapted.CanonicalString(string(*t))
}

// Name returns the type name for the text t.
func (t *text) Name() string {
	return name
}

// String returns the text of the text t.
func (t *text) String() string {
	return string(*t)
}

// Is returns true if h is a text.
func Is(h heart.I) bool {
	_, ok := h.(*text)

	return ok
}

// To returns a text if h is a text; Otherwise it panics.
func To(h heart.I) *text {
	if t, ok := h.(*text); ok {
		return t
	}

	panic(h.Name() + " cannot be used in a text context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t text

	// The text type is a heart.
	_ = heart.I(&t)

	// The text type has a literal representation.
	_ = literal.I(&t)

	// The text type is a stringer.
	_ = common.Stringer(&t)
}
