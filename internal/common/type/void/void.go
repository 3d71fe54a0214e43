// Released under an MIT license. See LICENSE.

// Package void provides ren's void payload type.
package void

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
)

const name = "void"

// T (void) marks invisible intent that still had to reify to something.
// It only occurs in isotopic or quasi form.
type T struct{}

type voidT = T

// Void is the only void value.
//
//nolint:gochecknoglobals
var Void = &voidT{}

// Equal returns true if h is a void.
func (v *voidT) Equal(h heart.I) bool {
	return Is(h)
}

// Literal returns the literal representation of the void v.
func (v *voidT) Literal() string {
	return "void"
}

// Name returns the type name for the void v.
func (v *voidT) Name() string {
	return name
}

// Is returns true if h is a void.
func Is(h heart.I) bool {
	_, ok := h.(*voidT)

	return ok
}
