// Released under an MIT license. See LICENSE.

// Package blank provides ren's blank payload type.
package blank

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
)

const name = "blank"

// T (blank) is the placeholder value written as an underscore.
type T struct{}

type blank = T

// Blank is the only blank value.
//
//nolint:gochecknoglobals
var Blank = &blank{}

// Equal returns true if h is a blank.
func (b *blank) Equal(h heart.I) bool {
	return Is(h)
}

// Literal returns the literal representation of the blank b.
func (b *blank) Literal() string {
	return "_"
}

// Name returns the type name for the blank b.
func (b *blank) Name() string {
	return name
}

// Is returns true if h is a blank.
func Is(h heart.I) bool {
	_, ok := h.(*blank)

	return ok
}
