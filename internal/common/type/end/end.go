// Released under an MIT license. See LICENSE.

// Package end provides ren's end payload type.
package end

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
)

const name = "end"

// T (end) signals an exhausted input slot. Its isotopic form is what an
// endable parameter receives when no argument remains.
type T struct{}

type endT = T

// End is the only end value.
//
//nolint:gochecknoglobals
var End = &endT{}

// Equal returns true if h is an end.
func (e *endT) Equal(h heart.I) bool {
	return Is(h)
}

// Literal returns the literal representation of the end e.
func (e *endT) Literal() string {
	return "end"
}

// Name returns the type name for the end e.
func (e *endT) Name() string {
	return name
}

// Is returns true if h is an end.
func Is(h heart.I) bool {
	_, ok := h.(*endT)

	return ok
}
