// Released under an MIT license. See LICENSE.

// Package hole provides ren's blackhole payload type.
package hole

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
)

const name = "blackhole"

// T (hole) is the blackhole value written as a number sign. Writes to a
// blackhole are accepted and discarded.
type T struct{}

type hole = T

// Hole is the only blackhole value.
//
//nolint:gochecknoglobals
var Hole = &hole{}

// Equal returns true if h is a blackhole.
func (b *hole) Equal(h heart.I) bool {
	return Is(h)
}

// Literal returns the literal representation of the hole b.
func (b *hole) Literal() string {
	return "#"
}

// Name returns the type name for the hole b.
func (b *hole) Name() string {
	return name
}

// Is returns true if h is a blackhole.
func Is(h heart.I) bool {
	_, ok := h.(*hole)

	return ok
}
