// Released under an MIT license. See LICENSE.

// Package null provides ren's null payload type.
package null

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
)

const name = "null"

// T (null) is the null value. Its plain form is falsey; its isotopic
// form is the soft null produced by branching constructs.
type T struct{}

type null = T

// Null is the only null value.
//
//nolint:gochecknoglobals
var Null = &null{}

// Equal returns true if h is a null.
func (n *null) Equal(h heart.I) bool {
	return Is(h)
}

// Literal returns the literal representation of the null n.
func (n *null) Literal() string {
	return "null"
}

// Name returns the type name for the null n.
func (n *null) Name() string {
	return name
}

// Is returns true if h is a null.
func Is(h heart.I) bool {
	_, ok := h.(*null)

	return ok
}
