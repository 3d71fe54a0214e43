// Released under an MIT license. See LICENSE.

// Package literal defines the interface for ren types that can be expressed as literals.
package literal

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a heart, if possible.
func String(h heart.I) string {
	l, ok := h.(I)
	if !ok {
		// Not all payload types can be expressed as literals.
		panic(h.Name() + " does not have a literal representation")
	}

	return l.Literal()
}
