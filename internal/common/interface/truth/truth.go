// Released under an MIT license. See LICENSE.

// Package truth defines the interface for ren types that carry an intrinsic truth value.
package truth

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
)

// I (truth) is anything that evaluates to a true or false value on its own.
type I interface {
	Bool() bool
}

// Value returns the truth value for a heart, if possible.
func Value(h heart.I) bool {
	b, ok := h.(I)
	if !ok {
		panic(h.Name() + " cannot be used in a boolean context")
	}

	return b.Bool()
}
