// Released under an MIT license. See LICENSE.

// Package common defines common interfaces.
package common

import (
	"fmt"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
)

type Stringer = fmt.Stringer

// String returns the string value for a heart, if possible.
func String(h heart.I) string {
	s, ok := h.(Stringer)
	if !ok {
		panic(h.Name() + " cannot be used in a string context")
	}

	return s.String()
}
