// Released under an MIT license. See LICENSE.

// Package unset provides ren's unset payload type.
package unset

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
)

const name = "unset"

// T (unset) is the empty-label payload. A variable holding its isotopic
// form has not been assigned a value.
type T struct{}

type unsetT = T

// Unset is the only unset value.
//
//nolint:gochecknoglobals
var Unset = &unsetT{}

// Equal returns true if h is an unset.
func (u *unsetT) Equal(h heart.I) bool {
	return Is(h)
}

// Literal returns the literal representation of the unset u.
func (u *unsetT) Literal() string {
	return ""
}

// Name returns the type name for the unset u.
func (u *unsetT) Name() string {
	return name
}

// Is returns true if h is an unset.
func Is(h heart.I) bool {
	_, ok := h.(*unsetT)

	return ok
}
