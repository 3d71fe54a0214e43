// Released under an MIT license. See LICENSE.

// Package logic provides ren's boolean payload type.
package logic

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/literal"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/truth"
)

const name = "logic"

// T (logic) wraps Go's bool type.
type T bool

type logic = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool creates a new logic from the bool b.
func Bool(b bool) heart.I {
	if b {
		return True
	}

	return False
}

// Bool returns the boolean value of the logic l.
func (l *logic) Bool() bool {
	return bool(*l)
}

// Equal returns true if h is a logic with a matching value.
func (l *logic) Equal(h heart.I) bool {
	return Is(h) && l.Bool() == To(h).Bool()
}

// Literal returns the literal representation of the logic l.
func (l *logic) Literal() string {
	return l.String()
}

// Name returns the type name for the logic l.
func (l *logic) Name() string {
	return name
}

// String returns the text of the logic l.
func (l *logic) String() string {
	if l.Bool() {
		return "true"
	}

	return "false"
}

// Is returns true if h is a logic.
func Is(h heart.I) bool {
	_, ok := h.(*logic)

	return ok
}

// To returns a logic if h is a logic; Otherwise it panics.
func To(h heart.I) *logic {
	if l, ok := h.(*logic); ok {
		return l
	}

	panic(h.Name() + " cannot be used in a logic context")
}

func f() *logic {
	l := logic(false)

	return &l
}

func t() *logic {
	l := logic(true)

	return &l
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t logic

	// The logic type is a heart.
	_ = heart.I(&t)

	// The logic type has a literal representation.
	_ = literal.I(&t)

	// The logic type is a stringer.
	_ = common.Stringer(&t)

	// The logic type has a truth value.
	_ = truth.I(&t)
}
