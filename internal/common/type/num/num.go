// Released under an MIT license. See LICENSE.

// Package num provides ren's rational number payload type.
package num

import (
	"math/big"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/literal"
)

const name = "number"

// T (num) wraps Go's big.Rat type.
type T big.Rat

type num = T

// New creates a new num from a string.
func New(s string) heart.I {
	v := &big.Rat{}

	if _, ok := v.SetString(s); !ok {
		panic("'" + s + "' is not a valid number")
	}

	return Rat(v)
}

// Int creates a num from the integer i.
func Int(i int64) heart.I {
	return Rat(big.NewRat(i, 1))
}

// Rat wraps the *big.Rat r as a num.
func Rat(r *big.Rat) heart.I {
	return (*num)(r)
}

// Equal returns true if h is the same number as the num n.
func (n *num) Equal(h heart.I) bool {
	return Is(h) && n.Rat().Cmp(To(h).Rat()) == 0
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Rat returns the value of the num n as a *big.Rat.
func (n *num) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.Rat().RatString()
}

// Functions specific to num.

// Abs returns the absolute value of the num h.
func Abs(h heart.I) heart.I {
	return Rat(new(big.Rat).Abs(To(h).Rat()))
}

// Add returns the sum of the nums a and b.
func Add(a, b heart.I) heart.I {
	return Rat(new(big.Rat).Add(To(a).Rat(), To(b).Rat()))
}

// Cmp compares the nums a and b, returning -1, 0, or 1.
func Cmp(a, b heart.I) int {
	return To(a).Rat().Cmp(To(b).Rat())
}

// Mul returns the product of the nums a and b.
func Mul(a, b heart.I) heart.I {
	return Rat(new(big.Rat).Mul(To(a).Rat(), To(b).Rat()))
}

// Sub returns the difference of the nums a and b.
func Sub(a, b heart.I) heart.I {
	return Rat(new(big.Rat).Sub(To(a).Rat(), To(b).Rat()))
}

// Is returns true if h is a num.
func Is(h heart.I) bool {
	_, ok := h.(*num)

	return ok
}

// To returns a num if h is a num; Otherwise it panics.
func To(h heart.I) *num {
	if n, ok := h.(*num); ok {
		return n
	}

	panic(h.Name() + " cannot be used in a number context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a heart.
	_ = heart.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
