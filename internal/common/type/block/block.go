// Released under an MIT license. See LICENSE.

// Package block provides ren's block and group payload types.
package block

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/literal"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/array"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
)

// Kind distinguishes blocks, which evaluate to themselves, from
// groups, which evaluate eagerly.
type Kind byte

// Block flavors.
const (
	Plain Kind = iota
	Group
)

// T (block) is a reference to a backing array of cells.
type T struct {
	arr  *array.T
	kind Kind
}

type block = T

// New creates a block over the array a.
func New(a *array.T) *block {
	return &block{arr: a}
}

// NewGroup creates a group over the array a.
func NewGroup(a *array.T) *block {
	return &block{arr: a, kind: Group}
}

// Array returns the backing array of the block b.
func (b *block) Array() *array.T {
	return b.arr
}

// Equal returns true if h is a block of the same kind with equal cells.
func (b *block) Equal(h heart.I) bool {
	if !Is(h) || To(h).kind != b.kind {
		return false
	}

	o := To(h).arr
	if b.arr.Len() != o.Len() {
		return false
	}

	for i := 0; i < b.arr.Len(); i++ {
		if !cell.Equal(b.arr.At(i), o.At(i)) {
			return false
		}
	}

	return true
}

// Kind returns the flavor of the block b.
func (b *block) Kind() Kind {
	return b.kind
}

// Literal returns the literal representation of the block b.
func (b *block) Literal() string {
	l, r := "[", "]"
	if b.kind == Group {
		l, r = "(", ")"
	}

	s := l

	if b.arr.Accessible() {
		for i := 0; i < b.arr.Len(); i++ {
			if i > 0 {
				s += " "
			}

			s += cell.Literal(b.arr.At(i))
		}
	} else {
		s += "..."
	}

	return s + r
}

// Name returns the type name for the block b.
func (b *block) Name() string {
	if b.kind == Group {
		return "group"
	}

	return "block"
}

// String returns the text representation of the block b.
func (b *block) String() string {
	return b.Literal()
}

// UnstableIsotope marks the isotopic form of a block (a pack) as
// unstorable.
func (b *block) UnstableIsotope() {}

// Is returns true if h is a block or group.
func Is(h heart.I) bool {
	_, ok := h.(*block)

	return ok
}

// To returns a block if h is a block or group; Otherwise it panics.
func To(h heart.I) *block {
	if b, ok := h.(*block); ok {
		return b
	}

	panic(h.Name() + " cannot be used in a block context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t block

	// The block type is a heart.
	_ = heart.I(&t)

	// The block type has a literal representation.
	_ = literal.I(&t)

	// The block type is a stringer.
	_ = common.Stringer(&t)
}
