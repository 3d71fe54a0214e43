// Released under an MIT license. See LICENSE.

// Package vars provides ren's context type: a varlist of value slots
// paired with a keylist of symbols.
package vars

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/array"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/keylist"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
)

const name = "frame"

// T (vars) is a context. Slot 0 of the varlist is a self-referential
// archetype; the cell for the symbol at keylist index i lives at
// varlist index i+1. The phase records which action archetype this
// context instantiates, when any.
type T struct {
	keys  *keylist.T
	vl    *array.T
	phase heart.I
	held  bool
}

type vars = T

// New creates a context shaped by the keylist ks with every slot unset.
func New(ks *keylist.T) *vars {
	v := &vars{keys: ks, vl: array.Varlist(ks.Len() + 1)}

	v.vl.Set(0, cell.New(v))

	return v
}

// Over creates a context over an existing varlist.
func Over(ks *keylist.T, vl *array.T) *vars {
	v := &vars{keys: ks, vl: vl}

	v.vl.Set(0, cell.New(v))

	return v
}

// Accessible returns false once the backing varlist has been detached.
func (v *vars) Accessible() bool {
	return v.vl.Accessible()
}

// Append grows the context by one slot. Only contexts with unshared
// keylists, like the user context, should grow.
func (v *vars) Append(s *sym.T, c cell.T) {
	if v.keys.IndexOf(s) >= 0 {
		failure.Raise(failure.Argument, "%s is already present in this context", s.String())
	}

	v.keys.Append(s)
	v.vl.Append(c)
}

// At returns the cell at varlist index i.
func (v *vars) At(i int) cell.T {
	return v.vl.At(i)
}

// Copy creates an independent context with the same keylist and a
// fresh copy of every slot.
func (v *vars) Copy() *vars {
	fresh := &vars{keys: v.keys, vl: v.vl.Copy(), phase: v.phase}

	fresh.vl.Set(0, cell.New(fresh))

	return fresh
}

// Detach marks the backing varlist permanently inaccessible.
func (v *vars) Detach() {
	v.vl.Detach()
}

// Equal returns true if h is this same context.
func (v *vars) Equal(h heart.I) bool {
	o, ok := h.(*vars)

	return ok && o == v
}

// Get returns the cell for the symbol s and true, or false if absent.
func (v *vars) Get(s *sym.T) (cell.T, bool) {
	i := v.Index(s)
	if i < 0 {
		return cell.T{}, false
	}

	return v.vl.At(i), true
}

// Held returns true if the context has been handed out as a value and
// must outlive its originating frame.
func (v *vars) Held() bool {
	return v.held
}

// Hold marks the context as externally referenced.
func (v *vars) Hold() {
	v.held = true
}

// Index returns the varlist index for the symbol s, or -1.
func (v *vars) Index(s *sym.T) int {
	i := v.keys.IndexOf(s)
	if i < 0 {
		return -1
	}

	return i + 1
}

// Keys returns the keylist shaping the context v.
func (v *vars) Keys() *keylist.T {
	return v.keys
}

// Len returns the number of named slots in the context v.
func (v *vars) Len() int {
	return v.keys.Len()
}

// Literal returns the literal representation of the context v.
func (v *vars) Literal() string {
	s := "(frame"

	for i := 0; i < v.keys.Len(); i++ {
		s += " " + v.keys.At(i).String()
	}

	return s + ")"
}

// Name returns the type name for the context v.
func (v *vars) Name() string {
	return name
}

// Phase returns the action archetype this context instantiates, or nil.
func (v *vars) Phase() heart.I {
	return v.phase
}

// Set replaces the cell at varlist index i. The varlist enforces the
// rule that only stable isotopes may be stored.
func (v *vars) Set(i int, c cell.T) {
	v.vl.Set(i, c)
}

// SetPhase rewrites which action archetype this context instantiates.
func (v *vars) SetPhase(h heart.I) {
	v.phase = h
}

// Varlist returns the backing array of the context v.
func (v *vars) Varlist() *array.T {
	return v.vl
}

// UnstableIsotope marks the isotopic form of a context (a lazy object)
// as unstorable.
func (v *vars) UnstableIsotope() {}

// Move transfers ownership of the varlist of v to a new context and
// leaves v with a permanently inaccessible placeholder. References to
// v stay structurally valid but every operation on them fails.
func Move(v *vars) *vars {
	moved := &vars{keys: v.keys, vl: v.vl, phase: v.phase, held: v.held}
	moved.vl.Set(0, cell.New(moved))

	stub := array.Varlist(0)
	stub.Detach()
	v.vl = stub

	return moved
}

// Is returns true if h is a context.
func Is(h heart.I) bool {
	_, ok := h.(*vars)

	return ok
}

// To returns a context if h is a context; Otherwise it panics.
func To(h heart.I) *vars {
	if v, ok := h.(*vars); ok {
		return v
	}

	panic(h.Name() + " cannot be used in a frame context")
}
