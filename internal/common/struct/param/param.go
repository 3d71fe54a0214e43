// Released under an MIT license. See LICENSE.

// Package param provides the description of one argument or local slot.
package param

import (
	"strings"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
)

const name = "parameter"

// Class holds the parameter-class flags.
type Class uint16

// Parameter classes. A sealed parameter belonged to an action before it
// was augmented and cannot be confused with appended parameters.
const (
	Normal Class = 1 << iota
	Output
	Variadic
	Endable
	Skippable
	Local
	Return
	Sealed
)

// T (param) describes one keylist/varlist slot: its class flags and the
// set of heart names its argument may have. An exemplar slot holding a
// param gathers an argument; a slot holding anything else has been
// specialized to that value.
type T struct {
	class Class
	types []string
	note  string
}

type param = T

// New creates a param with the class flags cs and type constraints ts.
// An empty constraint set admits any stable value.
func New(cs Class, ts ...string) *param {
	return &param{class: cs, types: ts}
}

// Check raises a type-mismatch failure unless the cell c satisfies the
// constraint set of the param p.
func (p *param) Check(c cell.T) {
	if len(p.types) == 0 {
		return
	}

	n := c.Heart().Name()

	for _, t := range p.types {
		if t == "any-value" || t == n {
			return
		}
	}

	failure.Raise(failure.TypeMismatch, "%s does not match [%s]", c.Name(), strings.Join(p.types, " "))
}

// Class returns the class flags of the param p.
func (p *param) Class() Class {
	return p.class
}

// Equal returns true if h is this same param.
func (p *param) Equal(h heart.I) bool {
	o, ok := h.(*param)

	return ok && o == p
}

// Has returns true if the param p has all the class flags in cs.
func (p *param) Has(cs Class) bool {
	return p.class&cs == cs
}

// Literal returns the literal representation of the param p.
func (p *param) Literal() string {
	return "(parameter [" + strings.Join(p.types, " ") + "])"
}

// Matches returns true if the cell c satisfies the constraint set
// without raising.
func (p *param) Matches(c cell.T) bool {
	if len(p.types) == 0 {
		return true
	}

	n := c.Heart().Name()

	for _, t := range p.types {
		if t == "any-value" || t == n {
			return true
		}
	}

	return false
}

// Name returns the type name for the param p.
func (p *param) Name() string {
	return name
}

// Note returns the description attached to the param p.
func (p *param) Note() string {
	return p.note
}

// Seal returns a copy of the param p marked sealed.
func (p *param) Seal() *param {
	s := *p
	s.class |= Sealed

	return &s
}

// SetNote attaches a description to the param p.
func (p *param) SetNote(s string) {
	p.note = s
}

// Types returns the constraint set of the param p.
func (p *param) Types() []string {
	return p.types
}

// Is returns true if h is a param.
func Is(h heart.I) bool {
	_, ok := h.(*param)

	return ok
}

// To returns a param if h is a param; Otherwise it panics.
func To(h heart.I) *param {
	if p, ok := h.(*param); ok {
		return p
	}

	panic(h.Name() + " cannot be used in a parameter context")
}
