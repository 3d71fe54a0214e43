// Released under an MIT license. See LICENSE.

// Package cell provides ren's polymorphic value slot.
//
// A cell pairs a payload (its heart) with an escape state: a quoting
// depth from 0 to 126 and, at any depth, a plain or quasi flavor. The
// isotopic flavor only exists at depth 0. Isotopes may never sit in an
// array slot; variables may transiently hold a stable isotope.
package cell

import (
	"strings"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/literal"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/truth"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/blank"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/end"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/hole"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/logic"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/null"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/unset"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/void"
)

// MaxDepth is the deepest a value can be quoted.
const MaxDepth = 126

type form byte

const (
	plainForm form = iota
	quasiForm
	isotopeForm
)

// T (cell) is a fixed-size value slot.
type T struct {
	heart heart.I
	depth byte
	form  form
}

type cell = T

// Unstable is implemented by payload types whose isotopic form may not
// be stored, even in a variable.
type Unstable interface {
	UnstableIsotope()
}

// New creates a plain cell for the heart h.
func New(h heart.I) cell {
	return cell{heart: h}
}

// Quasi creates a quasiform cell for the heart h.
func Quasi(h heart.I) cell {
	return cell{heart: h, form: quasiForm}
}

// Isotopic creates an isotopic cell for the heart h.
func Isotopic(h heart.I) cell {
	return cell{heart: h, form: isotopeForm}
}

// Distinguished values.

// EndSignal is the isotope an endable parameter receives when its input
// slot is exhausted.
func EndSignal() cell {
	return Isotopic(end.End)
}

// False is the plain false value.
func False() cell {
	return New(logic.False)
}

// Null is the plain null value.
func Null() cell {
	return New(null.Null)
}

// SoftNull is the null isotope produced by branching constructs. It
// reacts with then but not with else.
func SoftNull() cell {
	return Isotopic(null.Null)
}

// True is the plain true value.
func True() cell {
	return New(logic.True)
}

// Unset is the empty-label isotope held by variables that have not been
// assigned.
func Unset() cell {
	return Isotopic(unset.Unset)
}

// Voided is the isotope left behind by expressions with invisible intent.
func Voided() cell {
	return Isotopic(void.Void)
}

// State inspection.

// Depth returns the quoting depth of the cell c.
func (c cell) Depth() int {
	return int(c.depth)
}

// Heart returns the payload of the cell c.
func (c cell) Heart() heart.I {
	return c.heart
}

// IsIsotope returns true if the cell c is in isotopic form.
func (c cell) IsIsotope() bool {
	return c.form == isotopeForm
}

// IsPlain returns true if the cell c is unquoted and not quasi or isotopic.
func (c cell) IsPlain() bool {
	return c.form == plainForm && c.depth == 0
}

// IsQuasi returns true if the cell c is a quasiform at any depth.
func (c cell) IsQuasi() bool {
	return c.form == quasiForm
}

// IsQuoted returns true if the cell c has a quoting depth above zero.
func (c cell) IsQuoted() bool {
	return c.depth > 0
}

// State transitions.

// Quotify returns the cell c with n more quote levels.
// Quoting an isotope or exceeding MaxDepth is a failure.
func (c cell) Quotify(n int) cell {
	if c.form == isotopeForm {
		failure.Raise(failure.Isotope, "cannot quote a %s isotope", Label(c))
	}

	if int(c.depth)+n > MaxDepth {
		failure.Raise(failure.QuoteDepth, "quoting level cannot exceed %d", MaxDepth)
	}

	c.depth += byte(n)

	return c
}

// Unquotify returns the cell c with n fewer quote levels.
// Removing more levels than the cell has is a failure.
func (c cell) Unquotify(n int) cell {
	if n > int(c.depth) {
		failure.Raise(failure.QuoteDepth, "cannot remove %d quoting levels from depth %d", n, c.depth)
	}

	c.depth -= byte(n)

	return c
}

// Reify turns an isotope into its quasi form.
func (c cell) Reify() cell {
	if c.form != isotopeForm {
		failure.Raise(failure.Isotope, "cannot reify a non-isotope %s", c.heart.Name())
	}

	c.form = quasiForm

	return c
}

// Degrade turns an unquoted quasiform back into an isotope.
func (c cell) Degrade() cell {
	if c.form != quasiForm || c.depth != 0 {
		failure.Raise(failure.Isotope, "cannot degrade a non-quasi %s", c.heart.Name())
	}

	c.form = isotopeForm

	return c
}

// Concretize turns a quasiform into its plain counterpart.
func (c cell) Concretize() cell {
	if c.form != quasiForm {
		failure.Raise(failure.Isotope, "cannot concretize a non-quasi %s", c.heart.Name())
	}

	c.form = plainForm

	return c
}

// MetaQuotify moves the cell c into the inspectable domain: an isotope
// becomes its quasi form, anything else gains one quote level.
func (c cell) MetaQuotify() cell {
	if c.form == isotopeForm {
		return c.Reify()
	}

	return c.Quotify(1)
}

// MetaUnquotify is the exact inverse of MetaQuotify.
func (c cell) MetaUnquotify() cell {
	if c.form == quasiForm && c.depth == 0 {
		return c.Degrade()
	}

	return c.Unquotify(1)
}

// Functions on cells.

// Decay maps the named isotopes null, blank, false, and blackhole to
// their ordinary equivalents and passes everything else through. It is
// idempotent.
func Decay(c cell) cell {
	if c.form != isotopeForm {
		return c
	}

	switch h := c.heart.(type) {
	case *null.T, *blank.T, *hole.T:
		return New(c.heart)
	case *logic.T:
		if !h.Bool() {
			return New(c.heart)
		}
	}

	return c
}

// Equal returns true if the cells a and b have the same state and
// equal payloads.
func Equal(a, b cell) bool {
	return a.form == b.form && a.depth == b.depth && a.heart.Equal(b.heart)
}

// Label returns the label of an isotope: the empty string for the
// unset isotope, otherwise the payload's literal spelling.
func Label(c cell) string {
	if l, ok := c.heart.(literal.I); ok {
		return l.Literal()
	}

	return c.heart.Name()
}

// Stable returns true if the cell c may be stored in a variable.
// Packs, raised errors, and lazy objects are the unstable isotopes.
func Stable(c cell) bool {
	if c.form != isotopeForm {
		return true
	}

	_, unstable := c.heart.(Unstable)

	return !unstable
}

// Truthy returns the truth value of the cell c. Quoted and quasi values
// are truthy. Plain null and plain blank are falsey. Logic carries its
// boolean in any form. Every other isotope is neither true nor false
// and asking is a failure.
func Truthy(c cell) bool {
	if c.depth > 0 || c.form == quasiForm {
		return true
	}

	if l, ok := c.heart.(truth.I); ok {
		return l.Bool()
	}

	if c.form == isotopeForm {
		failure.Raise(failure.Isotope, "%s isotope is neither true nor false", Label(c))
	}

	switch c.heart.(type) {
	case *null.T, *blank.T:
		return false
	}

	return true
}

// Name returns a type name for the cell c, qualified by its state.
func (c cell) Name() string {
	n := c.heart.Name()

	switch c.form {
	case quasiForm:
		n = "quasi " + n
	case isotopeForm:
		n = n + " isotope"
	}

	if c.depth > 0 {
		n = "quoted " + n
	}

	return n
}

// Literal returns the literal representation of the cell c. Isotopes
// are shown in their quasi form; the caller notes isotopic status.
func Literal(c cell) string {
	s := literal.String(c.heart)

	if c.form != plainForm {
		s = "~" + s + "~"
	}

	return strings.Repeat("'", int(c.depth)) + s
}
