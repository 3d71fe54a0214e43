// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/array"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/keylist"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/param"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/vars"
)

const name = "action"

// Action is an invocable value. Its exemplar context describes the
// arguments it gathers: a slot holding a param gathers one, any other
// slot has been specialized to that value. Slot 0 of its details array
// is a cell referring back to the action itself, which is its identity.
//
// A derived action records the action it wraps as its inner. Everything
// about an action is immutable after creation except its dispatch
// function, which Hijack may replace globally.
type Action struct {
	dispatch Dispatch
	details  *array.T
	exemplar *vars.T
	partials *array.T
	meta     *vars.T
	inner    *Action
}

// NewAction creates an action with the dispatch function d, the
// exemplar context ex, the wrapped action inner (nil for a leaf), and
// any extra details cells the dispatch function needs.
func NewAction(d Dispatch, ex *vars.T, inner *Action, extra ...cell.T) *Action {
	a := &Action{dispatch: d, exemplar: ex, inner: inner}

	cs := make([]cell.T, len(extra)+1)
	copy(cs[1:], extra)

	a.details = array.New(cs...)
	a.details.Set(0, cell.New(a))

	ex.SetPhase(a)
	ex.Hold()

	return a
}

// Details returns the details array of the action a.
func (a *Action) Details() *array.T {
	return a.details
}

// Dispatch returns the current dispatch function of the action a.
func (a *Action) Dispatch() Dispatch {
	return a.dispatch
}

// Equal returns true if h is this same action.
func (a *Action) Equal(h heart.I) bool {
	o, ok := h.(*Action)

	return ok && o == a
}

// Exemplar returns the exemplar context of the action a.
func (a *Action) Exemplar() *vars.T {
	return a.exemplar
}

// Hijack redirects the action a to behave as the donor d, everywhere
// a is referenced, including buried inside derived actions. Identity
// and parameter shape stay a's own. When the donor can run a's frames
// directly, its behavior moves in wholesale; otherwise a becomes a
// proxy that forwards its gathered arguments to the donor.
func (a *Action) Hijack(d *Action) {
	if keylist.Derived(a.Keys(), d.Keys()) {
		det := array.New(d.details.Slice(0)...)
		det.Set(0, cell.New(a))

		a.dispatch = d.dispatch
		a.details = det
		a.inner = d.inner

		return
	}

	det := array.New(cell.T{}, cell.New(d))
	det.Set(0, cell.New(a))

	a.dispatch = hijackedDispatch
	a.details = det
	a.inner = nil
}

// hijackedDispatch runs the donor in details slot 1 in its own frame,
// forwarding the arguments this frame gathered.
func hijackedDispatch(m *T, f *Frame) Bounce {
	switch f.state {
	case StateDispatching:
		f.state = StateDispatcherBase

		donor := f.action.Details().At(1).Heart().(*Action)

		return Continue{Frame: m.PrefilledFrame(donor, f.Gathered())}

	case StateDispatcherBase:
		return Done{Value: f.out}
	}

	return Unhandled{}
}

// Inner returns the action a wraps, or nil for a leaf.
func (a *Action) Inner() *Action {
	return a.inner
}

// Keys returns the keylist shaping invocations of the action a.
func (a *Action) Keys() *keylist.T {
	return a.exemplar.Keys()
}

// Literal returns the literal representation of the action a: its name
// and the slots a caller supplies. Specialized, sealed, and local slots
// are not part of the visible interface.
func (a *Action) Literal() string {
	s := "(action"

	ks := a.Keys()
	for i := 0; i < ks.Len(); i++ {
		p := a.ParamAt(i + 1)
		if p == nil || p.Has(param.Return) || p.Has(param.Local) || p.Has(param.Sealed) {
			continue
		}

		s += " " + ks.At(i).String()
	}

	return s + ")"
}

// Meta returns the metadata context of the action a, or nil.
func (a *Action) Meta() *vars.T {
	return a.meta
}

// Name returns the type name for the action a.
func (a *Action) Name() string {
	return name
}

// ParamAt returns the param in exemplar slot i (a varlist index), or
// nil if the slot has been specialized to a value.
func (a *Action) ParamAt(i int) *param.T {
	c := a.exemplar.At(i)
	if c.IsPlain() && param.Is(c.Heart()) {
		return param.To(c.Heart())
	}

	return nil
}

// Partials returns the overlay of pre-applied arguments, or nil.
func (a *Action) Partials() *array.T {
	return a.partials
}

// ReturnParam returns the param constraining what the action a may
// return, or nil if it has no return slot.
func (a *Action) ReturnParam() *param.T {
	ks := a.Keys()

	for i := 0; i < ks.Len(); i++ {
		p := a.ParamAt(i + 1)
		if p != nil && p.Has(param.Return) {
			return p
		}
	}

	return nil
}

// SetMeta attaches the metadata context mv to the action a.
func (a *Action) SetMeta(mv *vars.T) {
	a.meta = mv
}

// SetPartials attaches the overlay of pre-applied arguments. Cells
// alternate symbol words and values.
func (a *Action) SetPartials(ov *array.T) {
	a.partials = ov
}

// String returns the text representation of the action a.
func (a *Action) String() string {
	return a.Literal()
}

// Underlying returns the leaf action at the bottom of the derivation
// chain of a. The leaf fixes the return law for every phase above it.
func (a *Action) Underlying() *Action {
	for a.inner != nil {
		a = a.inner
	}

	return a
}

// IsBaseOf returns true if derived descends from base: every frame
// built for derived can be run by base.
func IsBaseOf(base, derived *Action) bool {
	return keylist.Derived(derived.Keys(), base.Keys())
}
