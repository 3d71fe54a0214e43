// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/param"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/unset"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/word"
)

// invoke is the dispatch function for invocation frames.
//
// Result: the action's result, in f.out.
// Requires: f.action, f.vars; f.feed when arguments must be gathered.
func invoke(m *T, f *Frame) Bounce {
	if f.state == StateInitialEntry {
		applyPartials(f)

		f.arg = 1
		f.state = StateFulfilling
	}

	if f.state == StateFulfilling {
		if b := fulfill(m, f); b != nil {
			return b
		}

		f.state = StateTypechecking
	}

	if f.state == StateTypechecking {
		typecheck(f)

		f.state = StateDispatching
	}

	return f.action.Dispatch()(m, f)
}

// applyPartials copies an action's pre-applied arguments into their
// slots before gathering begins. Fulfillment skips slots that are no
// longer unset.
func applyPartials(f *Frame) {
	ov := f.action.Partials()
	if ov == nil {
		return
	}

	for i := 0; i+1 < ov.Len(); i += 2 {
		s := word.To(ov.At(i).Heart()).Sym()

		j := f.vars.Index(s)
		if j < 0 {
			failure.Raise(failure.Argument, "%s is not a slot of this action", s.String())
		}

		f.vars.Set(j, ov.At(i+1))
	}
}

// fulfill fills argument slots left to right, resuming where it left
// off each time an evaluation it started completes. It returns nil
// when every slot is filled.
func fulfill(m *T, f *Frame) Bounce {
	ex := f.action.Exemplar()

	for f.arg <= f.vars.Len() {
		i := f.arg

		if f.pending {
			f.pending = false

			if f.variadic {
				f.varargs = append(f.varargs, f.out)

				continue
			}

			f.vars.Set(i, f.out)
			f.arg++

			continue
		}

		slot := ex.At(i)

		p := f.action.ParamAt(i)
		if p == nil {
			f.vars.Set(i, slot)
			f.arg++

			continue
		}

		if p.Has(param.Return) || p.Has(param.Local) {
			f.arg++

			continue
		}

		if !isUnset(f.vars.At(i)) {
			// Pre-applied by a partials overlay.
			f.arg++

			continue
		}

		if p.Has(param.Variadic) {
			if f.feed != nil && f.feed.More() {
				f.pending = true
				f.variadic = true

				return Continue{m.StepperFrame(f.feed, true)}
			}

			f.vars.Set(i, cell.New(block.New(m.arena.Array(f.varargs...))))
			f.varargs = nil
			f.variadic = false
			f.arg++

			continue
		}

		if f.feed == nil || !f.feed.More() {
			if p.Has(param.Endable) {
				f.vars.Set(i, cell.EndSignal())
				f.arg++

				continue
			}

			failure.Raise(failure.Argument, "%s is missing its %s argument",
				label(f), f.vars.Keys().At(i-1).String())
		}

		if p.Has(param.Skippable) && !p.Matches(f.feed.Peek()) {
			f.vars.Set(i, cell.SoftNull())
			f.arg++

			continue
		}

		f.pending = true

		return Continue{m.StepperFrame(f.feed, true)}
	}

	return nil
}

// typecheck verifies every gathered argument against its param. The
// isotopes produced when a slot goes unfilled are exempt.
func typecheck(f *Frame) {
	for i := 1; i <= f.vars.Len(); i++ {
		p := f.action.ParamAt(i)
		if p == nil || p.Has(param.Return) || p.Has(param.Local) {
			continue
		}

		v := f.vars.At(i)

		if v.IsIsotope() {
			if p.Has(param.Endable) && end(v) {
				continue
			}

			if p.Has(param.Skippable) && softNull(v) {
				continue
			}
		}

		p.Check(v)
	}
}

// gathers returns true if the param p describes a slot that receives a
// caller-supplied value.
func gathers(p *param.T) bool {
	return p != nil && !p.Has(param.Return) && !p.Has(param.Local)
}

func isUnset(c cell.T) bool {
	return c.IsIsotope() && unset.Is(c.Heart())
}

func softNull(c cell.T) bool {
	return cell.Equal(c, cell.SoftNull())
}

func end(c cell.T) bool {
	return cell.Equal(c, cell.EndSignal())
}

func label(f *Frame) string {
	if f.label != nil {
		return f.label.String()
	}

	return f.action.Name()
}
