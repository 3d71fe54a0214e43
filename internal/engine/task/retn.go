// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/keylist"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/vars"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/num"
)

// ReturnBounce type-checks the value v against the return law of the
// nearest enclosing definitional scope and then constructs the unwind
// to it. The law belongs to the underlying action, not the phase that
// happens to be executing: composed phases cannot loosen it. The check
// runs before the throw exists, so a violation raises in place.
func (m *task) ReturnBounce(from *Frame, v cell.T) Bounce {
	for f := from.prior; f != nil; f = f.prior {
		if f.vars == nil || f.base == nil {
			continue
		}

		p := f.base.ReturnParam()
		if p == nil {
			continue
		}

		p.Check(v)

		return Thrown{Target: f, Value: v}
	}

	failure.Raise(failure.Unbound, "return is not bound to an enclosing frame")

	return nil
}

// UnwindBounce constructs a throw to the frame the target names: a
// frame value, a count of invocation frames outward, or an action
// whose nearest invocation is sought.
func (m *task) UnwindBounce(from *Frame, target cell.T, v cell.T) Bounce {
	switch h := target.Heart().(type) {
	case *vars.T:
		for f := from.prior; f != nil; f = f.prior {
			if f.vars == h {
				return Thrown{Target: f, Value: v}
			}
		}

	case *num.T:
		n := wholeOf(h)

		for f := from.prior; f != nil; f = f.prior {
			if f.vars == nil {
				continue
			}

			if n--; n <= 0 {
				return Thrown{Target: f, Value: v}
			}
		}

	case *Action:
		for f := from.prior; f != nil; f = f.prior {
			if f.vars == nil {
				continue
			}

			if f.original == h || IsBaseOf(h, f.original) {
				return Thrown{Target: f, Value: v}
			}
		}

	default:
		failure.Raise(failure.Argument, "cannot unwind to a %s", target.Name())
	}

	failure.Raise(failure.Unbound, "no active frame matches the unwind target")

	return nil
}

// Delegate switches the frame f to the inner phase of its action and
// hands it back to the trampoline, so a run of delegating phases costs
// one bounce per phase rather than Go stack. The frame's storage must
// have been built for the inner phase's shape.
func Delegate(m *T, f *Frame) Bounce {
	inner := f.action.Inner()
	if inner == nil {
		return Unhandled{}
	}

	if !keylist.Derived(f.vars.Keys(), inner.Keys()) {
		failure.Raise(failure.Ancestry, "this frame was not built for %s", inner.Literal())
	}

	f.action = inner
	f.state = StateDispatching

	return Continue{Frame: f}
}

// Capture hands out the argument context of the frame f as a value
// that runs the phase inner. Sharing moves the storage out of the
// frame, leaving it spent; copying leaves the frame intact.
func Capture(f *Frame, inner *Action, share bool) *vars.T {
	var v *vars.T

	if share {
		v = vars.Move(f.vars)
	} else {
		v = f.vars.Copy()
	}

	v.SetPhase(inner)
	v.Hold()

	return v
}

// DoFrame creates an invocation frame that runs the captured context
// v. Running spends the context: copies made beforehand are unaffected,
// but v itself cannot run twice.
func (m *task) DoFrame(v *vars.T) *Frame {
	if !v.Accessible() {
		failure.Raise(failure.Access, "this frame's storage has been moved or detached")
	}

	a, ok := v.Phase().(*Action)
	if !ok || a == nil {
		failure.Raise(failure.Argument, "this frame has no action to run")
	}

	if !keylist.Derived(v.Keys(), a.Keys()) {
		failure.Raise(failure.Ancestry, "this frame was not built for %s", a.Literal())
	}

	run := vars.Move(v)

	return &Frame{
		prior:    m.top,
		dispatch: invoke,
		action:   a,
		original: a,
		base:     a.Underlying(),
		vars:     run,
		state:    StateTypechecking,
	}
}

// wholeOf returns the numeric heart h as a positive int.
func wholeOf(h *num.T) int {
	r := h.Rat()
	if !r.IsInt() || r.Sign() < 1 {
		failure.Raise(failure.Argument, "an unwind count must be a positive whole number")
	}

	return int(r.Num().Int64())
}
