// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/vars"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
)

// State records how far a frame has progressed. Invocation frames move
// through the fixed states below; a dispatch function owns every state
// from StateDispatcherBase up and may advance through as many of them
// as it needs. Stepper frames reuse the same type for their own,
// smaller progression.
type State int

// Invocation frame states.
const (
	StateInitialEntry State = iota
	StateFulfilling
	StateTypechecking
	StateDispatching
	StateDispatcherBase
)

// Dispatch advances the frame f by one step and reports what the
// machine should do next. It must not call another dispatcher.
type Dispatch func(m *T, f *Frame) Bounce

// Frame is one level of the machine's chain. A stepper frame walks
// source cells from its feed; an invocation frame gathers arguments
// into a fresh context and then runs an action's dispatch function.
type Frame struct {
	prior *Frame
	state State
	out   cell.T

	dispatch Dispatch
	feed     *Feed
	single   bool

	// Invocation bookkeeping.
	action   *Action // Executing phase; rewritten by delegation.
	original *Action // Identity as invoked; never rewritten.
	base     *Action // Underlying action fixing the return law.
	vars     *vars.T
	label    *sym.T
	arg      int
	pending  bool
	varargs  []cell.T
	variadic bool
	catches  bool

	pend *sym.T
}

// StepperFrame creates a frame over the current top that evaluates
// expressions from the feed fd. A single-step frame finishes after one
// full expression; otherwise it runs the feed to exhaustion and its
// result is the last expression's value.
func (m *T) StepperFrame(fd *Feed, single bool) *Frame {
	return &Frame{
		prior:    m.top,
		dispatch: stepBlock,
		feed:     fd,
		single:   single,
		out:      cell.Voided(),
	}
}

// InvocationFrame creates a frame over the current top that applies the
// action act, gathering arguments from the feed fd. The label is the
// word the action was invoked through, when there was one.
func (m *T) InvocationFrame(act *Action, label *sym.T, fd *Feed) *Frame {
	v := vars.New(act.Keys())
	v.SetPhase(act)
	m.arena.Track(v.Varlist())

	return &Frame{
		prior:    m.top,
		dispatch: invoke,
		feed:     fd,
		action:   act,
		original: act,
		base:     act.Underlying(),
		vars:     v,
		label:    label,
	}
}

// PrefilledFrame creates an invocation frame whose argument slots are
// already populated, skipping gathering. Slots beyond the supplied args
// stay unset.
func (m *T) PrefilledFrame(act *Action, args []cell.T) *Frame {
	f := m.InvocationFrame(act, nil, nil)
	f.state = StateTypechecking

	ex := act.Exemplar()
	for i := 1; i <= f.vars.Len(); i++ {
		if act.ParamAt(i) == nil {
			f.vars.Set(i, ex.At(i))
		}
	}

	i := 1

	for _, c := range args {
		for i <= f.vars.Len() && !gathers(act.ParamAt(i)) {
			i++
		}

		if i > f.vars.Len() {
			failure.Raise(failure.Argument, "too many values for %s", act.Name())
		}

		f.vars.Set(i, c)
		i++
	}

	return f
}

// Accessors used by dispatch functions in other packages.

// Action returns the phase the frame f is executing.
func (f *Frame) Action() *Action {
	return f.action
}

// Arg returns the value of the frame's i'th named slot, counting from 1.
func (f *Frame) Arg(i int) cell.T {
	return f.vars.At(i)
}

// Catch marks the frame f as a recovery point for raised failures.
func (f *Frame) Catch() {
	f.catches = true
}

// Gathered returns the values of the slots the frame's action gathers,
// in slot order.
func (f *Frame) Gathered() []cell.T {
	args := []cell.T{}

	for i := 1; i <= f.vars.Len(); i++ {
		if gathers(f.action.ParamAt(i)) {
			args = append(args, f.vars.At(i))
		}
	}

	return args
}

// Label returns the word the frame's action was invoked through, or nil.
func (f *Frame) Label() *sym.T {
	return f.label
}

// Original returns the action identity the frame f was invoked as.
func (f *Frame) Original() *Action {
	return f.original
}

// Out returns the result delivered by the frame's last continuation.
func (f *Frame) Out() cell.T {
	return f.out
}

// SetState moves the frame f to the dispatcher-owned state s.
func (f *Frame) SetState(s State) {
	f.state = s
}

// State returns the current state of the frame f.
func (f *Frame) State() State {
	return f.state
}

// Vars returns the argument context of the frame f, or nil for stepper
// frames.
func (f *Frame) Vars() *vars.T {
	return f.vars
}
