// Released under an MIT license. See LICENSE.

// Package task provides ren's evaluator: a trampoline that dispatches
// a chain of frames without growing the Go stack. Each step runs the
// dispatch function of the top frame and acts on the bounce it returns.
// Recoverable failures are raised as panics and recovered at the step
// boundary; any other panic is an internal error and stays fatal.
package task

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/arena"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/vars"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
)

// T (task) is one machine: a frame chain plus the runtime state every
// frame shares. Machines are cheap; evaluating a group nested inside a
// sequence spins up a fresh one over the same shared state.
type T struct {
	top   *Frame
	outer *T
	user  *vars.T
	syms  *sym.Table
	arena *arena.T
}

type task = T

// New creates a machine over the symbol table st, the arena ar, and
// the user context user.
func New(st *sym.Table, ar *arena.T, user *vars.T) *task {
	return &task{syms: st, arena: ar, user: user}
}

// Arena returns the arena shared by everything this machine allocates.
func (m *task) Arena() *arena.T {
	return m.arena
}

// Syms returns the machine's symbol table.
func (m *task) Syms() *sym.Table {
	return m.syms
}

// User returns the user context, the outermost place names resolve.
func (m *task) User() *vars.T {
	return m.user
}

// Evaluate runs the block c to completion and returns its result. A
// failure that no frame catches comes back as the error.
func (m *task) Evaluate(c cell.T) (r cell.T, err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}

		if e, ok := v.(*failure.T); ok {
			err = e

			return
		}

		panic(v)
	}()

	b := block.To(c.Heart())

	m.top = m.StepperFrame(NewFeed(b.Array()), false)

	return m.run()
}

// Locate finds the context and varlist index binding the symbol s. The
// search walks active frames innermost first, skipping frames still
// gathering their arguments, then falls back to the user context.
func (m *task) Locate(s *sym.T) (*vars.T, int) {
	for f := m.top; f != nil; f = f.prior {
		if f.vars == nil || f.state < StateDispatching || !f.vars.Accessible() {
			continue
		}

		if i := f.vars.Index(s); i > 0 {
			return f.vars, i
		}
	}

	if m.outer != nil {
		return m.outer.Locate(s)
	}

	if i := m.user.Index(s); i > 0 {
		return m.user, i
	}

	return nil, 0
}

// Assign stores the value c under the symbol s: in the binding Locate
// finds, or as a new variable in the user context.
func (m *task) Assign(s *sym.T, c cell.T) {
	ctx, i := m.Locate(s)
	if ctx == nil {
		m.user.Append(s, c)

		return
	}

	ctx.Set(i, c)
}

// run drives the frame chain until the bottom frame produces a result.
func (m *task) run() (cell.T, error) {
	for m.top != nil {
		switch b := m.step().(type) {
		case Done:
			if r, done := m.pop(b.Value); done {
				return r, nil
			}

		case Continue:
			m.top = b.Frame

		case Thrown:
			for m.top != nil && m.top != b.Target {
				m.release(m.top)
				m.top = m.top.prior
			}

			if m.top == nil {
				panic("unwind target is not an active frame")
			}

			if r, done := m.pop(b.Value); done {
				return r, nil
			}

		case Raised:
			for m.top != nil && !m.top.catches {
				m.release(m.top)
				m.top = m.top.prior
			}

			if m.top == nil {
				return cell.T{}, b.Err
			}

			m.top.out = cell.New(b.Err)

		case Unhandled:
			return cell.T{}, failure.New(failure.Unhandled, "dispatch resumed in an unknown state")
		}
	}

	return cell.T{}, failure.New(failure.Unhandled, "machine ran out of frames")
}

// step advances the top frame once, converting raised failures into
// Raised bounces. Panics that are not failures propagate.
func (m *task) step() (b Bounce) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}

		if e, ok := v.(*failure.T); ok {
			b = Raised{Err: e}

			return
		}

		panic(v)
	}()

	f := m.top

	return f.dispatch(m, f)
}

// pop finishes the top frame, delivering its result to the frame below
// or reporting the final result when the chain is empty.
func (m *task) pop(r cell.T) (cell.T, bool) {
	f := m.top
	m.top = f.prior
	m.release(f)

	if m.top == nil {
		return r, true
	}

	m.top.out = r

	return cell.T{}, false
}

// release detaches the argument storage of a finished frame unless the
// context has been handed out as a value.
func (m *task) release(f *Frame) {
	if f.vars != nil && !f.vars.Held() && f.vars.Accessible() {
		f.vars.Detach()
	}
}
