// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/logic"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/seq"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/word"
)

// Stepper frame states.
const (
	stepReady State = iota
	stepResumeExpr
	stepResumeAssign
)

// stepBlock is the dispatch function for stepper frames. It classifies
// one source cell at a time, continuing into child frames for anything
// that needs evaluation.
//
// Result: the last expression's value, in f.out.
// Requires: f.feed.
func stepBlock(m *T, f *Frame) Bounce {
	for {
		switch f.state {
		case stepResumeAssign:
			m.Assign(f.pend, f.out)
			f.pend = nil
			f.state = stepReady

			if f.single {
				return Done{f.out}
			}

		case stepResumeExpr:
			f.state = stepReady

			if f.single {
				return Done{f.out}
			}
		}

		if !f.feed.More() {
			return Done{f.out}
		}

		done, b := m.stepValue(f, f.feed.Next())
		if b != nil {
			return b
		}

		if f.single && done {
			return Done{f.out}
		}
	}
}

// stepValue evaluates one source cell. It either completes immediately
// (value in f.out) or returns a continuation, leaving f.state marked
// with what to do when the child delivers.
func (m *T) stepValue(f *Frame, c cell.T) (bool, Bounce) {
	if c.IsQuoted() {
		f.out = c.Unquotify(1)

		return true, nil
	}

	if c.IsQuasi() {
		f.out = c.Degrade()

		return true, nil
	}

	switch h := c.Heart().(type) {
	case *word.T:
		return m.stepWord(f, h)

	case *block.T:
		if h.Kind() == block.Group {
			f.state = stepResumeExpr

			return false, Continue{m.StepperFrame(NewFeed(h.Array()), false)}
		}

		f.out = c

		return true, nil

	case *seq.T:
		v := m.Resolve(h)

		if a, ok := v.Heart().(*Action); ok && v.IsPlain() {
			f.state = stepResumeExpr

			return false, Continue{m.InvocationFrame(a, nil, f.feed)}
		}

		f.out = v

		return true, nil
	}

	f.out = c

	return true, nil
}

// stepWord evaluates a word cell: invocation for actions, fetch for
// everything a plain reference is allowed to see.
func (m *T) stepWord(f *Frame, w *word.T) (bool, Bounce) {
	switch w.Kind() {
	case word.Setting:
		f.pend = w.Sym()
		f.state = stepResumeAssign

		if !f.feed.More() {
			failure.Raise(failure.Argument, "%s has nothing to assign", w.String())
		}

		return false, Continue{m.StepperFrame(f.feed, true)}

	case word.Getting:
		ctx, i := m.Locate(w.Sym())
		if ctx == nil {
			failure.Raise(failure.Unbound, "%s is not bound", w.Sym().String())
		}

		f.out = ctx.At(i)

		return true, nil
	}

	ctx, i := m.Locate(w.Sym())
	if ctx == nil {
		failure.Raise(failure.Unbound, "%s is not bound", w.Sym().String())
	}

	v := ctx.At(i)

	if a, ok := v.Heart().(*Action); ok && v.IsPlain() {
		f.state = stepResumeExpr

		return false, Continue{m.InvocationFrame(a, w.Sym(), f.feed)}
	}

	if v.IsIsotope() && !logic.Is(v.Heart()) {
		failure.Raise(failure.Isotope, "%s is a %s isotope; use a get-word to fetch it",
			w.Sym().String(), cell.Label(v))
	}

	f.out = v

	return true, nil
}
