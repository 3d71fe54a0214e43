// Released under an MIT license. See LICENSE.

// Package derive builds new actions out of existing ones. Derivations
// compose by wrapping: each combinator produces an action whose inner
// is the action it was derived from, and whose frames the trampoline
// runs without consuming Go stack for the composition depth.
package derive

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/arena"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/array"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/param"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/logic"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/unset"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/engine/task"
)

// Fill names one argument a specialization fixes.
type Fill struct {
	Sym   *sym.T
	Value cell.T
}

// Specialize creates an action like a with the named arguments fixed.
// The fixed slots stop gathering; callers supply only what remains.
func Specialize(st *sym.Table, ar *arena.T, a *task.Action, fills []Fill) *task.Action {
	ex := a.Exemplar().Copy()
	ar.Track(ex.Varlist())

	for _, fl := range fills {
		i := ex.Index(fl.Sym)
		if i < 0 {
			failure.Raise(failure.Unbound, "%s is not a slot of this action", fl.Sym.String())
		}

		p := a.ParamAt(i)
		if p == nil {
			failure.Raise(failure.Argument, "%s has already been specialized", fl.Sym.String())
		}

		if p.Has(param.Return) || p.Has(param.Local) {
			failure.Raise(failure.Argument, "%s does not take an argument", fl.Sym.String())
		}

		p.Check(fl.Value)
		ex.Set(i, fl.Value)
	}

	d := task.NewAction(task.Delegate, ex, a)
	Inherit(st, ar, d, a)

	return d
}

// Adapt creates an action like a that runs the prelude block in the
// argument frame before a sees it. The prelude can inspect and rewrite
// arguments; its value is discarded.
func Adapt(st *sym.Table, ar *arena.T, a *task.Action, prelude *array.T) *task.Action {
	ex := a.Exemplar().Copy()
	ar.Track(ex.Varlist())

	d := task.NewAction(adaptDispatch, ex, a, cell.New(block.New(prelude)))
	Inherit(st, ar, d, a)

	return d
}

const preludeRan = task.StateDispatcherBase

// adaptDispatch runs the prelude in details slot 1 and then delegates
// to the adapted action on the same frame.
func adaptDispatch(m *task.T, f *task.Frame) task.Bounce {
	switch f.State() {
	case task.StateDispatching:
		f.SetState(preludeRan)

		b := block.To(f.Action().Details().At(1).Heart())

		return task.Continue{Frame: m.StepperFrame(task.NewFeed(b.Array()), false)}

	case preludeRan:
		return task.Delegate(m, f)
	}

	return task.Unhandled{}
}

// Enclose creates an action with a's interface whose behavior is to
// hand a's gathered-but-unrun frame to outer as a value. When share is
// true the frame's storage moves into the captured value, leaving the
// invocation spent; otherwise outer receives an independent copy.
func Enclose(st *sym.Table, ar *arena.T, a, outer *task.Action, share bool) *task.Action {
	ex := a.Exemplar().Copy()
	ar.Track(ex.Varlist())

	d := task.NewAction(encloseDispatch, ex, a,
		cell.New(outer), cell.New(logic.Bool(share)))
	Inherit(st, ar, d, a)

	return d
}

const outerRan = task.StateDispatcherBase

// encloseDispatch captures the gathered frame and invokes the outer
// action in details slot 1 with it.
func encloseDispatch(m *task.T, f *task.Frame) task.Bounce {
	switch f.State() {
	case task.StateDispatching:
		f.SetState(outerRan)

		det := f.Action().Details()
		outer := det.At(1).Heart().(*task.Action)
		share := logic.To(det.At(2).Heart()).Bool()

		captured := task.Capture(f, f.Action().Inner(), share)

		return task.Continue{Frame: m.PrefilledFrame(outer, []cell.T{cell.New(captured)})}

	case outerRan:
		return task.Done{Value: f.Out()}
	}

	return task.Unhandled{}
}

// Chain creates an action that pipes the result of the first action
// through each of the rest in turn. The chain has the first action's
// interface; every later action must take a single argument.
func Chain(st *sym.Table, ar *arena.T, acts []*task.Action) *task.Action {
	if len(acts) == 0 {
		failure.Raise(failure.Argument, "a chain needs at least one action")
	}

	ex := acts[0].Exemplar().Copy()
	ar.Track(ex.Varlist())

	links := make([]cell.T, len(acts))
	for i, a := range acts {
		links[i] = cell.New(a)
	}

	d := task.NewAction(chainDispatch, ex, acts[0], links...)
	Inherit(st, ar, d, acts[0])

	return d
}

// chainDispatch runs each pipeline link in its own frame, feeding the
// previous link's result forward.
func chainDispatch(m *task.T, f *task.Frame) task.Bounce {
	det := f.Action().Details()
	links := det.Len() - 1

	if f.State() == task.StateDispatching {
		f.SetState(task.StateDispatcherBase)

		first := det.At(1).Heart().(*task.Action)

		return task.Continue{Frame: m.PrefilledFrame(first, f.Gathered())}
	}

	ran := int(f.State()-task.StateDispatcherBase) + 1
	if ran < links {
		f.SetState(f.State() + 1)

		next := det.At(ran + 1).Heart().(*task.Action)

		return task.Continue{Frame: m.PrefilledFrame(next, []cell.T{f.Out()})}
	}

	return task.Done{Value: f.Out()}
}

// Augment creates an action like a with extra slots appended. The new
// keylist records a's keylist as its ancestor, so frames built for the
// augmented action still satisfy everything that ran against a. The
// appended arguments are gathered and then ignored by a itself.
func Augment(st *sym.Table, ar *arena.T, a *task.Action, spec *array.T) *task.Action {
	base := a.Keys()
	ex := a.Exemplar()

	staged := make([]task.Staged, base.Len())

	for i := 0; i < base.Len(); i++ {
		c := ex.At(i + 1)

		if p := a.ParamAt(i + 1); p != nil && p.Has(param.Local) {
			c = cell.New(p.Seal())
		}

		staged[i] = task.Staged{Sym: base.At(i), Cell: c}
	}

	_, added := task.ParseSpec(st, spec)

	for _, s := range added {
		if base.IndexOf(s.Sym) >= 0 {
			failure.Raise(failure.Argument, "%s is already a slot of this action", s.Sym.String())
		}
	}

	nex := task.MakeExemplar(ar, base, append(staged, added...))

	d := task.NewAction(task.Delegate, nex, a)
	Inherit(st, ar, d, a)

	return d
}

// Hijack redirects every invocation of victim, wherever it is
// referenced, to run donor's behavior. Identity is untouched: derived
// actions wrapping victim now run donor underneath.
func Hijack(victim, donor *task.Action) {
	victim.Hijack(donor)
}

// Inherit fills the unset metadata fields of the derived action d from
// the action it was derived from.
func Inherit(st *sym.Table, ar *arena.T, d, from *task.Action) {
	if d.Meta() == nil {
		d.SetMeta(task.NewMeta(st, ar, ""))
	}

	src := from.Meta()
	if src == nil {
		return
	}

	dm := d.Meta()
	ks := dm.Keys()

	for i := 0; i < ks.Len(); i++ {
		c := dm.At(i + 1)
		if !c.IsIsotope() || !unset.Is(c.Heart()) {
			continue
		}

		if v, ok := src.Get(ks.At(i)); ok {
			dm.Set(i+1, v)
		}
	}
}
