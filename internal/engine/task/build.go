// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/arena"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/array"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/keylist"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/param"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/vars"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/text"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/word"
)

// Staged is one slot of a parameter list under construction: its
// symbol and the cell the exemplar slot will hold.
type Staged struct {
	Sym  *sym.T
	Cell cell.T
}

// ParseSpec reads a function spec block into staged slots and the
// function's description.
//
// A plain word declares an argument; the word return declares the
// return slot. A set-word declares a local. A get-word declares an
// output. A block refines the preceding slot: the words variadic,
// endable, and skippable set its class, any other word names a type
// its argument may have. A text refines the preceding slot with a
// note, or supplies the description when no slot precedes it.
func ParseSpec(st *sym.Table, spec *array.T) (string, []Staged) {
	desc := ""
	staged := []Staged{}

	// The param under construction; installed into its staged cell
	// when the next slot begins or the spec ends.
	var p *param.T

	seal := func() {
		if p != nil {
			staged[len(staged)-1].Cell = cell.New(p)
			p = nil
		}
	}

	for i := 0; i < spec.Len(); i++ {
		c := spec.At(i)

		switch h := c.Heart().(type) {
		case *text.T:
			if p == nil {
				desc = h.String()
			} else {
				p.SetNote(h.String())
			}

		case *word.T:
			seal()

			cls := param.Normal

			switch {
			case h.Kind() == word.Setting:
				cls = param.Local
			case h.Kind() == word.Getting:
				cls = param.Output
			case h.Sym() == st.New("return"):
				cls = param.Return
			}

			p = param.New(cls)
			staged = append(staged, Staged{Sym: h.Sym()})

		case *block.T:
			if p == nil {
				failure.Raise(failure.Argument, "a type block must follow a parameter word")
			}

			refine(st, p, h)

		default:
			failure.Raise(failure.Argument, "a spec cannot contain a %s", c.Name())
		}
	}

	seal()

	return desc, staged
}

// refine folds the words of a type block into the param p.
func refine(st *sym.Table, p *param.T, b *block.T) {
	cls := p.Class()
	types := []string{}

	arr := b.Array()
	for i := 0; i < arr.Len(); i++ {
		w, ok := arr.At(i).Heart().(*word.T)
		if !ok {
			failure.Raise(failure.Argument, "a type block can only contain words")
		}

		switch w.Sym() {
		case st.New("variadic"):
			cls |= param.Variadic
		case st.New("endable"):
			cls |= param.Endable
		case st.New("skippable"):
			cls |= param.Skippable
		default:
			types = append(types, w.Sym().String())
		}
	}

	n := p.Note()
	*p = *param.New(cls, types...)
	p.SetNote(n)
}

// MakeExemplar creates the keylist and exemplar context for the staged
// slots, derived from the ancestor keylist anc when augmenting.
func MakeExemplar(ar *arena.T, anc *keylist.T, staged []Staged) *vars.T {
	ss := make([]*sym.T, len(staged))
	for i, s := range staged {
		ss[i] = s.Sym
	}

	ks := ar.Keylist(anc, ss...)
	ex := vars.New(ks)
	ar.Track(ex.Varlist())

	for i, s := range staged {
		ex.Set(i+1, s.Cell)
	}

	return ex
}

// NewFunc creates an interpreted action from a spec block and a body
// block. A return slot is added when the spec does not declare one.
func NewFunc(st *sym.Table, ar *arena.T, spec, body *array.T) *Action {
	desc, staged := ParseSpec(st, spec)

	ret := st.New("return")

	declared := false

	for _, s := range staged {
		if s.Sym == ret {
			declared = true

			break
		}
	}

	if !declared {
		staged = append([]Staged{{Sym: ret, Cell: cell.New(param.New(param.Return))}}, staged...)
	}

	ex := MakeExemplar(ar, nil, staged)

	a := NewAction(InterpretedDispatch, ex, nil, cell.New(block.New(body)))

	a.SetMeta(NewMeta(st, ar, desc))

	return a
}

// NewMeta creates a metadata context with its description set to desc
// when desc is not empty.
func NewMeta(st *sym.Table, ar *arena.T, desc string) *vars.T {
	ks := ar.Keylist(nil, st.New("description"), st.New("notes"))
	mv := vars.New(ks)
	ar.Track(mv.Varlist())
	mv.Hold()

	if desc != "" {
		mv.Set(1, cell.New(text.New(desc)))
	}

	return mv
}

// Interpreted dispatch states.
const bodyRan = StateDispatcherBase

// InterpretedDispatch runs the body block stored in an action's
// details and checks the result against the underlying return law.
//
// Result: the body's last value, in f.out.
// Requires: a block in details slot 1.
func InterpretedDispatch(m *T, f *Frame) Bounce {
	switch f.state {
	case StateDispatching:
		f.state = bodyRan

		b := block.To(f.action.Details().At(1).Heart())

		return Continue{m.StepperFrame(NewFeed(b.Array()), false)}

	case bodyRan:
		if p := f.base.ReturnParam(); p != nil {
			p.Check(f.out)
		}

		return Done{f.out}
	}

	return Unhandled{}
}
