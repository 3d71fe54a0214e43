// Released under an MIT license. See LICENSE.

// Package resolve walks dotted sequences to read and write the values
// they refer to. Sequences are immutable, so writing through one that
// passes an immutable step propagates a rebuilt copy back toward the
// variable that anchors the path: the writeback.
package resolve

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/vars"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/num"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/seq"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/word"
)

// Locator finds the context and varlist index binding a symbol.
type Locator interface {
	Locate(s *sym.T) (*vars.T, int)
}

// Evaluator runs a group that appears as a sequence step. Callers that
// do not permit evaluation during resolution pass nil.
type Evaluator func(b *block.T) cell.T

// Steps returns the concrete step cells of the sequence q, evaluating
// any embedded groups through ev.
func Steps(q *seq.T, ev Evaluator) []cell.T {
	ss := make([]cell.T, q.Len())

	for i := 0; i < q.Len(); i++ {
		c := q.At(i)

		if b, ok := c.Heart().(*block.T); ok && c.IsPlain() && b.Kind() == block.Group {
			if ev == nil {
				failure.Raise(failure.Access, "group evaluation is not permitted during resolution")
			}

			c = ev(b)
		}

		ss[i] = c
	}

	return ss
}

// Get resolves the sequence q to the value it refers to.
func Get(l Locator, q *seq.T, ev Evaluator) cell.T {
	ss := Steps(q, ev)

	v := anchor(l, ss[0])

	for _, k := range ss[1:] {
		v = Pick(v, k)
	}

	return v
}

// Set writes the value nv through the sequence q. Immutable steps are
// rebuilt and the rebuilt copies written back toward the anchor.
func Set(l Locator, q *seq.T, nv cell.T, ev Evaluator) {
	ss := Steps(q, ev)

	ctx, i := bind(l, ss[0])

	// Containers along the path, outermost first.
	hops := make([]cell.T, 0, len(ss)-1)

	v := ctx.At(i)
	hops = append(hops, v)

	for _, k := range ss[1 : len(ss)-1] {
		v = Pick(v, k)
		hops = append(hops, v)
	}

	c, changed := Poke(hops[len(hops)-1], ss[len(ss)-1], nv)

	for j := len(hops) - 2; changed && j >= 0; j-- {
		c, changed = Poke(hops[j], ss[j+1], c)
	}

	if changed {
		ctx.Set(i, c)
	}
}

// Pick indexes one step into the container v with the key k.
func Pick(v cell.T, k cell.T) cell.T {
	if v.IsQuoted() || v.IsQuasi() {
		failure.Raise(failure.Sequence, "cannot pick from a %s", v.Name())
	}

	switch h := v.Heart().(type) {
	case *vars.T:
		s := keySym(k)

		c, ok := h.Get(s)
		if !ok {
			failure.Raise(failure.Unbound, "%s is not a field of this frame", s.String())
		}

		return c

	case *block.T:
		return h.Array().At(keyIndex(k, h.Array().Len()))

	case *seq.T:
		return h.At(keyIndex(k, h.Len()))
	}

	failure.Raise(failure.Sequence, "cannot pick from a %s", v.Heart().Name())

	return cell.T{}
}

// Poke writes the value nv into the container v at the key k. The
// second result is true when the container is immutable and the first
// result is a rebuilt copy that must replace it.
func Poke(v cell.T, k cell.T, nv cell.T) (cell.T, bool) {
	if v.IsQuoted() || v.IsQuasi() {
		failure.Raise(failure.Sequence, "cannot poke into a %s", v.Name())
	}

	switch h := v.Heart().(type) {
	case *vars.T:
		s := keySym(k)

		i := h.Index(s)
		if i < 0 {
			failure.Raise(failure.Unbound, "%s is not a field of this frame", s.String())
		}

		h.Set(i, nv)

		return v, false

	case *block.T:
		h.Array().Set(keyIndex(k, h.Array().Len()), nv)

		return v, false

	case *seq.T:
		return cell.New(h.With(keyIndex(k, h.Len()), nv)), true
	}

	failure.Raise(failure.Sequence, "cannot poke into a %s", v.Heart().Name())

	return cell.T{}, false
}

// anchor resolves the first step of a sequence to a value.
func anchor(l Locator, c cell.T) cell.T {
	ctx, i := bind(l, c)

	return ctx.At(i)
}

// bind resolves the first step of a sequence to its variable slot.
func bind(l Locator, c cell.T) (*vars.T, int) {
	w, ok := c.Heart().(*word.T)
	if !ok || !c.IsPlain() {
		failure.Raise(failure.Sequence, "a sequence must start with a word, not a %s", c.Name())
	}

	ctx, i := l.Locate(w.Sym())
	if ctx == nil {
		failure.Raise(failure.Unbound, "%s is not bound", w.Sym().String())
	}

	return ctx, i
}

// keySym requires the key k to be a word and returns its symbol.
func keySym(k cell.T) *sym.T {
	w, ok := k.Heart().(*word.T)
	if !ok {
		failure.Raise(failure.Sequence, "a frame field must be named by a word, not a %s", k.Name())
	}

	return w.Sym()
}

// keyIndex requires the key k to be a whole number and returns it as a
// zero-based index, checked against the container length n.
func keyIndex(k cell.T, n int) int {
	m, ok := k.Heart().(*num.T)
	if !ok {
		failure.Raise(failure.Sequence, "an index must be a number, not a %s", k.Name())
	}

	r := m.Rat()
	if !r.IsInt() {
		failure.Raise(failure.Sequence, "an index must be a whole number, not %s", r.RatString())
	}

	i := int(r.Num().Int64())
	if i < 1 || i > n {
		failure.Raise(failure.Access, "index %d is out of range 1..%d", i, n)
	}

	return i - 1
}
