// Released under an MIT license. See LICENSE.

package resolve_test

import (
	"testing"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/array"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/keylist"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/vars"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/num"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/seq"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/word"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/engine/resolve"
)

// scope is a single-context locator for exercising resolution without
// an evaluator.
type scope struct {
	v *vars.T
}

func (s *scope) Locate(y *sym.T) (*vars.T, int) {
	i := s.v.Index(y)
	if i < 0 {
		return nil, 0
	}

	return s.v, i
}

func space(st *sym.Table, names ...string) *scope {
	ss := make([]*sym.T, len(names))
	for i, n := range names {
		ss[i] = st.New(n)
	}

	return &scope{v: vars.New(keylist.New(nil, ss...))}
}

func raises(t *testing.T, id string, fn func()) {
	t.Helper()

	defer func() {
		v := recover()
		if v == nil {
			t.Fatalf("expected a %s failure", id)
		}

		e, ok := v.(*failure.T)
		if !ok {
			panic(v)
		}

		if e.ID() != id {
			t.Fatalf("got a %s failure, want %s", e.ID(), id)
		}
	}()

	fn()
}

func wordCell(st *sym.Table, s string) cell.T {
	return cell.New(word.New(st.New(s)))
}

func numCell(i int64) cell.T {
	return cell.New(num.Int(i))
}

func TestGetThroughSequence(t *testing.T) {
	st := sym.NewTable()
	sc := space(st, "s")

	q := seq.New(wordCell(st, "a"), wordCell(st, "b"), wordCell(st, "c"))
	sc.v.Set(1, cell.New(q))

	path := seq.New(wordCell(st, "s"), numCell(2))

	r := resolve.Get(sc, path, nil)
	if word.To(r.Heart()).Sym().String() != "b" {
		t.Fatalf("got %s", cell.Literal(r))
	}
}

func TestWritebackRebuildsTheSequence(t *testing.T) {
	st := sym.NewTable()
	sc := space(st, "s")

	q := seq.New(wordCell(st, "a"), wordCell(st, "b"), wordCell(st, "c"))
	sc.v.Set(1, cell.New(q))

	path := seq.New(wordCell(st, "s"), numCell(2))
	resolve.Set(sc, path, wordCell(st, "x"), nil)

	// The slot now holds a rebuilt sequence; the original is untouched.
	held := seq.To(sc.v.At(1).Heart())
	if held == q {
		t.Fatal("the anchoring slot should hold a rebuilt sequence")
	}

	if word.To(held.At(1).Heart()).Sym().String() != "x" {
		t.Fatalf("got %s", held.Literal())
	}

	if word.To(q.At(1).Heart()).Sym().String() != "b" {
		t.Fatal("the original sequence should be unchanged")
	}
}

func TestFrameFields(t *testing.T) {
	st := sym.NewTable()
	sc := space(st, "f")

	inner := space(st, "x").v
	inner.Set(1, numCell(7))
	sc.v.Set(1, cell.New(inner))

	path := seq.New(wordCell(st, "f"), wordCell(st, "x"))

	if r := resolve.Get(sc, path, nil); !cell.Equal(r, numCell(7)) {
		t.Fatalf("got %s", cell.Literal(r))
	}

	resolve.Set(sc, path, numCell(9), nil)

	// Frames are mutable in place, so no writeback happens.
	if !cell.Equal(inner.At(1), numCell(9)) {
		t.Fatal("the frame field should have been written in place")
	}
}

func TestResolutionErrors(t *testing.T) {
	st := sym.NewTable()
	sc := space(st, "s")
	sc.v.Set(1, numCell(5))

	// Numbers have no steps.
	raises(t, failure.Sequence, func() {
		resolve.Get(sc, seq.New(wordCell(st, "s"), numCell(1)), nil)
	})

	// The anchor must be bound.
	raises(t, failure.Unbound, func() {
		resolve.Get(sc, seq.New(wordCell(st, "zz"), numCell(1)), nil)
	})

	// A quoted container refuses picking.
	sc.v.Set(1, cell.New(seq.New(wordCell(st, "a"), wordCell(st, "b"))).Quotify(1))
	raises(t, failure.Sequence, func() {
		resolve.Get(sc, seq.New(wordCell(st, "s"), numCell(1)), nil)
	})
}

func TestEmbeddedSteps(t *testing.T) {
	st := sym.NewTable()
	sc := space(st, "s")
	sc.v.Set(1, cell.New(seq.New(numCell(10), numCell(20), numCell(30))))

	g := block.NewGroup(array.New(wordCell(st, "two")))
	path := seq.New(wordCell(st, "s"), cell.New(g))

	// A group step only runs when the caller supplies an evaluator.
	raises(t, failure.Access, func() { resolve.Get(sc, path, nil) })
	raises(t, failure.Access, func() { resolve.Set(sc, path, numCell(0), nil) })

	ev := func(b *block.T) cell.T { return numCell(2) }

	if r := resolve.Get(sc, path, ev); !cell.Equal(r, numCell(20)) {
		t.Fatalf("got %s", cell.Literal(r))
	}

	resolve.Set(sc, path, numCell(99), ev)

	held := seq.To(sc.v.At(1).Heart())
	if !cell.Equal(held.At(1), numCell(99)) {
		t.Fatalf("got %s", held.Literal())
	}
}

func TestPickBounds(t *testing.T) {
	q := cell.New(seq.New(numCell(10), numCell(20)))

	if !cell.Equal(resolve.Pick(q, numCell(1)), numCell(10)) {
		t.Fatal("indexes are one-based")
	}

	raises(t, failure.Access, func() { resolve.Pick(q, numCell(3)) })
	raises(t, failure.Access, func() { resolve.Pick(q, numCell(0)) })
	raises(t, failure.Sequence, func() { resolve.Pick(q, cell.New(num.New("1/2"))) })
}
