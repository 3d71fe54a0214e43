// Released under an MIT license. See LICENSE.

package vars_test

import (
	"testing"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/keylist"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/vars"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/num"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
)

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

func shaped(st *sym.Table, names ...string) *vars.T {
	ss := make([]*sym.T, len(names))
	for i, n := range names {
		ss[i] = st.New(n)
	}

	return vars.New(keylist.New(nil, ss...))
}

func TestIndexing(t *testing.T) {
	st := sym.NewTable()
	v := shaped(st, "a", "b")

	// The cell for keylist index i lives at varlist index i+1.
	if v.Index(st.New("a")) != 1 || v.Index(st.New("b")) != 2 {
		t.Fatal("varlist indexes should be keylist indexes plus one")
	}

	if v.Index(st.New("c")) != -1 {
		t.Fatal("an absent symbol should index to -1")
	}

	if v.Len() != 2 {
		t.Fatalf("len is %d, want 2", v.Len())
	}
}

func TestArchetype(t *testing.T) {
	st := sym.NewTable()
	v := shaped(st, "a")

	// Slot 0 refers back to the context itself.
	c := v.At(0)
	if !vars.Is(c.Heart()) || vars.To(c.Heart()) != v {
		t.Fatal("slot 0 should be the context's own archetype")
	}
}

func TestGetSet(t *testing.T) {
	st := sym.NewTable()
	v := shaped(st, "a")

	if c, ok := v.Get(st.New("a")); !ok || !cell.Equal(c, cell.Unset()) {
		t.Fatal("a fresh slot should be unset")
	}

	v.Set(v.Index(st.New("a")), cell.New(num.Int(5)))

	if c, ok := v.Get(st.New("a")); !ok || !cell.Equal(c, cell.New(num.Int(5))) {
		t.Fatal("the stored value should read back")
	}

	if _, ok := v.Get(st.New("zz")); ok {
		t.Fatal("an absent symbol should not read back")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	st := sym.NewTable()
	v := shaped(st, "a")

	v.Set(1, cell.New(num.Int(1)))

	c := v.Copy()
	c.Set(1, cell.New(num.Int(2)))

	if !cell.Equal(v.At(1), cell.New(num.Int(1))) {
		t.Fatal("writing the copy should not touch the original")
	}

	// The copy's archetype refers to the copy, not the original.
	if vars.To(c.At(0).Heart()) != c {
		t.Fatal("the copy's slot 0 should refer to the copy")
	}
}

func TestMoveSpendsTheOriginal(t *testing.T) {
	st := sym.NewTable()
	v := shaped(st, "a")
	v.Set(1, cell.New(num.Int(7)))
	v.Hold()

	m := vars.Move(v)

	if v.Accessible() {
		t.Fatal("the original should be spent after a move")
	}

	raises(t, failure.Access, func() { v.At(1) })

	if !m.Accessible() || !cell.Equal(m.At(1), cell.New(num.Int(7))) {
		t.Fatal("the moved context should carry the storage")
	}

	if !m.Held() {
		t.Fatal("a move should preserve the hold")
	}
}

func TestAppend(t *testing.T) {
	st := sym.NewTable()
	v := shaped(st)

	v.Append(st.New("x"), cell.New(num.Int(1)))

	if c, ok := v.Get(st.New("x")); !ok || !cell.Equal(c, cell.New(num.Int(1))) {
		t.Fatal("the appended slot should read back")
	}

	raises(t, failure.Argument, func() { v.Append(st.New("x"), cell.New(num.Int(2))) })
}
