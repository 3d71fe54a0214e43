// Released under an MIT license. See LICENSE.

package keylist_test

import (
	"testing"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/keylist"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
)

func TestDerived(t *testing.T) {
	st := sym.NewTable()

	base := keylist.New(nil, st.New("a"))
	mid := keylist.New(base, st.New("a"), st.New("b"))
	leaf := keylist.New(mid, st.New("a"), st.New("b"), st.New("c"))

	if !keylist.Derived(base, base) {
		t.Fatal("a keylist descends from itself")
	}

	if !keylist.Derived(mid, base) || !keylist.Derived(leaf, base) {
		t.Fatal("descent follows the ancestor chain")
	}

	if keylist.Derived(base, mid) {
		t.Fatal("descent does not run backward")
	}

	// Identical spellings are not enough; ancestry is identity.
	twin := keylist.New(nil, st.New("a"))
	if keylist.Derived(twin, base) {
		t.Fatal("an unrelated keylist with the same symbols does not descend")
	}
}

func TestIndexOf(t *testing.T) {
	st := sym.NewTable()
	k := keylist.New(nil, st.New("a"), st.New("b"))

	if k.IndexOf(st.New("b")) != 1 {
		t.Fatal("b should be at index 1")
	}

	if k.IndexOf(st.New("c")) != -1 {
		t.Fatal("an absent symbol should index to -1")
	}

	k.Append(st.New("c"))

	if k.IndexOf(st.New("c")) != 2 || k.Len() != 3 {
		t.Fatal("an appended symbol should be found")
	}
}
