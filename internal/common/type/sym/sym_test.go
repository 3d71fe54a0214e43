// Released under an MIT license. See LICENSE.

package sym_test

import (
	"testing"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
)

func TestInterning(t *testing.T) {
	st := sym.NewTable()

	a := st.New("hello")
	b := st.New("hello")

	if a != b {
		t.Fatal("the same spelling should intern to the same sym")
	}

	if a == st.New("world") {
		t.Fatal("different spellings should intern to different syms")
	}

	if st.Size() != 2 {
		t.Fatalf("size is %d, want 2", st.Size())
	}

	if a.String() != "hello" {
		t.Fatalf("spelling is %q, want hello", a.String())
	}
}

func TestTablesAreIsolated(t *testing.T) {
	a := sym.NewTable().New("x")
	b := sym.NewTable().New("x")

	if a == b {
		t.Fatal("separate tables should not share syms")
	}
}
