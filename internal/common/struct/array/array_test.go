// Released under an MIT license. See LICENSE.

package array_test

import (
	"testing"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/array"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/num"
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

func TestIsotopesMayNotEnterArrays(t *testing.T) {
	raises(t, failure.Isotope, func() { array.New(cell.SoftNull()) })

	a := array.New(cell.New(num.Int(1)))

	raises(t, failure.Isotope, func() { a.Set(0, cell.Voided()) })
	raises(t, failure.Isotope, func() { a.Append(cell.Unset()) })
}

func TestVarlistsHoldStableIsotopes(t *testing.T) {
	a := array.Varlist(2)

	// Fresh slots start unset.
	if !cell.Equal(a.At(1), cell.Unset()) {
		t.Fatal("a fresh varlist slot should be unset")
	}

	a.Set(1, cell.SoftNull())

	if !cell.Equal(a.At(1), cell.SoftNull()) {
		t.Fatal("a varlist slot should hold a stable isotope")
	}

	// Unstable isotopes are refused even by a varlist.
	raised := cell.Isotopic(failure.New(failure.Access, "boom"))
	raises(t, failure.Isotope, func() { a.Set(1, raised) })

	pack := cell.Isotopic(block.New(array.New()))
	raises(t, failure.Isotope, func() { a.Set(1, pack) })
}

func TestFreeze(t *testing.T) {
	a := array.New(cell.New(num.Int(1)), cell.New(num.Int(2)))
	a.Freeze()

	if !a.Frozen() {
		t.Fatal("the array should report frozen")
	}

	raises(t, failure.Frozen, func() { a.Set(0, cell.New(num.Int(9))) })
	raises(t, failure.Frozen, func() { a.Append(cell.New(num.Int(9))) })

	// Reading stays fine.
	if !cell.Equal(a.At(1), cell.New(num.Int(2))) {
		t.Fatal("a frozen array should still be readable")
	}

	// A copy thaws.
	c := a.Copy()
	c.Set(0, cell.New(num.Int(9)))

	if !cell.Equal(a.At(0), cell.New(num.Int(1))) {
		t.Fatal("writing the copy should not touch the original")
	}
}

func TestDetach(t *testing.T) {
	a := array.New(cell.New(num.Int(1)))
	a.Detach()

	if a.Accessible() {
		t.Fatal("a detached array should report inaccessible")
	}

	raises(t, failure.Access, func() { a.At(0) })
	raises(t, failure.Access, func() { a.Set(0, cell.New(num.Int(2))) })
	raises(t, failure.Access, func() { a.Copy() })
	raises(t, failure.Access, func() { a.Freeze() })
}

func TestBounds(t *testing.T) {
	a := array.New(cell.New(num.Int(1)))

	raises(t, failure.Argument, func() { a.At(1) })
	raises(t, failure.Argument, func() { a.At(-1) })
	raises(t, failure.Argument, func() { a.Set(1, cell.New(num.Int(2))) })
}
