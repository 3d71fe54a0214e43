// Released under an MIT license. See LICENSE.

package param_test

import (
	"testing"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/param"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/num"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/text"
)

func TestCheck(t *testing.T) {
	p := param.New(param.Normal, "number")

	p.Check(cell.New(num.Int(1)))

	defer func() {
		v := recover()
		if v == nil {
			t.Fatal("expected a type-mismatch failure")
		}

		e, ok := v.(*failure.T)
		if !ok {
			panic(v)
		}

		if e.ID() != failure.TypeMismatch {
			t.Fatalf("got a %s failure", e.ID())
		}
	}()

	p.Check(cell.New(text.New("one")))
}

func TestMatches(t *testing.T) {
	p := param.New(param.Normal, "number", "text")

	if !p.Matches(cell.New(num.Int(1))) || !p.Matches(cell.New(text.New("x"))) {
		t.Fatal("listed types should match")
	}

	if p.Matches(cell.Null()) {
		t.Fatal("an unlisted type should not match")
	}

	// An empty constraint set admits anything.
	if !param.New(param.Normal).Matches(cell.SoftNull()) {
		t.Fatal("an unconstrained param should admit any value")
	}

	// The any-value constraint is explicit about the same thing.
	if !param.New(param.Normal, "any-value").Matches(cell.Null()) {
		t.Fatal("any-value should admit any value")
	}
}

func TestFlags(t *testing.T) {
	p := param.New(param.Normal | param.Endable)

	if !p.Has(param.Normal) || !p.Has(param.Endable) {
		t.Fatal("set flags should read back")
	}

	if p.Has(param.Variadic) || p.Has(param.Normal|param.Variadic) {
		t.Fatal("has requires every named flag")
	}
}

func TestSeal(t *testing.T) {
	p := param.New(param.Local, "number")
	s := p.Seal()

	if !s.Has(param.Sealed) || !s.Has(param.Local) {
		t.Fatal("sealing should add the flag and keep the rest")
	}

	if p.Has(param.Sealed) {
		t.Fatal("sealing should not modify the original")
	}

	if len(s.Types()) != 1 {
		t.Fatal("sealing should keep the constraint set")
	}
}
