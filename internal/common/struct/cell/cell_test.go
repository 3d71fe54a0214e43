// Released under an MIT license. See LICENSE.

package cell_test

import (
	"testing"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/blank"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/logic"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/null"
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

func TestQuoteRoundTrip(t *testing.T) {
	c := cell.New(num.Int(5))

	q := c.Quotify(3)
	if q.Depth() != 3 || !q.IsQuoted() {
		t.Fatalf("depth is %d, want 3", q.Depth())
	}

	if u := q.Unquotify(3); !cell.Equal(u, c) {
		t.Fatal("unquotify did not restore the original")
	}

	if cell.Literal(q) != "'''5" {
		t.Fatalf("got %s, want '''5", cell.Literal(q))
	}
}

func TestQuoteDepthLimits(t *testing.T) {
	c := cell.New(num.Int(1)).Quotify(cell.MaxDepth)

	raises(t, failure.QuoteDepth, func() { c.Quotify(1) })
	raises(t, failure.QuoteDepth, func() { cell.New(num.Int(1)).Unquotify(1) })
}

func TestIsotopesCannotBeQuoted(t *testing.T) {
	raises(t, failure.Isotope, func() { cell.SoftNull().Quotify(1) })
}

func TestMetaInverse(t *testing.T) {
	cases := []cell.T{
		cell.New(num.Int(7)),
		cell.New(num.Int(7)).Quotify(2),
		cell.Quasi(num.Int(7)),
		cell.SoftNull(),
		cell.Voided(),
		cell.Unset(),
	}

	for _, c := range cases {
		m := c.MetaQuotify()

		if m.IsIsotope() {
			t.Fatalf("meta of %s is still an isotope", c.Name())
		}

		if u := m.MetaUnquotify(); !cell.Equal(u, c) {
			t.Fatalf("meta of %s did not round-trip", c.Name())
		}
	}
}

func TestMetaOfIsotopeIsQuasi(t *testing.T) {
	m := cell.SoftNull().MetaQuotify()

	if !m.IsQuasi() || m.Depth() != 0 {
		t.Fatalf("got %s, want an unquoted quasiform", m.Name())
	}
}

func TestReifyDegrade(t *testing.T) {
	q := cell.Voided().Reify()
	if !q.IsQuasi() {
		t.Fatal("reify should produce a quasiform")
	}

	if !cell.Equal(q.Degrade(), cell.Voided()) {
		t.Fatal("degrade should restore the isotope")
	}

	raises(t, failure.Isotope, func() { cell.New(num.Int(1)).Reify() })
	raises(t, failure.Isotope, func() { cell.New(num.Int(1)).Degrade() })
}

func TestDecay(t *testing.T) {
	if !cell.Equal(cell.Decay(cell.SoftNull()), cell.Null()) {
		t.Fatal("the null isotope should decay to plain null")
	}

	if !cell.Equal(cell.Decay(cell.Isotopic(blank.Blank)), cell.New(blank.Blank)) {
		t.Fatal("the blank isotope should decay to plain blank")
	}

	if !cell.Equal(cell.Decay(cell.Isotopic(logic.False)), cell.False()) {
		t.Fatal("the false isotope should decay to plain false")
	}

	// Decay is idempotent.
	c := cell.Decay(cell.SoftNull())
	if !cell.Equal(cell.Decay(c), c) {
		t.Fatal("decay of a decayed value should change nothing")
	}

	// Values that are not named isotopes pass through.
	v := cell.New(num.Int(3)).Quotify(1)
	if !cell.Equal(cell.Decay(v), v) {
		t.Fatal("decay should pass a quoted value through")
	}
}

func TestTruthy(t *testing.T) {
	if cell.Truthy(cell.Null()) || cell.Truthy(cell.New(blank.Blank)) {
		t.Fatal("plain null and blank are falsey")
	}

	if cell.Truthy(cell.False()) || !cell.Truthy(cell.True()) {
		t.Fatal("logic carries its own truth")
	}

	// Quoting anything makes it truthy, even false.
	if !cell.Truthy(cell.False().Quotify(1)) {
		t.Fatal("a quoted false is truthy")
	}

	if !cell.Truthy(cell.Quasi(null.Null)) {
		t.Fatal("a quasi null is truthy")
	}

	// Logic isotopes still read as their boolean.
	if cell.Truthy(cell.Isotopic(logic.False)) {
		t.Fatal("the false isotope is falsey")
	}

	// Every other isotope refuses the question.
	raises(t, failure.Isotope, func() { cell.Truthy(cell.SoftNull()) })
	raises(t, failure.Isotope, func() { cell.Truthy(cell.Voided()) })
}

func TestStable(t *testing.T) {
	if !cell.Stable(cell.SoftNull()) || !cell.Stable(cell.Unset()) {
		t.Fatal("named isotopes are stable")
	}

	if cell.Stable(cell.Isotopic(failure.New(failure.Access, "boom"))) {
		t.Fatal("a raised error is unstable")
	}
}

func TestName(t *testing.T) {
	if n := cell.SoftNull().Name(); n != "null isotope" {
		t.Fatalf("got %s, want null isotope", n)
	}

	if n := cell.Quasi(num.Int(1)).Name(); n != "quasi number" {
		t.Fatalf("got %s, want quasi number", n)
	}

	if n := cell.New(num.Int(1)).Quotify(1).Name(); n != "quoted number" {
		t.Fatalf("got %s, want quoted number", n)
	}
}
