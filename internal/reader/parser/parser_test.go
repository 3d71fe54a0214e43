// Released under an MIT license. See LICENSE.

package parser_test

import (
	"errors"
	"testing"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/arena"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/array"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/blank"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/num"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/seq"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/text"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/word"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/reader/parser"
)

func parse(t *testing.T, src string) *array.T {
	t.Helper()

	arr, err := parser.New(sym.NewTable(), arena.New()).Parse("test", src)
	if err != nil {
		t.Fatalf("parsing %q: %s", src, err.Error())
	}

	return arr
}

func TestValues(t *testing.T) {
	arr := parse(t, `add 1 "hi" _ #`)

	if arr.Len() != 5 {
		t.Fatalf("got %d cells, want 5", arr.Len())
	}

	w := word.To(arr.At(0).Heart())
	if w.Sym().String() != "add" || w.Kind() != word.Normal {
		t.Fatalf("cell 0 is %s", cell.Literal(arr.At(0)))
	}

	if !num.Is(arr.At(1).Heart()) || !text.Is(arr.At(2).Heart()) {
		t.Fatal("cells 1 and 2 should be a number and a text")
	}

	if !blank.Is(arr.At(3).Heart()) {
		t.Fatal("an underscore should parse as a blank")
	}
}

func TestWordFlavors(t *testing.T) {
	arr := parse(t, "x: :y z")

	if word.To(arr.At(0).Heart()).Kind() != word.Setting {
		t.Fatal("a trailing colon should make a set-word")
	}

	if word.To(arr.At(1).Heart()).Kind() != word.Getting {
		t.Fatal("a leading colon should make a get-word")
	}

	if word.To(arr.At(2).Heart()).Kind() != word.Normal {
		t.Fatal("a bare spelling should make a normal word")
	}
}

func TestQuotes(t *testing.T) {
	arr := parse(t, "'x ''y '[a]")

	if arr.At(0).Depth() != 1 || arr.At(1).Depth() != 2 {
		t.Fatal("each tick should add one quote level")
	}

	c := arr.At(2)
	if c.Depth() != 1 || !block.Is(c.Heart()) {
		t.Fatal("a quote should apply to a whole block")
	}
}

func TestQuasiforms(t *testing.T) {
	arr := parse(t, "~boom~ ~ ~5~")

	if !arr.At(0).IsQuasi() || !word.Is(arr.At(0).Heart()) {
		t.Fatal("a tilde pair should make a quasi word")
	}

	if !arr.At(1).IsQuasi() || !blank.Is(arr.At(1).Heart()) {
		t.Fatal("a lone tilde should make the quasi blank")
	}

	if !arr.At(2).IsQuasi() || !num.Is(arr.At(2).Heart()) {
		t.Fatal("a numeric spelling should make a quasi number")
	}
}

func TestContainers(t *testing.T) {
	arr := parse(t, "[a [b]] (c)")

	b := block.To(arr.At(0).Heart())
	if b.Kind() != block.Plain || b.Array().Len() != 2 {
		t.Fatalf("got %s", b.Literal())
	}

	inner := block.To(b.Array().At(1).Heart())
	if inner.Array().Len() != 1 {
		t.Fatal("nesting should be preserved")
	}

	g := block.To(arr.At(1).Heart())
	if g.Kind() != block.Group {
		t.Fatal("parentheses should make a group")
	}
}

func TestSequences(t *testing.T) {
	arr := parse(t, "a.b.c s.2")

	q := seq.To(arr.At(0).Heart())
	if q.Len() != 3 || word.To(q.At(1).Heart()).Sym().String() != "b" {
		t.Fatalf("got %s", q.Literal())
	}

	q = seq.To(arr.At(1).Heart())
	if !num.Is(q.At(1).Heart()) {
		t.Fatal("a digit-led step should parse as a number")
	}
}

func TestTextEscapes(t *testing.T) {
	arr := parse(t, `"a\nb"`)

	if s := text.To(arr.At(0).Heart()).String(); s != "a\nb" {
		t.Fatalf("got %q, want %q", s, "a\nb")
	}
}

func TestIncomplete(t *testing.T) {
	for _, src := range []string{"[a b", "(x", "'", `"abc`, "[a (b"} {
		_, err := parser.New(sym.NewTable(), arena.New()).Parse("test", src)
		if !errors.Is(err, parser.ErrIncomplete) {
			t.Fatalf("parsing %q: got %v, want incomplete", src, err)
		}
	}
}

func TestMalformed(t *testing.T) {
	for _, src := range []string{"]", "a)", "[a)", "(b]", "a..b", "~abc"} {
		_, err := parser.New(sym.NewTable(), arena.New()).Parse("test", src)
		if err == nil || errors.Is(err, parser.ErrIncomplete) {
			t.Fatalf("parsing %q: got %v, want a failure", src, err)
		}
	}
}
