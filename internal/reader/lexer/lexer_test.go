// Released under an MIT license. See LICENSE.

package lexer_test

import (
	"testing"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/token"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/reader/lexer"
)

type expected struct {
	class token.Class
	value string
}

func scan(src string) []*token.T {
	l := lexer.New("test")
	l.Scan(src)

	ts := []*token.T{}
	for t := l.Token(); t != nil; t = l.Token() {
		ts = append(ts, t)
	}

	return ts
}

func check(t *testing.T, src string, es []expected) {
	t.Helper()

	ts := scan(src)

	if len(ts) != len(es) {
		t.Fatalf("scanning %q: got %d tokens, want %d", src, len(ts), len(es))
	}

	for i, e := range es {
		if ts[i].Class() != e.class {
			t.Fatalf("scanning %q: token %d is %s, want class %d", src, i, ts[i].String(), e.class)
		}

		if ts[i].Value() != e.value {
			t.Fatalf("scanning %q: token %d is %q, want %q", src, i, ts[i].Value(), e.value)
		}
	}
}

func TestAtoms(t *testing.T) {
	check(t, "add 1 -2 3.5", []expected{
		{token.Word, "add"},
		{token.Number, "1"},
		{token.Number, "-2"},
		{token.Number, "3.5"},
	})
}

func TestDelimiters(t *testing.T) {
	check(t, "[x] (y) 'z", []expected{
		{'[', "["},
		{token.Word, "x"},
		{']', "]"},
		{'(', "("},
		{token.Word, "y"},
		{')', ")"},
		{'\'', "'"},
		{token.Word, "z"},
	})
}

func TestQuasi(t *testing.T) {
	check(t, "~boom~ ~ ~-1~", []expected{
		{token.Quasi, "boom"},
		{token.Quasi, ""},
		{token.Quasi, "-1"},
	})
}

func TestText(t *testing.T) {
	// Escapes stay raw; the parser interprets them.
	check(t, `"hi" "a\nb" ""`, []expected{
		{token.Text, "hi"},
		{token.Text, `a\nb`},
		{token.Text, ""},
	})
}

func TestSequencesAndWordFlavors(t *testing.T) {
	check(t, "a.b.c s.2 x: :y", []expected{
		{token.Sequence, "a.b.c"},
		{token.Sequence, "s.2"},
		{token.Word, "x:"},
		{token.Word, ":y"},
	})
}

func TestComments(t *testing.T) {
	check(t, "one ; two three\nfour", []expected{
		{token.Word, "one"},
		{token.Word, "four"},
	})
}

func TestUnterminatedText(t *testing.T) {
	l := lexer.New("test")
	l.Scan(`"abc`)

	if tok := l.Token(); tok != nil {
		t.Fatalf("got %s, want no token", tok.String())
	}

	// The cut-off token is still pending, which is how callers detect
	// incomplete input.
	if l.Text() == "" {
		t.Fatal("the unterminated text should remain pending")
	}
}

func TestScanAcrossBuffers(t *testing.T) {
	l := lexer.New("test")
	l.Scan("add ")
	l.Scan("1 2")

	classes := []token.Class{}
	for tok := l.Token(); tok != nil; tok = l.Token() {
		classes = append(classes, tok.Class())
	}

	if len(classes) != 3 || classes[0] != token.Word || classes[2] != token.Number {
		t.Fatalf("got %d tokens, want word number number", len(classes))
	}
}
