// Released under an MIT license. See LICENSE.

// Package word provides ren's word payload types.
package word

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/literal"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
)

// Kind distinguishes the word flavors the evaluator treats differently.
type Kind byte

// Word flavors.
const (
	Normal Kind = iota
	Setting
	Getting
)

// T (word) is a symbol with an evaluator flavor.
type T struct {
	sym  *sym.T
	kind Kind
}

type word = T

// New creates a normal word for the sym s.
func New(s *sym.T) *word {
	return &word{sym: s}
}

// SetWord creates a set-word (name:) for the sym s.
func SetWord(s *sym.T) *word {
	return &word{sym: s, kind: Setting}
}

// GetWord creates a get-word (:name) for the sym s.
func GetWord(s *sym.T) *word {
	return &word{sym: s, kind: Getting}
}

// Equal returns true if h is a word with the same sym and kind.
func (w *word) Equal(h heart.I) bool {
	return Is(h) && w.sym == To(h).sym && w.kind == To(h).kind
}

// Kind returns the flavor of the word w.
func (w *word) Kind() Kind {
	return w.kind
}

// Literal returns the literal representation of the word w.
func (w *word) Literal() string {
	switch w.kind {
	case Setting:
		return w.sym.Literal() + ":"
	case Getting:
		return ":" + w.sym.Literal()
	}

	return w.sym.Literal()
}

// Name returns the type name for the word w.
func (w *word) Name() string {
	switch w.kind {
	case Setting:
		return "set-word"
	case Getting:
		return "get-word"
	}

	return "word"
}

// String returns the spelling of the word w.
func (w *word) String() string {
	return w.sym.String()
}

// Sym returns the interned symbol for the word w.
func (w *word) Sym() *sym.T {
	return w.sym
}

// Is returns true if h is a word.
func Is(h heart.I) bool {
	_, ok := h.(*word)

	return ok
}

// To returns a word if h is a word; Otherwise it panics.
func To(h heart.I) *word {
	if w, ok := h.(*word); ok {
		return w
	}

	panic(h.Name() + " cannot be used in a word context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t word

	// The word type is a heart.
	_ = heart.I(&t)

	// The word type has a literal representation.
	_ = literal.I(&t)

	// The word type is a stringer.
	_ = common.Stringer(&t)
}
