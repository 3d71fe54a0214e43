// Released under an MIT license. See LICENSE.

// Package keylist provides the ordered symbol list describing a context's shape.
package keylist

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
)

// T (keylist) is an immutable-by-convention list of interned symbols.
// A keylist derived by augmentation records the keylist it extends as
// its ancestor; compatibility checks walk that chain iteratively.
type T struct {
	ancestor *T
	handle   int
	syms     []*sym.T
}

type keylist = T

// New creates a keylist with the ancestor a and the symbols ss.
func New(a *keylist, ss ...*sym.T) *keylist {
	return &keylist{ancestor: a, handle: -1, syms: ss}
}

// Ancestor returns the keylist this keylist was derived from, or nil.
func (k *keylist) Ancestor() *keylist {
	return k.ancestor
}

// Append adds the symbol s to the keylist k. Only unshared keylists,
// like the one backing the user context, should grow.
func (k *keylist) Append(s *sym.T) {
	k.syms = append(k.syms, s)
}

// At returns the symbol at index i.
func (k *keylist) At(i int) *sym.T {
	return k.syms[i]
}

// Handle returns the arena handle for the keylist k, or -1.
func (k *keylist) Handle() int {
	return k.handle
}

// IndexOf returns the index of the symbol s, or -1 if absent.
func (k *keylist) IndexOf(s *sym.T) int {
	for i, v := range k.syms {
		if v == s {
			return i
		}
	}

	return -1
}

// Len returns the number of symbols in the keylist k.
func (k *keylist) Len() int {
	return len(k.syms)
}

// Register records the arena handle for the keylist k.
func (k *keylist) Register(h int) {
	k.handle = h
}

// Derived returns true if the keylist d is the keylist b or descends
// from it through augmentation.
func Derived(d, b *keylist) bool {
	for ; d != nil; d = d.ancestor {
		if d == b {
			return true
		}
	}

	return false
}
