// Released under an MIT license. See LICENSE.

// Package arena tracks every container and keylist a runtime instance
// references, so that an external collector can enumerate them. The
// arena manages no collection policy of its own.
package arena

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/array"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/keylist"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
)

// T (arena) owns the handles for a runtime's keylists and arrays.
type T struct {
	arrays   []*array.T
	keylists []*keylist.T
}

// New creates an empty arena.
func New() *T {
	return &T{}
}

// Array creates an array from the cells cs and tracks it.
func (a *T) Array(cs ...cell.T) *array.T {
	return a.Track(array.New(cs...))
}

// Varlist creates a varlist of n unset slots and tracks it.
func (a *T) Varlist(n int) *array.T {
	return a.Track(array.Varlist(n))
}

// Keylist creates a keylist with the ancestor anc and the symbols ss,
// tracks it, and assigns its handle.
func (a *T) Keylist(anc *keylist.T, ss ...*sym.T) *keylist.T {
	k := keylist.New(anc, ss...)
	k.Register(len(a.keylists))
	a.keylists = append(a.keylists, k)

	return k
}

// Track records an externally created array.
func (a *T) Track(arr *array.T) *array.T {
	a.arrays = append(a.arrays, arr)

	return arr
}

// EachArray calls f for every tracked array.
func (a *T) EachArray(f func(*array.T)) {
	for _, arr := range a.arrays {
		f(arr)
	}
}

// EachKeylist calls f for every tracked keylist.
func (a *T) EachKeylist(f func(*keylist.T)) {
	for _, k := range a.keylists {
		f(k)
	}
}

// Keylists returns the number of tracked keylists.
func (a *T) Keylists() int {
	return len(a.keylists)
}

// Arrays returns the number of tracked arrays.
func (a *T) Arrays() int {
	return len(a.arrays)
}
