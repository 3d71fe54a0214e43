// Released under an MIT license. See LICENSE.

// Package array provides ren's ownership-tracked cell container.
package array

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
)

// T (array) is a growable sequence of cells. An array may be frozen
// (immutable) or detached (permanently inaccessible). Varlist arrays
// back contexts and are the only place stable isotopes may be stored.
type T struct {
	cells    []cell.T
	frozen   bool
	detached bool
	varlist  bool
}

type array = T

// New creates an array holding the cells cs.
func New(cs ...cell.T) *array {
	a := &array{cells: make([]cell.T, len(cs))}

	for i, c := range cs {
		a.check(c)
		a.cells[i] = c
	}

	return a
}

// Varlist creates an array of n unset slots for use as a context's
// variable list.
func Varlist(n int) *array {
	a := &array{cells: make([]cell.T, n), varlist: true}

	for i := range a.cells {
		a.cells[i] = cell.Unset()
	}

	return a
}

// Accessible returns false once the array a has been detached.
func (a *array) Accessible() bool {
	return !a.detached
}

// Append adds the cell c to the end of the array a.
func (a *array) Append(c cell.T) {
	a.mutable()
	a.check(c)

	a.cells = append(a.cells, c)
}

// At returns the cell at index i.
func (a *array) At(i int) cell.T {
	a.readable()

	if i < 0 || i >= len(a.cells) {
		failure.Raise(failure.Argument, "index %d out of bounds for length %d", i, len(a.cells))
	}

	return a.cells[i]
}

// Copy creates a thawed, accessible copy of the array a.
func (a *array) Copy() *array {
	a.readable()

	fresh := &array{cells: make([]cell.T, len(a.cells)), varlist: a.varlist}
	copy(fresh.cells, a.cells)

	return fresh
}

// Detach marks the array a permanently inaccessible. Outstanding
// references stay structurally valid but every operation fails.
func (a *array) Detach() {
	a.detached = true
}

// Freeze makes the array a immutable.
func (a *array) Freeze() {
	a.readable()

	a.frozen = true
}

// Frozen returns true if the array a is frozen.
func (a *array) Frozen() bool {
	return a.frozen
}

// Len returns the number of cells in the array a.
func (a *array) Len() int {
	a.readable()

	return len(a.cells)
}

// Set replaces the cell at index i with the cell c.
func (a *array) Set(i int, c cell.T) {
	a.mutable()
	a.check(c)

	if i < 0 || i >= len(a.cells) {
		failure.Raise(failure.Argument, "index %d out of bounds for length %d", i, len(a.cells))
	}

	a.cells[i] = c
}

// Slice returns the cells of the array a from index i on.
func (a *array) Slice(i int) []cell.T {
	a.readable()

	return a.cells[i:]
}

func (a *array) check(c cell.T) {
	if !c.IsIsotope() {
		return
	}

	if !a.varlist {
		failure.Raise(failure.Isotope, "a %s isotope cannot be placed in an array", cell.Label(c))
	}

	if !cell.Stable(c) {
		failure.Raise(failure.Isotope, "an unstable %s isotope cannot be stored in a variable", cell.Label(c))
	}
}

func (a *array) mutable() {
	a.readable()

	if a.frozen {
		failure.Raise(failure.Frozen, "cannot modify a frozen array")
	}
}

func (a *array) readable() {
	if a.detached {
		failure.Raise(failure.Access, "array storage has been detached")
	}
}
