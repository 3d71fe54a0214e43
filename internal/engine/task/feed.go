// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/array"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
)

// Feed is a read cursor over an array of source cells. An invocation
// shares the feed of the frame that started it, so the arguments it
// gathers are consumed from the caller's input.
type Feed struct {
	arr   *array.T
	index int
}

// NewFeed creates a feed positioned at the start of the array a.
func NewFeed(a *array.T) *Feed {
	return &Feed{arr: a}
}

// More returns true if the feed has cells remaining.
func (fd *Feed) More() bool {
	return fd.arr.Accessible() && fd.index < fd.arr.Len()
}

// Next consumes and returns the next cell.
func (fd *Feed) Next() cell.T {
	if !fd.More() {
		failure.Raise(failure.Access, "read past the end of input")
	}

	c := fd.arr.At(fd.index)
	fd.index++

	return c
}

// Peek returns the next cell without consuming it.
func (fd *Feed) Peek() cell.T {
	if !fd.More() {
		failure.Raise(failure.Access, "peek past the end of input")
	}

	return fd.arr.At(fd.index)
}
