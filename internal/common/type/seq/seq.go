// Released under an MIT license. See LICENSE.

// Package seq provides ren's dotted sequence payload type.
package seq

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/heart"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/interface/literal"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
)

const name = "sequence"

// T (seq) is a multi-part reference like a.b.c. Its steps are plain
// cells: words, numbers, or groups. A sequence is immutable; updates
// through one are performed by the resolution engine's writeback.
type T struct {
	steps []cell.T
}

type seq = T

// New creates a sequence from the step cells ss.
func New(ss ...cell.T) *seq {
	if len(ss) < 2 {
		failure.Raise(failure.Sequence, "a sequence needs at least two steps")
	}

	return &seq{steps: ss}
}

// At returns the step at index i.
func (q *seq) At(i int) cell.T {
	return q.steps[i]
}

// Equal returns true if h is a sequence with equal steps.
func (q *seq) Equal(h heart.I) bool {
	if !Is(h) || To(h).Len() != q.Len() {
		return false
	}

	for i, s := range q.steps {
		if !cell.Equal(s, To(h).steps[i]) {
			return false
		}
	}

	return true
}

// Len returns the number of steps in the sequence q.
func (q *seq) Len() int {
	return len(q.steps)
}

// Literal returns the literal representation of the sequence q.
func (q *seq) Literal() string {
	s := ""

	for i, c := range q.steps {
		if i > 0 {
			s += "."
		}

		s += cell.Literal(c)
	}

	return s
}

// Name returns the type name for the sequence q.
func (q *seq) Name() string {
	return name
}

// Steps returns the step cells of the sequence q.
func (q *seq) Steps() []cell.T {
	return q.steps
}

// String returns the text representation of the sequence q.
func (q *seq) String() string {
	return q.Literal()
}

// With returns a new sequence equal to q but with the step at index i
// replaced by the cell c.
func (q *seq) With(i int, c cell.T) *seq {
	steps := make([]cell.T, len(q.steps))
	copy(steps, q.steps)
	steps[i] = c

	return &seq{steps: steps}
}

// Is returns true if h is a sequence.
func Is(h heart.I) bool {
	_, ok := h.(*seq)

	return ok
}

// To returns a sequence if h is a sequence; Otherwise it panics.
func To(h heart.I) *seq {
	if q, ok := h.(*seq); ok {
		return q
	}

	panic(h.Name() + " cannot be used in a sequence context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t seq

	// The seq type is a heart.
	_ = heart.I(&t)

	// The seq type has a literal representation.
	_ = literal.I(&t)

	// The seq type is a stringer.
	_ = common.Stringer(&t)
}
