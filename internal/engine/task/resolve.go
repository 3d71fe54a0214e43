// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/seq"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/engine/resolve"
)

// Resolve reads the value a sequence refers to. Resolution started by
// the evaluator permits groups embedded in the sequence to run.
func (m *task) Resolve(q *seq.T) cell.T {
	return resolve.Get(m, q, m.subEval)
}

// ResolveSet writes the value c through a sequence, rebuilding and
// writing back any immutable steps.
func (m *task) ResolveSet(q *seq.T, c cell.T) {
	resolve.Set(m, q, c, m.subEval)
}

// subEval runs a group on a nested machine whose scope chains to this
// one. Each nesting level costs one Go frame; derivation depth never
// does.
func (m *task) subEval(b *block.T) cell.T {
	sub := &task{outer: m, user: m.user, syms: m.syms, arena: m.arena}

	r, err := sub.Evaluate(cell.New(b))
	if err != nil {
		panic(err.(*failure.T))
	}

	return r
}
