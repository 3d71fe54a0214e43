// Released under an MIT license. See LICENSE.

// Package engine ties a symbol table, an arena, a user context, and
// the built-in actions together into one ren runtime instance. Nothing
// here is global: two engines never share storage.
package engine

import (
	"io"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/arena"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/vars"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/engine/natives"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/engine/task"
)

// T (engine) is one independent runtime instance.
type T struct {
	syms  *sym.Table
	arena *arena.T
	user  *vars.T
}

type engine = T

// New creates an engine whose natives write to out.
func New(out io.Writer) *engine {
	syms := sym.NewTable()
	ar := arena.New()

	user := vars.New(ar.Keylist(nil))
	ar.Track(user.Varlist())
	user.Hold()

	k := &natives.Kit{Syms: syms, Arena: ar, User: user, Out: out}
	k.Install()

	return &engine{syms: syms, arena: ar, user: user}
}

// Arena returns the engine's arena, for storage enumeration.
func (e *engine) Arena() *arena.T {
	return e.arena
}

// Evaluate runs the block c on a fresh machine.
func (e *engine) Evaluate(c cell.T) (cell.T, error) {
	return task.New(e.syms, e.arena, e.user).Evaluate(c)
}

// Syms returns the engine's symbol table.
func (e *engine) Syms() *sym.Table {
	return e.syms
}

// User returns the engine's user context.
func (e *engine) User() *vars.T {
	return e.user
}
