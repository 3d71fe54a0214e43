// Released under an MIT license. See LICENSE.

// Package natives populates a user context with ren's built-in
// actions. Each native is an ordinary action whose dispatch function
// is Go code; natives that evaluate blocks participate in the
// trampoline like everything else.
package natives

import (
	"io"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/arena"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/param"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/vars"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/engine/task"
)

// Kit carries everything installing the natives needs.
type Kit struct {
	Syms  *sym.Table
	Arena *arena.T
	User  *vars.T
	Out   io.Writer
}

// Install defines every native and constant in the kit's user context.
func (k *Kit) Install() {
	k.consts()
	k.math()
	k.flow()
	k.values()
	k.funcs()
	k.output()
}

// consts binds the named values.
func (k *Kit) consts() {
	k.User.Append(k.Syms.New("true"), cell.True())
	k.User.Append(k.Syms.New("false"), cell.False())
	k.User.Append(k.Syms.New("null"), cell.Null())
}

// slot describes one parameter of a native.
type slot struct {
	name  string
	class param.Class
	types []string
}

// arg creates an ordinary parameter slot.
func arg(name string, types ...string) slot {
	return slot{name: name, class: param.Normal, types: types}
}

// opt creates a parameter slot that tolerates running out of input.
func opt(name string, types ...string) slot {
	return slot{name: name, class: param.Normal | param.Endable, types: types}
}

// define builds a native action and binds it in the user context.
func (k *Kit) define(name, desc string, d task.Dispatch, slots ...slot) *task.Action {
	staged := make([]task.Staged, len(slots))
	for i, s := range slots {
		staged[i] = task.Staged{
			Sym:  k.Syms.New(s.name),
			Cell: cell.New(param.New(s.class, s.types...)),
		}
	}

	ex := task.MakeExemplar(k.Arena, nil, staged)

	a := task.NewAction(d, ex, nil)
	a.SetMeta(task.NewMeta(k.Syms, k.Arena, desc))

	k.User.Append(k.Syms.New(name), cell.New(a))

	return a
}

// simple wraps a native that produces its result in one step.
func simple(fn func(m *task.T, f *task.Frame) cell.T) task.Dispatch {
	return func(m *task.T, f *task.Frame) task.Bounce {
		return task.Done{Value: fn(m, f)}
	}
}
