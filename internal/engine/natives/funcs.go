// Released under an MIT license. See LICENSE.

package natives

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/word"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/engine/derive"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/engine/task"
)

func (k *Kit) funcs() {
	k.define("func", "Create an action from a spec and a body.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			spec := block.To(f.Arg(1).Heart()).Array()
			body := block.To(f.Arg(2).Heart()).Array()

			return cell.New(task.NewFunc(m.Syms(), m.Arena(), spec, body))
		}), arg("spec", "block"), arg("body", "block"))

	k.define("specialize", "Fix some of an action's arguments.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			a := action(f.Arg(1))

			return cell.New(derive.Specialize(m.Syms(), m.Arena(), a, fills(f.Arg(2))))
		}), arg("action", "action"), arg("with", "block"))

	k.define("adapt", "Run a prelude in the argument frame first.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			a := action(f.Arg(1))
			prelude := block.To(f.Arg(2).Heart()).Array()

			return cell.New(derive.Adapt(m.Syms(), m.Arena(), a, prelude))
		}), arg("action", "action"), arg("prelude", "block"))

	k.define("enclose", "Hand an action's gathered frame to an outer action.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			inner := action(f.Arg(1))
			outer := action(f.Arg(2))

			return cell.New(derive.Enclose(m.Syms(), m.Arena(), inner, outer, true))
		}), arg("inner", "action"), arg("outer", "action"))

	k.define("enclose-copy", "Like enclose, but the outer action receives a copy.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			inner := action(f.Arg(1))
			outer := action(f.Arg(2))

			return cell.New(derive.Enclose(m.Syms(), m.Arena(), inner, outer, false))
		}), arg("inner", "action"), arg("outer", "action"))

	k.define("chain", "Pipe an action's result through more actions.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			arr := block.To(f.Arg(1).Heart()).Array()

			acts := make([]*task.Action, 0, arr.Len())

			for i := 0; i < arr.Len(); i++ {
				acts = append(acts, k.linked(m, arr.At(i)))
			}

			return cell.New(derive.Chain(m.Syms(), m.Arena(), acts))
		}), arg("pipeline", "block"))

	k.define("augment", "Append parameter slots to an action's interface.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			a := action(f.Arg(1))
			spec := block.To(f.Arg(2).Heart()).Array()

			return cell.New(derive.Augment(m.Syms(), m.Arena(), a, spec))
		}), arg("action", "action"), arg("spec", "block"))

	k.define("hijack", "Replace an action's behavior everywhere.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			victim := action(f.Arg(1))
			donor := action(f.Arg(2))

			derive.Hijack(victim, donor)

			return f.Arg(1)
		}), arg("victim", "action"), arg("donor", "action"))

	k.define("return", "Return a value from the enclosing function.",
		func(m *task.T, f *task.Frame) task.Bounce {
			v := f.Arg(1)
			if cell.Equal(v, cell.EndSignal()) {
				v = cell.Voided()
			}

			return m.ReturnBounce(f, v)
		}, opt("value"))

	k.define("unwind", "Throw a value to a still-active frame.",
		func(m *task.T, f *task.Frame) task.Bounce {
			return m.UnwindBounce(f, f.Arg(1), f.Arg(2))
		}, arg("target", "frame", "number", "action"), arg("value"))
}

// action requires the cell c to be a plain action.
func action(c cell.T) *task.Action {
	a, ok := c.Heart().(*task.Action)
	if !ok || !c.IsPlain() {
		failure.Raise(failure.Argument, "expected an action, not a %s", c.Name())
	}

	return a
}

// fills reads a specialization block: each set-word names a slot and
// the cell after it is the value the slot is fixed to.
func fills(c cell.T) []derive.Fill {
	arr := block.To(c.Heart()).Array()

	fs := []derive.Fill{}

	for i := 0; i < arr.Len(); i++ {
		w, ok := arr.At(i).Heart().(*word.T)
		if !ok || w.Kind() != word.Setting {
			failure.Raise(failure.Argument, "a specialization names slots with set-words")
		}

		if i+1 >= arr.Len() {
			failure.Raise(failure.Argument, "%s has no value to fix", w.Sym().String())
		}

		i++

		v := arr.At(i)
		if v.IsQuoted() {
			v = v.Unquotify(1)
		}

		fs = append(fs, derive.Fill{Sym: w.Sym(), Value: v})
	}

	return fs
}

// linked resolves one pipeline entry: an action, or a get-word
// referring to one.
func (k *Kit) linked(m *task.T, c cell.T) *task.Action {
	if w, ok := c.Heart().(*word.T); ok {
		ctx, i := m.Locate(w.Sym())
		if ctx == nil {
			failure.Raise(failure.Unbound, "%s is not bound", w.Sym().String())
		}

		return action(ctx.At(i))
	}

	return action(c)
}
