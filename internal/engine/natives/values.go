// Released under an MIT license. See LICENSE.

package natives

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/vars"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/logic"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/null"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/seq"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/void"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/word"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/engine/resolve"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/engine/task"
)

func (k *Kit) values() {
	k.define("quote", "Add one quoting level to a value.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return f.Arg(1).Quotify(1)
		}), arg("value"))

	k.define("unquote", "Remove one quoting level from a value.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return f.Arg(1).Unquotify(1)
		}), arg("value"))

	k.define("meta", "Lift a value into the inspectable domain.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return f.Arg(1).MetaQuotify()
		}), arg("value"))

	k.define("unmeta", "The exact inverse of meta.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return f.Arg(1).MetaUnquotify()
		}), arg("value"))

	k.define("reify", "Turn an isotope into its quasi form.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return f.Arg(1).Reify()
		}), arg("value"))

	k.define("copy", "An independent copy of a block or frame.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			v := f.Arg(1)

			switch h := v.Heart().(type) {
			case *block.T:
				arr := m.Arena().Track(h.Array().Copy())
				if h.Kind() == block.Group {
					return cell.New(block.NewGroup(arr))
				}

				return cell.New(block.New(arr))

			case *vars.T:
				fresh := h.Copy()
				fresh.Hold()
				m.Arena().Track(fresh.Varlist())

				return cell.New(fresh)
			}

			failure.Raise(failure.Argument, "cannot copy a %s", v.Name())

			return cell.T{}
		}), arg("value", "block", "group", "frame"))

	k.define("freeze", "Make a block permanently immutable.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			v := f.Arg(1)
			block.To(v.Heart()).Array().Freeze()

			return v
		}), arg("value", "block", "group"))

	k.define("get", "Fetch what a word or sequence refers to.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			v := f.Arg(1)

			switch h := v.Heart().(type) {
			case *word.T:
				ctx, i := m.Locate(h.Sym())
				if ctx == nil {
					failure.Raise(failure.Unbound, "%s is not bound", h.Sym().String())
				}

				return ctx.At(i)

			case *seq.T:
				return m.Resolve(h)
			}

			failure.Raise(failure.Argument, "cannot get a %s", v.Name())

			return cell.T{}
		}), arg("target", "word", "sequence"))

	k.define("set", "Store a value through a word or sequence.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			v := f.Arg(2)

			switch h := f.Arg(1).Heart().(type) {
			case *word.T:
				m.Assign(h.Sym(), v)
			case *seq.T:
				m.ResolveSet(h, v)
			}

			return v
		}), arg("target", "word", "sequence"), arg("value"))

	k.define("pick", "Index one step into a container.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return resolve.Pick(f.Arg(1), f.Arg(2))
		}), arg("container", "block", "group", "frame", "sequence"), arg("key", "word", "number"))

	k.define("poke", "Write one step into a container.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			c, changed := resolve.Poke(f.Arg(1), f.Arg(2), f.Arg(3))
			if changed {
				return c
			}

			return f.Arg(3)
		}), arg("container", "block", "group", "frame", "sequence"),
		arg("key", "word", "number"), arg("value"))

	k.define("null?", "Is the value a null of either strength?",
		simple(func(m *task.T, f *task.Frame) cell.T {
			v := f.Arg(1)

			return cell.New(logic.Bool(!v.IsQuoted() && !v.IsQuasi() && null.Is(v.Heart())))
		}), arg("value"))

	k.define("void?", "Is the value the void isotope?",
		simple(func(m *task.T, f *task.Frame) cell.T {
			v := f.Arg(1)

			return cell.New(logic.Bool(v.IsIsotope() && void.Is(v.Heart())))
		}), arg("value"))
}
