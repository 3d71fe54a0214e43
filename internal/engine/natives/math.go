// Released under an MIT license. See LICENSE.

package natives

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/logic"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/num"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/engine/task"
)

func (k *Kit) math() {
	k.define("add", "Add two numbers.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return cell.New(num.Add(f.Arg(1).Heart(), f.Arg(2).Heart()))
		}), arg("a", "number"), arg("b", "number"))

	k.define("subtract", "Subtract b from a.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return cell.New(num.Sub(f.Arg(1).Heart(), f.Arg(2).Heart()))
		}), arg("a", "number"), arg("b", "number"))

	k.define("multiply", "Multiply two numbers.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return cell.New(num.Mul(f.Arg(1).Heart(), f.Arg(2).Heart()))
		}), arg("a", "number"), arg("b", "number"))

	k.define("abs", "The absolute value of a number.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return cell.New(num.Abs(f.Arg(1).Heart()))
		}), arg("value", "number"))

	k.define("negate", "A number with its sign flipped.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return cell.New(num.Sub(num.Int(0), f.Arg(1).Heart()))
		}), arg("value", "number"))

	k.define("equal?", "Are two values equal?",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return cell.New(logic.Bool(cell.Equal(f.Arg(1), f.Arg(2))))
		}), arg("a"), arg("b"))

	k.define("lesser?", "Is a less than b?",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return cell.New(logic.Bool(num.Cmp(f.Arg(1).Heart(), f.Arg(2).Heart()) < 0))
		}), arg("a", "number"), arg("b", "number"))

	k.define("greater?", "Is a greater than b?",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return cell.New(logic.Bool(num.Cmp(f.Arg(1).Heart(), f.Arg(2).Heart()) > 0))
		}), arg("a", "number"), arg("b", "number"))

	k.define("not", "The logical complement of a value's truth.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return cell.New(logic.Bool(!cell.Truthy(f.Arg(1))))
		}), arg("value"))
}
