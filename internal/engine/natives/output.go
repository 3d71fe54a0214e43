// Released under an MIT license. See LICENSE.

package natives

import (
	"fmt"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/text"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/engine/task"
)

func (k *Kit) output() {
	k.define("print", "Write a value and a newline.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			v := f.Arg(1)

			if t, ok := v.Heart().(*text.T); ok && v.IsPlain() {
				fmt.Fprintln(k.Out, t.String())
			} else {
				fmt.Fprintln(k.Out, cell.Literal(v))
			}

			return cell.Voided()
		}), arg("value"))

	k.define("probe", "Write a value's literal form and pass it through.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			v := f.Arg(1)

			s := cell.Literal(v)
			if v.IsIsotope() {
				s += "  ; isotope"
			}

			fmt.Fprintln(k.Out, s)

			return v
		}), arg("value"))
}
