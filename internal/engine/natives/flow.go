// Released under an MIT license. See LICENSE.

package natives

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/vars"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/null"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/unset"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/void"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/engine/task"
)

// ran marks a continuation native whose branch has been evaluated.
const ran = task.StateDispatcherBase

func (k *Kit) flow() {
	k.define("if", "Evaluate the branch when the condition is truthy.",
		func(m *task.T, f *task.Frame) task.Bounce {
			switch f.State() {
			case task.StateDispatching:
				if !cell.Truthy(f.Arg(1)) {
					return task.Done{Value: cell.Null()}
				}

				f.SetState(ran)

				return task.Continue{Frame: branch(m, f.Arg(2))}

			case ran:
				return task.Done{Value: branched(f.Out())}
			}

			return task.Unhandled{}
		}, arg("condition"), arg("branch", "block"))

	k.define("either", "Evaluate one branch or the other.",
		func(m *task.T, f *task.Frame) task.Bounce {
			switch f.State() {
			case task.StateDispatching:
				f.SetState(ran)

				b := f.Arg(2)
				if !cell.Truthy(f.Arg(1)) {
					b = f.Arg(3)
				}

				return task.Continue{Frame: branch(m, b)}

			case ran:
				return task.Done{Value: branched(f.Out())}
			}

			return task.Unhandled{}
		}, arg("condition"), arg("truthy", "block"), arg("falsey", "block"))

	k.define("then", "Evaluate the branch unless the value is absent.",
		func(m *task.T, f *task.Frame) task.Bounce {
			switch f.State() {
			case task.StateDispatching:
				v := f.Arg(1)
				if absent(v) {
					return task.Done{Value: v}
				}

				f.SetState(ran)

				return task.Continue{Frame: branch(m, f.Arg(2))}

			case ran:
				return task.Done{Value: branched(f.Out())}
			}

			return task.Unhandled{}
		}, arg("value"), arg("branch", "block"))

	k.define("else", "Evaluate the branch only when the value is absent.",
		func(m *task.T, f *task.Frame) task.Bounce {
			switch f.State() {
			case task.StateDispatching:
				v := f.Arg(1)
				if !absent(v) {
					return task.Done{Value: v}
				}

				f.SetState(ran)

				return task.Continue{Frame: branch(m, f.Arg(2))}

			case ran:
				return task.Done{Value: branched(f.Out())}
			}

			return task.Unhandled{}
		}, arg("value"), arg("branch", "block"))

	k.define("try", "Evaluate a block, catching any raised failure.",
		func(m *task.T, f *task.Frame) task.Bounce {
			switch f.State() {
			case task.StateDispatching:
				f.SetState(ran)

				b := branch(m, f.Arg(1))
				f.Catch()

				return task.Continue{Frame: b}

			case ran:
				return task.Done{Value: f.Out()}
			}

			return task.Unhandled{}
		}, arg("block", "block"))

	k.define("opt", "Turn an absent or soft null value into plain null.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			v := f.Arg(1)
			if absent(v) || cell.Equal(v, cell.SoftNull()) {
				return cell.Null()
			}

			return v
		}), arg("value"))

	k.define("decay", "Collapse a named isotope to its ordinary value.",
		simple(func(m *task.T, f *task.Frame) cell.T {
			return cell.Decay(f.Arg(1))
		}), arg("value"))

	k.define("do", "Evaluate a block, or run a captured frame.",
		func(m *task.T, f *task.Frame) task.Bounce {
			switch f.State() {
			case task.StateDispatching:
				f.SetState(ran)

				v := f.Arg(1)

				switch h := v.Heart().(type) {
				case *block.T:
					return task.Continue{Frame: m.StepperFrame(task.NewFeed(h.Array()), false)}

				case *vars.T:
					return task.Continue{Frame: m.DoFrame(h)}
				}

				failure.Raise(failure.Argument, "cannot do a %s", v.Name())

			case ran:
				return task.Done{Value: f.Out()}
			}

			return task.Unhandled{}
		}, arg("value", "block", "group", "frame"))
}

// branch turns a branch argument into a frame evaluating it.
func branch(m *task.T, b cell.T) *task.Frame {
	return m.StepperFrame(task.NewFeed(block.To(b.Heart()).Array()), false)
}

// branched boxes the result of a branch that ran: a plain null becomes
// the soft null, so "the branch produced null" and "no branch ran" stay
// distinguishable downstream.
func branched(v cell.T) cell.T {
	if v.IsPlain() && null.Is(v.Heart()) {
		return cell.SoftNull()
	}

	return v
}

// absent returns true for the values that read as "nothing happened":
// plain null and the void and unset isotopes. The soft null produced
// by a branch that ran is not absent.
func absent(v cell.T) bool {
	if v.IsQuoted() || v.IsQuasi() {
		return false
	}

	if v.IsIsotope() {
		return void.Is(v.Heart()) || unset.Is(v.Heart())
	}

	return null.Is(v.Heart())
}
