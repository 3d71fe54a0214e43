// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
)

// Bounce is the instruction a frame's dispatch function hands back to
// the trampoline. Dispatchers never call each other on the Go stack;
// composition of any depth runs in the machine's loop.
type Bounce interface {
	bounce()
}

// Done reports that the top frame has produced its result.
type Done struct {
	Value cell.T
}

// Continue asks the machine to make the frame Frame the new top. The
// frame must have been created with the current top as its prior.
type Continue struct {
	Frame *Frame
}

// Thrown carries a value nonlocally to the still-active frame Target.
// Every frame above the target is popped and its storage released.
type Thrown struct {
	Target *Frame
	Value  cell.T
}

// Raised carries a recoverable failure outward to the nearest frame
// that elected to catch failures.
type Raised struct {
	Err *failure.T
}

// Unhandled reports that a dispatch function did not recognize the
// state it was resumed in. The machine treats this as a failure.
type Unhandled struct{}

func (Done) bounce()      {}
func (Continue) bounce()  {}
func (Thrown) bounce()    {}
func (Raised) bounce()    {}
func (Unhandled) bounce() {}
