package scene

import (
	"errors"
	"fmt"
)

// LoopError wraps the error that stopped the render loop together with
// the frame it happened on.
type LoopError struct {
	Frame   int
	State   State
	Wrapped error
}

func (e *LoopError) Error() string {
	return fmt.Sprintf("scene: frame %d: %v", e.Frame, e.Wrapped)
}

func (e *LoopError) Unwrap() error {
	return e.Wrapped
}

// ErrUnknownBackend is returned when no backend is registered under a name.
var ErrUnknownBackend = errors.New("scene: unknown backend")
