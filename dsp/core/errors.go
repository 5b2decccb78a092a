package core

import "errors"

// Error kinds returned by the dynamics packages. Callers match them with
// errors.Is; returned errors wrap them with operation context.
var (
	// ErrInvalidArgument reports a precondition violation in the inputs,
	// such as a non-positive window size or a mismatched buffer shape.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState reports an operation attempted on an object that is
	// not ready for it, such as interpolating an empty envelope.
	ErrInvalidState = errors.New("invalid state")
	// ErrIndexOutOfRange reports positional access outside a sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
)
