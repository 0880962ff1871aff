package command

import "errors"

// Domain errors for the command package.
var (
	// ErrInvalidCommand is returned when a verb does not apply to the
	// target entity's kind, or a command argument is out of range.
	ErrInvalidCommand = errors.New("command: not applicable")
)
