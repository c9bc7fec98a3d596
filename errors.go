package pathcut

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPointData is returned when an operand isn't a pair of
	// comma-separated numbers.
	ErrInvalidPointData = errors.New("invalid point data")
	// ErrInvalidPathData is returned when the command stream is malformed,
	// such as operands without a command or a command with the wrong number
	// of operands.
	ErrInvalidPathData = errors.New("invalid path data")
	// ErrUnsupportedPathCommand is matched by every [UnsupportedCommandError].
	ErrUnsupportedPathCommand = errors.New("unsupported path command")
)

// UnsupportedCommandError reports a command letter other than M, L, Q, C or Z.
type UnsupportedCommandError struct {
	Command rune
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("unsupported path command %q", e.Command)
}

func (e *UnsupportedCommandError) Is(target error) bool {
	return target == ErrUnsupportedPathCommand
}

// SyntaxError describes where [ParsePath] failed. Token is the zero-based
// index of the offending whitespace-separated token.
type SyntaxError struct {
	Token int
	Text  string
	Err   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("path token %d (%q): %s", e.Token, e.Text, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
