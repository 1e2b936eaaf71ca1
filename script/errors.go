package script

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrSyntax marks scripts that are not well formed.
var ErrSyntax = errors.New("script syntax error")

// PositionError places an error at a line and column of a script. A zero
// line means the position is unknown.
type PositionError struct {
	File   string
	Line   int
	Column int
	Err    error
}

func (e *PositionError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("%s:%d:%d: %v", e.File, e.Line, e.Column, e.Err)
}

func (e *PositionError) Unwrap() error { return e.Err }

// ErrorPosition extracts the script position of err, if it has one.
func ErrorPosition(err error) (*PositionError, bool) {
	var pe *PositionError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
