package acct

import (
	"errors"
	"fmt"
)

var (
	// MT: Constant after initialization; immutable
	ErrUnknownFormat = errors.New("Unrecognized accounting file format")
	SyntaxErr        = errors.New("Line syntax error")
)

// LineError locates a failure within one accounting file.
type LineError struct {
	Path    string
	LineNo  int // 1-based
	Dialect DialectName
	Err     error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s line %d (%s): %v", e.Path, e.LineNo, e.Dialect, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
