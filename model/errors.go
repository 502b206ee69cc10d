package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrSaveFailed is returned by Board.Iterate when a snapshot could not be written
var ErrSaveFailed = errors.New("could not save board")

// NotFoundError reports an input file that cannot be opened for reading
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file does not exist: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// FormatError reports a line of the input that breaks the board grammar.
// Ragged lines carry Width and Got, unknown cell symbols carry Char.
type FormatError struct {
	Line   int
	Ragged bool
	Width  int
	Got    int
	Char   byte
}

func (e *FormatError) Error() string {
	if !e.Ragged {
		return fmt.Sprintf("found unknown cell status: %q (line %d)", e.Char, e.Line)
	}
	return fmt.Sprintf("input file has lines with different lengths: line %d (got %d, want %d)",
		e.Line, e.Got, e.Width)
}
