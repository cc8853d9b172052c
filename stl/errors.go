package stl

import (
	"errors"
	"fmt"
)

var (
	ErrContentOutsideSection = errors.New("content outside of a section")
	ErrUnknownSection        = errors.New("unknown section")
	ErrUnterminatedSection   = errors.New("unterminated section marker")
	ErrTrailingText          = errors.New("unexpected text after section marker")
	ErrDuplicateSection      = errors.New("duplicate section")
	ErrSectionRowLimit       = errors.New("section allows a single row")
	ErrDanglingEscape        = errors.New("escape at end of line")
	ErrMergeWithoutCell      = errors.New("merge marker without a preceding cell")
	ErrInputTooLarge         = errors.New("input too large")
)

// SyntaxError describes malformed STL input
type SyntaxError struct {
	Line int // 1-based
	Col  int // 1-based, counted in runes
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("stl: line %d, col %d: %v", e.Line, e.Col, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
