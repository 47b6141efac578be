package types

import (
	"errors"
	"fmt"
)

// Record is one vocabulary row. File is the base name of the data file the
// row was read from; it lives in memory only and is never written back.
type Record struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Tags  string `json:"tags"`
	File  string `json:"file"`
}

// Load and persistence errors.
var (
	ErrFileRead  = errors.New("cannot read data file")
	ErrFileWrite = errors.New("cannot write data file")
	ErrParse     = errors.New("malformed data file")
	ErrDirectory = errors.New("cannot list vocabulary directory")
)

// ErrCatalogClosed is returned by queries on a catalog after Close.
var ErrCatalogClosed = errors.New("catalog is closed")

// ParseError reports a row structure problem in a data file. It matches
// ErrParse under errors.Is.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %v", ErrParse, e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrParse, e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrParse as a match so callers need not know the concrete type.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
