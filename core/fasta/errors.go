package fasta

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen matches every *OpenError.
	ErrOpen = errors.New("could not open sequence file")
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("malformed sequence file")
)

// OpenError reports a sequence file that could not be opened or decompressed.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("could not open file %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

func (e *OpenError) Is(target error) bool { return target == ErrOpen }

// ParseError reports content that is not valid FASTA. Line is 1-based;
// zero means the position is unknown (e.g. a decompression failure).
type ParseError struct {
	Path string
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	where := e.Path
	if where == "" {
		where = "<input>"
	}
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", where, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", where, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", where, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }
