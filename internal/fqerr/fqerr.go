// Package fqerr defines the error kinds shared by the filter stages.
//
// Every failure that aborts a run is an *Error whose Kind is one of the
// sentinels below, so callers can branch with errors.Is without knowing which
// stage produced it. The underlying cause stays reachable through errors.Is
// and errors.As as well.
package fqerr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIO is returned when a file cannot be opened, read or written.
	ErrIO = errors.New("i/o error")
	// ErrDecompression is returned when a compressed stream is corrupt or
	// not in the format its suffix announces.
	ErrDecompression = errors.New("decompression error")
	// ErrFormat is returned when a FASTQ record cannot be parsed from the
	// input or rendered back to its four-line form.
	ErrFormat = errors.New("format error")
	// ErrInputContract is returned when an input path does not carry a
	// supported compression suffix.
	ErrInputContract = errors.New("input contract violation")
)

// Error is a classified failure.
type Error struct {
	Kind   error  // one of the sentinels above
	Op     string // open, read, decompress, parse, serialize, write, load
	Path   string
	Line   uint64 // 1-based line in the decompressed text, 0 if unknown
	Record uint64 // 1-based record ordinal, 0 if unknown
	Err    error
}

// New returns an *Error of the given kind.
func New(kind error, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// Errorf is New with a formatted cause.
func Errorf(kind error, op, path, format string, a ...any) *Error {
	return New(kind, op, path, fmt.Errorf(format, a...))
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}
	if e.Path != "" {
		b.WriteByte(' ')
		b.WriteString(e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, ":%d", e.Line)
	}
	if e.Record > 0 {
		fmt.Fprintf(&b, " (record %d)", e.Record)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns a short name for the kind of err, or "" when err is not
// classified.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrInputContract):
		return "input-contract"
	case errors.Is(err, ErrDecompression):
		return "decompression"
	case errors.Is(err, ErrFormat):
		return "format"
	case errors.Is(err, ErrIO):
		return "io"
	}
	return ""
}

// Classified reports whether err already carries one of the kinds.
func Classified(err error) bool {
	var fe *Error
	return errors.As(err, &fe)
}
