// Package idset loads identifier lists into an exact-match set.
package idset

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"fqfilter/internal/fqerr"
)

// maxLine allows very long identifiers (64 MiB).
const maxLine = 64 * 1024 * 1024

// Set is an unordered collection of identifiers. It is read-only once built.
type Set struct {
	m map[string]struct{}
}

// New returns a set holding ids. Duplicates collapse.
func New(ids ...string) *Set {
	s := &Set{m: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.m[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set, comparing bytes exactly.
// A nil set contains nothing.
func (s *Set) Contains(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.m[id]
	return ok
}

// Len returns the number of distinct identifiers.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// Load reads the identifier list at path. See Read for the line rules.
func Load(path string, logger *slog.Logger) (*Set, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fqerr.New(fqerr.ErrIO, "load", path, err)
	}
	defer fh.Close()
	return read(fh, path, logger)
}

// Read builds a set from r, one identifier per line. Only the line
// terminator ("\n" or "\r\n") is removed; everything else is kept verbatim,
// so an empty line contributes the empty identifier. Lines must be valid
// UTF-8. Each identifier is logged at debug level when logger is non-nil.
func Read(r io.Reader, logger *slog.Logger) (*Set, error) {
	return read(r, "", logger)
}

func read(r io.Reader, path string, logger *slog.Logger) (*Set, error) {
	s := New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Bytes()
		if !utf8.Valid(line) {
			return nil, fqerr.Errorf(fqerr.ErrIO, "load", path, "line %d is not valid UTF-8 text", ln)
		}
		id := string(line)
		if logger != nil {
			logger.Debug("id", "value", id)
		}
		s.m[id] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fqerr.New(fqerr.ErrIO, "load", path, err)
	}
	return s, nil
}
