// Package codec maps compression suffixes to streaming decompressors.
//
// Inputs are accepted only when their name ends in a registered suffix; there
// is no plain-text path. Open layers file -> bufio.Reader -> decompressor and
// classifies read failures: errors from the file itself are fqerr.ErrIO,
// everything the decompressor rejects is fqerr.ErrDecompression.
package codec

import (
	"bufio"
	"compress/bzip2"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"fqfilter/internal/fqerr"
)

const bufSize = 1 << 20 // 1 MiB

// Format is one supported compression container.
type Format struct {
	Name     string
	Suffixes []string
	open     func(io.Reader) (io.ReadCloser, error)
}

var formats = []Format{
	{
		Name:     "gzip",
		Suffixes: []string{".gz", ".bgz"},
		open: func(r io.Reader) (io.ReadCloser, error) {
			// multistream is the default, which also covers BGZF blocks
			return gzip.NewReader(r)
		},
	},
	{
		Name:     "zstd",
		Suffixes: []string{".zst", ".zstd"},
		open: func(r io.Reader) (io.ReadCloser, error) {
			dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
			if err != nil {
				return nil, err
			}
			return dec.IOReadCloser(), nil
		},
	},
	{
		Name:     "lz4",
		Suffixes: []string{".lz4"},
		open: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(lz4.NewReader(r)), nil
		},
	},
	{
		Name:     "snappy",
		Suffixes: []string{".sz"},
		open: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(s2.NewReader(r)), nil
		},
	},
	{
		Name:     "bzip2",
		Suffixes: []string{".bz2"},
		open: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(bzip2.NewReader(r)), nil
		},
	},
}

// Lookup returns the format registered for the suffix of path.
// Matching is case-insensitive.
func Lookup(path string) (Format, bool) {
	lower := strings.ToLower(path)
	for _, f := range formats {
		for _, s := range f.Suffixes {
			if strings.HasSuffix(lower, s) && len(lower) > len(s) {
				return f, true
			}
		}
	}
	return Format{}, false
}

// Suffixes lists every accepted suffix in sorted order.
func Suffixes() []string {
	var out []string
	for _, f := range formats {
		out = append(out, f.Suffixes...)
	}
	sort.Strings(out)
	return out
}

// Open validates the suffix of path, then opens it behind a buffered reader
// and the matching decompressor. The suffix check happens before the file is
// touched.
func Open(path string) (io.ReadCloser, error) {
	f, ok := Lookup(path)
	if !ok {
		return nil, fqerr.Errorf(fqerr.ErrInputContract, "open", path,
			"input must be compressed (one of %s)", strings.Join(Suffixes(), ", "))
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fqerr.New(fqerr.ErrIO, "open", path, err)
	}
	src := &sourceReader{r: fh}
	s := &stream{path: path, format: f.Name, src: src}
	dec, err := f.open(bufio.NewReaderSize(src, bufSize))
	if err != nil {
		_ = fh.Close()
		return nil, s.classify("open", err)
	}
	s.dec = dec
	s.closers = []io.Closer{dec, fh}
	return s, nil
}

// sourceReader remembers the last hard error of the file underneath the
// decompressor, which is how stream tells I/O failures from corrupt data.
type sourceReader struct {
	r   io.Reader
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		s.err = err
	}
	return n, err
}

type stream struct {
	path    string
	format  string
	src     *sourceReader
	dec     io.Reader
	closers []io.Closer
}

func (s *stream) Read(p []byte) (int, error) {
	n, err := s.dec.Read(p)
	if err == nil || err == io.EOF {
		return n, err
	}
	return n, s.classify("read", err)
}

func (s *stream) classify(op string, err error) error {
	if s.src.err != nil {
		return fqerr.New(fqerr.ErrIO, op, s.path, s.src.err)
	}
	if err == io.EOF {
		// a decompressor hitting EOF while still reading its header
		err = io.ErrUnexpectedEOF
	}
	return fqerr.Errorf(fqerr.ErrDecompression, op, s.path, "%s: %w", s.format, err)
}

// Close closes the decompressor, then the file. The first error wins.
func (s *stream) Close() error {
	var err error
	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
