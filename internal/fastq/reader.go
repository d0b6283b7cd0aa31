// Package fastq reads and writes four-line FASTQ records.
package fastq

import (
	"bufio"
	"bytes"
	"io"
	"iter"

	"fqfilter/internal/codec"
	"fqfilter/internal/fqerr"
)

// Reader yields records one framing unit at a time. It is single-pass: once
// Read has returned an error (io.EOF included) it keeps returning it.
type Reader struct {
	br     *bufio.Reader
	closer io.Closer
	path   string

	line uint64 // lines consumed so far
	n    uint64 // records started so far
	err  error
}

// NewReader parses FASTQ text from r, which must already be decompressed.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Open opens a compressed FASTQ file. The suffix of path selects the
// decompressor; paths without a supported suffix are refused with
// fqerr.ErrInputContract before anything is read.
func Open(path string) (*Reader, error) {
	rc, err := codec.Open(path)
	if err != nil {
		return nil, err
	}
	r := NewReader(rc)
	r.closer = rc
	r.path = path
	return r, nil
}

// Close releases the underlying stream, if Open created one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	return c.Close()
}

// Read returns the next record, or io.EOF after the last one.
func (r *Reader) Read() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}
	rec, err := r.next()
	if err != nil {
		r.err = err
	}
	return rec, err
}

// Records exposes Read as a range-over-func sequence. Iteration stops after
// the first error, which is yielded with a zero Record; io.EOF is not yielded.
func (r *Reader) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			rec, err := r.Read()
			if err == io.EOF {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

func (r *Reader) next() (Record, error) {
	var hdr []byte
	for {
		line, ok, err := r.readLine()
		if err != nil {
			return Record{}, err
		}
		if !ok {
			return Record{}, io.EOF
		}
		if len(line) > 0 {
			hdr = line
			break
		}
	}
	r.n++
	if hdr[0] != '@' {
		return Record{}, r.formatErr("expected '@' at start of header, got %q", clip(hdr))
	}
	id, desc := splitHeader(hdr[1:])

	seq, ok, err := r.readLine()
	if err != nil {
		return Record{}, err
	}
	if !ok {
		return Record{}, r.formatErr("truncated record %q: missing sequence line", id)
	}

	sep, ok, err := r.readLine()
	if err != nil {
		return Record{}, err
	}
	if !ok {
		return Record{}, r.formatErr("truncated record %q: missing '+' separator line", id)
	}
	if len(sep) == 0 || sep[0] != '+' {
		return Record{}, r.formatErr("record %q: expected '+' separator line, got %q", id, clip(sep))
	}

	qual, ok, err := r.readLine()
	if err != nil {
		return Record{}, err
	}
	if !ok || (len(qual) == 0 && len(seq) > 0) {
		return Record{}, r.formatErr("truncated record %q: missing quality line", id)
	}

	return Record{ID: id, Desc: desc, Seq: seq, Qual: qual}, nil
}

// readLine returns the next line without its terminator. ok is false at a
// clean end of stream. A final line without '\n' is still a line.
func (r *Reader) readLine() (line []byte, ok bool, err error) {
	line, err = r.br.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, false, r.readErr(err)
	}
	if err == io.EOF && len(line) == 0 {
		return nil, false, nil
	}
	r.line++
	line = bytes.TrimSuffix(line, []byte{'\n'})
	line = bytes.TrimSuffix(line, []byte{'\r'})
	return line, true, nil
}

func (r *Reader) readErr(err error) error {
	if fqerr.Classified(err) {
		return err
	}
	e := fqerr.New(fqerr.ErrIO, "read", r.path, err)
	e.Record = r.n
	return e
}

func (r *Reader) formatErr(format string, a ...any) error {
	e := fqerr.Errorf(fqerr.ErrFormat, "parse", r.path, format, a...)
	e.Line = r.line
	e.Record = r.n
	return e
}

// splitHeader cuts "ID[ <ws> DESC]" at the first space or tab.
func splitHeader(h []byte) (id, desc string) {
	i := bytes.IndexAny(h, " \t")
	if i < 0 {
		return string(h), ""
	}
	return string(h[:i]), string(bytes.TrimSpace(h[i+1:]))
}

func clip(b []byte) []byte {
	const limit = 40
	if len(b) > limit {
		return b[:limit]
	}
	return b
}
