package fastq

import (
	"io"

	"fqfilter/internal/fqerr"
)

// Writer serializes records. Each record is rendered in full before any byte
// of it reaches the destination.
type Writer struct {
	w   io.Writer
	buf []byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, buf: make([]byte, 0, 1024)}
}

// Write emits rec in four-line form.
func (w *Writer) Write(rec Record) error {
	b, err := rec.AppendTo(w.buf[:0])
	if err != nil {
		return err
	}
	w.buf = b
	if _, err := w.w.Write(b); err != nil {
		return fqerr.New(fqerr.ErrIO, "write", "", err)
	}
	return nil
}
