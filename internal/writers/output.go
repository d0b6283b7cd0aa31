package writers

import (
	"bufio"
	"errors"
	"io"
	"syscall"
)

const outBufSize = 64 << 10

// Output buffers kept records on their way to stdout.
type Output struct {
	bw *bufio.Writer
}

func NewOutput(w io.Writer) *Output {
	return &Output{bw: bufio.NewWriterSize(w, outBufSize)}
}

func (o *Output) Write(p []byte) (int, error) { return o.bw.Write(p) }

// Finish flushes what is buffered. gone is true when the reader has closed
// its end of the pipe, which callers treat as a normal end.
func (o *Output) Finish() (gone bool, err error) {
	err = o.bw.Flush()
	if IsBrokenPipe(err) {
		return true, nil
	}
	return false, err
}

// IsBrokenPipe reports whether err means the reader of our output went away,
// as when stdout is piped into `head`.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
