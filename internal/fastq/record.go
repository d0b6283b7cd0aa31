package fastq

import (
	"bytes"
	"strings"

	"fqfilter/internal/fqerr"
)

// Record is one FASTQ entry. Desc is empty when the header carries no
// description. The reader never reuses the backing arrays of Seq and Qual.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
	Qual []byte
}

// Header returns the header line without the leading '@'.
func (r Record) Header() string {
	if r.Desc == "" {
		return r.ID
	}
	return r.ID + " " + r.Desc
}

// AppendTo appends the four-line form of r to dst:
//
//	@ID[ DESC]
//	SEQ
//	+
//	QUAL
//
// Each line ends in '\n'. A record whose fields would break that framing is
// rejected with fqerr.ErrFormat and dst is returned unchanged.
func (r Record) AppendTo(dst []byte) ([]byte, error) {
	if err := r.check(); err != nil {
		return dst, err
	}
	dst = append(dst, '@')
	dst = append(dst, r.ID...)
	if r.Desc != "" {
		dst = append(dst, ' ')
		dst = append(dst, r.Desc...)
	}
	dst = append(dst, '\n')
	dst = append(dst, r.Seq...)
	dst = append(dst, "\n+\n"...)
	dst = append(dst, r.Qual...)
	dst = append(dst, '\n')
	return dst, nil
}

func (r Record) check() error {
	var problem string
	switch {
	case strings.ContainsAny(r.ID, " \t\r\n"):
		problem = "identifier contains whitespace"
	case strings.ContainsAny(r.Desc, "\r\n"):
		problem = "description contains a line break"
	case bytes.ContainsAny(r.Seq, "\r\n"):
		problem = "sequence contains a line break"
	case bytes.ContainsAny(r.Qual, "\r\n"):
		problem = "quality contains a line break"
	default:
		return nil
	}
	return fqerr.Errorf(fqerr.ErrFormat, "serialize", "", "record %q: %s", r.ID, problem)
}
