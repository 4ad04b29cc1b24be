// internal/seqio/fastq.go
package seqio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"biokit/internal/record"
)

// FastqScanner streams fixed four-line FASTQ units: '@' header, sequence,
// '+' separator, quality. Structural violations are fatal; skipping a
// malformed read would silently bias dataset-wide metrics.
type FastqScanner struct {
	path string
	sc   *bufio.Scanner
	err  error
	done bool
}

// NewFastqScanner wraps r, which must contain FASTQ content.
func NewFastqScanner(path string, r io.Reader) *FastqScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &FastqScanner{path: path, sc: sc}
}

// line reads the next line, with CR trimmed. ok is false at end of input.
func (f *FastqScanner) line() (string, bool) {
	if !f.sc.Scan() {
		return "", false
	}
	return strings.TrimRight(f.sc.Text(), "\r"), true
}

// Next returns the next read, or nil at end of input.
func (f *FastqScanner) Next() (*record.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.done {
		return nil, nil
	}

	header, ok := f.line()
	for ok && header == "" {
		header, ok = f.line() // tolerate blank lines between units
	}
	if !ok {
		if err := f.sc.Err(); err != nil {
			f.err = fmt.Errorf("%s: scan: %w", f.path, err)
			return nil, f.err
		}
		f.done = true
		return nil, nil
	}
	if header[0] != '@' {
		f.err = &record.FormatError{
			Path:   f.path,
			Detail: fmt.Sprintf("FASTQ header must start with '@', got %q", header[0]),
		}
		return nil, f.err
	}
	id := headerID([]byte(header[1:]))

	seq, ok := f.line()
	if !ok {
		f.err = &record.TruncatedInputError{Path: f.path, ID: id}
		return nil, f.err
	}
	sep, ok := f.line()
	if !ok {
		f.err = &record.TruncatedInputError{Path: f.path, ID: id}
		return nil, f.err
	}
	if sep == "" || sep[0] != '+' {
		f.err = &record.MalformedRecordError{
			Path:   f.path,
			ID:     id,
			Detail: "missing '+' separator line",
		}
		return nil, f.err
	}
	qual, ok := f.line()
	if !ok {
		f.err = &record.TruncatedInputError{Path: f.path, ID: id}
		return nil, f.err
	}
	if len(qual) != len(seq) {
		f.err = &record.MalformedRecordError{
			Path: f.path,
			ID:   id,
			Detail: fmt.Sprintf("quality length %d does not match sequence length %d",
				len(qual), len(seq)),
		}
		return nil, f.err
	}
	return &record.Record{ID: id, Seq: []byte(seq), Qual: []byte(qual)}, nil
}
