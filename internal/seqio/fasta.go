// internal/seqio/fasta.go
package seqio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"biokit/internal/record"
)

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 * 1024 * 1024

// FastaScanner streams FASTA records in file order. Multi-line bodies are
// accumulated until the next header; blank lines are skipped and whitespace
// inside sequence lines is stripped. The scanner is forward-only; restart by
// reopening the input.
type FastaScanner struct {
	path string
	sc   *bufio.Scanner

	id   string
	seen bool // a header has been read
	done bool
	err  error
}

// NewFastaScanner wraps r, which must contain FASTA content.
func NewFastaScanner(path string, r io.Reader) *FastaScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &FastaScanner{path: path, sc: sc}
}

// headerID extracts the record ID from a header line (text up to the first
// whitespace after '>').
func headerID(line []byte) string {
	h := strings.TrimSpace(string(line))
	if i := strings.IndexAny(h, " \t"); i >= 0 {
		h = h[:i]
	}
	return h
}

// Next returns the next record, or nil at end of input.
func (f *FastaScanner) Next() (*record.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.done {
		return nil, nil
	}
	var seq []byte
	for f.sc.Scan() {
		line := bytes.TrimSpace(f.sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if f.seen {
				if len(seq) == 0 {
					f.err = &record.MalformedRecordError{
						Path:   f.path,
						ID:     f.id,
						Detail: "header with no sequence",
					}
					return nil, f.err
				}
				rec := f.flush(seq)
				f.id = headerID(line[1:])
				return rec, nil
			}
			f.seen = true
			f.id = headerID(line[1:])
			continue
		}
		if !f.seen {
			f.err = &record.FormatError{
				Path:   f.path,
				Detail: "sequence data before first '>' header",
			}
			return nil, f.err
		}
		// Strip whitespace embedded in the sequence line.
		seq = append(seq, bytes.Map(dropSpace, line)...)
	}
	if err := f.sc.Err(); err != nil {
		f.err = fmt.Errorf("%s: scan: %w", f.path, err)
		return nil, f.err
	}
	f.done = true
	if !f.seen {
		return nil, nil // empty input: zero records is a valid store
	}
	if len(seq) == 0 {
		// File ends directly after a header line.
		f.err = &record.TruncatedInputError{Path: f.path, ID: f.id}
		return nil, f.err
	}
	return f.flush(seq), nil
}

func (f *FastaScanner) flush(seq []byte) *record.Record {
	return &record.Record{ID: f.id, Seq: seq}
}

func dropSpace(r rune) rune {
	switch r {
	case ' ', '\t', '\v', '\f':
		return -1
	}
	return r
}
