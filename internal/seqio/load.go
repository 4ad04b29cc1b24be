// internal/seqio/load.go
package seqio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"biokit/internal/record"
)

// sniffSize bounds how much leading content format detection inspects.
const sniffSize = 4096

// load opens path, sniffs its format, and drains the matching parser into a
// store. want restricts the accepted format (FormatUnknown accepts any).
// The file handle is released on success and failure alike.
func load(path string, want Format, aligned bool) (*record.Store, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	br := bufio.NewReaderSize(rc, 1<<20)
	prefix, perr := br.Peek(sniffSize)
	if perr != nil && perr != io.EOF {
		// A short or failed read here means the underlying stream is bad,
		// for example a gzip member with a truncated deflate body. Surfacing
		// it now prevents reporting statistics over a silently empty store.
		return nil, &record.FormatError{Path: path, Detail: perr.Error()}
	}
	if len(bytes.TrimSpace(prefix)) == 0 {
		// Zero records is a valid store; metrics enforce their own minimum
		// record counts.
		if aligned {
			return record.LoadAlignment(path, emptyIterator{})
		}
		return record.Load(path, emptyIterator{})
	}
	format, err := Detect(path, prefix)
	if err != nil {
		return nil, err
	}
	if want != FormatUnknown && format != want {
		return nil, &record.FormatError{
			Path:   path,
			Detail: fmt.Sprintf("expected %s input, found %s", want, format),
		}
	}

	var it record.Iterator
	switch format {
	case FormatFastq:
		it = NewFastqScanner(path, br)
	default:
		it = NewFastaScanner(path, br)
	}
	if aligned {
		return record.LoadAlignment(path, it)
	}
	return record.Load(path, it)
}

type emptyIterator struct{}

func (emptyIterator) Next() (*record.Record, error) { return nil, nil }

// LoadFasta loads a FASTA file into a store.
func LoadFasta(path string) (*record.Store, error) {
	return load(path, FormatFasta, false)
}

// LoadFastq loads a FASTQ file into a store.
func LoadFastq(path string) (*record.Store, error) {
	return load(path, FormatFastq, false)
}

// LoadAlignment loads uniform-width FASTA, failing at load time when any
// record breaks the alignment width.
func LoadAlignment(path string) (*record.Store, error) {
	return load(path, FormatFasta, true)
}

// LoadAny loads whichever of FASTA/FASTQ the content matches.
func LoadAny(path string) (*record.Store, error) {
	return load(path, FormatUnknown, false)
}
