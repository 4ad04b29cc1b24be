// internal/seqio/detect.go
package seqio

import (
	"biokit/internal/record"
)

// Format classifies the structure of a sequence file.
type Format int

const (
	FormatUnknown Format = iota
	FormatFasta
	FormatFastq
	// FormatAlignment is uniform-width FASTA. Any multi-FASTA is structurally
	// valid FASTA, so alignment mode is selected by the caller, never sniffed.
	FormatAlignment
)

func (f Format) String() string {
	switch f {
	case FormatFasta:
		return "fasta"
	case FormatFastq:
		return "fastq"
	case FormatAlignment:
		return "alignment"
	}
	return "unknown"
}

// Detect classifies a file by the first non-blank byte of its leading
// content: '>' is FASTA, '@' is FASTQ. Anything else is a FormatError.
func Detect(path string, prefix []byte) (Format, error) {
	for _, c := range prefix {
		switch c {
		case '\n', '\r', ' ', '\t':
			continue
		case '>':
			return FormatFasta, nil
		case '@':
			return FormatFastq, nil
		default:
			return FormatUnknown, &record.FormatError{
				Path:   path,
				Detail: "first record starts with " + string(c) + ", expected '>' or '@'",
			}
		}
	}
	return FormatUnknown, &record.FormatError{Path: path, Detail: "empty input"}
}
