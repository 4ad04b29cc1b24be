// internal/record/errors.go
package record

import "fmt"

// FormatError reports input whose leading content matches no supported
// sequence format.
type FormatError struct {
	Path   string
	Detail string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: unrecognized sequence format: %s", e.Path, e.Detail)
}

// MalformedRecordError reports a structural problem inside one record, such
// as a FASTQ quality line whose length differs from the sequence line.
type MalformedRecordError struct {
	Path   string
	ID     string
	Detail string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s: malformed record %q: %s", e.Path, e.ID, e.Detail)
}

// TruncatedInputError reports a file that ends in the middle of a record.
type TruncatedInputError struct {
	Path string
	ID   string
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("%s: input truncated inside record %q", e.Path, e.ID)
}

// AlignmentWidthMismatchError reports a record whose length breaks the
// uniform width of an alignment.
type AlignmentWidthMismatchError struct {
	Path string
	ID   string
	Got  int
	Want int
}

func (e *AlignmentWidthMismatchError) Error() string {
	return fmt.Sprintf("%s: alignment record %q is %d columns, expected %d",
		e.Path, e.ID, e.Got, e.Want)
}

// EmptyInputError reports a store with too few records for the requested
// metric.
type EmptyInputError struct {
	Metric string
	Need   int
	Got    int
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s requires at least %d record(s), input has %d",
		e.Metric, e.Need, e.Got)
}

// InvalidSymbolError reports a symbol outside the active alphabet. Raised
// only under strict validation.
type InvalidSymbolError struct {
	ID       string
	Pos      int // 0-based offset within the sequence
	Symbol   byte
	Alphabet string
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("record %q: invalid %s symbol %q at position %d",
		e.ID, e.Alphabet, string(e.Symbol), e.Pos+1)
}
