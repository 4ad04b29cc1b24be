// internal/seqio/write.go
package seqio

import (
	"fmt"
	"io"

	"biokit/internal/record"
)

// DefaultWrap is the line width used when re-serializing FASTA.
const DefaultWrap = 70

// WriteFasta serializes records as FASTA, wrapping sequence lines at width
// columns (width <= 0 writes each sequence on one line). Sequence content
// round-trips exactly; only line-wrapping may differ from the input.
func WriteFasta(w io.Writer, records []record.Record, width int) error {
	for _, r := range records {
		if _, err := fmt.Fprintf(w, ">%s\n", r.ID); err != nil {
			return err
		}
		seq := r.Seq
		if width <= 0 {
			if _, err := fmt.Fprintf(w, "%s\n", seq); err != nil {
				return err
			}
			continue
		}
		for off := 0; off < len(seq); off += width {
			end := off + width
			if end > len(seq) {
				end = len(seq)
			}
			if _, err := fmt.Fprintf(w, "%s\n", seq[off:end]); err != nil {
				return err
			}
		}
		if len(seq) == 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
