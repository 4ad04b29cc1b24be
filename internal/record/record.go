// internal/record/record.go
package record

import "biokit/internal/alphabet"

// Record is one parsed sequence entry. Qual is nil for FASTA input; when
// present its length equals len(Seq).
type Record struct {
	ID   string
	Seq  []byte
	Qual []byte
}

// Length returns the number of symbols in the sequence.
func (r Record) Length() int { return len(r.Seq) }

// Validate checks every symbol of the sequence against a and returns an
// InvalidSymbolError for the first violation.
func (r Record) Validate(a alphabet.Alphabet) error {
	for i := 0; i < len(r.Seq); i++ {
		if !a.Valid(r.Seq[i]) {
			return &InvalidSymbolError{
				ID:       r.ID,
				Pos:      i,
				Symbol:   r.Seq[i],
				Alphabet: a.String(),
			}
		}
	}
	return nil
}

// Iterator yields records in file order. Next returns nil after the final
// record; a non-nil error is fatal and terminates iteration.
type Iterator interface {
	Next() (*Record, error)
}
