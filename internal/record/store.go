// internal/record/store.go
package record

import "biokit/internal/alphabet"

// Store is an ordered, fully-loaded collection of records. Statistics need
// complete data (N50 sorts all lengths), so loading is eager.
type Store struct {
	Records []Record

	// Path of the source file, carried for error messages.
	Path string

	// Width is the uniform column count when the store was loaded as an
	// alignment, 0 otherwise.
	Width int

	aligned bool
}

// Load drains it into a Store. Records are kept in input order and duplicate
// IDs pass through untouched; consumers index by position.
func Load(path string, it Iterator) (*Store, error) {
	s := &Store{Path: path}
	for {
		r, err := it.Next()
		if err != nil {
			return nil, err
		}
		if r == nil {
			return s, nil
		}
		s.Records = append(s.Records, *r)
	}
}

// LoadAlignment is Load plus the uniform-width invariant: every record must
// have the width of the first one. The check runs at load time so no metric
// ever sees a ragged alignment.
func LoadAlignment(path string, it Iterator) (*Store, error) {
	s, err := Load(path, it)
	if err != nil {
		return nil, err
	}
	s.aligned = true
	if len(s.Records) == 0 {
		return s, nil
	}
	s.Width = s.Records[0].Length()
	for _, r := range s.Records[1:] {
		if r.Length() != s.Width {
			return nil, &AlignmentWidthMismatchError{
				Path: path,
				ID:   r.ID,
				Got:  r.Length(),
				Want: s.Width,
			}
		}
	}
	return s, nil
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.Records) }

// Aligned reports whether the store was loaded with the alignment invariant.
func (s *Store) Aligned() bool { return s.aligned }

// Validate runs per-record symbol validation against a.
func (s *Store) Validate(a alphabet.Alphabet) error {
	for _, r := range s.Records {
		if err := r.Validate(a); err != nil {
			return err
		}
	}
	return nil
}

// Require fails with EmptyInputError unless the store holds at least need
// records. metric names the caller for the error message.
func (s *Store) Require(metric string, need int) error {
	if len(s.Records) < need {
		return &EmptyInputError{Metric: metric, Need: need, Got: len(s.Records)}
	}
	return nil
}
