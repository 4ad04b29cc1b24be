package record

import (
	"errors"
	"testing"

	"biokit/internal/alphabet"
)

type sliceIter struct {
	recs []Record
	i    int
}

func (s *sliceIter) Next() (*Record, error) {
	if s.i >= len(s.recs) {
		return nil, nil
	}
	r := s.recs[s.i]
	s.i++
	return &r, nil
}

func TestLoadPreservesOrderAndDuplicates(t *testing.T) {
	it := &sliceIter{recs: []Record{
		{ID: "a", Seq: []byte("ACGT")},
		{ID: "b", Seq: []byte("AC")},
		{ID: "a", Seq: []byte("GG")},
	}}
	s, err := Load("x.fa", it)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("want 3 records, got %d", s.Len())
	}
	if s.Records[0].ID != "a" || s.Records[2].ID != "a" {
		t.Fatalf("duplicate IDs must pass through in order: %+v", s.Records)
	}
	if s.Aligned() {
		t.Fatalf("plain load must not mark the store aligned")
	}
}

func TestLoadAlignmentWidthMismatch(t *testing.T) {
	it := &sliceIter{recs: []Record{
		{ID: "a", Seq: []byte("ACGT")},
		{ID: "b", Seq: []byte("ACG")},
	}}
	_, err := LoadAlignment("aln.fa", it)
	var werr *AlignmentWidthMismatchError
	if !errors.As(err, &werr) {
		t.Fatalf("expected AlignmentWidthMismatchError, got %v", err)
	}
	if werr.ID != "b" || werr.Got != 3 || werr.Want != 4 {
		t.Fatalf("error should name offending record and widths: %+v", werr)
	}
}

func TestLoadAlignmentEmptyIsValid(t *testing.T) {
	s, err := LoadAlignment("empty.fa", &sliceIter{})
	if err != nil {
		t.Fatalf("empty alignment should load: %v", err)
	}
	if s.Len() != 0 || s.Width != 0 || !s.Aligned() {
		t.Fatalf("unexpected store: %+v", s)
	}
}

func TestRequire(t *testing.T) {
	s := &Store{Records: []Record{{ID: "a", Seq: []byte("AC")}}}
	if err := s.Require("total_length", 1); err != nil {
		t.Fatalf("1 record should satisfy need=1: %v", err)
	}
	err := s.Require("pairwise_identity", 2)
	var eerr *EmptyInputError
	if !errors.As(err, &eerr) {
		t.Fatalf("expected EmptyInputError, got %v", err)
	}
	if eerr.Metric != "pairwise_identity" || eerr.Need != 2 || eerr.Got != 1 {
		t.Fatalf("bad error payload: %+v", eerr)
	}
}

func TestValidateStrict(t *testing.T) {
	r := Record{ID: "a", Seq: []byte("ACGJ")}
	err := r.Validate(alphabet.Nucleotide)
	var serr *InvalidSymbolError
	if !errors.As(err, &serr) {
		t.Fatalf("expected InvalidSymbolError, got %v", err)
	}
	if serr.Symbol != 'J' || serr.Pos != 3 {
		t.Fatalf("bad error payload: %+v", serr)
	}
	if err := (Record{ID: "p", Seq: []byte("MKV*X-")}).Validate(alphabet.Protein); err != nil {
		t.Fatalf("valid protein rejected: %v", err)
	}
}
