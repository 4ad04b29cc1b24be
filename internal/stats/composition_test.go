package stats

import (
	"math"
	"testing"

	"biokit/internal/record"
)

func store(seqs ...string) *record.Store {
	s := &record.Store{}
	for i, seq := range seqs {
		s.Records = append(s.Records, record.Record{
			ID:  string(rune('a' + i)),
			Seq: []byte(seq),
		})
	}
	return s
}

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestGCContent(t *testing.T) {
	r := GCContent(store("ACGT"))
	if r.Undefined || !almost(r.Value, 0.5) {
		t.Fatalf("GC(ACGT) = %v, want 0.5", r)
	}
}

func TestGCContentCaseAndOrderInvariant(t *testing.T) {
	upper := GCContent(store("ACGT", "GGGG"))
	lower := GCContent(store("acgt", "gggg"))
	reordered := GCContent(store("GGGG", "ACGT"))
	if upper != lower || upper != reordered {
		t.Fatalf("GC content must be case- and order-invariant: %v %v %v",
			upper, lower, reordered)
	}
}

func TestGCContentExcludesAmbiguous(t *testing.T) {
	// N and gaps are excluded from the denominator.
	r := GCContent(store("GCNN--"))
	if r.Undefined || !almost(r.Value, 1.0) {
		t.Fatalf("GC(GCNN--) = %v, want 1.0", r)
	}
}

func TestGCContentUndefinedOnAllAmbiguous(t *testing.T) {
	r := GCContent(store("NNNN"))
	if !r.Undefined {
		t.Fatalf("all-ambiguous input must be undefined, got %v", r)
	}
	if r.String() != "NA" {
		t.Fatalf("undefined ratio renders as NA, got %q", r.String())
	}
}

func TestPerRecordGCKeepsOrder(t *testing.T) {
	rows := GCContentPerRecord(store("GGGG", "AAAA"))
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}
	if rows[0].ID != "a" || !almost(rows[0].Ratio.Value, 1.0) {
		t.Fatalf("row 0 wrong: %+v", rows[0])
	}
	if rows[1].ID != "b" || !almost(rows[1].Ratio.Value, 0.0) {
		t.Fatalf("row 1 wrong: %+v", rows[1])
	}
}

func TestSkews(t *testing.T) {
	s := store("GGGC") // G=3 C=1
	r := GCSkew(s)
	if !almost(r.Value, 0.5) {
		t.Fatalf("GCSkew = %v, want 0.5", r)
	}
	if !GCSkew(store("AT")).Undefined {
		t.Fatalf("GC skew of G+C=0 must be undefined")
	}
	r = ATSkew(store("AAAT")) // A=3 T=1
	if !almost(r.Value, 0.5) {
		t.Fatalf("ATSkew = %v, want 0.5", r)
	}
}

func TestCharacterFrequency(t *testing.T) {
	rows := CharacterFrequency(store("AaC-"))
	if len(rows) != 3 {
		t.Fatalf("want 3 distinct symbols, got %d: %+v", len(rows), rows)
	}
	// Ascending symbol order: '-', 'A', 'C'.
	if rows[0].Symbol != '-' || rows[1].Symbol != 'A' || rows[2].Symbol != 'C' {
		t.Fatalf("rows out of order: %+v", rows)
	}
	if rows[1].Count != 2 || !almost(rows[1].Frequency.Value, 0.5) {
		t.Fatalf("case-insensitive count wrong: %+v", rows[1])
	}
}
