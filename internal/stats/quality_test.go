package stats

import (
	"errors"
	"testing"

	"biokit/internal/record"
)

func fastqStore(reads ...[2]string) *record.Store {
	s := &record.Store{}
	for i, r := range reads {
		s.Records = append(s.Records, record.Record{
			ID:   string(rune('a' + i)),
			Seq:  []byte(r[0]),
			Qual: []byte(r[1]),
		})
	}
	return s
}

func TestMeanQualityPerRead(t *testing.T) {
	// 'I' is Phred 40, '#' is Phred 2.
	rows, err := MeanQualityPerRead(fastqStore([2]string{"ACGT", "IIII"}, [2]string{"AC", "##"}))
	if err != nil {
		t.Fatalf("quality: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}
	if rows[0].Length != 4 || !almost(rows[0].Mean.Value, 40) {
		t.Fatalf("row 0: %+v", rows[0])
	}
	if !almost(rows[1].Mean.Value, 2) {
		t.Fatalf("row 1: %+v", rows[1])
	}
}

func TestMeanQualityWeightedByBases(t *testing.T) {
	// 4 bases at 40 plus 2 bases at 2 -> (160+4)/6.
	r, err := MeanQuality(fastqStore([2]string{"ACGT", "IIII"}, [2]string{"AC", "##"}))
	if err != nil {
		t.Fatalf("quality: %v", err)
	}
	if !almost(r.Value, 164.0/6.0) {
		t.Fatalf("mean = %v, want %v", r.Value, 164.0/6.0)
	}
}

func TestMeanQualityEmpty(t *testing.T) {
	_, err := MeanQuality(&record.Store{})
	var eerr *record.EmptyInputError
	if !errors.As(err, &eerr) {
		t.Fatalf("expected EmptyInputError, got %v", err)
	}
}
