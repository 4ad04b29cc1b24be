// internal/stats/composition.go
package stats

import (
	"sort"

	"biokit/internal/alphabet"
	"biokit/internal/record"
)

// baseCounts tallies the unambiguous bases of seq case-insensitively. U
// counts as T. Ambiguity codes and gaps fall outside all four counters.
type baseCounts struct {
	A, C, G, T int
}

func countBases(seq []byte) baseCounts {
	var b baseCounts
	for _, c := range seq {
		switch alphabet.Upper(c) {
		case 'A':
			b.A++
		case 'C':
			b.C++
		case 'G':
			b.G++
		case 'T', 'U':
			b.T++
		}
	}
	return b
}

func (b baseCounts) total() int { return b.A + b.C + b.G + b.T }

// GCContent is (#G + #C) / (#A + #C + #G + #T) over the concatenation of all
// sequences, so it is invariant under record order and symbol case.
func GCContent(s *record.Store) Ratio {
	var b baseCounts
	for _, r := range s.Records {
		rb := countBases(r.Seq)
		b.A += rb.A
		b.C += rb.C
		b.G += rb.G
		b.T += rb.T
	}
	return NewRatio(float64(b.G+b.C), float64(b.total()))
}

// ATContent is (#A + #T) / (#A + #C + #G + #T) over the concatenation.
func ATContent(s *record.Store) Ratio {
	var b baseCounts
	for _, r := range s.Records {
		rb := countBases(r.Seq)
		b.A += rb.A
		b.C += rb.C
		b.G += rb.G
		b.T += rb.T
	}
	return NewRatio(float64(b.A+b.T), float64(b.total()))
}

// GCSkew is (#G - #C) / (#G + #C) over the concatenation.
func GCSkew(s *record.Store) Ratio {
	var g, c int
	for _, r := range s.Records {
		b := countBases(r.Seq)
		g += b.G
		c += b.C
	}
	return NewRatio(float64(g-c), float64(g+c))
}

// ATSkew is (#A - #T) / (#A + #T) over the concatenation.
func ATSkew(s *record.Store) Ratio {
	var a, t int
	for _, r := range s.Records {
		b := countBases(r.Seq)
		a += b.A
		t += b.T
	}
	return NewRatio(float64(a-t), float64(a+t))
}

// RecordRatio pairs a per-record ratio with its record ID.
type RecordRatio struct {
	ID    string
	Ratio Ratio
}

// GCContentPerRecord computes GC content record by record, preserving store
// order.
func GCContentPerRecord(s *record.Store) []RecordRatio {
	out := make([]RecordRatio, 0, s.Len())
	for _, r := range s.Records {
		b := countBases(r.Seq)
		out = append(out, RecordRatio{
			ID:    r.ID,
			Ratio: NewRatio(float64(b.G+b.C), float64(b.total())),
		})
	}
	return out
}

// ATContentPerRecord computes AT content record by record.
func ATContentPerRecord(s *record.Store) []RecordRatio {
	out := make([]RecordRatio, 0, s.Len())
	for _, r := range s.Records {
		b := countBases(r.Seq)
		out = append(out, RecordRatio{
			ID:    r.ID,
			Ratio: NewRatio(float64(b.A+b.T), float64(b.total())),
		})
	}
	return out
}

// CharCount is one symbol's tally over the whole store.
type CharCount struct {
	Symbol    byte
	Count     int
	Frequency Ratio
}

// CharacterFrequency counts every symbol case-insensitively over the
// concatenation of all sequences, in ascending symbol order.
func CharacterFrequency(s *record.Store) []CharCount {
	var counts [256]int
	total := 0
	for _, r := range s.Records {
		for _, c := range r.Seq {
			counts[alphabet.Upper(c)]++
			total++
		}
	}
	var out []CharCount
	for sym, n := range counts {
		if n == 0 {
			continue
		}
		out = append(out, CharCount{
			Symbol:    byte(sym),
			Count:     n,
			Frequency: NewRatio(float64(n), float64(total)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
