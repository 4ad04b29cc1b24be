// internal/stats/alignment.go
package stats

import (
	"sync"

	"biokit/internal/alphabet"
	"biokit/internal/record"
)

// IdentityMatrix is the symmetric pairwise-identity matrix of an alignment,
// indexed by record position in store order.
type IdentityMatrix struct {
	IDs  []string
	Cell [][]Ratio
}

// PairwiseIdentity computes identity for every record pair. Identity of two
// aligned sequences is (#columns where both symbols are equal and neither is
// a gap) / (#columns where neither is a gap); columns gapped in both records
// contribute to neither term, so an all-gap pair is undefined, not zero.
//
// Only the upper triangle is computed; the lower is mirrored. threads > 1
// fans rows out to a worker pool; each worker writes into its own row
// slots, so output is deterministic regardless of scheduling.
func PairwiseIdentity(s *record.Store, threads int) (*IdentityMatrix, error) {
	if err := s.Require("pairwise_identity", 2); err != nil {
		return nil, err
	}
	n := s.Len()
	m := &IdentityMatrix{
		IDs:  make([]string, n),
		Cell: make([][]Ratio, n),
	}
	for i, r := range s.Records {
		m.IDs[i] = r.ID
		m.Cell[i] = make([]Ratio, n)
	}

	row := func(i int) {
		m.Cell[i][i] = identity(s.Records[i].Seq, s.Records[i].Seq)
		for j := i + 1; j < n; j++ {
			id := identity(s.Records[i].Seq, s.Records[j].Seq)
			m.Cell[i][j] = id
			m.Cell[j][i] = id
		}
	}

	if threads <= 1 {
		for i := 0; i < n; i++ {
			row(i)
		}
		return m, nil
	}

	var wg sync.WaitGroup
	rows := make(chan int)
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				row(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()
	return m, nil
}

func identity(a, b []byte) Ratio {
	match, cols := 0, 0
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := a[i], b[i]
		if alphabet.IsGap(ca) || alphabet.IsGap(cb) {
			continue
		}
		cols++
		if alphabet.Upper(ca) == alphabet.Upper(cb) {
			match++
		}
	}
	return NewRatio(float64(match), float64(cols))
}

// column collects the case-folded residues of one alignment column,
// excluding gaps.
func column(s *record.Store, col int) []byte {
	out := make([]byte, 0, s.Len())
	for _, r := range s.Records {
		c := r.Seq[col]
		if alphabet.IsGap(c) {
			continue
		}
		out = append(out, alphabet.Upper(c))
	}
	return out
}

// VariableSites counts alignment columns holding two or more distinct
// non-gap symbols.
func VariableSites(s *record.Store) (int, error) {
	if err := s.Require("variable_sites", 1); err != nil {
		return 0, err
	}
	n := 0
	for col := 0; col < s.Width; col++ {
		var seen [256]bool
		distinct := 0
		for _, c := range column(s, col) {
			if !seen[c] {
				seen[c] = true
				distinct++
			}
		}
		if distinct >= 2 {
			n++
		}
	}
	return n, nil
}

// ParsimonyInformativeSites counts columns where at least two distinct
// non-gap symbols each occur in at least two records.
func ParsimonyInformativeSites(s *record.Store) (int, error) {
	if err := s.Require("parsimony_informative_sites", 1); err != nil {
		return 0, err
	}
	n := 0
	for col := 0; col < s.Width; col++ {
		var counts [256]int
		for _, c := range column(s, col) {
			counts[c]++
		}
		informative := 0
		for _, cnt := range counts {
			if cnt >= 2 {
				informative++
			}
		}
		if informative >= 2 {
			n++
		}
	}
	return n, nil
}

// ColumnGap is the gap proportion of one alignment column.
type ColumnGap struct {
	Column int // 1-based
	Gaps   int
	Ratio  Ratio
}

// GapFraction returns the per-column gap proportion and the mean over all
// columns.
func GapFraction(s *record.Store) ([]ColumnGap, Ratio, error) {
	if err := s.Require("gap_fraction", 1); err != nil {
		return nil, Ratio{}, err
	}
	cols := make([]ColumnGap, 0, s.Width)
	totalGaps := 0
	for col := 0; col < s.Width; col++ {
		gaps := 0
		for _, r := range s.Records {
			if alphabet.IsGap(r.Seq[col]) {
				gaps++
			}
		}
		totalGaps += gaps
		cols = append(cols, ColumnGap{
			Column: col + 1,
			Gaps:   gaps,
			Ratio:  NewRatio(float64(gaps), float64(s.Len())),
		})
	}
	mean := NewRatio(float64(totalGaps), float64(s.Width*s.Len()))
	return cols, mean, nil
}

// AlignmentSummary bundles the per-alignment scalar metrics.
type AlignmentSummary struct {
	Records              int
	Width                int
	VariableSites        int
	ParsimonyInformative int
	MeanGapFraction      Ratio
}

// SummarizeAlignment computes the alignment summary in one pass over the
// individual metrics.
func SummarizeAlignment(s *record.Store) (AlignmentSummary, error) {
	if err := s.Require("alignment_summary", 1); err != nil {
		return AlignmentSummary{}, err
	}
	vs, err := VariableSites(s)
	if err != nil {
		return AlignmentSummary{}, err
	}
	pis, err := ParsimonyInformativeSites(s)
	if err != nil {
		return AlignmentSummary{}, err
	}
	_, meanGap, err := GapFraction(s)
	if err != nil {
		return AlignmentSummary{}, err
	}
	return AlignmentSummary{
		Records:              s.Len(),
		Width:                s.Width,
		VariableSites:        vs,
		ParsimonyInformative: pis,
		MeanGapFraction:      meanGap,
	}, nil
}

// Consensus derives a consensus sequence: per column, the most frequent
// non-gap symbol wins when its share of all records reaches threshold;
// otherwise ambiguous is emitted. All-gap columns stay gaps. Ties resolve to
// the smallest symbol so output is deterministic.
func Consensus(s *record.Store, threshold float64, ambiguous byte) (record.Record, error) {
	if err := s.Require("consensus_sequence", 1); err != nil {
		return record.Record{}, err
	}
	seq := make([]byte, s.Width)
	for col := 0; col < s.Width; col++ {
		var counts [256]int
		for _, c := range column(s, col) {
			counts[c]++
		}
		best, bestCount := byte(0), 0
		for sym := 0; sym < 256; sym++ {
			if counts[sym] > bestCount {
				best, bestCount = byte(sym), counts[sym]
			}
		}
		switch {
		case bestCount == 0:
			seq[col] = alphabet.Gap
		case float64(bestCount)/float64(s.Len()) >= threshold:
			seq[col] = best
		default:
			seq[col] = ambiguous
		}
	}
	return record.Record{ID: "consensus", Seq: seq}, nil
}
