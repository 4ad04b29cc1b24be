// internal/stats/codon.go
package stats

import (
	"biokit/internal/alphabet"
	"biokit/internal/record"
)

// CodonUsage is the observed count and RSCU value of one codon.
type CodonUsage struct {
	Codon     string
	AminoAcid byte
	Count     int
	RSCU      Ratio
}

// countCodons walks every sequence in non-overlapping 3-symbol windows from
// position 0. Trailing 1-2 leftover symbols are dropped, and codons holding
// any symbol outside {A,C,G,T,U} are skipped rather than erroring.
func countCodons(s *record.Store) map[string]int {
	counts := make(map[string]int, 64)
	for _, r := range s.Records {
		n := (len(r.Seq) / 3) * 3
		for i := 0; i < n; i += 3 {
			codon, ok := alphabet.NormalizeCodon(string(r.Seq[i : i+3]))
			if !ok {
				continue
			}
			counts[codon]++
		}
	}
	return counts
}

// RSCU computes relative synonymous codon usage: observed codon count over
// the count expected if all synonymous codons for its amino acid were used
// equally. Amino acids with zero observed codons are omitted, never divided
// by. Rows come back in lexicographic codon order.
func RSCU(s *record.Store) ([]CodonUsage, error) {
	if err := s.Require("rscu", 1); err != nil {
		return nil, err
	}
	counts := countCodons(s)

	// Observed total per synonymous family.
	familyTotal := make(map[byte]int)
	for codon, n := range counts {
		familyTotal[alphabet.TranslateCodon(codon)] += n
	}

	var out []CodonUsage
	for _, codon := range alphabet.Codons() {
		aa := alphabet.TranslateCodon(codon)
		total := familyTotal[aa]
		if total == 0 {
			continue
		}
		family := alphabet.SynonymousCodons(codon)
		expected := float64(total) / float64(len(family))
		out = append(out, CodonUsage{
			Codon:     codon,
			AminoAcid: aa,
			Count:     counts[codon],
			RSCU:      NewRatio(float64(counts[codon]), expected),
		})
	}
	return out, nil
}

// GCThirdPosition is GC content restricted to the third position of each
// complete, unambiguous codon.
func GCThirdPosition(s *record.Store) (Ratio, error) {
	if err := s.Require("gc_content_third_position", 1); err != nil {
		return Ratio{}, err
	}
	gc, total := 0, 0
	for codon, n := range countCodons(s) {
		total += n
		if codon[2] == 'G' || codon[2] == 'C' {
			gc += n
		}
	}
	return NewRatio(float64(gc), float64(total)), nil
}
