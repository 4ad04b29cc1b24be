// internal/stats/quality.go
package stats

import "biokit/internal/record"

// phredOffset is the Phred+33 quality encoding base.
const phredOffset = 33

// ReadQuality is the mean Phred score of one read.
type ReadQuality struct {
	ID     string
	Length int
	Mean   Ratio
}

// MeanQualityPerRead computes each read's mean Phred+33 score in store
// order. Reads without quality strings (FASTA input) come back undefined.
func MeanQualityPerRead(s *record.Store) ([]ReadQuality, error) {
	if err := s.Require("fastq_quality", 1); err != nil {
		return nil, err
	}
	out := make([]ReadQuality, 0, s.Len())
	for _, r := range s.Records {
		sum := 0
		for _, q := range r.Qual {
			sum += int(q) - phredOffset
		}
		out = append(out, ReadQuality{
			ID:     r.ID,
			Length: r.Length(),
			Mean:   NewRatio(float64(sum), float64(len(r.Qual))),
		})
	}
	return out, nil
}

// MeanQuality is the base-weighted mean Phred+33 score over all reads.
func MeanQuality(s *record.Store) (Ratio, error) {
	if err := s.Require("fastq_quality", 1); err != nil {
		return Ratio{}, err
	}
	sum, bases := 0, 0
	for _, r := range s.Records {
		for _, q := range r.Qual {
			sum += int(q) - phredOffset
		}
		bases += len(r.Qual)
	}
	return NewRatio(float64(sum), float64(bases)), nil
}
