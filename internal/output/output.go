// internal/output/output.go
package output

import (
	"fmt"
	"io"

	"biokit/internal/stats"
)

// Canonical TSV headers. Keep these as the single source of truth; every
// writer below uses them.
const (
	RecordRatioHeader  = "record\tvalue"
	RecordLengthHeader = "record\tlength"
	CharFreqHeader     = "character\tcount\tfrequency"
	CodonUsageHeader   = "codon\tamino_acid\tcount\trscu"
	GapColumnHeader    = "column\tgaps\tgap_fraction"
	ReadQualityHeader  = "read\tlength\tmean_quality"
)

// WriteScalar prints one bare result line, matching the original's
// single-number output contract.
func WriteScalar(w io.Writer, v interface{}) error {
	_, err := fmt.Fprintln(w, v)
	return err
}

// WriteRecordRatios prints one id/value line per record.
func WriteRecordRatios(w io.Writer, rows []stats.RecordRatio, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, RecordRatioHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", r.ID, r.Ratio); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecordLengths prints one id/length line per record.
func WriteRecordLengths(w io.Writer, rows []stats.RecordLength, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, RecordLengthHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", r.ID, r.Length); err != nil {
			return err
		}
	}
	return nil
}

// WriteCharFrequencies prints the per-symbol tally.
func WriteCharFrequencies(w io.Writer, rows []stats.CharCount, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, CharFreqHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%c\t%d\t%s\n", r.Symbol, r.Count, r.Frequency); err != nil {
			return err
		}
	}
	return nil
}

// WriteMatrix prints a symmetric identity matrix with an ID header row and
// an ID first column.
func WriteMatrix(w io.Writer, m *stats.IdentityMatrix, header bool) error {
	if header {
		if _, err := io.WriteString(w, "record"); err != nil {
			return err
		}
		for _, id := range m.IDs {
			if _, err := fmt.Fprintf(w, "\t%s", id); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	for i, id := range m.IDs {
		if _, err := io.WriteString(w, id); err != nil {
			return err
		}
		for j := range m.IDs {
			if _, err := fmt.Fprintf(w, "\t%s", m.Cell[i][j]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteCodonUsage prints the RSCU table.
func WriteCodonUsage(w io.Writer, rows []stats.CodonUsage, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, CodonUsageHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%c\t%d\t%s\n", r.Codon, r.AminoAcid, r.Count, r.RSCU); err != nil {
			return err
		}
	}
	return nil
}

// WriteGapColumns prints per-column gap proportions.
func WriteGapColumns(w io.Writer, cols []stats.ColumnGap, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, GapColumnHeader); err != nil {
			return err
		}
	}
	for _, c := range cols {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%s\n", c.Column, c.Gaps, c.Ratio); err != nil {
			return err
		}
	}
	return nil
}

// WriteReadQualities prints the per-read quality table.
func WriteReadQualities(w io.Writer, rows []stats.ReadQuality, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, ReadQualityHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\n", r.ID, r.Length, r.Mean); err != nil {
			return err
		}
	}
	return nil
}

// WriteLengthSummary prints the assembly summary as key/value lines.
func WriteLengthSummary(w io.Writer, s stats.Summary) error {
	rows := []struct {
		k string
		v interface{}
	}{
		{"records", s.Records},
		{"total_length", s.Total},
		{"shortest", s.Shortest},
		{"longest", s.Longest},
		{"mean", fmt.Sprintf("%.4f", s.Mean)},
		{"median", fmt.Sprintf("%.4f", s.Median)},
		{"variance", fmt.Sprintf("%.4f", s.Variance)},
		{"n50", s.N50},
		{"l50", s.L50},
		{"n90", s.N90},
		{"l90", s.L90},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%v\n", r.k, r.v); err != nil {
			return err
		}
	}
	return nil
}

// WriteAlignmentSummary prints the alignment summary as key/value lines.
func WriteAlignmentSummary(w io.Writer, s stats.AlignmentSummary) error {
	rows := []struct {
		k string
		v interface{}
	}{
		{"records", s.Records},
		{"alignment_width", s.Width},
		{"variable_sites", s.VariableSites},
		{"parsimony_informative_sites", s.ParsimonyInformative},
		{"mean_gap_fraction", s.MeanGapFraction},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%v\n", r.k, r.v); err != nil {
			return err
		}
	}
	return nil
}
