package stats

import (
	"errors"
	"reflect"
	"testing"

	"biokit/internal/record"
)

func alignment(seqs ...string) *record.Store {
	s := store(seqs...)
	if len(seqs) > 0 {
		s.Width = len(seqs[0])
	}
	return s
}

func TestPairwiseIdentityScenario(t *testing.T) {
	// a: ACGT, b: AGGT -> 3 of 4 columns match.
	m, err := PairwiseIdentity(alignment("ACGT", "AGGT"), 1)
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	if got := m.Cell[0][1]; got.Undefined || !almost(got.Value, 0.75) {
		t.Fatalf("identity(a,b) = %v, want 0.75", got)
	}
}

func TestPairwiseIdentitySymmetricWithUnitDiagonal(t *testing.T) {
	m, err := PairwiseIdentity(alignment("ACGT", "AGGT", "TCGA"), 1)
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	n := len(m.IDs)
	for i := 0; i < n; i++ {
		if d := m.Cell[i][i]; d.Undefined || !almost(d.Value, 1.0) {
			t.Errorf("identity(%d,%d) = %v, want 1.0", i, i, d)
		}
		for j := 0; j < n; j++ {
			if m.Cell[i][j] != m.Cell[j][i] {
				t.Errorf("matrix not symmetric at (%d,%d)", i, j)
			}
		}
	}
}

func TestPairwiseIdentityGapRules(t *testing.T) {
	// Column 1 is gapped in a, column 4 in both; denominators shrink.
	// a: -CGT  b: ACG- -> comparable columns: 2,3 -> both match.
	m, err := PairwiseIdentity(alignment("-CGT", "ACG-"), 1)
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	if got := m.Cell[0][1]; got.Undefined || !almost(got.Value, 1.0) {
		t.Fatalf("gap columns must be excluded: %v", got)
	}
}

func TestPairwiseIdentityAllGapUndefined(t *testing.T) {
	m, err := PairwiseIdentity(alignment("----", "AC-G"), 1)
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	if !m.Cell[0][1].Undefined {
		t.Fatalf("all-gap pair must be undefined, got %v", m.Cell[0][1])
	}
	if !m.Cell[0][0].Undefined {
		t.Fatalf("all-gap self identity must be undefined, got %v", m.Cell[0][0])
	}
}

func TestPairwiseIdentityNeedsTwoRecords(t *testing.T) {
	_, err := PairwiseIdentity(alignment("ACGT"), 1)
	var eerr *record.EmptyInputError
	if !errors.As(err, &eerr) {
		t.Fatalf("expected EmptyInputError for single record, got %v", err)
	}
}

func TestPairwiseIdentityParallelMatchesSerial(t *testing.T) {
	aln := alignment("ACGTACGT", "AGGTACGA", "ACCTACGT", "TCGTAAGT", "ACGAACGG")
	serial, err := PairwiseIdentity(aln, 1)
	if err != nil {
		t.Fatalf("serial: %v", err)
	}
	parallel, err := PairwiseIdentity(aln, 4)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}
	if !reflect.DeepEqual(serial, parallel) {
		t.Fatalf("parallel matrix differs from serial")
	}
}

func TestVariableSites(t *testing.T) {
	// Col1: A/A/A constant. Col2: C/G/C variable. Col3: G/G/T variable.
	// Col4: T/-/T constant (gap excluded).
	n, err := VariableSites(alignment("ACGT", "AGG-", "ACTT"))
	if err != nil {
		t.Fatalf("variable sites: %v", err)
	}
	if n != 2 {
		t.Fatalf("variable sites = %d, want 2", n)
	}
}

func TestParsimonyInformativeSites(t *testing.T) {
	// Col2 has C,C,G,G -> informative. Col1 constant; col3 C,C,G,T has only
	// one symbol with count >= 2; col4 constant.
	n, err := ParsimonyInformativeSites(alignment("ACCA", "ACCA", "AGGA", "AGTA"))
	if err != nil {
		t.Fatalf("pis: %v", err)
	}
	if n != 1 {
		t.Fatalf("parsimony-informative sites = %d, want 1", n)
	}
}

func TestGapFraction(t *testing.T) {
	cols, mean, err := GapFraction(alignment("A-GT", "AC-T"))
	if err != nil {
		t.Fatalf("gaps: %v", err)
	}
	if len(cols) != 4 {
		t.Fatalf("want 4 columns, got %d", len(cols))
	}
	if cols[1].Gaps != 1 || !almost(cols[1].Ratio.Value, 0.5) {
		t.Fatalf("column 2 wrong: %+v", cols[1])
	}
	if !almost(mean.Value, 0.25) { // 2 gaps over 8 cells
		t.Fatalf("mean gap fraction = %v, want 0.25", mean)
	}
}

func TestSummarizeAlignment(t *testing.T) {
	sum, err := SummarizeAlignment(alignment("ACGT", "AGG-", "ACTT"))
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Records != 3 || sum.Width != 4 || sum.VariableSites != 2 {
		t.Fatalf("bad summary: %+v", sum)
	}
}

func TestConsensus(t *testing.T) {
	cons, err := Consensus(alignment("ACGT", "ACGA", "ACTA"), 0.5, 'N')
	if err != nil {
		t.Fatalf("consensus: %v", err)
	}
	// Col3: G,G,T -> G (2/3 >= 0.5). Col4: T,A,A -> A.
	if string(cons.Seq) != "ACGA" {
		t.Fatalf("consensus = %s, want ACGA", cons.Seq)
	}
	// Threshold above any share emits the ambiguity character.
	cons, err = Consensus(alignment("AC", "AG", "AT"), 0.9, 'N')
	if err != nil {
		t.Fatalf("consensus: %v", err)
	}
	if string(cons.Seq) != "AN" {
		t.Fatalf("consensus = %s, want AN", cons.Seq)
	}
}
