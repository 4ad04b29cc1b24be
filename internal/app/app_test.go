package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestGCContentEndToEnd(t *testing.T) {
	fa := write(t, "x.fa", ">s1\nACGT\n>s2\nGGCC\n")
	code, out, errS := run(t, "gc_content", fa)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	if strings.TrimSpace(out) != "0.7500" {
		t.Fatalf("gc output: %q", out)
	}
}

func TestGCContentAliasAndVerbose(t *testing.T) {
	fa := write(t, "x.fa", ">s1\nGGGG\n>s2\nAAAA\n")
	code, out, _ := run(t, "gc", fa, "--verbose", "--no-header")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := "s1\t1.0000\ns2\t0.0000\n"
	if out != want {
		t.Fatalf("per-record output %q, want %q", out, want)
	}
}

func TestFastqQualityMismatchFatal(t *testing.T) {
	fq := write(t, "x.fq", "@read9\nACGTACG\n+\nIIII\n")
	code, out, errS := run(t, "fastq_quality", fq)
	if code != 1 {
		t.Fatalf("expected exit 1 for malformed record, got %d", code)
	}
	if out != "" {
		t.Fatalf("no partial statistics may be emitted, got %q", out)
	}
	if !strings.Contains(errS, "read9") {
		t.Fatalf("error must name the offending read: %s", errS)
	}
}

func TestEmptyInputSemantics(t *testing.T) {
	fa := write(t, "empty.fa", "")
	code, out, _ := run(t, "total_length", fa)
	if code != 0 || strings.TrimSpace(out) != "0" {
		t.Fatalf("total_length on empty input: exit %d out %q", code, out)
	}
	code, _, errS := run(t, "n50", fa)
	if code != 1 {
		t.Fatalf("n50 on empty input must fail, got exit %d", code)
	}
	if !strings.Contains(errS, "n50") {
		t.Fatalf("error should name the metric: %s", errS)
	}
}

func TestAlignmentWidthMismatchFatal(t *testing.T) {
	fa := write(t, "aln.fa", ">a\nACGT\n>b\nACG\n")
	code, _, errS := run(t, "alignment_summary", fa)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errS, "b") || !strings.Contains(errS, "4") {
		t.Fatalf("error must name record and expected width: %s", errS)
	}
}

func TestPairwiseIdentityScenario(t *testing.T) {
	fa := write(t, "aln.fa", ">a\nACGT\n>b\nAGGT\n")
	code, out, errS := run(t, "pi", fa, "--no-header")
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	want := "a\t1.0000\t0.7500\nb\t0.7500\t1.0000\n"
	if out != want {
		t.Fatalf("matrix %q, want %q", out, want)
	}
}

func TestUnknownCommandIsUsageError(t *testing.T) {
	code, _, _ := run(t, "not_a_command")
	if code != 2 {
		t.Fatalf("unknown command should exit 2, got %d", code)
	}
}

func TestStrictSymbolValidation(t *testing.T) {
	fa := write(t, "x.fa", ">s1\nACGJ\n")
	code, _, _ := run(t, "gc_content", fa)
	if code != 0 {
		t.Fatalf("lenient mode should tolerate odd symbols, got exit %d", code)
	}
	code, _, errS := run(t, "gc_content", fa, "--strict")
	if code != 1 {
		t.Fatalf("strict mode should exit 1, got %d", code)
	}
	if !strings.Contains(errS, "J") {
		t.Fatalf("error must name the symbol: %s", errS)
	}
}

func TestFaidxExtractsEntry(t *testing.T) {
	fa := write(t, "x.fa", ">s1\nACGT\n>s2\nGGCC\n")
	code, out, _ := run(t, "faidx", fa, "--entry", "s2")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out != ">s2\nGGCC\n" {
		t.Fatalf("faidx output %q", out)
	}
	code, _, _ = run(t, "faidx", fa, "--entry", "missing")
	if code == 0 {
		t.Fatalf("missing entry should fail")
	}
}

func TestSequenceComplement(t *testing.T) {
	fa := write(t, "x.fa", ">s1\nAACG\n")
	code, out, _ := run(t, "sequence_complement", fa)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out != ">s1\nTTGC\n" {
		t.Fatalf("complement %q", out)
	}
	code, out, _ = run(t, "seq_comp", fa, "--reverse")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out != ">s1\nCGTT\n" {
		t.Fatalf("reverse complement %q", out)
	}
}

func TestRenameFastaEntries(t *testing.T) {
	fa := write(t, "x.fa", ">old1\nACGT\n>keep\nGG\n")
	idmap := write(t, "map.tsv", "old1\tnew1\n")
	code, out, _ := run(t, "rename_fasta_entries", fa, "--idmap", idmap)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, ">new1\n") || !strings.Contains(out, ">keep\n") {
		t.Fatalf("renamed output %q", out)
	}
}

func TestConsensusSequenceEndToEnd(t *testing.T) {
	fa := write(t, "aln.fa", ">a\nACGT\n>b\nACGA\n>c\nACTA\n")
	code, out, _ := run(t, "consensus_sequence", fa, "--threshold", "0.5")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out != ">consensus\nACGA\n" {
		t.Fatalf("consensus %q", out)
	}
}

func TestRSCUEndToEnd(t *testing.T) {
	fa := write(t, "cds.fa", ">g1\nAAAAAG\n")
	code, out, _ := run(t, "rscu", fa, "--no-header")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := "AAA\tK\t1\t1.0000\nAAG\tK\t1\t1.0000\n"
	if out != want {
		t.Fatalf("rscu %q, want %q", out, want)
	}
}

func TestTipLabels(t *testing.T) {
	tree := write(t, "t.nwk", "((sp1:0.1,sp2:0.2):0.05,sp3:0.3);")
	code, out, errS := run(t, "tip_labels", tree)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	want := "sp1\nsp2\nsp3\n"
	if out != want {
		t.Fatalf("tip labels %q, want %q", out, want)
	}
}

func TestVersionFlag(t *testing.T) {
	code, out, _ := run(t, "--version")
	if code != 0 || !strings.Contains(out, "biokit") {
		t.Fatalf("version: exit %d out %q", code, out)
	}
}
