package alphabet

import (
	"bytes"
	"testing"
)

func TestIsNucleotide(t *testing.T) {
	for _, c := range []byte("ACGTUacgtuRYSWKMBDHVNn-?") {
		if !IsNucleotide(c) {
			t.Errorf("expected %q to be a nucleotide symbol", c)
		}
	}
	for _, c := range []byte("EFJZ!1 ") {
		if IsNucleotide(c) {
			t.Errorf("expected %q to be rejected", c)
		}
	}
}

func TestIsUnambiguous(t *testing.T) {
	for _, c := range []byte("ACGTacgtUu") {
		if !IsUnambiguous(c) {
			t.Errorf("%q should be unambiguous", c)
		}
	}
	for _, c := range []byte("NRYn-") {
		if IsUnambiguous(c) {
			t.Errorf("%q should not be unambiguous", c)
		}
	}
}

func TestComplementSeq(t *testing.T) {
	got := ComplementSeq([]byte("ACGTRY"), false)
	if string(got) != "TGCAYR" {
		t.Fatalf("complement: got %s", got)
	}
	got = ComplementSeq([]byte("AACG"), true)
	if string(got) != "CGTT" {
		t.Fatalf("reverse complement: got %s", got)
	}
	// Lowercase preserved.
	got = ComplementSeq([]byte("acgt"), false)
	if string(got) != "tgca" {
		t.Fatalf("lowercase complement: got %s", got)
	}
}

func TestComplementInvolution(t *testing.T) {
	seq := []byte("ACGTRYSWKMBDHVN-")
	twice := ComplementSeq(ComplementSeq(seq, false), false)
	if !bytes.Equal(twice, seq) {
		t.Fatalf("complement is not an involution: %s -> %s", seq, twice)
	}
}
