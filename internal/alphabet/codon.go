// internal/alphabet/codon.go
package alphabet

import "strings"

// Standard genetic code: DNA codon to amino acid (single letter, '*' = stop).
var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',

	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// synonyms maps each amino acid (and stop) to its codon family.
var synonyms = map[byte][]string{}

func init() {
	for codon, aa := range codonTable {
		synonyms[aa] = append(synonyms[aa], codon)
	}
}

// TranslateCodon maps a 3-letter DNA codon to its amino acid. T and U are
// interchangeable. Returns 'X' for partial codons or codons containing
// symbols outside {A,C,G,T,U}.
func TranslateCodon(codon string) byte {
	norm, ok := NormalizeCodon(codon)
	if !ok {
		return 'X'
	}
	return codonTable[norm]
}

// NormalizeCodon uppercases codon and folds U to T. ok is false when the
// codon is not exactly three unambiguous nucleotides.
func NormalizeCodon(codon string) (string, bool) {
	if len(codon) != 3 {
		return "", false
	}
	var b [3]byte
	for i := 0; i < 3; i++ {
		c := Upper(codon[i])
		if c == 'U' {
			c = 'T'
		}
		if c != 'A' && c != 'C' && c != 'G' && c != 'T' {
			return "", false
		}
		b[i] = c
	}
	return string(b[:]), true
}

// SynonymousCodons returns the codon family encoding the same amino acid as
// codon (codon included). The result is nil for non-standard codons.
func SynonymousCodons(codon string) []string {
	norm, ok := NormalizeCodon(codon)
	if !ok {
		return nil
	}
	return synonyms[codonTable[norm]]
}

// Codons lists all 64 standard codons in lexicographic order.
func Codons() []string {
	out := make([]string, 0, 64)
	for _, a := range "ACGT" {
		for _, b := range "ACGT" {
			for _, c := range "ACGT" {
				out = append(out, string([]rune{a, b, c}))
			}
		}
	}
	return out
}

// IsStopCodon reports whether codon encodes a translation stop.
func IsStopCodon(codon string) bool { return TranslateCodon(codon) == '*' }

// Translate converts a DNA sequence to amino acids in frame 0; trailing
// partial codons are dropped. Codons with ambiguous symbols become 'X'.
func Translate(seq []byte) string {
	n := (len(seq) / 3) * 3
	var b strings.Builder
	b.Grow(n / 3)
	for i := 0; i < n; i += 3 {
		b.WriteByte(TranslateCodon(string(seq[i : i+3])))
	}
	return b.String()
}
