// internal/alphabet/alphabet.go
package alphabet

// Alphabet selects which symbol set a command validates and counts against.
type Alphabet int

const (
	Nucleotide Alphabet = iota
	Protein
)

func (a Alphabet) String() string {
	if a == Protein {
		return "protein"
	}
	return "nucleotide"
}

// Gap symbols accepted in alignment columns.
const (
	Gap      = '-'
	GapAlt   = '?'
	Ambig    = 'N'
	AmbigAA  = 'X'
	StopCode = '*'
)

/* -------------------------- IUPAC lookup table -------------------------- */

var iupacMask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) {
		iupacMask[c] = bits
		iupacMask[c|0x20] = bits // lowercase
	}
	set('A', 1)
	set('C', 2)
	set('G', 4)
	set('T', 8)
	set('U', 8) // RNA uracil pairs like T
	set('R', 1|4)
	set('Y', 2|8)
	set('S', 2|4)
	set('W', 1|8)
	set('K', 4|8)
	set('M', 1|2)
	set('B', 2|4|8)
	set('D', 1|4|8)
	set('H', 1|2|8)
	set('V', 1|2|4)
	set('N', 1|2|4|8)
}

// IsNucleotide reports whether c is a valid nucleotide symbol, including
// IUPAC ambiguity codes and the gap symbol.
func IsNucleotide(c byte) bool {
	return iupacMask[c] != 0 || c == Gap || c == GapAlt
}

// IsUnambiguous reports whether c is exactly one of A, C, G, T/U
// (either case). Ambiguity codes and gaps are excluded.
func IsUnambiguous(c byte) bool {
	m := iupacMask[c]
	return m == 1 || m == 2 || m == 4 || m == 8
}

// IsGap reports whether c is a gap symbol.
func IsGap(c byte) bool { return c == Gap || c == GapAlt }

/* --------------------------- amino acids --------------------------- */

var aminoAcid [256]bool

func init() {
	for _, c := range []byte("ACDEFGHIKLMNPQRSTVWY") {
		aminoAcid[c] = true
		aminoAcid[c|0x20] = true
	}
	aminoAcid[AmbigAA] = true
	aminoAcid['x'] = true
	aminoAcid[StopCode] = true
}

// IsAminoAcid reports whether c is a standard amino-acid symbol, the unknown
// residue X, the stop symbol *, or a gap.
func IsAminoAcid(c byte) bool {
	return aminoAcid[c] || c == Gap || c == GapAlt
}

// Valid reports whether c belongs to alphabet a.
func (a Alphabet) Valid(c byte) bool {
	if a == Protein {
		return IsAminoAcid(c)
	}
	return IsNucleotide(c)
}

/* --------------------------- complement --------------------------- */

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	pairs := []struct{ a, b byte }{
		{'A', 'T'}, {'G', 'C'}, {'R', 'Y'}, {'K', 'M'},
		{'B', 'V'}, {'D', 'H'},
	}
	for _, p := range pairs {
		complement[p.a] = p.b
		complement[p.b] = p.a
		complement[p.a|0x20] = p.b | 0x20
		complement[p.b|0x20] = p.a | 0x20
	}
	// U complements to A like T; W, S, N, and gaps map to themselves.
	complement['U'] = 'A'
	complement['u'] = 'a'
}

// Complement returns the IUPAC complement of c. Symbols without a defined
// complement (W, S, N, gaps) are returned unchanged.
func Complement(c byte) byte { return complement[c] }

// ComplementSeq returns the complement of seq; reverse additionally reverses
// the result.
func ComplementSeq(seq []byte, reverse bool) []byte {
	out := make([]byte, len(seq))
	n := len(seq)
	for i := 0; i < n; i++ {
		if reverse {
			out[i] = complement[seq[n-1-i]]
		} else {
			out[i] = complement[seq[i]]
		}
	}
	return out
}

// Upper returns c uppercased when it is an ASCII letter.
func Upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 0x20
	}
	return c
}
