package nucleotide

import (
	"strings"
	"unicode"
)

// Sanitize uppercases seq and keeps only characters of Alphabet
func Sanitize(seq string) string {
	var b strings.Builder
	b.Grow(len(seq))
	for _, r := range seq {
		if unicode.IsSpace(r) {
			continue
		}
		r = unicode.ToUpper(r)
		if r < 128 && strings.IndexByte(Alphabet, byte(r)) >= 0 {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// IsNucleotideSequence reports whether every character of seq has a complement
func IsNucleotideSequence(seq string) bool {
	for i := 0; i < len(seq); i++ {
		if complement[seq[i]] == 0 {
			return false
		}
	}
	return true
}

// Complement sanitizes seq and complements it base by base.
// U complements to A, so only DNA input round-trips.
func Complement(seq string) string {
	seq = Sanitize(seq)
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = complement[seq[i]]
	}
	return string(out)
}

func ReverseComplement(seq string) string {
	seq = Sanitize(seq)
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = complement[seq[i]]
	}
	return string(out)
}

func Reverse(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = seq[i]
	}
	return string(out)
}

// FractionGC returns count(G|C)/len, 0 for empty seq
func FractionGC(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	return float64(CountGC(seq)) / float64(len(seq))
}

func CountGC(seq string) int {
	var n int
	for i := 0; i < len(seq); i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			n++
		}
	}
	return n
}

// ValidatePrimerSequence accepts only unambiguous A/C/G/T
func ValidatePrimerSequence(seq string) error {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return &InvalidSequenceError{Sequence: seq, Position: i + 1, Char: seq[i]}
		}
	}
	return nil
}
