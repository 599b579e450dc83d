package nucleotide

import "strings"

func toDNA(seq string) string {
	return strings.ReplaceAll(Sanitize(seq), "U", "T")
}

// Translate reads seq in frame 1, trailing 1-2 bases are dropped.
// Codons with ambiguous bases or gaps become UnknownAminoAcid.
func Translate(seq string) string {
	seq = toDNA(seq)
	n := len(seq) - len(seq)%3
	out := make([]byte, 0, n/3)
	for i := 0; i < n; i += 3 {
		aa, ok := CodonTable[seq[i:i+3]]
		if !ok {
			aa = UnknownAminoAcid
		}
		out = append(out, aa)
	}
	return string(out)
}

// TranslateStrict is Translate that fails on the first codon outside CodonTable
func TranslateStrict(seq string) (string, error) {
	seq = toDNA(seq)
	n := len(seq) - len(seq)%3
	out := make([]byte, 0, n/3)
	for i := 0; i < n; i += 3 {
		aa, ok := CodonTable[seq[i:i+3]]
		if !ok {
			pos := i
			for j := i; j < i+3; j++ {
				if strings.IndexByte("ACGT", seq[j]) < 0 {
					pos = j
					break
				}
			}
			return "", &InvalidSequenceError{Sequence: seq, Position: pos + 1, Char: seq[pos]}
		}
		out = append(out, aa)
	}
	return string(out), nil
}
