package nucleotide

// Allowed IUPAC nucleotide codes, gaps included
const Alphabet = "ACGTURYSWKMBDHVN.-"

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['U'] = 'A'
	complement['R'] = 'Y'
	complement['Y'] = 'R'
	complement['S'] = 'S'
	complement['W'] = 'W'
	complement['K'] = 'M'
	complement['M'] = 'K'
	complement['B'] = 'V'
	complement['V'] = 'B'
	complement['D'] = 'H'
	complement['H'] = 'D'
	complement['N'] = 'N'
	complement['.'] = '.'
	complement['-'] = '-'
}

// CodonTable standard genetic code, stop as '*'
var CodonTable = map[string]byte{
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TGT": 'C', "TGC": 'C',
	"GAT": 'D', "GAC": 'D',
	"GAA": 'E', "GAG": 'E',
	"TTT": 'F', "TTC": 'F',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
	"CAT": 'H', "CAC": 'H',
	"ATT": 'I', "ATC": 'I', "ATA": 'I',
	"AAA": 'K', "AAG": 'K',
	"TTA": 'L', "TTG": 'L', "CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATG": 'M',
	"AAT": 'N', "AAC": 'N',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R', "AGA": 'R', "AGG": 'R',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S', "AGT": 'S', "AGC": 'S',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TGG": 'W',
	"TAT": 'Y', "TAC": 'Y',
	"TAA": '*', "TAG": '*', "TGA": '*',
}

// UnknownAminoAcid placeholder for codons outside CodonTable
const UnknownAminoAcid = 'X'
