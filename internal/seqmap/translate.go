package seqmap

import "strings"

// complement maps each IUPAC nucleotide code to its complement.
// Unrecognized symbols are passed through unchanged
var complement = map[byte]byte{
	'A': 'T',
	'T': 'A',
	'G': 'C',
	'C': 'G',
	'R': 'Y',
	'Y': 'R',
	'M': 'K',
	'K': 'M',
	'S': 'S',
	'W': 'W',
	'H': 'D',
	'D': 'H',
	'B': 'V',
	'V': 'B',
	'N': 'N',
}

// codonTable is the standard genetic code, stop codons as "*"
var codonTable = map[string]string{
	"TTT": "F", "TTC": "F", "TTA": "L", "TTG": "L",
	"CTT": "L", "CTC": "L", "CTA": "L", "CTG": "L",
	"ATT": "I", "ATC": "I", "ATA": "I", "ATG": "M",
	"GTT": "V", "GTC": "V", "GTA": "V", "GTG": "V",
	"TCT": "S", "TCC": "S", "TCA": "S", "TCG": "S",
	"CCT": "P", "CCC": "P", "CCA": "P", "CCG": "P",
	"ACT": "T", "ACC": "T", "ACA": "T", "ACG": "T",
	"GCT": "A", "GCC": "A", "GCA": "A", "GCG": "A",
	"TAT": "Y", "TAC": "Y", "TAA": "*", "TAG": "*",
	"CAT": "H", "CAC": "H", "CAA": "Q", "CAG": "Q",
	"AAT": "N", "AAC": "N", "AAA": "K", "AAG": "K",
	"GAT": "D", "GAC": "D", "GAA": "E", "GAG": "E",
	"TGT": "C", "TGC": "C", "TGA": "*", "TGG": "W",
	"CGT": "R", "CGC": "R", "CGA": "R", "CGG": "R",
	"AGT": "S", "AGC": "S", "AGA": "R", "AGG": "R",
	"GGT": "G", "GGC": "G", "GGA": "G", "GGG": "G",
}

// ReverseComplement returns the reverse complement of a sequence.
// IUPAC ambiguity codes are complemented to their IUPAC counterpart
func ReverseComplement(seq string) string {
	var rc strings.Builder
	rc.Grow(len(seq))

	for i := len(seq) - 1; i >= 0; i-- {
		if c, ok := complement[seq[i]]; ok {
			rc.WriteByte(c)
		} else {
			rc.WriteByte(seq[i])
		}
	}
	return rc.String()
}

// Translate converts a nucleotide sequence to protein. If strand is -1
// the reverse complement is translated. Codons with non-ATGC bases become
// "X". If stopAtStop is set translation halts at the first stop codon,
// including the "*" in the output. Trailing bases short of a codon are
// dropped. Total for any input
func Translate(seq string, strand int, stopAtStop bool) string {
	seq = strings.ToUpper(seq)
	if strand < 0 {
		seq = ReverseComplement(seq)
	}

	var protein strings.Builder
	protein.Grow(len(seq) / 3)

	for i := 0; i+3 <= len(seq); i += 3 {
		aa, ok := codonTable[seq[i:i+3]]
		if !ok {
			aa = "X"
		}
		protein.WriteString(aa)

		if stopAtStop && aa == "*" {
			break
		}
	}
	return protein.String()
}
