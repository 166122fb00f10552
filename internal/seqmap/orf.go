package seqmap

import (
	"sort"
	"strings"
)

// ORF is an open reading frame. Start and End are 0-based, end exclusive,
// always in forward-strand coordinates regardless of the scanned strand
type ORF struct {
	// Frame the ORF was found in, one of +1 +2 +3 -1 -2 -3
	Frame int `json:"frame"`

	// Start of the ORF (0-based)
	Start int `json:"start"`

	// End of the ORF (0-based, exclusive)
	End int `json:"end"`

	// Length in nucleotides, always a multiple of 3
	Length int `json:"length"`

	// AALength is the protein length, stop codon excluded
	AALength int `json:"aaLength"`

	// Strand is +1 or -1
	Strand int `json:"strand"`
}

// stopCodons of the standard genetic code
var stopCodons = map[string]bool{
	"TAA": true,
	"TAG": true,
	"TGA": true,
}

// FindAllORFs scans all six reading frames for ORFs of at least minAa
// amino acids (stop excluded). An ATG opens an ORF; the ORF runs through
// the next in-frame stop codon inclusive, or to the end of the frame if
// none is found. Scanning resumes after a closed ORF's stop codon, so
// start codons nested inside a reported ORF are skipped. Results are
// sorted by descending amino-acid length
func FindAllORFs(seq string, minAa int) []ORF {
	seq = strings.ToUpper(seq)
	length := len(seq)

	var orfs []ORF
	for _, strand := range []int{1, -1} {
		scanned := seq
		if strand == -1 {
			scanned = ReverseComplement(seq)
		}

		for frameOffset := 0; frameOffset < 3; frameOffset++ {
			orfs = append(orfs, scanFrame(scanned, strand, frameOffset, length, minAa)...)
		}
	}

	sort.SliceStable(orfs, func(i, j int) bool {
		return orfs[i].AALength > orfs[j].AALength
	})

	return orfs
}

// scanFrame finds the ORFs of a single reading frame. For the reverse
// strand the scanned sequence is the reverse complement and coordinates
// are mapped back with start' = length-end, end' = length-start
func scanFrame(scanned string, strand, frameOffset, length, minAa int) []ORF {
	var orfs []ORF

	i := frameOffset
	for i+3 <= len(scanned) {
		if scanned[i:i+3] != "ATG" {
			i += 3
			continue
		}

		start := i
		j := start + 3
		stopFound := false
		for j+3 <= len(scanned) {
			if stopCodons[scanned[j:j+3]] {
				stopFound = true
				break
			}
			j += 3
		}

		end := start + ((len(scanned)-start)/3)*3 // trailing remainder dropped
		if stopFound {
			end = j + 3
		}

		aaLength := (end - start) / 3
		if stopFound {
			aaLength-- // stop codon excluded from the protein length
		}

		if aaLength >= minAa {
			orf := ORF{
				Frame:    strand * (frameOffset + 1),
				Start:    start,
				End:      end,
				Length:   end - start,
				AALength: aaLength,
				Strand:   strand,
			}
			if strand == -1 {
				orf.Start = length - end
				orf.End = length - start
			}
			orfs = append(orfs, orf)
		}

		if !stopFound {
			break // ran off the end of the frame
		}
		i = j + 3
	}

	return orfs
}
