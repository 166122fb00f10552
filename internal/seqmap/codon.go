package seqmap

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// CodonCount is one row of a codon usage table
type CodonCount struct {
	// Codon, eg ATG
	Codon string `json:"codon"`

	// AA is the encoded amino acid, "*" for stop
	AA string `json:"aa"`

	// Count of this codon in the analyzed region
	Count int `json:"count"`

	// Frequency is count / total codons
	Frequency float64 `json:"frequency"`

	// FractionOfAA is count / total across synonymous codons
	FractionOfAA float64 `json:"fractionOfAA"`
}

// CodonUsageResult aggregates codon statistics for one coding region
type CodonUsageResult struct {
	TotalCodons int          `json:"totalCodons"`
	Counts      []CodonCount `json:"counts"`

	// CAI is the codon adaptation index against the E. coli reference
	CAI float64 `json:"cai"`

	GCContent float64 `json:"gcContent"`

	// GC3Content is GC restricted to third codon positions
	GC3Content float64 `json:"gc3Content"`
}

// codonBases in the conventional codon-table order
const codonBases = "TCAG"

// codonUsageTables holds per-codon usage (frequency per thousand codons)
// for the built-in reference organisms
var codonUsageTables = map[string]map[string]float64{
	"ecoli": {
		"TTT": 22.2, "TTC": 16.6, "TTA": 13.9, "TTG": 13.7,
		"CTT": 11.0, "CTC": 11.0, "CTA": 3.9, "CTG": 52.6,
		"ATT": 30.3, "ATC": 25.1, "ATA": 4.4, "ATG": 27.9,
		"GTT": 18.3, "GTC": 15.3, "GTA": 10.9, "GTG": 26.4,
		"TCT": 8.5, "TCC": 8.6, "TCA": 7.2, "TCG": 8.9,
		"CCT": 7.0, "CCC": 5.5, "CCA": 8.4, "CCG": 23.2,
		"ACT": 9.0, "ACC": 23.4, "ACA": 7.1, "ACG": 14.4,
		"GCT": 15.3, "GCC": 25.5, "GCA": 20.1, "GCG": 33.6,
		"TAT": 16.2, "TAC": 12.2, "TAA": 2.0, "TAG": 0.2,
		"CAT": 12.9, "CAC": 9.7, "CAA": 15.3, "CAG": 28.8,
		"AAT": 17.7, "AAC": 21.7, "AAA": 33.6, "AAG": 10.3,
		"GAT": 32.1, "GAC": 19.1, "GAA": 39.4, "GAG": 17.8,
		"TGT": 5.2, "TGC": 6.4, "TGA": 0.9, "TGG": 15.2,
		"CGT": 20.9, "CGC": 22.0, "CGA": 3.6, "CGG": 5.4,
		"AGT": 8.8, "AGC": 16.1, "AGA": 2.1, "AGG": 1.2,
		"GGT": 24.7, "GGC": 29.6, "GGA": 8.0, "GGG": 11.1,
	},
	"yeast": {
		"TTT": 26.1, "TTC": 18.4, "TTA": 26.2, "TTG": 27.2,
		"CTT": 12.3, "CTC": 5.4, "CTA": 13.4, "CTG": 10.5,
		"ATT": 30.1, "ATC": 17.2, "ATA": 17.8, "ATG": 20.9,
		"GTT": 22.1, "GTC": 11.8, "GTA": 11.8, "GTG": 10.8,
		"TCT": 23.5, "TCC": 14.2, "TCA": 18.7, "TCG": 8.6,
		"CCT": 13.5, "CCC": 6.8, "CCA": 18.3, "CCG": 5.3,
		"ACT": 20.3, "ACC": 12.7, "ACA": 17.8, "ACG": 8.0,
		"GCT": 21.2, "GCC": 12.6, "GCA": 16.2, "GCG": 6.2,
		"TAT": 18.8, "TAC": 14.8, "TAA": 1.1, "TAG": 0.5,
		"CAT": 13.6, "CAC": 7.8, "CAA": 27.3, "CAG": 12.1,
		"AAT": 35.7, "AAC": 24.8, "AAA": 41.9, "AAG": 30.8,
		"GAT": 37.6, "GAC": 20.2, "GAA": 45.6, "GAG": 19.2,
		"TGT": 8.1, "TGC": 4.8, "TGA": 0.7, "TGG": 10.4,
		"CGT": 6.4, "CGC": 2.6, "CGA": 3.0, "CGG": 1.7,
		"AGT": 14.2, "AGC": 9.8, "AGA": 21.3, "AGG": 9.2,
		"GGT": 23.9, "GGC": 9.8, "GGA": 10.9, "GGG": 6.0,
	},
	"human": {
		"TTT": 17.6, "TTC": 20.3, "TTA": 7.7, "TTG": 12.9,
		"CTT": 13.2, "CTC": 19.6, "CTA": 7.2, "CTG": 39.6,
		"ATT": 16.0, "ATC": 20.8, "ATA": 7.5, "ATG": 22.0,
		"GTT": 11.0, "GTC": 14.5, "GTA": 7.1, "GTG": 28.1,
		"TCT": 15.2, "TCC": 17.7, "TCA": 12.2, "TCG": 4.4,
		"CCT": 17.5, "CCC": 19.8, "CCA": 16.9, "CCG": 6.9,
		"ACT": 13.1, "ACC": 18.9, "ACA": 15.1, "ACG": 6.1,
		"GCT": 18.4, "GCC": 27.7, "GCA": 15.8, "GCG": 7.4,
		"TAT": 12.2, "TAC": 15.3, "TAA": 1.0, "TAG": 0.8,
		"CAT": 10.9, "CAC": 15.1, "CAA": 12.3, "CAG": 34.2,
		"AAT": 17.0, "AAC": 19.1, "AAA": 24.4, "AAG": 31.9,
		"GAT": 21.8, "GAC": 25.1, "GAA": 29.0, "GAG": 39.6,
		"TGT": 10.6, "TGC": 12.6, "TGA": 1.6, "TGG": 13.2,
		"CGT": 4.5, "CGC": 10.4, "CGA": 6.2, "CGG": 11.4,
		"AGT": 12.1, "AGC": 19.5, "AGA": 12.2, "AGG": 12.0,
		"GGT": 10.8, "GGC": 22.2, "GGA": 16.5, "GGG": 16.5,
	},
}

// caiReference is the relative adaptiveness of each codon against the
// E. coli reference, the table CAI is computed from
var caiReference = relativeAdaptiveness(codonUsageTables["ecoli"])

// relativeAdaptiveness converts per-thousand codon usage into relative
// adaptiveness: each codon's usage divided by the best synonymous
// codon's usage. Stop codons are excluded
func relativeAdaptiveness(usage map[string]float64) map[string]float64 {
	best := make(map[string]float64)
	for codon, freq := range usage {
		aa := codonTable[codon]
		if aa == "*" {
			continue
		}
		if freq > best[aa] {
			best[aa] = freq
		}
	}

	w := make(map[string]float64, len(usage))
	for codon, freq := range usage {
		aa := codonTable[codon]
		if aa == "*" || best[aa] == 0 {
			continue
		}
		w[codon] = freq / best[aa]
	}
	return w
}

// ReferenceTableNames returns the names of the built-in codon usage
// reference tables
func ReferenceTableNames() []string {
	names := make([]string, 0, len(codonUsageTables))
	for name := range codonUsageTables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReferenceTable returns the relative adaptiveness table for an organism
func ReferenceTable(name string) (map[string]float64, bool) {
	usage, ok := codonUsageTables[name]
	if !ok {
		return nil, false
	}
	return relativeAdaptiveness(usage), true
}

// AnalyzeCodonUsage computes per-codon statistics for one contiguous
// coding region: counts, frequencies, synonymous fractions, GC and GC3
// content, and the CAI against the E. coli reference table. Non-ATGC
// characters are stripped before counting; a trailing partial codon is
// ignored
func AnalyzeCodonUsage(coding string) CodonUsageResult {
	cleaned := stripNonATGC(strings.ToUpper(coding))
	totalCodons := len(cleaned) / 3

	counts := make(map[string]int)
	aaTotals := make(map[string]int)
	gc3 := 0
	var ws []float64

	for i := 0; i+3 <= len(cleaned); i += 3 {
		codon := cleaned[i : i+3]
		aa := codonTable[codon]

		counts[codon]++
		aaTotals[aa]++

		if codon[2] == 'G' || codon[2] == 'C' {
			gc3++
		}

		if aa != "*" {
			if w, ok := caiReference[codon]; ok && w > 0 {
				ws = append(ws, w)
			}
		}
	}

	result := CodonUsageResult{
		TotalCodons: totalCodons,
		GCContent:   GCContent(cleaned),
	}
	if totalCodons > 0 {
		result.GC3Content = float64(gc3) / float64(totalCodons)
	}
	if len(ws) > 0 {
		result.CAI = stat.GeometricMean(ws, nil)
	}

	// the 64-row table in conventional TCAG order
	for _, b1 := range codonBases {
		for _, b2 := range codonBases {
			for _, b3 := range codonBases {
				codon := string([]rune{b1, b2, b3})
				aa := codonTable[codon]

				row := CodonCount{
					Codon: codon,
					AA:    aa,
					Count: counts[codon],
				}
				if totalCodons > 0 {
					row.Frequency = float64(counts[codon]) / float64(totalCodons)
				}
				if aaTotals[aa] > 0 {
					row.FractionOfAA = float64(counts[codon]) / float64(aaTotals[aa])
				}

				result.Counts = append(result.Counts, row)
			}
		}
	}

	return result
}

// stripNonATGC drops every character outside {A,T,G,C}
func stripNonATGC(seq string) string {
	var cleaned strings.Builder
	cleaned.Grow(len(seq))

	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'T', 'G', 'C':
			cleaned.WriteByte(seq[i])
		}
	}
	return cleaned.String()
}
