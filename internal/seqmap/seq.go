// Package seqmap is the sequence analysis engine: readers for common
// annotation formats, translation, restriction mapping, ORF finding,
// codon usage and primer design over a single in-memory sequence
package seqmap

// Attr is a single key/value note on a Feature. Attributes keep their
// insertion order for round-trip fidelity
type Attr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Feature is an annotated sub-region of a Sequence. Start and End are
// 1-based inclusive; End < Start denotes a region wrapping through the
// origin of a circular sequence
type Feature struct {
	// Type of the feature, eg CDS, promoter, primer_bind
	Type string `json:"type"`

	// Start of the feature (1-based, inclusive)
	Start int `json:"start"`

	// End of the feature (1-based, inclusive)
	End int `json:"end"`

	// Strand is +1 for the forward strand, -1 for the reverse
	Strand int `json:"strand"`

	// Label is the display name, if any
	Label string `json:"label,omitempty"`

	// Attributes are the feature's qualifiers/notes in insertion order
	Attributes []Attr `json:"attributes,omitempty"`
}

// Sequence is the canonical in-memory representation of a nucleotide
// sequence and its annotated features
type Sequence struct {
	// Name for display. In >example_CDS FASTA its "example_CDS"
	Name string `json:"name"`

	// Seq is the uppercased nucleotide sequence
	Seq string `json:"seq"`

	// Circular is whether the molecule is circular (eg a plasmid)
	Circular bool `json:"circular"`

	// Features annotated on this sequence
	Features []Feature `json:"features,omitempty"`
}

// Length returns the number of bases in the sequence
func (s *Sequence) Length() int {
	return len(s.Seq)
}

// Region extracts a 0-based half-open span of the sequence. On circular
// sequences a span with end <= start wraps through the origin
func (s *Sequence) Region(start, end int) string {
	n := len(s.Seq)
	if n == 0 {
		return ""
	}

	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}

	if start < end {
		return s.Seq[start:end]
	}
	if s.Circular && start < n && end >= 0 {
		return s.Seq[start:] + s.Seq[:end]
	}
	return ""
}

// GCContent returns the fraction of G and C bases in a sequence,
// 0 for an empty input
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}

	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(gc) / float64(len(seq))
}
