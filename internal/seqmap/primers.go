package seqmap

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Primer is a single PCR primer candidate. Start and End are 0-based
// half-open coordinates on the original template; Seq is always written
// 5' to 3'
type Primer struct {
	// Seq of the primer (in 5' to 3' direction)
	Seq string `json:"seq"`

	// Start on the template (0-based)
	Start int `json:"start"`

	// End on the template (0-based, exclusive)
	End int `json:"end"`

	// Strand is +1 for forward, -1 for reverse
	Strand int `json:"strand"`

	// Length of the primer
	Length int `json:"length"`

	// Tm of the primer
	Tm float64 `json:"tm"`

	// GCPercent of the primer, 0-100
	GCPercent float64 `json:"gcPercent"`

	// SelfComplementarity is a 0-1 self-annealing risk score
	SelfComplementarity float64 `json:"selfComplementarity"`

	// HasGCClamp is whether a G or C sits in the last two 3' bases
	HasGCClamp bool `json:"hasGcClamp"`
}

// PrimerPair couples a forward and a reverse primer
type PrimerPair struct {
	Forward Primer `json:"fwd"`
	Reverse Primer `json:"rev"`

	// ProductSize of the amplicon the pair would produce
	ProductSize int `json:"productSize"`

	// MeanTm across the two primers
	MeanTm float64 `json:"meanTm"`
}

// PrimerOptions bound candidate generation and filtering
type PrimerOptions struct {
	MinLength int     `json:"minLength"`
	MaxLength int     `json:"maxLength"`
	MinTm     float64 `json:"minTm"`
	MaxTm     float64 `json:"maxTm"`
	MinGC     float64 `json:"minGc"`
	MaxGC     float64 `json:"maxGc"`

	// MaxTmDiff is the largest allowed Tm difference within a pair
	MaxTmDiff float64 `json:"maxTmDiff"`
}

// DefaultPrimerOptions are reasonable bounds for routine PCR
func DefaultPrimerOptions() PrimerOptions {
	return PrimerOptions{
		MinLength: 18,
		MaxLength: 25,
		MinTm:     50,
		MaxTm:     65,
		MinGC:     30,
		MaxGC:     70,
		MaxTmDiff: 5,
	}
}

// DesignPrimers generates and pairs primer candidates amplifying the
// 0-based half-open region [regionStart, regionEnd) of seq. For each
// length in [MinLength, MaxLength] one forward candidate is anchored at
// the region start and one reverse candidate at the region end. Kept
// candidates are cross-paired when their Tm differs by at most
// MaxTmDiff; pairs are ranked by Tm difference (quantized to 0.5 C),
// then combined self-complementarity
func DesignPrimers(seq string, regionStart, regionEnd int, opts PrimerOptions) []PrimerPair {
	seq = strings.ToUpper(seq)

	if regionStart < 0 {
		regionStart = 0
	}
	if regionEnd > len(seq) {
		regionEnd = len(seq)
	}
	if regionEnd <= regionStart {
		return nil
	}
	if opts.MaxTmDiff == 0 {
		opts.MaxTmDiff = 5
	}

	var fwd, rev []Primer
	for length := opts.MinLength; length <= opts.MaxLength; length++ {
		if length <= 0 || length > regionEnd-regionStart {
			continue
		}

		f := newPrimer(seq[regionStart:regionStart+length], regionStart, regionStart+length, 1)
		if keepCandidate(f, opts) {
			fwd = append(fwd, f)
		}

		r := newPrimer(ReverseComplement(seq[regionEnd-length:regionEnd]), regionEnd-length, regionEnd, -1)
		if keepCandidate(r, opts) {
			rev = append(rev, r)
		}
	}

	var pairs []PrimerPair
	for _, f := range fwd {
		for _, r := range rev {
			if math.Abs(f.Tm-r.Tm) > opts.MaxTmDiff {
				continue
			}

			pairs = append(pairs, PrimerPair{
				Forward:     f,
				Reverse:     r,
				ProductSize: r.End - f.Start,
				MeanTm:      stat.Mean([]float64{f.Tm, r.Tm}, nil),
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		di := quantizeTmDiff(pairs[i])
		dj := quantizeTmDiff(pairs[j])
		if di != dj {
			return di < dj
		}

		si := pairs[i].Forward.SelfComplementarity + pairs[i].Reverse.SelfComplementarity
		sj := pairs[j].Forward.SelfComplementarity + pairs[j].Reverse.SelfComplementarity
		return si < sj
	})

	return pairs
}

// newPrimer builds a Primer and its thermodynamic scores from a 5'-3'
// candidate sequence
func newPrimer(primerSeq string, start, end, strand int) Primer {
	return Primer{
		Seq:                 primerSeq,
		Start:               start,
		End:                 end,
		Strand:              strand,
		Length:              len(primerSeq),
		Tm:                  calculateTm(primerSeq),
		GCPercent:           GCContent(primerSeq) * 100,
		SelfComplementarity: scoreSelfComplementarity(primerSeq),
		HasGCClamp:          hasGCClamp(primerSeq),
	}
}

// keepCandidate is whether a candidate's Tm and GC fall within bounds
func keepCandidate(p Primer, opts PrimerOptions) bool {
	return p.Tm >= opts.MinTm && p.Tm <= opts.MaxTm &&
		p.GCPercent >= opts.MinGC && p.GCPercent <= opts.MaxGC
}

// quantizeTmDiff buckets a pair's Tm difference into 0.5 C steps so
// near-ties rank together
func quantizeTmDiff(pair PrimerPair) float64 {
	return math.Round(math.Abs(pair.Forward.Tm-pair.Reverse.Tm)*2) / 2
}

// calculateTm estimates a primer's melting temperature: the Wallace rule
// for oligos under 14 bases, a salt-adjusted approximation otherwise
func calculateTm(seq string) float64 {
	at, gc := 0, 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'T':
			at++
		case 'G', 'C':
			gc++
		}
	}

	if len(seq) < 14 {
		return float64(2*at + 4*gc)
	}
	return 64.9 + 41*(float64(gc)-16.4)/float64(len(seq))
}

// hasGCClamp is whether a G or C is present in the terminal two 3' bases
func hasGCClamp(seq string) bool {
	for i := len(seq) - 2; i < len(seq); i++ {
		if i < 0 {
			continue
		}
		if seq[i] == 'G' || seq[i] == 'C' {
			return true
		}
	}
	return false
}

// scoreSelfComplementarity slides a primer against its own reverse
// complement at every offset and finds the longest run of matching
// positions. The run length is normalized by 8 and clamped to 1: an
// 8+ base self-complementary stretch scores maximal risk
func scoreSelfComplementarity(seq string) float64 {
	n := len(seq)
	if n == 0 {
		return 0
	}

	rc := ReverseComplement(seq)
	longest := 0
	for offset := -(n - 1); offset < n; offset++ {
		run := 0
		for i := 0; i < n; i++ {
			j := i + offset
			if j < 0 || j >= n {
				run = 0
				continue
			}

			if seq[i] == rc[j] {
				run++
				if run > longest {
					longest = run
				}
			} else {
				run = 0
			}
		}
	}

	score := float64(longest) / 8
	if score > 1 {
		score = 1
	}
	return score
}
