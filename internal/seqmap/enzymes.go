package seqmap

import (
	"bufio"
	"math"
	"sort"
	"strings"
)

// Overhang classifies the ends an enzyme leaves after cleavage
type Overhang string

const (
	// OverhangBlunt for enzymes cutting both strands at the same offset
	OverhangBlunt Overhang = "blunt"

	// OverhangFive for enzymes leaving a 5' overhang
	OverhangFive Overhang = "5prime"

	// OverhangThree for enzymes leaving a 3' overhang
	OverhangThree Overhang = "3prime"
)

// Enzyme is a single restriction enzyme: its IUPAC recognition sequence
// and where it cleaves each strand relative to the site's start
type Enzyme struct {
	// Name of the enzyme, eg EcoRI
	Name string `json:"name"`

	// RecognitionSeq is the IUPAC recognition site
	RecognitionSeq string `json:"recognitionSeq"`

	// CutSense is the 0-based sense-strand cut offset from the site start
	CutSense int `json:"cutSense"`

	// CutAntiSense is the 0-based antisense-strand cut offset
	CutAntiSense int `json:"cutAntiSense"`

	// Overhang classification derived from the two cut offsets
	Overhang Overhang `json:"overhang"`
}

// CutSite is one occurrence of an enzyme's recognition site
type CutSite struct {
	// Enzyme that recognizes this site
	Enzyme Enzyme `json:"enzyme"`

	// Position is the 0-based index where the recognition site starts
	Position int `json:"position"`

	// CutPosition is the 0-based index where the sense strand is cleaved
	CutPosition int `json:"cutPosition"`
}

// DigestFragment is a span between two cuts. Fragments are always linear
// after digestion, even when the parent molecule was circular
type DigestFragment struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Length   int    `json:"length"`
	Seq      string `json:"seq"`
	IsLinear bool   `json:"isLinear"`
}

// enzymeData is the built-in enzyme catalog. One enzyme per line:
// name, tab, recognition site with "^" marking the sense-strand cut and
// "_" marking the antisense-strand cut
const enzymeData = `AatII	G_ACGT^C
AluI	AG^_CT
ApoI	R^AATT_Y
AvaII	G^GWC_C
BamHI	G^GATC_C
BglII	A^GATC_T
BsaI	GGTCTCN^NNNN_
BstNI	CC^W_GG
DdeI	C^TNA_G
DpnII	^GATC_
DraI	TTT^_AAA
EcoRI	G^AATT_C
EcoRV	GAT^_ATC
Fnu4HI	GC^N_GC
HaeIII	GG^_CC
HhaI	G_CG^C
HincII	GTY^_RAC
HindIII	A^AGCT_T
HinfI	G^ANT_C
HpaI	GTT^_AAC
HpaII	C^CG_G
KpnI	G_GTAC^C
MboI	^GATC_
MseI	T^TA_A
MspI	C^CG_G
NcoI	C^CATG_G
NdeI	CA^TA_TG
NheI	G^CTAG_C
NlaIII	_CATG^
NotI	GC^GGCC_GC
PpuMI	RG^GWC_CY
PstI	C_TGCA^G
PvuII	CAG^_CTG
RsaI	GT^_AC
SacI	G_AGCT^C
SalI	G^TCGA_C
Sau3AI	^GATC_
ScaI	AGT^_ACT
SmaI	CCC^_GGG
SpeI	A^CTAG_T
SphI	G_CATG^C
SspI	AAT^_ATT
StuI	AGG^_CCT
TaqI	T^CG_A
Tsp509I	^AATT_
XbaI	T^CTAG_A
XhoI	C^TCGA_G`

// newEnzyme parses a recognition sequence with "^" and "_" cut markers
// into an Enzyme
func newEnzyme(name, recogSeq string) Enzyme {
	cutIndex := strings.Index(recogSeq, "^")
	hangIndex := strings.Index(recogSeq, "_")

	if cutIndex < hangIndex {
		hangIndex--
	} else {
		cutIndex--
	}

	recogSeq = strings.Replace(recogSeq, "^", "", -1)
	recogSeq = strings.Replace(recogSeq, "_", "", -1)

	overhang := OverhangBlunt
	if cutIndex < hangIndex {
		overhang = OverhangFive
	} else if cutIndex > hangIndex {
		overhang = OverhangThree
	}

	return Enzyme{
		Name:           name,
		RecognitionSeq: recogSeq,
		CutSense:       cutIndex,
		CutAntiSense:   hangIndex,
		Overhang:       overhang,
	}
}

// EnzymeDB is the read-only catalog of restriction enzymes
type EnzymeDB struct {
	// enzymes is a map from an enzyme's name to the enzyme
	enzymes map[string]Enzyme
}

// NewEnzymeDB parses the built-in catalog into an EnzymeDB
func NewEnzymeDB() *EnzymeDB {
	enzymes := make(map[string]Enzyme)

	scanner := bufio.NewScanner(strings.NewReader(enzymeData))
	for scanner.Scan() {
		columns := strings.Split(scanner.Text(), "	")
		enzymes[columns[0]] = newEnzyme(columns[0], columns[1])
	}

	return &EnzymeDB{enzymes: enzymes}
}

// Get returns the enzyme with the passed name
func (db *EnzymeDB) Get(name string) (Enzyme, bool) {
	e, ok := db.enzymes[name]
	return e, ok
}

// Names returns the sorted names of every enzyme in the catalog
func (db *EnzymeDB) Names() []string {
	names := make([]string, 0, len(db.enzymes))
	for name := range db.enzymes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Enzymes returns every enzyme in the catalog, sorted by name
func (db *EnzymeDB) Enzymes() []Enzyme {
	enzymes := make([]Enzyme, 0, len(db.enzymes))
	for _, name := range db.Names() {
		enzymes = append(enzymes, db.enzymes[name])
	}
	return enzymes
}

// FindCutSites finds every occurrence of each enzyme's recognition site.
// Scanning resumes one base after each match start, not after the full
// match, so tiling/overlapping sites are all found. The result is sorted
// ascending by position
func FindCutSites(seq string, enzymes []Enzyme) []CutSite {
	seq = strings.ToUpper(seq)

	var sites []CutSite
	for _, enz := range enzymes {
		re := compileRecognition(enz.RecognitionSeq)

		offset := 0
		for offset < len(seq) {
			loc := re.FindStringIndex(seq[offset:])
			if loc == nil {
				break
			}

			position := offset + loc[0]
			sites = append(sites, CutSite{
				Enzyme:      enz,
				Position:    position,
				CutPosition: position + enz.CutSense,
			})

			offset = position + 1
		}
	}

	sort.SliceStable(sites, func(i, j int) bool {
		if sites[i].Position != sites[j].Position {
			return sites[i].Position < sites[j].Position
		}
		return sites[i].Enzyme.Name < sites[j].Enzyme.Name
	})

	return sites
}

// GroupSitesByEnzyme partitions cut sites into a name to site-list map,
// keeping discovery order within each group
func GroupSitesByEnzyme(sites []CutSite) map[string][]CutSite {
	grouped := make(map[string][]CutSite)
	for _, site := range sites {
		grouped[site.Enzyme.Name] = append(grouped[site.Enzyme.Name], site)
	}
	return grouped
}

// SimulateDigestion cuts a sequence at every cut position and returns the
// resulting fragments, largest first (gel-loading order). Cut positions
// are deduplicated. Fragments of a circular molecule wrap from each cut
// to the next; every fragment of any digest is linear
func SimulateDigestion(seq string, sites []CutSite, circular bool) []DigestFragment {
	n := len(seq)
	if n == 0 {
		return nil
	}

	cuts := dedupeCuts(sites, n, circular)

	var fragments []DigestFragment
	if len(cuts) == 0 {
		fragments = []DigestFragment{{
			Start:    0,
			End:      n,
			Length:   n,
			Seq:      seq,
			IsLinear: !circular,
		}}
	} else if circular {
		for i, cut := range cuts {
			next := cuts[(i+1)%len(cuts)]

			if cut < next {
				fragments = append(fragments, DigestFragment{
					Start:    cut,
					End:      next,
					Length:   next - cut,
					Seq:      seq[cut:next],
					IsLinear: true,
				})
			} else {
				// wraps through the origin. a single cut linearizes
				// the whole molecule
				fragments = append(fragments, DigestFragment{
					Start:    cut,
					End:      next,
					Length:   n - cut + next,
					Seq:      seq[cut:] + seq[:next],
					IsLinear: true,
				})
			}
		}
	} else {
		bounds := append([]int{0}, cuts...)
		bounds = append(bounds, n)

		for i := 0; i+1 < len(bounds); i++ {
			start, end := bounds[i], bounds[i+1]
			if end-start == 0 {
				continue
			}

			fragments = append(fragments, DigestFragment{
				Start:    start,
				End:      end,
				Length:   end - start,
				Seq:      seq[start:end],
				IsLinear: true,
			})
		}
	}

	sort.SliceStable(fragments, func(i, j int) bool {
		return fragments[i].Length > fragments[j].Length
	})

	return fragments
}

// dedupeCuts returns the sorted, deduplicated cut positions within
// [0, n]. On a circular molecule position n is the origin, so cuts are
// reduced mod n before deduping
func dedupeCuts(sites []CutSite, n int, circular bool) []int {
	seen := make(map[int]bool)
	var cuts []int
	for _, site := range sites {
		pos := site.CutPosition
		if pos < 0 || pos > n {
			continue
		}
		if circular {
			pos = pos % n
		}
		if !seen[pos] {
			seen[pos] = true
			cuts = append(cuts, pos)
		}
	}
	sort.Ints(cuts)
	return cuts
}

// GelMigration estimates a fragment's relative migration distance on an
// agarose gel from its length and the largest fragment length in the
// lane. Larger fragments migrate less (closer to the well): the estimate
// is log-linear, 1 at 100 bp and 0 at the reference maximum
func GelMigration(fragmentLength, maxLength int) float64 {
	const minLength = 100

	if fragmentLength < minLength {
		fragmentLength = minLength
	}
	if maxLength < 10000 {
		maxLength = 10000
	}

	logMin := math.Log10(minLength)
	logMax := math.Log10(float64(maxLength))
	logFrag := math.Log10(float64(fragmentLength))

	return 1 - (logFrag-logMin)/(logMax-logMin)
}
