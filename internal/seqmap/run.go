package seqmap

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"seqmap/config"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// readSequence reads and parses the sequence file behind the "in" flag
func readSequence(cmd *cobra.Command) Sequence {
	in, err := cmd.Flags().GetString("in")
	if err != nil || in == "" {
		stderr.Fatal("no input file. pass one with --in")
	}

	dat, err := os.ReadFile(in)
	if err != nil {
		stderr.Fatalf("failed to read input file: %v", err)
	}

	seq, err := Parse(string(dat))
	if err != nil {
		stderr.Fatalf("failed to parse %s: %v", in, err)
	}
	return seq
}

// outPath returns the "out" flag, empty meaning stdout
func outPath(cmd *cobra.Command) string {
	out, _ := cmd.Flags().GetString("out")
	return out
}

// DigestCmd finds cut sites and simulates a digestion of the input
// sequence with the requested enzymes (all catalog enzymes by default)
func DigestCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	seq := readSequence(cmd)
	db := NewEnzymeDB()

	enzymeFlag, _ := cmd.Flags().GetString("enzymes")
	enzymes := db.Enzymes()
	if enzymeFlag != "" {
		enzymes = nil
		splitFunc := func(c rune) bool {
			return c == ' ' || c == ',' // space or comma separated
		}
		for _, name := range strings.FieldsFunc(enzymeFlag, splitFunc) {
			enz, ok := db.Get(name)
			if !ok {
				stderr.Fatalf("failed to find enzyme with name %s. use \"seqmap enzymes\" for a list of recognized enzymes", name)
			}
			enzymes = append(enzymes, enz)
		}
	}

	sites := FindCutSites(seq.Seq, enzymes)
	fragments := SimulateDigestion(seq.Seq, sites, seq.Circular)

	out := newOutput(seq.Name, start)
	out.CutSites = sites
	out.SitesByEnzyme = GroupSitesByEnzyme(sites)
	out.Fragments = fragments
	if _, err := write(outPath(cmd), out); err != nil {
		stderr.Fatal(err)
	}

	if gel, _ := cmd.Flags().GetString("gel"); gel != "" {
		if err := WriteGelPlot(gel, fragments); err != nil {
			stderr.Fatal(err)
		}
	}
}

// ORFsCmd scans all six frames of the input sequence for ORFs
func ORFsCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	seq := readSequence(cmd)
	conf := config.New()

	minAa, _ := cmd.Flags().GetInt("min-aa")
	if !cmd.Flags().Changed("min-aa") {
		minAa = conf.ORF.MinAaLength
	}

	out := newOutput(seq.Name, start)
	out.ORFs = FindAllORFs(seq.Seq, minAa)
	if _, err := write(outPath(cmd), out); err != nil {
		stderr.Fatal(err)
	}
}

// CodonCmd computes codon usage statistics for the input's first CDS
// feature, falling back to the whole sequence
func CodonCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	seq := readSequence(cmd)

	coding := seq.Seq
	for _, f := range seq.Features {
		if f.Type == "CDS" {
			coding = seq.Region(f.Start-1, f.End)
			if f.Strand == -1 {
				coding = ReverseComplement(coding)
			}
			break
		}
	}

	result := AnalyzeCodonUsage(coding)
	out := newOutput(seq.Name, start)
	out.Codon = &result

	if table, _ := cmd.Flags().GetString("table"); table != "" {
		adaptive, ok := ReferenceTable(table)
		if !ok {
			stderr.Fatalf(
				"failed to find codon reference table %s. available: %s",
				table,
				strings.Join(ReferenceTableNames(), ", "),
			)
		}
		out.Adaptive = adaptive
	}

	if _, err := write(outPath(cmd), out); err != nil {
		stderr.Fatal(err)
	}
}

// PrimersCmd designs primer pairs amplifying a region of the input
func PrimersCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	seq := readSequence(cmd)
	conf := config.New()

	regionStart, _ := cmd.Flags().GetInt("start")
	regionEnd, _ := cmd.Flags().GetInt("end")
	if regionEnd == 0 {
		regionEnd = seq.Length()
	}

	opts := PrimerOptions{
		MinLength: conf.Primers.MinLength,
		MaxLength: conf.Primers.MaxLength,
		MinTm:     conf.Primers.MinTm,
		MaxTm:     conf.Primers.MaxTm,
		MinGC:     conf.Primers.MinGC,
		MaxGC:     conf.Primers.MaxGC,
		MaxTmDiff: conf.Primers.MaxTmDiff,
	}

	out := newOutput(seq.Name, start)
	out.Pairs = DesignPrimers(seq.Seq, regionStart, regionEnd, opts)
	if _, err := write(outPath(cmd), out); err != nil {
		stderr.Fatal(err)
	}
}

// AlignCmd aligns the sequences in two files against one another
func AlignCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	conf := config.New()

	if len(args) < 2 {
		stderr.Fatal("expecting two args: the files to align. see 'seqmap align --help'")
	}

	seqs := make([]Sequence, 2)
	for i := 0; i < 2; i++ {
		dat, err := os.ReadFile(args[i])
		if err != nil {
			stderr.Fatalf("failed to read input file: %v", err)
		}
		if seqs[i], err = Parse(string(dat)); err != nil {
			stderr.Fatalf("failed to parse %s: %v", args[i], err)
		}
	}

	// the DP table is O(m*n), cap input length before aligning
	if seqs[0].Length() > conf.Align.MaxLength || seqs[1].Length() > conf.Align.MaxLength {
		stderr.Fatalf("failed to align: input longer than %d bp", conf.Align.MaxLength)
	}

	scoring := Scoring{
		Match:     conf.Align.Match,
		Mismatch:  conf.Align.Mismatch,
		GapOpen:   conf.Align.GapOpen,
		GapExtend: conf.Align.GapExtend,
	}

	local, _ := cmd.Flags().GetBool("local")
	var result AlignmentResult
	if local {
		result = LocalAlign(seqs[0].Seq, seqs[1].Seq, scoring)
	} else {
		result = GlobalAlign(seqs[0].Seq, seqs[1].Seq, scoring)
	}

	out := newOutput(seqs[0].Name, start)
	out.Alignment = &result
	if _, err := write(outPath(cmd), out); err != nil {
		stderr.Fatal(err)
	}
}

// TranslateCmd translates the input sequence to protein
func TranslateCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	seq := readSequence(cmd)

	strand, _ := cmd.Flags().GetInt("strand")
	if strand == 0 {
		strand = 1
	}
	noStop, _ := cmd.Flags().GetBool("no-stop")

	out := newOutput(seq.Name, start)
	out.Protein = Translate(seq.Seq, strand, !noStop)
	if _, err := write(outPath(cmd), out); err != nil {
		stderr.Fatal(err)
	}
}

// ReadCmd lists catalog enzymes. With an argument, enzymes whose name
// contains it are returned; otherwise a list of near matches (those
// beneath a levenshtein distance cutoff)
func (db *EnzymeDB) ReadCmd(cmd *cobra.Command, args []string) {
	// from https://golang.org/pkg/text/tabwriter/
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)

	if len(args) < 1 {
		for _, enz := range db.Enzymes() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", enz.Name, enz.RecognitionSeq, enz.Overhang)
		}
		w.Flush()
		return
	}

	name := args[0]

	// if there's an exact match, just log that one
	if enz, exists := db.Get(name); exists {
		fmt.Printf("%s	%s	%s\n", enz.Name, enz.RecognitionSeq, enz.Overhang)
		return
	}

	ldCutoff := 2
	containing := []string{}
	lowDistance := []string{}

	for _, enz := range db.Enzymes() {
		if strings.Contains(strings.ToUpper(enz.Name), strings.ToUpper(name)) {
			containing = append(containing, enz.Name+"\t"+enz.RecognitionSeq)
		} else if len(enz.Name) > ldCutoff && ld(name, enz.Name, true) <= ldCutoff {
			lowDistance = append(lowDistance, enz.Name+"\t"+enz.RecognitionSeq)
		}
	}

	matches := containing
	if len(matches) == 0 {
		matches = lowDistance
	}
	sort.Strings(matches)

	if len(matches) > 0 {
		fmt.Fprint(w, strings.Join(matches, "\n"))
		w.Write([]byte("\n"))
	} else {
		fmt.Fprintf(w, "failed to find any enzymes for %s\n", name)
	}
	w.Flush()
}

// ld compares two strings and returns the levenshtein distance between them.
// This was copied verbatim from https://github.com/spf13/cobra
func ld(s, t string, ignoreCase bool) int {
	if ignoreCase {
		s = strings.ToUpper(s)
		t = strings.ToUpper(t)
	}
	d := make([][]int, len(s)+1)
	for i := range d {
		d[i] = make([]int, len(t)+1)
	}
	for i := range d {
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for j := 1; j <= len(t); j++ {
		for i := 1; i <= len(s); i++ {
			if s[i-1] == t[j-1] {
				d[i][j] = d[i-1][j-1]
			} else {
				min := d[i-1][j]
				if d[i][j-1] < min {
					min = d[i][j-1]
				}
				if d[i-1][j-1] < min {
					min = d[i-1][j-1]
				}
				d[i][j] = min + 1
			}
		}
	}
	return d[len(s)][len(t)]
}
