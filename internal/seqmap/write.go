package seqmap

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output is the result envelope every command writes
type Output struct {
	// Target's name. In >example_CDS FASTA its "example_CDS"
	Target string `json:"target"`

	// Time, ex:
	// "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	CutSites      []CutSite            `json:"cutSites,omitempty"`
	SitesByEnzyme map[string][]CutSite `json:"cutSitesByEnzyme,omitempty"`
	Fragments     []DigestFragment     `json:"fragments,omitempty"`
	ORFs          []ORF                `json:"orfs,omitempty"`
	Codon         *CodonUsageResult    `json:"codonUsage,omitempty"`
	Pairs         []PrimerPair         `json:"primerPairs,omitempty"`
	Alignment     *AlignmentResult     `json:"alignment,omitempty"`
	Protein       string               `json:"protein,omitempty"`
	Adaptive      map[string]float64   `json:"referenceTable,omitempty"`
}

// newOutput stamps an Output with the target name and timing info
func newOutput(target string, start time.Time) Output {
	t := time.Now()
	return Output{
		Target:    target,
		Time:      fmt.Sprintf("%d/%02d/%02d %02d:%02d:%02d", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second()),
		Execution: time.Since(start).Seconds(),
	}
}

// write serializes an Output to the filename, or to stdout when
// filename is empty
func write(filename string, out Output) ([]byte, error) {
	output, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return output, fmt.Errorf("failed to serialize output: %v", err)
	}

	if filename == "" {
		fmt.Println(string(output))
		return output, nil
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return output, fmt.Errorf("failed to write the output: %v", err)
	}
	return output, nil
}
