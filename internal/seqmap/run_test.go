package seqmap

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// newORFsTestCmd registers the orfs flags the way cmd/orfs.go does
func newORFsTestCmd(in, out string) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().String("in", "", "")
	cmd.Flags().String("out", "", "")
	cmd.Flags().Int("min-aa", 0, "")
	cmd.Flags().Set("in", in)
	cmd.Flags().Set("out", out)
	return cmd
}

func Test_ORFsCmd(t *testing.T) {
	dir := t.TempDir()

	in := filepath.Join(dir, "tiny.fa")
	if err := os.WriteFile(in, []byte(">tiny\nATGTAA\n"), 0666); err != nil {
		t.Fatal(err)
	}

	// an explicit --min-aa 0 is honored, not replaced by the default
	out := filepath.Join(dir, "explicit.json")
	cmd := newORFsTestCmd(in, out)
	cmd.Flags().Set("min-aa", "0")
	ORFsCmd(cmd, nil)

	dat, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var result Output
	if err := json.Unmarshal(dat, &result); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(result.ORFs) != 1 || result.ORFs[0].AALength != 1 {
		t.Errorf("ORFs with --min-aa 0 = %+v, want one single-residue ORF", result.ORFs)
	}
	if result.Target != "tiny" {
		t.Errorf("target = %v, want tiny", result.Target)
	}

	// without the flag the configured default applies and drops it
	out = filepath.Join(dir, "default.json")
	ORFsCmd(newORFsTestCmd(in, out), nil)

	dat, err = os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	result = Output{}
	if err := json.Unmarshal(dat, &result); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(result.ORFs) != 0 {
		t.Errorf("ORFs with default min-aa = %+v, want none", result.ORFs)
	}
}
