package seqmap

import (
	"math"
	"reflect"
	"testing"
)

func Test_AnalyzeCodonUsage(t *testing.T) {
	got := AnalyzeCodonUsage("ATGAAA")

	if got.TotalCodons != 2 {
		t.Errorf("totalCodons = %d, want 2", got.TotalCodons)
	}
	if len(got.Counts) != 64 {
		t.Fatalf("counts rows = %d, want 64", len(got.Counts))
	}
	if got.Counts[0].Codon != "TTT" || got.Counts[63].Codon != "GGG" {
		t.Errorf("table order = %s..%s, want TTT..GGG", got.Counts[0].Codon, got.Counts[63].Codon)
	}

	rows := make(map[string]CodonCount, 64)
	for _, row := range got.Counts {
		rows[row.Codon] = row
	}

	for _, codon := range []string{"ATG", "AAA"} {
		row := rows[codon]
		if row.Count != 1 || row.Frequency != 0.5 || row.FractionOfAA != 1 {
			t.Errorf("row %s = %+v, want count 1, frequency 0.5, fractionOfAA 1", codon, row)
		}
	}
	if rows["ATG"].AA != "M" || rows["AAA"].AA != "K" {
		t.Errorf("amino acids = %s/%s, want M/K", rows["ATG"].AA, rows["AAA"].AA)
	}

	if want := 1.0 / 6.0; math.Abs(got.GCContent-want) > 1e-9 {
		t.Errorf("gcContent = %v, want %v", got.GCContent, want)
	}
	// only ATG's third base is G or C
	if got.GC3Content != 0.5 {
		t.Errorf("gc3Content = %v, want 0.5", got.GC3Content)
	}

	// ATG and AAA are both the preferred codons of their families
	if math.Abs(got.CAI-1) > 1e-9 {
		t.Errorf("cai = %v, want 1", got.CAI)
	}
}

func Test_AnalyzeCodonUsage_cai(t *testing.T) {
	// AAG is the minor lysine codon, so the CAI is the geometric mean of
	// 1 and w(AAG)
	got := AnalyzeCodonUsage("ATGAAG")

	want := math.Sqrt(10.3 / 33.6)
	if math.Abs(got.CAI-want) > 1e-9 {
		t.Errorf("cai = %v, want %v", got.CAI, want)
	}
	if got.CAI <= 0 || got.CAI > 1 {
		t.Errorf("cai = %v, outside (0, 1]", got.CAI)
	}
}

func Test_AnalyzeCodonUsage_edges(t *testing.T) {
	type args struct {
		coding string
	}
	tests := []struct {
		name      string
		args      args
		wantTotal int
		wantCAI   float64
	}{
		{
			"empty region",
			args{coding: ""},
			0,
			0,
		},
		{
			"stop codons excluded from the cai",
			args{coding: "TAA"},
			1,
			0,
		},
		{
			"ambiguous bases stripped before counting",
			args{coding: "ATGNAAA"},
			2,
			1,
		},
		{
			"trailing partial codon ignored",
			args{coding: "ATGAA"},
			1,
			1,
		},
		{
			"lowercase input",
			args{coding: "atgaaa"},
			2,
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeCodonUsage(tt.args.coding)
			if got.TotalCodons != tt.wantTotal {
				t.Errorf("totalCodons = %d, want %d", got.TotalCodons, tt.wantTotal)
			}
			if math.Abs(got.CAI-tt.wantCAI) > 1e-9 {
				t.Errorf("cai = %v, want %v", got.CAI, tt.wantCAI)
			}
			if len(got.Counts) != 64 {
				t.Errorf("counts rows = %d, want 64", len(got.Counts))
			}
		})
	}
}

func Test_ReferenceTables(t *testing.T) {
	if got, want := ReferenceTableNames(), []string{"ecoli", "human", "yeast"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ReferenceTableNames() = %v, want %v", got, want)
	}

	if _, ok := ReferenceTable("martian"); ok {
		t.Error("ReferenceTable(martian) found, want miss")
	}

	for _, name := range ReferenceTableNames() {
		w, ok := ReferenceTable(name)
		if !ok {
			t.Fatalf("ReferenceTable(%s) missing", name)
		}

		// every amino acid family has a preferred codon with w == 1 and
		// no codon exceeds it
		best := make(map[string]float64)
		for codon, v := range w {
			if v <= 0 || v > 1 {
				t.Errorf("%s: w(%s) = %v, outside (0, 1]", name, codon, v)
			}
			aa := codonTable[codon]
			if v > best[aa] {
				best[aa] = v
			}
		}
		for aa, v := range best {
			if math.Abs(v-1) > 1e-9 {
				t.Errorf("%s: best w for %s = %v, want 1", name, aa, v)
			}
		}

		// stop codons carry no adaptiveness
		for _, stop := range []string{"TAA", "TAG", "TGA"} {
			if _, found := w[stop]; found {
				t.Errorf("%s: stop codon %s present in the reference", name, stop)
			}
		}
	}
}
