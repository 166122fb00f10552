package seqmap

import (
	"strings"
	"testing"
)

const testGenbank = `LOCUS       pTest                     48 bp    DNA     circular SYN 01-JAN-2024
DEFINITION  synthetic test plasmid.
FEATURES             Location/Qualifiers
     source          1..48
                     /organism="synthetic construct"
     CDS             complement(join(5..10,15..22))
                     /gene="tester"
                     /product="test protein"
     promoter        2..6
                     /label=Ptest
                     /note="weak promoter"
ORIGIN
        1 atgcatgcat gcatgcatgc atgcatgcat gcatgcatgc atgcatgc
//
`

func Test_ParseGenbank(t *testing.T) {
	seq, err := ParseGenbank(testGenbank)
	if err != nil {
		t.Fatalf("ParseGenbank() error = %v", err)
	}

	if seq.Name != "pTest" {
		t.Errorf("ParseGenbank() name = %v, want pTest", seq.Name)
	}
	if !seq.Circular {
		t.Error("ParseGenbank() circular = false, want true")
	}
	if want := strings.Repeat("ATGC", 12); seq.Seq != want {
		t.Errorf("ParseGenbank() seq = %v, want %v", seq.Seq, want)
	}

	// the source feature is discarded
	if len(seq.Features) != 2 {
		t.Fatalf("ParseGenbank() features = %d, want 2", len(seq.Features))
	}

	cds := seq.Features[0]
	if cds.Type != "CDS" {
		t.Errorf("feature type = %v, want CDS", cds.Type)
	}
	// join(...) reduced to the min/max bounding span
	if cds.Start != 5 || cds.End != 22 {
		t.Errorf("feature span = %d..%d, want 5..22", cds.Start, cds.End)
	}
	if cds.Strand != -1 {
		t.Errorf("feature strand = %d, want -1", cds.Strand)
	}
	// no /label, so /gene wins over /product
	if cds.Label != "tester" {
		t.Errorf("feature label = %v, want tester", cds.Label)
	}
	if len(cds.Attributes) != 2 || cds.Attributes[0].Key != "gene" || cds.Attributes[1].Key != "product" {
		t.Errorf("feature attributes = %v, want gene then product", cds.Attributes)
	}

	promoter := seq.Features[1]
	if promoter.Label != "Ptest" || promoter.Start != 2 || promoter.End != 6 || promoter.Strand != 1 {
		t.Errorf("promoter = %+v, want Ptest 2..6 on +1", promoter)
	}
}

func Test_ParseGenbank_noOrigin(t *testing.T) {
	if _, err := ParseGenbank("LOCUS       broken 10 bp\n"); err == nil {
		t.Error("ParseGenbank() expected an error for a file without ORIGIN")
	}
}

func Test_ParseFasta(t *testing.T) {
	type args struct {
		text string
	}
	tests := []struct {
		name     string
		args     args
		wantName string
		wantSeq  string
		wantErr  bool
	}{
		{
			"single record",
			args{
				text: ">example_CDS extra words\natgcatgc\nATGCATGC\n",
			},
			"example_CDS extra words",
			"ATGCATGCATGCATGC",
			false,
		},
		{
			"digits and whitespace stripped",
			args{
				text: ">numbered\n  1 atgc 2 atgc\n",
			},
			"numbered",
			"ATGCATGC",
			false,
		},
		{
			"no header",
			args{
				text: "ATGCATGC\n",
			},
			"",
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFasta(tt.args.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFasta() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if got.Name != tt.wantName {
				t.Errorf("ParseFasta() name = %v, want %v", got.Name, tt.wantName)
			}
			if got.Seq != tt.wantSeq {
				t.Errorf("ParseFasta() seq = %v, want %v", got.Seq, tt.wantSeq)
			}
			if got.Circular {
				t.Error("ParseFasta() circular = true, want false")
			}
		})
	}
}

const testEMBL = `ID   pEmbl; SV 1; circular; DNA; STD; SYN; 24 BP.
AC   X00000;
FT   CDS             3..14
FT                   /gene="emblgene"
SQ   Sequence 24 BP;
     atgcatgcat gcatgcatgc atgc                                        24
//
`

func Test_ParseEMBL(t *testing.T) {
	seq, err := ParseEMBL(testEMBL)
	if err != nil {
		t.Fatalf("ParseEMBL() error = %v", err)
	}

	if seq.Name != "pEmbl" {
		t.Errorf("ParseEMBL() name = %v, want pEmbl", seq.Name)
	}
	if !seq.Circular {
		t.Error("ParseEMBL() circular = false, want true")
	}
	if want := strings.Repeat("ATGC", 6); seq.Seq != want {
		t.Errorf("ParseEMBL() seq = %v, want %v", seq.Seq, want)
	}
	if len(seq.Features) != 1 {
		t.Fatalf("ParseEMBL() features = %d, want 1", len(seq.Features))
	}
	if f := seq.Features[0]; f.Type != "CDS" || f.Start != 3 || f.End != 14 || f.Label != "emblgene" {
		t.Errorf("ParseEMBL() feature = %+v, want CDS 3..14 emblgene", f)
	}
}

func Test_ParseEMBL_noSequence(t *testing.T) {
	if _, err := ParseEMBL("ID   broken; SV 1;\nAC   X;\n"); err == nil {
		t.Error("ParseEMBL() expected an error for a file without an SQ body")
	}
}

const testGFF3 = `##gff-version 3
chr1	test	gene	1	100	.	+	.	ID=gene1;Name=My%20Gene
chr1	test	CDS	10	60	.	-	0	ID=cds1;Parent=gene1
`

func Test_ParseGFF3(t *testing.T) {
	features, err := ParseGFF3(testGFF3)
	if err != nil {
		t.Fatalf("ParseGFF3() error = %v", err)
	}
	if len(features) != 2 {
		t.Fatalf("ParseGFF3() features = %d, want 2", len(features))
	}

	gene := features[0]
	if gene.Type != "gene" || gene.Start != 1 || gene.End != 100 || gene.Strand != 1 {
		t.Errorf("ParseGFF3() gene = %+v, want gene 1..100 on +1", gene)
	}
	if gene.Label != "gene1" {
		t.Errorf("ParseGFF3() gene label = %v, want gene1", gene.Label)
	}
	// percent-decoding of attribute values
	if gene.Attributes[1].Key != "Name" || gene.Attributes[1].Value != "My Gene" {
		t.Errorf("ParseGFF3() Name attribute = %+v, want 'My Gene'", gene.Attributes[1])
	}

	if cds := features[1]; cds.Strand != -1 || cds.Type != "CDS" {
		t.Errorf("ParseGFF3() cds = %+v, want CDS on -1", cds)
	}

	if _, err := ParseGFF3("not a gff\n"); err == nil {
		t.Error("ParseGFF3() expected an error when no records are found")
	}
}

func Test_Parse(t *testing.T) {
	type args struct {
		text string
	}
	tests := []struct {
		name     string
		args     args
		wantName string
		wantErr  bool
	}{
		{
			"dispatch to fasta",
			args{text: ">f\nATGC\n"},
			"f",
			false,
		},
		{
			"dispatch to genbank",
			args{text: testGenbank},
			"pTest",
			false,
		},
		{
			"dispatch to embl",
			args{text: testEMBL},
			"pEmbl",
			false,
		},
		{
			"embl mentioning ORIGIN in free text",
			args{
				text: "ID   pNote; SV 1; linear; DNA; STD; SYN; 4 BP.\n" +
					"CC   subcloned from the ORIGIN of pUC19\n" +
					"SQ   Sequence 4 BP;\n" +
					"     atgc        4\n" +
					"//\n",
			},
			"pNote",
			false,
		},
		{
			"unrecognized format",
			args{text: "random text"},
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got.Name != tt.wantName {
				t.Errorf("Parse() name = %v, want %v", got.Name, tt.wantName)
			}
		})
	}
}
