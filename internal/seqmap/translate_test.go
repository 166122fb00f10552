package seqmap

import (
	"strings"
	"testing"
)

func Test_ReverseComplement(t *testing.T) {
	type args struct {
		seq string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"complement and reverse",
			args{
				seq: "GAATTC",
			},
			"GAATTC", // palindromic site
		},
		{
			"non-palindromic",
			args{
				seq: "ATGC",
			},
			"GCAT",
		},
		{
			"ambiguity codes",
			args{
				seq: "RYSWKMBDHVN",
			},
			"NBDHVKMWSRY",
		},
		{
			"unrecognized symbols pass through",
			args{
				seq: "AT-GC",
			},
			"GC-AT",
		},
		{
			"empty sequence",
			args{
				seq: "",
			},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReverseComplement(tt.args.seq); got != tt.want {
				t.Errorf("ReverseComplement() = %v, want %v", got, tt.want)
			}
		})
	}

	// involution: rc(rc(s)) == s for all supported symbols
	for _, seq := range []string{"", "A", "ACGT", "ATGCRYSWKMBDHVN", "TTATTTCAT"} {
		if got := ReverseComplement(ReverseComplement(seq)); got != seq {
			t.Errorf("ReverseComplement() is not an involution for %s: got %s", seq, got)
		}
	}
}

func Test_Translate(t *testing.T) {
	type args struct {
		seq        string
		strand     int
		stopAtStop bool
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"simple coding sequence",
			args{
				seq:        "ATGAAATTT",
				strand:     1,
				stopAtStop: true,
			},
			"MKF",
		},
		{
			"halts at stop, stop included",
			args{
				seq:        "ATGTAAAAA",
				strand:     1,
				stopAtStop: true,
			},
			"M*",
		},
		{
			"reads through stop when asked",
			args{
				seq:        "ATGTAAAAA",
				strand:     1,
				stopAtStop: false,
			},
			"M*K",
		},
		{
			"ambiguous codon becomes X",
			args{
				seq:        "ATGANTTTT",
				strand:     1,
				stopAtStop: true,
			},
			"MXF",
		},
		{
			"reverse strand",
			args{
				seq:        "TTTCAT", // revcomp ATGAAA
				strand:     -1,
				stopAtStop: true,
			},
			"MK",
		},
		{
			"trailing bases dropped",
			args{
				seq:        "ATGAA",
				strand:     1,
				stopAtStop: true,
			},
			"M",
		},
		{
			"empty sequence",
			args{
				seq:        "",
				strand:     1,
				stopAtStop: true,
			},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.args.seq, tt.args.strand, tt.args.stopAtStop); got != tt.want {
				t.Errorf("Translate() = %v, want %v", got, tt.want)
			}
		})
	}

	// totality: never longer than ceil(len/3) for any input
	for _, seq := range []string{"", "A", "AT", "NNNNNNN", strings.Repeat("ACGTN", 50)} {
		got := Translate(seq, 1, true)
		if len(got) > (len(seq)+2)/3 {
			t.Errorf("Translate(%q) = %q, longer than ceil(len/3)", seq, got)
		}
	}
}
