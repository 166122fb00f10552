package seqmap

import (
	"regexp"
	"strings"
)

// iupacDecode maps each IUPAC ambiguity code to a bracketed alternation
// for regex matching against an uppercased ATGC sequence
var iupacDecode = map[rune]string{
	'A': "A",
	'C': "C",
	'G': "G",
	'T': "T",
	'M': "[AC]",
	'R': "[AG]",
	'W': "[AT]",
	'Y': "[CT]",
	'S': "[CG]",
	'K': "[GT]",
	'H': "[ACT]",
	'D': "[AGT]",
	'V': "[ACG]",
	'B': "[CGT]",
	'N': "[ACGT]",
	'X': "[ACGT]",
}

// iupacPattern turns an IUPAC recognition sequence into a regex pattern
func iupacPattern(recog string) string {
	var pattern strings.Builder
	for _, c := range strings.ToUpper(recog) {
		if decoded, ok := iupacDecode[c]; ok {
			pattern.WriteString(decoded)
		} else {
			pattern.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	return pattern.String()
}

// compileRecognition compiles an IUPAC recognition sequence into a
// matcher for scanning sequence windows
func compileRecognition(recog string) *regexp.Regexp {
	return regexp.MustCompile(iupacPattern(recog))
}
