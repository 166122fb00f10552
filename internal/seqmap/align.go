package seqmap

import "strings"

// Scoring is the shared scoring model for both alignment algorithms.
// GapOpen only seeds row and column zero; the main recurrence charges
// GapExtend for every gap step
type Scoring struct {
	Match     int `json:"match"`
	Mismatch  int `json:"mismatch"`
	GapOpen   int `json:"gapOpen"`
	GapExtend int `json:"gapExtend"`
}

// DefaultScoring returns the default match/mismatch/gap scores
func DefaultScoring() Scoring {
	return Scoring{
		Match:     2,
		Mismatch:  -1,
		GapOpen:   -5,
		GapExtend: -1,
	}
}

// AlignmentResult is a finished pairwise alignment. AlignedSeq1,
// AlignedSeq2 and MatchLine are parallel, equal-length strings;
// MatchLine marks exact matches with "|", mismatches with "." and gaps
// with a space
type AlignmentResult struct {
	AlignedSeq1 string `json:"alignedSeq1"`
	AlignedSeq2 string `json:"alignedSeq2"`
	MatchLine   string `json:"matchLine"`

	Score int `json:"score"`

	// Identity is matches / alignment length, gaps included in length
	Identity float64 `json:"identity"`

	// Gaps inserted across both strands
	Gaps int `json:"gaps"`

	// Length of the alignment, gaps included
	Length int `json:"length"`

	// StartSeq1/StartSeq2 are where the reported alignment begins in
	// the original sequences. Nonzero only for local alignment
	StartSeq1 int `json:"startSeq1"`
	StartSeq2 int `json:"startSeq2"`
}

// GlobalAlign aligns two sequences end to end (Needleman-Wunsch)
func GlobalAlign(seq1, seq2 string, scoring Scoring) AlignmentResult {
	return align(seq1, seq2, scoring, false)
}

// LocalAlign finds the best-scoring local alignment (Smith-Waterman)
func LocalAlign(seq1, seq2 string, scoring Scoring) AlignmentResult {
	return align(seq1, seq2, scoring, true)
}

func align(seq1, seq2 string, scoring Scoring, local bool) AlignmentResult {
	seq1 = strings.ToUpper(seq1)
	seq2 = strings.ToUpper(seq2)
	m, n := len(seq1), len(seq2)

	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}

	if !local {
		for i := 1; i <= m; i++ {
			table[i][0] = scoring.GapOpen + i*scoring.GapExtend
		}
		for j := 1; j <= n; j++ {
			table[0][j] = scoring.GapOpen + j*scoring.GapExtend
		}
	}

	// best cell for the local traceback start
	maxI, maxJ, maxScore := 0, 0, 0

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			diag := table[i-1][j-1] + substitution(seq1[i-1], seq2[j-1], scoring)
			up := table[i-1][j] + scoring.GapExtend
			left := table[i][j-1] + scoring.GapExtend

			best := diag
			if up > best {
				best = up
			}
			if left > best {
				best = left
			}
			if local && best < 0 {
				best = 0
			}

			table[i][j] = best
			if local && best > maxScore {
				maxI, maxJ, maxScore = i, j, best
			}
		}
	}

	endI, endJ := m, n
	score := table[m][n]
	if local {
		endI, endJ = maxI, maxJ
		score = maxScore
	}

	aligned1, aligned2, startI, startJ := traceback(table, seq1, seq2, endI, endJ, scoring, local)

	return finishAlignment(aligned1, aligned2, score, startI, startJ)
}

func substitution(a, b byte, scoring Scoring) int {
	if a == b {
		return scoring.Match
	}
	return scoring.Mismatch
}

// traceback walks from the chosen end cell back toward the origin,
// preferring the diagonal whenever it explains the cell's value exactly.
// For local alignment the walk stops at the first zero cell
func traceback(table [][]int, seq1, seq2 string, i, j int, scoring Scoring, local bool) (aligned1, aligned2 string, startI, startJ int) {
	var b1, b2 []byte

	for i > 0 || j > 0 {
		if local && table[i][j] == 0 {
			break
		}

		switch {
		case i > 0 && j > 0 && table[i][j] == table[i-1][j-1]+substitution(seq1[i-1], seq2[j-1], scoring):
			b1 = append(b1, seq1[i-1])
			b2 = append(b2, seq2[j-1])
			i--
			j--
		case i > 0 && (j == 0 || table[i][j] == table[i-1][j]+scoring.GapExtend):
			b1 = append(b1, seq1[i-1])
			b2 = append(b2, '-')
			i--
		default:
			b1 = append(b1, '-')
			b2 = append(b2, seq2[j-1])
			j--
		}
	}

	reverseBytes(b1)
	reverseBytes(b2)
	return string(b1), string(b2), i, j
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// finishAlignment derives the match line, identity, and gap counts from
// the two gap-padded strings
func finishAlignment(aligned1, aligned2 string, score, startI, startJ int) AlignmentResult {
	var matchLine strings.Builder
	matches, gaps := 0, 0

	for k := 0; k < len(aligned1); k++ {
		c1, c2 := aligned1[k], aligned2[k]
		switch {
		case c1 == '-' || c2 == '-':
			matchLine.WriteByte(' ')
			gaps++
		case c1 == c2:
			matchLine.WriteByte('|')
			matches++
		default:
			matchLine.WriteByte('.')
		}
	}

	identity := 0.0
	if len(aligned1) > 0 {
		identity = float64(matches) / float64(len(aligned1))
	}

	return AlignmentResult{
		AlignedSeq1: aligned1,
		AlignedSeq2: aligned2,
		MatchLine:   matchLine.String(),
		Score:       score,
		Identity:    identity,
		Gaps:        gaps,
		Length:      len(aligned1),
		StartSeq1:   startI,
		StartSeq2:   startJ,
	}
}
