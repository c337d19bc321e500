package nw

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Align builds the grid for seq1 against seq2 and reconstructs one optimal
// alignment from it. It is the composition Build → Reconstruct with the same
// Options, so ErrInconsistentMatrix cannot occur.
//
// Example:
//
//	res, err := nw.Align("ACGT", "ACGT", nw.DefaultOptions())
//	// res.Score == 4, res.Alignment == {"ACGT", "ACGT"}
func Align(seq1, seq2 string, opts Options) (Result, error) {
	a, b, err := prepare(seq1, seq2, opts)
	if err != nil {
		return Result{}, err
	}
	g := fill(a, b, opts)
	aln, err := traceback(g, a, b, opts)
	if err != nil {
		return Result{}, err
	}
	return Result{Score: g.Score(), Alignment: aln}, nil
}

// Rescore sums the alignment column by column: Match or Mismatch for a pair
// of symbols, Gap for a column with one gap symbol. For any alignment
// returned by Align or Reconstruct it equals the grid score.
//
// Errors:
//   - ErrInvalidInput — unequal lengths, invalid UTF-8, a column made of
//     two gaps, or scores that could overflow int over the alignment length.
func Rescore(aln Alignment, opts Options) (int, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	if !utf8.ValidString(aln.Seq1) || !utf8.ValidString(aln.Seq2) {
		return 0, fmt.Errorf("%w: alignment is not valid UTF-8", ErrInvalidInput)
	}
	r1, r2 := []rune(aln.Seq1), []rune(aln.Seq2)
	if len(r1) != len(r2) {
		return 0, fmt.Errorf("%w: aligned lengths differ (%d vs %d)", ErrInvalidInput, len(r1), len(r2))
	}
	if err := checkRange(len(r1), opts); err != nil {
		return 0, err
	}
	gap := opts.GapSymbol
	score := 0
	for k := range r1 {
		x, y := r1[k], r2[k]
		switch {
		case x == gap && y == gap:
			return 0, fmt.Errorf("%w: column %d holds two gaps", ErrInvalidInput, k)
		case x == gap || y == gap:
			score += opts.Gap
		default:
			score += opts.Substitution(x, y)
		}
	}
	return score, nil
}

// Degap removes every gap symbol and returns the two original sequences.
func (a Alignment) Degap(gap rune) (seq1, seq2 string) {
	drop := func(r rune) rune {
		if r == gap {
			return -1
		}
		return r
	}
	return strings.Map(drop, a.Seq1), strings.Map(drop, a.Seq2)
}
