package nw

import (
	"unicode/utf8"
)

// Default scoring constants used by DefaultOptions.
const (
	DefaultMatch     = 1
	DefaultMismatch  = -1
	DefaultGap       = -1
	DefaultGapSymbol = '-'
)

// Options is the scoring rule shared by Build and Reconstruct.
//
// Fields:
//   - Match     — score of an aligned pair of equal symbols.
//   - Mismatch  — score of an aligned pair of different symbols.
//   - Gap       — score of every column holding a gap (linear, no open cost).
//   - GapSymbol — rune written into the alignment for a gap position.
//
// Reconstruct must be given the same Options that built the grid; otherwise
// it fails with ErrInconsistentMatrix.
//
// Example:
//
//	opts := nw.DefaultOptions()
//	opts.Mismatch = -2
//	res, err := nw.Align("GATTACA", "GCATGCU", opts)
type Options struct {
	Match     int
	Mismatch  int
	Gap       int
	GapSymbol rune
}

// DefaultOptions returns match=1, mismatch=-1, gap=-1 and '-' as gap symbol.
func DefaultOptions() Options {
	return Options{
		Match:     DefaultMatch,
		Mismatch:  DefaultMismatch,
		Gap:       DefaultGap,
		GapSymbol: DefaultGapSymbol,
	}
}

// Substitution scores the aligned pair (a, b).
func (o Options) Substitution(a, b rune) int {
	if a == b {
		return o.Match
	}
	return o.Mismatch
}

// Alignment is a pair of equal-length gapped sequences.
type Alignment struct {
	Seq1 string
	Seq2 string
}

// Len returns the number of alignment columns (in runes).
func (a Alignment) Len() int {
	return utf8.RuneCountInString(a.Seq1)
}

// Result bundles the optimal score with one optimal alignment.
type Result struct {
	Score     int
	Alignment Alignment
}
