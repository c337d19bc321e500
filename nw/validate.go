package nw

import (
	"fmt"
	"math"
	"slices"
	"unicode"
	"unicode/utf8"

	"cloudeng.io/errors"
)

// Validate reports whether the Options can drive a grid computation.
// Integer scores are always usable on their own; only the gap symbol is
// checked here. Overflow is checked against concrete sequence lengths in
// Build.
func (o Options) Validate() error {
	if !utf8.ValidRune(o.GapSymbol) || !unicode.IsPrint(o.GapSymbol) {
		return fmt.Errorf("%w: gap symbol %q is not a printable rune", ErrInvalidInput, o.GapSymbol)
	}
	return nil
}

// prepare decodes both sequences into runes and checks them against opts.
// Every problem found is reported; nothing is allocated for the grid until
// the inputs are known to be usable.
func prepare(seq1, seq2 string, opts Options) (a, b []rune, err error) {
	errs := &errors.M{}
	errs.Append(opts.Validate())
	errs.Append(checkSequence("seq1", seq1, opts.GapSymbol))
	errs.Append(checkSequence("seq2", seq2, opts.GapSymbol))
	if err := errs.Err(); err != nil {
		return nil, nil, err
	}
	a, b = []rune(seq1), []rune(seq2)
	if err := checkRange(len(a)+len(b), opts); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func checkSequence(name, seq string, gap rune) error {
	if !utf8.ValidString(seq) {
		return fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidInput, name)
	}
	if i := slices.Index([]rune(seq), gap); i >= 0 {
		return fmt.Errorf("%w: %s contains the gap symbol %q at position %d", ErrInvalidInput, name, gap, i)
	}
	return nil
}

// checkRange rejects scoring constants whose accumulated magnitude over an
// alignment of total length n could overflow int. Every cell, and every
// candidate sum formed from it, is bounded by max|score|·(n+1).
func checkRange(n int, opts Options) error {
	var k int
	for _, s := range [...]int{opts.Match, opts.Mismatch, opts.Gap} {
		if s == math.MinInt {
			return fmt.Errorf("%w: score %d has no absolute value", ErrInvalidInput, s)
		}
		k = max(k, abs(s))
	}
	if k > 0 && n+1 > math.MaxInt/k {
		return fmt.Errorf("%w: scores up to %d over %d symbols overflow int", ErrInvalidInput, k, n)
	}
	return nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
