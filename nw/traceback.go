package nw

import (
	"fmt"
	"slices"
)

// Reconstruct walks g backward from (m,n) to (0,0) and returns one optimal
// alignment of seq1 against seq2.
//
// At every interior cell the predecessor is chosen in a fixed order:
//  1. diagonal — emit (seq1[i-1], seq2[j-1]);
//  2. up       — emit (seq1[i-1], gap);
//  3. left     — emit (gap, seq2[j-1]).
//
// The first candidate whose sum equals the cell wins, so the output is
// deterministic when several optimal alignments exist. Once one sequence is
// exhausted the rest of the other is drained against gaps.
//
// g, seq1, seq2 and opts must be exactly those given to Build.
//
// Errors:
//   - ErrNilGrid            — g is nil.
//   - ErrInvalidInput       — same checks as Build.
//   - ErrDimensionMismatch  — g is not (len(seq1)+1)×(len(seq2)+1).
//   - ErrInconsistentMatrix — some cell cannot be derived from its
//     predecessors under opts (wrapped with the cell coordinates).
func Reconstruct(g *Grid, seq1, seq2 string, opts Options) (Alignment, error) {
	if g == nil {
		return Alignment{}, ErrNilGrid
	}
	a, b, err := prepare(seq1, seq2, opts)
	if err != nil {
		return Alignment{}, err
	}
	if err := checkShape(g, len(a), len(b)); err != nil {
		return Alignment{}, err
	}
	return traceback(g, a, b, opts)
}

func checkShape(g *Grid, m, n int) error {
	if g.r != m+1 || g.c != n+1 {
		return fmt.Errorf("%w: grid is %dx%d, sequences need %dx%d",
			ErrDimensionMismatch, g.r, g.c, m+1, n+1)
	}
	return nil
}

func inconsistent(i, j, cell int) error {
	return fmt.Errorf("%w: cell (%d,%d)=%d has no matching predecessor", ErrInconsistentMatrix, i, j, cell)
}

// traceback collects columns back to front and reverses them once at the end.
func traceback(g *Grid, a, b []rune, opts Options) (Alignment, error) {
	gap := opts.GapSymbol
	i, j := len(a), len(b)
	out1 := make([]rune, 0, i+j)
	out2 := make([]rune, 0, i+j)

	for i > 0 && j > 0 {
		cell := g.at(i, j)
		switch {
		case cell == g.at(i-1, j-1)+opts.Substitution(a[i-1], b[j-1]):
			out1 = append(out1, a[i-1])
			out2 = append(out2, b[j-1])
			i--
			j--
		case cell == g.at(i-1, j)+opts.Gap:
			out1 = append(out1, a[i-1])
			out2 = append(out2, gap)
			i--
		case cell == g.at(i, j-1)+opts.Gap:
			out1 = append(out1, gap)
			out2 = append(out2, b[j-1])
			j--
		default:
			return Alignment{}, inconsistent(i, j, cell)
		}
	}

	// Drain: the boundary must still be a run of gap penalties.
	for ; i > 0; i-- {
		if cell := g.at(i, 0); cell != g.at(i-1, 0)+opts.Gap {
			return Alignment{}, inconsistent(i, 0, cell)
		}
		out1 = append(out1, a[i-1])
		out2 = append(out2, gap)
	}
	for ; j > 0; j-- {
		if cell := g.at(0, j); cell != g.at(0, j-1)+opts.Gap {
			return Alignment{}, inconsistent(0, j, cell)
		}
		out1 = append(out1, gap)
		out2 = append(out2, b[j-1])
	}
	if cell := g.at(0, 0); cell != 0 {
		return Alignment{}, inconsistent(0, 0, cell)
	}

	slices.Reverse(out1)
	slices.Reverse(out2)
	return Alignment{Seq1: string(out1), Seq2: string(out2)}, nil
}
