package nw

// Build — Needleman-Wunsch grid construction
//
// Algorithm Outline:
//  1. Let m = len(seq1), n = len(seq2) in runes. Allocate (m+1)x(n+1) grid G.
//  2. Initialize:
//     G[0][0] = 0
//     G[i][0] = i·Gap for i=1..m
//     G[0][j] = j·Gap for j=1..n
//  3. For i = 1..m:
//     For j = 1..n:
//     diag = G[i-1][j-1] + s(seq1[i-1], seq2[j-1])
//     up   = G[i-1][j]   + Gap
//     left = G[i][j-1]   + Gap
//     G[i][j] = max(diag, up, left)
//  4. score = G[m][n].
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n)
//
// Errors:
//   - ErrInvalidInput — bad UTF-8, gap symbol inside a sequence, unusable
//     gap symbol, or scores that could overflow int.

// Build fills the score grid for seq1 (rows) against seq2 (columns).
// Empty sequences are valid and degenerate the grid to a single row or
// column of gap penalties.
//
// Example:
//
//	g, err := nw.Build("ACGT", "AGT", nw.DefaultOptions())
//	fmt.Println(g.Score()) // 2
func Build(seq1, seq2 string, opts Options) (*Grid, error) {
	a, b, err := prepare(seq1, seq2, opts)
	if err != nil {
		return nil, err
	}
	return fill(a, b, opts), nil
}

// fill runs the recurrence on pre-validated rune slices.
func fill(a, b []rune, opts Options) *Grid {
	m, n := len(a), len(b)
	g := newGrid(m+1, n+1)
	cols := g.c

	// Boundary: all-gap alignments of a prefix against nothing.
	for i := 1; i <= m; i++ {
		g.data[i*cols] = i * opts.Gap
	}
	for j := 1; j <= n; j++ {
		g.data[j] = j * opts.Gap
	}

	var prev, curr int
	for i := 1; i <= m; i++ {
		prev, curr = (i-1)*cols, i*cols
		ai := a[i-1]
		for j := 1; j <= n; j++ {
			diag := g.data[prev+j-1] + opts.Substitution(ai, b[j-1])
			up := g.data[prev+j] + opts.Gap
			left := g.data[curr+j-1] + opts.Gap
			g.data[curr+j] = max(diag, up, left)
		}
	}
	return g
}
