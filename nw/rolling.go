package nw

// ScoreOnly returns the optimal global alignment score without keeping the
// grid. Only two rows are live at a time, and the shorter sequence is laid
// along the columns, so memory is O(min(m,n)). The alignment cannot be
// recovered in this mode; use Build or Align for that.
//
// The result always equals Build(seq1, seq2, opts).Score(): the scoring rule
// is symmetric, so swapping the sequences does not change the optimum.
func ScoreOnly(seq1, seq2 string, opts Options) (int, error) {
	a, b, err := prepare(seq1, seq2, opts)
	if err != nil {
		return 0, err
	}
	if len(b) > len(a) {
		a, b = b, a
	}
	n := len(b)

	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 1; j <= n; j++ {
		prev[j] = j * opts.Gap
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i * opts.Gap
		ai := a[i-1]
		for j := 1; j <= n; j++ {
			diag := prev[j-1] + opts.Substitution(ai, b[j-1])
			up := prev[j] + opts.Gap
			left := curr[j-1] + opts.Gap
			curr[j] = max(diag, up, left)
		}
		prev, curr = curr, prev
	}
	return prev[n], nil
}
