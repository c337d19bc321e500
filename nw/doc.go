// Package nw computes optimal global alignments of two symbol sequences
// with the Needleman-Wunsch dynamic program and a linear gap penalty.
//
// 🚀 What is global alignment?
//
//	A global alignment lines up two sequences end to end, inserting gap
//	symbols so that every symbol of both inputs appears in exactly one
//	column. Each column is scored: Match or Mismatch for a symbol pair,
//	Gap for a column holding a gap. Needleman-Wunsch finds the maximum
//	total score in O(m·n).
//
// ✨ Key features:
//   - Build: fills the (m+1)×(n+1) score grid (row 0 / column 0 hold
//     all-gap prefixes).
//   - Reconstruct: backward walk with a fixed diagonal → up → left
//     tie-break, so identical inputs always give identical alignments.
//   - Align: Build + Reconstruct in one call.
//   - ScoreOnly: two-row mode, O(min(m,n)) memory, score without path.
//   - Rescore: independent column-by-column check of an alignment.
//   - Grid.Format: labelled table of the grid for inspection.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/nw"
//
//	opts := nw.DefaultOptions() // match=1, mismatch=-1, gap=-1, '-'
//	res, err := nw.Align("ACGTAGCTAG", "ACGTTAGCTAG", opts)
//	if err != nil {
//	  // errors.Is(err, nw.ErrInvalidInput) ...
//	}
//	fmt.Println(res.Score)          // 9
//	fmt.Println(res.Alignment.Seq1) // ACG-TAGCTAG
//	fmt.Println(res.Alignment.Seq2) // ACGTTAGCTAG
//
// Symbols are Unicode code points; a sequence is a Go string. The gap
// symbol may not occur inside either input.
//
// Performance:
//
//   - Time:   O(m·n)
//   - Memory: O(m·n) (Build/Align) or O(min(m,n)) (ScoreOnly)
package nw
