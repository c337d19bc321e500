package nw

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// minCellWidth keeps at least one space between right-aligned columns of
// one-digit values.
const minCellWidth = 3

// Format writes a human-readable table of g to w: seq2 symbols label the
// columns, seq1 symbols label the rows, and the first row and column (the
// empty prefixes) carry no label. Every column is as wide as the widest
// rendered cell plus one space.
//
//	       A  C
//	    0 -1 -2
//	A  -1  1  0
//
// Labels are written one rune each and assumed to occupy one terminal
// column; wide or combining runes shift their row or column out of line.
// The rendering is for inspection only and is not a stable format.
//
// Errors:
//   - ErrNilGrid, ErrInvalidInput (bad UTF-8), ErrDimensionMismatch, or the
//     writer's error.
func (g *Grid) Format(w io.Writer, seq1, seq2 string) error {
	if g == nil {
		return ErrNilGrid
	}
	if !utf8.ValidString(seq1) || !utf8.ValidString(seq2) {
		return fmt.Errorf("%w: sequence is not valid UTF-8", ErrInvalidInput)
	}
	a, b := []rune(seq1), []rune(seq2)
	if err := checkShape(g, len(a), len(b)); err != nil {
		return err
	}
	width := g.cellWidth()

	bw := bufio.NewWriter(w)
	// Row label (2) + the unlabeled column 0.
	fmt.Fprintf(bw, "%*s", 2+width, "")
	for _, r := range b {
		fmt.Fprintf(bw, "%*c", width, r)
	}
	bw.WriteByte('\n')
	for i := 0; i < g.r; i++ {
		if i == 0 {
			bw.WriteString("  ")
		} else {
			fmt.Fprintf(bw, "%c ", a[i-1])
		}
		for j := 0; j < g.c; j++ {
			fmt.Fprintf(bw, "%*d", width, g.at(i, j))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// cellWidth returns the widest decimal rendering in g plus one separator.
func (g *Grid) cellWidth() int {
	widest := 0
	for _, v := range g.data {
		widest = max(widest, len(strconv.Itoa(v)))
	}
	return max(minCellWidth, widest+1)
}
