// SPDX-License-Identifier: MIT

// Package nw - Grid storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold the (m+1)×(n+1) score matrix in one flat buffer with the index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism: fixed loop orders, no map iteration.
//
// Complexity quicksheet:
//   - newGrid: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package nw

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// gridErrorf wraps an error with a uniform Grid context and callsite indices.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is the Needleman-Wunsch score matrix.
//   - r,c hold dimensions: r = len(seq1)+1, c = len(seq2)+1 (both >= 1).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Cell (i,j) is the optimal score of the first i symbols of seq1 against the
// first j symbols of seq2. Grids are produced by Build; the zero value is
// not usable.
type Grid struct {
	r, c int   // row and column counts (>=1)
	data []int // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Grid)(nil)

// newGrid allocates a zero-filled rows×cols grid.
// Callers have already validated rows>=1 && cols>=1.
func newGrid(rows, cols int) *Grid {
	return &Grid{
		r:    rows,
		c:    cols,
		data: make([]int, rows*cols),
	}
}

// Rows returns len(seq1)+1.
func (g *Grid) Rows() int { return g.r }

// Cols returns len(seq2)+1.
func (g *Grid) Cols() int { return g.c }

// Shape returns (rows, cols).
func (g *Grid) Shape() (rows, cols int) { return g.r, g.c }

// Score returns the bottom-right cell: the optimal global alignment score.
func (g *Grid) Score() int { return g.data[len(g.data)-1] }

// indexOf validates (row, col) and returns the flat offset.
func (g *Grid) indexOf(row, col int) (int, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, ErrOutOfRange
	}
	return row*g.c + col, nil
}

// At returns cell (row, col).
//
// Errors:
//   - ErrOutOfRange (wrapped with coordinates).
func (g *Grid) At(row, col int) (int, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		return 0, gridErrorf(ctxAt, row, col, err)
	}
	return g.data[off], nil
}

// Set overwrites cell (row, col). A grid changed after Build no longer
// satisfies the recurrence, and Reconstruct will report it with
// ErrInconsistentMatrix.
//
// Errors:
//   - ErrOutOfRange (wrapped with coordinates).
func (g *Grid) Set(row, col int, v int) error {
	off, err := g.indexOf(row, col)
	if err != nil {
		return gridErrorf(ctxSet, row, col, err)
	}
	g.data[off] = v
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cp := make([]int, len(g.data))
	copy(cp, g.data)
	return &Grid{r: g.r, c: g.c, data: cp}
}

// Row returns a copy of row i, or nil when i is out of range.
func (g *Grid) Row(i int) []int {
	if i < 0 || i >= g.r {
		return nil
	}
	out := make([]int, g.c)
	copy(out, g.data[i*g.c:(i+1)*g.c])
	return out
}

// String renders the grid as bracketed rows, one per line.
func (g *Grid) String() string {
	var b strings.Builder
	for i := 0; i < g.r; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * g.c
		for j := 0; j < g.c; j++ {
			b.WriteString(strconv.Itoa(g.data[base+j]))
			if j+1 < g.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}
	return b.String()
}

// at is the unchecked accessor used on hot paths after shape validation.
func (g *Grid) at(i, j int) int { return g.data[i*g.c+j] }
