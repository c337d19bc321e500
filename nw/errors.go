// SPDX-License-Identifier: MIT
// Package nw: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with
// positional context) and tests check them via errors.Is. No operation panics
// on user-triggered error conditions.

package nw

import "errors"

// Every message is prefixed with "nw: ". Detection sites wrap with
// fmt.Errorf("ctx: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil grid -> invalid input -> dimension mismatch -> inconsistent matrix.

var (
	// ErrInvalidInput is returned when a sequence or a scoring constant cannot
	// be used: invalid UTF-8, a sequence containing the gap symbol, an
	// unusable gap symbol, or scores large enough to overflow int.
	// Detected before any grid allocation.
	ErrInvalidInput = errors.New("nw: invalid input")

	// ErrInconsistentMatrix is returned by Reconstruct when a cell's value
	// cannot be derived from any of its predecessors under the supplied
	// Options. It indicates a grid built with different scoring constants
	// or a grid mutated after Build.
	ErrInconsistentMatrix = errors.New("nw: inconsistent score matrix")

	// ErrNilGrid indicates that a nil *Grid was passed to Reconstruct.
	ErrNilGrid = errors.New("nw: grid is nil")

	// ErrDimensionMismatch indicates that the grid shape is not
	// (len(seq1)+1)×(len(seq2)+1) for the sequences given to Reconstruct.
	ErrDimensionMismatch = errors.New("nw: grid dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside the grid.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("nw: index out of range")
)
