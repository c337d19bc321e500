package nw_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/nw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReconstruct_TieBreak pins the diagonal → up → left preference on
// inputs that have more than one optimal alignment.
func TestReconstruct_TieBreak(t *testing.T) {
	tests := []struct {
		name       string
		seq1, seq2 string
		want1      string
		want2      string
	}{
		{"identity", "ACGT", "ACGT", "ACGT", "ACGT"},
		// "ACGT-AGCTAG" is equally optimal; the diagonal step at T/T wins.
		{"single insertion", "ACGTAGCTAG", "ACGTTAGCTAG", "ACG-TAGCTAG", "ACGTTAGCTAG"},
		{"empty seq1", "", "AC", "--", "AC"},
		{"empty seq2", "AC", "", "AC", "--"},
		{"both empty", "", "", "", ""},
		{"deletion", "ACGT", "AGT", "ACGT", "A-GT"},
		{"trailing gap", "A", "AC", "A-", "AC"},
		{"leading gaps", "AAA", "A", "AAA", "--A"},
		{"swap", "AB", "BA", "-AB", "BA-"},
		{"classic", "GATTACA", "GCATGCU", "G-ATTACA", "GCA-TGCU"},
		{"reversed", "ACGT", "TGCA", "-ACGT", "TGC-A"},
	}
	opts := nw.DefaultOptions()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := nw.Build(tc.seq1, tc.seq2, opts)
			require.NoError(t, err)
			aln, err := nw.Reconstruct(g, tc.seq1, tc.seq2, opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want1, aln.Seq1)
			assert.Equal(t, tc.want2, aln.Seq2)
		})
	}
}

// TestReconstruct_CustomGapSymbol verifies the configured gap rune is emitted.
func TestReconstruct_CustomGapSymbol(t *testing.T) {
	opts := nw.DefaultOptions()
	opts.GapSymbol = '.'

	res, err := nw.Align("ACGT", "AGT", opts)
	require.NoError(t, err)
	assert.Equal(t, "A.GT", res.Alignment.Seq2)

	// '-' is an ordinary symbol once it is no longer the gap.
	res, err = nw.Align("A-C", "A-C", opts)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Score)
}

// TestReconstruct_NilGrid checks the nil guard.
func TestReconstruct_NilGrid(t *testing.T) {
	_, err := nw.Reconstruct(nil, "A", "A", nw.DefaultOptions())
	assert.ErrorIs(t, err, nw.ErrNilGrid)
}

// TestReconstruct_DimensionMismatch ensures the grid must match the sequences.
func TestReconstruct_DimensionMismatch(t *testing.T) {
	opts := nw.DefaultOptions()
	g, err := nw.Build("ACGT", "ACG", opts)
	require.NoError(t, err)

	_, err = nw.Reconstruct(g, "ACG", "ACGT", opts)
	assert.ErrorIs(t, err, nw.ErrDimensionMismatch)
}

// TestReconstruct_InvalidInputFirst verifies input validation runs before
// the shape check.
func TestReconstruct_InvalidInputFirst(t *testing.T) {
	opts := nw.DefaultOptions()
	g, err := nw.Build("A", "A", opts)
	require.NoError(t, err)

	_, err = nw.Reconstruct(g, "A-", "A", opts)
	assert.ErrorIs(t, err, nw.ErrInvalidInput)
	assert.NotErrorIs(t, err, nw.ErrDimensionMismatch)
}

// TestReconstruct_MismatchedOptions verifies that a grid built with
// different scores is detected instead of silently misaligned.
func TestReconstruct_MismatchedOptions(t *testing.T) {
	built := nw.Options{Match: 5, Mismatch: -4, Gap: -7, GapSymbol: '-'}
	g, err := nw.Build("ACGTAGCTAG", "ACGTTAGCTAG", built)
	require.NoError(t, err)

	_, err = nw.Reconstruct(g, "ACGTAGCTAG", "ACGTTAGCTAG", nw.DefaultOptions())
	assert.ErrorIs(t, err, nw.ErrInconsistentMatrix)
}

// TestReconstruct_CorruptedInterior flips one interior cell.
func TestReconstruct_CorruptedInterior(t *testing.T) {
	opts := nw.DefaultOptions()
	g, err := nw.Build("ACGT", "ACGT", opts)
	require.NoError(t, err)
	require.NoError(t, g.Set(4, 4, 42))

	_, err = nw.Reconstruct(g, "ACGT", "ACGT", opts)
	assert.ErrorIs(t, err, nw.ErrInconsistentMatrix)
	assert.Contains(t, err.Error(), "(4,4)")
}

// TestReconstruct_CorruptedBoundary flips a drain-phase cell.
func TestReconstruct_CorruptedBoundary(t *testing.T) {
	opts := nw.DefaultOptions()
	g, err := nw.Build("AAA", "", opts)
	require.NoError(t, err)
	require.NoError(t, g.Set(2, 0, 9))

	_, err = nw.Reconstruct(g, "AAA", "", opts)
	assert.ErrorIs(t, err, nw.ErrInconsistentMatrix)

	g, err = nw.Build("", "", opts)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 0, 1))
	_, err = nw.Reconstruct(g, "", "", opts)
	assert.ErrorIs(t, err, nw.ErrInconsistentMatrix, "origin must be zero")
}
