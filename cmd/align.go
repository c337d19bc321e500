package cmd

import (
	"fmt"

	"cloudeng.io/logging/ctxlog"
	"github.com/katalvlaran/seqalign/nw"
	"github.com/spf13/cobra"
)

func newAlignCmd(a *app) *cobra.Command {
	alignCmd := &cobra.Command{
		Use:   "align SEQ1 SEQ2",
		Short: "Align two sequences and report the score and alignment",
		Long: `Builds the score grid for SEQ1 against SEQ2, then walks it back
to recover one optimal alignment. When several alignments are optimal,
a diagonal step is preferred over a gap in SEQ2, which is preferred over
a gap in SEQ1, so the output is always the same for the same input.

Either sequence may be empty ("").`,
		Args: cobra.ExactArgs(2),
		RunE: a.runAlign,
	}

	alignCmd.Flags().Bool("grid", false, "also print the score grid")
	alignCmd.Flags().StringP("format", "f", "text", "output format: text or json")
	return alignCmd
}

func (a *app) runAlign(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := ctxlog.Logger(ctx)
	seq1, seq2 := args[0], args[1]

	opts, err := a.cfg.Options()
	if err != nil {
		return err
	}
	log.Debug("aligning", "len1", len(seq1), "len2", len(seq2),
		"match", opts.Match, "mismatch", opts.Mismatch, "gap", opts.Gap)

	g, err := nw.Build(seq1, seq2, opts)
	if err != nil {
		log.Error("building grid", "err", err)
		return fmt.Errorf("align: %w", err)
	}
	aln, err := nw.Reconstruct(g, seq1, seq2, opts)
	if err != nil {
		log.Error("traceback", "err", err)
		return fmt.Errorf("align: %w", err)
	}
	log.Info("aligned", "score", g.Score(), "columns", aln.Len())

	rep := report{
		seq1: seq1,
		seq2: seq2,
		res:  nw.Result{Score: g.Score(), Alignment: aln},
	}
	if a.cfg.Output.Grid {
		rep.grid = g
	}
	return rep.write(cmd.OutOrStdout(), a.cfg.Output.Format)
}
