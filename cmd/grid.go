package cmd

import (
	"fmt"

	"cloudeng.io/logging/ctxlog"
	"github.com/katalvlaran/seqalign/nw"
	"github.com/spf13/cobra"
)

func newGridCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "grid SEQ1 SEQ2",
		Short: "Print the Needleman-Wunsch score grid of two sequences",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runGrid,
	}
}

func (a *app) runGrid(cmd *cobra.Command, args []string) error {
	opts, err := a.cfg.Options()
	if err != nil {
		return err
	}
	g, err := nw.Build(args[0], args[1], opts)
	if err != nil {
		ctxlog.Logger(cmd.Context()).Error("building grid", "err", err)
		return fmt.Errorf("grid: %w", err)
	}
	return g.Format(cmd.OutOrStdout(), args[0], args[1])
}
