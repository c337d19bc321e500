// Package cmd is for command line interactions with the seqalign application
package cmd

import (
	"context"
	"log/slog"
	"os"

	"cloudeng.io/logging/ctxlog"
	"github.com/katalvlaran/seqalign/config"
	"github.com/katalvlaran/seqalign/nw"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by every command of one command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

// NewRootCmd builds the seqalign command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:   "seqalign",
		Short: "Globally align two sequences with Needleman-Wunsch",
		Long: `Computes the optimal global alignment score of two symbol sequences
and one optimal alignment, using a linear gap penalty.

Scoring constants come from flags, SEQALIGN_* environment variables
or a YAML config file, in that order of precedence.`,
		Version:           "0.1.0",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.Int("match", nw.DefaultMatch, "score of an aligned pair of equal symbols")
	pf.Int("mismatch", nw.DefaultMismatch, "score of an aligned pair of different symbols")
	pf.Int("gap", nw.DefaultGap, "score of each gap position")
	pf.String("gap-symbol", string(nw.DefaultGapSymbol), "symbol written for a gap")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newAlignCmd(a), newGridCmd(a))
	return rootCmd
}

// setup resolves the configuration and installs a logger in the command
// context. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.New(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	a.cfg = cfg

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctxlog.WithLogger(ctx, logger.With("cmd", cmd.Name())))
	return nil
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It exits non-zero on any error.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
