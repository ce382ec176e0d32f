// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvdp/internal/input"
	"github.com/katalvlaran/lvdp/internal/metrics"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// app carries the state shared by every sub-command of one invocation.
type app struct {
	logLevel string
	format   string
	metrics  bool

	logger   *slog.Logger
	recorder *metrics.Recorder
}

// problemFlags are the inputs common to every solver command.
type problemFlags struct {
	values []int
	k      int
	input  string
}

func newRootCmd() *cobra.Command {
	a := &app{recorder: metrics.New(), logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}

	rootCmd := &cobra.Command{
		Use:   "lvdp",
		Short: "Exact dynamic-programming solvers for integer sequences",
		Long: `lvdp solves min-max K-partition and subset-sum problems by tabulation
and traceback, printing the reconstructed answer as JSON or text.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logger
			var level slog.Level
			switch a.logLevel {
			case "debug":
				level = slog.LevelDebug
			case "info":
				level = slog.LevelInfo
			case "warn":
				level = slog.LevelWarn
			case "error":
				level = slog.LevelError
			default:
				level = slog.LevelInfo
			}

			opts := &slog.HandlerOptions{Level: level}
			handler := slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
			a.logger = slog.New(handler)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "json", "Output format (json, text)")
	rootCmd.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "Write Prometheus metrics to stderr after the run")

	rootCmd.AddCommand(newPartitionCmd(a), newSubsetCmd(a), newVersionCmd())

	return rootCmd
}

// bindProblemFlags registers --values, --k and --input on cmd.
func bindProblemFlags(cmd *cobra.Command, f *problemFlags) {
	cmd.Flags().IntSliceVar(&f.values, "values", nil, "Comma-separated input sequence")
	cmd.Flags().IntVar(&f.k, "k", 0, "Range count (partition) or target sum (subset)")
	cmd.Flags().StringVar(&f.input, "input", "", "JSON problem file ({\"values\": [...], \"k\": n})")
}

// resolveProblem merges the optional problem file with explicit flags.
// Flags set on the command line win over file fields.
func resolveProblem(cmd *cobra.Command, f *problemFlags) (input.Problem, error) {
	var p input.Problem
	if f.input != "" {
		loaded, err := input.Load(f.input)
		if err != nil {
			return input.Problem{}, errors.Wrapf(err, "load %s", f.input)
		}
		p = loaded
	}
	if cmd.Flags().Changed("values") {
		p.Values = f.values
	}
	if cmd.Flags().Changed("k") {
		k := f.k
		p.K = &k
	}
	if p.K == nil {
		return input.Problem{}, errors.New("k is required (flag --k or \"k\" in --input)")
	}

	return p, nil
}

// finish dumps metrics when requested; it runs after every solve.
func (a *app) finish(cmd *cobra.Command) {
	if !a.metrics {
		return
	}
	if err := a.recorder.WriteText(cmd.ErrOrStderr()); err != nil {
		a.logger.Warn("Metrics dump failed", "error", err)
	}
}
