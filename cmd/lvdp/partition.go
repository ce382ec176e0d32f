// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvdp/internal/metrics"
	"github.com/katalvlaran/lvdp/partition"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type partitionOutput struct {
	Ranges [][]int           `json:"ranges"`
	Bounds []partition.Range `json:"bounds"`
	Cost   int               `json:"cost"`
}

func newPartitionCmd(a *app) *cobra.Command {
	var (
		f      problemFlags
		rescan bool
	)
	cmd := &cobra.Command{
		Use:   "partition",
		Short: "Split a sequence into at most K ranges minimising the largest sum",
		Example: `  lvdp partition --values 1,2,3,4,5,6,7,8,9 --k 3
  lvdp partition --input shelves.json --format text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.finish(cmd)

			return a.runPartition(cmd, &f, rescan)
		},
	}
	bindProblemFlags(cmd, &f)
	cmd.Flags().BoolVar(&rescan, "rescan", false, "Recompute range sums by scanning instead of prefix sums")

	return cmd
}

func (a *app) runPartition(cmd *cobra.Command, f *problemFlags, rescan bool) error {
	p, err := resolveProblem(cmd, f)
	if err != nil {
		return err
	}

	opts := partition.DefaultOptions()
	switch {
	case rescan || p.Mode == partition.Rescan.String():
		opts.RangeSum = partition.Rescan
	case p.Mode == "" || p.Mode == partition.PrefixSums.String():
	default:
		return errors.Errorf("unknown partition mode: %s", p.Mode)
	}

	n, k := len(p.Values), *p.K
	a.logger.Info("Starting partition", "n", n, "k", k, "mode", opts.RangeSum.String())
	start := time.Now()
	res, err := partition.Solve(p.Values, k, &opts)
	a.recorder.Observe(metrics.SolverPartition, metrics.Outcome(err, true), partitionCells(n, k, err))
	if err != nil {
		return errors.Wrap(err, "partition")
	}
	a.logger.Info("Partition complete",
		"elapsed", time.Since(start),
		"cost", res.Cost,
		"ranges", len(res.Ranges),
	)

	out := partitionOutput{Ranges: res.Ranges, Bounds: res.Bounds, Cost: res.Cost}

	return a.render(cmd.OutOrStdout(), out, fmt.Sprintf("cost=%d ranges=%v", res.Cost, res.Ranges))
}

// partitionCells is the size of one partition table, 0 when none is built.
func partitionCells(n, k int, err error) int {
	if err != nil || k >= n {
		return 0
	}

	return (n + 1) * (k + 1)
}
