// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvdp/internal/metrics"
	"github.com/katalvlaran/lvdp/subsetsum"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type subsetOutput struct {
	Found   bool  `json:"found"`
	Values  []int `json:"values"`
	Indices []int `json:"indices"`
}

type existsOutput struct {
	Found bool `json:"found"`
}

func newSubsetCmd(a *app) *cobra.Command {
	var (
		f          problemFlags
		existsOnly bool
	)
	cmd := &cobra.Command{
		Use:   "subset",
		Short: "Find a sub-collection of the values summing exactly to K",
		Example: `  lvdp subset --values 1,2,4,8 --k 11
  lvdp subset --values 2,4,6 --k 5 --exists-only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.finish(cmd)
			if existsOnly {
				return a.runExists(cmd, &f)
			}

			return a.runSubset(cmd, &f)
		},
	}
	bindProblemFlags(cmd, &f)
	cmd.Flags().BoolVar(&existsOnly, "exists-only", false, "Only decide feasibility, using O(K) memory")

	return cmd
}

func (a *app) runSubset(cmd *cobra.Command, f *problemFlags) error {
	p, err := resolveProblem(cmd, f)
	if err != nil {
		return err
	}
	if p.Mode != "" {
		return errors.Errorf("unknown subset mode: %s", p.Mode)
	}

	k := *p.K
	a.logger.Info("Starting subset sum", "n", len(p.Values), "k", k)
	start := time.Now()
	res, err := subsetsum.Solve(p.Values, k)
	a.recorder.Observe(metrics.SolverSubsetSum, metrics.Outcome(err, res.Found), subsetCells(p.Values, k, err))
	if err != nil {
		return errors.Wrap(err, "subset")
	}
	a.logger.Info("Subset sum complete", "elapsed", time.Since(start), "found", res.Found, "size", len(res.Values))

	text := "found=false"
	if res.Found {
		text = fmt.Sprintf("found=true values=%v", res.Values)
	}

	return a.render(cmd.OutOrStdout(), subsetOutput{Found: res.Found, Values: res.Values, Indices: res.Indices}, text)
}

func (a *app) runExists(cmd *cobra.Command, f *problemFlags) error {
	p, err := resolveProblem(cmd, f)
	if err != nil {
		return err
	}
	if p.Mode != "" {
		return errors.Errorf("unknown subset mode: %s", p.Mode)
	}

	k := *p.K
	a.logger.Debug("Starting subset feasibility", "n", len(p.Values), "k", k)
	ok, err := subsetsum.Exists(p.Values, k)
	a.recorder.Observe(metrics.SolverExists, metrics.Outcome(err, ok), existsCells(p.Values, k, err))
	if err != nil {
		return errors.Wrap(err, "subset")
	}

	return a.render(cmd.OutOrStdout(), existsOutput{Found: ok}, fmt.Sprintf("found=%t", ok))
}

// subsetCells is the size of one subset-sum table, 0 when none is built.
func subsetCells(s []int, k int, err error) int {
	if err != nil || k == 0 || k > cappedSum(s, k) {
		return 0
	}

	return (len(s) + 1) * (k + 1)
}

// existsCells is the length of the rolling row, 0 when none is built.
func existsCells(s []int, k int, err error) int {
	if err != nil || k > cappedSum(s, k) {
		return 0
	}

	return k + 1
}

// cappedSum returns min(sum(s), k) without overflowing on large elements.
func cappedSum(s []int, k int) int {
	total := 0
	for _, v := range s {
		if total >= k {
			break
		}
		total += min(v, k-total)
	}

	return total
}
