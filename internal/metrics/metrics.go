// SPDX-License-Identifier: MIT

// Package metrics instruments lvdp solver runs with Prometheus collectors
// held in a private registry.
package metrics

import (
	"errors"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Solver labels.
const (
	SolverPartition = "partition"
	SolverSubsetSum = "subsetsum"
	SolverExists    = "exists"
)

// Outcome labels.
const (
	OutcomeOK         = "ok"
	OutcomeNoSolution = "no_solution"
	OutcomeInvalid    = "invalid"
)

// Recorder counts solves by solver and outcome and tracks the number of
// table cells each solve allocated.
type Recorder struct {
	reg    *prometheus.Registry
	solves *prometheus.CounterVec
	cells  *prometheus.HistogramVec
}

// New returns a Recorder with its collectors registered on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvdp",
			Name:      "solves_total",
			Help:      "Solver invocations by solver and outcome",
		}, []string{"solver", "outcome"}),
		cells: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvdp",
			Name:      "table_cells",
			Help:      "DP table cells allocated per solve",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
		}, []string{"solver"}),
	}
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Observe records one solve. cells is the size of one DP table; 0 when the
// solver answered without building a table.
func (r *Recorder) Observe(solver, outcome string, cells int) {
	r.solves.WithLabelValues(solver, outcome).Inc()
	if outcome != OutcomeInvalid {
		r.cells.WithLabelValues(solver).Observe(float64(cells))
	}
}

// Outcome maps a solver return to its outcome label.
func Outcome(err error, found bool) string {
	switch {
	case err != nil:
		return OutcomeInvalid
	case !found:
		return OutcomeNoSolution
	default:
		return OutcomeOK
	}
}

// WriteText writes every gathered family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	mfs, err := r.reg.Gather()
	if err != nil {
		return err
	}
	var errs []error
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
