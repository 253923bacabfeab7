package metrics

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	StrategyGreedy  = "greedy"
	StrategyOptimal = "optimal"
)

var (
	Decisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coinline_decisions_total",
			Help: "Computer decisions by strategy actually used",
		},
		[]string{"strategy"},
	)
	SolverStates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "coinline_solver_states_total",
			Help: "Interval states freshly computed by the optimal solver",
		},
	)
	Games = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coinline_games_total",
			Help: "Finished games by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(Decisions)
	prometheus.MustRegister(SolverStates)
	prometheus.MustRegister(Games)
}

// Dump writes every coinline_* family from the default registry in the
// text exposition format.
func Dump(w io.Writer) error {
	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if !strings.HasPrefix(mf.GetName(), "coinline_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
