package puzzle

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
	outcomePanic   = "panic"
)

var (
	// runsTotal counts finished runs by outcome (success, error or panic).
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "puzzle_runs_total",
		Help: "The total number of puzzle solutions run",
	}, []string{"year", "day", "outcome"})

	// runDuration measures how long each solution took, whatever its outcome.
	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "puzzle_run_duration_seconds",
		Help: "The time spent running a puzzle solution",
		Buckets: []float64{
			0.001, // 1ms
			0.01,  // 10ms
			0.1,   // 100ms
			1,     // 1s
			10,    // 10s
			60,    // 1m
			300,   // 5m
		},
	}, []string{"year", "day"})
)

func recordRun(s Solution, outcome string, elapsed time.Duration) {
	year, day := strconv.Itoa(s.Year), strconv.Itoa(s.Day)

	runsTotal.WithLabelValues(year, day, outcome).Inc()
	runDuration.WithLabelValues(year, day).Observe(elapsed.Seconds())
}
