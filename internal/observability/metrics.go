package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ChartsBuiltTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "astrochart_charts_built_total",
		Help: "Chart constructions by outcome.",
	}, []string{"result"})

	ChartBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "astrochart_chart_build_seconds",
		Help:    "Time spent resolving a chart snapshot from its ephemeris provider.",
		Buckets: prometheus.DefBuckets,
	})

	ProviderCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "astrochart_provider_calls_total",
		Help: "Ephemeris provider calls by provider, call and outcome.",
	}, []string{"provider", "call", "result"})

	ProviderCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "astrochart_provider_call_seconds",
		Help:    "Latency of individual ephemeris provider calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider", "call"})
)

// Outcome labels.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Result maps an error to its outcome label.
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
