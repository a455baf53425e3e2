package backend

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	dialsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gateway",
			Subsystem: "backend",
			Name:      "dials_total",
			Help:      "Total dial attempts to the word2animal backend",
		},
	)

	dialFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gateway",
			Subsystem: "backend",
			Name:      "dial_failures_total",
			Help:      "Dial attempts that did not produce a connection",
		},
	)

	callsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gateway",
			Subsystem: "backend",
			Name:      "calls_total",
			Help:      "GetAnimal calls by outcome",
		},
		[]string{"outcome"},
	)

	callDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "gateway",
			Subsystem: "backend",
			Name:      "call_duration_seconds",
			Help:      "Duration of GetAnimal calls in seconds, including any dial",
			Buckets:   prometheus.DefBuckets,
		},
	)

	probesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gateway",
			Subsystem: "backend",
			Name:      "probes_total",
			Help:      "Readiness probe attempts",
		},
	)

	probeFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gateway",
			Subsystem: "backend",
			Name:      "probe_failures_total",
			Help:      "Readiness probes that could not reach the backend",
		},
	)
)

func init() {
	prometheus.MustRegister(dialsTotal, dialFailuresTotal, callsTotal, callDuration, probesTotal, probeFailuresTotal)
}

func observeCall(outcome Outcome, start time.Time) {
	callsTotal.WithLabelValues(outcome.String()).Inc()
	callDuration.Observe(time.Since(start).Seconds())
}
