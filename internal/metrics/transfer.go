package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/abbyosnl/union/internal/transfer"
)

const noStep = "none"

var (
	// Steps entered per variant
	transferStepsEnteredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "union",
			Subsystem: "transfer",
			Name:      "steps_entered_total",
			Help:      "Total number of times a transfer entered each step",
		},
		[]string{"step"},
	)

	transferTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "union",
			Subsystem: "transfer",
			Name:      "transitions_total",
			Help:      "Total number of accepted step transitions",
		},
		[]string{"from", "to"},
	)

	transferRejectedTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "union",
			Subsystem: "transfer",
			Name:      "rejected_transitions_total",
			Help:      "Total number of step transitions rejected as out of order",
		},
		[]string{"from", "to"},
	)

	// Time spent in a step before leaving it
	transferStepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "union",
			Subsystem: "transfer",
			Name:      "step_duration_seconds",
			Help:      "Time a transfer spent in a step before advancing",
			Buckets:   []float64{.1, .5, 1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{"step"},
	)

	transferLastTransitionTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "union",
			Subsystem: "transfer",
			Name:      "last_transition_timestamp",
			Help:      "Timestamp of the last accepted step transition",
		},
	)
)

// TransferMetrics provides methods to update transfer step metrics
type TransferMetrics struct{}

func NewTransferMetrics() *TransferMetrics {
	return &TransferMetrics{}
}

// ObserveTransition records an accepted move from one step to another. from is
// empty for the first step of a transfer, and spent is the time spent in from.
func (tm *TransferMetrics) ObserveTransition(from, to transfer.Tag, spent time.Duration) {
	transferStepsEnteredTotal.WithLabelValues(string(to)).Inc()
	transferTransitionsTotal.WithLabelValues(stepLabel(from), string(to)).Inc()
	if from != "" {
		transferStepDuration.WithLabelValues(string(from)).Observe(spent.Seconds())
	}
	transferLastTransitionTimestamp.Set(float64(time.Now().Unix()))
}

func (tm *TransferMetrics) ObserveRejected(from, to transfer.Tag) {
	transferRejectedTransitionsTotal.WithLabelValues(stepLabel(from), string(to)).Inc()
}

func stepLabel(tag transfer.Tag) string {
	if tag == "" {
		return noStep
	}
	return string(tag)
}
