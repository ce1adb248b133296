package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScanDuration tracks the latency of scan transactions
	ScanDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "loyalty_scan_duration_seconds",
			Help: "Duration of scan transactions in seconds",
			Buckets: []float64{
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
				2.5,   // 2.5s
			},
		},
		[]string{"result"}, // success, not_found, forbidden, failed
	)

	// RewardsFired counts reward messages generated per reward type
	RewardsFired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loyalty_rewards_fired_total",
			Help: "Total rewards fired, labeled by reward type",
		},
		[]string{"reward_type"},
	)

	// DispatchFailures counts swallowed side-channel failures
	DispatchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loyalty_dispatch_failures_total",
			Help: "Best-effort dispatch failures, labeled by channel",
		},
		[]string{"channel"}, // push, mailing
	)

	// SweepNotified records per-run sweep notification outcomes
	SweepNotified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loyalty_sweep_notifications_total",
			Help: "Sweep notifications attempted, labeled by outcome",
		},
		[]string{"outcome"}, // sent, failed
	)
)

// RecordScanDuration records the duration of one scan transaction.
func RecordScanDuration(result string, duration float64) {
	ScanDuration.WithLabelValues(result).Observe(duration)
}
