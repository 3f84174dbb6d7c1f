package videometrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
)

var (
	storeOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "videoregistry_store_operations_total",
		Help: "Total number of video store operations by operation and outcome",
	}, []string{"operation", "outcome"})

	videosLive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "videoregistry_videos",
		Help: "Number of videos currently held in the store",
	})
)

func IncOperation(operation, outcome string) {
	storeOperationsTotal.WithLabelValues(operation, normalizeOutcome(outcome)).Inc()
}

func SetVideos(n int) {
	videosLive.Set(float64(n))
}

func normalizeOutcome(outcome string) string {
	switch outcome {
	case OutcomeOK, OutcomeInvalid, OutcomeNotFound:
		return outcome
	default:
		return "unknown"
	}
}
