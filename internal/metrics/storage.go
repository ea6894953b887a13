package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storageRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "storage",
		Name:      "operations_total",
		Help:      "Count of local storage operations.",
	}, []string{"operation", "engine", "status"})
	storageRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "storage",
		Name:      "operation_duration_seconds",
		Help:      "Duration of local storage operations.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
	}, []string{"operation", "engine", "status"})
)

// Storage tracks metrics for the local key-value engine.
type Storage struct {
	engine string
}

// NewStorage constructs a Storage collector for the named engine.
func NewStorage(engine string) *Storage {
	return &Storage{engine: orUnknown(engine)}
}

// Observe records duration and status of a storage operation.
func (m Storage) Observe(operation string, err error, started time.Time) {
	s := status(err)
	storageRequestsTotal.WithLabelValues(operation, m.engine, s).Inc()
	storageRequestDuration.WithLabelValues(operation, m.engine, s).Observe(time.Since(started).Seconds())
}
