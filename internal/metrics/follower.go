package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	followerHeaderSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower",
		Name:      "header_sync_total",
		Help:      "Count of header sync attempts.",
	}, []string{"network", "status"})

	followerHeaderSyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower",
		Name:      "header_sync_duration_seconds",
		Help:      "Duration of a header sync attempt.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	followerHeadersSaved = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower",
		Name:      "headers_saved_total",
		Help:      "Number of headers appended to the local chain.",
	}, []string{"network"})

	followerUTXOBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower",
		Name:      "utxo_batch_total",
		Help:      "Count of UTXO set batches.",
	}, []string{"network", "status"})

	followerUTXOBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower",
		Name:      "utxo_batch_duration_seconds",
		Help:      "Duration of fetching and applying a UTXO set batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	followerUTXOBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower",
		Name:      "utxo_batch_size",
		Help:      "Number of blocks applied per UTXO set batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"network"})

	followerIndexWriteTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower",
		Name:      "index_write_total",
		Help:      "Count of secondary index writes.",
	}, []string{"network", "status"})

	followerIndexWriteOutputs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower",
		Name:      "index_write_outputs_total",
		Help:      "Number of created and spent outputs written to the secondary index.",
	}, []string{"network", "status"})

	followerIndexWriteDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower",
		Name:      "index_write_duration_seconds",
		Help:      "Duration of a secondary index write.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	followerHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower",
		Name:      "height",
		Help:      "Best header height and UTXO set height.",
	}, []string{"network", "kind"})
)

// Follower tracks metrics for the chain follower.
type Follower struct {
	network string
}

// NewFollower constructs a Follower collector.
func NewFollower(network model.Network) *Follower {
	return &Follower{network: orUnknown(string(network))}
}

// ObserveHeaderSync records one header sync attempt.
func (m Follower) ObserveHeaderSync(err error, headers int, started time.Time) {
	s := status(err)
	followerHeaderSyncTotal.WithLabelValues(m.network, s).Inc()
	followerHeaderSyncDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
	followerHeadersSaved.WithLabelValues(m.network).Add(float64(headers))
}

// ObserveUTXOBatch records one UTXO set batch.
func (m Follower) ObserveUTXOBatch(err error, blocks int, started time.Time) {
	s := status(err)
	followerUTXOBatchTotal.WithLabelValues(m.network, s).Inc()
	followerUTXOBatchDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
	if blocks > 0 {
		followerUTXOBatchSize.WithLabelValues(m.network).Observe(float64(blocks))
	}
}

// ObserveIndexWrite records one secondary index write.
func (m Follower) ObserveIndexWrite(err error, outputs int, started time.Time) {
	s := status(err)
	followerIndexWriteTotal.WithLabelValues(m.network, s).Inc()
	followerIndexWriteOutputs.WithLabelValues(m.network, s).Add(float64(outputs))
	followerIndexWriteDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
}

// SetHeights publishes the current best header and UTXO set heights.
func (m Follower) SetHeights(headers, utxo uint32) {
	followerHeight.WithLabelValues(m.network, "headers").Set(float64(headers))
	followerHeight.WithLabelValues(m.network, "utxo").Set(float64(utxo))
}
