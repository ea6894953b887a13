package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcServerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "rpc_server",
		Name:      "requests_total",
		Help:      "Count of JSON-RPC requests served.",
	}, []string{"method", "status"})
	rpcServerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "rpc_server",
		Name:      "request_duration_seconds",
		Help:      "Duration of JSON-RPC requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"})
)

// RPCServer tracks metrics for the JSON-RPC endpoint.
type RPCServer struct{}

// NewRPCServer creates an RPCServer metrics collector.
func NewRPCServer() *RPCServer {
	return &RPCServer{}
}

// Observe records a served request. Unknown methods share one label value.
func (m RPCServer) Observe(method string, known bool, err error, started time.Time) {
	if !known {
		method = "unknown"
	}
	s := status(err)
	rpcServerRequestsTotal.WithLabelValues(method, s).Inc()
	rpcServerRequestDuration.WithLabelValues(method, s).Observe(time.Since(started).Seconds())
}
