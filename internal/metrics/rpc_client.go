package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of outbound client operations.",
	}, []string{"operation", "client", "network", "status"})
	rpcClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of outbound client operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "client", "network", "status"})
)

// RPCClient tracks metrics for calls made to one kind of network peer.
type RPCClient struct {
	client  string
	network string
}

// NewRPCClient constructs a metrics collector for calls made by the named client.
func NewRPCClient(client string, network model.Network) *RPCClient {
	return &RPCClient{client: orUnknown(client), network: orUnknown(string(network))}
}

// Observe records a single call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	rpcClientRequestsTotal.WithLabelValues(operation, m.client, m.network, s).Inc()
	rpcClientRequestDuration.WithLabelValues(operation, m.client, m.network, s).Observe(time.Since(started).Seconds())
}
