package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the service's Prometheus collectors. A single instance is
// created at startup and shared by the HTTP and gRPC surfaces.
type Registry struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	GRPCRequestsTotal   *prometheus.CounterVec
}

func New() *Registry {
	return &Registry{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog",
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests handled, by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "catalog",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds, by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		GRPCRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog",
			Name:      "grpc_requests_total",
			Help:      "Number of gRPC requests handled, by full method and code.",
		}, []string{"method", "code"}),
	}
}
