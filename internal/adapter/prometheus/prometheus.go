package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

type PrometheusAdapter struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	batchesTotal     *prometheus.CounterVec
	rentalsIngested  prometheus.Counter
	rentalsGenerated prometheus.Counter
}

// NewPrometheusAdapter registers on the default registry served at /metrics.
func NewPrometheusAdapter() *PrometheusAdapter {
	return NewPrometheusAdapterWithRegistry(prometheus.DefaultRegisterer)
}

func NewPrometheusAdapterWithRegistry(reg prometheus.Registerer) *PrometheusAdapter {
	a := &PrometheusAdapter{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		batchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rental_batches_total",
				Help: "Rental batches consumed from the broker, by outcome",
			},
			[]string{"outcome"},
		),
		rentalsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rentals_ingested_total",
			Help: "Rentals created from broker batches",
		}),
		rentalsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rentals_generated_total",
			Help: "Synthetic rentals published to the broker",
		}),
	}

	reg.MustRegister(
		a.requestsTotal,
		a.requestDuration,
		a.batchesTotal,
		a.rentalsIngested,
		a.rentalsGenerated,
	)
	return a
}

// RecordMetrics is deferred by handlers with the time the request started.
func (a *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	method := c.Request.Method
	status := strconv.Itoa(c.Writer.Status())

	a.requestsTotal.WithLabelValues(method, path, status).Inc()
	a.requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
}

// RecordBatch counts one consumed batch; items only count toward ingestion on success.
func (a *PrometheusAdapter) RecordBatch(outcome string, items int) {
	a.batchesTotal.WithLabelValues(outcome).Inc()
	if outcome == ports.OutcomeProcessed {
		a.rentalsIngested.Add(float64(items))
	}
}

func (a *PrometheusAdapter) RecordGenerated(items int) {
	a.rentalsGenerated.Add(float64(items))
}
