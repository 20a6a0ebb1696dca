// Package metrics exposes Prometheus collectors for the HTTP surface, order
// transitions and the outbox relay. Collectors live in a private registry so
// several instances can coexist in tests.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"orders/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orders"

// Transition results.
const (
	ResultOK        = "ok"
	ResultRejected  = "rejected"
	ResultNotFound  = "not_found"
	ResultInvalid   = "invalid"
	ResultConflict  = "conflict"
	ResultTransient = "transient"
	ResultFailed    = "error"
)

type Metrics struct {
	registry *prometheus.Registry

	Requests        *prometheus.CounterVec
	LatencyMS       *prometheus.HistogramVec
	Transitions     *prometheus.CounterVec
	OutboxPublished *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"method", "route"}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lifecycle_operations_total",
			Help:      "Lifecycle operations by operation and result.",
		}, []string{"operation", "result"}),
		OutboxPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_messages_total",
			Help:      "Outbox messages handed to the broker, by result.",
		}, []string{"result"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests,
		m.LatencyMS,
		m.Transitions,
		m.OutboxPublished,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.LatencyMS.WithLabelValues(method, route).Observe(float64(elapsed.Microseconds()) / 1000)
}

// ObserveTransition counts one lifecycle operation under the result its error maps to.
func (m *Metrics) ObserveTransition(operation string, err error) {
	m.Transitions.WithLabelValues(operation, Result(err)).Inc()
}

func (m *Metrics) ObserveOutbox(err error) {
	if err != nil {
		m.OutboxPublished.WithLabelValues(ResultFailed).Inc()
		return
	}
	m.OutboxPublished.WithLabelValues(ResultOK).Inc()
}

// Result maps an operation error to a low-cardinality label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, errs.ErrInvalidTransition):
		return ResultRejected
	case errors.Is(err, errs.ErrObjectNotFound):
		return ResultNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return ResultConflict
	case errors.Is(err, errs.ErrTransient):
		return ResultTransient
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ResultInvalid
	default:
		return ResultFailed
	}
}
