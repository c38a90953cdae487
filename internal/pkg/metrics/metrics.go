package metrics

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "booking_registry"

type httpMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

type bookingMetrics struct {
	operations *prometheus.CounterVec
	ledger     *prometheus.HistogramVec
}

var (
	enabled atomic.Bool

	httpOnce     sync.Once
	httpRegistry *httpMetrics

	bookingOnce     sync.Once
	bookingRegistry *bookingMetrics
)

// Enable switches collection on. Until then HTTP and Booking return nil and
// nothing is registered with the default registry.
func Enable() {
	enabled.Store(true)
}

// HTTP returns the lazily-initialised HTTP metrics registry.
func HTTP() *httpMetrics {
	if !enabled.Load() {
		return nil
	}
	httpOnce.Do(func() {
		httpRegistry = &httpMetrics{
			requests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests segmented by route, method and status code.",
			}, []string{"route", "method", "status"}),
			latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Latency distribution for HTTP handlers.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"route", "method"}),
		}
		prometheus.MustRegister(httpRegistry.requests, httpRegistry.latency)
	})
	return httpRegistry
}

func (m *httpMetrics) Observe(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(route, method).Observe(duration.Seconds())
}

// Booking returns the lazily-initialised registry for booking operations and ledger calls.
func Booking() *bookingMetrics {
	if !enabled.Load() {
		return nil
	}
	bookingOnce.Do(func() {
		bookingRegistry = &bookingMetrics{
			operations: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "booking",
				Name:      "operations_total",
				Help:      "Booking registry operations segmented by operation and outcome.",
			}, []string{"operation", "outcome"}),
			ledger: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "ledger",
				Name:      "call_duration_seconds",
				Help:      "Latency of token ledger calls segmented by call and outcome.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			}, []string{"call", "outcome"}),
		}
		prometheus.MustRegister(bookingRegistry.operations, bookingRegistry.ledger)
	})
	return bookingRegistry
}

func (m *bookingMetrics) RecordOperation(operation string, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, outcome(err)).Inc()
}

func (m *bookingMetrics) ObserveLedgerCall(call string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	m.ledger.WithLabelValues(call, outcome(err)).Observe(duration.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
