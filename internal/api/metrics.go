package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//MetricsCollector keeps the request and solver metrics of the service
type MetricsCollector struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	solverErrors    *prometheus.CounterVec
	trajectoryRows  prometheus.Histogram
	gatherer        prometheus.Gatherer
}

//NewMetricsCollector creates the metrics and registers them in registry
func NewMetricsCollector(registry *prometheus.Registry) *MetricsCollector {
	m := &MetricsCollector{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "ingalls_request_duration_seconds",
				Help: "Time spent processing request",
			},
			[]string{"endpoint"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ingalls_requests_total",
				Help: "Total number of requests",
			},
			[]string{"endpoint", "status"},
		),
		solverErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ingalls_solver_errors_total",
				Help: "Total number of requests the solver could not answer",
			},
			[]string{"kind"},
		),
		trajectoryRows: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ingalls_trajectory_rows",
				Help:    "Number of rows in the trajectory tables returned",
				Buckets: prometheus.LinearBuckets(10, 20, 10),
			},
		),
		gatherer: registry,
	}

	registry.MustRegister(m.requestDuration)
	registry.MustRegister(m.requestsTotal)
	registry.MustRegister(m.solverErrors)
	registry.MustRegister(m.trajectoryRows)

	return m
}

//RecordRequest counts one request to the endpoint
func (m *MetricsCollector) RecordRequest(endpoint string, status int, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
	m.requestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

//RecordSolverError counts one failure of the kind specified (out_of_range, degenerate, convergence)
func (m *MetricsCollector) RecordSolverError(kind string) {
	m.solverErrors.WithLabelValues(kind).Inc()
}

func (m *MetricsCollector) RecordTrajectory(rows int) {
	m.trajectoryRows.Observe(float64(rows))
}

//Handler serves the metrics in the Prometheus text format
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

//Instrument records the duration and the status of every request to the handler
func (m *MetricsCollector) Instrument(endpoint string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		m.RecordRequest(endpoint, recorder.status, time.Since(start))
	})
}
