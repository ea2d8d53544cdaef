// Package metrics exposes Prometheus counters for the time tracker and HTTP layer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "moreminutes"

// Recorder owns a private registry with the application's collectors.
type Recorder struct {
	registry *prometheus.Registry

	actionsLogged   *prometheus.CounterVec
	minutesAdded    *prometheus.CounterVec
	actionsRejected *prometheus.CounterVec
	resets          *prometheus.CounterVec
	minutesRemoved  *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates a Recorder with Go runtime and process collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		actionsLogged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_logged_total",
			Help:      "Successfully logged actions by action origin.",
		}, []string{"origin"}),
		minutesAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "minutes_added_total",
			Help:      "Minutes of life added by logged actions.",
		}, []string{"origin"}),
		actionsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_rejected_total",
			Help:      "Log attempts refused by the daily eligibility rules.",
		}, []string{"reason"}),
		resets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Ledger resets by kind (all, today).",
		}, []string{"kind"}),
		minutesRemoved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "minutes_removed_total",
			Help:      "Minutes removed by resets.",
		}, []string{"kind"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.actionsLogged,
		r.minutesAdded,
		r.actionsRejected,
		r.resets,
		r.minutesRemoved,
		r.httpRequests,
		r.httpDuration,
	)
	return r
}

// ActionLogged counts a successful log and the minutes it added.
func (r *Recorder) ActionLogged(origin string, minutes int) {
	r.actionsLogged.WithLabelValues(origin).Inc()
	r.minutesAdded.WithLabelValues(origin).Add(float64(minutes))
}

// ActionRejected counts an ineligible log attempt.
func (r *Recorder) ActionRejected(reason string) {
	r.actionsRejected.WithLabelValues(reason).Inc()
}

// Reset counts a ledger reset.
func (r *Recorder) Reset(kind string, minutesRemoved int) {
	r.resets.WithLabelValues(kind).Inc()
	r.minutesRemoved.WithLabelValues(kind).Add(float64(minutesRemoved))
}

// ObserveHTTP records one finished request.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Nop discards all observations.
type Nop struct{}

func (Nop) ActionLogged(string, int) {}
func (Nop) ActionRejected(string) {}
func (Nop) Reset(string, int) {}
func (Nop) ObserveHTTP(string, string, int, time.Duration) {}
