// Package metrics exposes prometheus instrumentation for match runs and the
// HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var fitScoreBuckets = []float64{10, 20, 30, 40, 50, 55, 60, 65, 70, 75, 80, 85, 90, 95, 100}

type Option func(*Recorder)

func WithNamespace(ns string) Option {
	return func(r *Recorder) {
		if ns != "" {
			r.namespace = ns
		}
	}
}

// WithRegistry registers every collector on reg instead of a fresh registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(r *Recorder) {
		if reg != nil {
			r.registry = reg
		}
	}
}

func WithRuntimeCollectors() Option {
	return func(r *Recorder) {
		r.runtime = true
	}
}

// Recorder is safe for concurrent use. A nil *Recorder records nothing.
type Recorder struct {
	namespace string
	registry  *prometheus.Registry
	runtime   bool

	runs          *prometheus.CounterVec
	runDuration   *prometheus.HistogramVec
	candidates    *prometheus.CounterVec
	failures      *prometheus.CounterVec
	resultsStored prometheus.Counter
	fitScores     *prometheus.HistogramVec
	runsInFlight  prometheus.Gauge

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func New(opts ...Option) *Recorder {
	r := &Recorder{namespace: "hiring_intel"}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = prometheus.NewRegistry()
	}
	if r.runtime {
		r.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	auto := promauto.With(r.registry)

	r.runs = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "match",
		Name:      "runs_total",
		Help:      "Batch match runs by mode and outcome.",
	}, []string{"mode", "outcome"})

	r.runDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Subsystem: "match",
		Name:      "run_duration_seconds",
		Help:      "Wall time of a batch match run.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode"})

	r.candidates = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "match",
		Name:      "candidates_total",
		Help:      "Candidates visited by batch runs, by status.",
	}, []string{"status"})

	r.failures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "match",
		Name:      "candidate_failures_total",
		Help:      "Per-candidate failures by stage.",
	}, []string{"stage"})

	r.resultsStored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "match",
		Name:      "results_written_total",
		Help:      "Match results persisted.",
	})

	r.fitScores = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Subsystem: "match",
		Name:      "fit_score",
		Help:      "Distribution of computed fit scores.",
		Buckets:   fitScoreBuckets,
	}, []string{"risk_level"})

	r.runsInFlight = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Subsystem: "match",
		Name:      "runs_in_flight",
		Help:      "Batch match runs currently executing.",
	})

	r.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status_code"})

	r.httpDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) RunStarted() {
	if r == nil {
		return
	}
	r.runsInFlight.Inc()
}

// RunFinished closes a run opened with RunStarted.
func (r *Recorder) RunFinished(mode string, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.runsInFlight.Dec()
	r.runs.WithLabelValues(mode, outcome).Inc()
	r.runDuration.WithLabelValues(mode).Observe(d.Seconds())
}

func (r *Recorder) CandidateScored(risk string, fit float64) {
	if r == nil {
		return
	}
	r.candidates.WithLabelValues("scored").Inc()
	r.fitScores.WithLabelValues(risk).Observe(fit)
}

func (r *Recorder) CandidateSkipped() {
	if r == nil {
		return
	}
	r.candidates.WithLabelValues("skipped").Inc()
}

func (r *Recorder) CandidateFailed(stage string) {
	if r == nil {
		return
	}
	r.candidates.WithLabelValues("failed").Inc()
	r.failures.WithLabelValues(stage).Inc()
}

func (r *Recorder) ResultWritten() {
	if r == nil {
		return
	}
	r.resultsStored.Inc()
}

func (r *Recorder) ObserveHTTP(method, route string, status int, d time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// PoolCounter reports acquired, idle and total database connections.
type PoolCounter interface {
	Counts() (acquired, idle, total int32)
}

// ObserveDBPool exports the pool's connection counts as gauges read at
// scrape time. Call it once per recorder.
func (r *Recorder) ObserveDBPool(pool PoolCounter) {
	if r == nil || pool == nil {
		return
	}

	gauge := func(name, help string, pick func(acquired, idle, total int32) int32) prometheus.GaugeFunc {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: r.namespace,
			Subsystem: "db",
			Name:      name,
			Help:      help,
		}, func() float64 {
			return float64(pick(pool.Counts()))
		})
	}

	r.registry.MustRegister(
		gauge("acquired_conns", "Connections currently checked out of the pool.",
			func(a, _, _ int32) int32 { return a }),
		gauge("idle_conns", "Idle connections in the pool.",
			func(_, i, _ int32) int32 { return i }),
		gauge("total_conns", "All connections owned by the pool.",
			func(_, _, t int32) int32 { return t }),
	)
}
