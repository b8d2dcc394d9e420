// Package telemetry exports focus load metrics in the Prometheus format.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "explorer"

// Reporter records focus load outcomes into its own registry.
type Reporter struct {
	registry           *prometheus.Registry
	focusLoads         *prometheus.CounterVec
	annotationFailures *prometheus.CounterVec
	loadDuration       *prometheus.HistogramVec
}

// NewReporter creates a Reporter with a fresh registry. Go runtime and process
// collectors are registered alongside the focus metrics.
func NewReporter() *Reporter {
	r := &Reporter{
		registry: prometheus.NewRegistry(),
		focusLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "focus",
			Name:      "loads_total",
			Help:      "Focus data loads by job and outcome.",
		}, []string{"job_id", "outcome"}),
		annotationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "focus",
			Name:      "annotation_failures_total",
			Help:      "Focus loads whose annotation query failed.",
		}, []string{"job_id"}),
		loadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "focus",
			Name:      "load_duration_seconds",
			Help:      "Time spent assembling focus data.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}, []string{"outcome"}),
	}

	r.registry.MustRegister(
		r.focusLoads,
		r.annotationFailures,
		r.loadDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ReportFocusLoad counts one focus load and observes its duration.
func (r *Reporter) ReportFocusLoad(jobID, outcome string, duration time.Duration) {
	r.focusLoads.WithLabelValues(jobID, outcome).Inc()
	r.loadDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// ReportAnnotationFailure counts a focus load whose annotations could not be fetched.
func (r *Reporter) ReportAnnotationFailure(jobID string) {
	r.annotationFailures.WithLabelValues(jobID).Inc()
}

// Registry exposes the underlying registry.
func (r *Reporter) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus text exposition format.
func (r *Reporter) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
