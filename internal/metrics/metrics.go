// Package metrics exposes Prometheus instrumentation for the render pipeline.
package metrics

import (
	"context"
	"net/http"

	"github.com/aretw0/bloch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a registry and the render collectors registered on it.
type Recorder struct {
	registry *prometheus.Registry

	renders        *prometheus.CounterVec
	renderErrors   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder on a fresh registry that also carries the
// Go runtime and process collectors.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bloch",
			Subsystem: "render",
			Name:      "total",
			Help:      "Total render passes by gate and projection",
		}, []string{"gate", "projection"}),
		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bloch",
			Subsystem: "render",
			Name:      "errors_total",
			Help:      "Total failed render passes by gate",
		}, []string{"gate"}),
		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bloch",
			Subsystem: "render",
			Name:      "duration_seconds",
			Help:      "Render pass latency in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"gate"}),
	}
}

// Observe records one render event.
func (r *Recorder) Observe(_ context.Context, e bloch.RenderEvent) {
	g := e.Gate.String()
	r.renders.WithLabelValues(g, string(e.Projection)).Inc()
	r.renderDuration.WithLabelValues(g).Observe(e.Duration.Seconds())
	if e.Err != nil {
		r.renderErrors.WithLabelValues(g).Inc()
	}
}

// Hooks returns engine hooks that feed this recorder.
func (r *Recorder) Hooks() bloch.Hooks {
	return bloch.Hooks{OnRender: r.Observe}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
