package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"GopherCraft/internal/logger"
)

const namespace = "voxel"

// Streaming holds the collectors for chunk streaming and drawing.
type Streaming struct {
	ChunksCreated  prometheus.Counter
	ChunksEvicted  prometheus.Counter
	TasksStarted   prometheus.Counter
	TasksCompleted prometheus.Counter
	TasksDeferred  prometheus.Counter
	TasksFailed    prometheus.Counter

	TasksInFlight  prometheus.Gauge
	ChunksResident prometheus.Gauge
	ChunksVisible  prometheus.Gauge
	DrawCalls      prometheus.Gauge
	FacesDrawn     prometheus.Gauge

	TaskDuration  prometheus.Histogram
	FrameDuration prometheus.Histogram
}

// NewStreaming builds the collectors and registers them on reg. A nil reg
// leaves them unregistered, which is what tests and embedders without an
// exporter want.
func NewStreaming(reg prometheus.Registerer) (*Streaming, error) {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Subsystem: "streaming", Name: name, Help: help})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Subsystem: "streaming", Name: name, Help: help})
	}

	s := &Streaming{
		ChunksCreated:  counter("chunks_created_total", "Chunks inserted into the registry."),
		ChunksEvicted:  counter("chunks_evicted_total", "Chunks removed from the registry after going unseen."),
		TasksStarted:   counter("tasks_started_total", "Generate and mesh tasks submitted to the worker pool."),
		TasksCompleted: counter("tasks_completed_total", "Tasks whose faces were uploaded."),
		TasksDeferred:  counter("tasks_deferred_total", "Dirty candidates left for a later frame because the task cap was reached."),
		TasksFailed:    counter("tasks_failed_total", "Tasks that panicked; their chunk goes back to dirty."),

		TasksInFlight:  gauge("tasks_in_flight", "Tasks submitted and not yet retired."),
		ChunksResident: gauge("chunks_resident", "Chunks held by the registry."),
		ChunksVisible:  gauge("chunks_visible", "Candidate chunks in the last frame."),
		DrawCalls:      gauge("draw_calls", "Draw calls issued in the last frame."),
		FacesDrawn:     gauge("faces_drawn", "Faces drawn in the last frame."),

		TaskDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "streaming", Name: "task_duration_seconds",
			Help:    "Wall time of one generate and mesh task.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		FrameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "render", Name: "frame_seconds",
			Help:    "Wall time of World.Render.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 10),
		}),
	}

	if reg == nil {
		return s, nil
	}
	for _, c := range s.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	return s, nil
}

func (s *Streaming) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		s.ChunksCreated, s.ChunksEvicted, s.TasksStarted, s.TasksCompleted, s.TasksDeferred, s.TasksFailed,
		s.TasksInFlight, s.ChunksResident, s.ChunksVisible, s.DrawCalls, s.FacesDrawn,
		s.TaskDuration, s.FrameDuration,
	}
}

// Serve exposes g on addr under /metrics in the background. The returned
// server is shut down by the caller.
func Serve(addr string, g prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Log.Info("Serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Metrics server stopped", zap.Error(err))
		}
	}()
	return srv
}
