package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the Prometheus registry, the scrape server and the pipeline
// instruments.
type Metrics struct {
	Server      *http.Server
	Registry    *prometheus.Registry
	serviceName string

	// PipelineRuns counts pipeline executions by outcome
	// ("ok", "extract_failed", "generate_failed").
	PipelineRuns *prometheus.CounterVec

	// MemesRendered counts successfully rendered memes by strategy.
	MemesRendered *prometheus.CounterVec

	// RenderFailures counts memes that came back absent, by strategy.
	RenderFailures *prometheus.CounterVec

	// LLMRetries counts retried model calls by stage
	// ("analyze", "campaign").
	LLMRetries *prometheus.CounterVec

	// PipelineDuration tracks end-to-end pipeline latency in seconds.
	PipelineDuration prometheus.Histogram
}

func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	m := &Metrics{
		Registry:    registry,
		serviceName: cfg.ServiceName,
		PipelineRuns: createCounterVec("pipeline_runs_total",
			"Pipeline executions by outcome.", []string{"outcome"}),
		MemesRendered: createCounterVec("memes_rendered_total",
			"Successfully rendered memes by strategy.", []string{"strategy"}),
		RenderFailures: createCounterVec("meme_render_failures_total",
			"Memes that could not be rendered, by strategy.", []string{"strategy"}),
		LLMRetries: createCounterVec("llm_retries_total",
			"Retried model calls by pipeline stage.", []string{"stage"}),
		PipelineDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pipeline_duration_seconds",
			Help:    "End-to-end pipeline latency.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
	}

	wrappedRegistry.MustRegister(
		m.PipelineRuns,
		m.MemesRendered,
		m.RenderFailures,
		m.LLMRetries,
		m.PipelineDuration,
	)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return m
}
