package pipeline

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/musadiqpeerzada/memgen.ai/pkg/analyzer"
	"github.com/musadiqpeerzada/memgen.ai/pkg/campaign"
	"github.com/musadiqpeerzada/memgen.ai/pkg/logger"
	"github.com/musadiqpeerzada/memgen.ai/pkg/metrics"
	"github.com/musadiqpeerzada/memgen.ai/pkg/models"
	"github.com/musadiqpeerzada/memgen.ai/pkg/renderer"
	"github.com/musadiqpeerzada/memgen.ai/pkg/tracer"
)

// ProfileExtractor analyzes a business website into a structured profile.
type ProfileExtractor interface {
	Extract(ctx context.Context, url string) (*models.BusinessProfile, error)
}

// ConceptGenerator produces meme concepts for a business profile.
type ConceptGenerator interface {
	Generate(ctx context.Context, profile *models.BusinessProfile, numMemes int) ([]models.MemeConcept, error)
}

// MemeResult pairs a concept with its rendered image URL. Rendered is false
// when the image could not be produced; the concept is still returned.
type MemeResult struct {
	Concept  models.MemeConcept `json:"concept"`
	URL      string             `json:"url,omitempty"`
	Rendered bool               `json:"rendered"`
}

// Result is the full output of one pipeline run.
type Result struct {
	Profile *models.BusinessProfile `json:"profile"`
	Memes   []MemeResult            `json:"memes"`
}

// Pipeline runs extract → generate → render end to end.
type Pipeline struct {
	extractor ProfileExtractor
	generator ConceptGenerator
	renderer  renderer.Renderer
	metrics   *metrics.Metrics
	tracer    *tracer.Tracer
	logger    *logger.Logger
}

// NewPipeline wires the pipeline stages together.
func NewPipeline(extractor ProfileExtractor, generator ConceptGenerator, r renderer.Renderer,
	m *metrics.Metrics, t *tracer.Tracer, log *logger.Logger) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		generator: generator,
		renderer:  r,
		metrics:   m,
		tracer:    t,
		logger:    log,
	}
}

// Run executes the full pipeline for one website. Extraction and generation
// failures abort the run; render failures degrade per meme, so the result
// slice always matches the generated concepts in count and order.
func (p *Pipeline) Run(ctx context.Context, url string, numMemes int) (*Result, error) {
	start := time.Now()
	ctx, span := p.tracer.StartSpan(ctx, "pipeline.run")
	defer span.End()
	p.tracer.SetAttributes(span, map[string]interface{}{
		"pipeline.url":       url,
		"pipeline.num_memes": numMemes,
	})

	profile, err := p.extract(ctx, url)
	if err != nil {
		p.tracer.RecordErrorOnSpan(span, err)
		p.metrics.PipelineRuns.WithLabelValues("extract_failed").Inc()
		return nil, err
	}

	concepts, err := p.generate(ctx, profile, numMemes)
	if err != nil {
		p.tracer.RecordErrorOnSpan(span, err)
		p.metrics.PipelineRuns.WithLabelValues("generate_failed").Inc()
		return nil, err
	}

	memes := p.render(ctx, profile.Name, concepts)

	p.metrics.PipelineRuns.WithLabelValues("ok").Inc()
	p.metrics.PipelineDuration.Observe(time.Since(start).Seconds())

	return &Result{Profile: profile, Memes: memes}, nil
}

func (p *Pipeline) extract(ctx context.Context, url string) (*models.BusinessProfile, error) {
	ctx, span := p.tracer.StartSpan(ctx, "pipeline.extract")
	defer span.End()

	profile, err := p.extractor.Extract(ctx, url)
	if err != nil {
		p.tracer.RecordErrorOnSpan(span, err)
		return nil, err
	}
	return profile, nil
}

func (p *Pipeline) generate(ctx context.Context, profile *models.BusinessProfile, numMemes int) ([]models.MemeConcept, error) {
	ctx, span := p.tracer.StartSpan(ctx, "pipeline.generate")
	defer span.End()

	concepts, err := p.generator.Generate(ctx, profile, numMemes)
	if err != nil {
		p.tracer.RecordErrorOnSpan(span, err)
		return nil, err
	}
	return concepts, nil
}

// render fans the concepts out to the renderer. Results land in an
// index-addressed slice so output order always matches concept order no
// matter which render finishes first.
func (p *Pipeline) render(ctx context.Context, businessName string, concepts []models.MemeConcept) []MemeResult {
	ctx, span := p.tracer.StartSpan(ctx, "pipeline.render")
	defer span.End()

	results := make([]MemeResult, len(concepts))

	g, ctx := errgroup.WithContext(ctx)
	for i, concept := range concepts {
		g.Go(func() error {
			url, ok := p.renderer.Render(ctx, businessName, concept)
			results[i] = MemeResult{Concept: concept, URL: url, Rendered: ok}
			if ok {
				p.metrics.MemesRendered.WithLabelValues(p.renderer.Name()).Inc()
			} else {
				p.metrics.RenderFailures.WithLabelValues(p.renderer.Name()).Inc()
			}
			return nil
		})
	}
	// Render goroutines never return errors; degraded memes stay in place.
	_ = g.Wait()

	return results
}

// IsTerminal reports whether err is one of the pipeline's terminal failures
// rather than an infrastructure error.
func IsTerminal(err error) bool {
	var exErr *analyzer.ExtractionError
	var genErr *campaign.GenerationError
	return errors.As(err, &exErr) || errors.As(err, &genErr)
}
