package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/musadiqpeerzada/memgen.ai/pkg/llm"
	"github.com/musadiqpeerzada/memgen.ai/pkg/logger"
	"github.com/musadiqpeerzada/memgen.ai/pkg/models"
)

// ExtractionError is returned when a business profile could not be extracted
// after all attempts.
type ExtractionError struct {
	URL      string
	Attempts int
	Last     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to analyze website %s after %d attempts: %v", e.URL, e.Attempts, e.Last)
}

func (e *ExtractionError) Unwrap() error { return e.Last }

// RetryCounter is notified whenever an extraction attempt is retried.
// A Prometheus counter satisfies this.
type RetryCounter interface {
	Inc()
}

// Analyzer turns a business website into a structured profile.
type Analyzer struct {
	provider   llm.Provider
	cfg        *Config
	logger     *logger.Logger
	retries    RetryCounter
	httpClient *http.Client
}

// NewAnalyzer constructs a website analyzer. retries may be nil.
func NewAnalyzer(provider llm.Provider, cfg *Config, log *logger.Logger, retries RetryCounter) *Analyzer {
	return &Analyzer{
		provider:   provider,
		cfg:        cfg,
		logger:     log,
		retries:    retries,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}
}

const extractionPrompt = `You are an expert business analyst and marketing professional.

Analyze this website content and extract structured information about the business:

WEBSITE CONTENT:
%s

INSTRUCTIONS:
Extract key business information and return it as a structured profile.

1. Look for the business name, core offerings, and unique value propositions
2. Identify their target audience/customer segments
3. Determine the industry they operate in
4. Pay attention to their brand tone/voice

Format your response as a valid JSON object with these fields:
- "name": the business name (string)
- "industry": the primary industry the business operates in (string)
- "core_offerings": main products/services/solutions offered (array of strings)
- "value_propositions": key differentiators and unique values (array of strings)
- "target_audience": primary customer segments (array of strings)
- "brand_tone": the business's tone/voice, e.g. professional, casual (string)

Return ONLY the JSON object with no additional explanation or markdown formatting.`

// Extract asks the model for a structured profile of the website, retrying
// up to cfg.MaxAttempts times on fetch failures and malformed output. The
// page is fetched at most once successfully; retries reuse the same content.
func (a *Analyzer) Extract(ctx context.Context, url string) (*models.BusinessProfile, error) {
	a.logger.Info("loading website content", nil, map[string]interface{}{"url": url})

	var content string
	var lastErr error
	for attempt := 1; attempt <= a.cfg.MaxAttempts; attempt++ {
		profile, err := a.attemptExtract(ctx, url, &content)
		if err == nil {
			a.logger.Info("extracted business profile", nil, map[string]interface{}{
				"url":  url,
				"name": profile.Name,
			})
			return profile, nil
		}
		lastErr = err
		a.logger.Warn("business analysis attempt failed", err, map[string]interface{}{
			"url":          url,
			"attempt":      attempt,
			"max_attempts": a.cfg.MaxAttempts,
		})
		if attempt < a.cfg.MaxAttempts && a.retries != nil {
			a.retries.Inc()
		}
		if ctx.Err() != nil {
			break
		}
	}

	return nil, &ExtractionError{URL: url, Attempts: a.cfg.MaxAttempts, Last: lastErr}
}

func (a *Analyzer) attemptExtract(ctx context.Context, url string, content *string) (*models.BusinessProfile, error) {
	if *content == "" {
		text, err := a.fetchPageText(ctx, url)
		if err != nil {
			return nil, err
		}
		*content = text
	}
	return a.completeProfile(ctx, fmt.Sprintf(extractionPrompt, *content))
}

func (a *Analyzer) completeProfile(ctx context.Context, prompt string) (*models.BusinessProfile, error) {
	raw, err := a.provider.Complete(ctx, llm.CompletionRequest{
		Prompt:      prompt,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var profile models.BusinessProfile
	if err := json.Unmarshal([]byte(stripFences(raw)), &profile); err != nil {
		return nil, fmt.Errorf("analyzer: decode profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("analyzer: incomplete profile: %w", err)
	}
	return &profile, nil
}

// stripFences removes a surrounding markdown code fence that some models add
// despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
