package campaign

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/musadiqpeerzada/memgen.ai/pkg/embedding"
	"github.com/musadiqpeerzada/memgen.ai/pkg/llm"
	"github.com/musadiqpeerzada/memgen.ai/pkg/logger"
	"github.com/musadiqpeerzada/memgen.ai/pkg/models"
)

// maxSuggestedTemplates bounds the candidate list added to the prompt.
const maxSuggestedTemplates = 5

// GenerationError is returned when no valid campaign could be produced after
// all attempts.
type GenerationError struct {
	Business string
	Attempts int
	Last     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate meme campaign for %s after %d attempts: %v", e.Business, e.Attempts, e.Last)
}

func (e *GenerationError) Unwrap() error { return e.Last }

// RetryCounter is notified whenever a generation attempt is retried.
// A Prometheus counter satisfies this.
type RetryCounter interface {
	Inc()
}

// TemplateSuggester provides ranked template candidates for the prompt.
// templates.Index satisfies this.
type TemplateSuggester interface {
	Suggest(ctx context.Context, fields []embedding.Field, limit int) []models.TemplateMatch
}

// Generator turns a business profile into a set of meme concepts.
type Generator struct {
	provider  llm.Provider
	cfg       *Config
	logger    *logger.Logger
	retries   RetryCounter
	suggester TemplateSuggester
}

// NewGenerator constructs a campaign generator. retries and suggester may be
// nil; without a suggester the prompt carries no candidate template list.
func NewGenerator(provider llm.Provider, cfg *Config, log *logger.Logger, retries RetryCounter, suggester TemplateSuggester) *Generator {
	return &Generator{provider: provider, cfg: cfg, logger: log, retries: retries, suggester: suggester}
}

const campaignPrompt = `You are a viral marketing expert who creates memes that actually get shared and saved.
You understand internet culture, current trends, and what makes content relatable to real people.

BUSINESS PROFILE:
Name: %s
Industry: %s

Core Offerings:
%s

Value Propositions:
%s

Target Audience:
%s

Brand Tone: %s

TASK:
Create %d VIRAL-WORTHY meme concept(s) that people will actually want to share, save, and relate to.

CREATIVITY REQUIREMENTS:
1. Research and use CURRENT viral meme templates that are trending and recognizable
2. Connect business value to GENUINE pain points people experience daily
3. Make it ACTUALLY funny or relatable, not corporate-cringe
4. Use language and references your target audience naturally uses
5. Address real problems with humor, not generic business speak
6. Tap into current cultural moments, trending topics, and internet culture
7. Make people think "this is so me" or "I need to send this to my friend"
8. Use authentic generational language (Gen Z slang, millennial references, etc.)
9. Reference current events, social trends, or shared cultural experiences
10. Think like someone who spends time on TikTok, Instagram, Twitter, and Reddit

RELATABILITY CHECKLIST:
- Does this sound like something a real person would say?
- Would someone screenshot this and send it in a group chat?
- Does it acknowledge a real struggle or universal experience?
- Is the humor authentic to the demographic?
- Does it feel timely and current?
- Does it use meme formats people actually recognize and share?
- Would this get engagement (likes, shares, saves) on social media?

FORMAT INSTRUCTIONS:
For each meme:
- Choose a viral, recognizable meme template that fits the message
- Create content that uses the template format correctly
- Connect naturally to business value without being obviously promotional
- Use authentic language that matches the target demographic

FORMAT:
Return a JSON object with a single key "memes" that maps to a JSON array of meme concepts.
Each concept must have these fields:
- "template_name": the specific meme template to use (string)
- "texts": text components to be placed on the meme, ordered as required by the template (array of strings)
- "hashtags": relevant hashtags without the # symbol (array of strings)
- "visual_description": detailed visual instructions for generating the image (string)

Return ONLY the JSON object.`

// Generate asks the model for numMemes concepts, retrying on malformed
// output up to cfg.MaxAttempts times. Concept order follows the model's
// output order.
func (g *Generator) Generate(ctx context.Context, profile *models.BusinessProfile, numMemes int) ([]models.MemeConcept, error) {
	if numMemes < 1 {
		numMemes = 1
	}

	prompt := fmt.Sprintf(campaignPrompt,
		profile.Name,
		profile.Industry,
		bulletList(profile.CoreOfferings),
		bulletList(profile.ValuePropositions),
		bulletList(profile.TargetAudience),
		profile.BrandTone,
		numMemes,
	)
	prompt += g.candidateBlock(ctx, profile)

	g.logger.Info("generating meme concepts", nil, map[string]interface{}{
		"business":  profile.Name,
		"num_memes": numMemes,
		"provider":  g.provider.Name(),
	})

	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		memes, err := g.completeCampaign(ctx, prompt)
		if err == nil {
			g.logger.Info("generated meme concepts", nil, map[string]interface{}{
				"business": profile.Name,
				"count":    len(memes),
			})
			return memes, nil
		}
		lastErr = err
		g.logger.Warn("campaign generation attempt failed", err, map[string]interface{}{
			"business":     profile.Name,
			"provider":     g.provider.Name(),
			"attempt":      attempt,
			"max_attempts": g.cfg.MaxAttempts,
		})
		if attempt < g.cfg.MaxAttempts && g.retries != nil {
			g.retries.Inc()
		}
		if ctx.Err() != nil {
			break
		}
	}

	return nil, &GenerationError{Business: profile.Name, Attempts: g.cfg.MaxAttempts, Last: lastErr}
}

func (g *Generator) completeCampaign(ctx context.Context, prompt string) ([]models.MemeConcept, error) {
	raw, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Prompt:      prompt,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var campaign models.MemeCampaign
	if err := json.Unmarshal([]byte(stripFences(raw)), &campaign); err != nil {
		return nil, fmt.Errorf("campaign: decode response: %w", err)
	}
	if err := campaign.Validate(); err != nil {
		return nil, fmt.Errorf("campaign: invalid response: %w", err)
	}
	return campaign.Memes, nil
}

// candidateBlock appends indexed template candidates retrieved for the
// profile's own content. An empty suggestion list leaves the prompt as-is.
func (g *Generator) candidateBlock(ctx context.Context, profile *models.BusinessProfile) string {
	if g.suggester == nil {
		return ""
	}

	matches := g.suggester.Suggest(ctx, profileFields(profile), maxSuggestedTemplates)
	if len(matches) == 0 {
		return ""
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = "• " + m.Name
	}
	return "\n\nCANDIDATE TEMPLATES (known to be renderable, prefer these when they fit):\n" +
		strings.Join(names, "\n")
}

// profileFields flattens the profile in declaration order for retrieval.
func profileFields(profile *models.BusinessProfile) []embedding.Field {
	return []embedding.Field{
		{Name: "name", Value: profile.Name},
		{Name: "industry", Value: profile.Industry},
		{Name: "core_offerings", Value: strings.Join(profile.CoreOfferings, " ")},
		{Name: "value_propositions", Value: strings.Join(profile.ValuePropositions, " ")},
		{Name: "target_audience", Value: strings.Join(profile.TargetAudience, " ")},
		{Name: "brand_tone", Value: profile.BrandTone},
	}
}

func bulletList(items []string) string {
	bullets := make([]string, len(items))
	for i, item := range items {
		bullets[i] = "• " + item
	}
	return strings.Join(bullets, "\n")
}

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
