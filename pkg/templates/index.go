package templates

import (
	"context"

	"github.com/musadiqpeerzada/memgen.ai/pkg/embedding"
	"github.com/musadiqpeerzada/memgen.ai/pkg/logger"
	"github.com/musadiqpeerzada/memgen.ai/pkg/models"
	"github.com/musadiqpeerzada/memgen.ai/pkg/qdrant"
)

// Index matches structured content against the meme template collection via
// nearest-neighbor search.
type Index struct {
	embedder *embedding.Client
	db       *qdrant.Client
	cfg      *Config
	logger   *logger.Logger
}

// NewIndex constructs the retrieval index over the configured collection.
func NewIndex(embedder *embedding.Client, db *qdrant.Client, cfg *Config, log *logger.Logger) *Index {
	return &Index{embedder: embedder, db: db, cfg: cfg, logger: log}
}

// Match embeds the content fields and returns the top-ranked template, or
// nil when nothing matches. Retrieval failures are logged and converted to
// "no match": template selection degrades, the pipeline never aborts here.
func (i *Index) Match(ctx context.Context, fields []embedding.Field) *models.TemplateMatch {
	vector, err := i.embedder.EmbedContent(ctx, fields)
	if err != nil {
		i.logger.Warn("template retrieval: embedding failed", err, nil)
		return nil
	}
	if vector == nil {
		return nil
	}

	results, err := i.db.Search(ctx, vector, i.cfg.TopK)
	if err != nil {
		i.logger.Warn("template retrieval: search failed", err, map[string]interface{}{
			"collection": i.db.Collection(),
		})
		return nil
	}
	if len(results) == 0 {
		return nil
	}

	// Take the index-reported top hit; equal-scored neighbors keep the
	// order the index returned them in.
	top := results[0]
	id := top.Meta[payloadTemplateID]
	if id == "" {
		id = top.ID
	}
	name := top.Meta[payloadName]
	if name == "" {
		name = id
	}

	i.logger.Debug("template matched", nil, map[string]interface{}{
		"template_id": id,
		"name":        name,
		"score":       top.Score,
	})
	return &models.TemplateMatch{ID: id, Name: name}
}

// Suggest returns up to limit ranked template candidates for the content
// fields. Like Match, failures degrade to an empty result.
func (i *Index) Suggest(ctx context.Context, fields []embedding.Field, limit int) []models.TemplateMatch {
	vector, err := i.embedder.EmbedContent(ctx, fields)
	if err != nil || vector == nil {
		if err != nil {
			i.logger.Warn("template suggestion: embedding failed", err, nil)
		}
		return nil
	}

	results, err := i.db.Search(ctx, vector, limit)
	if err != nil {
		i.logger.Warn("template suggestion: search failed", err, nil)
		return nil
	}

	matches := make([]models.TemplateMatch, 0, len(results))
	for _, r := range results {
		id := r.Meta[payloadTemplateID]
		if id == "" {
			id = r.ID
		}
		name := r.Meta[payloadName]
		if name == "" {
			name = id
		}
		matches = append(matches, models.TemplateMatch{ID: id, Name: name})
	}
	return matches
}
