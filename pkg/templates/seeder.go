package templates

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/musadiqpeerzada/memgen.ai/pkg/embedding"
	"github.com/musadiqpeerzada/memgen.ai/pkg/logger"
	"github.com/musadiqpeerzada/memgen.ai/pkg/qdrant"
)

// Payload fields attached to every indexed template point. Qdrant point IDs
// must be UUIDs, so the memegen template id travels in the payload instead.
const (
	payloadTemplateID = "template_id"
	payloadName       = "name"
	payloadBlank      = "blank"
)

// Seeder populates the template collection from the memegen.link catalog.
type Seeder struct {
	catalog  *Catalog
	embedder *embedding.Client
	db       *qdrant.Client
	logger   *logger.Logger
}

// NewSeeder constructs a catalog seeder.
func NewSeeder(catalog *Catalog, embedder *embedding.Client, db *qdrant.Client, log *logger.Logger) *Seeder {
	return &Seeder{catalog: catalog, embedder: embedder, db: db, logger: log}
}

// Seed ensures the collection exists and indexes the full memegen catalog.
// When force is false and the collection already holds points, seeding is
// skipped so repeated startups stay cheap.
func (s *Seeder) Seed(ctx context.Context, force bool) error {
	if err := s.db.EnsureCollection(ctx); err != nil {
		return fmt.Errorf("seed: ensure collection: %w", err)
	}

	if !force {
		count, err := s.db.Count(ctx)
		if err != nil {
			return fmt.Errorf("seed: count points: %w", err)
		}
		if count > 0 {
			s.logger.Info("template collection already seeded, skipping", nil, map[string]interface{}{
				"collection": s.db.Collection(),
				"points":     count,
			})
			return nil
		}
	}

	catalog, err := s.catalog.FetchTemplates(ctx)
	if err != nil {
		return err
	}
	if len(catalog) == 0 {
		return fmt.Errorf("seed: catalog is empty")
	}

	names := make([]string, len(catalog))
	for i, t := range catalog {
		names[i] = t.Name
	}

	vectors, err := s.embedder.EmbedTexts(ctx, names)
	if err != nil {
		return fmt.Errorf("seed: embed template names: %w", err)
	}

	inputs := make([]qdrant.EmbeddingInput, len(catalog))
	for i, t := range catalog {
		inputs[i] = qdrant.EmbeddingInput{
			ID:     pointID(t.ID),
			Vector: vectors[i],
			Meta: map[string]any{
				payloadTemplateID: t.ID,
				payloadName:       t.Name,
				payloadBlank:      t.Blank,
			},
		}
	}

	if err := s.db.BatchInsert(ctx, inputs); err != nil {
		return fmt.Errorf("seed: insert points: %w", err)
	}

	s.logger.Info("template collection seeded", nil, map[string]interface{}{
		"collection": s.db.Collection(),
		"templates":  len(inputs),
	})
	return nil
}

// pointID derives a stable UUID from a memegen template id so re-seeding
// upserts in place instead of duplicating points.
func pointID(templateID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("memegen:"+templateID)).String()
}
