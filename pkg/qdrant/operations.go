package qdrant

import (
	"context"
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"
)

const defaultBatchSize = 200 // chunk size for batch inserts

// EmbeddingInput is one vector to store, with its payload metadata.
// ID must be a UUID or an unsigned integer in string form (Qdrant rule).
type EmbeddingInput struct {
	ID     string
	Vector []float32
	Meta   map[string]any
}

// SearchResult is one ranked hit from a similarity search. Meta carries the
// string-valued payload fields (template name and friends).
type SearchResult struct {
	ID    string
	Score float32
	Meta  map[string]string
}

// EnsureCollection verifies the configured collection exists and creates it
// if missing, using the configured vector size and cosine distance. Safe to
// call multiple times.
func (c *Client) EnsureCollection(ctx context.Context) error {
	name := c.cfg.Collection
	if name == "" {
		return fmt.Errorf("collection name cannot be empty")
	}

	exists, err := c.api.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("qdrant: failed to check collection: %w", err)
	}
	if exists {
		return nil
	}

	c.logger.Info("creating qdrant collection", nil, map[string]interface{}{
		"collection":  name,
		"vector_size": c.cfg.VectorSize,
	})

	req := &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     c.cfg.VectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	}
	if err := c.api.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("qdrant: failed to create collection %q: %w", name, err)
	}
	return nil
}

// Insert adds a single embedding. Reuses the batch path so payload handling
// stays in one place.
func (c *Client) Insert(ctx context.Context, input EmbeddingInput) error {
	return c.BatchInsert(ctx, []EmbeddingInput{input})
}

// BatchInsert upserts embeddings in chunks of defaultBatchSize to bound
// request size when seeding large catalogs.
func (c *Client) BatchInsert(ctx context.Context, inputs []EmbeddingInput) error {
	if len(inputs) == 0 {
		return nil
	}

	for start := 0; start < len(inputs); start += defaultBatchSize {
		end := min(start+defaultBatchSize, len(inputs))
		if err := c.upsertBatch(ctx, inputs[start:end]); err != nil {
			return fmt.Errorf("qdrant: batch upsert failed at [%d:%d]: %w", start, end, err)
		}
		c.logger.Debug("inserted batch", nil, map[string]interface{}{
			"from":       start,
			"to":         end,
			"collection": c.cfg.Collection,
		})
	}
	return nil
}

func (c *Client) upsertBatch(ctx context.Context, batch []EmbeddingInput) error {
	points := make([]*qdrant.PointStruct, 0, len(batch))
	for _, e := range batch {
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(e.ID),
			Vectors: qdrant.NewVectors(e.Vector...),
			Payload: qdrant.NewValueMap(e.Meta),
		})
	}

	wait := true
	req := &qdrant.UpsertPoints{
		CollectionName: c.cfg.Collection,
		Points:         points,
		Wait:           &wait,
	}

	if _, err := c.api.Upsert(ctx, req); err != nil {
		return fmt.Errorf("upsert failed: %w", err)
	}
	return nil
}

// Search performs a similarity search in the configured collection and
// returns the topK nearest hits in index-ranked order.
func (c *Client) Search(ctx context.Context, vector []float32, topK int) ([]SearchResult, error) {
	limit := uint64(topK)
	req := &qdrant.QueryPoints{
		CollectionName: c.cfg.Collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	}

	resp, err := c.api.Query(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("qdrant: search failed: %w", err)
	}

	results := make([]SearchResult, 0, len(resp))
	for _, r := range resp {
		var id string
		switch v := r.Id.PointIdOptions.(type) {
		case *qdrant.PointId_Num:
			id = fmt.Sprintf("%d", v.Num)
		case *qdrant.PointId_Uuid:
			id = v.Uuid
		default:
			return nil, fmt.Errorf("qdrant: unexpected PointId type: %T", v)
		}

		meta := make(map[string]string, len(r.Payload))
		for k, v := range r.Payload {
			if s := v.GetStringValue(); s != "" {
				meta[k] = s
			}
		}

		results = append(results, SearchResult{
			ID:    id,
			Score: r.Score,
			Meta:  meta,
		})
	}

	return results, nil
}

// Count returns the number of points in the configured collection.
// The seeder uses it to decide whether a re-seed is needed.
func (c *Client) Count(ctx context.Context) (uint64, error) {
	exact := true
	n, err := c.api.Count(ctx, &qdrant.CountPoints{
		CollectionName: c.cfg.Collection,
		Exact:          &exact,
	})
	if err != nil {
		return 0, fmt.Errorf("qdrant: count failed: %w", err)
	}
	return n, nil
}
