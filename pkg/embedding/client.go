package embedding

import (
	"context"
	"strings"
)

// Client is a thin facade over the Provider that knows how to turn
// structured content into a single query vector.
type Client struct {
	provider Provider
}

// NewClient constructs a Client from an already-instantiated Provider.
func NewClient(p Provider) *Client {
	return &Client{provider: p}
}

// EmbedContent concatenates all non-empty field values, in field order, into
// one text blob and encodes it. Returns (nil, nil) when the content is empty
// after trimming: an absent vector, not an error.
func (c *Client) EmbedContent(ctx context.Context, fields []Field) ([]float32, error) {
	text := joinFields(fields)
	if text == "" {
		return nil, nil
	}

	vectors, err := c.provider.CreateEmbeddings(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedTexts encodes a batch of standalone texts, one vector per text.
// Used by the template seeder.
func (c *Client) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	return c.provider.CreateEmbeddings(ctx, texts)
}

func joinFields(fields []Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		v := strings.TrimSpace(f.Value)
		if v == "" {
			continue
		}
		parts = append(parts, v)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
