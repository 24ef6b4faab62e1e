package embedding

import "context"

// Field is one named value of the content being embedded. Fields are
// concatenated in slice order, so callers control join order by declaration
// order; empty values are skipped.
type Field struct {
	Name  string
	Value string
}

// Provider encodes text into fixed-dimensionality vectors.
type Provider interface {
	// CreateEmbeddings encodes each text into one vector (len(texts) >= 1).
	CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}
