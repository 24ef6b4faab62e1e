package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/musadiqpeerzada/memgen.ai/pkg/embedding"
	"github.com/musadiqpeerzada/memgen.ai/pkg/models"
)

// Renderer turns a meme concept into a stored image and returns its access
// URL. A false second return means the meme could not be rendered; rendering
// degrades per meme, it never fails the whole campaign.
type Renderer interface {
	Render(ctx context.Context, businessName string, concept models.MemeConcept) (string, bool)
	Name() string
}

// TemplateMatcher resolves a concept to the closest indexed meme template.
// templates.Index satisfies this.
type TemplateMatcher interface {
	Match(ctx context.Context, fields []embedding.Field) *models.TemplateMatch
}

// ObjectStore persists rendered images and returns their access URLs.
// storage.Store satisfies this.
type ObjectStore interface {
	Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

// objectKey builds the storage key for a rendered meme. The timestamp keeps
// repeated renders of the same concept from overwriting each other.
func objectKey(businessName, templateName string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.png", businessName, templateName, now.Format("20060102_150405"))
}
