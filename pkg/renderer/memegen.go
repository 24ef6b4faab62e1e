package renderer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/musadiqpeerzada/memgen.ai/pkg/embedding"
	"github.com/musadiqpeerzada/memgen.ai/pkg/logger"
	"github.com/musadiqpeerzada/memgen.ai/pkg/models"
)

// MemegenRenderer renders concepts through the memegen.link template API,
// picking the closest indexed template for each concept.
type MemegenRenderer struct {
	index      TemplateMatcher
	store      ObjectStore
	cfg        *Config
	logger     *logger.Logger
	httpClient *http.Client
	now        func() time.Time
}

// NewMemegenRenderer constructs the template-API renderer.
func NewMemegenRenderer(index TemplateMatcher, store ObjectStore, cfg *Config, log *logger.Logger) *MemegenRenderer {
	return &MemegenRenderer{
		index:      index,
		store:      store,
		cfg:        cfg,
		logger:     log,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
		now:        time.Now,
	}
}

func (r *MemegenRenderer) Name() string { return GeneratorMemegen }

// Render matches the concept against the template index, fetches the
// captioned image and stores it. Any failure along the way yields an absent
// result rather than an error.
func (r *MemegenRenderer) Render(ctx context.Context, businessName string, concept models.MemeConcept) (string, bool) {
	match := r.index.Match(ctx, conceptFields(concept))
	if match == nil {
		r.logger.Warn("no related template found", nil, map[string]interface{}{
			"business": businessName,
			"template": concept.TemplateName,
		})
		return "", false
	}

	imageURL := fmt.Sprintf("%s/images/%s/%s.png",
		strings.TrimRight(r.cfg.MemegenBaseURL, "/"), match.ID, captionPath(concept.Texts))

	data, err := r.fetchImage(ctx, imageURL)
	if err != nil {
		r.logger.Error("failed to fetch rendered meme", err, map[string]interface{}{
			"business": businessName,
			"template": match.ID,
		})
		return "", false
	}

	key := objectKey(businessName, concept.TemplateName, r.now())
	accessURL, err := r.store.Put(ctx, key, data, "image/png")
	if err != nil {
		r.logger.Error("failed to store rendered meme", err, map[string]interface{}{
			"business": businessName,
			"object":   key,
		})
		return "", false
	}

	r.logger.Info("meme rendered", nil, map[string]interface{}{
		"business": businessName,
		"template": match.ID,
		"object":   key,
	})
	return accessURL, true
}

func (r *MemegenRenderer) fetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("memegen returned %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// conceptFields assembles the retrieval query in a fixed order so equal
// concepts always embed identically.
func conceptFields(concept models.MemeConcept) []embedding.Field {
	return []embedding.Field{
		{Name: "template_name", Value: concept.TemplateName},
		{Name: "texts", Value: strings.Join(concept.Texts, " ")},
		{Name: "visual_description", Value: concept.VisualDescription},
	}
}
