package renderer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/musadiqpeerzada/memgen.ai/pkg/logger"
	"github.com/musadiqpeerzada/memgen.ai/pkg/models"
)

// OpenAIRenderer generates meme images with DALL·E 3 through the OpenAI
// image generation API.
type OpenAIRenderer struct {
	store      ObjectStore
	cfg        *Config
	logger     *logger.Logger
	httpClient *http.Client
	now        func() time.Time
}

// NewOpenAIRenderer constructs the generative-image renderer.
func NewOpenAIRenderer(store ObjectStore, cfg *Config, log *logger.Logger) *OpenAIRenderer {
	return &OpenAIRenderer{
		store:      store,
		cfg:        cfg,
		logger:     log,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
		now:        time.Now,
	}
}

func (r *OpenAIRenderer) Name() string { return GeneratorOpenAI }

type imageGenerationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type imageGenerationResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// Render generates the image and stores it. Failures yield an absent result.
func (r *OpenAIRenderer) Render(ctx context.Context, businessName string, concept models.MemeConcept) (string, bool) {
	data, err := r.generateImage(ctx, imagePrompt(businessName, concept))
	if err != nil {
		r.logger.Error("failed to generate meme image", err, map[string]interface{}{
			"business": businessName,
			"template": concept.TemplateName,
		})
		return "", false
	}

	key := objectKey(businessName, concept.TemplateName, r.now())
	accessURL, err := r.store.Put(ctx, key, data, "image/png")
	if err != nil {
		r.logger.Error("failed to store generated meme", err, map[string]interface{}{
			"business": businessName,
			"object":   key,
		})
		return "", false
	}

	r.logger.Info("meme generated", nil, map[string]interface{}{
		"business": businessName,
		"object":   key,
	})
	return accessURL, true
}

func (r *OpenAIRenderer) generateImage(ctx context.Context, prompt string) ([]byte, error) {
	body, err := json.Marshal(imageGenerationRequest{
		Model:          r.cfg.ImageModel,
		Prompt:         prompt,
		N:              1,
		Size:           r.cfg.ImageSize,
		ResponseFormat: "b64_json",
	})
	if err != nil {
		return nil, err
	}

	url := strings.TrimRight(r.cfg.OpenAIBaseURL, "/") + "/v1/images/generations"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.cfg.OpenAIAPIKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("image generation returned %d", resp.StatusCode)
	}

	var parsed imageGenerationResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode image response: %w", err)
	}
	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("image generation returned no data")
	}
	return base64.StdEncoding.DecodeString(parsed.Data[0].B64JSON)
}

func imagePrompt(businessName string, concept models.MemeConcept) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a high-quality, photorealistic marketing meme for %s:\n\n", businessName)
	fmt.Fprintf(&sb, "Meme template to use: %s\n", concept.TemplateName)
	fmt.Fprintf(&sb, "Visual Description: %s\n\n", concept.VisualDescription)
	sb.WriteString("Text to include:\n")
	for i, text := range concept.Texts {
		fmt.Fprintf(&sb, "- Text %d: %s\n", i+1, text)
	}
	if len(concept.Hashtags) > 0 {
		fmt.Fprintf(&sb, "\nHashtags: %s\n", strings.Join(concept.Hashtags, " "))
	}
	return sb.String()
}
