package templates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// CatalogTemplate is one entry of the memegen.link template catalog.
type CatalogTemplate struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Lines int    `json:"lines"`
	Blank string `json:"blank"`
}

// Catalog fetches the public template list from the memegen.link API.
type Catalog struct {
	baseURL    string
	httpClient *http.Client
}

// NewCatalog constructs a catalog fetcher.
func NewCatalog(cfg *Config) *Catalog {
	return &Catalog{
		baseURL:    strings.TrimRight(cfg.MemegenBaseURL, "/"),
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}
}

// FetchTemplates retrieves the full template catalog.
func (c *Catalog) FetchTemplates(ctx context.Context) ([]CatalogTemplate, error) {
	url := c.baseURL + "/templates"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("templates: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("templates: fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("templates: catalog returned %d", resp.StatusCode)
	}

	var catalog []CatalogTemplate
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("templates: decode catalog: %w", err)
	}
	return catalog, nil
}
