package server

import (
	"encoding/json"
	"net/http"

	"github.com/musadiqpeerzada/memgen.ai/pkg/logger"
	"github.com/musadiqpeerzada/memgen.ai/pkg/models"
	"github.com/musadiqpeerzada/memgen.ai/pkg/pipeline"
	"github.com/musadiqpeerzada/memgen.ai/pkg/renderer"
)

// Server exposes the meme pipeline over HTTP.
type Server struct {
	pipeline  *pipeline.Pipeline
	extractor pipeline.ProfileExtractor
	generator pipeline.ConceptGenerator
	renderer  renderer.Renderer
	logger    *logger.Logger
}

// NewServer constructs the HTTP API.
func NewServer(p *pipeline.Pipeline, extractor pipeline.ProfileExtractor,
	generator pipeline.ConceptGenerator, r renderer.Renderer, log *logger.Logger) *Server {
	return &Server{
		pipeline:  p,
		extractor: extractor,
		generator: generator,
		renderer:  r,
		logger:    log,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /generate_memes", s.handleGenerateMemes)
	mux.HandleFunc("POST /generate_meme_image", s.handleGenerateMemeImage)
	mux.HandleFunc("POST /campaigns", s.handleCampaigns)
	return mux
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type analyzeRequest struct {
	URL string `json:"url"`
}

// handleAnalyze extracts a business profile from a website.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	profile, err := s.extractor.Extract(r.Context(), req.URL)
	if err != nil {
		s.logger.Error("analyze failed", err, map[string]interface{}{"url": req.URL})
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

type generateMemesRequest struct {
	BusinessProfile models.BusinessProfile `json:"business_profile"`
	NumMemes        int                    `json:"num_memes"`
}

// handleGenerateMemes generates concepts from an already-extracted profile.
func (s *Server) handleGenerateMemes(w http.ResponseWriter, r *http.Request) {
	var req generateMemesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.BusinessProfile.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.NumMemes < 1 {
		req.NumMemes = 1
	}

	memes, err := s.generator.Generate(r.Context(), &req.BusinessProfile, req.NumMemes)
	if err != nil {
		s.logger.Error("meme generation failed", err, map[string]interface{}{
			"business": req.BusinessProfile.Name,
		})
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"memes": memes})
}

type generateMemeImageRequest struct {
	BusinessName string             `json:"business_name"`
	MemeContent  models.MemeConcept `json:"meme_content"`
}

type generateMemeImageResponse struct {
	ImageURL string `json:"image_url,omitempty"`
	Rendered bool   `json:"rendered"`
}

// handleGenerateMemeImage renders a single already-generated concept.
func (s *Server) handleGenerateMemeImage(w http.ResponseWriter, r *http.Request) {
	var req generateMemeImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BusinessName == "" {
		writeError(w, http.StatusBadRequest, "business_name is required")
		return
	}
	if err := req.MemeContent.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	url, ok := s.renderer.Render(r.Context(), req.BusinessName, req.MemeContent)
	writeJSON(w, http.StatusOK, generateMemeImageResponse{ImageURL: url, Rendered: ok})
}

type campaignsRequest struct {
	URL      string `json:"url"`
	NumMemes int    `json:"num_memes"`
}

// handleCampaigns runs the full pipeline: analyze, generate, render.
func (s *Server) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	var req campaignsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}
	if req.NumMemes < 1 {
		req.NumMemes = 1
	}

	result, err := s.pipeline.Run(r.Context(), req.URL, req.NumMemes)
	if err != nil {
		s.logger.Error("campaign failed", err, map[string]interface{}{"url": req.URL})
		status := http.StatusBadGateway
		if !pipeline.IsTerminal(err) {
			status = http.StatusInternalServerError
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
