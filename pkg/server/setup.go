package server

import (
	"net/http"
)

// NewHTTPServer wraps the route table in a timeout handler so no request can
// hold a worker past the configured deadline.
func NewHTTPServer(s *Server, cfg *Config) *http.Server {
	handler := http.TimeoutHandler(s.Handler(), cfg.RequestTimeout,
		`{"error": "Request timed out. Try again later."}`)
	return &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}
}
