package server

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Address the API server listens on.
	Address string

	// RequestTimeout bounds end-to-end request handling. Requests that run
	// longer get a 503.
	RequestTimeout time.Duration
}

// NewConfig reads API server settings from the environment.
func NewConfig() *Config {
	addr := os.Getenv("SERVER_ADDRESS")
	if addr == "" {
		addr = ":8000"
	}
	timeout := 60
	if v := os.Getenv("SERVER_REQUEST_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}
	return &Config{
		Address:        addr,
		RequestTimeout: time.Duration(timeout) * time.Second,
	}
}
