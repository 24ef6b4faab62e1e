package logger

import "os"

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

type Config struct {
	// Minimum level emitted. Unrecognized values fall back to INFO.
	Level string

	// ServiceName is attached to every entry as an initial field.
	ServiceName string
}

// NewConfig reads logger settings from the environment.
func NewConfig() Config {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = Info
	}
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "memgen-api"
	}
	return Config{Level: level, ServiceName: service}
}
