package tracer

import "os"

type Config struct {
	// ServiceName identifies this service in exported traces.
	ServiceName string

	// AppEnv tags spans with the deployment environment.
	AppEnv string

	// EnableExport turns on the OTLP HTTP exporter. The exporter endpoint
	// is picked up from the standard OTEL_EXPORTER_OTLP_* variables.
	EnableExport bool
}

// NewConfig reads tracer settings from the environment.
func NewConfig() Config {
	return Config{
		ServiceName:  getenvDefault("SERVICE_NAME", "memgen-api"),
		AppEnv:       getenvDefault("APP_ENV", "development"),
		EnableExport: os.Getenv("TRACER_ENABLE_EXPORT") == "true",
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
