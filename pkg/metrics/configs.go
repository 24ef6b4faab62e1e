package metrics

import "os"

// Default address for the metrics server if none is specified.
const DefaultMetricsAddress = ":9090"

type Config struct {
	// Address is where the Prometheus scrape endpoint listens.
	Address string

	// EnableDefaultCollectors registers the built-in Go runtime and
	// process collectors.
	EnableDefaultCollectors bool

	// ServiceName is attached as a common label to every metric.
	ServiceName string
}

// NewConfig reads metrics settings from the environment.
func NewConfig() Config {
	addr := os.Getenv("METRICS_ADDRESS")
	if addr == "" {
		addr = DefaultMetricsAddress
	}
	name := os.Getenv("SERVICE_NAME")
	if name == "" {
		name = "memgen-api"
	}
	return Config{
		Address:                 addr,
		EnableDefaultCollectors: os.Getenv("METRICS_DISABLE_DEFAULT_COLLECTORS") != "true",
		ServiceName:             name,
	}
}
