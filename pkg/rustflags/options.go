package rustflags

import (
	"log/slog"
	"os"
)

// config holds environment lookup configuration.
type config struct {
	lookup func(string) (string, bool)
	logger *slog.Logger
}

// Option configures LookupEnv and FromEnv.
type Option func(*config)

// WithLookup replaces os.LookupEnv.
//
// Useful for tests, or for reading from a captured environment rather than
// the process's own.
func WithLookup(lookup func(string) (string, bool)) Option {
	return func(c *config) {
		c.lookup = lookup
	}
}

// WithLogger sets a logger for debug output about what was read.
//
// Default: logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{
		lookup: os.LookupEnv,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
