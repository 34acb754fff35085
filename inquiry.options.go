package inquiry

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	logger    *zap.Logger
	cacheSize int
	runner    QueryRunner
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		logger:    nil,
		cacheSize: DefaultCacheSize,
		runner:    nil,
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithCacheSize sets the capacity of the engine's template scan cache.
// Default: 128
func WithCacheSize(size int) Option {
	return func(c *engineConfig) {
		if size > 0 {
			c.cacheSize = size
		}
	}
}

// WithRunner sets the external query runner used by Engine.Run.
// Default: a BeanQueryRunner writing to stdout/stderr.
func WithRunner(runner QueryRunner) Option {
	return func(c *engineConfig) {
		c.runner = runner
	}
}
