package engine

import "go.uber.org/zap"

// Config holds the tunable parameters recognized by an Engine.
type Config struct {
	// DefaultArenaSize is the initial per-search arena block size, in bytes.
	DefaultArenaSize int

	// MaxMemoryLimit is an advisory upper bound on per-search memory; 0
	// means no limit. The engine does not enforce this bound itself.
	MaxMemoryLimit uint64

	// DefaultTimeoutSeconds is the timeout applied when a planning call
	// does not override it.
	DefaultTimeoutSeconds float64

	// EnableConcurrentExpansion is reserved for a future concurrent
	// expansion mode and has no effect in this engine: expansion is always
	// sequential, per the single-threaded-cooperative scheduling model.
	EnableConcurrentExpansion bool

	// MaxWorkerThreads is reserved alongside EnableConcurrentExpansion and
	// has no effect.
	MaxWorkerThreads int

	// EnableEdgeCaching turns on the EdgeCache. Default false.
	EnableEdgeCaching bool
}

// DefaultConfig returns the engine's default configuration.
func DefaultConfig() Config {
	return Config{
		DefaultArenaSize:      1 << 20,
		MaxMemoryLimit:        0,
		DefaultTimeoutSeconds: 30,
		EnableEdgeCaching:     false,
	}
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger sets the Engine's structured logger. The default is a no-op
// logger, so the engine stays silent unless a caller opts in.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("engine: nil logger")
	}
	return func(e *Engine) { e.logger = l }
}

// WithConfig sets the Engine's full configuration at construction time.
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithDefaultArenaSize overrides the default per-search arena size. Panics
// if size is not positive.
func WithDefaultArenaSize(size int) Option {
	if size <= 0 {
		panic("engine: default arena size must be positive")
	}
	return func(e *Engine) { e.cfg.DefaultArenaSize = size }
}

// WithDefaultTimeoutSeconds overrides the default planning timeout. Panics
// if seconds is negative.
func WithDefaultTimeoutSeconds(seconds float64) Option {
	if seconds < 0 {
		panic("engine: default timeout seconds must be >= 0")
	}
	return func(e *Engine) { e.cfg.DefaultTimeoutSeconds = seconds }
}

// WithEdgeCaching enables or disables the EdgeCache.
func WithEdgeCaching(enabled bool) Option {
	return func(e *Engine) { e.cfg.EnableEdgeCaching = enabled }
}

// WithMaxMemoryLimit sets the advisory per-search memory bound.
func WithMaxMemoryLimit(bytes uint64) Option {
	return func(e *Engine) { e.cfg.MaxMemoryLimit = bytes }
}
