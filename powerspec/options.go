package powerspec

// Config holds pipeline settings.
type Config struct {
	// Workers is the number of goroutines computing per-segment
	// periodograms. 1 keeps the pipeline fully serial; values below 1
	// select one worker per CPU.
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the serial single-pass configuration.
func DefaultConfig() Config {
	return Config{Workers: 1}
}

// WithWorkers sets the number of periodogram workers.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		cfg.Workers = n
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
