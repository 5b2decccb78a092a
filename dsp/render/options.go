package render

// Option configures a render pass.
type Option func(*config)

type config struct {
	workers     int
	windowReset bool
}

func defaultConfig() config {
	return config{workers: 1}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithWorkers splits the pass into up to n contiguous window ranges that
// render concurrently. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithWindowReset makes every window ramp from zero instead of from the
// previous window's gain. This matches renders made by the legacy decibel
// path, which never carried the gain across windows.
func WithWindowReset(reset bool) Option {
	return func(cfg *config) {
		cfg.windowReset = reset
	}
}
