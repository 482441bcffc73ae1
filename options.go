package izsieve

import "runtime"

// Config is the configuration surface exposed by the core (spec §6):
// Miller-Rabin strength, worker-process count, the wheel width override,
// and an optional output path for streaming.
type Config struct {
	MRRounds int
	Cores    int
	VX       int // 0 means "choose automatically" (compute_l2_vx)
	Filepath string
	Logger   *Logger
}

// Option configures a Config via functional options, following the same
// pattern used throughout this module for constructor behavior.
type Option func(*Config)

// WithMRRounds sets the Miller-Rabin round count, clamped to [5,50].
func WithMRRounds(n int) Option {
	return func(c *Config) {
		c.MRRounds = clampMRRounds(n)
	}
}

// WithCores sets the requested worker-process count. The range driver
// further clamps this to the detected CPU count and the number of segments.
func WithCores(n int) Option {
	return func(c *Config) {
		c.Cores = n
	}
}

// WithVX overrides the automatically chosen wheel width.
func WithVX(vx int) Option {
	return func(c *Config) {
		c.VX = vx
	}
}

// WithFilepath sets the output sink path for streaming operations.
func WithFilepath(path string) Option {
	return func(c *Config) {
		c.Filepath = path
	}
}

// WithLogger sets the structured logger used by the core. Pass nil to
// disable logging.
func WithLogger(l *Logger) Option {
	return func(c *Config) {
		if l == nil {
			l = NoopLogger()
		}
		c.Logger = l
	}
}

// clampMRRounds bounds the requested Miller-Rabin round count to [5,50].
func clampMRRounds(n int) int {
	if n < 5 {
		return 5
	}
	if n > 50 {
		return 50
	}
	return n
}

// ApplyOptions builds a Config from functional options, applying the
// package defaults first: mr_rounds=25, cores=runtime.NumCPU(), an
// automatically-chosen VX, and a no-op logger.
func ApplyOptions(optFns ...Option) Config {
	c := Config{
		MRRounds: 25,
		Cores:    runtime.NumCPU(),
		VX:       0,
		Logger:   NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&c)
		}
	}
	return c
}

// InputRange mirrors the "Input range" data-model entry of spec §3: the
// interval is [Start, Start+Range-1], Start given as a decimal string.
// rangedriver accepts only intervals whose end is <= 10^12 and rejects
// larger starts.
type InputRange struct {
	Start    string
	Range    uint64
	MRRounds int
	Filepath string
}
