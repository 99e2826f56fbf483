package bpevocab

const (
	// DefaultDictionarySize is the upper bound on distinct symbols
	// retained after pruning, unless overridden.
	DefaultDictionarySize = 2048

	// defaultMinimumAppearance is the default value of MinimumAppearance
	// as set by NewConfig.
	defaultMinimumAppearance = 3

	// fallbackMinimumAppearance is used by Train when MinimumAppearance
	// is explicitly unset (nil).
	fallbackMinimumAppearance = 2

	// minimumSequenceLength is the floor below which further merging is
	// not worthwhile.
	minimumSequenceLength = 16
)

// Config holds the tunables for a single-buffer training run.
type Config struct {
	DictionarySize       int
	KeepSingleByteTokens bool
	MinimumAppearance    *int
	UltimateSeparator    *byte
}

// Option configures a Config in place.
type Option func(*Config)

// NewConfig builds a Config with the documented defaults, then applies
// opts left to right.
func NewConfig(opts ...Option) Config {
	minAppearance := defaultMinimumAppearance
	cfg := Config{
		DictionarySize:       DefaultDictionarySize,
		KeepSingleByteTokens: true,
		MinimumAppearance:    &minAppearance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDictionarySize sets the upper bound on distinct symbols retained
// after pruning.
func WithDictionarySize(size int) Option {
	return func(c *Config) {
		c.DictionarySize = size
	}
}

// WithKeepSingleByteTokens controls whether single-byte ids survive
// pruning and appear (possibly at count 0) in the final Dictionary.
func WithKeepSingleByteTokens(keep bool) Option {
	return func(c *Config) {
		c.KeepSingleByteTokens = keep
	}
}

// WithMinimumAppearance sets the minimum pair frequency required to merge.
func WithMinimumAppearance(minimum int) Option {
	return func(c *Config) {
		c.MinimumAppearance = &minimum
	}
}

// WithUnsetMinimumAppearance explicitly unsets MinimumAppearance; Train
// then falls back to fallbackMinimumAppearance.
func WithUnsetMinimumAppearance() Option {
	return func(c *Config) {
		c.MinimumAppearance = nil
	}
}

// WithUltimateSeparator sets a byte that must never appear inside any
// compound symbol.
func WithUltimateSeparator(sep byte) Option {
	return func(c *Config) {
		c.UltimateSeparator = &sep
	}
}

// resolvedMinimumAppearance returns the effective minimum-appearance
// threshold, applying the unset-fallback rule.
func (c Config) resolvedMinimumAppearance() int {
	if c.MinimumAppearance == nil {
		return fallbackMinimumAppearance
	}
	return *c.MinimumAppearance
}
