package fsmatch

// Config controls compilation behavior.
//
// Example:
//
//	config := fsmatch.DefaultConfig()
//	config.EnablePrefilter = false
//	re, err := fsmatch.CompileWithConfig("[a-c]+", config)
type Config struct {
	// EnablePrefilter enables literal-based input rejection before the
	// machine runs. When false, every Match call drives the state graph.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the minimum length of a literal run used by the
	// prefilter. Shorter runs are ignored (too many false candidates to be
	// worth scanning for).
	// Default: 1
	MinLiteralLen int

	// MaxLiterals caps the number of literal runs handed to the prefilter.
	// Patterns exceeding the cap fall back to the length check alone.
	// Default: 64
	MaxLiterals int
}

// DefaultConfig returns a configuration with sensible defaults: prefilter
// enabled, all literal runs considered, up to 64 runs indexed.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MinLiteralLen:   1,
		MaxLiterals:     64,
	}
}

// Validate checks that the configuration is usable.
// Returns a *ConfigError naming the offending field otherwise.
func (c Config) Validate() error {
	if !c.EnablePrefilter {
		return nil
	}
	if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
		return &ConfigError{
			Field:   "MinLiteralLen",
			Message: "must be between 1 and 64",
		}
	}
	if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
		return &ConfigError{
			Field:   "MaxLiterals",
			Message: "must be between 1 and 1,000",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "fsmatch: invalid config: " + e.Field + ": " + e.Message
}
