package schema

import "errors"

const (
	// MinFlips is the smallest flip count a generation request accepts.
	MinFlips = 1
	// MaxFlips is the largest flip count a generation request accepts.
	MaxFlips = 100000
	// RunLength is the streak length at which a run is counted.
	RunLength = 5
	// DefaultPageLines is the number of table lines shown between pauses.
	DefaultPageLines = 20
)

// SessionConfig defines per-session presentation settings.
type SessionConfig struct {
	// Seed fixes the outcome source seed; 0 seeds from the wall clock.
	Seed        uint64
	PageLines   int
	ClearScreen bool
}

// NormalizeSessionConfig applies defaults and validates the config.
func NormalizeSessionConfig(cfg SessionConfig) (SessionConfig, error) {
	if cfg.PageLines == 0 {
		cfg.PageLines = DefaultPageLines
	}
	if cfg.PageLines < 0 {
		return SessionConfig{}, errors.New("page lines must be positive")
	}
	return cfg, nil
}
