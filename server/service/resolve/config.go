package resolve

import "fmt"

// Config holds the pipeline guards.
type Config struct {
	// MaxTextLength caps the input length in runes. Longer input is
	// truncated before resolution.
	MaxTextLength int

	// MaxSeriesEntries caps how many instants a single span may expand to.
	// Spans past the cap fall through to the generic resolver.
	MaxSeriesEntries int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		MaxTextLength:    512,
		MaxSeriesEntries: 31,
	}
}

// ValidateConfig checks configuration bounds.
func ValidateConfig(cfg Config) error {
	if cfg.MaxTextLength < 16 || cfg.MaxTextLength > 10000 {
		return ErrInvalidConfig{Field: "MaxTextLength", Value: cfg.MaxTextLength}
	}
	if cfg.MaxSeriesEntries < 7 || cfg.MaxSeriesEntries > 366 {
		return ErrInvalidConfig{Field: "MaxSeriesEntries", Value: cfg.MaxSeriesEntries}
	}
	return nil
}

// ErrInvalidConfig indicates a configuration field holds an invalid value.
type ErrInvalidConfig struct {
	Field string
	Value interface{}
}

func (e ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid config field '%s': %v", e.Field, e.Value)
}
