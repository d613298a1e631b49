package recommend

import (
	"errors"
	"fmt"
)

// Config tunes the pipeline.
type Config struct {
	// DefaultCount is used when a request leaves count unset or zero.
	DefaultCount int
	// MaxCount caps the number of recommendations per request.
	MaxCount int
	// Seed fixes the sampling sequence. 0 seeds from the clock.
	Seed int64
}

// DefaultConfig returns three recommendations per request, at most fifty.
func DefaultConfig() Config {
	return Config{DefaultCount: 3, MaxCount: 50}
}

// Validate checks the count bounds.
func (c Config) Validate() error {
	if c.DefaultCount < 1 {
		return errors.New("default count must be at least 1")
	}
	if c.MaxCount < c.DefaultCount {
		return fmt.Errorf("max count %d is below default count %d", c.MaxCount, c.DefaultCount)
	}
	return nil
}
