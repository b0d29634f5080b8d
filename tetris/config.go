package tetris

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by NewEngine for unusable configurations.
var ErrInvalidConfig = errors.New("tetris: invalid config")

// Config holds the well geometry and fall pacing.
type Config struct {
	Cols, Rows int
	// BlockSize is the edge length of one cell in surface pixels.
	BlockSize int

	InitialInterval time.Duration
	// IntervalStep is subtracted from the fall interval for every level above 1.
	IntervalStep time.Duration
	MinInterval  time.Duration
}

// DefaultConfig returns the standard 10x20 well at one row per second.
func DefaultConfig() Config {
	return Config{
		Cols:            10,
		Rows:            20,
		BlockSize:       30,
		InitialInterval: time.Second,
		IntervalStep:    100 * time.Millisecond,
		MinInterval:     100 * time.Millisecond,
	}
}

// Validate reports the first problem with c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Cols < 4 || c.Rows < 4:
		return fmt.Errorf("%w: well %dx%d is smaller than the I piece", ErrInvalidConfig, c.Cols, c.Rows)
	case c.BlockSize <= 0:
		return fmt.Errorf("%w: block size %d", ErrInvalidConfig, c.BlockSize)
	case c.MinInterval <= 0:
		return fmt.Errorf("%w: minimum interval %s", ErrInvalidConfig, c.MinInterval)
	case c.InitialInterval < c.MinInterval:
		return fmt.Errorf("%w: initial interval %s below minimum %s", ErrInvalidConfig, c.InitialInterval, c.MinInterval)
	case c.IntervalStep < 0:
		return fmt.Errorf("%w: negative interval step", ErrInvalidConfig)
	}
	return nil
}

// IntervalForLevel returns the fall interval at the given level.
func (c Config) IntervalForLevel(level int) time.Duration {
	return max(c.MinInterval, c.InitialInterval-time.Duration(level-1)*c.IntervalStep)
}
