package snake

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by NewEngine for unusable configurations.
var ErrInvalidConfig = errors.New("snake: invalid config")

// Config holds the board geometry and pacing of a Snake game.
type Config struct {
	Cols, Rows int
	// BlockSize is the edge length of one grid cell in surface pixels.
	BlockSize int

	InitialInterval time.Duration
	IntervalStep    time.Duration
	MinInterval     time.Duration
	// MaxInterval bounds manual speed changes made through SetInterval.
	MaxInterval time.Duration

	FoodReward int

	// EagerSteer applies a buffered direction immediately when more than 30%
	// of the interval has passed since the last tick, instead of waiting for
	// the next tick.
	EagerSteer bool
}

// DefaultConfig returns the classic 20x20 board at 150ms per tick.
func DefaultConfig() Config {
	return Config{
		Cols:            20,
		Rows:            20,
		BlockSize:       15,
		InitialInterval: 150 * time.Millisecond,
		IntervalStep:    5 * time.Millisecond,
		MinInterval:     50 * time.Millisecond,
		MaxInterval:     250 * time.Millisecond,
		FoodReward:      10,
	}
}

// Validate reports the first problem with c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Cols < 4 || c.Rows < 1:
		return fmt.Errorf("%w: grid %dx%d cannot hold the starting body", ErrInvalidConfig, c.Cols, c.Rows)
	case c.BlockSize <= 0:
		return fmt.Errorf("%w: block size %d", ErrInvalidConfig, c.BlockSize)
	case c.MinInterval <= 0:
		return fmt.Errorf("%w: minimum interval %s", ErrInvalidConfig, c.MinInterval)
	case c.InitialInterval < c.MinInterval:
		return fmt.Errorf("%w: initial interval %s below minimum %s", ErrInvalidConfig, c.InitialInterval, c.MinInterval)
	case c.MaxInterval < c.InitialInterval:
		return fmt.Errorf("%w: maximum interval %s below initial %s", ErrInvalidConfig, c.MaxInterval, c.InitialInterval)
	case c.IntervalStep < 0 || c.FoodReward < 0:
		return fmt.Errorf("%w: negative step or reward", ErrInvalidConfig)
	}
	return nil
}

// SpeedLabel names the pace of a tick interval.
func SpeedLabel(d time.Duration) string {
	switch {
	case d <= 70*time.Millisecond:
		return "fastest"
	case d <= 110*time.Millisecond:
		return "fast"
	case d <= 170*time.Millisecond:
		return "medium"
	case d <= 230*time.Millisecond:
		return "slow"
	default:
		return "slowest"
	}
}
