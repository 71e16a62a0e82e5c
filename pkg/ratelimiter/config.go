package ratelimiter

import (
	"fmt"
	"time"
)

// Config describes a token bucket. It is loaded from environment variables
// when embedded with an envPrefix, e.g. API_RATE_LIMIT_CAPACITY.
type Config struct {
	Capacity       int           `env:"CAPACITY" envDefault:"60"`      // burst size
	RefillRate     int           `env:"REFILL_RATE" envDefault:"20"`   // tokens added per interval
	RefillInterval time.Duration `env:"REFILL_INTERVAL" envDefault:"1s"`
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result is the state of a bucket after a take.
type Result struct {
	Limit     int
	Remaining int // negative when the request was denied
	ResetAt   time.Time
}

func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long a denied caller should wait, measured from now.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}
