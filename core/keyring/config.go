package keyring

import (
	"time"

	"golang.org/x/time/rate"
)

// Config paces calls made with stored keys.
type Config struct {
	// Rate is the number of key checks allowed per second.
	Rate float64 `mapstructure:"rate" default:"1"`
	// Burst is the number of checks allowed at once.
	Burst int `mapstructure:"burst" default:"1"`
	// TimeoutSeconds bounds one provider request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Limiter returns the limiter described by c. A non-positive rate does not
// pace calls.
func (c Config) Limiter() *rate.Limiter {
	if c.Rate <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(c.Rate), max(c.Burst, 1))
}

// Timeout returns the per-request timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
