package feedclient

import (
	"os"
	"strconv"

	"golang.org/x/time/rate"
)

// newDefaultLimiter creates the client rate limiter, with env overrides.
// The defaults are conservative; a reporting run makes a handful of requests
// at most.
func newDefaultLimiter() *rate.Limiter {
	rps := 2.0
	burst := 4
	if v := os.Getenv("POSTPACE_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			rps = f
		}
	}
	if v := os.Getenv("POSTPACE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			burst = n
		}
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}
