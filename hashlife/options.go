package hashlife

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/xDarkicex/hashlife/internal/intern"
)

// config holds engine-wide construction options, built up by Options.
type config struct {
	bucketCount      int
	metricsEnabled   bool
	registerer       prometheus.Registerer
	reclaimThreshold int
	reclaimInterval  time.Duration
}

func defaultConfig() *config {
	return &config{
		bucketCount:      intern.DefaultBucketCount,
		metricsEnabled:   true,
		registerer:       prometheus.DefaultRegisterer,
		reclaimThreshold: 0, // disabled unless WithReclaim is used
		reclaimInterval:  30 * time.Second,
	}
}

// Option configures an Engine at construction time.
type Option func(*config) error

// WithBucketCount overrides the interner's bucket count (default 196613).
func WithBucketCount(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return ErrInvalidBucket
		}
		c.bucketCount = n
		return nil
	}
}

// WithMetrics enables or disables Prometheus instrumentation.
func WithMetrics(enabled bool) Option {
	return func(c *config) error {
		c.metricsEnabled = enabled
		return nil
	}
}

// WithRegisterer directs Prometheus metrics registration at reg instead of
// the global default registry. Use this when running more than one Engine
// in a single process, since each Engine would otherwise attempt to
// register the same metric names twice.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *config) error {
		if reg == nil {
			return fmt.Errorf("hashlife: registerer must not be nil")
		}
		c.registerer = reg
		return nil
	}
}

// WithReclaim configures the background reclamation monitor: once the
// interner's live-node count reaches threshold, the engine re-runs Start
// against the most recently supplied root on the next tick. The monitor is
// constructed but not running; begin sampling with Engine.Monitor().Start,
// the same explicit lifecycle the host drives for any background loop
// here.
func WithReclaim(threshold int, interval time.Duration) Option {
	return func(c *config) error {
		if threshold <= 0 {
			return fmt.Errorf("hashlife: reclaim threshold must be positive")
		}
		if interval <= 0 {
			return fmt.Errorf("hashlife: reclaim interval must be positive")
		}
		c.reclaimThreshold = threshold
		c.reclaimInterval = interval
		return nil
	}
}
