package cubeview

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubeview/internal/metrics"
	"github.com/SeamusWaldron/cubeview/internal/palette"
)

// DefaultAnimationDuration is the sweep time of one quarter turn.
const DefaultAnimationDuration = 300 * time.Millisecond

// Option configures Session behavior.
type Option func(*config)

type config struct {
	duration   time.Duration
	logger     zerolog.Logger
	journal    Journal
	metrics    *metrics.Metrics
	palette    *palette.Palette
	localGuess bool
}

func defaultConfig() *config {
	return &config{
		duration:   DefaultAnimationDuration,
		logger:     zerolog.Nop(),
		palette:    palette.Default(),
		localGuess: true,
	}
}

// WithAnimationDuration sets how long one quarter-turn sweep takes.
func WithAnimationDuration(d time.Duration) Option {
	return func(c *config) {
		c.duration = d
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithJournal records every accepted batch.
// Journal errors are logged and never fail the batch.
func WithJournal(j Journal) Option {
	return func(c *config) {
		c.journal = j
	}
}

// WithMetrics reports engine counters to m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithPalette sets the sticker colors.
func WithPalette(p *palette.Palette) Option {
	return func(c *config) {
		if p != nil {
			c.palette = p
		}
	}
}

// WithLocalGuess enables or disables the local permutation model.
// When enabled (default), the first half of a half turn confirmed by a single
// snapshot shows a locally computed state. When disabled, the colors hold
// still until the confirmed snapshot arrives.
func WithLocalGuess(enabled bool) Option {
	return func(c *config) {
		c.localGuess = enabled
	}
}
