package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/drawpoker/internal/randutil"
)

// SessionOption configures a Session during creation.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	random func() float64
	logger *log.Logger
	clock  quartz.Clock
}

func defaultSessionConfig() *sessionConfig {
	return &sessionConfig{
		random: rand.Float64,
		logger: log.New(io.Discard),
		clock:  quartz.NewReal(),
	}
}

// WithRandom sets the random source used to shuffle every deck.
// It must return values in [0, 1).
func WithRandom(random func() float64) SessionOption {
	return func(c *sessionConfig) {
		if random != nil {
			c.random = random
		}
	}
}

// WithSeed makes every shuffle in the session reproducible
func WithSeed(seed int64) SessionOption {
	return func(c *sessionConfig) {
		c.random = randutil.Float64(seed)
	}
}

// WithLogger sets the session logger
func WithLogger(logger *log.Logger) SessionOption {
	return func(c *sessionConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock sets the clock used to time hands
func WithClock(clock quartz.Clock) SessionOption {
	return func(c *sessionConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}
