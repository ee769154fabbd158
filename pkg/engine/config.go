package engine

import (
	"log/slog"
	"time"

	"github.com/Shaloh69/UCRoadWays-sub000/pkg/proximity"
)

// Config holds the tunable thresholds of the engine.
type Config struct {
	Tolerances proximity.Tolerances `yaml:"tolerances" json:"tolerances"`
	// EscalatorLevelStep is how many levels one escalator spans.
	EscalatorLevelStep int `yaml:"escalator_level_step" json:"escalator_level_step"`
}

// DefaultConfig returns the conventional configuration.
func DefaultConfig() Config {
	return Config{
		Tolerances:         proximity.DefaultTolerances(),
		EscalatorLevelStep: 1,
	}
}

// WithDefaults fills zero fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	c.Tolerances = c.Tolerances.WithDefaults()
	if c.EscalatorLevelStep <= 0 {
		c.EscalatorLevelStep = 1
	}
	return c
}

// Recorder receives cache and compute events.
type Recorder interface {
	CacheHit(kind string)
	CacheMiss(kind string)
	Invalidated()
	Computed(kind string, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) CacheHit(string)                {}
func (nopRecorder) CacheMiss(string)               {}
func (nopRecorder) Invalidated()                   {}
func (nopRecorder) Computed(string, time.Duration) {}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the engine configuration. Zero fields take defaults.
func WithConfig(c Config) Option {
	return func(e *Engine) { e.cfg = c.WithDefaults() }
}

// WithLogger sets the logger used for cache events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRecorder sets the metrics sink.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.rec = r
		}
	}
}
