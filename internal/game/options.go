package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Option configures a TurnEngine or Match during creation.
type Option func(*options)

type options struct {
	bus      EventBus
	clock    quartz.Clock
	logger   *log.Logger
	recorder ScoreRecorder
}

func newOptions(opts []Option) *options {
	cfg := &options{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.bus == nil {
		cfg.bus = NewEventBus()
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	return cfg
}

// WithEventBus publishes turn and match events to bus.
func WithEventBus(bus EventBus) Option {
	return func(o *options) { o.bus = bus }
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock quartz.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRecorder notifies recorder with the winner's final score.
// Only used by Match.
func WithRecorder(recorder ScoreRecorder) Option {
	return func(o *options) { o.recorder = recorder }
}
