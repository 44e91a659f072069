package game

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/tupleout/internal/dice"
)

// ErrScriptExhausted is returned by a ScriptedDecider with no decisions left.
var ErrScriptExhausted = errors.New("scripted decisions exhausted")

// ScriptedDecider replays a fixed list of decisions and records every view
// it was shown.
type ScriptedDecider struct {
	decisions []Decision
	Views     []TurnView
}

func NewScriptedDecider(decisions ...Decision) *ScriptedDecider {
	return &ScriptedDecider{decisions: decisions}
}

func (s *ScriptedDecider) Decide(view TurnView) (Decision, error) {
	if len(s.Views) >= len(s.decisions) {
		return Stop, ErrScriptExhausted
	}
	s.Views = append(s.Views, view)
	return s.decisions[len(s.Views)-1], nil
}

// Calls returns how many times Decide succeeded.
func (s *ScriptedDecider) Calls() int {
	return len(s.Views)
}

// ThresholdDecider stops as soon as the running total reaches Threshold.
type ThresholdDecider struct {
	Threshold int
}

func (d ThresholdDecider) Decide(view TurnView) (Decision, error) {
	if view.Total >= d.Threshold {
		return Stop, nil
	}
	return Reroll, nil
}

// EventRecorder collects every published event in order.
type EventRecorder struct {
	Events []GameEvent
}

func (r *EventRecorder) OnEvent(event GameEvent) {
	r.Events = append(r.Events, event)
}

// OfType returns the recorded events with the given type.
func (r *EventRecorder) OfType(et EventType) []GameEvent {
	var out []GameEvent
	for _, e := range r.Events {
		if e.EventType() == et {
			out = append(out, e)
		}
	}
	return out
}

// NewTestMatch builds a match over a scripted roller with a mock clock,
// a discarded logger and an attached EventRecorder.
func NewTestMatch(clock quartz.Clock, target int, players []string, rolls [][]dice.Die, decider Decider, opts ...Option) (*Match, *dice.ScriptedRoller, *EventRecorder, error) {
	roller := dice.NewScriptedRoller(rolls...)
	bus := NewEventBus()
	rec := &EventRecorder{}
	bus.Subscribe(rec)

	base := []Option{WithEventBus(bus), WithClock(clock), WithLogger(log.New(io.Discard))}
	m, err := NewMatch(MatchConfig{Players: players, Target: target}, roller, decider, append(base, opts...)...)
	return m, roller, rec, err
}
