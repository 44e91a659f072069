package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventFormatter(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name     string
		opts     FormattingOptions
		event    GameEvent
		expected string
	}{
		{
			name:     "turn start",
			event:    TurnStartEvent{Player: "Alice", Score: 12, Target: 50, timestamp: now},
			expected: "Alice's turn (score 12/50)",
		},
		{
			name:     "first roll with pair",
			event:    DiceRolledEvent{Player: "Alice", Roll: d(2, 2, 5), Fixed: d(2, 2), Combined: d(2, 2, 5), Total: 13, Rolls: 1, timestamp: now},
			expected: "Alice rolled [2, 2, 5], fixed [2, 2], turn total 13",
		},
		{
			name:     "reroll shows combined set",
			opts:     FormattingOptions{ShowCombined: true},
			event:    DiceRolledEvent{Player: "Alice", Roll: d(6), Fixed: d(2, 2), Combined: d(6, 2, 2), Total: 10, Rolls: 2, timestamp: now},
			expected: "Alice rolled [6] → [6, 2, 2], fixed [2, 2], turn total 10",
		},
		{
			name:     "roll without pair",
			event:    DiceRolledEvent{Player: "Bob", Roll: d(1, 3, 6), Combined: d(1, 3, 6), Total: 10, Rolls: 1, timestamp: now},
			expected: "Bob rolled [1, 3, 6], turn total 10",
		},
		{
			name:     "bust roll omits total",
			event:    DiceRolledEvent{Player: "Bob", Roll: d(4, 4, 4), Combined: d(4, 4, 4), Bust: true, Rolls: 1, timestamp: now},
			expected: "Bob rolled [4, 4, 4]",
		},
		{
			name:     "bust",
			event:    TurnBustEvent{Player: "Bob", Combined: d(4, 4, 4), Tuple: 4, timestamp: now},
			expected: "Tuple out! Three 4s, turn over for Bob with no points",
		},
		{
			name:     "bank from perspective",
			opts:     FormattingOptions{Perspective: "Alice"},
			event:    TurnBankEvent{Player: "Alice", Points: 10, Rolls: 2, timestamp: now},
			expected: "You banked 10 points",
		},
		{
			name:     "standings",
			event:    ScoresUpdatedEvent{Player: "Bob", Standings: []Standing{{"Alice", 10}, {"Bob", 0}}, Leader: Standing{"Alice", 10}, timestamp: now},
			expected: "Scores: Alice: 10, Bob: 0 (Alice leading)",
		},
		{
			name:     "standings before anyone scores",
			event:    ScoresUpdatedEvent{Player: "Alice", Standings: []Standing{{"Alice", 0}, {"Bob", 0}}, Leader: Standing{"Alice", 0}, timestamp: now},
			expected: "Scores: Alice: 0, Bob: 0",
		},
		{
			name:     "match won with record",
			event:    MatchWonEvent{Winner: "Alice", Score: 52, Turns: 9, NewRecord: true, timestamp: now},
			expected: "Alice wins with 52 points after 9 turns! New high score!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewEventFormatter(tt.opts).Format(tt.event))
		})
	}
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	a, b := &EventRecorder{}, &EventRecorder{}
	bus.Subscribe(a)
	bus.Subscribe(b)

	bus.Publish(TurnStartEvent{Player: "Alice"})
	bus.Unsubscribe(a)
	bus.Publish(TurnStartEvent{Player: "Bob"})

	assert.Len(t, a.Events, 1)
	assert.Len(t, b.Events, 2)
	assert.Equal(t, EventTypeTurnStart, b.Events[1].EventType())
	assert.Equal(t, "turn_start", EventTypeTurnStart.String())
}
