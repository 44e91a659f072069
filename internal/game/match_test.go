package game

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/tupleout/internal/dice"
	"github.com/lox/tupleout/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	calls     []Standing
	newRecord bool
	err       error
}

func (f *fakeRecorder) RecordIfHigher(player string, score int) (bool, error) {
	f.calls = append(f.calls, Standing{Player: player, Score: score})
	return f.newRecord, f.err
}

func TestMatchConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  MatchConfig
		err  error
	}{
		{"valid", MatchConfig{Players: []string{"A", "B"}, Target: 50}, nil},
		{"one player", MatchConfig{Players: []string{"A"}, Target: 50}, ErrTooFewPlayers},
		{"zero target", MatchConfig{Players: []string{"A", "B"}, Target: 0}, ErrInvalidTarget},
		{"negative target", MatchConfig{Players: []string{"A", "B"}, Target: -5}, ErrInvalidTarget},
		{"duplicate", MatchConfig{Players: []string{"A", "B", "A"}, Target: 50}, ErrDuplicatePlayer},
		{"blank", MatchConfig{Players: []string{"A", "  "}, Target: 50}, ErrEmptyPlayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMatchWinnerEndsRoundImmediately(t *testing.T) {
	clock := quartz.NewMock(t)
	rec := &fakeRecorder{newRecord: true}
	decider := NewScriptedDecider(Stop)

	m, roller, events, err := NewTestMatch(clock, 20, []string{"A", "B"},
		[][]dice.Die{d(4, 4, 6)}, decider, WithRecorder(rec))
	require.NoError(t, err)

	result, err := m.Run(nil)
	require.NoError(t, err)

	assert.Equal(t, "A", result.Winner)
	assert.Equal(t, 22, result.Score)
	assert.Equal(t, map[string]int{"A": 22, "B": 0}, result.Scores)
	assert.Equal(t, 1, result.Turns)
	assert.Equal(t, 1, result.Rounds)
	assert.True(t, result.NewRecord)
	assert.Equal(t, 0, roller.Remaining())

	for _, ev := range events.OfType(EventTypeTurnStart) {
		assert.NotEqual(t, "B", ev.(TurnStartEvent).Player, "B must not get a turn")
	}
	assert.Equal(t, []Standing{{"A", 22}}, rec.calls)

	won := events.OfType(EventTypeMatchWon)
	require.Len(t, won, 1)
	assert.True(t, won[0].(MatchWonEvent).NewRecord)
}

func TestMatchAccumulatesAcrossRounds(t *testing.T) {
	clock := quartz.NewMock(t)
	rolls := [][]dice.Die{
		d(1, 2, 3), // A stops on 6
		d(5, 5, 5), // B tuples out
		d(1, 1, 2), // A stops on 6 → 12
	}
	m, _, events, err := NewTestMatch(clock, 10, []string{"A", "B"}, rolls, NewScriptedDecider(Stop, Stop))
	require.NoError(t, err)

	result, err := m.Run(nil)
	require.NoError(t, err)
	assert.Equal(t, "A", result.Winner)
	assert.Equal(t, []Standing{{"A", 12}, {"B", 0}}, result.Standings)
	assert.Equal(t, 3, result.Turns)
	assert.Equal(t, 2, result.Rounds)

	updates := events.OfType(EventTypeScoresUpdated)
	require.Len(t, updates, 3)
	assert.Equal(t, []Standing{{"A", 6}, {"B", 0}}, updates[0].(ScoresUpdatedEvent).Standings)
	assert.Equal(t, 0, updates[1].(ScoresUpdatedEvent).Points)
	assert.Equal(t, Standing{"A", 6}, updates[1].(ScoresUpdatedEvent).Leader)
}

func TestMatchLaterPlayerCanWin(t *testing.T) {
	clock := quartz.NewMock(t)
	rolls := [][]dice.Die{
		d(1, 2, 4), // A: 7
		d(6, 6, 5), // B: 17 + 12 = 29
	}
	m, _, _, err := NewTestMatch(clock, 25, []string{"A", "B", "C"}, rolls, NewScriptedDecider(Stop, Stop))
	require.NoError(t, err)

	result, err := m.Run(nil)
	require.NoError(t, err)
	assert.Equal(t, "B", result.Winner)
	assert.Equal(t, 29, result.Score)
	assert.Equal(t, 0, result.Scores["C"])
}

func TestMatchScoresNeverDecrease(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			bus := NewEventBus()
			last := map[string]int{}
			bus.Subscribe(EventSubscriberFunc(func(ev GameEvent) {
				u, ok := ev.(ScoresUpdatedEvent)
				if !ok {
					return
				}
				for _, s := range u.Standings {
					require.GreaterOrEqual(t, s.Score, last[s.Player])
					last[s.Player] = s.Score
				}
			}))

			roller := dice.NewRandRoller(randutil.New(seed))
			m, err := NewMatch(MatchConfig{Players: []string{"A", "B", "C"}, Target: 50}, roller,
				ThresholdDecider{Threshold: 12}, WithEventBus(bus), WithClock(quartz.NewMock(t)))
			require.NoError(t, err)

			result, err := m.Run(nil)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, result.Score, 50)
			for _, s := range result.Standings {
				if s.Player != result.Winner {
					assert.Less(t, s.Score, 50)
				}
			}
		})
	}
}

func TestMatchPerPlayerDeciders(t *testing.T) {
	clock := quartz.NewMock(t)
	alice := NewScriptedDecider(Stop)
	bob := NewScriptedDecider(Reroll, Stop)

	rolls := [][]dice.Die{d(1, 2, 3), d(3, 3, 1), d(6)}
	m, _, _, err := NewTestMatch(clock, 12, []string{"Alice", "Bob"}, rolls, nil)
	require.NoError(t, err)

	result, err := m.Run(map[string]Decider{"Alice": alice, "Bob": bob})
	require.NoError(t, err)
	assert.Equal(t, "Bob", result.Winner)
	assert.Equal(t, 12, result.Score)
	assert.Equal(t, 1, alice.Calls())
	assert.Equal(t, 2, bob.Calls())
}

func TestMatchRequiresDeciderForEveryPlayer(t *testing.T) {
	m, _, _, err := NewTestMatch(quartz.NewMock(t), 15, []string{"Alice", "Bob"}, nil, nil)
	require.NoError(t, err)

	_, err = m.Run(map[string]Decider{"Alice": NewScriptedDecider()})
	assert.ErrorIs(t, err, ErrNoDecider)
}

func TestMatchDeciderErrorStopsMatch(t *testing.T) {
	m, _, events, err := NewTestMatch(quartz.NewMock(t), 15, []string{"A", "B"},
		[][]dice.Die{d(1, 2, 3)}, NewScriptedDecider())
	require.NoError(t, err)

	_, err = m.Run(nil)
	require.ErrorIs(t, err, ErrScriptExhausted)
	assert.Empty(t, events.OfType(EventTypeMatchWon))

	_, err = m.Run(nil)
	assert.ErrorIs(t, err, ErrMatchFinished)
}

func TestMatchCannotRunTwice(t *testing.T) {
	m, _, _, err := NewTestMatch(quartz.NewMock(t), 5, []string{"A", "B"},
		[][]dice.Die{d(1, 2, 3)}, NewScriptedDecider(Stop))
	require.NoError(t, err)

	_, err = m.Run(nil)
	require.NoError(t, err)
	_, err = m.Run(nil)
	assert.ErrorIs(t, err, ErrMatchFinished)
}

func TestMatchRecorderFailureIsNotFatal(t *testing.T) {
	rec := &fakeRecorder{newRecord: true, err: errors.New("disk full")}
	m, _, _, err := NewTestMatch(quartz.NewMock(t), 5, []string{"A", "B"},
		[][]dice.Die{d(1, 2, 3)}, NewScriptedDecider(Stop), WithRecorder(rec))
	require.NoError(t, err)

	result, err := m.Run(nil)
	require.NoError(t, err)
	assert.Equal(t, "A", result.Winner)
	assert.False(t, result.NewRecord)
	assert.Len(t, rec.calls, 1)
}

func TestMatchTimestampsFromClock(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clock := quartz.NewMock(t)
	start := clock.Now()
	slow := DeciderFunc(func(TurnView) (Decision, error) {
		clock.Advance(90 * time.Second).MustWait(ctx)
		return Stop, nil
	})

	m, _, events, err := NewTestMatch(clock, 5, []string{"A", "B"}, [][]dice.Die{d(1, 2, 3)}, slow)
	require.NoError(t, err)

	result, err := m.Run(nil)
	require.NoError(t, err)
	assert.Equal(t, start, result.StartedAt)
	assert.Equal(t, start.Add(90*time.Second), result.EndedAt)

	won := events.OfType(EventTypeMatchWon)
	require.Len(t, won, 1)
	assert.Equal(t, 90*time.Second, won[0].(MatchWonEvent).Duration)
	assert.Equal(t, result.EndedAt, won[0].Timestamp())
}

func TestNewMatchRejectsInvalidConfig(t *testing.T) {
	_, err := NewMatch(MatchConfig{Players: []string{"solo"}, Target: 50}, dice.NewScriptedRoller(), NewScriptedDecider())
	assert.ErrorIs(t, err, ErrTooFewPlayers)
}
