package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/tupleout/internal/dice"
)

// DefaultTarget is the score that wins a match when none is configured.
const DefaultTarget = 50

const minPlayers = 2

var (
	ErrTooFewPlayers   = errors.New("at least two players are required")
	ErrDuplicatePlayer = errors.New("duplicate player name")
	ErrEmptyPlayer     = errors.New("player name must not be empty")
	ErrInvalidTarget   = errors.New("target score must be positive")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrNegativePoints  = errors.New("points must not be negative")
	ErrMatchFinished   = errors.New("match already finished")
	ErrNoDecider       = errors.New("no decider for player")
)

// ScoreRecorder persists a winner's score when it beats their best.
type ScoreRecorder interface {
	RecordIfHigher(player string, score int) (bool, error)
}

// MatchConfig is the fixed setup of a match.
type MatchConfig struct {
	Players []string
	Target  int
}

// Validate checks the roster and target.
func (c MatchConfig) Validate() error {
	if len(c.Players) < minPlayers {
		return ErrTooFewPlayers
	}
	if c.Target <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTarget, c.Target)
	}
	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if strings.TrimSpace(p) == "" {
			return ErrEmptyPlayer
		}
		if seen[p] {
			return fmt.Errorf("%w: %q", ErrDuplicatePlayer, p)
		}
		seen[p] = true
	}
	return nil
}

// MatchResult describes a finished match.
type MatchResult struct {
	Winner    string
	Score     int
	Scores    map[string]int
	Standings []Standing // roster order
	Turns     int
	Rounds    int
	NewRecord bool
	StartedAt time.Time
	EndedAt   time.Time
}

// Match sequences turns round-robin until a player reaches the target.
type Match struct {
	cfg           MatchConfig
	scoreboard    *Scoreboard
	engine        *TurnEngine
	defaultDecide Decider
	recorder      ScoreRecorder
	bus           EventBus
	clock         quartz.Clock
	logger        *log.Logger
	finished      bool
}

// NewMatch validates cfg and prepares a match. defaultDecider is used for
// any player without an entry in the map passed to Run; it may be nil if
// every player is given one there.
func NewMatch(cfg MatchConfig, roller dice.Roller, defaultDecider Decider, opts ...Option) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	return &Match{
		cfg:           cfg,
		scoreboard:    NewScoreboard(cfg.Players),
		engine:        NewTurnEngine(roller, WithEventBus(o.bus), WithClock(o.clock), WithLogger(o.logger)),
		defaultDecide: defaultDecider,
		recorder:      o.recorder,
		bus:           o.bus,
		clock:         o.clock,
		logger:        o.logger.WithPrefix("match"),
	}, nil
}

// Scoreboard exposes the live scores.
func (m *Match) Scoreboard() *Scoreboard {
	return m.scoreboard
}

// Run plays the match to completion. deciders overrides the default
// decider per player. The match ends the moment a player's score reaches
// the target; players after them in that round do not take a turn.
func (m *Match) Run(deciders map[string]Decider) (*MatchResult, error) {
	if m.finished {
		return nil, ErrMatchFinished
	}

	for _, p := range m.cfg.Players {
		if deciders[p] == nil && m.defaultDecide == nil {
			return nil, fmt.Errorf("%w: %q", ErrNoDecider, p)
		}
	}

	started := m.clock.Now()
	turns, rounds := 0, 0
	m.logger.Info("Starting match", "players", m.cfg.Players, "target", m.cfg.Target)

	for m.scoreboard.AllBelow(m.cfg.Target) {
		rounds++
		for _, player := range m.cfg.Players {
			decider := deciders[player]
			if decider == nil {
				decider = m.defaultDecide
			}

			res, err := m.engine.Play(player, m.scoreboard.Score(player), m.cfg.Target, decider)
			if err != nil {
				m.finished = true
				return nil, fmt.Errorf("round %d: %w", rounds, err)
			}
			turns++

			score, err := m.scoreboard.Add(player, res.Points)
			if err != nil {
				m.finished = true
				return nil, err
			}
			m.logger.Debug("Turn complete", "player", player, "points", res.Points, "bust", res.Bust, "score", score)
			m.bus.Publish(ScoresUpdatedEvent{
				Player:    player,
				Points:    res.Points,
				Standings: m.scoreboard.Standings(),
				Leader:    m.scoreboard.Leader(),
				timestamp: m.clock.Now(),
			})

			if score >= m.cfg.Target {
				return m.finish(player, score, turns, rounds, started), nil
			}
		}
	}

	// Unreachable: scores start at zero and the target is positive.
	m.finished = true
	return nil, fmt.Errorf("match ended without a winner after %d turns", turns)
}

func (m *Match) finish(winner string, score, turns, rounds int, started time.Time) *MatchResult {
	m.finished = true
	ended := m.clock.Now()

	result := &MatchResult{
		Winner:    winner,
		Score:     score,
		Scores:    m.scoreboard.Map(),
		Standings: m.scoreboard.Standings(),
		Turns:     turns,
		Rounds:    rounds,
		StartedAt: started,
		EndedAt:   ended,
	}

	if m.recorder != nil {
		newRecord, err := m.recorder.RecordIfHigher(winner, score)
		if err != nil {
			m.logger.Error("Failed to record high score", "player", winner, "score", score, "error", err)
		} else {
			result.NewRecord = newRecord
		}
	}

	m.logger.Info("Match won", "winner", winner, "score", score, "turns", turns, "rounds", rounds)
	m.bus.Publish(MatchWonEvent{
		Winner:    winner,
		Score:     score,
		Standings: result.Standings,
		NewRecord: result.NewRecord,
		Turns:     turns,
		Duration:  ended.Sub(started),
		timestamp: ended,
	})
	return result
}
