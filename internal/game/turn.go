package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/tupleout/internal/dice"
)

// DiceInPlay is the size of the combined set on every roll.
const DiceInPlay = 3

const (
	tupleCount = 3
	pairCount  = 2
)

// Resolution is the outcome of resolving one roll against the fixed dice.
type Resolution struct {
	Combined []dice.Die
	Fixed    []dice.Die // fixed dice after this roll; nil on bust
	Tuple    dice.Die   // face that tupled out, zero unless Bust
	Bust     bool
	Total    int // sum(roll) + sum(Fixed); zero on bust
}

// Resolve applies the tuple-out and fixing rules to roll combined with
// fixed. Any face appearing exactly three times busts. Otherwise every face
// appearing exactly twice replaces the fixed dice; with no pair the fixed
// dice carry over unchanged.
func Resolve(fixed, roll []dice.Die) Resolution {
	combined := dice.Combine(roll, fixed)
	counts := dice.Counts(combined)

	for _, d := range combined {
		if counts[d] == tupleCount {
			return Resolution{Combined: combined, Tuple: d, Bust: true}
		}
	}

	var pairs []dice.Die
	seen := make(map[dice.Die]bool, len(counts))
	for _, d := range combined {
		if counts[d] == pairCount && !seen[d] {
			seen[d] = true
			pairs = append(pairs, d, d)
		}
	}

	next := pairs
	if len(pairs) == 0 {
		next = append([]dice.Die(nil), fixed...)
	}

	return Resolution{
		Combined: combined,
		Fixed:    next,
		Total:    dice.Sum(roll) + dice.Sum(next),
	}
}

// TurnResult summarises a finished turn.
type TurnResult struct {
	Player string
	Points int
	Bust   bool
	Rolls  int
	Fixed  []dice.Die // fixed dice when the turn ended
}

// TurnEngine plays single turns against a roll source.
type TurnEngine struct {
	roller dice.Roller
	bus    EventBus
	clock  quartz.Clock
	logger *log.Logger
}

// NewTurnEngine returns an engine drawing dice from roller.
func NewTurnEngine(roller dice.Roller, opts ...Option) *TurnEngine {
	if roller == nil {
		panic("roller is required for turn engine creation")
	}
	cfg := newOptions(opts)
	return &TurnEngine{
		roller: roller,
		bus:    cfg.bus,
		clock:  cfg.clock,
		logger: cfg.logger.WithPrefix("turn"),
	}
}

// Play runs one turn for player, whose cumulative score before the turn is
// score. It loops until the player tuples out or the decider stops. The
// only error is one returned by the decider.
func (e *TurnEngine) Play(player string, score, target int, decider Decider) (TurnResult, error) {
	var fixed []dice.Die
	result := TurnResult{Player: player}

	e.bus.Publish(TurnStartEvent{Player: player, Score: score, Target: target, timestamp: e.clock.Now()})

	for {
		n := DiceInPlay - len(fixed)
		roll := e.roller.Roll(n)
		if len(roll) != n {
			panic(fmt.Sprintf("roller returned %d dice, want %d", len(roll), n))
		}
		result.Rolls++

		res := Resolve(fixed, roll)
		e.bus.Publish(DiceRolledEvent{
			Player:    player,
			Roll:      roll,
			Fixed:     res.Fixed,
			Combined:  res.Combined,
			Total:     res.Total,
			Bust:      res.Bust,
			Rolls:     result.Rolls,
			timestamp: e.clock.Now(),
		})

		if res.Bust {
			e.logger.Debug("Tuple out", "player", player, "combined", res.Combined, "rolls", result.Rolls)
			result.Bust = true
			result.Points = 0
			result.Fixed = nil
			e.bus.Publish(TurnBustEvent{Player: player, Combined: res.Combined, Tuple: res.Tuple, timestamp: e.clock.Now()})
			return result, nil
		}

		fixed = res.Fixed
		e.logger.Debug("Roll resolved", "player", player, "roll", roll, "fixed", fixed, "total", res.Total)

		decision, err := decider.Decide(TurnView{
			Player: player,
			Roll:   roll,
			Fixed:  append([]dice.Die(nil), fixed...),
			Total:  res.Total,
			Rolls:  result.Rolls,
			Score:  score,
			Target: target,
		})
		if err != nil {
			return result, fmt.Errorf("decision for %s: %w", player, err)
		}

		if decision == Stop {
			result.Points = res.Total
			result.Fixed = fixed
			e.logger.Debug("Turn banked", "player", player, "points", res.Total)
			e.bus.Publish(TurnBankEvent{Player: player, Points: res.Total, Rolls: result.Rolls, timestamp: e.clock.Now()})
			return result, nil
		}
	}
}

// PlayTurn plays a single turn with no event bus and returns the points
// earned, zero on a tuple out.
func PlayTurn(player string, target int, roller dice.Roller, decider Decider) (int, error) {
	res, err := NewTurnEngine(roller, WithLogger(log.New(io.Discard))).Play(player, 0, target, decider)
	if err != nil {
		return 0, err
	}
	return res.Points, nil
}
