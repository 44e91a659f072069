package game

import "github.com/lox/tupleout/internal/dice"

// Decision is a player's choice after a roll that did not tuple out.
type Decision int

const (
	Reroll Decision = iota
	Stop
)

func (d Decision) String() string {
	switch d {
	case Reroll:
		return "reroll"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// TurnView is the read-only state of a turn handed to a Decider.
type TurnView struct {
	Player string
	Roll   []dice.Die // dice thrown this roll
	Fixed  []dice.Die // dice held after resolving this roll
	Total  int        // points banked if the player stops now
	Rolls  int        // rolls made so far this turn, including this one
	Score  int        // cumulative score before this turn
	Target int
}

// Decider chooses whether to keep rolling. Implementations may block, for
// example while waiting on console input.
type Decider interface {
	Decide(view TurnView) (Decision, error)
}

// DeciderFunc adapts a function to the Decider interface.
type DeciderFunc func(view TurnView) (Decision, error)

func (f DeciderFunc) Decide(view TurnView) (Decision, error) { return f(view) }
