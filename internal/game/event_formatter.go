package game

import (
	"fmt"
	"strings"

	"github.com/lox/tupleout/internal/dice"
)

// FormattingOptions controls how events are rendered as text.
type FormattingOptions struct {
	ShowCombined bool   // include the combined set on each roll
	Perspective  string // player addressed as "You"
}

// EventFormatter renders events as single lines of plain text.
type EventFormatter struct {
	opts FormattingOptions
}

func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

func (ef *EventFormatter) name(player string) string {
	if ef.opts.Perspective != "" && player == ef.opts.Perspective {
		return "You"
	}
	return player
}

// Format dispatches on the event type. Unknown events format to "".
func (ef *EventFormatter) Format(event GameEvent) string {
	switch e := event.(type) {
	case TurnStartEvent:
		return ef.FormatTurnStart(e)
	case DiceRolledEvent:
		return ef.FormatDiceRolled(e)
	case TurnBustEvent:
		return ef.FormatBust(e)
	case TurnBankEvent:
		return ef.FormatBank(e)
	case ScoresUpdatedEvent:
		return ef.FormatScoresUpdated(e)
	case MatchWonEvent:
		return ef.FormatMatchWon(e)
	default:
		return ""
	}
}

func (ef *EventFormatter) FormatTurnStart(e TurnStartEvent) string {
	return fmt.Sprintf("%s's turn (score %d/%d)", ef.name(e.Player), e.Score, e.Target)
}

func (ef *EventFormatter) FormatDiceRolled(e DiceRolledEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s rolled %s", ef.name(e.Player), dice.Format(e.Roll))
	if ef.opts.ShowCombined && len(e.Combined) != len(e.Roll) {
		fmt.Fprintf(&b, " → %s", dice.Format(e.Combined))
	}
	if e.Bust {
		return b.String()
	}
	if len(e.Fixed) > 0 {
		fmt.Fprintf(&b, ", fixed %s", dice.Format(e.Fixed))
	}
	fmt.Fprintf(&b, ", turn total %d", e.Total)
	return b.String()
}

func (ef *EventFormatter) FormatBust(e TurnBustEvent) string {
	return fmt.Sprintf("Tuple out! Three %ds, turn over for %s with no points", int(e.Tuple), ef.name(e.Player))
}

func (ef *EventFormatter) FormatBank(e TurnBankEvent) string {
	return fmt.Sprintf("%s banked %d points", ef.name(e.Player), e.Points)
}

// FormatScoresUpdated renders the standings and, once anyone has scored,
// who is leading.
func (ef *EventFormatter) FormatScoresUpdated(e ScoresUpdatedEvent) string {
	text := ef.FormatStandings(e.Standings)
	if e.Leader.Score > 0 {
		text += fmt.Sprintf(" (%s leading)", ef.name(e.Leader.Player))
	}
	return text
}

// FormatStandings renders "Alice: 12, Bob: 30".
func (ef *EventFormatter) FormatStandings(standings []Standing) string {
	parts := make([]string, len(standings))
	for i, s := range standings {
		parts[i] = fmt.Sprintf("%s: %d", ef.name(s.Player), s.Score)
	}
	return "Scores: " + strings.Join(parts, ", ")
}

func (ef *EventFormatter) FormatMatchWon(e MatchWonEvent) string {
	msg := fmt.Sprintf("%s wins with %d points after %d turns!", ef.name(e.Winner), e.Score, e.Turns)
	if e.NewRecord {
		msg += " New high score!"
	}
	return msg
}
