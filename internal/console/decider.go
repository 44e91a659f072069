package console

import (
	"fmt"

	"github.com/lox/tupleout/internal/game"
)

const (
	choiceReroll = "reroll"
	choiceStop   = "stop"
)

// HumanDecider asks a person at the terminal whether to keep rolling.
// All players in a hot-seat match can share one.
type HumanDecider struct {
	prompter *Prompter
}

func NewHumanDecider(prompter *Prompter) *HumanDecider {
	return &HumanDecider{prompter: prompter}
}

func (h *HumanDecider) Decide(view game.TurnView) (game.Decision, error) {
	prompt := fmt.Sprintf("%s, you have %d this turn. Reroll or stop?", view.Player, view.Total)
	choice, err := h.prompter.Choose(prompt, []string{choiceReroll, choiceStop})
	if err != nil {
		return game.Stop, err
	}
	if choice == choiceReroll {
		return game.Reroll, nil
	}
	return game.Stop, nil
}
