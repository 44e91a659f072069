package console

import (
	"fmt"
	"io"

	"github.com/lox/tupleout/internal/game"
	"github.com/lox/tupleout/internal/scores"
)

// Renderer prints game events as they are published.
type Renderer struct {
	out       io.Writer
	formatter *game.EventFormatter
}

func NewRenderer(out io.Writer, opts game.FormattingOptions) *Renderer {
	return &Renderer{out: out, formatter: game.NewEventFormatter(opts)}
}

// OnEvent implements game.EventSubscriber.
func (r *Renderer) OnEvent(event game.GameEvent) {
	text := r.formatter.Format(event)
	if text == "" {
		return
	}

	switch event.(type) {
	case game.TurnStartEvent:
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, TurnStyle.Render(text))
	case game.DiceRolledEvent:
		fmt.Fprintln(r.out, DiceStyle.Render(text))
	case game.TurnBustEvent:
		fmt.Fprintln(r.out, BustStyle.Render(text))
	case game.TurnBankEvent:
		fmt.Fprintln(r.out, BankStyle.Render(text))
	case game.ScoresUpdatedEvent:
		fmt.Fprintln(r.out, InfoStyle.Render(text))
	case game.MatchWonEvent:
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, WinnerStyle.Render(text))
	default:
		fmt.Fprintln(r.out, text)
	}
}

// Title prints the banner.
func (r *Renderer) Title(target int) {
	fmt.Fprintln(r.out, TitleStyle.Render(" ⚀ ⚁ Tuple Out ⚄ ⚅ "))
	fmt.Fprintf(r.out, "First to %d points wins.\n", target)
}

// Notice prints an informational line.
func (r *Renderer) Notice(format string, args ...any) {
	fmt.Fprintln(r.out, InfoStyle.Render(fmt.Sprintf(format, args...)))
}

// HighScores prints a ranked table.
func (r *Renderer) HighScores(entries []scores.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "No high scores yet.")
		return
	}
	fmt.Fprintln(r.out, TitleStyle.Render(" High Scores "))
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Player))
	}
	for i, e := range entries {
		fmt.Fprintf(r.out, "%2d. %-*s %d\n", i+1, width, e.Player, e.Score)
	}
}
