// Package console adapts the game to a line-oriented terminal: prompting
// for decisions and rendering game events.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned when input ends before a valid answer.
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Choose asks until the answer matches one of choices, ignoring case and
// surrounding space, and returns the matching choice as written in choices.
func (p *Prompter) Choose(prompt string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", errors.New("no choices offered")
	}
	for {
		fmt.Fprintf(p.out, "%s (%s): ", prompt, strings.Join(choices, "/"))

		line, err := p.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if answer != "" {
			for _, c := range choices {
				if strings.EqualFold(answer, c) {
					return c, nil
				}
			}
		}

		if err != nil {
			fmt.Fprintln(p.out)
			if errors.Is(err, io.EOF) {
				return "", ErrInputClosed
			}
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		fmt.Fprintln(p.out, WarningStyle.Render(fmt.Sprintf("Invalid choice %q. Please enter %s.", answer, strings.Join(choices, " or "))))
	}
}
