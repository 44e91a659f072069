package dice

import "fmt"

// ScriptedRoller replays a fixed sequence of rolls. It panics if the script
// runs out or a scripted roll has the wrong number of dice, since either
// means the calling test is wrong.
type ScriptedRoller struct {
	rolls [][]Die
	calls int
}

// NewScriptedRoller returns a roller that yields rolls in order.
func NewScriptedRoller(rolls ...[]Die) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

func (s *ScriptedRoller) Roll(n int) []Die {
	if s.calls >= len(s.rolls) {
		panic(fmt.Sprintf("dice: scripted roller exhausted after %d rolls", s.calls))
	}
	roll := s.rolls[s.calls]
	if len(roll) != n {
		panic(fmt.Sprintf("dice: scripted roll %d has %d dice, engine asked for %d", s.calls, len(roll), n))
	}
	s.calls++
	out := make([]Die, n)
	copy(out, roll)
	return out
}

// Calls returns how many rolls have been consumed.
func (s *ScriptedRoller) Calls() int {
	return s.calls
}

// Remaining returns how many scripted rolls are left.
func (s *ScriptedRoller) Remaining() int {
	return len(s.rolls) - s.calls
}
