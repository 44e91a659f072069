package game

import "fmt"

// Standing is one player's cumulative score.
type Standing struct {
	Player string
	Score  int
}

// Scoreboard maps each player on a fixed roster to a cumulative score.
// Iteration always follows roster order.
type Scoreboard struct {
	roster []string
	scores map[string]int
}

// NewScoreboard returns a scoreboard with every player at zero. The roster
// is copied.
func NewScoreboard(roster []string) *Scoreboard {
	s := &Scoreboard{
		roster: append([]string(nil), roster...),
		scores: make(map[string]int, len(roster)),
	}
	for _, p := range roster {
		s.scores[p] = 0
	}
	return s
}

// Add credits points to player and returns the new total. Scores never
// decrease.
func (s *Scoreboard) Add(player string, points int) (int, error) {
	current, ok := s.scores[player]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlayer, player)
	}
	if points < 0 {
		return current, fmt.Errorf("%w: %d", ErrNegativePoints, points)
	}
	s.scores[player] = current + points
	return s.scores[player], nil
}

// Score returns player's cumulative score, zero if unknown.
func (s *Scoreboard) Score(player string) int {
	return s.scores[player]
}

// Roster returns the players in turn order.
func (s *Scoreboard) Roster() []string {
	return append([]string(nil), s.roster...)
}

// Standings returns every player's score in roster order.
func (s *Scoreboard) Standings() []Standing {
	out := make([]Standing, len(s.roster))
	for i, p := range s.roster {
		out[i] = Standing{Player: p, Score: s.scores[p]}
	}
	return out
}

// Map returns a copy of the scores keyed by player.
func (s *Scoreboard) Map() map[string]int {
	out := make(map[string]int, len(s.scores))
	for p, v := range s.scores {
		out[p] = v
	}
	return out
}

// AllBelow reports whether every player is strictly below target.
func (s *Scoreboard) AllBelow(target int) bool {
	for _, v := range s.scores {
		if v >= target {
			return false
		}
	}
	return true
}

// Leader returns the highest score, ties going to the earliest player in
// roster order.
func (s *Scoreboard) Leader() Standing {
	var best Standing
	for i, p := range s.roster {
		if v := s.scores[p]; i == 0 || v > best.Score {
			best = Standing{Player: p, Score: v}
		}
	}
	return best
}
