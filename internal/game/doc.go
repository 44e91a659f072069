// Package game implements the Tuple Out turn engine and match loop.
//
// A turn rolls three dice. When the combined dice show a pair, the pair is
// fixed and only the remaining die is rerolled. Three of a kind "tuples out"
// and the turn scores nothing. After every roll that survives, the player's
// Decider chooses to reroll or stop and bank the running total.
//
// # Basic Usage
//
//	roller := dice.NewRandRoller(randutil.New(seed))
//	m, err := game.NewMatch(game.MatchConfig{
//	    Players: []string{"Alice", "Bob"},
//	    Target:  50,
//	}, roller, decider, game.WithRecorder(store))
//	result, err := m.Run(nil)
//
// # Deterministic Testing
//
// Inject a dice.ScriptedRoller and a ScriptedDecider to replay exact turns:
//
//	roller := dice.NewScriptedRoller([]dice.Die{2, 2, 5}, []dice.Die{6})
//	points, err := game.PlayTurn("Alice", 50, roller, game.NewScriptedDecider(game.Reroll, game.Stop))
//	// points == 10
//
// # Architecture
//
//   - Resolve: pure rule evaluation of one roll against the fixed dice
//   - TurnEngine: drives one turn, publishing events as it goes
//   - Scoreboard: ordered player → score mapping fixed at match start
//   - Match: round-robin coordinator that stops on the first player to
//     reach the target and notifies an optional ScoreRecorder
package game
