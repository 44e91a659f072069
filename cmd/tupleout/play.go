package main

import (
	"errors"
	"fmt"

	"github.com/lox/tupleout/internal/config"
	"github.com/lox/tupleout/internal/console"
	"github.com/lox/tupleout/internal/dice"
	"github.com/lox/tupleout/internal/game"
	"github.com/lox/tupleout/internal/randutil"
	"github.com/lox/tupleout/internal/scores"
)

// PlayCmd runs one interactive hot-seat match.
type PlayCmd struct {
	Target    string   `arg:"" optional:"" help:"Score needed to win (default 50)"`
	Players   []string `short:"p" name:"player" sep:"none" help:"Player name, repeat once per player"`
	Seed      *int64   `help:"Deterministic RNG seed (optional)"`
	ScoreFile string   `env:"TUPLEOUT_SCORES" help:"High score file"`
	NoRecord  bool     `help:"Do not record the winner's score"`
}

func (c *PlayCmd) Run(g *Globals, s *streams) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}

	logger, closer, err := setupLogger(cfg.Log.Level, g.Debug, firstNonEmpty(g.LogFile, cfg.Log.File), s.Err)
	if err != nil {
		return err
	}
	defer closer.Close()

	console.DisableColor(g.NoColor, s.Getenv)
	renderer := console.NewRenderer(s.Out, game.FormattingOptions{ShowCombined: true})

	target, notice := parseTarget(c.Target, cfg.TargetScore)
	if notice != "" {
		renderer.Notice("%s", notice)
	}

	players := c.Players
	if len(players) == 0 {
		players = cfg.Players
	}

	seed, explicit := randutil.Seed(c.Seed)
	logger.Info("Using seed", "seed", seed, "explicit", explicit)
	roller := dice.NewRandRoller(randutil.New(seed))

	bus := game.NewEventBus()
	bus.Subscribe(renderer)
	opts := []game.Option{game.WithEventBus(bus), game.WithLogger(logger)}

	var store *scores.FileStore
	if !c.NoRecord && !cfg.Scores.Disabled {
		store = scores.NewFileStore(firstNonEmpty(c.ScoreFile, cfg.Scores.File), scores.WithLogger(logger))
		opts = append(opts, game.WithRecorder(store))
	}

	decider := console.NewHumanDecider(console.NewPrompter(s.In, s.Out))
	match, err := game.NewMatch(game.MatchConfig{Players: players, Target: target}, roller, decider, opts...)
	if err != nil {
		return fmt.Errorf("cannot start match: %w", err)
	}

	renderer.Title(target)
	if store != nil {
		showBests(renderer, store, players)
	}

	result, err := match.Run(nil)
	if errors.Is(err, console.ErrInputClosed) {
		logger.Warn("Input closed before the match finished")
		return fmt.Errorf("match abandoned: %w", err)
	}
	if err != nil {
		return err
	}

	logger.Info("Match finished",
		"winner", result.Winner,
		"score", result.Score,
		"turns", result.Turns,
		"duration", result.EndedAt.Sub(result.StartedAt))
	return nil
}

func showBests(r *console.Renderer, store *scores.FileStore, players []string) {
	for _, p := range players {
		if best, ok := store.Best(p); ok {
			r.Notice("%s's best: %d", p, best)
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var _ game.ScoreRecorder = (*scores.FileStore)(nil)
