package main

import (
	"github.com/lox/tupleout/internal/config"
	"github.com/lox/tupleout/internal/console"
	"github.com/lox/tupleout/internal/game"
	"github.com/lox/tupleout/internal/scores"
)

// ScoresCmd prints every recorded best score.
type ScoresCmd struct {
	ScoreFile string `env:"TUPLEOUT_SCORES" help:"High score file"`
}

func (c *ScoresCmd) Run(g *Globals, s *streams) error {
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
	store := scores.NewFileStore(firstNonEmpty(c.ScoreFile, cfg.Scores.File), scores.WithLogger(logger))
	console.NewRenderer(s.Out, game.FormattingOptions{}).HighScores(store.Ranked())
	return nil
}
