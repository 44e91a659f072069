// Package config loads game settings from an optional HCL file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is read when it exists and no other file is named.
const DefaultFile = "tupleout.hcl"

// Config is the complete game configuration.
//
//	target_score = 50
//	players      = ["Alice", "Bob"]
//
//	scores {
//	  file = "high_scores.json"
//	}
//
//	log {
//	  level = "warn"
//	  file  = "tupleout.log"
//	}
type Config struct {
	TargetScore int            `hcl:"target_score,optional"`
	Players     []string       `hcl:"players,optional"`
	Scores      *ScoreSettings `hcl:"scores,block"`
	Log         *LogSettings   `hcl:"log,block"`
}

// ScoreSettings configures the high-score store.
type ScoreSettings struct {
	File     string `hcl:"file,optional"`
	Disabled bool   `hcl:"disabled,optional"`
}

// LogSettings configures diagnostic logging.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TargetScore: 50,
		Players:     []string{"Player 1", "Player 2"},
		Scores: &ScoreSettings{
			File: "high_scores.json",
		},
		Log: &LogSettings{
			Level: "warn",
		},
	}
}

// Load reads filename. A missing file yields Default(); fields left unset
// in the file are filled from Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.TargetScore == 0 {
		c.TargetScore = defaults.TargetScore
	}
	if len(c.Players) == 0 {
		c.Players = defaults.Players
	}
	if c.Scores == nil {
		c.Scores = defaults.Scores
	} else if c.Scores.File == "" {
		c.Scores.File = defaults.Scores.File
	}
	if c.Log == nil {
		c.Log = defaults.Log
	} else if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if c.TargetScore < 0 {
		return fmt.Errorf("target_score must be positive, got %d", c.TargetScore)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
