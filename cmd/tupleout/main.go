package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config  string `short:"c" default:"tupleout.hcl" env:"TUPLEOUT_CONFIG" help:"HCL config file (optional)"`
	Debug   bool   `env:"TUPLEOUT_DEBUG" help:"Enable debug logging"`
	LogFile string `help:"Write logs to this file instead of stderr"`
	NoColor bool   `help:"Disable colored output"`
}

type CLI struct {
	Globals `embed:""`

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play a match (default command)"`
	Scores  ScoresCmd        `cmd:"" help:"Show the high score table"`
}

// streams carries process I/O so commands can be driven from tests.
type streams struct {
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Getenv func(string) string
}

func newParser(cli *CLI, opts ...kong.Option) *kong.Kong {
	base := []kong.Option{
		kong.Name("tupleout"),
		kong.Description("Tuple Out: push your luck dice game for two or more players"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	}
	return kong.Must(cli, append(base, opts...)...)
}

func main() {
	var cli CLI
	parser := newParser(&cli)
	ctx, err := parser.Parse(normalizeArgs(os.Args[1:]))
	parser.FatalIfErrorf(err)

	err = ctx.Run(&cli.Globals, &streams{
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    os.Stderr,
		Getenv: os.Getenv,
	})
	ctx.FatalIfErrorf(err)
}
