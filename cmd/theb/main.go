package main

import (
	"github.com/alecthomas/kong"

	"github.com/lox/holdem-buddy/internal/config"
)

// version is set by ldflags during build
var version = "dev"

const examples = `Examples:
  theb besthand "qs 2s 3d jh kc"
  theb play "10s js"
  theb play "10s js" "qs 9s 3d"
  theb --seed 42 init`

type Globals struct {
	Seed    *uint64          `help:"Seed for the random number generator (default: from config, else the clock)"`
	Config  string           `type:"path" default:"${config_path}" help:"Path to HCL config file"`
	Debug   bool             `help:"Enable debug logging"`
	NoColor bool             `help:"Disable styled output"`
	Version kong.VersionFlag `short:"v" help:"Show version"`
}

type CLI struct {
	Globals

	Besthand BesthandCmd `cmd:"" help:"Deduce the best hand from a list of cards"`
	Play     PlayCmd     `cmd:"" help:"Simulate play with the given cards and report probable outcomes"`
	Sample   SampleCmd   `cmd:"" help:"Shuffle a deck and classify a random seven card hand"`
	Init     InitCmd     `cmd:"" help:"Write a config file with the default settings"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("theb"),
		kong.Description("An assistant for analyzing Texas Hold'em games.\n\n"+examples),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_path": config.DefaultPath(),
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
