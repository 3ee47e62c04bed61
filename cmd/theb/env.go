package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-buddy/internal/config"
	"github.com/lox/holdem-buddy/internal/randutil"
)

// env is the resolved runtime shared by every subcommand: flags merged over
// the config file.
type env struct {
	out    io.Writer
	logger *log.Logger
	clock  quartz.Clock
	styles styles
	config *config.Config
	seed   uint64
}

type styles struct {
	header   lipgloss.Style
	cards    lipgloss.Style
	category lipgloss.Style
	muted    lipgloss.Style
}

func newStyles(out io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		cards: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")),
		category: r.NewStyle().
			Foreground(lipgloss.Color("12")),
		muted: r.NewStyle().
			Foreground(lipgloss.Color("8")),
	}
}

func (g *Globals) newEnv() (*env, error) {
	return g.env(os.Stdout, os.Stderr, quartz.NewReal())
}

func (g *Globals) env(out, errOut io.Writer, clock quartz.Clock) (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Level()
	if g.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(errOut, log.Options{Level: level})

	var seed uint64
	switch {
	case g.Seed != nil:
		seed = *g.Seed
	case cfg.Seed != nil:
		seed = *cfg.Seed
	default:
		seed = randutil.SeedFromTime(clock.Now())
	}
	logger.Debug("Resolved settings", "config", g.Config, "seed", seed, "iterations", cfg.Iterations)

	return &env{
		out:    out,
		logger: logger,
		clock:  clock,
		styles: newStyles(out, cfg.ColorEnabled() && !g.NoColor),
		config: cfg,
		seed:   seed,
	}, nil
}

func (e *env) rng() *randutil.LCG {
	return randutil.NewLCG(e.seed)
}
