package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/holdem-buddy/internal/config"
)

type InitCmd struct {
	Force bool `short:"f" help:"Overwrite an existing config file"`
}

func (c *InitCmd) Run(g *Globals) error {
	return c.run(os.Stdout, g)
}

func (c *InitCmd) run(out io.Writer, g *Globals) error {
	if _, err := os.Stat(g.Config); err == nil && !c.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", g.Config)
	}

	cfg := config.Default()
	if g.Seed != nil {
		cfg.Seed = g.Seed
	}
	if g.NoColor {
		color := false
		cfg.Color = &color
	}
	if g.Debug {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Save(g.Config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(out, "Wrote %s\n", g.Config)
	return nil
}
