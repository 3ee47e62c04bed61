package main

import (
	"fmt"
	"io"
	"time"

	"github.com/lox/holdem-buddy/internal/deck"
	"github.com/lox/holdem-buddy/internal/simulator"
	"github.com/lox/holdem-buddy/internal/statistics"
)

type PlayCmd struct {
	Hole      string `arg:"" help:"Two hole cards, e.g. \"10s js\""`
	Community string `arg:"" optional:"" help:"Up to five community cards"`
	Times     *int   `short:"t" placeholder:"N" help:"Number of times to simulate play (default: from config)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	e, err := g.newEnv()
	if err != nil {
		return err
	}
	return c.run(e)
}

func (c *PlayCmd) run(e *env) error {
	hole, err := deck.ParseCards(c.Hole)
	if err != nil {
		return fmt.Errorf("invalid hole cards: %w", err)
	}
	community, err := deck.ParseCards(c.Community)
	if err != nil {
		return fmt.Errorf("invalid community cards: %w", err)
	}

	iterations := e.config.Iterations
	if c.Times != nil {
		iterations = *c.Times
	}

	sim := simulator.New(simulator.Config{
		Iterations: iterations,
		Logger:     e.logger,
	})

	start := e.clock.Now()
	result, err := sim.Run(hole, community, e.rng())
	if err != nil {
		return err
	}
	elapsed := e.clock.Since(start)

	fmt.Fprintf(e.out, "%s\n  %s\n", e.styles.header.Render("Hole cards:"), e.styles.cards.Render(deck.FormatCards(hole)))
	if len(community) > 0 {
		fmt.Fprintf(e.out, "%s\n  %s\n", e.styles.header.Render("Community cards:"), e.styles.cards.Render(deck.FormatCards(community)))
	}
	fmt.Fprintln(e.out)

	c.table(e, fmt.Sprintf("Hand distribution after randomly drawing %d community cards %d times:",
		result.CardsDrawn, result.Iterations), result.Hand)
	c.table(e, fmt.Sprintf("Opponent hand distribution after randomly drawing %d community cards %d times:",
		result.CardsDrawn, result.Iterations), result.Opponent)
	c.table(e, fmt.Sprintf("Outcome distribution after playing against one opponent %d times:",
		result.Iterations), result.Outcome)

	fmt.Fprintln(e.out, e.styles.muted.Render(fmt.Sprintf("%d iterations in %v", result.Iterations, elapsed.Truncate(time.Millisecond))))
	return nil
}

func (c *PlayCmd) table(e *env, title string, counters *statistics.Counters) {
	fmt.Fprintf(e.out, "%s\n\n", e.styles.header.Render(title))
	io.WriteString(e.out, counters.Format())
	fmt.Fprintln(e.out)
}
