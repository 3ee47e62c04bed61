package main

import (
	"fmt"

	"github.com/lox/holdem-buddy/internal/deck"
	"github.com/lox/holdem-buddy/internal/evaluator"
)

type BesthandCmd struct {
	Cards string `arg:"" help:"List of cards, e.g. \"qs 2s 3d jh kc\""`
}

func (c *BesthandCmd) Run(g *Globals) error {
	e, err := g.newEnv()
	if err != nil {
		return err
	}
	return c.run(e)
}

func (c *BesthandCmd) run(e *env) error {
	hand, err := evaluator.ParseHand(c.Cards)
	if err != nil {
		return fmt.Errorf("invalid hand: %w", err)
	}

	cat, ok := hand.BestCategory()
	if !ok {
		fmt.Fprintln(e.out, "The hand you provided is empty.")
		return nil
	}

	fmt.Fprintf(e.out, "%s\n  %s\n", e.styles.header.Render("The best hand for"), e.styles.cards.Render(hand.String()))
	fmt.Fprintf(e.out, "%s\n  %s\n", e.styles.header.Render("is"), e.styles.category.Render(cat.String()))

	if kickers := hand.Kickers(cat); len(kickers) > 0 {
		fmt.Fprintf(e.out, "with kickers\n  %s.\n", deck.FormatCards(kickers))
	} else {
		fmt.Fprintln(e.out, "with no kickers.")
	}
	return nil
}
