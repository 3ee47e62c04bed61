package main

import (
	"fmt"

	"github.com/lox/holdem-buddy/internal/deck"
	"github.com/lox/holdem-buddy/internal/evaluator"
	"github.com/lox/holdem-buddy/internal/simulator"
)

type SampleCmd struct{}

func (c *SampleCmd) Run(g *Globals) error {
	e, err := g.newEnv()
	if err != nil {
		return err
	}
	return c.run(e)
}

func (c *SampleCmd) run(e *env) error {
	cards := deck.NewDeck()
	e.rng().Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })

	hand := evaluator.NewHand(cards[:simulator.NumTotalCards])
	cat, _ := hand.BestCategory()

	fmt.Fprintf(e.out, "%s\n  %s\n", e.styles.header.Render("Here's a hand:"), e.styles.cards.Render(hand.String()))
	fmt.Fprintf(e.out, "%s\n  %s\n", e.styles.header.Render("Its best category is:"), e.styles.category.Render(cat.String()))
	return nil
}
