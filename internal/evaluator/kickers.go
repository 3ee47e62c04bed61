package evaluator

import "github.com/lox/holdem-buddy/internal/deck"

// Kickers returns the cards that are not part of the category's defining
// group(s), highest first. They are for display only; Compare does its own
// tie-breaking.
func (h Hand) Kickers(cat Category) []deck.Card {
	used := make([]bool, len(h.cards))

	switch cat.Kind {
	case Straight, StraightFlush, Flush:
		suited := cat.Kind != Straight
		suit, _, hasFlush := h.Flush()
		for _, v := range runValues(cat) {
			for i := len(h.cards) - 1; i >= 0; i-- {
				c := h.cards[i]
				if used[i] || c.Value != v || (suited && hasFlush && c.Suit != suit) {
					continue
				}
				used[i] = true
				break
			}
		}
	default:
		for i, c := range h.cards {
			for _, v := range cat.Values {
				if v != 0 && c.Value == v {
					used[i] = true
					break
				}
			}
		}
	}

	var kickers []deck.Card
	for i := len(h.cards) - 1; i >= 0; i-- {
		if !used[i] {
			kickers = append(kickers, h.cards[i])
		}
	}
	return kickers
}

// runValues lists the five values a straight, straight flush or flush
// category consumes.
func runValues(cat Category) []deck.Value {
	if cat.Kind == Flush {
		return cat.Values[:]
	}

	high := cat.Values[0]
	if high == deck.Five {
		return []deck.Value{deck.Five, deck.Four, deck.Three, deck.Two, deck.Ace}
	}
	values := make([]deck.Value, 0, 5)
	for v := high; v > high-5; v-- {
		values = append(values, v)
	}
	return values
}
