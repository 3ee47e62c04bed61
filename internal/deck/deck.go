package deck

// Size is the number of cards in a standard deck
const Size = 52

// NewDeck returns a standard 52-card deck in fixed order: suit-major, values
// ascending within each suit.
func NewDeck() [Size]Card {
	var cards [Size]Card
	i := 0
	for _, suit := range AllSuits {
		for _, value := range AllValues {
			cards[i] = NewCard(value, suit)
			i++
		}
	}
	return cards
}

// Residual returns the full deck minus every known card, in deck order.
func Residual(known ...[]Card) []Card {
	var used [Ace + 1][len(AllSuits)]bool
	for _, cards := range known {
		for _, card := range cards {
			if card.Value.IsValid() && int(card.Suit) < len(AllSuits) {
				used[card.Value][card.Suit] = true
			}
		}
	}

	full := NewDeck()
	residual := make([]Card, 0, Size)
	for _, card := range full {
		if !used[card.Value][card.Suit] {
			residual = append(residual, card)
		}
	}
	return residual
}

// Duplicates returns each card that appears more than once, in order of its
// second appearance.
func Duplicates(cards []Card) []Card {
	seen := make(map[Card]int, len(cards))
	var dups []Card
	for _, card := range cards {
		seen[card]++
		if seen[card] == 2 {
			dups = append(dups, card)
		}
	}
	return dups
}

// Pile is a draw pile that cards are popped from the end of. The backing
// buffer is reused across Reset calls.
type Pile struct {
	cards []Card
}

// NewPile creates a pile holding a copy of cards
func NewPile(cards []Card) *Pile {
	p := &Pile{cards: make([]Card, 0, len(cards))}
	p.Reset(cards)
	return p
}

// Reset replaces the pile contents with a copy of cards
func (p *Pile) Reset(cards []Card) {
	p.cards = append(p.cards[:0], cards...)
}

// Cards exposes the remaining cards, bottom first. Callers may reorder them
// in place (e.g. to shuffle) but must not retain the slice across Reset.
func (p *Pile) Cards() []Card {
	return p.cards
}

// Len returns the number of cards left in the pile
func (p *Pile) Len() int {
	return len(p.cards)
}

// Pop removes and returns the top card. Drawing from an empty pile means the
// caller's deck bookkeeping is broken, so it panics.
func (p *Pile) Pop() Card {
	n := len(p.cards)
	if n == 0 {
		panic("deck: pop from empty pile")
	}
	card := p.cards[n-1]
	p.cards = p.cards[:n-1]
	return card
}
