package evaluator

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/lox/holdem-buddy/internal/deck"
)

// MaxCards is the largest hand Texas Hold'em produces: two hole cards plus
// five community cards.
const MaxCards = 7

// ErrTooManyCards is returned by ParseHand for hands above MaxCards.
var ErrTooManyCards = errors.New("too many cards")

// group is a run of cards sharing a value or a suit. Its cards alias the
// hand's own storage.
type group struct {
	value deck.Value
	suit  deck.Suit
	cards []deck.Card
}

// Hand is an immutable set of cards sorted by ascending value, with the
// groupings needed for classification computed once at construction. The zero
// Hand is the empty hand.
type Hand struct {
	cards []deck.Card

	byValue []group // ascending by value
	bySize  []group // ascending by (group size, value)
	bySuit  []group // ascending by (group size, suit)

	best    Category
	hasBest bool
}

// NewHand builds a hand from cards. The input slice is copied.
func NewHand(cards []deck.Card) Hand {
	if len(cards) == 0 {
		return Hand{}
	}

	sorted := slices.Clone(cards)
	slices.SortStableFunc(sorted, deck.Card.Compare)

	h := Hand{cards: sorted}
	h.groupByValue()
	h.groupBySuit()
	h.best = h.findBestCategory()
	h.hasBest = true
	return h
}

// ParseHand parses a whitespace separated card list into a hand.
func ParseHand(s string) (Hand, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	if len(cards) > MaxCards {
		return Hand{}, fmt.Errorf("%w: got %d, at most %d allowed", ErrTooManyCards, len(cards), MaxCards)
	}
	return NewHand(cards), nil
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

func (h *Hand) groupByValue() {
	for start := 0; start < len(h.cards); {
		end := start + 1
		for end < len(h.cards) && h.cards[end].Value == h.cards[start].Value {
			end++
		}
		h.byValue = append(h.byValue, group{
			value: h.cards[start].Value,
			cards: h.cards[start:end:end],
		})
		start = end
	}

	h.bySize = slices.Clone(h.byValue)
	slices.SortFunc(h.bySize, func(a, b group) int {
		if c := cmp.Compare(len(a.cards), len(b.cards)); c != 0 {
			return c
		}
		return cmp.Compare(a.value, b.value)
	})
}

func (h *Hand) groupBySuit() {
	var counts [len(deck.AllSuits)]int
	for _, card := range h.cards {
		counts[card.Suit]++
	}

	// Partition a second copy of the cards by suit, keeping value order
	// within each suit.
	storage := make([]deck.Card, len(h.cards))
	var offsets [len(deck.AllSuits)]int
	next := 0
	for _, suit := range deck.AllSuits {
		offsets[suit] = next
		next += counts[suit]
	}
	fill := offsets
	for _, card := range h.cards {
		storage[fill[card.Suit]] = card
		fill[card.Suit]++
	}

	for _, suit := range deck.AllSuits {
		if counts[suit] == 0 {
			continue
		}
		start, end := offsets[suit], offsets[suit]+counts[suit]
		h.bySuit = append(h.bySuit, group{suit: suit, cards: storage[start:end:end]})
	}
	slices.SortStableFunc(h.bySuit, func(a, b group) int {
		return cmp.Compare(len(a.cards), len(b.cards))
	})
}

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h.cards)
}

// IsEmpty reports whether the hand holds no cards
func (h Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

// Cards returns a copy of the hand's cards in ascending value order
func (h Hand) Cards() []deck.Card {
	return slices.Clone(h.cards)
}

// String joins the cards with ", " in ascending value order
func (h Hand) String() string {
	return deck.FormatCards(h.cards)
}

// HighestValue returns the value of the highest card.
func (h Hand) HighestValue() (deck.Value, bool) {
	if len(h.byValue) == 0 {
		return 0, false
	}
	return h.byValue[len(h.byValue)-1].value, true
}

// FourOfAKind returns the value of the highest four of a kind.
func (h Hand) FourOfAKind() (deck.Value, bool) {
	return h.nOfAKind(4)
}

// ThreeOfAKind returns the value of the highest three of a kind.
func (h Hand) ThreeOfAKind() (deck.Value, bool) {
	return h.nOfAKind(3)
}

// OnePair returns the value of the highest pair.
func (h Hand) OnePair() (deck.Value, bool) {
	return h.nOfAKind(2)
}

// nOfAKind scans the (size, value) grouping from the end, so the first group
// of exactly n cards it meets is the highest valued one.
func (h Hand) nOfAKind(n int) (deck.Value, bool) {
	for i := len(h.bySize) - 1; i >= 0; i-- {
		if len(h.bySize[i].cards) == n {
			return h.bySize[i].value, true
		}
	}
	return 0, false
}

// TwoPair returns the values of the two highest pairs.
func (h Hand) TwoPair() (high, low deck.Value, ok bool) {
	found := 0
	for i := len(h.bySize) - 1; i >= 0 && found < 2; i-- {
		g := h.bySize[i]
		if len(g.cards) != 2 {
			continue
		}
		if found == 0 {
			high = g.value
		} else {
			low = g.value
		}
		found++
	}
	if found < 2 {
		return 0, 0, false
	}
	return high, low, true
}

// FullHouse returns the triplet and pair values of the best full house. When
// the hand holds two triplets the lower one is downgraded to act as the pair.
func (h Hand) FullHouse() (triplet, pair deck.Value, ok bool) {
	triplet, ok = h.nOfAKind(3)
	if !ok {
		return 0, 0, false
	}

	found := false
	for _, g := range h.bySize {
		switch {
		case len(g.cards) == 2:
		case len(g.cards) == 3 && g.value != triplet:
		default:
			continue
		}
		if !found || g.value > pair {
			pair = g.value
			found = true
		}
	}
	if !found {
		return 0, 0, false
	}
	return triplet, pair, true
}

// Flush returns the suit holding five or more cards and its member cards in
// ascending value order. Seven cards can hold at most one such suit.
func (h Hand) Flush() (deck.Suit, []deck.Card, bool) {
	if len(h.bySuit) == 0 {
		return 0, nil, false
	}
	g := h.bySuit[len(h.bySuit)-1]
	if len(g.cards) < 5 {
		return 0, nil, false
	}
	return g.suit, slices.Clone(g.cards), true
}

// Straight returns the top value of the highest straight.
func (h Hand) Straight() (deck.Value, bool) {
	return straightHigh(h.cards)
}

// StraightFlush returns the top value of the highest straight formed by the
// flush cards alone.
func (h Hand) StraightFlush() (deck.Value, bool) {
	if len(h.bySuit) == 0 {
		return 0, false
	}
	g := h.bySuit[len(h.bySuit)-1]
	if len(g.cards) < 5 {
		return 0, false
	}
	return straightHigh(g.cards)
}

// straightHigh scans the distinct values of cards (sorted ascending) from the
// top, counting consecutive values. A run of five yields its top value. A run
// of exactly four that ends at Two, with an Ace present, is the wheel and
// reports Five.
func straightHigh(cards []deck.Card) (deck.Value, bool) {
	if len(cards) == 0 {
		return 0, false
	}

	run := 0
	var prev deck.Value
	for i := len(cards) - 1; i >= 0; i-- {
		v := cards[i].Value
		if run > 0 && v == prev {
			continue
		}
		if run > 0 && prev-v == 1 {
			run++
		} else {
			run = 1
		}
		prev = v
		if run == 5 {
			return v + 4, true
		}
	}

	if run == 4 && prev == deck.Two && cards[len(cards)-1].Value == deck.Ace {
		return deck.Five, true
	}
	return 0, false
}

// BestCategory returns the highest ranked category the hand makes. It is
// false only for the empty hand.
func (h Hand) BestCategory() (Category, bool) {
	return h.best, h.hasBest
}

func (h Hand) findBestCategory() Category {
	if v, ok := h.StraightFlush(); ok {
		return NewCategory(StraightFlush, v)
	}
	if v, ok := h.FourOfAKind(); ok {
		return NewCategory(FourOfAKind, v)
	}
	if triplet, pair, ok := h.FullHouse(); ok {
		return NewCategory(FullHouse, triplet, pair)
	}
	if _, cards, ok := h.Flush(); ok {
		var values []deck.Value
		for i := len(cards) - 1; i >= 0 && len(values) < 5; i-- {
			values = append(values, cards[i].Value)
		}
		return NewCategory(Flush, values...)
	}
	if v, ok := h.Straight(); ok {
		return NewCategory(Straight, v)
	}
	if v, ok := h.ThreeOfAKind(); ok {
		return NewCategory(ThreeOfAKind, v)
	}
	if high, low, ok := h.TwoPair(); ok {
		return NewCategory(TwoPair, high, low)
	}
	if v, ok := h.OnePair(); ok {
		return NewCategory(OnePair, v)
	}
	v, _ := h.HighestValue()
	return NewCategory(HighCard, v)
}

// Compare orders two hands for a showdown. It returns -1 if h loses to other,
// 0 for a tie and 1 if h wins. An empty hand loses to any non-empty hand.
// Equal categories are settled by comparing every card from the highest down,
// which resolves kickers.
func (h Hand) Compare(other Hand) int {
	switch {
	case h.IsEmpty() && other.IsEmpty():
		return 0
	case h.IsEmpty():
		return -1
	case other.IsEmpty():
		return 1
	}

	if c := h.best.Compare(other.best); c != 0 {
		return c
	}

	i, j := len(h.cards)-1, len(other.cards)-1
	for ; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if c := h.cards[i].Compare(other.cards[j]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(h.cards), len(other.cards))
}
