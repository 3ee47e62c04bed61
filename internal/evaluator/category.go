package evaluator

import (
	"strings"

	"github.com/lox/holdem-buddy/internal/deck"
)

// Kind enumerates the poker hand categories ordered from weakest to strongest.
// The order is the poker hand ranking and must not change.
type Kind uint8

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// AllKinds lists every kind from strongest to weakest.
var AllKinds = [...]Kind{
	StraightFlush, FourOfAKind, FullHouse, Flush, Straight,
	ThreeOfAKind, TwoPair, OnePair, HighCard,
}

// String returns the label used when tallying categories
func (k Kind) String() string {
	switch k {
	case HighCard:
		return "High card"
	case OnePair:
		return "One pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	default:
		return "Unknown"
	}
}

// Category is a hand category together with the values that rank it against
// another category of the same kind, most significant first:
//
//	HighCard, OnePair, ThreeOfAKind, FourOfAKind: the group value
//	TwoPair: higher pair, lower pair
//	Straight, StraightFlush: the top card of the run (Five for the wheel)
//	Flush: the five highest flush values, descending
//	FullHouse: triplet value, pair value
//
// Unused trailing values are zero.
type Category struct {
	Kind   Kind
	Values [5]deck.Value
}

// NewCategory builds a category of the given kind from its ranking values.
// Values beyond the fifth are ignored.
func NewCategory(kind Kind, values ...deck.Value) Category {
	c := Category{Kind: kind}
	copy(c.Values[:], values)
	return c
}

// Compare returns -1 if c ranks below other, 0 if they are equal and 1 if c
// ranks above.
func (c Category) Compare(other Category) int {
	if c.Kind != other.Kind {
		if c.Kind < other.Kind {
			return -1
		}
		return 1
	}
	for i := range c.Values {
		if c.Values[i] < other.Values[i] {
			return -1
		}
		if c.Values[i] > other.Values[i] {
			return 1
		}
	}
	return 0
}

// Label returns the category's kind label, e.g. "Full house"
func (c Category) Label() string {
	return c.Kind.String()
}

// String returns the label followed by the ranking values, e.g.
// "Full house (Three, Two)"
func (c Category) String() string {
	var names []string
	for _, v := range c.Values {
		if v == 0 {
			break
		}
		names = append(names, v.String())
	}
	if len(names) == 0 {
		return c.Label()
	}
	return c.Label() + " (" + strings.Join(names, ", ") + ")"
}
