package deck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCard is wrapped by every card parsing failure.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// AllSuits lists the suits in deck order.
var AllSuits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the full name of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "?"
	}
}

// Token returns the single letter used for the suit in card notation
func (s Suit) Token() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Value represents a card's face value. The ordinal runs from 2 to 14; Ace is
// always high here, the wheel straight is the only place it plays as 1.
type Value uint8

const (
	Two Value = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// AllValues lists the values in ascending order.
var AllValues = [...]Value{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var valueNames = [...]string{
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

// IsValid reports whether v is one of the thirteen card values
func (v Value) IsValid() bool {
	return v >= Two && v <= Ace
}

// String returns the full name of the value (e.g. "Seven")
func (v Value) String() string {
	if !v.IsValid() {
		return "?"
	}
	return valueNames[v]
}

// Token returns the value as written in card notation ("2".."10", "J", "Q", "K", "A")
func (v Value) Token() string {
	switch {
	case v >= Two && v <= Ten:
		return strconv.Itoa(int(v))
	case v == Jack:
		return "J"
	case v == Queen:
		return "Q"
	case v == King:
		return "K"
	case v == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card. Cards are comparable, so == is structural
// equality over both fields.
type Card struct {
	Value Value
	Suit  Suit
}

// NewCard creates a new card
func NewCard(value Value, suit Suit) Card {
	return Card{Value: value, Suit: suit}
}

// Compare orders cards by value only, ignoring the suit. It returns -1, 0 or 1.
func (c Card) Compare(other Card) int {
	switch {
	case c.Value < other.Value:
		return -1
	case c.Value > other.Value:
		return 1
	default:
		return 0
	}
}

// String returns the long form of a card (e.g. "Seven of Clubs")
func (c Card) String() string {
	return c.Value.String() + " of " + c.Suit.String()
}

// Token returns the short notation of a card (e.g. "7c"), which ParseCard accepts.
func (c Card) Token() string {
	return c.Value.Token() + c.Suit.Token()
}

// ParseCard parses a single card token such as "As", "10h" or "qd".
func ParseCard(token string) (Card, error) {
	for i := 0; i < len(token); i++ {
		if token[i] >= 0x80 {
			return Card{}, fmt.Errorf("%w %q: contains non-ASCII characters", ErrInvalidCard, token)
		}
	}

	switch len(token) {
	case 0:
		return Card{}, fmt.Errorf("%w: empty token", ErrInvalidCard)
	case 1:
		return Card{}, fmt.Errorf("%w %q: needs both a rank and a suit", ErrInvalidCard, token)
	case 2, 3:
	default:
		return Card{}, fmt.Errorf("%w %q: too long", ErrInvalidCard, token)
	}

	value, err := parseValue(token[:len(token)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %v", ErrInvalidCard, token, err)
	}

	suit, err := parseSuit(token[len(token)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %v", ErrInvalidCard, token, err)
	}

	return Card{Value: value, Suit: suit}, nil
}

// ParseCards parses a whitespace separated list of cards, e.g. "qs 2s 10d".
// Parsing stops at the first bad token.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for i, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// FormatCards joins the long form of each card with ", ".
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, ", ")
}

func parseValue(token string) (Value, error) {
	if isDigits(token) {
		n, err := strconv.Atoi(token)
		if err != nil {
			return 0, fmt.Errorf("bad numeral %q", token)
		}
		if n < int(Two) || n > int(Ten) {
			return 0, fmt.Errorf("numeral %d out of range 2-10", n)
		}
		return Value(n), nil
	}

	if len(token) != 1 {
		return 0, fmt.Errorf("unknown rank %q", token)
	}

	switch token[0] {
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	default:
		return 0, fmt.Errorf("unknown rank %q", token)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'c', 'C':
		return Clubs, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'h', 'H':
		return Hearts, nil
	case 's', 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
