package deck

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected Card
	}{
		{"ace of spades", "as", Card{Value: Ace, Suit: Spades}},
		{"upper case", "AS", Card{Value: Ace, Suit: Spades}},
		{"ten", "10h", Card{Value: Ten, Suit: Hearts}},
		{"two of clubs", "2c", Card{Value: Two, Suit: Clubs}},
		{"jack", "Jd", Card{Value: Jack, Suit: Diamonds}},
		{"queen", "qC", Card{Value: Queen, Suit: Clubs}},
		{"king", "kh", Card{Value: King, Suit: Hearts}},
		{"nine", "9s", Card{Value: Nine, Suit: Spades}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, card)
		})
	}
}

func TestParseCardErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"empty", "", "empty token"},
		{"missing suit", "A", "needs both a rank and a suit"},
		{"non ascii", "A♠", "non-ASCII"},
		{"numeral too small", "1s", "out of range 2-10"},
		{"numeral too large", "11s", "out of range 2-10"},
		{"zero padded", "01s", "out of range 2-10"},
		{"unknown rank", "Xs", "unknown rank"},
		{"ten as letter", "Ts", "unknown rank"},
		{"two letter rank", "JJs", "unknown rank"},
		{"unknown suit", "Ax", "unknown suit"},
		{"too long", "10sx", "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseCard(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCard))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("  qs 2s\t3d jh   kc ")
	require.NoError(t, err)
	assert.Equal(t, []Card{
		{Queen, Spades},
		{Two, Spades},
		{Three, Diamonds},
		{Jack, Hearts},
		{King, Clubs},
	}, cards)

	cards, err = ParseCards("")
	require.NoError(t, err)
	assert.Empty(t, cards)

	_, err = ParseCards("qs 2s zz 1c")
	require.ErrorIs(t, err, ErrInvalidCard)
	assert.Contains(t, err.Error(), "card 3")
	assert.Contains(t, err.Error(), `"zz"`)
}

func TestValueOrdering(t *testing.T) {
	t.Parallel()
	for i := 1; i < len(AllValues); i++ {
		assert.Less(t, AllValues[i-1], AllValues[i])
	}
	assert.Greater(t, Ace, King)
	assert.Greater(t, King, Queen)
	assert.Greater(t, Queen, Jack)
	assert.Greater(t, Jack, Ten)
	assert.Equal(t, Value(14), Ace)
}

func TestCardCompareIgnoresSuit(t *testing.T) {
	t.Parallel()
	tenHearts := NewCard(Ten, Hearts)
	tenClubs := NewCard(Ten, Clubs)

	assert.Equal(t, 0, tenHearts.Compare(tenClubs))
	assert.NotEqual(t, tenHearts, tenClubs)
	assert.Equal(t, 1, NewCard(Jack, Clubs).Compare(tenHearts))
	assert.Equal(t, -1, tenHearts.Compare(NewCard(Ace, Clubs)))
}

func TestCardString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Seven of Clubs", NewCard(Seven, Clubs).String())
	assert.Equal(t, "Ace of Spades", NewCard(Ace, Spades).String())
	assert.Equal(t, "10h", NewCard(Ten, Hearts).Token())
	assert.Equal(t, "Qd", NewCard(Queen, Diamonds).Token())
	assert.Equal(t, "Two of Hearts, Ten of Spades",
		FormatCards([]Card{NewCard(Two, Hearts), NewCard(Ten, Spades)}))
	assert.Equal(t, "", FormatCards(nil))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()
	for _, card := range NewDeck() {
		for _, token := range []string{card.Token(), strings.ToLower(card.Token())} {
			parsed, err := ParseCard(token)
			require.NoError(t, err, token)
			assert.Equal(t, card, parsed, token)
		}
	}
}
