package simulator

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-buddy/internal/deck"
	"github.com/lox/holdem-buddy/internal/randutil"
	"github.com/lox/holdem-buddy/internal/statistics"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func newSimulator(iterations int) *Simulator {
	return New(Config{Iterations: iterations, Logger: quietLogger()})
}

func sum(c *statistics.Counters) int {
	total := 0
	for _, label := range c.Labels() {
		total += c.Count(label)
	}
	return total
}

func TestRunRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		hole       string
		community  string
		iterations int
		err        error
	}{
		{"one hole card", "as", "", 10, ErrHoleCards},
		{"three hole cards", "as ks qs", "", 10, ErrHoleCards},
		{"six community cards", "as ks", "2c 3c 4c 5c 6c 7c", 10, ErrCommunityCards},
		{"duplicate in hole", "as as", "", 10, ErrDuplicateCard},
		{"duplicate across hole and board", "as ks", "2c as", 10, ErrDuplicateCard},
		{"zero iterations", "as ks", "", 0, ErrIterations},
		{"negative iterations", "as ks", "", -5, ErrIterations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rng := randutil.NewLCG(99)
			before := rng.State()

			_, err := newSimulator(tt.iterations).Run(deck.MustParseCards(tt.hole), deck.MustParseCards(tt.community), rng)
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, before, rng.State(), "rng must not advance on invalid input")
		})
	}
}

func TestRunRejectsInvalidCard(t *testing.T) {
	t.Parallel()
	hole := []deck.Card{{Value: deck.Ace, Suit: deck.Spades}, {Value: 1, Suit: deck.Hearts}}
	_, err := newSimulator(10).Run(hole, nil, randutil.NewLCG(1))
	assert.ErrorIs(t, err, deck.ErrInvalidCard)
}

func TestRunTotals(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		community string
		drawn     int
	}{
		{"preflop", "", 5},
		{"flop", "qs 9s 3d", 2},
		{"turn", "qs 9s 3d 4h", 1},
		{"river", "qs 9s 3d 4h 2c", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := newSimulator(300).Run(deck.MustParseCards("10s js"), deck.MustParseCards(tt.community), randutil.NewLCG(42))
			require.NoError(t, err)

			assert.Equal(t, 300, result.Iterations)
			assert.Equal(t, tt.drawn, result.CardsDrawn)
			for _, c := range []*statistics.Counters{result.Hand, result.Opponent, result.Outcome} {
				assert.Equal(t, 300, c.Total())
				assert.Equal(t, 300, sum(c))
			}
		})
	}
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()
	hole := deck.MustParseCards("7h 2c")
	community := deck.MustParseCards("kd 7s")

	run := func(seed uint64) *Result {
		result, err := newSimulator(2000).Run(hole, community, randutil.NewLCG(seed))
		require.NoError(t, err)
		return result
	}

	a, b := run(42), run(42)
	assert.Equal(t, a.Hand.Format(), b.Hand.Format())
	assert.Equal(t, a.Opponent.Format(), b.Opponent.Format())
	assert.Equal(t, a.Outcome.Format(), b.Outcome.Format())

	c := run(43)
	assert.NotEqual(t, a.Outcome.Percentages(), c.Outcome.Percentages())
}

func TestRunAdvancesRNG(t *testing.T) {
	t.Parallel()
	hole := deck.MustParseCards("as ah")
	rng := randutil.NewLCG(5)

	first, err := newSimulator(200).Run(hole, nil, rng)
	require.NoError(t, err)
	second, err := newSimulator(200).Run(hole, nil, rng)
	require.NoError(t, err)

	// one rng shared across runs keeps producing fresh deals
	assert.NotEqual(t, first.Opponent.Percentages(), second.Opponent.Percentages())
}

func TestRunCompleteBoard(t *testing.T) {
	t.Parallel()

	// quad aces cannot be beaten on this board
	result, err := newSimulator(500).Run(deck.MustParseCards("as ah"), deck.MustParseCards("ad ac kd 2s 3h"), randutil.NewLCG(7))
	require.NoError(t, err)
	assert.Equal(t, 0, result.CardsDrawn)
	assert.Equal(t, "  Four of a kind       100.0%\n", result.Hand.Format())
	assert.Equal(t, "  Win                  100.0%\n", result.Outcome.Format())

	// both players play the royal flush on the board
	result, err = newSimulator(500).Run(deck.MustParseCards("2c 3d"), deck.MustParseCards("as ks qs js 10s"), randutil.NewLCG(7))
	require.NoError(t, err)
	assert.Equal(t, "  Straight flush       100.0%\n", result.Hand.Format())
	assert.Equal(t, "  Straight flush       100.0%\n", result.Opponent.Format())
	assert.Equal(t, "  Tie                  100.0%\n", result.Outcome.Format())
}

func TestRunEquity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		hole     string
		min, max float64
	}{
		{"pocket aces", "as ah", 0.78, 0.92},
		{"seven deuce", "7h 2c", 0.25, 0.42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := newSimulator(2000).Run(deck.MustParseCards(tt.hole), nil, randutil.NewLCG(42))
			require.NoError(t, err)

			win := float64(result.Outcome.Count(Win)) / float64(result.Iterations)
			assert.GreaterOrEqual(t, win, tt.min)
			assert.LessOrEqual(t, win, tt.max)
		})
	}
}

func TestRunNeverImprovesBelowMadeHand(t *testing.T) {
	t.Parallel()
	// a made flush on the flop can only stay a flush or improve
	result, err := newSimulator(500).Run(deck.MustParseCards("2h 9h"), deck.MustParseCards("kh 5h jh"), randutil.NewLCG(3))
	require.NoError(t, err)
	for _, label := range result.Hand.Labels() {
		assert.Contains(t, []string{"Flush", "Straight flush"}, label)
	}
}

func TestNewWithNilLogger(t *testing.T) {
	t.Parallel()
	sim := New(Config{Iterations: 10})
	require.NotNil(t, sim.logger)

	result, err := sim.Run(deck.MustParseCards("as ks"), nil, randutil.NewLCG(1))
	require.NoError(t, err)
	assert.Equal(t, 10, result.Outcome.Total())
}

func TestRunLogsAtDebug(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := New(Config{Iterations: 20, Logger: logger}).Run(deck.MustParseCards("as ks"), nil, randutil.NewLCG(1))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Starting simulation")
	assert.Contains(t, buf.String(), "Simulation complete")
}
