package simulator

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-buddy/internal/deck"
	"github.com/lox/holdem-buddy/internal/evaluator"
	"github.com/lox/holdem-buddy/internal/randutil"
	"github.com/lox/holdem-buddy/internal/statistics"
)

const (
	// NumCommunityCards is the size of a complete board
	NumCommunityCards = 5
	// NumHoleCards is the number of private cards per player
	NumHoleCards = 2
	// NumTotalCards is the size of a showdown hand
	NumTotalCards = NumCommunityCards + NumHoleCards
	// OpponentDraw is how many cards are drawn for the opponent each
	// iteration. The first NumHoleCards become its hole cards, the rest are
	// burned.
	OpponentDraw = 5
)

// Outcome labels tallied in Result.Outcome
const (
	Win  = "Win"
	Loss = "Loss"
	Tie  = "Tie"
)

var (
	ErrHoleCards      = errors.New("must have exactly 2 hole cards")
	ErrCommunityCards = errors.New("must have at most 5 community cards")
	ErrDuplicateCard  = errors.New("duplicate card")
	ErrIterations     = errors.New("iterations must be positive")
)

// Config holds configuration for running simulations
type Config struct {
	Iterations int
	Logger     *log.Logger
}

// Simulator plays a hand out against one opponent many times, completing the
// board from a shuffled residual deck each time.
type Simulator struct {
	config Config
	logger *log.Logger
}

// Result holds the tallies of one simulation run
type Result struct {
	Iterations int
	// CardsDrawn is the number of community cards dealt each iteration
	CardsDrawn int

	Hand     *statistics.Counters // own category per iteration
	Opponent *statistics.Counters // opponent category per iteration
	Outcome  *statistics.Counters // Win, Loss or Tie per iteration
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{config: config, logger: logger}
}

// Run simulates config.Iterations deals for the given hole and community
// cards. rng is advanced by every shuffle, so equal seeds give equal results.
// Invalid input is reported before rng is touched.
func (s *Simulator) Run(hole, community []deck.Card, rng *randutil.LCG) (*Result, error) {
	if err := validate(hole, community, s.config.Iterations); err != nil {
		return nil, err
	}

	residual := deck.Residual(hole, community)
	toDraw := NumCommunityCards - len(community)

	s.logger.Debug("Starting simulation",
		"iterations", s.config.Iterations,
		"hole", deck.FormatCards(hole),
		"community", deck.FormatCards(community),
		"cards_to_draw", toDraw,
		"residual", len(residual))

	result := &Result{
		Iterations: s.config.Iterations,
		CardsDrawn: toDraw,
		Hand:       statistics.NewCounters(),
		Opponent:   statistics.NewCounters(),
		Outcome:    statistics.NewCounters(),
	}

	pile := deck.NewPile(residual)
	own := make([]deck.Card, 0, NumTotalCards)
	opp := make([]deck.Card, 0, NumTotalCards)

	for i := 0; i < s.config.Iterations; i++ {
		pile.Reset(residual)
		cards := pile.Cards()
		rng.Shuffle(len(cards), func(a, b int) { cards[a], cards[b] = cards[b], cards[a] })

		var opponentHole [NumHoleCards]deck.Card
		for d := 0; d < OpponentDraw; d++ {
			card := pile.Pop()
			if d < NumHoleCards {
				opponentHole[d] = card
			}
		}

		own = append(own[:0], community...)
		for d := 0; d < toDraw; d++ {
			own = append(own, pile.Pop())
		}
		opp = append(opp[:0], own...)
		opp = append(opp, opponentHole[:]...)
		own = append(own, hole...)

		s.tally(result, evaluator.NewHand(own), evaluator.NewHand(opp))
	}

	for _, tally := range []struct {
		name     string
		counters *statistics.Counters
	}{
		{"hand", result.Hand},
		{"opponent", result.Opponent},
		{"outcome", result.Outcome},
	} {
		if err := tally.counters.Validate(s.config.Iterations); err != nil {
			return nil, fmt.Errorf("%s statistics validation failed: %w", tally.name, err)
		}
	}

	s.logger.Debug("Simulation complete",
		"wins", result.Outcome.Count(Win),
		"losses", result.Outcome.Count(Loss),
		"ties", result.Outcome.Count(Tie))

	return result, nil
}

func (s *Simulator) tally(result *Result, own, opp evaluator.Hand) {
	ownCat, _ := own.BestCategory()
	oppCat, _ := opp.BestCategory()

	switch own.Compare(opp) {
	case 1:
		result.Outcome.Increment(Win)
	case -1:
		result.Outcome.Increment(Loss)
	default:
		result.Outcome.Increment(Tie)
	}
	result.Opponent.Increment(oppCat.Label())
	result.Hand.Increment(ownCat.Label())
}

func validate(hole, community []deck.Card, iterations int) error {
	if len(hole) != NumHoleCards {
		return fmt.Errorf("%w, got %d", ErrHoleCards, len(hole))
	}
	if len(community) > NumCommunityCards {
		return fmt.Errorf("%w, got %d", ErrCommunityCards, len(community))
	}
	if iterations < 1 {
		return fmt.Errorf("%w, got %d", ErrIterations, iterations)
	}

	known := make([]deck.Card, 0, len(hole)+len(community))
	known = append(known, hole...)
	known = append(known, community...)
	for _, card := range known {
		if !card.Value.IsValid() || int(card.Suit) >= len(deck.AllSuits) {
			return fmt.Errorf("%w: %v", deck.ErrInvalidCard, card)
		}
	}
	if dups := deck.Duplicates(known); len(dups) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateCard, deck.FormatCards(dups))
	}
	return nil
}
