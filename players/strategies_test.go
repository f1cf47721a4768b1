package players

import (
	"errors"
	"testing"

	"github.com/minaorangina/jest/deck"
	"github.com/minaorangina/jest/game"
	utils "github.com/minaorangina/jest/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	threeSpades  = deck.MustCard(deck.Spades, deck.Three)
	twoClubs     = deck.MustCard(deck.Clubs, deck.Two)
	fourDiamonds = deck.MustCard(deck.Diamonds, deck.Four)
	fourHearts   = deck.MustCard(deck.Hearts, deck.Four)
)

func TestEstimateValue(t *testing.T) {
	utils.AssertEqual(t, estimateValue(threeSpades), 3)
	utils.AssertEqual(t, estimateValue(twoClubs), 2)
	utils.AssertEqual(t, estimateValue(fourDiamonds), -4)
	utils.AssertEqual(t, estimateValue(fourHearts), 1)
	utils.AssertEqual(t, estimateValue(deck.NewWildCard()), 2)
}

func TestStrategiesHideTheirBestCard(t *testing.T) {
	for _, s := range []game.DecisionSource{Cautious{}, NewRandom(1)} {
		t.Run(s.Kind(), func(t *testing.T) {
			p := game.NewPlayer("ana", s)

			offer, err := s.MakeOffer(p, []deck.Card{fourDiamonds, threeSpades}, nil)
			require.NoError(t, err)

			up, _ := offer.FaceUp()
			down, _ := offer.FaceDown()
			utils.AssertEqual(t, up, fourDiamonds)
			utils.AssertEqual(t, down, threeSpades)
			utils.AssertEqual(t, offer.Owner, p)

			_, err = s.MakeOffer(p, []deck.Card{threeSpades}, nil)
			utils.AssertTrue(t, errors.Is(err, ErrBadHand))
		})
	}
}

func TestCautiousTakesTheBestFaceUpCard(t *testing.T) {
	bo := game.NewPlayer("bo", Cautious{})
	cy := game.NewPlayer("cy", Cautious{})
	offers := []*game.Offer{
		game.NewOffer(bo, fourHearts, fourDiamonds),
		game.NewOffer(cy, twoClubs, threeSpades),
	}

	card, err := Cautious{}.ChooseCard(nil, offers, nil)
	require.NoError(t, err)
	utils.AssertEqual(t, card, twoClubs)

	_, err = Cautious{}.ChooseCard(nil, nil, nil)
	utils.AssertTrue(t, errors.Is(err, ErrNothingToTake))
}

func TestRandomTakesAHiddenCard(t *testing.T) {
	bo := game.NewPlayer("bo", Cautious{})
	cy := game.NewPlayer("cy", Cautious{})
	offers := []*game.Offer{
		game.NewOffer(bo, fourHearts, fourDiamonds),
		game.NewOffer(cy, twoClubs, threeSpades),
	}

	r := NewRandom(42)
	for i := 0; i < 10; i++ {
		card, err := r.ChooseCard(nil, offers, nil)
		require.NoError(t, err)
		assert.Contains(t, []deck.Card{fourDiamonds, threeSpades}, card)
	}
}

func TestStrategiesPlayAWholeGame(t *testing.T) {
	players := []*game.Player{
		game.NewPlayer("ana", Cautious{}),
		game.NewPlayer("bo", NewRandom(7)),
		game.NewPlayer("cy", NewRandom(8)),
		game.NewPlayer("di", Cautious{}),
	}
	g, err := game.New(game.Opts{Players: players, Variant: game.VariantB, ExtendedCards: true})
	require.NoError(t, err)

	winner, err := g.Play()
	utils.AssertNoError(t, err)
	utils.AssertTrue(t, winner != nil)
	utils.AssertEqual(t, g.State(), game.Finished)
}
