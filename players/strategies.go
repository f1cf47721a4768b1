package players

import (
	"math/rand"
	"time"

	"github.com/minaorangina/jest/deck"
	"github.com/minaorangina/jest/game"
)

// estimateValue is how the scripted players rate a card: black suits are worth
// their value, diamonds cost theirs, a heart is worth a little, the joker a bit more
func estimateValue(c deck.Card) int {
	if c.IsWild() {
		return 2
	}
	switch c.Suit {
	case deck.Spades, deck.Clubs:
		return c.Value()
	case deck.Diamonds:
		return -c.Value()
	default:
		return 1
	}
}

// splitHand returns the better and the worse of two cards. The first card wins a tie.
func splitHand(hand []deck.Card) (best, worst deck.Card) {
	if estimateValue(hand[1]) > estimateValue(hand[0]) {
		return hand[1], hand[0]
	}
	return hand[0], hand[1]
}

func validHand(hand []deck.Card) error {
	if len(hand) != 2 {
		return ErrBadHand
	}
	return nil
}

// Cautious keeps its better card face down and takes the best face-up card on offer
type Cautious struct{}

func (Cautious) Kind() string { return KindCautious }

func (Cautious) MakeOffer(p *game.Player, hand []deck.Card, g *game.Game) (*game.Offer, error) {
	if err := validHand(hand); err != nil {
		return nil, err
	}
	best, worst := splitHand(hand)
	return game.NewOffer(p, worst, best), nil
}

func (Cautious) ChooseCard(p *game.Player, offers []*game.Offer, g *game.Game) (deck.Card, error) {
	var (
		chosen deck.Card
		found  bool
	)
	for _, o := range offers {
		up, ok := o.FaceUp()
		if !ok {
			continue
		}
		if !found || estimateValue(up) > estimateValue(chosen) {
			chosen, found = up, true
		}
	}
	if !found {
		return deck.Card{}, ErrNothingToTake
	}
	return chosen, nil
}

// Random bluffs: it keeps its better card face down too, but takes the hidden
// card of an offer picked at random
type Random struct {
	rng *rand.Rand
}

// NewRandom constructs a Random strategy. A zero seed uses the clock.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Kind() string { return KindRandom }

func (r *Random) MakeOffer(p *game.Player, hand []deck.Card, g *game.Game) (*game.Offer, error) {
	if err := validHand(hand); err != nil {
		return nil, err
	}
	best, worst := splitHand(hand)
	return game.NewOffer(p, worst, best), nil
}

func (r *Random) ChooseCard(p *game.Player, offers []*game.Offer, g *game.Game) (deck.Card, error) {
	complete := []*game.Offer{}
	for _, o := range offers {
		if o.Complete() {
			complete = append(complete, o)
		}
	}
	if len(complete) == 0 {
		return deck.Card{}, ErrNothingToTake
	}

	o := complete[r.rng.Intn(len(complete))]
	if down, ok := o.FaceDown(); ok {
		return down, nil
	}
	up, _ := o.FaceUp()
	return up, nil
}
