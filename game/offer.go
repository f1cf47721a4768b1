package game

import (
	"fmt"

	"github.com/minaorangina/jest/deck"
)

// Offer holds the two cards a player puts up for the round, one face up and
// one face down. A taken card leaves the offer for good.
type Offer struct {
	Owner       *Player
	faceUp      deck.Card
	faceDown    deck.Card
	hasFaceUp   bool
	hasFaceDown bool
}

// NewOffer constructs a complete offer
func NewOffer(owner *Player, faceUp, faceDown deck.Card) *Offer {
	return &Offer{
		Owner:       owner,
		faceUp:      faceUp,
		faceDown:    faceDown,
		hasFaceUp:   true,
		hasFaceDown: true,
	}
}

func (o *Offer) FaceUp() (deck.Card, bool) {
	return o.faceUp, o.hasFaceUp
}

func (o *Offer) FaceDown() (deck.Card, bool) {
	return o.faceDown, o.hasFaceDown
}

// TakeFaceUp removes and returns the face-up card
func (o *Offer) TakeFaceUp() (deck.Card, bool) {
	if !o.hasFaceUp {
		return deck.Card{}, false
	}
	o.hasFaceUp = false
	return o.faceUp, true
}

// TakeFaceDown removes and returns the face-down card
func (o *Offer) TakeFaceDown() (deck.Card, bool) {
	if !o.hasFaceDown {
		return deck.Card{}, false
	}
	o.hasFaceDown = false
	return o.faceDown, true
}

// Take removes c from the offer, whichever side it is on
func (o *Offer) Take(c deck.Card) (deck.Card, error) {
	switch {
	case o.hasFaceUp && o.faceUp == c:
		taken, _ := o.TakeFaceUp()
		return taken, nil
	case o.hasFaceDown && o.faceDown == c:
		taken, _ := o.TakeFaceDown()
		return taken, nil
	}
	return deck.Card{}, fmt.Errorf("%w: %s is not in %s's offer", ErrInvalidChoice, c, o.ownerName())
}

// Complete reports whether both cards are still there
func (o *Offer) Complete() bool {
	return o.hasFaceUp && o.hasFaceDown
}

// Contains reports whether c is still in the offer
func (o *Offer) Contains(c deck.Card) bool {
	return (o.hasFaceUp && o.faceUp == c) || (o.hasFaceDown && o.faceDown == c)
}

// Unchosen returns the other card of the offer, if it is still there
func (o *Offer) Unchosen(chosen deck.Card) (deck.Card, bool) {
	switch {
	case o.hasFaceUp && o.faceUp == chosen:
		return o.faceDown, o.hasFaceDown
	case o.hasFaceDown && o.faceDown == chosen:
		return o.faceUp, o.hasFaceUp
	}
	return deck.Card{}, false
}

// Remaining returns the cards still resting in the offer
func (o *Offer) Remaining() []deck.Card {
	cards := []deck.Card{}
	if o.hasFaceUp {
		cards = append(cards, o.faceUp)
	}
	if o.hasFaceDown {
		cards = append(cards, o.faceDown)
	}
	return cards
}

// clear empties the offer and returns what was left in it
func (o *Offer) clear() []deck.Card {
	cards := o.Remaining()
	o.hasFaceUp, o.hasFaceDown = false, false
	return cards
}

// Strength is the strength of the face-up card; it decides turn order
func (o *Offer) Strength() int {
	if !o.hasFaceUp {
		return 0
	}
	return o.faceUp.Strength()
}

func (o *Offer) ownerName() string {
	if o.Owner == nil {
		return "nobody"
	}
	return o.Owner.Name
}

func (o *Offer) String() string {
	up, down := "-", "-"
	if o.hasFaceUp {
		up = o.faceUp.String()
	}
	if o.hasFaceDown {
		down = "X"
	}
	return fmt.Sprintf("[%s: up %s, down %s]", o.ownerName(), up, down)
}
