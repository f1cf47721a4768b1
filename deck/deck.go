package deck

import (
	"math/rand"
)

// Deck represents the draw pile. The front of the slice is the top of the pile.
type Deck []Card

// New creates a full, ordered deck
func New(extended bool) Deck {
	d := Deck{}
	d.Initialize(extended)
	return d
}

// Initialize rebuilds the full deck: every rank of every real suit, then the joker.
func (d *Deck) Initialize(extended bool) {
	cards := []Card{}
	for _, suit := range Suits {
		for _, rank := range Ranks(extended) {
			cards = append(cards, Card{Kind: StandardKind, Suit: suit, Rank: rank})
		}
	}
	cards = append(cards, NewWildCard())
	*d = cards
}

// Shuffle shuffles the deck of cards
func (d *Deck) Shuffle() {
	actualDeck := *d
	rand.Shuffle(len(actualDeck), func(i, j int) {
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	})
}

// Draw removes and returns the top card. ok is false when the deck is empty.
func (d *Deck) Draw() (c Card, ok bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	c = (*d)[0]
	*d = (*d)[1:]
	return c, true
}

// Deal draws up to n cards from the top of the deck
func (d *Deck) Deal(n int) []Card {
	if n <= 0 {
		return []Card{}
	}
	if n > len(*d) {
		n = len(*d)
	}
	dealt := make([]Card, n)
	copy(dealt, (*d)[:n])
	*d = (*d)[n:]
	return dealt
}

// Size returns the number of cards left
func (d Deck) Size() int {
	return len(d)
}

// IsEmpty reports whether there are no cards left
func (d Deck) IsEmpty() bool {
	return len(d) == 0
}
