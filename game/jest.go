package game

import (
	"encoding/json"

	"github.com/minaorangina/jest/deck"
)

// Jest is the set of cards a player collects over the game.
// Cards are only ever added. Aggregate queries skip trophy and bonus/malus
// cards, which join the Jest while scoring.
type Jest struct {
	cards []deck.Card
}

// NewJest constructs a Jest holding the given cards
func NewJest(cards ...deck.Card) *Jest {
	j := &Jest{cards: []deck.Card{}}
	j.cards = append(j.cards, cards...)
	return j
}

// Add appends a card
func (j *Jest) Add(c deck.Card) {
	j.cards = append(j.cards, c)
}

// Cards returns a copy of every card, in the order they were collected
func (j *Jest) Cards() []deck.Card {
	return append([]deck.Card{}, j.cards...)
}

func (j *Jest) Len() int {
	return len(j.cards)
}

// CountSuit counts the cards of suit s
func (j *Jest) CountSuit(s deck.Suit) int {
	n := 0
	for _, c := range j.cards {
		if c.Playable() && c.Suit == s {
			n++
		}
	}
	return n
}

// CountRank counts the cards of rank r
func (j *Jest) CountRank(r deck.Rank) int {
	n := 0
	for _, c := range j.cards {
		if c.Playable() && c.Rank == r {
			n++
		}
	}
	return n
}

// HasWild reports whether the joker is in the Jest
func (j *Jest) HasWild() bool {
	for _, c := range j.cards {
		if c.IsWild() {
			return true
		}
	}
	return false
}

// SuitValue sums the face values of the cards of suit s
func (j *Jest) SuitValue(s deck.Suit) int {
	sum := 0
	for _, c := range j.cards {
		if c.Playable() && c.Suit == s {
			sum += c.Value()
		}
	}
	return sum
}

// Has reports whether the standard card of suit s and rank r was collected
func (j *Jest) Has(s deck.Suit, r deck.Rank) bool {
	for _, c := range j.cards {
		if c.IsStandard() && c.Suit == s && c.Rank == r {
			return true
		}
	}
	return false
}

// OfSuit returns the cards of suit s
func (j *Jest) OfSuit(s deck.Suit) []deck.Card {
	cards := []deck.Card{}
	for _, c := range j.cards {
		if c.Playable() && c.Suit == s {
			cards = append(cards, c)
		}
	}
	return cards
}

// MaxStrength is the strength of the strongest card, 0 for an empty Jest
func (j *Jest) MaxStrength() int {
	max := 0
	for _, c := range j.cards {
		if c.Playable() && c.Strength() > max {
			max = c.Strength()
		}
	}
	return max
}

// Trophies returns the trophy cards won
func (j *Jest) Trophies() []deck.Card {
	trophies := []deck.Card{}
	for _, c := range j.cards {
		if c.IsTrophy() {
			trophies = append(trophies, c)
		}
	}
	return trophies
}

func (j *Jest) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.cards)
}

func (j *Jest) UnmarshalJSON(data []byte) error {
	cards := []deck.Card{}
	if err := json.Unmarshal(data, &cards); err != nil {
		return err
	}
	j.cards = cards
	return nil
}
