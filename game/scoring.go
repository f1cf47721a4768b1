package game

import (
	"github.com/minaorangina/jest/deck"
)

const (
	blackPairBonus    = 2
	isolatedAceBonus  = 4
	wildNoHeartsBonus = 4
	allHearts         = 4
)

// Scorer computes the base score of a Jest. Scorers hold no state.
type Scorer interface {
	deck.CardScorer
	Score(j *Jest) int
}

// officialScorer plays the official rules: black suits count for, diamonds
// against, hearts for nothing unless the joker says otherwise.
type officialScorer struct{}

func (s officialScorer) ScoreSuitCard(c deck.Card) int {
	switch c.Suit {
	case deck.Spades, deck.Clubs:
		return c.Value()
	case deck.Diamonds:
		return -c.Value()
	default:
		return 0
	}
}

func (s officialScorer) Score(j *Jest) int {
	return sumCards(s, j) + blackPairs(j) + isolatedAces(j) + wildHearts(j)
}

// invertedScorer flips the suits: red counts for, clubs against, spades for nothing.
type invertedScorer struct{}

func (s invertedScorer) ScoreSuitCard(c deck.Card) int {
	switch c.Suit {
	case deck.Hearts, deck.Diamonds:
		return c.Value()
	case deck.Clubs:
		return -c.Value()
	default:
		return 0
	}
}

func (s invertedScorer) Score(j *Jest) int {
	return sumCards(s, j)
}

func sumCards(s deck.CardScorer, j *Jest) int {
	total := 0
	for _, c := range j.cards {
		total += c.Score(s)
	}
	return total
}

// blackPairs adds 2 for every rank held in both spades and clubs
func blackPairs(j *Jest) int {
	bonus := 0
	for _, r := range deck.Ranks(true) {
		if j.Has(deck.Spades, r) && j.Has(deck.Clubs, r) {
			bonus += blackPairBonus
		}
	}
	return bonus
}

// isolatedAces adds 4 for every ace that is the only card of its suit
func isolatedAces(j *Jest) int {
	bonus := 0
	for _, s := range deck.Suits {
		cards := j.OfSuit(s)
		if len(cards) == 1 && cards[0].Rank == deck.Ace {
			bonus += isolatedAceBonus
		}
	}
	return bonus
}

// wildHearts scores the joker against the hearts: +4 with no hearts, the
// hearts' value with all four, minus their value otherwise.
func wildHearts(j *Jest) int {
	if !j.HasWild() {
		return 0
	}
	switch j.CountSuit(deck.Hearts) {
	case 0:
		return wildNoHeartsBonus
	case allHearts:
		return j.SuitValue(deck.Hearts)
	default:
		return -j.SuitValue(deck.Hearts)
	}
}
