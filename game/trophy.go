package game

import (
	"github.com/minaorangina/jest/deck"
)

// Condition decides whether a player has won a trophy
type Condition func(p *Player, g *Game) bool

// Effect is applied to the winner of a trophy
type Effect func(p *Player, g *Game)

// Trophy is a bonus objective drawn at the start of the game
type Trophy struct {
	Name      string
	Card      deck.Card // the trophy card that joins the winner's Jest
	Source    deck.Card // the deck card the trophy was drawn as
	Condition Condition
	Effect    Effect
}

// Award records who won which trophy
type Award struct {
	Trophy Trophy
	Winner *Player
}

// WonBy reports whether p meets the trophy's condition
func (t Trophy) WonBy(p *Player, g *Game) bool {
	if t.Condition == nil {
		return false
	}
	return t.Condition(p, g)
}

// ApplyTo applies the trophy's effect to its winner
func (t Trophy) ApplyTo(p *Player, g *Game) {
	if t.Effect != nil {
		t.Effect(p, g)
	}
}

func noEffect(*Player, *Game) {}

func newTrophy(objective deck.Objective, target deck.Suit, condition Condition) Trophy {
	card := deck.NewTrophyCard(objective, target)
	return Trophy{
		Name:      card.TrophyName(),
		Card:      card,
		Condition: condition,
		Effect:    noEffect,
	}
}

// HighestTrophy goes to the player with the highest total value in suit s
func HighestTrophy(s deck.Suit) Trophy {
	return newTrophy(deck.Highest, s, func(p *Player, g *Game) bool {
		value := p.Jest.SuitValue(s)
		if value <= 0 {
			return false
		}
		for _, other := range g.others(p) {
			otherValue := other.Jest.SuitValue(s)
			if otherValue > value {
				return false
			}
			if otherValue == value && stronger(other, p) {
				return false
			}
		}
		return true
	})
}

// LowestTrophy goes to the player with the lowest positive total value in suit s
func LowestTrophy(s deck.Suit) Trophy {
	return newTrophy(deck.Lowest, s, func(p *Player, g *Game) bool {
		value := p.Jest.SuitValue(s)
		if value <= 0 {
			return false
		}
		for _, other := range g.others(p) {
			otherValue := other.Jest.SuitValue(s)
			if otherValue > 0 && otherValue < value {
				return false
			}
			if otherValue == value && stronger(other, p) {
				return false
			}
		}
		return true
	})
}

// MajorityTrophy goes to the player with the most cards of suit s
func MajorityTrophy(s deck.Suit) Trophy {
	return newTrophy(deck.Majority, s, func(p *Player, g *Game) bool {
		count := p.Jest.CountSuit(s)
		if count == 0 {
			return false
		}
		for _, other := range g.others(p) {
			if other.Jest.CountSuit(s) > count {
				return false
			}
		}
		return true
	})
}

// JokerTrophy goes to the holder of the joker
func JokerTrophy() Trophy {
	return newTrophy(deck.Joker, deck.Wild, func(p *Player, g *Game) bool {
		return p.Jest.HasWild()
	})
}

// BestJestTrophy goes to the player with the best base score
func BestJestTrophy() Trophy {
	return newTrophy(deck.BestJest, deck.Wild, func(p *Player, g *Game) bool {
		for _, other := range g.others(p) {
			if other.BaseScore > p.BaseScore {
				return false
			}
		}
		return true
	})
}

// BestJestNoJokeTrophy is BestJestTrophy with the joker's holder left out
func BestJestNoJokeTrophy() Trophy {
	return newTrophy(deck.BestJestNoJoke, deck.Wild, func(p *Player, g *Game) bool {
		if p.Jest.HasWild() {
			return false
		}
		for _, other := range g.others(p) {
			if !other.Jest.HasWild() && other.BaseScore > p.BaseScore {
				return false
			}
		}
		return true
	})
}

// NewTrophy builds the trophy for an objective
func NewTrophy(objective deck.Objective, target deck.Suit) (Trophy, bool) {
	switch objective {
	case deck.Highest:
		return HighestTrophy(target), true
	case deck.Lowest:
		return LowestTrophy(target), true
	case deck.Majority:
		return MajorityTrophy(target), true
	case deck.Joker:
		return JokerTrophy(), true
	case deck.BestJest:
		return BestJestTrophy(), true
	case deck.BestJestNoJoke:
		return BestJestNoJokeTrophy(), true
	}
	return Trophy{}, false
}

// TrophyFromCard turns a card drawn from the deck into a trophy:
// the joker gives the Joker trophy, an ace Highest, a two Lowest,
// a three Majority, a four Best Jest and any other rank Majority.
func TrophyFromCard(c deck.Card) Trophy {
	var t Trophy
	switch {
	case c.IsWild():
		t = JokerTrophy()
	case c.Rank == deck.Ace:
		t = HighestTrophy(c.Suit)
	case c.Rank == deck.Two:
		t = LowestTrophy(c.Suit)
	case c.Rank == deck.Four:
		t = BestJestTrophy()
	default:
		t = MajorityTrophy(c.Suit)
	}
	t.Source = c
	return t
}

// stronger reports whether a's strongest card beats b's
func stronger(a, b *Player) bool {
	return a.Jest.MaxStrength() > b.Jest.MaxStrength()
}

// awardTrophy finds the winner of t under the game's winner policy, gives them
// the trophy card and applies its effect. It returns nil when nobody qualifies.
func (g *Game) awardTrophy(t Trophy) *Player {
	candidates := []*Player{}
	for _, p := range g.players {
		if t.WonBy(p, g) {
			candidates = append(candidates, p)
		}
	}

	winner := g.rules.Winner(candidates)
	if winner == nil {
		return nil
	}

	winner.Jest.Add(t.Card)
	t.ApplyTo(winner, g)
	return winner
}
