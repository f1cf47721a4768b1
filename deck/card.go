package deck

import (
	"fmt"
)

// Kind tells the card variants apart
type Kind int

const (
	StandardKind Kind = iota
	WildKind
	TrophyKind
	BonusMalusKind
)

var kindNames = []string{"Standard", "Wild", "Trophy", "BonusMalus"}

func (k Kind) String() string {
	if k < StandardKind || k > BonusMalusKind {
		return "Unknown"
	}
	return kindNames[k]
}

// Objective is the goal printed on a trophy card
type Objective int

const (
	NoObjective Objective = iota
	Highest
	Lowest
	Majority
	Joker
	BestJest
	BestJestNoJoke
)

var objectiveNames = []string{"None", "Highest", "Lowest", "Majority", "Joker", "Best Jest", "Best Jest No Joke"}

func (o Objective) String() string {
	if o < NoObjective || o > BestJestNoJoke {
		return "Unknown"
	}
	return objectiveNames[o]
}

// HasTarget reports whether the objective is about one suit
func (o Objective) HasTarget() bool {
	return o == Highest || o == Lowest || o == Majority
}

// Bonus/malus card values allowed by the extension
const (
	MaxBonus = 2
	MaxMalus = 3
)

// Card represents a Jest card. Cards are values: once built they never change.
// Trophy and bonus/malus cards borrow the wild suit and rank so they never
// match a suit or rank query.
type Card struct {
	Kind      Kind      `json:"kind"`
	Suit      Suit      `json:"suit"`
	Rank      Rank      `json:"rank"`
	Objective Objective `json:"objective,omitempty"`
	Target    Suit      `json:"target,omitempty"`
	Points    int       `json:"points,omitempty"`
}

// InvalidCardError is returned when a standard card is given the wild suit or rank
type InvalidCardError struct {
	Suit Suit
	Rank Rank
}

func (e *InvalidCardError) Error() string {
	return fmt.Sprintf("invalid standard card: rank %s, suit %s", e.Rank, e.Suit)
}

// CardScorer computes what a standard card is worth on its own.
type CardScorer interface {
	ScoreSuitCard(c Card) int
}

// NewCard constructs a standard card
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit < Spades || suit >= Wild || rank <= WildRank || rank > Eight {
		return Card{}, &InvalidCardError{Suit: suit, Rank: rank}
	}
	return Card{Kind: StandardKind, Suit: suit, Rank: rank}, nil
}

// MustCard is NewCard for card literals known to be valid. It panics otherwise.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// NewWildCard constructs the joker. A deck holds exactly one.
func NewWildCard() Card {
	return Card{Kind: WildKind, Suit: Wild, Rank: WildRank}
}

// NewTrophyCard constructs a trophy card. The target is ignored unless the
// objective is about one suit.
func NewTrophyCard(objective Objective, target Suit) Card {
	if !objective.HasTarget() {
		target = Wild
	}
	return Card{Kind: TrophyKind, Suit: Wild, Rank: WildRank, Objective: objective, Target: target}
}

// NewBonusMalusCard constructs a bonus (positive points) or malus (negative points) card
func NewBonusMalusCard(points int) (Card, error) {
	if points == 0 || points > MaxBonus || points < -MaxMalus {
		return Card{}, fmt.Errorf("bonus/malus points must be between -%d and %d, not zero: got %d", MaxMalus, MaxBonus, points)
	}
	return Card{Kind: BonusMalusKind, Suit: Wild, Rank: WildRank, Points: points}, nil
}

// Validate checks that the card is one of the cards the constructors build.
// A standard card with the wild suit or rank gives an *InvalidCardError.
func (c Card) Validate() error {
	switch c.Kind {
	case StandardKind:
		built, err := NewCard(c.Suit, c.Rank)
		if err != nil {
			return err
		}
		if built != c {
			return fmt.Errorf("standard card %s carries trophy or bonus/malus fields", c)
		}
	case WildKind:
		if c != NewWildCard() {
			return fmt.Errorf("malformed joker: rank %s, suit %s", c.Rank, c.Suit)
		}
	case TrophyKind:
		if c.Objective <= NoObjective || c.Objective > BestJestNoJoke {
			return fmt.Errorf("unknown trophy objective %d", c.Objective)
		}
		if c.Objective.HasTarget() && (c.Target < Spades || c.Target >= Wild) {
			return fmt.Errorf("trophy %s needs a real suit", c.Objective)
		}
		if c != NewTrophyCard(c.Objective, c.Target) {
			return fmt.Errorf("malformed trophy card %s", c)
		}
	case BonusMalusKind:
		built, err := NewBonusMalusCard(c.Points)
		if err != nil {
			return err
		}
		if built != c {
			return fmt.Errorf("malformed bonus/malus card %s", c)
		}
	default:
		return fmt.Errorf("unknown card kind %d", c.Kind)
	}
	return nil
}

func (c Card) IsStandard() bool { return c.Kind == StandardKind }
func (c Card) IsWild() bool { return c.Kind == WildKind }
func (c Card) IsTrophy() bool { return c.Kind == TrophyKind }
func (c Card) IsBonusMalus() bool { return c.Kind == BonusMalusKind }

// Playable reports whether the card came out of the deck during play, as
// opposed to trophy and bonus/malus cards handed out while scoring.
func (c Card) Playable() bool {
	return c.Kind == StandardKind || c.Kind == WildKind
}

// Value is the face value of the card
func (c Card) Value() int {
	return c.Rank.Value()
}

// Strength ranks a card for turn order and trophy ties: face value first, then suit.
func (c Card) Strength() int {
	return c.Value()*10 + c.Suit.Priority()
}

// Score returns the card's own contribution under the given scorer.
// The wild card, trophies and bonus/malus cards are scored from context, never on their own.
func (c Card) Score(s CardScorer) int {
	if c.Kind != StandardKind {
		return 0
	}
	return s.ScoreSuitCard(c)
}

// TrophyName names the objective of a trophy card, e.g. "Highest Spades"
func (c Card) TrophyName() string {
	if c.Objective.HasTarget() {
		return fmt.Sprintf("%s %s", c.Objective, c.Target)
	}
	return c.Objective.String()
}

func (c Card) String() string {
	switch c.Kind {
	case WildKind:
		return "Joker " + Wild.Symbol()
	case TrophyKind:
		return "Trophy " + c.TrophyName()
	case BonusMalusKind:
		return fmt.Sprintf("%+d BM", c.Points)
	default:
		return c.Rank.Symbol() + c.Suit.Symbol()
	}
}

// Name is the long form, e.g. "Ace of Spades"
func (c Card) Name() string {
	if c.Kind != StandardKind {
		return c.String()
	}
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
