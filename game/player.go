package game

import (
	"github.com/minaorangina/jest/deck"
	uuid "github.com/satori/go.uuid"
)

// NewID constructs a player or game ID
func NewID() string {
	return uuid.NewV4().String()
}

// DecisionSource makes a player's choices: a human at a console or a scripted strategy.
// Decisions are checked by the game before they are applied; a source must
// never change the game itself.
type DecisionSource interface {
	// Kind names the source ("human", "cautious", ...) so a saved game can rebuild it
	Kind() string
	// MakeOffer splits the two-card hand into a face-up and a face-down card
	MakeOffer(p *Player, hand []deck.Card, g *Game) (*Offer, error)
	// ChooseCard picks one card from one of the offers
	ChooseCard(p *Player, offers []*Offer, g *Game) (deck.Card, error)
}

// BonusMalusChooser is implemented by decision sources able to play the
// bonus/malus extension: pick a bonus/malus card and the player who gets it.
type BonusMalusChooser interface {
	ChooseBonusMalus(p *Player, players []*Player, g *Game) (deck.Card, *Player, error)
}

// Player represents a player in the game
type Player struct {
	ID          string
	Name        string
	Jest        *Jest
	Hand        []deck.Card
	BaseScore   int
	TrophyBonus int
	Decisions   DecisionSource
}

// NewPlayer constructs a player with an empty Jest
func NewPlayer(name string, decisions DecisionSource) *Player {
	return &Player{
		ID:        NewID(),
		Name:      name,
		Jest:      NewJest(),
		Hand:      []deck.Card{},
		Decisions: decisions,
	}
}

// FinalScore is the base score plus whatever trophies and bonus/malus cards added
func (p *Player) FinalScore() int {
	return p.BaseScore + p.TrophyBonus
}

// AddTrophyBonus adds points on top of the base score
func (p *Player) AddTrophyBonus(points int) {
	p.TrophyBonus += points
}

// Kind names the player's decision source
func (p *Player) Kind() string {
	if p.Decisions == nil {
		return ""
	}
	return p.Decisions.Kind()
}

func (p *Player) receiveCards(cards ...deck.Card) {
	p.Hand = append(p.Hand, cards...)
}

func (p *Player) clearHand() {
	p.Hand = []deck.Card{}
}

func (p *Player) String() string {
	return p.Name
}
