package game

import (
	"github.com/minaorangina/jest/deck"
)

// notOnOffer is never dealt, so choosing it is always illegal
var notOnOffer = deck.NewTrophyCard(deck.Joker, deck.Wild)

// testSource offers its hand in order and takes the first face-up card it sees.
// It can be told to answer illegally a number of times first.
type testSource struct {
	badOffers   int
	badChoices  int
	offerCalls  int
	chooseCalls int
}

func (s *testSource) Kind() string { return "test" }

func (s *testSource) MakeOffer(p *Player, hand []deck.Card, g *Game) (*Offer, error) {
	s.offerCalls++
	if s.badOffers > 0 {
		s.badOffers--
		return NewOffer(p, hand[0], hand[0]), nil
	}
	return NewOffer(p, hand[0], hand[1]), nil
}

func (s *testSource) ChooseCard(p *Player, offers []*Offer, g *Game) (deck.Card, error) {
	s.chooseCalls++
	if s.badChoices > 0 {
		s.badChoices--
		return notOnOffer, nil
	}
	if up, ok := offers[0].FaceUp(); ok {
		return up, nil
	}
	down, _ := offers[0].FaceDown()
	return down, nil
}

// bmScript is shared by every bmSource of a game, whoever ends up choosing
type bmScript struct {
	points int
	calls  int
	target func(players []*Player) *Player
}

type bmSource struct {
	testSource
	script *bmScript
}

func (s *bmSource) ChooseBonusMalus(p *Player, players []*Player, g *Game) (deck.Card, *Player, error) {
	s.script.calls++
	card := deck.Card{Kind: deck.BonusMalusKind, Suit: deck.Wild, Rank: deck.WildRank, Points: s.script.points}
	return card, s.script.target(players), nil
}

func testPlayers(n int) ([]*Player, []*testSource) {
	players := []*Player{}
	sources := []*testSource{}
	for i := 0; i < n; i++ {
		s := &testSource{}
		sources = append(sources, s)
		players = append(players, NewPlayer(string(rune('a'+i)), s))
	}
	return players, sources
}

func newTestGame(n int, variant Variant, extended bool) (*Game, []*testSource) {
	players, sources := testPlayers(n)
	g, err := New(Opts{Players: players, Variant: variant, ExtendedCards: extended})
	if err != nil {
		panic(err)
	}
	return g, sources
}

func resolveTestSource(kind, name string) (DecisionSource, error) {
	return &testSource{}, nil
}

// cardsInPlay counts the deck cards accounted for between rounds
func cardsInPlay(g *Game) int {
	n := g.deck.Size() + len(g.pool) + len(g.trophies) + g.resting()
	for _, p := range g.players {
		for _, c := range p.Jest.Cards() {
			if c.Playable() {
				n++
			}
		}
	}
	return n
}
