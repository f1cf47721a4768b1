package game

import (
	"fmt"

	"github.com/minaorangina/jest/deck"
	"github.com/minaorangina/jest/protocol"
)

func buildPlayer(p *Player) protocol.Player {
	return protocol.Player{PlayerID: p.ID, Name: p.Name}
}

func buildPlayerRef(p *Player) *protocol.Player {
	if p == nil {
		return nil
	}
	info := buildPlayer(p)
	return &info
}

// BuildOffer is the public view of an offer
func BuildOffer(o *Offer) protocol.Offer {
	view := protocol.Offer{}
	if o.Owner != nil {
		view.Owner = buildPlayer(o.Owner)
	}
	if up, ok := o.FaceUp(); ok {
		view.FaceUp = &up
	}
	_, view.HasFaceDown = o.FaceDown()
	return view
}

// BuildScores lists every player's result
func (g *Game) BuildScores() []protocol.Score {
	scores := []protocol.Score{}
	for _, p := range g.players {
		scores = append(scores, protocol.Score{
			Player:      buildPlayer(p),
			Base:        p.BaseScore,
			TrophyBonus: p.TrophyBonus,
			Final:       p.FinalScore(),
			Jest:        p.Jest.Cards(),
		})
	}
	return scores
}

func (g *Game) buildStartEvent() protocol.Event {
	trophies := []deck.Card{}
	for _, t := range g.trophies {
		trophies = append(trophies, t.Card)
	}

	msg := "No trophies for this game."
	if len(g.trophies) > 0 {
		msg = fmt.Sprintf("%d trophies for this game.", len(g.trophies))
	}

	return protocol.Event{
		Kind:     protocol.GameStarted,
		Round:    g.round,
		Trophies: trophies,
		Message:  msg,
	}
}

func (g *Game) buildOffersEvent() protocol.Event {
	offers := []protocol.Offer{}
	for _, o := range g.offers {
		offers = append(offers, BuildOffer(o))
	}

	return protocol.Event{
		Kind:   protocol.OffersCreated,
		Round:  g.round,
		Offers: offers,
	}
}

func (g *Game) buildCardTakenEvent(p *Player, c deck.Card) protocol.Event {
	return protocol.Event{
		Kind:    protocol.CardTaken,
		Round:   g.round,
		Player:  buildPlayerRef(p),
		Card:    &c,
		Message: fmt.Sprintf("%s takes %s", p.Name, c),
	}
}

func (g *Game) buildTrophyEvent(t Trophy, winner *Player) protocol.Event {
	c := t.Card
	return protocol.Event{
		Kind:    protocol.TrophyAwarded,
		Player:  buildPlayerRef(winner),
		Card:    &c,
		Message: fmt.Sprintf("%s wins the %s trophy", winner.Name, t.Name),
	}
}

func (g *Game) buildBonusMalusEvent(target *Player, c deck.Card) protocol.Event {
	return protocol.Event{
		Kind:    protocol.BonusMalusApplied,
		Player:  buildPlayerRef(target),
		Card:    &c,
		Points:  c.Points,
		Message: fmt.Sprintf("%s gets %s", target.Name, c),
	}
}

func (g *Game) buildGameOverEvent() protocol.Event {
	e := protocol.Event{
		Kind:   protocol.GameOver,
		Winner: buildPlayerRef(g.winner),
		Scores: g.BuildScores(),
	}
	if g.winner != nil {
		e.Message = fmt.Sprintf("%s wins with %d points", g.winner.Name, g.winner.FinalScore())
	} else {
		e.Message = "Nobody wins."
	}
	return e
}
