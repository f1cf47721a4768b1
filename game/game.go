package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/minaorangina/jest/deck"
	"github.com/minaorangina/jest/protocol"
)

var (
	ErrTooFewPlayers      = errors.New("minimum of 3 players required")
	ErrTooManyPlayers     = errors.New("maximum of 4 players allowed")
	ErrNoDecisionSource   = errors.New("player has no decision source")
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrGameNotInProgress  = errors.New("game is not in progress")
	ErrGameOver           = errors.New("game is already over")
	ErrGameNotOver        = errors.New("game is not over yet")
	ErrInvalidOffer       = errors.New("invalid offer")
	ErrInvalidChoice      = errors.New("invalid choice")
	ErrNoOfferAvailable   = errors.New("no offer available")
	ErrUnknownPlayer      = errors.New("unknown player")
	ErrDuplicatePlayer    = errors.New("player is seated twice")
)

const (
	minPlayers   = 3
	maxPlayers   = 4
	cardsPerHand = 2
)

// Observer receives an event after each state transition. It must not block
// for long and must not change the game.
type Observer func(protocol.Event)

// Opts configures a new game
type Opts struct {
	ID            string
	Players       []*Player
	Variant       Variant
	ExtendedCards bool
	BonusMalus    bool
	Logger        *slog.Logger
	Observers     []Observer
}

// Game runs a game of Jest, round after round, and settles the score.
// A game is driven from one goroutine.
type Game struct {
	id         string
	players    []*Player
	deck       deck.Deck
	rules      RuleSet
	extended   bool
	bonusMalus bool
	trophies   []Trophy
	awards     []Award
	pool       []deck.Card
	offers     []*Offer
	order      []*Player
	acted      map[string]bool
	round      int
	state      PlayState
	stage      Stage
	winner     *Player
	observers  []Observer
	log        *slog.Logger
}

// New constructs a game that has not started yet
func New(opts Opts) (*Game, error) {
	if len(opts.Players) < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(opts.Players) > maxPlayers {
		return nil, ErrTooManyPlayers
	}
	seated := map[string]bool{}
	for _, p := range opts.Players {
		if p == nil || p.Decisions == nil {
			return nil, ErrNoDecisionSource
		}
		if seated[p.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.Name)
		}
		seated[p.ID] = true
		if p.Jest == nil {
			p.Jest = NewJest()
		}
	}

	id := opts.ID
	if id == "" {
		id = NewID()
	}

	g := &Game{
		id:         id,
		players:    append([]*Player{}, opts.Players...),
		deck:       deck.New(opts.ExtendedCards),
		rules:      Rules(opts.Variant),
		extended:   opts.ExtendedCards,
		bonusMalus: opts.BonusMalus,
		trophies:   []Trophy{},
		awards:     []Award{},
		pool:       []deck.Card{},
		acted:      map[string]bool{},
		observers:  append([]Observer{}, opts.Observers...),
	}
	g.setLogger(opts.Logger)

	return g, nil
}

func (g *Game) setLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g.log = l.With("game_id", g.id)
}

func (g *Game) ID() string { return g.id }
func (g *Game) State() PlayState { return g.state }
func (g *Game) Round() int { return g.round }
func (g *Game) Rules() RuleSet { return g.rules }
func (g *Game) ExtendedCards() bool { return g.extended }
func (g *Game) BonusMalusEnabled() bool { return g.bonusMalus }

// Winner is the winner of a finished game
func (g *Game) Winner() *Player { return g.winner }

// Players returns the players in seat order
func (g *Game) Players() []*Player {
	return append([]*Player{}, g.players...)
}

// Deck returns a copy of what is left of the deck
func (g *Game) Deck() deck.Deck {
	return append(deck.Deck{}, g.deck...)
}

// Pool returns a copy of the cards carried over to the next round
func (g *Game) Pool() []deck.Card {
	return append([]deck.Card{}, g.pool...)
}

// Trophies returns the trophies drawn for this game
func (g *Game) Trophies() []Trophy {
	return append([]Trophy{}, g.trophies...)
}

// Awards returns the trophies won so far, in the order they were drawn
func (g *Game) Awards() []Award {
	return append([]Award{}, g.awards...)
}

// Offers returns the offers of the current round
func (g *Game) Offers() []*Offer {
	return copyOffers(g.offers)
}

// Subscribe adds an observer
func (g *Game) Subscribe(o Observer) {
	g.observers = append(g.observers, o)
}

func (g *Game) publish(e protocol.Event) {
	e.GameID = g.id
	for _, o := range g.observers {
		o(e)
	}
}

// others returns every player but p
func (g *Game) others(p *Player) []*Player {
	others := []*Player{}
	for _, other := range g.players {
		if other != p {
			others = append(others, other)
		}
	}
	return others
}

func (g *Game) findPlayer(id string) (*Player, bool) {
	for _, p := range g.players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Start shuffles the deck and draws the trophies
func (g *Game) Start() error {
	if g.state != NotStarted {
		return ErrGameAlreadyStarted
	}

	g.deck.Shuffle()

	g.trophies = []Trophy{}
	for i := 0; i < NumberOfTrophies(len(g.players)); i++ {
		c, ok := g.deck.Draw()
		if !ok {
			break
		}
		g.trophies = append(g.trophies, TrophyFromCard(c))
	}

	g.state = InProgress
	g.stage = dealing
	g.round = 1

	names := []string{}
	for _, t := range g.trophies {
		names = append(names, t.Name)
	}
	g.log.Info("game started",
		"players", len(g.players),
		"variant", g.rules.Variant.String(),
		"extended_cards", g.extended,
		"trophies", names)
	g.publish(g.buildStartEvent())

	return nil
}

func (g *Game) needed() int {
	return cardsPerHand * len(g.players)
}

// resting counts the cards left in this round's offers
func (g *Game) resting() int {
	n := 0
	for _, o := range g.offers {
		n += len(o.Remaining())
	}
	return n
}

// IsGameOver reports whether there are too few cards left to deal another round
func (g *Game) IsGameOver() bool {
	return g.deck.Size()+len(g.pool)+g.resting() < g.needed()
}

// DealRound starts a round by giving every player two cards, taken from the
// carry-over pool first and then from the deck. It deals nothing unless the
// game is in progress and waiting for a deal, or if there aren't enough cards.
func (g *Game) DealRound() bool {
	if g.state != InProgress || g.stage != dealing {
		return false
	}

	needed := g.needed()
	if g.deck.Size()+len(g.pool) < needed {
		g.log.Debug("not enough cards to deal a round", "round", g.round)
		return false
	}

	supply := append([]deck.Card{}, g.pool...)
	supply = append(supply, g.deck.Deal(needed-len(supply))...)
	rand.Shuffle(len(supply), func(i, j int) {
		supply[i], supply[j] = supply[j], supply[i]
	})

	for i, p := range g.players {
		p.receiveCards(supply[i*cardsPerHand : (i+1)*cardsPerHand]...)
	}
	g.pool = append([]deck.Card{}, supply[needed:]...)

	g.offers = []*Offer{}
	g.order = nil
	g.acted = map[string]bool{}
	g.stage = offering
	g.log.Debug("round dealt", "round", g.round)
	g.publish(protocol.Event{Kind: protocol.RoundStart, Round: g.round})

	return true
}

// PlayRound plays one round: deal, offers, takes in turn order.
// If a decision source answers with something illegal, the error is returned
// and nothing is changed by that answer; calling PlayRound again carries on
// from where the round stopped.
func (g *Game) PlayRound() error {
	switch g.state {
	case NotStarted:
		return ErrGameNotInProgress
	case Finished:
		return ErrGameOver
	}

	if g.stage == settling {
		return ErrGameOver
	}

	if g.stage == dealing && !g.DealRound() {
		return nil
	}

	if g.stage == offering {
		if err := g.collectOffers(); err != nil {
			return err
		}
		g.order = turnOrder(g.offers)
		g.stage = taking
		g.publish(g.buildOffersEvent())
	}

	if err := g.takeTurns(); err != nil {
		return err
	}

	g.closeRound()
	return nil
}

func (g *Game) offerOf(p *Player) *Offer {
	for _, o := range g.offers {
		if o.Owner == p {
			return o
		}
	}
	return nil
}

func (g *Game) collectOffers() error {
	for _, p := range g.players {
		if g.offerOf(p) != nil {
			continue
		}

		hand := append([]deck.Card{}, p.Hand...)
		offer, err := p.Decisions.MakeOffer(p, hand, g)
		if err != nil {
			return fmt.Errorf("%s could not make an offer: %w", p.Name, err)
		}
		if err := validateOffer(p, offer); err != nil {
			g.log.Warn("offer rejected", "player", p.Name, "error", err)
			return err
		}

		g.offers = append(g.offers, offer)
		g.log.Debug("offer made", "player", p.Name, "offer", offer.String())
	}

	return nil
}

func validateOffer(p *Player, o *Offer) error {
	if o == nil {
		return fmt.Errorf("%w: %s made no offer", ErrInvalidOffer, p.Name)
	}
	if o.Owner != p {
		return fmt.Errorf("%w: offer does not belong to %s", ErrInvalidOffer, p.Name)
	}
	if !o.Complete() {
		return fmt.Errorf("%w: %s's offer needs a face-up and a face-down card", ErrInvalidOffer, p.Name)
	}
	if len(p.Hand) != cardsPerHand {
		return fmt.Errorf("%w: %s holds %d cards instead of %d", ErrInvalidOffer, p.Name, len(p.Hand), cardsPerHand)
	}

	up, _ := o.FaceUp()
	down, _ := o.FaceDown()
	if up == down {
		return fmt.Errorf("%w: %s offered %s twice", ErrInvalidOffer, p.Name, up)
	}
	if !containsCard(p.Hand, up) || !containsCard(p.Hand, down) {
		return fmt.Errorf("%w: %s offered cards that are not in their hand", ErrInvalidOffer, p.Name)
	}

	return nil
}

// availableOffers lists the complete offers p may take from: anyone else's,
// or p's own when no other is complete
func (g *Game) availableOffers(p *Player) []*Offer {
	available := []*Offer{}
	for _, o := range g.offers {
		if o.Complete() && o.Owner != p {
			available = append(available, o)
		}
	}

	if len(available) == 0 {
		if own := g.offerOf(p); own != nil && own.Complete() {
			available = append(available, own)
		}
	}

	return available
}

func (g *Game) takeTurns() error {
	for _, p := range g.order {
		if g.acted[p.ID] {
			continue
		}

		available := g.availableOffers(p)
		if len(available) == 0 {
			return fmt.Errorf("%w for %s", ErrNoOfferAvailable, p.Name)
		}

		chosen, err := p.Decisions.ChooseCard(p, copyOffers(available), g)
		if err != nil {
			return fmt.Errorf("%s could not choose a card: %w", p.Name, err)
		}

		var from *Offer
		for _, o := range available {
			if o.Contains(chosen) {
				from = o
				break
			}
		}
		if from == nil {
			g.log.Warn("choice rejected", "player", p.Name, "card", chosen.String())
			return fmt.Errorf("%w: %s chose %s, which is not on offer", ErrInvalidChoice, p.Name, chosen)
		}

		card, err := from.Take(chosen)
		if err != nil {
			return err
		}
		p.Jest.Add(card)
		g.acted[p.ID] = true

		g.log.Debug("card taken", "player", p.Name, "card", card.String(), "from", from.ownerName())
		g.publish(g.buildCardTakenEvent(p, card))
	}

	return nil
}

// closeRound carries the cards left in the offers over to the next round.
// When they can no longer make up a round with the deck and the pool, they
// stay where they are for Finish to hand back to their owners.
func (g *Game) closeRound() {
	for _, p := range g.players {
		p.clearHand()
	}

	if g.deck.Size()+len(g.pool)+g.resting() >= g.needed() {
		for _, o := range g.offers {
			g.pool = append(g.pool, o.clear()...)
		}
		g.offers = []*Offer{}
	}

	g.order = nil
	g.acted = map[string]bool{}
	g.stage = dealing
	g.round++
}

// Play starts the game if needed, plays rounds until the cards run out and
// settles the score.
func (g *Game) Play() (*Player, error) {
	if g.state == NotStarted {
		if err := g.Start(); err != nil {
			return nil, err
		}
	}

	for g.roundPending() {
		if err := g.PlayRound(); err != nil {
			return nil, err
		}
	}

	return g.Finish()
}

func (g *Game) roundPending() bool {
	if g.state != InProgress {
		return false
	}
	switch g.stage {
	case offering, taking:
		return true
	case dealing:
		return !g.IsGameOver()
	}
	return false
}

// Finish ends the game: the cards left in the last offers go to their owners,
// every Jest is scored, trophies are awarded and the winner is decided.
func (g *Game) Finish() (*Player, error) {
	switch g.state {
	case NotStarted:
		return nil, ErrGameNotInProgress
	case Finished:
		return g.winner, ErrGameOver
	}

	if g.stage != settling {
		if g.stage != dealing || !g.IsGameOver() {
			return nil, ErrGameNotOver
		}
		g.sweepOffers()
		g.scoreJests()
		g.resolveTrophies()
		g.stage = settling
	}

	if g.bonusMalus {
		if err := g.applyBonusMalus(); err != nil {
			return nil, err
		}
	}

	g.winner = g.leader()
	g.state = Finished

	if g.winner != nil {
		g.log.Info("game over", "winner", g.winner.Name, "score", g.winner.FinalScore(), "rounds", g.round-1)
	}
	g.publish(g.buildGameOverEvent())

	return g.winner, nil
}

func (g *Game) sweepOffers() {
	for _, o := range g.offers {
		if o.Owner == nil {
			continue
		}
		for _, c := range o.clear() {
			o.Owner.Jest.Add(c)
		}
	}
	g.offers = []*Offer{}
}

func (g *Game) scoreJests() {
	for _, p := range g.players {
		p.BaseScore = g.rules.Scorer.Score(p.Jest)
	}
}

func (g *Game) resolveTrophies() {
	g.awards = []Award{}
	for _, t := range g.trophies {
		winner := g.awardTrophy(t)
		if winner == nil {
			g.log.Info("trophy not awarded", "trophy", t.Name)
			continue
		}
		g.awards = append(g.awards, Award{Trophy: t, Winner: winner})
		g.log.Info("trophy awarded", "trophy", t.Name, "player", winner.Name)
		g.publish(g.buildTrophyEvent(t, winner))
	}
}

// applyBonusMalus lets the player with the lowest score hand a bonus/malus
// card to any player, if their decision source knows how
func (g *Game) applyBonusMalus() error {
	chooser := g.trailer()
	if chooser == nil {
		return nil
	}
	bm, ok := chooser.Decisions.(BonusMalusChooser)
	if !ok {
		return nil
	}

	card, target, err := bm.ChooseBonusMalus(chooser, g.Players(), g)
	if err != nil {
		return fmt.Errorf("%s could not pick a bonus/malus card: %w", chooser.Name, err)
	}
	if !card.IsBonusMalus() {
		return fmt.Errorf("%w: %s is not a bonus/malus card", ErrInvalidChoice, card)
	}
	if _, err := deck.NewBonusMalusCard(card.Points); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidChoice, err.Error())
	}
	if target == nil {
		return fmt.Errorf("%w: no target for the bonus/malus card", ErrUnknownPlayer)
	}
	if _, ok := g.findPlayer(target.ID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, target.Name)
	}

	target.Jest.Add(card)
	target.AddTrophyBonus(card.Points)

	g.log.Info("bonus/malus applied", "from", chooser.Name, "to", target.Name, "points", card.Points)
	g.publish(g.buildBonusMalusEvent(target, card))

	return nil
}

// leader is the first player with the highest final score
func (g *Game) leader() *Player {
	var best *Player
	for _, p := range g.players {
		if best == nil || p.FinalScore() > best.FinalScore() {
			best = p
		}
	}
	return best
}

// trailer is the first player with the lowest final score
func (g *Game) trailer() *Player {
	var worst *Player
	for _, p := range g.players {
		if worst == nil || p.FinalScore() < worst.FinalScore() {
			worst = p
		}
	}
	return worst
}
