package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/minaorangina/jest/deck"
)

// SnapshotVersion is bumped whenever the saved format changes
const SnapshotVersion = 1

var (
	ErrUnsupportedSnapshot = errors.New("unsupported snapshot version")
	ErrCorruptSnapshot     = errors.New("corrupt snapshot")
)

// Snapshot is everything needed to pick a game up where it was left
type Snapshot struct {
	Version       int              `json:"version"`
	ID            string           `json:"id"`
	Variant       string           `json:"variant"`
	ExtendedCards bool             `json:"extended_cards"`
	BonusMalus    bool             `json:"bonus_malus"`
	State         PlayState        `json:"state"`
	Stage         Stage            `json:"stage"`
	Round         int              `json:"round"`
	Players       []PlayerSnapshot `json:"players"`
	Deck          []deck.Card      `json:"deck"`
	Pool          []deck.Card      `json:"pool"`
	Trophies      []TrophySnapshot `json:"trophies"`
	Awards        []AwardSnapshot  `json:"awards"`
	Offers        []OfferSnapshot  `json:"offers"`
	Order         []string         `json:"order,omitempty"`
	Acted         []string         `json:"acted,omitempty"`
	WinnerID      string           `json:"winner_id,omitempty"`
}

type PlayerSnapshot struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Kind        string      `json:"kind"`
	Jest        []deck.Card `json:"jest"`
	Hand        []deck.Card `json:"hand"`
	BaseScore   int         `json:"base_score"`
	TrophyBonus int         `json:"trophy_bonus"`
}

type TrophySnapshot struct {
	Card   deck.Card `json:"card"`
	Source deck.Card `json:"source"`
}

type AwardSnapshot struct {
	TrophyIndex int    `json:"trophy"`
	PlayerID    string `json:"player_id"`
}

type OfferSnapshot struct {
	OwnerID  string     `json:"owner_id"`
	FaceUp   *deck.Card `json:"face_up,omitempty"`
	FaceDown *deck.Card `json:"face_down,omitempty"`
}

// SourceResolver rebuilds the decision source of a saved player
type SourceResolver func(kind, name string) (DecisionSource, error)

// RestoreOpts configures a restored game
type RestoreOpts struct {
	Resolve   SourceResolver
	Logger    *slog.Logger
	Observers []Observer
}

// Snapshot captures the game's current state
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Version:       SnapshotVersion,
		ID:            g.id,
		Variant:       g.rules.Variant.String(),
		ExtendedCards: g.extended,
		BonusMalus:    g.bonusMalus,
		State:         g.state,
		Stage:         g.stage,
		Round:         g.round,
		Players:       []PlayerSnapshot{},
		Deck:          g.Deck(),
		Pool:          g.Pool(),
		Trophies:      []TrophySnapshot{},
		Awards:        []AwardSnapshot{},
		Offers:        []OfferSnapshot{},
	}

	for _, p := range g.players {
		s.Players = append(s.Players, PlayerSnapshot{
			ID:          p.ID,
			Name:        p.Name,
			Kind:        p.Kind(),
			Jest:        p.Jest.Cards(),
			Hand:        append([]deck.Card{}, p.Hand...),
			BaseScore:   p.BaseScore,
			TrophyBonus: p.TrophyBonus,
		})
	}

	for _, t := range g.trophies {
		s.Trophies = append(s.Trophies, TrophySnapshot{Card: t.Card, Source: t.Source})
	}

	for _, a := range g.awards {
		for i, t := range g.trophies {
			if t.Card == a.Trophy.Card && t.Source == a.Trophy.Source {
				s.Awards = append(s.Awards, AwardSnapshot{TrophyIndex: i, PlayerID: a.Winner.ID})
				break
			}
		}
	}

	for _, o := range g.offers {
		saved := OfferSnapshot{}
		if o.Owner != nil {
			saved.OwnerID = o.Owner.ID
		}
		if up, ok := o.FaceUp(); ok {
			saved.FaceUp = &up
		}
		if down, ok := o.FaceDown(); ok {
			saved.FaceDown = &down
		}
		s.Offers = append(s.Offers, saved)
	}

	for _, p := range g.order {
		s.Order = append(s.Order, p.ID)
	}
	for _, p := range g.players {
		if g.acted[p.ID] {
			s.Acted = append(s.Acted, p.ID)
		}
	}

	if g.winner != nil {
		s.WinnerID = g.winner.ID
	}

	return s
}

// Marshal encodes the game's snapshot as JSON
func (g *Game) Marshal() ([]byte, error) {
	return json.Marshal(g.Snapshot())
}

// UnmarshalSnapshot decodes a snapshot written by Marshal
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrCorruptSnapshot, err.Error())
	}
	if s.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrUnsupportedSnapshot, s.Version)
	}
	return s, nil
}

// Restore rebuilds a game from a snapshot. Each player's decision source is
// rebuilt by opts.Resolve from the saved kind and name.
func Restore(s Snapshot, opts RestoreOpts) (*Game, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSnapshot, s.Version)
	}
	if opts.Resolve == nil {
		return nil, ErrNoDecisionSource
	}
	if len(s.Players) < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(s.Players) > maxPlayers {
		return nil, ErrTooManyPlayers
	}

	variant, err := ParseVariant(s.Variant)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptSnapshot, err.Error())
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	players := []*Player{}
	byID := map[string]*Player{}
	for _, ps := range s.Players {
		source, err := opts.Resolve(ps.Kind, ps.Name)
		if err != nil {
			return nil, fmt.Errorf("could not restore %s: %w", ps.Name, err)
		}
		if source == nil {
			return nil, ErrNoDecisionSource
		}

		p := &Player{
			ID:          ps.ID,
			Name:        ps.Name,
			Jest:        NewJest(ps.Jest...),
			Hand:        append([]deck.Card{}, ps.Hand...),
			BaseScore:   ps.BaseScore,
			TrophyBonus: ps.TrophyBonus,
			Decisions:   source,
		}
		players = append(players, p)
		byID[p.ID] = p
	}

	lookup := func(id string) (*Player, error) {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
		}
		return p, nil
	}

	g := &Game{
		id:         s.ID,
		players:    players,
		deck:       append(deck.Deck{}, s.Deck...),
		rules:      Rules(variant),
		extended:   s.ExtendedCards,
		bonusMalus: s.BonusMalus,
		trophies:   []Trophy{},
		awards:     []Award{},
		pool:       append([]deck.Card{}, s.Pool...),
		offers:     []*Offer{},
		acted:      map[string]bool{},
		round:      s.Round,
		state:      s.State,
		stage:      s.Stage,
		observers:  append([]Observer{}, opts.Observers...),
	}
	if g.id == "" {
		g.id = NewID()
	}
	g.setLogger(opts.Logger)

	for _, ts := range s.Trophies {
		t, ok := NewTrophy(ts.Card.Objective, ts.Card.Target)
		if !ok {
			return nil, fmt.Errorf("%w: unknown trophy %s", ErrCorruptSnapshot, ts.Card)
		}
		t.Source = ts.Source
		g.trophies = append(g.trophies, t)
	}

	for _, as := range s.Awards {
		if as.TrophyIndex < 0 || as.TrophyIndex >= len(g.trophies) {
			return nil, fmt.Errorf("%w: award for unknown trophy %d", ErrCorruptSnapshot, as.TrophyIndex)
		}
		winner, err := lookup(as.PlayerID)
		if err != nil {
			return nil, err
		}
		g.awards = append(g.awards, Award{Trophy: g.trophies[as.TrophyIndex], Winner: winner})
	}

	for _, saved := range s.Offers {
		owner, err := lookup(saved.OwnerID)
		if err != nil {
			return nil, err
		}
		o := &Offer{Owner: owner}
		if saved.FaceUp != nil {
			o.faceUp, o.hasFaceUp = *saved.FaceUp, true
		}
		if saved.FaceDown != nil {
			o.faceDown, o.hasFaceDown = *saved.FaceDown, true
		}
		g.offers = append(g.offers, o)
	}

	for _, id := range s.Order {
		p, err := lookup(id)
		if err != nil {
			return nil, err
		}
		g.order = append(g.order, p)
	}
	for _, id := range s.Acted {
		if _, err := lookup(id); err != nil {
			return nil, err
		}
		g.acted[id] = true
	}

	if s.WinnerID != "" {
		winner, err := lookup(s.WinnerID)
		if err != nil {
			return nil, err
		}
		g.winner = winner
	}

	g.log.Info("game restored", "round", g.round, "state", g.state.String())

	return g, nil
}

func corrupt(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrCorruptSnapshot, fmt.Sprintf(format, a...))
}

// validate rejects snapshots no game could have produced. Every card of the
// configured deck must be in exactly one place.
func (s Snapshot) validate() error {
	if s.State < NotStarted || s.State > Finished {
		return corrupt("unknown state %d", s.State)
	}
	if s.Stage < dealing || s.Stage > settling {
		return corrupt("unknown stage %d", s.Stage)
	}
	if s.State == NotStarted && s.Stage != dealing {
		return corrupt("a game that has not started is at stage %d", s.Stage)
	}
	if s.State == Finished && s.Stage != settling {
		return corrupt("a finished game is at stage %d", s.Stage)
	}
	if s.Round < 0 {
		return corrupt("round %d", s.Round)
	}

	seats := map[string]PlayerSnapshot{}
	for _, ps := range s.Players {
		if ps.ID == "" {
			return corrupt("player %q has no ID", ps.Name)
		}
		if _, dup := seats[ps.ID]; dup {
			return corrupt("duplicate player ID %s", ps.ID)
		}
		seats[ps.ID] = ps
	}

	offered := map[string]OfferSnapshot{}
	resting := 0
	for _, o := range s.Offers {
		if _, ok := seats[o.OwnerID]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPlayer, o.OwnerID)
		}
		if _, dup := offered[o.OwnerID]; dup {
			return corrupt("%s made two offers", o.OwnerID)
		}
		offered[o.OwnerID] = o
		resting += len(o.cards())
	}

	needed := cardsPerHand * len(s.Players)
	switch s.Stage {
	case dealing:
		if resting > 0 && len(s.Deck)+len(s.Pool)+resting >= needed {
			return corrupt("cards left in the offers while a round can still be dealt")
		}
	case offering:
		for _, o := range s.Offers {
			if o.FaceUp == nil || o.FaceDown == nil {
				return corrupt("%s's offer is incomplete before the takes", o.OwnerID)
			}
		}
	case taking:
		if len(s.Offers) != len(s.Players) {
			return corrupt("%d offers for %d players", len(s.Offers), len(s.Players))
		}
	case settling:
		if len(s.Offers) > 0 {
			return corrupt("offers left after the game ended")
		}
	}

	supply := map[deck.Card]int{}
	for _, c := range deck.New(s.ExtendedCards) {
		supply[c]++
	}
	place := func(where string, cards []deck.Card, scoringCards bool) error {
		for _, c := range cards {
			if err := c.Validate(); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrCorruptSnapshot, where, err)
			}
			if !c.Playable() {
				if scoringCards {
					continue
				}
				return corrupt("%s holds %s", where, c)
			}
			supply[c]--
			if supply[c] < 0 {
				return corrupt("%s holds %s, which is already in play or not in the deck", where, c)
			}
		}
		return nil
	}

	if err := place("deck", s.Deck, false); err != nil {
		return err
	}
	if err := place("pool", s.Pool, false); err != nil {
		return err
	}
	for _, t := range s.Trophies {
		if err := t.Card.Validate(); err != nil || !t.Card.IsTrophy() {
			return corrupt("trophy %s is not a trophy card", t.Card)
		}
		if err := place("trophies", []deck.Card{t.Source}, false); err != nil {
			return err
		}
	}
	for _, o := range s.Offers {
		if err := place(o.OwnerID+"'s offer", o.cards(), false); err != nil {
			return err
		}
	}

	for _, ps := range s.Players {
		if err := place(ps.ID+"'s jest", ps.Jest, true); err != nil {
			return err
		}

		inRound := s.State == InProgress && (s.Stage == offering || s.Stage == taking)
		if !inRound {
			if len(ps.Hand) > 0 {
				return corrupt("%s holds a hand between rounds", ps.ID)
			}
			continue
		}
		if len(ps.Hand) != cardsPerHand {
			return corrupt("%s holds %d cards", ps.ID, len(ps.Hand))
		}

		o, ok := offered[ps.ID]
		if !ok {
			if s.Stage == taking {
				return corrupt("%s made no offer", ps.ID)
			}
			if err := place(ps.ID+"'s hand", ps.Hand, false); err != nil {
				return err
			}
			continue
		}
		for _, c := range o.cards() {
			if !containsCard(ps.Hand, c) {
				return corrupt("%s offered %s, which is not in their hand", ps.ID, c)
			}
		}
	}

	for c, n := range supply {
		if n != 0 {
			return corrupt("%s is missing", c)
		}
	}

	return nil
}

func (o OfferSnapshot) cards() []deck.Card {
	cards := []deck.Card{}
	if o.FaceUp != nil {
		cards = append(cards, *o.FaceUp)
	}
	if o.FaceDown != nil {
		cards = append(cards, *o.FaceDown)
	}
	return cards
}
