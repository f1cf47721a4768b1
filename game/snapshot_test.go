package game

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/minaorangina/jest/deck"
	utils "github.com/minaorangina/jest/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreFromJSON(t *testing.T, g *Game) *Game {
	t.Helper()

	data, err := g.Marshal()
	require.NoError(t, err)

	s, err := UnmarshalSnapshot(data)
	require.NoError(t, err)

	restored, err := Restore(s, RestoreOpts{Resolve: resolveTestSource})
	require.NoError(t, err)
	return restored
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Run("between rounds", func(t *testing.T) {
		g, _ := newTestGame(3, VariantB, false)
		require.NoError(t, g.Start())
		require.NoError(t, g.PlayRound())

		restored := restoreFromJSON(t, g)

		assert.Equal(t, g.Snapshot(), restored.Snapshot())
		utils.AssertEqual(t, restored.Rules().Variant, VariantB)
		utils.AssertEqual(t, cardsInPlay(restored), 17)

		t.Log("and the restored game plays on to the end")
		_, err := restored.Play()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, restored.State(), Finished)
	})

	t.Run("in the middle of a round", func(t *testing.T) {
		g, sources := newTestGame(3, VariantA, false)
		require.NoError(t, g.Start())
		sources[2].badChoices = 1

		require.Error(t, g.PlayRound())
		utils.AssertEqual(t, g.stage, taking)

		restored := restoreFromJSON(t, g)
		assert.Equal(t, g.Snapshot(), restored.Snapshot())

		require.NoError(t, restored.PlayRound())
		for _, p := range restored.Players() {
			utils.AssertEqual(t, p.Jest.Len(), 1)
		}
		utils.AssertEqual(t, cardsInPlay(restored), 17)
	})

	t.Run("a finished game", func(t *testing.T) {
		g, _ := newTestGame(4, VariantC, true)
		winner, err := g.Play()
		require.NoError(t, err)

		restored := restoreFromJSON(t, g)

		assert.Equal(t, g.Snapshot(), restored.Snapshot())
		utils.AssertEqual(t, restored.Winner().ID, winner.ID)
		utils.AssertEqual(t, len(restored.Awards()), len(g.Awards()))
		_, err = restored.Finish()
		utils.AssertTrue(t, errors.Is(err, ErrGameOver))
	})
}

func TestRestoreRejectsBadSnapshots(t *testing.T) {
	g, _ := newTestGame(3, VariantA, false)
	require.NoError(t, g.Start())
	require.NoError(t, g.PlayRound())

	t.Run("unknown version", func(t *testing.T) {
		s := g.Snapshot()
		s.Version = SnapshotVersion + 1
		data, err := json.Marshal(s)
		require.NoError(t, err)

		_, err = UnmarshalSnapshot(data)
		utils.AssertTrue(t, errors.Is(err, ErrUnsupportedSnapshot))

		_, err = Restore(s, RestoreOpts{Resolve: resolveTestSource})
		utils.AssertTrue(t, errors.Is(err, ErrUnsupportedSnapshot))
	})

	t.Run("not json", func(t *testing.T) {
		_, err := UnmarshalSnapshot([]byte("{"))
		utils.AssertTrue(t, errors.Is(err, ErrCorruptSnapshot))
	})

	t.Run("unknown player", func(t *testing.T) {
		s := g.Snapshot()
		s.Offers = append(s.Offers, OfferSnapshot{OwnerID: "nobody"})

		_, err := Restore(s, RestoreOpts{Resolve: resolveTestSource})
		utils.AssertTrue(t, errors.Is(err, ErrUnknownPlayer))
	})

	t.Run("duplicate player", func(t *testing.T) {
		s := g.Snapshot()
		s.Players[1].ID = s.Players[0].ID

		_, err := Restore(s, RestoreOpts{Resolve: resolveTestSource})
		utils.AssertTrue(t, errors.Is(err, ErrCorruptSnapshot))
	})

	t.Run("a standard card with the wild suit and rank", func(t *testing.T) {
		s := g.Snapshot()
		s.Deck = append(s.Deck, deck.Card{Kind: deck.StandardKind, Suit: deck.Wild, Rank: deck.WildRank})

		_, err := Restore(s, RestoreOpts{Resolve: resolveTestSource})
		utils.AssertTrue(t, errors.Is(err, ErrCorruptSnapshot))
		var invalid *deck.InvalidCardError
		utils.AssertTrue(t, errors.As(err, &invalid))
	})

	corrupted := []struct {
		name   string
		change func(s *Snapshot)
	}{
		{"a card held twice", func(s *Snapshot) {
			s.Deck = append(s.Deck, s.Deck[0])
		}},
		{"a card gone missing", func(s *Snapshot) {
			s.Deck = s.Deck[1:]
		}},
		{"a card from the extended deck", func(s *Snapshot) {
			s.Pool = append(s.Pool, deck.MustCard(deck.Spades, deck.Eight))
		}},
		{"a trophy card in the pool", func(s *Snapshot) {
			s.Pool = append(s.Pool, deck.NewTrophyCard(deck.Joker, deck.Wild))
		}},
		{"an unknown state", func(s *Snapshot) {
			s.State = Finished + 1
		}},
		{"an unknown stage", func(s *Snapshot) {
			s.Stage = settling + 1
		}},
		{"a finished game in the middle of a round", func(s *Snapshot) {
			s.State = Finished
		}},
		{"cards left in an offer while a round can still be dealt", func(s *Snapshot) {
			up, down := s.Pool[0], s.Pool[1]
			s.Offers = []OfferSnapshot{{OwnerID: s.Players[0].ID, FaceUp: &up, FaceDown: &down}}
			s.Pool = s.Pool[2:]
		}},
		{"a hand between rounds", func(s *Snapshot) {
			s.Players[0].Hand = append([]deck.Card{}, s.Deck[:2]...)
			s.Deck = s.Deck[2:]
		}},
	}

	for _, tc := range corrupted {
		t.Run(tc.name, func(t *testing.T) {
			s := g.Snapshot()
			tc.change(&s)

			_, err := Restore(s, RestoreOpts{Resolve: resolveTestSource})
			utils.AssertTrue(t, errors.Is(err, ErrCorruptSnapshot))
		})
	}

	t.Run("a hand that does not match the offer", func(t *testing.T) {
		mid, sources := newTestGame(3, VariantA, false)
		require.NoError(t, mid.Start())
		sources[2].badChoices = 1
		require.Error(t, mid.PlayRound())

		s := mid.Snapshot()
		s.Players[0].Hand[0], s.Deck[0] = s.Deck[0], s.Players[0].Hand[0]

		_, err := Restore(s, RestoreOpts{Resolve: resolveTestSource})
		utils.AssertTrue(t, errors.Is(err, ErrCorruptSnapshot))
	})

	t.Run("no resolver", func(t *testing.T) {
		_, err := Restore(g.Snapshot(), RestoreOpts{})
		utils.AssertTrue(t, errors.Is(err, ErrNoDecisionSource))
	})

	t.Run("resolver failure", func(t *testing.T) {
		failing := errors.New("no such kind")
		resolve := func(kind, name string) (DecisionSource, error) { return nil, failing }

		_, err := Restore(g.Snapshot(), RestoreOpts{Resolve: resolve})
		utils.AssertTrue(t, errors.Is(err, failing))
	})
}
