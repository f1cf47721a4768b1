package game

import (
	"encoding/json"
	"testing"

	"github.com/minaorangina/jest/deck"
	utils "github.com/minaorangina/jest/internal"
	"github.com/stretchr/testify/assert"
)

var (
	aceSpades    = deck.MustCard(deck.Spades, deck.Ace)
	threeSpades  = deck.MustCard(deck.Spades, deck.Three)
	fourSpades   = deck.MustCard(deck.Spades, deck.Four)
	sevenSpades  = deck.MustCard(deck.Spades, deck.Seven)
	threeClubs   = deck.MustCard(deck.Clubs, deck.Three)
	twoClubs     = deck.MustCard(deck.Clubs, deck.Two)
	aceDiamonds  = deck.MustCard(deck.Diamonds, deck.Ace)
	fourDiamonds = deck.MustCard(deck.Diamonds, deck.Four)
	aceHearts    = deck.MustCard(deck.Hearts, deck.Ace)
	twoHearts    = deck.MustCard(deck.Hearts, deck.Two)
	threeHearts  = deck.MustCard(deck.Hearts, deck.Three)
	fourHearts   = deck.MustCard(deck.Hearts, deck.Four)
	joker        = deck.NewWildCard()
)

func TestJestQueries(t *testing.T) {
	trophy := deck.NewTrophyCard(deck.Majority, deck.Hearts)
	bm, err := deck.NewBonusMalusCard(-2)
	utils.AssertNoError(t, err)

	j := NewJest(aceSpades, threeSpades, twoHearts, joker, trophy, bm)

	t.Run("counts skip trophy and bonus/malus cards", func(t *testing.T) {
		utils.AssertEqual(t, j.Len(), 6)
		utils.AssertEqual(t, j.CountSuit(deck.Spades), 2)
		utils.AssertEqual(t, j.CountSuit(deck.Hearts), 1)
		utils.AssertEqual(t, j.CountSuit(deck.Wild), 1)
		utils.AssertEqual(t, j.CountRank(deck.Three), 1)
		utils.AssertEqual(t, j.CountRank(deck.WildRank), 1)
		utils.AssertEqual(t, j.SuitValue(deck.Spades), 4)
		utils.AssertEqual(t, j.SuitValue(deck.Wild), 0)
	})

	t.Run("the joker is found but trophies never count as one", func(t *testing.T) {
		utils.AssertTrue(t, j.HasWild())
		utils.AssertTrue(t, !NewJest(trophy).HasWild())
	})

	t.Run("suit counts never exceed the number of cards", func(t *testing.T) {
		total := 0
		for _, s := range deck.Suits {
			total += j.CountSuit(s)
		}
		if j.HasWild() {
			total++
		}
		utils.AssertTrue(t, total <= j.Len())
	})

	t.Run("strongest card", func(t *testing.T) {
		utils.AssertEqual(t, j.MaxStrength(), threeSpades.Strength())
		utils.AssertEqual(t, NewJest().MaxStrength(), 0)
	})

	t.Run("Has only matches standard cards", func(t *testing.T) {
		utils.AssertTrue(t, j.Has(deck.Spades, deck.Ace))
		utils.AssertTrue(t, !j.Has(deck.Clubs, deck.Ace))
		utils.AssertTrue(t, !j.Has(deck.Wild, deck.WildRank))
	})

	t.Run("trophies", func(t *testing.T) {
		utils.AssertDeepEqual(t, j.Trophies(), []deck.Card{trophy})
	})
}

func TestJestCardsIsACopy(t *testing.T) {
	j := NewJest(aceSpades)
	cards := j.Cards()
	cards[0] = fourDiamonds

	utils.AssertEqual(t, j.Cards()[0], aceSpades)

	j.Add(twoHearts)
	utils.AssertDeepEqual(t, j.Cards(), []deck.Card{aceSpades, twoHearts})
}

func TestJestJSON(t *testing.T) {
	j := NewJest(aceSpades, joker, deck.NewTrophyCard(deck.Highest, deck.Clubs))

	data, err := json.Marshal(j)
	utils.AssertNoError(t, err)

	got := NewJest()
	utils.AssertNoError(t, json.Unmarshal(data, got))
	assert.Equal(t, j.Cards(), got.Cards())
}
