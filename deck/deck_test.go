package deck

import (
	"testing"

	utils "github.com/minaorangina/jest/internal"
	"github.com/stretchr/testify/assert"
)

func TestDeck(t *testing.T) {
	t.Run("base deck has 16 standard cards and the joker", func(t *testing.T) {
		d := New(false)
		utils.AssertEqual(t, d.Size(), 17)
		assertOneWild(t, d)
	})

	t.Run("extended deck has 32 standard cards and the joker", func(t *testing.T) {
		d := New(true)
		utils.AssertEqual(t, d.Size(), 33)
		assertOneWild(t, d)
	})

	t.Run("initialize resets to the same cards", func(t *testing.T) {
		d := New(false)
		want := append(Deck{}, d...)

		d.Shuffle()
		d.Deal(5)
		d.Initialize(false)

		assert.ElementsMatch(t, want, d)
	})

	t.Run("shuffle keeps the same cards", func(t *testing.T) {
		d := New(true)
		want := append(Deck{}, d...)
		d.Shuffle()
		assert.ElementsMatch(t, want, d)
	})
}

func TestDeckDraw(t *testing.T) {
	d := New(false)
	first := d[0]

	c, ok := d.Draw()
	assert.True(t, ok)
	utils.AssertEqual(t, c, first)
	utils.AssertEqual(t, d.Size(), 16)

	d.Deal(16)
	assert.True(t, d.IsEmpty())

	_, ok = d.Draw()
	assert.False(t, ok)
}

func TestDeckDeal(t *testing.T) {
	d := New(false)

	dealt := d.Deal(3)
	utils.AssertEqual(t, len(dealt), 3)
	utils.AssertEqual(t, d.Size(), 14)

	rest := d.Deal(20)
	utils.AssertEqual(t, len(rest), 14)
	assert.True(t, d.IsEmpty())

	utils.AssertEqual(t, len(d.Deal(1)), 0)
}

func assertOneWild(t *testing.T, d Deck) {
	t.Helper()

	wilds := 0
	for _, c := range d {
		if c.IsWild() {
			wilds++
		}
	}
	utils.AssertEqual(t, wilds, 1)
}
