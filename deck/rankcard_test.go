package deck

import (
	"testing"

	utils "github.com/minaorangina/jest/internal"
)

func TestRank(t *testing.T) {
	utils.AssertEqual(t, Ace.Value(), 1)
	utils.AssertEqual(t, Eight.Value(), 8)
	utils.AssertEqual(t, WildRank.Value(), 0)
	utils.AssertEqual(t, Three.String(), "Three")
	utils.AssertEqual(t, Rank(42).String(), "Unknown")

	utils.AssertEqual(t, len(Ranks(false)), 4)
	utils.AssertEqual(t, len(Ranks(true)), 8)
	utils.AssertEqual(t, Ranks(true)[7], Eight)
}

func TestSuit(t *testing.T) {
	utils.AssertEqual(t, Spades.String(), "Spades")
	utils.AssertEqual(t, Hearts.Symbol(), "♥")

	priorities := []int{}
	for _, s := range Suits {
		priorities = append(priorities, s.Priority())
	}
	utils.AssertDeepEqual(t, priorities, []int{4, 3, 2, 1})
	utils.AssertEqual(t, Wild.Priority(), 0)
}
