package players

import (
	"bytes"
	"testing"

	"github.com/minaorangina/jest/protocol"
	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	out := &bytes.Buffer{}
	display := NewDisplay(out)

	up := threeSpades
	display(protocol.Event{Kind: protocol.RoundStart, Round: 2})
	display(protocol.Event{Kind: protocol.OffersCreated, Offers: []protocol.Offer{
		{Owner: protocol.Player{Name: "ana"}, FaceUp: &up, HasFaceDown: true},
	}})
	display(protocol.Event{Kind: protocol.CardTaken, Message: "bo takes 3♠"})
	display(protocol.Event{
		Kind:   protocol.GameOver,
		Winner: &protocol.Player{Name: "bo"},
		Scores: []protocol.Score{{Player: protocol.Player{Name: "bo"}, Base: 5, TrophyBonus: 0, Final: 5}},
	})

	text := out.String()
	assert.Contains(t, text, "=== Round 2 ===")
	assert.Contains(t, text, "- ana: 3♠ ?")
	assert.Contains(t, text, "bo takes 3♠")
	assert.Contains(t, text, "- bo: 5 (5 + 0)")
	assert.Contains(t, text, "bo wins!")
}

func TestDisplayPrintsMessagesAsTheyAre(t *testing.T) {
	out := &bytes.Buffer{}
	display := NewDisplay(out)

	display(protocol.Event{Kind: protocol.CardTaken, Message: "100% Ada takes 3♠"})

	assert.Equal(t, "100% Ada takes 3♠\n", out.String())
}
