package protocol

import (
	"github.com/minaorangina/jest/deck"
)

type Player struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// Offer is the public view of an offer: the face-down card is never revealed
type Offer struct {
	Owner       Player     `json:"owner"`
	FaceUp      *deck.Card `json:"faceUp,omitempty"`
	HasFaceDown bool       `json:"hasFaceDown"`
}

// Score is a player's result at the end of the game
type Score struct {
	Player      Player      `json:"player"`
	Base        int         `json:"base"`
	TrophyBonus int         `json:"trophyBonus"`
	Final       int         `json:"final"`
	Jest        []deck.Card `json:"jest"`
}

// Event is published by the game after each state transition
type Event struct {
	Kind     Kind        `json:"kind"`
	GameID   string      `json:"gameID"`
	Round    int         `json:"round,omitempty"`
	Player   *Player     `json:"player,omitempty"`
	Card     *deck.Card  `json:"card,omitempty"`
	Offers   []Offer     `json:"offers,omitempty"`
	Trophies []deck.Card `json:"trophies,omitempty"`
	Points   int         `json:"points,omitempty"`
	Winner   *Player     `json:"winner,omitempty"`
	Scores   []Score     `json:"scores,omitempty"`
	Message  string      `json:"message,omitempty"`
}
