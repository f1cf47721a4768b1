package players

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/jest/deck"
	"github.com/minaorangina/jest/game"
)

const (
	upperCaseA = 'A'
	retries    = 3
)

var bonusMalusPoints = []int{2, 1, -1, -2, -3}

// ConsolePlayer asks a human for every decision, using letter codes
type ConsolePlayer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsolePlayer(in io.Reader, out io.Writer) *ConsolePlayer {
	return &ConsolePlayer{in: bufio.NewReader(in), out: out}
}

func (c *ConsolePlayer) Kind() string { return KindHuman }

func (c *ConsolePlayer) MakeOffer(p *game.Player, hand []deck.Card, g *game.Game) (*game.Offer, error) {
	if err := validHand(hand); err != nil {
		return nil, err
	}

	SendText(c.out, "\n%s, here is your hand:\n", p.Name)
	SendText(c.out, "%s", buildOptionsText(cardNames(hand)))

	i, err := c.readChoice(offerPromptText, len(hand))
	if err != nil {
		return nil, err
	}

	return game.NewOffer(p, hand[i], hand[1-i]), nil
}

func (c *ConsolePlayer) ChooseCard(p *game.Player, offers []*game.Offer, g *game.Game) (deck.Card, error) {
	cards := []deck.Card{}
	names := []string{}
	for _, o := range offers {
		owner := o.Owner.Name
		if up, ok := o.FaceUp(); ok {
			cards = append(cards, up)
			names = append(names, fmt.Sprintf("%s (%s's offer, face up)", up, owner))
		}
		if down, ok := o.FaceDown(); ok {
			cards = append(cards, down)
			names = append(names, fmt.Sprintf("hidden card (%s's offer)", owner))
		}
	}
	if len(cards) == 0 {
		return deck.Card{}, ErrNothingToTake
	}

	SendText(c.out, "\n%s, take a card:\n", p.Name)
	SendText(c.out, "%s", buildOptionsText(names))

	i, err := c.readChoice(takePromptText, len(cards))
	if err != nil {
		return deck.Card{}, err
	}

	return cards[i], nil
}

func (c *ConsolePlayer) ChooseBonusMalus(p *game.Player, players []*game.Player, g *game.Game) (deck.Card, *game.Player, error) {
	cards := []deck.Card{}
	for _, points := range bonusMalusPoints {
		card, err := deck.NewBonusMalusCard(points)
		if err != nil {
			return deck.Card{}, nil, err
		}
		cards = append(cards, card)
	}

	SendText(c.out, "\n%s, you have the smallest Jest. Pick a bonus/malus card:\n", p.Name)
	SendText(c.out, "%s", buildOptionsText(cardNames(cards)))
	i, err := c.readChoice(takePromptText, len(cards))
	if err != nil {
		return deck.Card{}, nil, err
	}

	names := []string{}
	for _, other := range players {
		names = append(names, fmt.Sprintf("%s (%d points)", other.Name, other.FinalScore()))
	}
	SendText(c.out, "\nWho gets %s?\n", cards[i])
	SendText(c.out, "%s", buildOptionsText(names))
	j, err := c.readChoice(takePromptText, len(players))
	if err != nil {
		return deck.Card{}, nil, err
	}

	return cards[i], players[j], nil
}

// readChoice reads a letter code between A and the n-th letter, asking again
// after an invalid entry until the retries run out
func (c *ConsolePlayer) readChoice(prompt string, n int) (int, error) {
	last := rune(upperCaseA + n - 1)

	for retriesLeft := retries; retriesLeft > 0; retriesLeft-- {
		SendText(c.out, "%s", prompt)

		line, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return 0, fmt.Errorf("could not read input: %w", err)
		}

		entry := strings.ToUpper(strings.TrimSpace(line))
		if len(entry) != 1 || !charsInRange(entry, upperCaseA, last) {
			SendText(c.out, retryRangeText, last)
			continue
		}

		return int(entry[0]) - upperCaseA, nil
	}

	return 0, ErrTooManyAttempts
}

func charsInRange(chars string, lower, upper rune) bool {
	for _, char := range chars {
		if char < lower || char > upper {
			return false
		}
	}
	return true
}

func cardNames(cards []deck.Card) []string {
	names := []string{}
	for _, c := range cards {
		names = append(names, c.String())
	}
	return names
}
