package players

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/jest/game"
	"github.com/minaorangina/jest/protocol"
)

const (
	offerPromptText = "Which card do you show face up? "
	takePromptText  = "Your choice: "
	retryRangeText  = "Invalid entry. Please use the letter codes (A-%c)\n"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

func buildOptionsText(options []string) string {
	text := ""
	for i, option := range options {
		text += fmt.Sprintf("%c - %s\n", rune(upperCaseA+i), option)
	}
	return text
}

// NewDisplay returns an observer printing the game as it goes
func NewDisplay(w io.Writer) game.Observer {
	return func(e protocol.Event) {
		SendText(w, "%s", buildEventText(e))
	}
}

func buildEventText(e protocol.Event) string {
	switch e.Kind {
	case protocol.GameStarted:
		text := "\nLet's play Jest!\n"
		if len(e.Trophies) > 0 {
			names := []string{}
			for _, t := range e.Trophies {
				names = append(names, t.TrophyName())
			}
			text += "Trophies: " + strings.Join(names, ", ") + "\n"
		}
		return text

	case protocol.RoundStart:
		return fmt.Sprintf("\n=== Round %d ===\n", e.Round)

	case protocol.OffersCreated:
		text := "Offers:\n"
		for _, o := range e.Offers {
			up := "-"
			if o.FaceUp != nil {
				up = o.FaceUp.String()
			}
			down := "-"
			if o.HasFaceDown {
				down = "?"
			}
			text += fmt.Sprintf("- %s: %s %s\n", o.Owner.Name, up, down)
		}
		return text

	case protocol.GameOver:
		text := "\nFinal scores:\n"
		for _, s := range e.Scores {
			text += fmt.Sprintf("- %s: %d (%d + %d)\n", s.Player.Name, s.Final, s.Base, s.TrophyBonus)
		}
		if e.Winner != nil {
			text += fmt.Sprintf("\n%s wins! 🏆\n", e.Winner.Name)
		} else {
			text += "\nNobody wins.\n"
		}
		return text

	default:
		if e.Message == "" {
			return ""
		}
		return e.Message + "\n"
	}
}
