package players

import (
	"errors"
	"fmt"
	"io"

	"github.com/minaorangina/jest/game"
)

const (
	KindHuman    = "human"
	KindCautious = "cautious"
	KindRandom   = "random"
)

var (
	ErrUnknownKind     = errors.New("unknown player kind")
	ErrBadHand         = errors.New("a hand holds exactly two cards")
	ErrNothingToTake   = errors.New("no card to take")
	ErrTooManyAttempts = errors.New("too many invalid entries")
)

// Kinds lists the decision sources a Factory can build
var Kinds = []string{KindHuman, KindCautious, KindRandom}

// Factory builds decision sources by kind. Every human player shares the
// one console.
type Factory struct {
	console *ConsolePlayer
}

func NewFactory(in io.Reader, out io.Writer) *Factory {
	return &Factory{console: NewConsolePlayer(in, out)}
}

// New builds the decision source of the given kind
func (f *Factory) New(kind string) (game.DecisionSource, error) {
	switch kind {
	case KindHuman:
		return f.console, nil
	case KindCautious:
		return Cautious{}, nil
	case KindRandom:
		return NewRandom(0), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Resolve rebuilds the decision source of a saved player
func (f *Factory) Resolve(kind, name string) (game.DecisionSource, error) {
	return f.New(kind)
}
