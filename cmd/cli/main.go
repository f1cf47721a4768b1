package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/minaorangina/jest/game"
	"github.com/minaorangina/jest/internal/config"
	"github.com/minaorangina/jest/internal/logger"
	"github.com/minaorangina/jest/players"
	"github.com/minaorangina/jest/protocol"
	"github.com/minaorangina/jest/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, os.Stderr)
	if err := run(cfg, log); err != nil {
		log.Error("game stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	factory := players.NewFactory(os.Stdin, os.Stdout)
	display := players.NewDisplay(os.Stdout)

	var games store.GameStore
	if cfg.SaveDir != "" {
		fs, err := store.NewFileGameStore(cfg.SaveDir)
		if err != nil {
			return err
		}
		games = fs
	}

	g, err := setUp(cfg, log, factory, games, display)
	if err != nil {
		return err
	}

	if games != nil {
		g.Subscribe(saveOn(g, games, log, display))
	}

	_, err = g.Play()
	return err
}

func setUp(cfg *config.Config, log *slog.Logger, factory *players.Factory, games store.GameStore, display game.Observer) (*game.Game, error) {
	if cfg.LoadID != "" {
		snapshot, err := games.Find(cfg.LoadID)
		if err != nil {
			return nil, err
		}
		return game.Restore(snapshot, game.RestoreOpts{
			Resolve:   factory.Resolve,
			Logger:    log,
			Observers: []game.Observer{display},
		})
	}

	ps := []*game.Player{}
	for _, spec := range cfg.Players {
		source, err := factory.New(spec.Kind)
		if err != nil {
			return nil, err
		}
		ps = append(ps, game.NewPlayer(spec.Name, source))
	}

	return game.New(game.Opts{
		Players:       ps,
		Variant:       cfg.Variant(),
		ExtendedCards: cfg.ExtendedCards,
		BonusMalus:    cfg.BonusMalus,
		Logger:        log,
		Observers:     []game.Observer{display},
	})
}

// saveOn saves the game at the start of every round and once it is over
func saveOn(g *game.Game, games store.GameStore, log *slog.Logger, display game.Observer) game.Observer {
	return func(e protocol.Event) {
		if e.Kind != protocol.RoundStart && e.Kind != protocol.GameOver {
			return
		}

		if err := games.Save(g.Snapshot()); err != nil {
			log.Warn("could not save game", "game_id", g.ID(), "error", err)
			return
		}

		display(protocol.Event{
			Kind:    protocol.Message,
			Message: fmt.Sprintf("Game saved. Set JEST_LOAD_ID=%s to carry on later.", g.ID()),
		})
	}
}
