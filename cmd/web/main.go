package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minaorangina/jest/game"
	"github.com/minaorangina/jest/internal/config"
	"github.com/minaorangina/jest/internal/logger"
	"github.com/minaorangina/jest/players"
	"github.com/minaorangina/jest/protocol"
	"github.com/minaorangina/jest/server"
	"github.com/minaorangina/jest/store"
)

const (
	roundDelay      = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, os.Stdout)
	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	var games store.GameStore = store.NewInMemoryGameStore()
	if cfg.SaveDir != "" {
		fs, err := store.NewFileGameStore(cfg.SaveDir)
		if err != nil {
			return err
		}
		games = fs
	}

	hub := server.NewHub(log)
	go hub.Listen()
	defer hub.Close()

	s := server.NewServer(server.ServerOpts{
		Store:     games,
		Hub:       hub,
		Logger:    log,
		AccessLog: os.Stdout,
	})
	s.Addr = cfg.FeedAddr

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := playScripted(ctx, cfg, log, hub, games); err != nil {
			log.Error("scripted game failed", "error", err)
		}
	}()

	errs := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.FeedAddr)
		errs <- s.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// playScripted plays a game between computer players, one round at a time,
// so that spectators can follow it on the feed
func playScripted(ctx context.Context, cfg *config.Config, log *slog.Logger, hub *server.Hub, games store.GameStore) error {
	factory := players.NewFactory(os.Stdin, os.Stdout)

	ps := []*game.Player{}
	for _, spec := range cfg.Players {
		kind := spec.Kind
		if kind == players.KindHuman {
			kind = players.KindCautious
		}
		source, err := factory.New(kind)
		if err != nil {
			return err
		}
		ps = append(ps, game.NewPlayer(spec.Name, source))
	}

	g, err := game.New(game.Opts{
		Players:       ps,
		Variant:       cfg.Variant(),
		ExtendedCards: cfg.ExtendedCards,
		BonusMalus:    cfg.BonusMalus,
		Logger:        log,
		Observers:     []game.Observer{hub.Observe},
	})
	if err != nil {
		return err
	}
	g.Subscribe(func(e protocol.Event) {
		if e.Kind != protocol.RoundStart && e.Kind != protocol.GameOver {
			return
		}
		if err := games.Save(g.Snapshot()); err != nil {
			log.Warn("could not save game", "game_id", g.ID(), "error", err)
		}
	})

	if err := g.Start(); err != nil {
		return err
	}

	for !g.IsGameOver() {
		if err := g.PlayRound(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(roundDelay):
		}
	}

	_, err = g.Finish()
	return err
}
