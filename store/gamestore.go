package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/minaorangina/jest/game"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrInvalidGameID = errors.New("invalid game ID")
)

// GameStore keeps snapshots of games so they can be looked at or resumed
type GameStore interface {
	Save(s game.Snapshot) error
	Find(gameID string) (game.Snapshot, error)
	List() ([]string, error)
}

// InMemoryGameStore maps game id to the latest snapshot of the game
type InMemoryGameStore struct {
	mu    sync.RWMutex
	Games map[string]game.Snapshot
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Games: map[string]game.Snapshot{},
	}
}

func (s *InMemoryGameStore) Save(snapshot game.Snapshot) error {
	if snapshot.ID == "" {
		return ErrInvalidGameID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Games[snapshot.ID] = snapshot
	return nil
}

func (s *InMemoryGameStore) Find(gameID string) (game.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, ok := s.Games[gameID]
	if !ok {
		return game.Snapshot{}, fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}
	return snapshot, nil
}

func (s *InMemoryGameStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := []string{}
	for id := range s.Games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
