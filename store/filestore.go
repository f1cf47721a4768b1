package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/minaorangina/jest/game"
)

const snapshotExt = ".json"

// FileGameStore keeps one JSON file per game in a directory
type FileGameStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileGameStore constructs a FileGameStore, creating dir if needed
func NewFileGameStore(dir string) (*FileGameStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create save directory: %w", err)
	}
	return &FileGameStore{dir: dir}, nil
}

func validGameID(gameID string) bool {
	return gameID != "" && !strings.ContainsAny(gameID, `/\.`)
}

func (s *FileGameStore) path(gameID string) string {
	return filepath.Join(s.dir, gameID+snapshotExt)
}

// Save writes the snapshot to a temporary file first so a crash never
// leaves half a game behind
func (s *FileGameStore) Save(snapshot game.Snapshot) error {
	if !validGameID(snapshot.ID) {
		return fmt.Errorf("%w: %q", ErrInvalidGameID, snapshot.ID)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, snapshot.ID+"-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path(snapshot.ID))
}

func (s *FileGameStore) Find(gameID string) (game.Snapshot, error) {
	if !validGameID(gameID) {
		return game.Snapshot{}, fmt.Errorf("%w: %q", ErrInvalidGameID, gameID)
	}

	s.mu.Lock()
	data, err := os.ReadFile(s.path(gameID))
	s.mu.Unlock()

	if errors.Is(err, fs.ErrNotExist) {
		return game.Snapshot{}, fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}
	if err != nil {
		return game.Snapshot{}, err
	}

	return game.UnmarshalSnapshot(data)
}

func (s *FileGameStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	ids := []string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != snapshotExt {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, snapshotExt))
	}
	sort.Strings(ids)
	return ids, nil
}
