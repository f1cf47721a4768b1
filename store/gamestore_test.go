package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/minaorangina/jest/game"
	utils "github.com/minaorangina/jest/internal"
	"github.com/minaorangina/jest/players"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aSnapshot(t *testing.T, id string) game.Snapshot {
	t.Helper()

	ps := []*game.Player{
		game.NewPlayer("Harry", players.Cautious{}),
		game.NewPlayer("Sally", players.Cautious{}),
		game.NewPlayer("Ron", players.Cautious{}),
	}
	g, err := game.New(game.Opts{ID: id, Players: ps})
	require.NoError(t, err)
	require.NoError(t, g.Start())
	require.NoError(t, g.PlayRound())

	return g.Snapshot()
}

func testGameStore(t *testing.T, str GameStore) {
	t.Run("saved games can be found", func(t *testing.T) {
		s := aSnapshot(t, "game-1")
		utils.AssertNoError(t, str.Save(s))

		got, err := str.Find("game-1")
		utils.AssertNoError(t, err)
		assert.Equal(t, s, got)
	})

	t.Run("saving again replaces the game", func(t *testing.T) {
		s := aSnapshot(t, "game-2")
		utils.AssertNoError(t, str.Save(s))

		s.Round = 7
		utils.AssertNoError(t, str.Save(s))

		got, err := str.Find("game-2")
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, got.Round, 7)
	})

	t.Run("handles a non-existent game", func(t *testing.T) {
		_, err := str.Find("fake-id")
		utils.AssertTrue(t, errors.Is(err, ErrUnknownGameID))
	})

	t.Run("games are listed by ID", func(t *testing.T) {
		ids, err := str.List()
		utils.AssertNoError(t, err)
		assert.Equal(t, []string{"game-1", "game-2"}, ids)
	})

	t.Run("a game needs an ID", func(t *testing.T) {
		err := str.Save(game.Snapshot{})
		utils.AssertTrue(t, errors.Is(err, ErrInvalidGameID))
	})
}

func TestInMemoryGameStore(t *testing.T) {
	t.Run("Constructor prevents nil struct members", func(t *testing.T) {
		str := NewInMemoryGameStore()
		if str.Games == nil {
			t.Error("Games was nil")
		}
	})

	testGameStore(t, NewInMemoryGameStore())
}

func TestFileGameStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saves")
	str, err := NewFileGameStore(dir)
	require.NoError(t, err)

	testGameStore(t, str)

	t.Run("a saved game can be resumed", func(t *testing.T) {
		s, err := str.Find("game-1")
		require.NoError(t, err)

		f := players.NewFactory(nil, nil)
		g, err := game.Restore(s, game.RestoreOpts{Resolve: f.Resolve})
		require.NoError(t, err)

		_, err = g.Play()
		utils.AssertNoError(t, err)
	})

	t.Run("IDs can't escape the directory", func(t *testing.T) {
		_, err := str.Find("../game-1")
		utils.AssertTrue(t, errors.Is(err, ErrInvalidGameID))
	})

	t.Run("a broken file is reported", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))

		_, err := str.Find("broken")
		utils.AssertTrue(t, errors.Is(err, game.ErrCorruptSnapshot))
	})

	t.Run("other files are not listed", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))

		ids, err := str.List()
		utils.AssertNoError(t, err)
		assert.Equal(t, []string{"broken", "game-1", "game-2"}, ids)
	})
}
