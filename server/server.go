package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/jest/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ListGamesRes struct {
	Games []string `json:"games"`
}

type ErrorRes struct {
	Error string `json:"error"`
}

// ServerOpts configures a GameServer
type ServerOpts struct {
	Store     store.GameStore
	Hub       *Hub
	Logger    *slog.Logger
	AccessLog io.Writer
}

// GameServer serves the spectator feed and the saved games
type GameServer struct {
	store store.GameStore
	hub   *Hub
	log   *slog.Logger
	http.Server
}

// NewServer creates a new GameServer
func NewServer(opts ServerOpts) *GameServer {
	s := &GameServer{
		store: opts.Store,
		hub:   opts.Hub,
		log:   opts.Logger,
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	accessLog := opts.AccessLog
	if accessLog == nil {
		accessLog = io.Discard
	}

	router := http.NewServeMux()
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))
	router.Handle("/games", http.HandlerFunc(s.HandleListGames))
	router.Handle("/games/", http.HandlerFunc(s.HandleFindGame))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet}),
	)
	s.Handler = handlers.LoggingHandler(accessLog, cors(router))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleWS adds a spectator to the feed
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{hub: g.hub, conn: conn, send: make(chan []byte, sendBuffer)}

	select {
	case g.hub.register <- c:
	case <-g.hub.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// HandleListGames lists the saved games
func (g *GameServer) HandleListGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	ids, err := g.store.List()
	if err != nil {
		g.log.Error("could not list games", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorRes{Error: "could not list games"})
		return
	}

	writeJSON(w, http.StatusOK, ListGamesRes{Games: ids})
}

// HandleFindGame returns the latest snapshot of a game
func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.TrimPrefix(r.URL.Path, "/games/")
	if gameID == "" {
		writeJSON(w, http.StatusBadRequest, ErrorRes{Error: "missing game ID"})
		return
	}

	snapshot, err := g.store.Find(gameID)
	switch {
	case errors.Is(err, store.ErrUnknownGameID), errors.Is(err, store.ErrInvalidGameID):
		writeJSON(w, http.StatusNotFound, ErrorRes{Error: unknownGameIDMsg(gameID)})
		return
	case err != nil:
		g.log.Error("could not load game", "game_id", gameID, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorRes{Error: "could not load game"})
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}
