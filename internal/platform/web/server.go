package web

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/snake-extreme/internal/actor"
	"github.com/vovakirdan/snake-extreme/internal/core"
	"github.com/vovakirdan/snake-extreme/internal/games/snakex"
	"github.com/vovakirdan/snake-extreme/internal/registry"
	"github.com/vovakirdan/snake-extreme/internal/storage"
)

// WebSocketPath is the endpoint browsers connect to.
const WebSocketPath = "/ws"

//go:embed index.html
var indexHTML []byte

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on.
	Address string

	// Mode is the registry id played when the client does not ask for one.
	Mode string

	// TickRate is the frame rate of each connection's loop.
	TickRate int

	// MaxConns caps concurrent sessions. Zero means no limit.
	MaxConns int

	// Store receives finished rounds. Nil disables persistence.
	Store *storage.Store

	// Logger receives server and session events. Nil discards them.
	Logger *log.Logger
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:  ":8080",
		Mode:     string(snakex.VariantExtreme),
		TickRate: 60,
		MaxConns: 64,
	}
}

// Server runs one Director per WebSocket connection.
type Server struct {
	cfg      Config
	conns    *ConnManager
	upgrader websocket.Upgrader
	logger   *log.Logger
	wg       sync.WaitGroup
}

// NewServer creates a server. It does not listen until ListenAndServe.
func NewServer(cfg Config) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultConfig().TickRate
	}
	if cfg.Mode == "" {
		cfg.Mode = DefaultConfig().Mode
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Server{
		cfg:    cfg,
		conns:  NewConnManager(),
		logger: logger.WithPrefix("snakex-web"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Allow all origins; the game has no credentials to protect.
			CheckOrigin:       func(*http.Request) bool { return true },
			EnableCompression: true,
		},
	}
}

// Handler returns the HTTP handler serving the client page and the socket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(WebSocketPath, s.serveWS)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck // Client went away
		w.Write(indexHTML)
	})
	return mux
}

// ListenAndServe serves until ctx is cancelled, then closes every session.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "address", s.cfg.Address, "mode", s.cfg.Mode)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.Close()
	return err
}

// Close drops every live connection and waits for their loops to end.
// Hijacked sockets are not closed by http.Server.Shutdown.
func (s *Server) Close() {
	for _, c := range s.conns.Snapshot() {
		//nolint:errcheck // Closing anyway
		c.Close()
	}
	s.wg.Wait()
}

// Count returns the number of live sessions.
func (s *Server) Count() int {
	return s.conns.Count()
}

// serveWS upgrades the request and runs the session until either side quits.
func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = s.cfg.Mode
	}
	game, ok := newGame(mode)
	if !ok {
		http.Error(w, fmt.Sprintf("unknown mode %q", mode), http.StatusNotFound)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	s.wg.Add(1)
	defer s.wg.Done()

	conn := NewConn(ws)
	// The cap check and the insert share one lock
	if !s.conns.TryAdd(conn, s.cfg.MaxConns) {
		//nolint:errcheck // Closing anyway
		conn.Send(ErrorMsg{Type: MsgError, Message: "Server full. Please try again later."})
		//nolint:errcheck // Closing anyway
		conn.Close()
		return
	}
	defer s.conns.Remove(conn.ID)

	player := r.URL.Query().Get("name")
	if player == "" {
		player = "web"
	}
	logger := s.logger.With("conn", conn.ID, "mode", mode)
	logger.Info("session started", "remote", r.RemoteAddr, "player", player)

	ctx, cancel := context.WithCancel(r.Context())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.play(ctx, conn, game, player, logger)
	}()

	conn.ReadLoop(logger)
	cancel()
	<-done
	//nolint:errcheck // Socket already failed or was closed by the loop
	conn.Close()
	logger.Info("session ended")
}

// newGame creates a snake game for a registry id.
func newGame(mode string) (*snakex.Game, bool) {
	g, err := registry.Create(mode)
	if err != nil {
		return nil, false
	}
	sg, ok := g.(*snakex.Game)
	return sg, ok
}

// play runs the connection's Director on a ticker until ctx ends or a write
// fails.
func (s *Server) play(ctx context.Context, c *Conn, g *snakex.Game, player string, logger *log.Logger) {
	g.Reset(core.RuntimeConfig{TickRate: s.cfg.TickRate, Seed: time.Now().UnixNano()})
	if s.cfg.Store != nil {
		if high, err := s.cfg.Store.HighScore(g.ID()); err == nil {
			g.SetHighScore(high)
		} else {
			logger.Warn("could not load high score", "err", err)
		}
	}

	if err := c.Send(s.welcome(c, g, 0, 0)); err != nil {
		//nolint:errcheck // Ends the read loop
		c.Close()
		return
	}

	ticker := time.NewTicker(actor.NewClock(s.cfg.TickRate).TickDuration())
	defer ticker.Stop()
	last := time.Now()
	wasOver := false

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			if w, h, changed := c.TakeViewport(); changed {
				if err := c.Send(s.welcome(c, g, w, h)); err != nil {
					//nolint:errcheck // Ends the read loop
					c.Close()
					return
				}
			}

			res := g.Step(dt, c.TakeInput())
			if res.State.GameOver && !wasOver {
				s.saveRound(g, res.State, player, logger)
			}
			wasOver = res.State.GameOver

			if err := c.Send(newFrame(res, g.Director().Sprites())); err != nil {
				//nolint:errcheck // Ends the read loop
				c.Close()
				return
			}
		}
	}
}

// welcome describes the level for a viewport.
func (s *Server) welcome(c *Conn, g *snakex.Game, w, h int) WelcomeMsg {
	level := g.Director().Level()
	return WelcomeMsg{
		Type:     MsgWelcome,
		ID:       c.ID,
		Mode:     g.ID(),
		Width:    level.Width,
		Height:   level.Height,
		TileSize: level.TileSize,
		Zoom:     zoom(level, w, h),
	}
}

// saveRound records a finished round. Storage errors are logged only.
func (s *Server) saveRound(g *snakex.Game, st core.GameState, player string, logger *log.Logger) {
	if s.cfg.Store == nil || st.Score <= 0 {
		return
	}
	id, err := s.cfg.Store.SaveRound(storage.Round{
		GameID: g.ID(),
		Player: player,
		Score:  st.Score,
		Turns:  g.Turns(),
	})
	if err != nil {
		logger.Warn("could not save score", "err", err)
		return
	}
	logger.Info("round saved", "round", id, "score", st.Score, "turns", g.Turns())
}
