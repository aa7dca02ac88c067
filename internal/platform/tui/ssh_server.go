package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/minesweeper/internal/core"
	"github.com/vovakirdan/minesweeper/internal/registry"
	"github.com/vovakirdan/minesweeper/internal/sessions"
	"github.com/vovakirdan/minesweeper/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.minesweeper/host_key.
	HostKeyPath string

	// DBPath is the path to the results database.
	DBPath string

	// TickRate is the simulation rate for every session.
	TickRate int

	// DefaultDifficulty is highlighted when the picker opens.
	DefaultDifficulty string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// MaxSessions caps concurrent connections. Zero means unlimited.
	MaxSessions int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.minesweeper/scores.db",
		TickRate:    core.DefaultConfig().TickRate,
		IdleTimeout: 30 * time.Minute,
		MaxSessions: 64,
	}
}

// SSHServer wraps a Wish SSH server serving the minesweeper TUI.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	drain    func(context.Context) error // stops listening and waits for sessions
	store    *storage.Store
	sessions *sessions.Registry
	logger   *log.Logger
}

type sessionIDKey struct{}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "minesweeper-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open results database, times will not be saved", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		sessions: sessions.NewRegistry(cfg.MaxSessions),
		logger:   logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".minesweeper", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
			srv.trackingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	srv.drain = server.Shutdown
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.store, cfg, sshSession.User(), s.config.DefaultDifficulty)
	if id, ok := sshSession.Context().Value(sessionIDKey{}).(sessions.ID); ok {
		model.sessionID = string(id)
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"active", s.sessions.Count(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// trackingMiddleware registers each connection and turns players away
// once MaxSessions is reached. It runs before the other middleware.
func (s *SSHServer) trackingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		info := sessions.Info{
			ID:      sessions.NewID(sshSession.User()),
			User:    sshSession.User(),
			Remote:  sshSession.RemoteAddr().String(),
			Started: time.Now(),
		}
		if err := s.sessions.Add(info); err != nil {
			s.logger.Warn("rejecting session", "user", info.User, "remote", info.Remote, "error", err)
			wish.Fatalln(sshSession, "Server is full, try again later.")
			return
		}
		defer s.sessions.Remove(info.ID)

		sshSession.Context().SetValue(sessionIDKey{}, info.ID)
		next(sshSession)
	}
}

// ActiveSessions lists the connected players, oldest first.
func (s *SSHServer) ActiveSessions() []sessions.Info {
	return s.sessions.List()
}

// ListenAndServe starts the SSH server and blocks until SIGINT/SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve runs the server until ctx is done or the listener fails.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "max_sessions", s.config.MaxSessions)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		s.logger.Info("shutting down...", "active", s.sessions.Count())
		return s.Shutdown()
	})

	return g.Wait()
}

// Shutdown gracefully stops the server. Open sessions are drained
// before the results database is closed.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.drain(ctx)

	if s.store != nil {
		if closeErr := s.store.Close(); closeErr != nil {
			s.logger.Warn("closing results database", "error", closeErr)
		}
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScoreboard
)

// SessionModel manages one full session: menu -> game or scoreboard -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	username   string
	sessionID  string
	focus      string // difficulty highlighted in the picker
	view       sessionView
	menu       MenuModel
	game       *Model
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model with the picker on focus.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username, focus string) SessionModel {
	return SessionModel{
		store:     store,
		config:    cfg,
		username:  username,
		sessionID: string(sessions.NewID(username)),
		focus:     focus,
		menu:      NewMenuModel(store, cfg).WithFocus(focus),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScoreboard
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().GameID)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			return m.showMenu()
		}

		m.focus = game.ID()
		m.config = m.menu.Config()
		m.config.Seed = time.Now().UnixNano()
		gameModel := NewModel(game, m.store, m.config, m.sessionID)
		m.game = &gameModel
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		return m.showMenu()
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.showMenu()
	}

	return m, cmd
}

// showMenu rebuilds the menu so best times are fresh.
func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.menu = NewMenuModel(m.store, m.config).WithFocus(m.focus)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		if m.game != nil {
			return m.game.View()
		}
	case viewScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
