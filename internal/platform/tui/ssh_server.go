package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/dependencies/random"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/kit"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/mines_host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	// Zero disables it.
	IdleTimeout time.Duration

	// MetricsAddress serves Prometheus metrics when set.
	MetricsAddress string

	// Game configures every session's board display and messages.
	Game config.MinesConfig

	// Seed makes every session's boards reproducible when non-zero.
	Seed int64
}

// NewSSHServerConfig derives the server settings from the game config.
func NewSSHServerConfig(cfg config.MinesConfig) SSHServerConfig {
	return SSHServerConfig{
		Address:        cfg.Server.Address,
		HostKeyPath:    cfg.Server.HostKey,
		IdleTimeout:    cfg.Server.IdleTimeout(),
		MetricsAddress: cfg.Server.MetricsAddress,
		Game:           cfg,
	}
}

// sessionStatsKey stores *sessionStats in the SSH context.
type sessionStatsKey struct{}

// sessionStats accumulates per-connection play statistics.
type sessionStats struct {
	id string

	mu       sync.Mutex
	games    int
	won      int
	playTime string // HH:MM:SS total across games
}

func newSessionStats() *sessionStats {
	return &sessionStats{id: uuid.New().String(), playTime: "00:00:00"}
}

// record adds one finished game.
func (st *sessionStats) record(p minesweeper.Phase, elapsed time.Duration) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	total, err := kit.AddTime(st.playTime, kit.FormatClock(elapsed))
	if err != nil {
		return err
	}
	st.playTime = total
	st.games++
	if p == minesweeper.PhaseWon {
		st.won++
	}
	return nil
}

func (st *sessionStats) snapshot() (games, won int, playTime string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.games, st.won, st.playTime
}

// SSHServer wraps a Wish SSH server that runs one game per connection.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	metrics *Metrics
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "mines-ssh",
		})
	}

	srv := &SSHServer{
		config:  cfg,
		metrics: NewMetrics(),
		logger:  logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "mines_host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
		),
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	stats, _ := sshSession.Context().Value(sessionStatsKey{}).(*sessionStats)
	if stats == nil {
		stats = newSessionStats()
	}

	var src random.Source = random.NewCrypto()
	if s.config.Seed != 0 {
		src = random.NewSeeded(s.config.Seed)
	}

	logger := s.logger.With("session", stats.id)
	model, err := NewModel(Options{
		Config: s.config.Game,
		Source: src,
		Logger: logger,
		Width:  pty.Window.Width,
		Height: pty.Window.Height,
		OnFinish: func(p minesweeper.Phase, elapsed time.Duration) {
			s.metrics.GameFinished(p)
			if err := stats.record(p, elapsed); err != nil {
				logger.Warn("cannot record game", "error", err)
			}
			logger.Info("game finished", "result", p, "elapsed", kit.FormatClock(elapsed))
		},
	})
	if err != nil {
		s.logger.Error("cannot create game", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	// A dropped connection never delivers a quit key.
	go func() {
		<-sshSession.Context().Done()
		model.Close()
	}()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// sessionMiddleware tags each connection with an id, tracks it in the
// metrics and logs its lifetime.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		stats := newSessionStats()
		sshSession.Context().SetValue(sessionStatsKey{}, stats)

		s.metrics.SessionsTotal.Inc()
		s.metrics.SessionsActive.Inc()
		defer s.metrics.SessionsActive.Dec()

		s.logger.Info("session started",
			"session", stats.id,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)

		games, won, playTime := stats.snapshot()
		s.logger.Info("session ended",
			"session", stats.id,
			"user", sshSession.User(),
			"games", games,
			"won", won,
			"play_time", playTime,
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if s.config.MetricsAddress != "" {
		s.logger.Info("serving metrics", "address", s.config.MetricsAddress)
		go func() {
			if err := s.metrics.Serve(ctx, s.config.MetricsAddress); err != nil {
				s.logger.Error("metrics server error", "error", err)
			}
		}()
	}

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// Metrics returns the server's collectors.
func (s *SSHServer) Metrics() *Metrics {
	return s.metrics
}
