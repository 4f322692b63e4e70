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

	"github.com/benw000/MandelbrotZoom/internal/fractal"
	"github.com/benw000/MandelbrotZoom/internal/render"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":2323").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.mandelzoom/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Frames, RecenterFrames, and Depth shape the zoom sequence.
	Frames         int
	RecenterFrames int
	Depth          int

	// Interval is the playback delay between frames.
	Interval time.Duration

	// Palette colors the terminal canvas.
	Palette render.Palette

	// Workers bounds per-frame render concurrency, 0 for all CPUs.
	Workers int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:        ":2323",
		IdleTimeout:    30 * time.Minute,
		Frames:         30,
		RecenterFrames: 5,
		Depth:          30,
		Interval:       200 * time.Millisecond,
		Palette:        render.Terminal(),
	}
}

// SSHServer wraps a Wish SSH server for the zoom viewer.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mandelzoom-ssh",
	})

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".mandelzoom", "host_key")
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
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
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

	model := NewSessionModel(s.config, pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

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

// playerChromeRows is the vertical space the status and help lines take up.
const playerChromeRows = 3

// FitResolution sizes a render grid to a terminal, reserving room for the
// playback chrome and keeping both sides even and at least the minimum.
func FitResolution(termW, termH int) fractal.Resolution {
	return fractal.Resolution{
		Width:  evenAtLeast(termW, 4),
		Height: evenAtLeast(termH-playerChromeRows, 4),
	}
}

func evenAtLeast(n, min int) int {
	n -= n % 2
	if n < min {
		n = min
	}
	return n
}

// SessionModel manages the full session flow: picker -> playback -> picker.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	config     SSHServerConfig
	width      int
	height     int
	picker     PickerModel
	player     *Model
	inPlayback bool
	quitting   bool
}

// NewSessionModel creates a new session model sized to the client terminal.
func NewSessionModel(cfg SSHServerConfig, width, height int) SessionModel {
	return SessionModel{
		config: cfg,
		width:  width,
		height: height,
		picker: NewPickerModel(width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.inPlayback && m.player != nil {
		return m.updatePlayback(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates when choosing a zoom target.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if pickerModel, ok := newPicker.(PickerModel); ok {
		m.picker = pickerModel
	}

	// Check if user quit
	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Check if a target was picked
	if selected := m.picker.Selected(); selected != nil {
		player, err := m.startPlayback(selected.Focus)
		if err != nil {
			// Shouldn't happen since the picker offers validated targets
			return m, nil
		}

		m.player = player
		m.inPlayback = true
		return m, m.player.Init()
	}

	return m, cmd
}

// startPlayback builds a sequence for the target sized to the terminal.
func (m SessionModel) startPlayback(focus complex128) (*Model, error) {
	seq, err := fractal.NewSequencer(fractal.SequenceParams{
		Frames:         m.config.Frames,
		RecenterFrames: m.config.RecenterFrames,
		Focus:          focus,
		Res:            FitResolution(m.width, m.height),
		Depth:          m.config.Depth,
		Workers:        m.config.Workers,
	})
	if err != nil {
		return nil, err
	}

	player := NewModel(seq, m.config.Palette, m.config.Interval)
	return &player, nil
}

// updatePlayback handles updates while a zoom is playing.
func (m SessionModel) updatePlayback(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Esc or b leaves playback and returns to the picker
		switch msg.String() {
		case "esc", "b":
			m.inPlayback = false
			m.player = nil
			m.picker = NewPickerModel(m.width, m.height)
			return m, m.picker.Init()
		}

	case tea.WindowSizeMsg:
		// Frame geometry is fixed per sequence, so a resize restarts the
		// zoom at the new terminal size. The running tick loop carries over.
		target := m.player.seq.Params().Focus
		if player, err := m.startPlayback(target); err == nil {
			m.player = player
		}
		return m, nil
	}

	newModel, cmd := m.player.Update(msg)
	if playerModel, ok := newModel.(Model); ok {
		m.player = &playerModel
	}

	// Check if user quit entirely
	if m.player.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inPlayback && m.player != nil {
		return m.player.View()
	}

	return m.picker.View()
}
