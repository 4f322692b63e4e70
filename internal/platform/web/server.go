// Package web serves zoom sequences to browsers: an embedded viewer page,
// a websocket endpoint streaming PNG frames, and a still-frame endpoint.
package web

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"

	"github.com/benw000/MandelbrotZoom/internal/config"
	"github.com/benw000/MandelbrotZoom/internal/fractal"
	"github.com/benw000/MandelbrotZoom/internal/render"
)

//go:embed index.html
var indexHTML []byte

const writeTimeout = 10 * time.Second

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Focus is the zoom target streamed when the client does not pick one.
	Focus complex128

	// Frames, RecenterFrames, and Depth shape the zoom sequence.
	Frames         int
	RecenterFrames int
	Depth          int

	// Res is the default frame size. Clients may override per request.
	Res fractal.Resolution

	// Rule is the iteration rule, nil for the quadratic map.
	Rule fractal.Rule

	// Interval is the delay between streamed frames.
	Interval time.Duration

	// Palette colors the frames.
	Palette render.Palette

	// Workers bounds per-frame render concurrency, 0 for all CPUs.
	Workers int
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:        ":8080",
		Focus:          complex(-0.75, 0.1),
		Frames:         30,
		RecenterFrames: 5,
		Depth:          30,
		Res:            fractal.Resolution{Width: 400, Height: 400},
		Interval:       200 * time.Millisecond,
		Palette:        render.Default(),
	}
}

// Server streams zoom frames over HTTP and websockets.
type Server struct {
	config ServerConfig
	server *http.Server
	logger *log.Logger
}

// NewServer creates a web server with the given configuration.
func NewServer(cfg ServerConfig) (*Server, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mandelzoom-web",
	})

	srv := &Server{
		config: cfg,
		logger: logger,
	}

	// Reject bad sequence parameters up front rather than per request
	if _, err := srv.newSequencer(nil); err != nil {
		return nil, fmt.Errorf("cannot build zoom sequence: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleStream)
	mux.HandleFunc("/frame.png", srv.handleFrame)
	mux.HandleFunc("/", srv.handleIndex)

	srv.server = &http.Server{
		Addr:              cfg.Address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return srv, nil
}

// newSequencer builds a fresh sequence for one client, applying any
// query overrides to the server defaults.
func (s *Server) newSequencer(query url.Values) (*fractal.Sequencer, error) {
	params := fractal.SequenceParams{
		Frames:         s.config.Frames,
		RecenterFrames: s.config.RecenterFrames,
		Focus:          s.config.Focus,
		Res:            s.config.Res,
		Depth:          s.config.Depth,
		Rule:           s.config.Rule,
		Workers:        s.config.Workers,
	}

	if query != nil {
		if v := query.Get("focus"); v != "" {
			focus, err := config.ResolveFocus(v)
			if err != nil {
				return nil, err
			}
			params.Focus = focus
		}
		for name, dst := range map[string]*int{
			"frames":   &params.Frames,
			"recenter": &params.RecenterFrames,
			"depth":    &params.Depth,
			"w":        &params.Res.Width,
			"h":        &params.Res.Height,
		} {
			v := query.Get(name)
			if v == "" {
				continue
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("query %s=%q: %w", name, v, err)
			}
			*dst = n
		}
		if v := query.Get("degree"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("query degree=%q: %w", v, err)
			}
			rule, err := config.RuleForDegree(n)
			if err != nil {
				return nil, err
			}
			params.Rule = rule
		}
	}

	return fractal.NewSequencer(params)
}

// handleIndex serves the embedded viewer page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	//nolint:errcheck // Best-effort write, client may have gone away
	w.Write(indexHTML)
}

// handleFrame serves a single frame as PNG. The step query selects the
// frame, defaulting to the deepest one.
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	seq, err := s.newSequencer(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	step := seq.Len() - 1
	if v := r.URL.Query().Get("step"); v != "" {
		step, err = strconv.Atoi(v)
		if err != nil {
			http.Error(w, fmt.Sprintf("query step=%q: %v", v, err), http.StatusBadRequest)
			return
		}
	}

	frame, err := seq.FrameAt(step)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, render.Image(frame.Grid, s.config.Palette)); err != nil {
		s.logger.Warn("frame write failed", "remote", r.RemoteAddr, "error", err)
	}
}

// handleStream upgrades to a websocket and streams PNG frames forever,
// wrapping back to the first frame after the deepest one.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	seq, err := s.newSequencer(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.logger.Warn("websocket accept failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer c.CloseNow()

	s.logger.Info("stream started", "remote", r.RemoteAddr)
	defer s.logger.Info("stream ended", "remote", r.RemoteAddr)

	// The server never reads application data, so CloseRead supplies a
	// context that ends when the client goes away.
	ctx := c.CloseRead(r.Context())

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	var buf bytes.Buffer
	for {
		frame := seq.Next()

		buf.Reset()
		if err := png.Encode(&buf, render.Image(frame.Grid, s.config.Palette)); err != nil {
			s.logger.Error("frame encode failed", "error", err)
			return
		}

		wctx, cancel := context.WithTimeout(ctx, writeTimeout)
		err := c.Write(wctx, websocket.MessageBinary, buf.Bytes())
		cancel()
		if err != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// ListenAndServe starts the web server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting web server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
