package bridge

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/cuoral/internal/launcher"
	"github.com/muurk/cuoral/internal/logging"
	"github.com/muurk/cuoral/internal/navigation"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192

	shutdownTimeout = 5 * time.Second
)

// Config holds the bridge configuration
type Config struct {
	// Options seeds the overlay of every connection
	Options launcher.Options

	// Gate overrides the default navigation gate when set
	Gate *navigation.Gate

	// CheckOrigin vets the Origin header of upgrade requests. Nil accepts
	// every origin.
	CheckOrigin func(r *http.Request) bool

	// TLS serves wss:// and https:// when set
	TLS *tls.Config
}

// Server exposes launcher overlays to remote renderers over WebSocket.
// Every connection owns one overlay; its messages are handled in order on
// the connection's read loop.
type Server struct {
	config   Config
	metrics  *Metrics
	upgrader websocket.Upgrader

	mu      sync.Mutex
	conns   map[*websocket.Conn]string
	closing bool
	wg      sync.WaitGroup
}

// New creates a bridge server. metrics may be nil.
func New(config Config, metrics *Metrics) *Server {
	if metrics == nil {
		metrics = NewMetrics()
	}

	checkOrigin := config.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}

	return &Server{
		config:  config,
		metrics: metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		conns: make(map[*websocket.Conn]string),
	}
}

// Metrics returns the server's metrics
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Handler returns the HTTP routes: /ws (bridge), /metrics and /healthz
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.ServeWS)
	mux.Handle("/metrics", s.metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully and closes open bridge connections.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.config.TLS != nil {
		ln = tls.NewListener(ln, s.config.TLS)
	}

	logging.Info("Bridge listening",
		zap.String("addr", ln.Addr().String()),
		zap.Bool("tls", s.config.TLS != nil),
	)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Serve(ln)
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.Info("Shutting down bridge")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	s.closeAll()
	s.wg.Wait()
	return err
}

// ActiveConnections returns the number of connected renderers
func (s *Server) ActiveConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// ServeWS upgrades the request and runs the connection until it closes
func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	if !s.track(conn, r.RemoteAddr) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}
	defer s.wg.Done()
	defer s.untrack(conn)

	c := newConnection(conn, r.RemoteAddr, s.config, s.metrics)
	c.run()
}

// track registers conn with the shutdown wait group. It refuses once
// closeAll has run, so no Add can follow the final Wait.
func (s *Server) track(conn *websocket.Conn, remote string) bool {
	s.mu.Lock()
	if s.closing {
		s.mu.Unlock()
		return false
	}
	s.conns[conn] = remote
	s.wg.Add(1)
	s.mu.Unlock()
	s.metrics.Connections.Inc()
	logging.LogBridgeEvent(remote, "connected")
	return true
}

func (s *Server) untrack(conn *websocket.Conn) {
	s.mu.Lock()
	remote := s.conns[conn]
	delete(s.conns, conn)
	s.mu.Unlock()
	s.metrics.Connections.Dec()
	logging.LogBridgeEvent(remote, "disconnected")
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closing = true
	for conn := range s.conns {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
	}
}
