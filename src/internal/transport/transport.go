// FILE: src/internal/transport/transport.go
package transport

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"rulegate/src/internal/config"
	"rulegate/src/internal/dispatch"

	"github.com/lixenwraith/log"
	"github.com/panjf2000/gnet/v2"
)

// Server accepts policy requests over TCP. The wire contract is one
// request per connection: the client sends a single line, the server
// replies with a single message and closes the socket. A connection
// that stays silent past the receive timeout is closed with no
// response.
type Server struct {
	config         config.ServerConfig
	engine         *dispatch.Engine
	logger         *log.Logger
	receiveTimeout time.Duration

	eng      *gnet.Engine
	engineMu sync.Mutex

	startTime time.Time

	// Statistics
	activeConns    atomic.Int64
	totalConns     atomic.Uint64
	totalResponses atomic.Uint64
	totalTimeouts  atomic.Uint64
}

// NewServer creates a TCP policy server bound to the given dispatch
// engine.
func NewServer(cfg config.ServerConfig, engine *dispatch.Engine, logger *log.Logger) *Server {
	return &Server{
		config:         cfg,
		engine:         engine,
		logger:         logger,
		receiveTimeout: time.Duration(cfg.ReceiveTimeoutSeconds) * time.Second,
		startTime:      time.Now(),
	}
}

// Run starts the gnet event engine and blocks until it stops.
func (s *Server) Run() error {
	handler := &tcpServer{server: s}
	addr := fmt.Sprintf("tcp://:%d", s.config.Port)

	s.logger.Info("msg", "Starting TCP server",
		"component", "transport",
		"listen", addr,
		"receive_timeout", s.receiveTimeout.String())

	return gnet.Run(handler, addr,
		gnet.WithLogger(noopLogger{}),
		gnet.WithMulticore(s.config.Multicore),
		gnet.WithReusePort(true),
		gnet.WithTicker(true),
	)
}

// Shutdown stops the event engine, closing all live connections.
func (s *Server) Shutdown(ctx context.Context) error {
	s.engineMu.Lock()
	eng := s.eng
	s.engineMu.Unlock()

	if eng == nil {
		return nil
	}

	s.logger.Info("msg", "Shutting down TCP server", "component", "transport")
	return eng.Stop(ctx)
}

// GetStats returns transport statistics.
func (s *Server) GetStats() map[string]any {
	return map[string]any{
		"port":               s.config.Port,
		"uptime_seconds":     int64(time.Since(s.startTime).Seconds()),
		"active_connections": s.activeConns.Load(),
		"total_connections":  s.totalConns.Load(),
		"total_responses":    s.totalResponses.Load(),
		"total_timeouts":     s.totalTimeouts.Load(),
	}
}
