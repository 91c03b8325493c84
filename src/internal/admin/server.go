// FILE: src/internal/admin/server.go
package admin

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"rulegate/src/internal/config"
	"rulegate/src/internal/version"

	"github.com/lixenwraith/log"
	"github.com/valyala/fasthttp"
)

// StatsProvider supplies a named statistics snapshot for the status
// endpoint.
type StatsProvider interface {
	GetStats() map[string]any
}

// Server exposes service statistics over HTTP. It is an operational
// surface only; the policy protocol stays on the TCP listener.
type Server struct {
	config    config.AdminConfig
	providers map[string]StatsProvider
	server    *fasthttp.Server
	logger    *log.Logger
	startTime time.Time

	// Statistics
	totalRequests atomic.Uint64
}

// NewServer creates an admin server serving stats from the given
// providers, keyed by section name.
func NewServer(cfg config.AdminConfig, providers map[string]StatsProvider, logger *log.Logger) *Server {
	s := &Server{
		config:    cfg,
		providers: providers,
		logger:    logger,
		startTime: time.Now(),
	}
	s.server = &fasthttp.Server{
		Handler:         s.requestHandler,
		CloseOnShutdown: true,
	}
	return s
}

// Start launches the HTTP listener in the background, waiting briefly
// for startup to be signalled.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	startupDone := make(chan error, 1)
	go func() {
		s.logger.Info("msg", "Starting admin server",
			"component", "admin",
			"listen", addr,
			"status_path", s.config.StatusPath)

		startupDone <- nil

		if err := s.server.ListenAndServe(addr); err != nil {
			s.logger.Error("msg", "Admin server failed",
				"component", "admin",
				"port", s.config.Port,
				"error", err)
		}
	}()

	select {
	case err := <-startupDone:
		if err != nil {
			return fmt.Errorf("admin server startup failed: %w", err)
		}
	case <-time.After(5 * time.Second):
		return fmt.Errorf("admin server startup timeout on port %d", s.config.Port)
	}
	return nil
}

// Shutdown stops the HTTP listener.
func (s *Server) Shutdown() {
	if err := s.server.Shutdown(); err != nil {
		s.logger.Warn("msg", "Admin server shutdown error",
			"component", "admin",
			"error", err)
	}
}

func (s *Server) requestHandler(ctx *fasthttp.RequestCtx) {
	s.totalRequests.Add(1)

	switch string(ctx.Path()) {
	case s.config.StatusPath:
		s.handleStatus(ctx)
	case s.config.HealthPath:
		ctx.SetContentType("application/json")
		json.NewEncoder(ctx).Encode(map[string]string{"status": "ok"})
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		ctx.SetContentType("application/json")
		json.NewEncoder(ctx).Encode(map[string]string{"error": "not found"})
	}
}

func (s *Server) handleStatus(ctx *fasthttp.RequestCtx) {
	status := map[string]any{
		"service":        "rulegate",
		"version":        version.Short(),
		"uptime_seconds": int64(time.Since(s.startTime).Seconds()),
		"admin_requests": s.totalRequests.Load(),
	}
	for name, provider := range s.providers {
		status[name] = provider.GetStats()
	}

	data, err := json.Marshal(status)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}
