// FILE: src/internal/transport/tcpserver.go
package transport

import (
	"bytes"
	"sync"
	"sync/atomic"
	"time"

	"rulegate/src/internal/core"

	"github.com/panjf2000/gnet/v2"
)

type tcpServer struct {
	gnet.BuiltinEventEngine
	server      *Server
	connections sync.Map // gnet.Conn -> *connState
}

// connState tracks a connection between accept and its single
// request/response cycle. opened is immutable; served is shared with
// the ticker goroutine, hence atomic.
type connState struct {
	opened time.Time
	served atomic.Bool
}

func (s *tcpServer) OnBoot(eng gnet.Engine) gnet.Action {
	// Store engine reference for shutdown
	s.server.engineMu.Lock()
	s.server.eng = &eng
	s.server.engineMu.Unlock()

	s.server.logger.Info("msg", "TCP server booted",
		"component", "transport",
		"port", s.server.config.Port)
	return gnet.None
}

func (s *tcpServer) OnOpen(c gnet.Conn) (out []byte, action gnet.Action) {
	s.connections.Store(c, &connState{opened: time.Now()})
	s.server.totalConns.Add(1)

	newCount := s.server.activeConns.Add(1)
	s.server.logger.Debug("msg", "Connection opened",
		"component", "transport",
		"remote_addr", c.RemoteAddr().String(),
		"active_connections", newCount)
	return nil, gnet.None
}

func (s *tcpServer) OnClose(c gnet.Conn, err error) gnet.Action {
	s.connections.Delete(c)

	newCount := s.server.activeConns.Add(-1)
	s.server.logger.Debug("msg", "Connection closed",
		"component", "transport",
		"active_connections", newCount,
		"error", err)
	return gnet.None
}

func (s *tcpServer) OnTraffic(c gnet.Conn) gnet.Action {
	v, ok := s.connections.Load(c)
	if !ok {
		c.Discard(-1)
		return gnet.Close
	}
	st := v.(*connState)
	if !st.served.CompareAndSwap(false, true) {
		// One request per connection; anything else is discarded
		c.Discard(-1)
		return gnet.None
	}

	buf, err := c.Next(-1)
	if err != nil {
		return gnet.Close
	}
	request := frameRequest(buf)

	// Dispatch on a worker so the event loop never blocks on the
	// engine mutex. The worker writes the response and closes.
	go func() {
		response := s.server.engine.Process(request)
		if len(response) > core.MaxMessageBytes {
			response = response[:core.MaxMessageBytes]
		}
		s.server.totalResponses.Add(1)

		c.AsyncWrite([]byte(response), func(c gnet.Conn, err error) error {
			c.Close()
			return nil
		})
	}()

	return gnet.None
}

func (s *tcpServer) OnTick() (time.Duration, gnet.Action) {
	now := time.Now()
	s.connections.Range(func(key, value any) bool {
		st := value.(*connState)
		if !st.served.Load() && now.Sub(st.opened) > s.server.receiveTimeout {
			// Timed-out read means no request: close without response
			s.server.totalTimeouts.Add(1)
			key.(gnet.Conn).Close()
		}
		return true
	})
	return time.Second, gnet.None
}

// frameRequest extracts the request line from the first traffic on a
// connection. The first segment is the whole request; it is capped at
// the protocol limit and cut at the first newline.
func frameRequest(buf []byte) string {
	if len(buf) > core.MaxMessageBytes {
		buf = buf[:core.MaxMessageBytes]
	}
	if i := bytes.IndexByte(buf, '\n'); i >= 0 {
		buf = buf[:i]
	}
	return string(bytes.TrimRight(buf, "\r"))
}
