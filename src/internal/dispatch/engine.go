// FILE: src/internal/dispatch/engine.go
package dispatch

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"rulegate/src/internal/core"
	"rulegate/src/internal/history"
	"rulegate/src/internal/rules"

	"github.com/lixenwraith/log"
)

// Command grammar prefixes
const (
	cmdAdd    = "A "
	cmdCheck  = "C "
	cmdDelete = "D "
	cmdList   = "L"
)

// Engine owns the rule store and request history and serializes every
// request against them. One Process call per request, fully linearized
// by the engine mutex; no front end touches the state directly.
type Engine struct {
	mu      sync.Mutex
	store   *rules.Store
	history *history.Log
	logger  *log.Logger

	startTime time.Time

	// Statistics
	totalRequests   atomic.Uint64
	illegalRequests atomic.Uint64
}

// NewEngine creates an engine with an empty rule store and history.
func NewEngine(logger *log.Logger) *Engine {
	return &Engine{
		store:     rules.NewStore(logger),
		history:   history.NewLog(logger),
		logger:    logger,
		startTime: time.Now(),
	}
}

// Process parses one request line and returns the response message.
// The whole call runs under the engine mutex, so the observable effect
// of concurrent requests is some total order of Process calls.
func (e *Engine) Process(line string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.totalRequests.Add(1)
	trimmed := strings.TrimSpace(line)

	// Accepted requests are recorded before parsing; malformed and
	// unrecognized commands land in the history too.
	e.history.Record(trimmed)

	switch {
	case strings.HasPrefix(trimmed, cmdAdd):
		ipSpec, portSpec, ok := splitSpecPair(trimmed[len(cmdAdd):])
		if !ok {
			return core.RespInvalidFormat
		}
		return e.store.Add(ipSpec, portSpec)

	case strings.HasPrefix(trimmed, cmdCheck):
		ip, port, ok := splitConnPair(trimmed[len(cmdCheck):])
		if !ok {
			return core.RespIllegalIPPort
		}
		return e.store.Check(ip, port)

	case strings.HasPrefix(trimmed, cmdDelete):
		ipSpec, portSpec, ok := splitSpecPair(trimmed[len(cmdDelete):])
		if !ok {
			return core.RespInvalidFormat
		}
		return e.store.Delete(ipSpec, portSpec)

	case trimmed == core.HistoryCommand:
		return e.history.List()

	case trimmed == cmdList:
		return e.store.List()

	default:
		e.illegalRequests.Add(1)
		e.logger.Debug("msg", "Illegal request",
			"component", "dispatch",
			"request", trimmed)
		return core.RespIllegalRequest
	}
}

// splitSpecPair expects exactly two whitespace-delimited tokens.
func splitSpecPair(args string) (string, string, bool) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return "", "", false
	}
	return fields[0], fields[1], true
}

// splitConnPair expects an address token and an integer port.
func splitConnPair(args string) (string, int, bool) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return "", 0, false
	}
	port, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, false
	}
	return fields[0], port, true
}

// GetStats returns engine statistics including the owned components.
func (e *Engine) GetStats() map[string]any {
	e.mu.Lock()
	defer e.mu.Unlock()

	return map[string]any{
		"uptime_seconds":   int64(time.Since(e.startTime).Seconds()),
		"total_requests":   e.totalRequests.Load(),
		"illegal_requests": e.illegalRequests.Load(),
		"rules":            e.store.GetStats(),
		"history":          e.history.GetStats(),
	}
}
