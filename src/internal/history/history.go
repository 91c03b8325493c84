// FILE: src/internal/history/history.go
package history

import (
	"strings"
	"sync/atomic"

	"rulegate/src/internal/core"

	"github.com/lixenwraith/log"
)

// Log is a bounded append-only record of accepted raw commands. Once the
// cap is reached new commands are silently dropped; nothing is ever
// evicted. Like the rule store, it relies on the dispatch engine for
// serialization.
type Log struct {
	entries []string
	logger  *log.Logger

	// Statistics
	totalRecorded atomic.Uint64
	totalDropped  atomic.Uint64
}

// NewLog creates an empty request history.
func NewLog(logger *log.Logger) *Log {
	return &Log{
		entries: make([]string, 0),
		logger:  logger,
	}
}

// Record appends a trimmed raw command. The history-query command itself
// is never recorded, and commands past the cap are dropped.
func (l *Log) Record(command string) {
	command = strings.TrimSpace(command)
	if command == core.HistoryCommand {
		return
	}
	if len(l.entries) >= core.MaxHistoryEntries {
		l.totalDropped.Add(1)
		return
	}
	l.entries = append(l.entries, command)
	l.totalRecorded.Add(1)
}

// List renders every recorded command on its own line, in recording
// order, capped at the display ceiling.
func (l *Log) List() string {
	if len(l.entries) == 0 {
		return core.RespNoRequests
	}

	var b strings.Builder
	for i, entry := range l.entries {
		if i >= core.MaxHistoryEntries {
			break
		}
		b.WriteString(entry)
		b.WriteByte('\n')
	}
	return b.String()
}

// Len returns the number of recorded commands.
func (l *Log) Len() int {
	return len(l.entries)
}

// GetStats returns history statistics.
func (l *Log) GetStats() map[string]any {
	return map[string]any{
		"entry_count":    len(l.entries),
		"capacity":       core.MaxHistoryEntries,
		"total_recorded": l.totalRecorded.Load(),
		"total_dropped":  l.totalDropped.Load(),
	}
}
