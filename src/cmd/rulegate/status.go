// FILE: src/cmd/rulegate/status.go
package main

import (
	"context"
	"time"

	"rulegate/src/internal/dispatch"
	"rulegate/src/internal/transport"
)

// Periodically logs service status
func statusReporter(ctx context.Context, engine *dispatch.Engine, server *transport.Server) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Clean shutdown
			return
		case <-ticker.C:
			engineStats := engine.GetStats()
			transportStats := server.GetStats()

			fields := []any{
				"msg", "Status report",
				"component", "status_reporter",
				"total_requests", engineStats["total_requests"],
				"illegal_requests", engineStats["illegal_requests"],
				"active_connections", transportStats["active_connections"],
				"total_connections", transportStats["total_connections"],
				"total_timeouts", transportStats["total_timeouts"],
			}

			if ruleStats, ok := engineStats["rules"].(map[string]any); ok {
				fields = append(fields,
					"rule_count", ruleStats["rule_count"],
					"accepted", ruleStats["total_accepted"],
					"rejected", ruleStats["total_rejected"])
			}
			if historyStats, ok := engineStats["history"].(map[string]any); ok {
				fields = append(fields, "history_entries", historyStats["entry_count"])
			}

			logger.Debug(fields...)
		}
	}
}
