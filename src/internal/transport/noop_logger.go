// FILE: src/internal/transport/noop_logger.go
package transport

// noopLogger implements gnet's Logger interface but discards everything;
// operational logging goes through the injected structured logger.
type noopLogger struct{}

func (n noopLogger) Debugf(format string, args ...any) {}
func (n noopLogger) Infof(format string, args ...any)  {}
func (n noopLogger) Warnf(format string, args ...any)  {}
func (n noopLogger) Errorf(format string, args ...any) {}
func (n noopLogger) Fatalf(format string, args ...any) {}
