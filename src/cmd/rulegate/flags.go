// FILE: src/cmd/rulegate/flags.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lixenwraith/log"
)

// Command-line flags
var (
	// General flags
	configFile      = flag.String("config", "", "Config file path")
	interactiveMode = flag.Bool("i", false, "Interactive mode: read requests from stdin")
	serverPort      = flag.Int("port", 0, "TCP listen port (overrides config)")
	quietMode       = flag.Bool("quiet", false, "Suppress console output")
	showVersion     = flag.Bool("version", false, "Show version information")

	// Logging flags
	logOutput = flag.String("log-output", "", "Log output: file, stdout, stderr, both, none (overrides config)")
	logLevel  = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	logFile   = flag.String("log-file", "", "Log file name (when using file output)")
	logDir    = flag.String("log-dir", "", "Log directory (when using file output)")
)

func init() {
	flag.Usage = customUsage
}

func customUsage() {
	fmt.Fprintf(os.Stderr, "Rulegate - IP/Port Admission Policy Service\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")

	fmt.Fprintf(os.Stderr, "\nGeneral:\n")
	fmt.Fprintf(os.Stderr, "  -config string\n\tConfig file path\n")
	fmt.Fprintf(os.Stderr, "  -i\n\tInteractive mode: read requests from stdin, one per line\n")
	fmt.Fprintf(os.Stderr, "  -port int\n\tTCP listen port (overrides config)\n")
	fmt.Fprintf(os.Stderr, "  -quiet\n\tSuppress console output\n")
	fmt.Fprintf(os.Stderr, "  -version\n\tShow version information\n")

	fmt.Fprintf(os.Stderr, "\nLogging:\n")
	fmt.Fprintf(os.Stderr, "  -log-output string\n\tLog output: file, stdout, stderr, both, none (overrides config)\n")
	fmt.Fprintf(os.Stderr, "  -log-level string\n\tLog level: debug, info, warn, error (overrides config)\n")
	fmt.Fprintf(os.Stderr, "  -log-file string\n\tLog file name (when using file output)\n")
	fmt.Fprintf(os.Stderr, "  -log-dir string\n\tLog directory (when using file output)\n")

	fmt.Fprintf(os.Stderr, "\nRequests:\n")
	fmt.Fprintf(os.Stderr, "  A <ip|ip-ip> <port|port-port>\tAdd an admission rule\n")
	fmt.Fprintf(os.Stderr, "  D <ip|ip-ip> <port|port-port>\tDelete an admission rule\n")
	fmt.Fprintf(os.Stderr, "  C <ip> <port>\t\t\tCheck whether a connection is admitted\n")
	fmt.Fprintf(os.Stderr, "  L\t\t\t\tList rules and their matched queries\n")
	fmt.Fprintf(os.Stderr, "  R\t\t\t\tList accepted requests\n")

	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  # Serve the policy protocol on port 5000\n")
	fmt.Fprintf(os.Stderr, "  %s -port 5000\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "  # Interactive session on stdin\n")
	fmt.Fprintf(os.Stderr, "  %s -i\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "  # Run with custom config and debug logging\n")
	fmt.Fprintf(os.Stderr, "  %s -config /etc/rulegate.toml -log-level debug\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "Environment Variables:\n")
	fmt.Fprintf(os.Stderr, "  RULEGATE_CONFIG_FILE              Config file path\n")
	fmt.Fprintf(os.Stderr, "  RULEGATE_CONFIG_DIR               Config directory\n")
	fmt.Fprintf(os.Stderr, "  RULEGATE_DISABLE_STATUS_REPORTER  Disable periodic status reports (set to 1)\n")
}

func parseFlags() error {
	flag.Parse()

	if *serverPort != 0 && (*serverPort < 1 || *serverPort > 65535) {
		return fmt.Errorf("invalid port: %d (valid: 1-65535)", *serverPort)
	}

	// Validate log-output flag if provided
	if *logOutput != "" {
		validOutputs := map[string]bool{
			"file": true, "stdout": true, "stderr": true,
			"both": true, "none": true,
		}
		if !validOutputs[*logOutput] {
			return fmt.Errorf("invalid log-output: %s (valid: file, stdout, stderr, both, none)", *logOutput)
		}
	}

	// Validate log-level flag if provided
	if *logLevel != "" {
		if _, err := parseLogLevel(*logLevel); err != nil {
			return fmt.Errorf("invalid log-level: %s (valid: debug, info, warn, error)", *logLevel)
		}
	}

	return nil
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
