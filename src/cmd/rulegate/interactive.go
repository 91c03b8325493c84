// FILE: src/cmd/rulegate/interactive.go
package main

import (
	"bufio"
	"fmt"
	"os"

	"rulegate/src/internal/core"
	"rulegate/src/internal/dispatch"

	"golang.org/x/term"
)

// runInteractive reads requests from stdin, one per line, and prints
// each response to stdout. Responses are wire output and ignore quiet
// mode. A prompt is shown only when stdin is a terminal, so piped
// sessions produce clean output.
func runInteractive(engine *dispatch.Engine) error {
	prompt := term.IsTerminal(int(os.Stdin.Fd()))

	logger.Info("msg", "Interactive session started",
		"component", "interactive",
		"terminal", prompt)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 64*1024)

	for {
		if prompt {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if len(line) > core.MaxMessageBytes {
			line = line[:core.MaxMessageBytes]
		}
		fmt.Println(engine.Process(line))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	logger.Info("msg", "Interactive session ended", "component", "interactive")
	return nil
}
