// FILE: src/cmd/rulegate-client/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"rulegate/src/internal/core"
)

// One-shot client for the rulegate policy protocol: dial, send one
// request line, print the response.

var (
	host    = flag.String("host", "127.0.0.1", "Server host")
	port    = flag.Int("port", 8080, "Server port")
	timeout = flag.Duration("timeout", core.ReceiveTimeout, "Dial and response timeout")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <request...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Sends one policy request and prints the response.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -port 5000 A 10.0.0.0-10.0.0.255 80-90\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -port 5000 C 10.0.0.5 85\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -port 5000 L\n", os.Args[0])
	}
}

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	request := strings.Join(flag.Args(), " ")

	response, err := send(*host, *port, request, *timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(response)
}

func send(host string, port int, request string, timeout time.Duration) (string, error) {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))

	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return "", fmt.Errorf("connect to %s: %w", addr, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return "", err
	}

	if _, err := conn.Write([]byte(request + "\n")); err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}

	// The server writes one message and closes, so read until EOF
	response, err := io.ReadAll(io.LimitReader(conn, core.MaxMessageBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return strings.TrimRight(string(response), "\n"), nil
}
