// FILE: src/internal/core/const.go
package core

import "time"

// Wire protocol limits
const (
	// MaxMessageBytes is the largest request or response the protocol
	// carries, excluding the terminating newline.
	MaxMessageBytes = 1023

	// ReceiveTimeout is how long an accepted connection may wait for its
	// request before the server closes it without a response.
	ReceiveTimeout = 10 * time.Second
)

// MaxHistoryEntries caps the accepted-request history. Once the cap is
// reached further requests are silently dropped, never evicted.
const MaxHistoryEntries = 100
