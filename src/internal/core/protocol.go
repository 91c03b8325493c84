// FILE: src/internal/core/protocol.go
package core

// Protocol response strings. These are part of the wire contract and must
// match byte for byte; clients compare them verbatim.
const (
	RespRuleAdded      = "Rule added"
	RespRuleExists     = "Rule already exists"
	RespInvalidRule    = "Invalid rule"
	RespRuleInvalid    = "Rule invalid"
	RespRuleNotFound   = "Rule not found"
	RespRuleDeleted    = "Rule deleted"
	RespAccepted       = "Connection accepted"
	RespRejected       = "Connection rejected"
	RespIllegalIPPort  = "Illegal IP address or port specified"
	RespInvalidFormat  = "Invalid rule format"
	RespIllegalRequest = "Illegal request"
	RespNoRules        = "No rules found\n"
	RespNoRequests     = "No requests found\n"
)

// HistoryCommand is the exact request that lists the accepted-request
// history. It is the one command the history never records.
const HistoryCommand = "R"
