// FILE: src/internal/rules/store.go
package rules

import (
	"fmt"
	"strings"
	"sync/atomic"

	"rulegate/src/internal/core"
	"rulegate/src/internal/iprange"

	"github.com/lixenwraith/log"
)

// Hit records a connection check that matched a rule.
type Hit struct {
	IP   string
	Port int
}

// Rule is one admission policy entry. Specs are kept as the exact
// strings the client supplied; duplicate detection is string equality,
// not semantic range equality.
type Rule struct {
	IPSpec   string
	PortSpec string
	Hits     []Hit
}

// Store holds admission rules in insertion order. Insertion order is the
// evaluation order and survives deletions. The store is not internally
// locked; the dispatch engine serializes all access.
type Store struct {
	rules  []Rule
	logger *log.Logger

	// Statistics
	totalAccepted atomic.Uint64
	totalRejected atomic.Uint64
	totalAdded    atomic.Uint64
	totalDeleted  atomic.Uint64
}

// NewStore creates an empty rule store.
func NewStore(logger *log.Logger) *Store {
	return &Store{
		rules:  make([]Rule, 0),
		logger: logger,
	}
}

// Add validates both specs and appends a new rule at the end of the
// evaluation order. The response string is part of the wire contract.
func (s *Store) Add(ipSpec, portSpec string) string {
	if !iprange.IsValidIPRange(ipSpec) || !iprange.IsValidPortRange(portSpec) {
		s.logger.Debug("msg", "Rejected invalid rule",
			"component", "rules",
			"ip_spec", ipSpec,
			"port_spec", portSpec)
		return core.RespInvalidRule
	}

	if s.find(ipSpec, portSpec) >= 0 {
		return core.RespRuleExists
	}

	s.rules = append(s.rules, Rule{
		IPSpec:   ipSpec,
		PortSpec: portSpec,
		Hits:     make([]Hit, 0),
	})
	s.totalAdded.Add(1)

	s.logger.Debug("msg", "Rule added",
		"component", "rules",
		"ip_spec", ipSpec,
		"port_spec", portSpec,
		"rule_count", len(s.rules))
	return core.RespRuleAdded
}

// Delete removes the rule with exactly matching specs, discarding its
// hit log. Remaining rules keep their relative order. Note the invalid
// response differs from Add's; both wordings are load-bearing.
func (s *Store) Delete(ipSpec, portSpec string) string {
	if !iprange.IsValidIPRange(ipSpec) || !iprange.IsValidPortRange(portSpec) {
		return core.RespRuleInvalid
	}

	i := s.find(ipSpec, portSpec)
	if i < 0 {
		return core.RespRuleNotFound
	}

	s.rules = append(s.rules[:i], s.rules[i+1:]...)
	s.totalDeleted.Add(1)

	s.logger.Debug("msg", "Rule deleted",
		"component", "rules",
		"ip_spec", ipSpec,
		"port_spec", portSpec,
		"rule_count", len(s.rules))
	return core.RespRuleDeleted
}

// Check tests whether a connection from ip to port would be admitted.
// Rules are scanned in insertion order and the first match wins: the hit
// is credited to that rule only, later rules are never consulted.
func (s *Store) Check(ip string, port int) string {
	if !iprange.IsValidIP(ip) || port < iprange.MinPort || port > iprange.MaxPort {
		return core.RespIllegalIPPort
	}

	for i := range s.rules {
		rule := &s.rules[i]
		if iprange.WithinIPRange(ip, rule.IPSpec) && iprange.WithinPortRange(port, rule.PortSpec) {
			rule.Hits = append(rule.Hits, Hit{IP: ip, Port: port})
			s.totalAccepted.Add(1)
			s.logger.Debug("msg", "Connection accepted",
				"component", "rules",
				"ip", ip,
				"port", port,
				"ip_spec", rule.IPSpec,
				"port_spec", rule.PortSpec)
			return core.RespAccepted
		}
	}

	s.totalRejected.Add(1)
	s.logger.Debug("msg", "Connection rejected",
		"component", "rules",
		"ip", ip,
		"port", port)
	return core.RespRejected
}

// List renders every rule in evaluation order, each followed by the
// connection checks it has matched, in the order they were recorded.
func (s *Store) List() string {
	if len(s.rules) == 0 {
		return core.RespNoRules
	}

	var b strings.Builder
	for i := range s.rules {
		rule := &s.rules[i]
		fmt.Fprintf(&b, "Rule: %s %s\n", rule.IPSpec, rule.PortSpec)
		for _, hit := range rule.Hits {
			fmt.Fprintf(&b, "Query: %s %d\n", hit.IP, hit.Port)
		}
	}
	return b.String()
}

// Len returns the number of rules currently stored.
func (s *Store) Len() int {
	return len(s.rules)
}

// find returns the index of the rule with exactly matching specs, or -1.
func (s *Store) find(ipSpec, portSpec string) int {
	for i := range s.rules {
		if s.rules[i].IPSpec == ipSpec && s.rules[i].PortSpec == portSpec {
			return i
		}
	}
	return -1
}

// GetStats returns rule store statistics.
func (s *Store) GetStats() map[string]any {
	totalHits := 0
	for i := range s.rules {
		totalHits += len(s.rules[i].Hits)
	}

	return map[string]any{
		"rule_count":     len(s.rules),
		"total_hits":     totalHits,
		"total_added":    s.totalAdded.Load(),
		"total_deleted":  s.totalDeleted.Load(),
		"total_accepted": s.totalAccepted.Load(),
		"total_rejected": s.totalRejected.Load(),
	}
}
