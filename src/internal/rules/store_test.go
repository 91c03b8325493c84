// FILE: src/internal/rules/store_test.go
package rules

import (
	"testing"

	"rulegate/src/internal/core"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
)

func newTestStore() *Store {
	return NewStore(log.NewLogger())
}

func TestStore_Add(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s := newTestStore()
		assert.Equal(t, core.RespRuleAdded, s.Add("10.0.0.1", "80"))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("DuplicateRejected", func(t *testing.T) {
		s := newTestStore()
		assert.Equal(t, core.RespRuleAdded, s.Add("10.0.0.1", "80"))
		assert.Equal(t, core.RespRuleExists, s.Add("10.0.0.1", "80"))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("DuplicateIsStringEqualityNotSemantic", func(t *testing.T) {
		s := newTestStore()
		// Same address set expressed differently is a distinct rule
		assert.Equal(t, core.RespRuleAdded, s.Add("10.0.0.1", "80"))
		assert.Equal(t, core.RespRuleAdded, s.Add("10.0.0.1-10.0.0.1", "80"))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("InvalidIPSpec", func(t *testing.T) {
		s := newTestStore()
		assert.Equal(t, core.RespInvalidRule, s.Add("10.0.0", "80"))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("InvalidPortSpec", func(t *testing.T) {
		s := newTestStore()
		assert.Equal(t, core.RespInvalidRule, s.Add("10.0.0.1", "99999"))
	})

	t.Run("EqualPortBoundsRejected", func(t *testing.T) {
		s := newTestStore()
		assert.Equal(t, core.RespInvalidRule, s.Add("1.1.1.1", "50-50"))
	})

	t.Run("ReversedIPRangeAccepted", func(t *testing.T) {
		// Reversed IP bounds are syntactically valid; the rule will
		// simply never match anything.
		s := newTestStore()
		assert.Equal(t, core.RespRuleAdded, s.Add("10.0.0.255-10.0.0.0", "80"))
		assert.Equal(t, core.RespRejected, s.Check("10.0.0.128", 80))
	})
}

func TestStore_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s := newTestStore()
		s.Add("10.0.0.1", "80")
		assert.Equal(t, core.RespRuleDeleted, s.Delete("10.0.0.1", "80"))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("NotFound", func(t *testing.T) {
		s := newTestStore()
		s.Add("10.0.0.1", "80")
		assert.Equal(t, core.RespRuleNotFound, s.Delete("10.0.0.2", "80"))
	})

	t.Run("InvalidSpecWording", func(t *testing.T) {
		// Delete's invalid wording differs from Add's on purpose
		s := newTestStore()
		assert.Equal(t, core.RespRuleInvalid, s.Delete("10.0.0", "80"))
	})

	t.Run("PreservesOrder", func(t *testing.T) {
		s := newTestStore()
		s.Add("1.1.1.1", "80")
		s.Add("2.2.2.2", "80")
		s.Add("3.3.3.3", "80")
		s.Delete("2.2.2.2", "80")

		assert.Equal(t, "Rule: 1.1.1.1 80\nRule: 3.3.3.3 80\n", s.List())
	})

	t.Run("DiscardsHitLog", func(t *testing.T) {
		s := newTestStore()
		s.Add("10.0.0.1", "80")
		s.Check("10.0.0.1", 80)
		s.Delete("10.0.0.1", "80")
		s.Add("10.0.0.1", "80")
		assert.Equal(t, "Rule: 10.0.0.1 80\n", s.List())
	})
}

func TestStore_Check(t *testing.T) {
	t.Run("AcceptAndLog", func(t *testing.T) {
		s := newTestStore()
		s.Add("10.0.0.0-10.0.0.255", "80-90")
		assert.Equal(t, core.RespAccepted, s.Check("10.0.0.5", 85))
		assert.Equal(t, "Rule: 10.0.0.0-10.0.0.255 80-90\nQuery: 10.0.0.5 85\n", s.List())
	})

	t.Run("RejectNotLogged", func(t *testing.T) {
		s := newTestStore()
		s.Add("10.0.0.1", "80")
		assert.Equal(t, core.RespRejected, s.Check("10.0.0.2", 80))
		assert.Equal(t, "Rule: 10.0.0.1 80\n", s.List())
	})

	t.Run("FirstMatchWins", func(t *testing.T) {
		s := newTestStore()
		s.Add("10.0.0.0-10.0.0.255", "80-90")
		s.Add("10.0.0.5", "85")
		assert.Equal(t, core.RespAccepted, s.Check("10.0.0.5", 85))

		// The hit lands on the first rule only
		expected := "Rule: 10.0.0.0-10.0.0.255 80-90\n" +
			"Query: 10.0.0.5 85\n" +
			"Rule: 10.0.0.5 85\n"
		assert.Equal(t, expected, s.List())
	})

	t.Run("PortBoundaryInclusive", func(t *testing.T) {
		s := newTestStore()
		s.Add("10.0.0.1", "100-200")
		assert.Equal(t, core.RespAccepted, s.Check("10.0.0.1", 100))
		assert.Equal(t, core.RespAccepted, s.Check("10.0.0.1", 200))
		assert.Equal(t, core.RespRejected, s.Check("10.0.0.1", 201))
	})

	t.Run("IllegalIP", func(t *testing.T) {
		s := newTestStore()
		assert.Equal(t, core.RespIllegalIPPort, s.Check("not-an-ip", 80))
	})

	t.Run("IllegalPort", func(t *testing.T) {
		s := newTestStore()
		assert.Equal(t, core.RespIllegalIPPort, s.Check("10.0.0.1", 70000))
		assert.Equal(t, core.RespIllegalIPPort, s.Check("10.0.0.1", -1))
	})

	t.Run("HitsRecordedInOrder", func(t *testing.T) {
		s := newTestStore()
		s.Add("10.0.0.0-10.0.0.255", "0-65535")

		s.Check("10.0.0.1", 80)
		s.Check("10.0.0.2", 443)
		s.Check("10.0.0.3", 22)

		expected := "Rule: 10.0.0.0-10.0.0.255 0-65535\n" +
			"Query: 10.0.0.1 80\n" +
			"Query: 10.0.0.2 443\n" +
			"Query: 10.0.0.3 22\n"
		assert.Equal(t, expected, s.List())
	})
}

func TestStore_List(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		s := newTestStore()
		assert.Equal(t, "No rules found\n", s.List())
	})

	t.Run("InsertionOrder", func(t *testing.T) {
		s := newTestStore()
		s.Add("3.3.3.3", "30")
		s.Add("1.1.1.1", "10")
		s.Add("2.2.2.2", "20")
		assert.Equal(t, "Rule: 3.3.3.3 30\nRule: 1.1.1.1 10\nRule: 2.2.2.2 20\n", s.List())
	})
}

func TestStore_GetStats(t *testing.T) {
	s := newTestStore()
	s.Add("10.0.0.1", "80")
	s.Add("10.0.0.2", "80")
	s.Check("10.0.0.1", 80)
	s.Check("9.9.9.9", 80)
	s.Delete("10.0.0.2", "80")

	stats := s.GetStats()
	assert.Equal(t, 1, stats["rule_count"])
	assert.Equal(t, 1, stats["total_hits"])
	assert.Equal(t, uint64(2), stats["total_added"])
	assert.Equal(t, uint64(1), stats["total_deleted"])
	assert.Equal(t, uint64(1), stats["total_accepted"])
	assert.Equal(t, uint64(1), stats["total_rejected"])
}
