package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveStatus_EmptySetIsPending(t *testing.T) {
	require.Equal(t, StatusPending, ResolveStatus(2, nil))
	require.Equal(t, StatusPending, ResolveStatus(2, []Decision{}))
}

func TestResolveStatus_RejectionWinsAtAnyLevel(t *testing.T) {
	require.Equal(t, StatusRejected, ResolveStatus(3, []Decision{DecisionRejected}))
	require.Equal(t, StatusRejected, ResolveStatus(3, []Decision{DecisionApproved, DecisionRejected}))
	require.Equal(t, StatusRejected, ResolveStatus(1, []Decision{DecisionRejected, DecisionApproved}))

	// A rejection dominates even when enough approvals exist.
	require.Equal(t, StatusRejected, ResolveStatus(2, []Decision{
		DecisionApproved, DecisionApproved, DecisionRejected,
	}))
}

func TestResolveStatus_ApprovedAtThreshold(t *testing.T) {
	require.Equal(t, StatusPending, ResolveStatus(2, []Decision{DecisionApproved}))
	require.Equal(t, StatusApproved, ResolveStatus(2, []Decision{DecisionApproved, DecisionApproved}))
	require.Equal(t, StatusApproved, ResolveStatus(1, []Decision{DecisionApproved}))
}

func TestResolveStatus_OrderIndependent(t *testing.T) {
	a := ResolveStatus(2, []Decision{DecisionApproved, DecisionRejected})
	b := ResolveStatus(2, []Decision{DecisionRejected, DecisionApproved})
	require.Equal(t, a, b)
}

func TestResolveStatus_ZeroRequiredLevelsNeverApproves(t *testing.T) {
	// A zero threshold is a misconfiguration upstream; the resolver stays
	// conservative and keeps the request pending.
	require.Equal(t, StatusPending, ResolveStatus(0, []Decision{DecisionApproved}))
}

func TestNextLevel(t *testing.T) {
	require.Equal(t, 1, NextLevel(nil))
	require.Equal(t, 2, NextLevel([]int{1}))
	require.Equal(t, 4, NextLevel([]int{1, 2, 3}))

	// Deleted levels are never reused: the sequence continues past the max.
	require.Equal(t, 4, NextLevel([]int{1, 3}))
}

func TestStatusTerminal(t *testing.T) {
	require.False(t, StatusPending.Terminal())
	require.True(t, StatusApproved.Terminal())
	require.True(t, StatusRejected.Terminal())
}

func TestDecisionValid(t *testing.T) {
	require.True(t, DecisionApproved.Valid())
	require.True(t, DecisionRejected.Valid())
	require.False(t, Decision("PENDING").Valid())
	require.False(t, Decision("").Valid())
}
