package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "procureflow.io/procureflow/internal/pkg/errors"
)

func pendingSnapshot() Snapshot {
	return Snapshot{
		Title:          "New laptops",
		Description:    "Replacement hardware",
		Amount:         dec("2599.98"),
		Status:         StatusPending,
		RequiredLevels: 2,
	}
}

func requireEditLocked(t *testing.T, err error) {
	t.Helper()
	require.ErrorIs(t, err, apperrors.ErrEditLocked)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeEditLocked, appErr.Code)
}

func TestCheckMutation_NoChangeAlwaysAllowed(t *testing.T) {
	snap := pendingSnapshot()
	snap.Status = StatusRejected
	require.NoError(t, CheckMutation(snap, snap, RoleStaff))
}

func TestCheckMutation_PendingIsMutable(t *testing.T) {
	old := pendingSnapshot()
	proposed := old
	proposed.Title = "New laptops (revised)"
	proposed.Amount = dec("3099.98")
	require.NoError(t, CheckMutation(old, proposed, RoleStaff))
}

func TestCheckMutation_RejectedIsFrozen(t *testing.T) {
	old := pendingSnapshot()
	old.Status = StatusRejected

	for _, role := range []Role{RoleStaff, RoleApprover, RoleFinance, RoleAdmin} {
		proposed := old
		proposed.Description = "updated"
		requireEditLocked(t, CheckMutation(old, proposed, role))
	}

	// Even artifact fields stay frozen after rejection.
	proposed := old
	proposed.PurchaseOrder = "PO-1001"
	requireEditLocked(t, CheckMutation(old, proposed, RoleFinance))
}

func TestCheckMutation_ApprovedAllowsFinanceArtifacts(t *testing.T) {
	old := pendingSnapshot()
	old.Status = StatusApproved

	proposed := old
	proposed.PurchaseOrder = "PO-1001"
	proposed.Receipt = "RCPT-77"
	require.NoError(t, CheckMutation(old, proposed, RoleFinance))
}

func TestCheckMutation_ApprovedRejectsNonFinanceActor(t *testing.T) {
	old := pendingSnapshot()
	old.Status = StatusApproved

	for _, role := range []Role{RoleStaff, RoleApprover, RoleAdmin} {
		proposed := old
		proposed.Receipt = "RCPT-77"
		requireEditLocked(t, CheckMutation(old, proposed, role))
	}
}

func TestCheckMutation_ApprovedRejectsNonArtifactFields(t *testing.T) {
	old := pendingSnapshot()
	old.Status = StatusApproved

	proposed := old
	proposed.Title = "sneaky rename"
	requireEditLocked(t, CheckMutation(old, proposed, RoleFinance))

	proposed = old
	proposed.Amount = dec("0.01")
	requireEditLocked(t, CheckMutation(old, proposed, RoleFinance))

	// Mixing an allowed artifact with a frozen field still locks.
	proposed = old
	proposed.PurchaseOrder = "PO-1001"
	proposed.RequiredLevels = 1
	requireEditLocked(t, CheckMutation(old, proposed, RoleFinance))
}

func TestRoleValid(t *testing.T) {
	require.True(t, RoleStaff.Valid())
	require.True(t, RoleApprover.Valid())
	require.True(t, RoleFinance.Valid())
	require.True(t, RoleAdmin.Valid())
	require.False(t, Role("manager").Valid())
	require.False(t, Role("").Valid())
}
