package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"procureflow.io/procureflow/ent"
	entapprovalstep "procureflow.io/procureflow/ent/approvalstep"
	"procureflow.io/procureflow/internal/domain"
	apperrors "procureflow.io/procureflow/internal/pkg/errors"
)

func TestApprovalWriter_RecordStep_SequencesLevels(t *testing.T) {
	client, requests, approvals := newApprovalFixture(t, "record_sequence")
	ctx := context.Background()

	created, err := requests.CreateRequest(ctx, "user-staff", "Servers", "", "",
		[]domain.ItemLine{{Name: "Server", Quantity: 1, UnitPrice: dec(t, "6000.00")}})
	require.NoError(t, err)
	require.Equal(t, 3, created.RequiredLevels)

	first, err := approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionApproved, "team lead ok")
	require.NoError(t, err)
	require.Equal(t, 1, first.Level)
	require.Equal(t, domain.StatusPending, first.RequestStatus)

	second, err := approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionApproved, "")
	require.NoError(t, err)
	require.Equal(t, 2, second.Level)
	require.Equal(t, domain.StatusPending, second.RequestStatus)

	third, err := approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionApproved, "")
	require.NoError(t, err)
	require.Equal(t, 3, third.Level)
	require.Equal(t, domain.StatusApproved, third.RequestStatus)

	steps, err := client.ApprovalStep.Query().
		Where(entapprovalstep.RequestIDEQ(created.ID)).
		Order(ent.Asc(entapprovalstep.FieldLevel)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	for i, s := range steps {
		require.Equal(t, i+1, s.Level)
	}
}

func TestApprovalWriter_RecordStep_RejectionIsTerminal(t *testing.T) {
	_, requests, approvals := newApprovalFixture(t, "record_reject")
	ctx := context.Background()

	created, err := requests.CreateRequest(ctx, "user-staff", "Sofas", "", "",
		[]domain.ItemLine{{Name: "Sofa", Quantity: 1, UnitPrice: dec(t, "1200.00")}})
	require.NoError(t, err)
	require.Equal(t, 2, created.RequiredLevels)

	step, err := approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionRejected, "not needed")
	require.NoError(t, err)
	require.Equal(t, domain.StatusRejected, step.RequestStatus)

	// No further decisions on a terminal request.
	_, err = approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionApproved, "")
	require.ErrorIs(t, err, apperrors.ErrEditLocked)
}

func TestApprovalWriter_RecordStep_Validation(t *testing.T) {
	_, requests, approvals := newApprovalFixture(t, "record_invalid")
	ctx := context.Background()

	created, err := requests.CreateRequest(ctx, "user-staff", "Plants", "", "",
		[]domain.ItemLine{{Name: "Plant", Quantity: 3, UnitPrice: dec(t, "25.00")}})
	require.NoError(t, err)

	_, err = approvals.RecordStep(ctx, created.ID, "user-approver", domain.Decision("MAYBE"), "")
	require.Error(t, err)

	_, err = approvals.RecordStep(ctx, created.ID, "", domain.DecisionApproved, "")
	require.Error(t, err)

	_, err = approvals.RecordStep(ctx, "no-such-request", "user-approver", domain.DecisionApproved, "")
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeRequestNotFound, appErr.Code)
}

func TestApprovalWriter_DeleteStep_RecomputesStatus(t *testing.T) {
	client, requests, approvals := newApprovalFixture(t, "delete_step")
	ctx := context.Background()

	created, err := requests.CreateRequest(ctx, "user-staff", "Rack servers", "", "",
		[]domain.ItemLine{{Name: "Server", Quantity: 2, UnitPrice: dec(t, "4800.00")}})
	require.NoError(t, err)
	require.Equal(t, 3, created.RequiredLevels)

	_, err = approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionApproved, "")
	require.NoError(t, err)
	rejected, err := approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionRejected, "too pricey")
	require.NoError(t, err)
	require.Equal(t, domain.StatusRejected, rejected.RequestStatus)

	// Removing the rejecting step reopens the request: the remaining single
	// approval is below the threshold of three.
	removed, err := approvals.DeleteStep(ctx, rejected.StepID)
	require.NoError(t, err)
	require.Equal(t, created.ID, removed.RequestID)
	require.Equal(t, 2, removed.Level)
	require.Equal(t, domain.DecisionRejected, removed.Decision)
	require.Equal(t, domain.StatusPending, removed.RequestStatus)

	// The level mark keeps the deleted step's level.
	stored, err := client.PurchaseRequest.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stored.LastLevel)

	// The freed level is never reused: the next decision takes level 3.
	next, err := approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionApproved, "")
	require.NoError(t, err)
	require.Equal(t, 3, next.Level)

	// Approvals sit at levels 1 and 3 only: the burned level cost the chain
	// one of its three slots, so the request can no longer be approved.
	require.Equal(t, domain.StatusPending, next.RequestStatus)
	_, err = approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionApproved, "")
	require.ErrorIs(t, err, apperrors.ErrLevelOverflow)
}

func TestApprovalWriter_LevelOverflowAfterCorrection(t *testing.T) {
	_, requests, approvals := newApprovalFixture(t, "level_overflow")
	ctx := context.Background()

	created, err := requests.CreateRequest(ctx, "user-staff", "Stationery", "", "",
		[]domain.ItemLine{{Name: "Notebook", Quantity: 10, UnitPrice: dec(t, "4.50")}})
	require.NoError(t, err)
	require.Equal(t, 1, created.RequiredLevels)

	step, err := approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionApproved, "")
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, step.RequestStatus)

	// Deleting the only step reopens the request, but level 1 stays burned.
	// With one required level the next step would land at level 2 and is
	// refused instead of silently extending the chain.
	removed, err := approvals.DeleteStep(ctx, step.StepID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, removed.RequestStatus)

	_, err = approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionApproved, "")
	require.ErrorIs(t, err, apperrors.ErrLevelOverflow)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeLevelOverflow, appErr.Code)
	require.Equal(t, 1, appErr.Params["required_levels"])
}

func TestApprovalWriter_DeleteStep_NotFound(t *testing.T) {
	_, _, approvals := newApprovalFixture(t, "delete_step_missing")

	_, err := approvals.DeleteStep(context.Background(), "no-such-step")
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeStepNotFound, appErr.Code)
}

func TestApprovalWriter_BusyWhenRowIsLocked(t *testing.T) {
	_, requests, approvals := newApprovalFixture(t, "record_busy")
	ctx := context.Background()

	created, err := requests.CreateRequest(ctx, "user-staff", "Standing desks", "", "",
		[]domain.ItemLine{{Name: "Desk", Quantity: 3, UnitPrice: dec(t, "650.00")}})
	require.NoError(t, err)

	// Hold the row lock in a competing transaction for the duration.
	blocker, err := approvals.pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = blocker.Rollback(ctx) }()
	_, err = blocker.Exec(ctx, `SELECT id FROM purchase_requests WHERE id = $1 FOR UPDATE`, created.ID)
	require.NoError(t, err)

	_, err = approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionApproved, "")
	require.ErrorIs(t, err, apperrors.ErrBusy)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeBusy, appErr.Code)
	require.Equal(t, 503, appErr.HTTPStatus)

	require.NoError(t, blocker.Rollback(ctx))

	// After the competing transaction releases the lock the decision lands.
	step, err := approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionApproved, "")
	require.NoError(t, err)
	require.Equal(t, 1, step.Level)
}
