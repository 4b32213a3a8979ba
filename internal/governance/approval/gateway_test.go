package approval

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"procureflow.io/procureflow/internal/domain"
	apperrors "procureflow.io/procureflow/internal/pkg/errors"
	"procureflow.io/procureflow/internal/pkg/logger"
	"procureflow.io/procureflow/internal/pkg/worker"
	"procureflow.io/procureflow/internal/usecase"
)

func init() {
	_ = logger.Init("error", "json")
}

// fakeLedger records the arguments of the last call and returns canned
// results, so the gateway's orchestration is testable without PostgreSQL.
type fakeLedger struct {
	createCalled  bool
	replaceCalled bool
	deleteCalled  bool
	attachCalled  bool

	requesterID string
	requestID   string
	actorID     string
	role        domain.Role
	items       []domain.ItemLine

	result usecase.RequestResult
	err    error
}

func (f *fakeLedger) CreateRequest(
	_ context.Context,
	requesterID, _, _, _ string,
	items []domain.ItemLine,
) (usecase.RequestResult, error) {
	f.createCalled = true
	f.requesterID = requesterID
	f.items = items
	return f.result, f.err
}

func (f *fakeLedger) ReplaceItems(_ context.Context, requestID string, role domain.Role, items []domain.ItemLine) (usecase.RequestResult, error) {
	f.replaceCalled = true
	f.requestID = requestID
	f.role = role
	f.items = items
	return f.result, f.err
}

func (f *fakeLedger) DeleteRequest(_ context.Context, requestID, actorID string, role domain.Role) error {
	f.deleteCalled = true
	f.requestID = requestID
	f.actorID = actorID
	f.role = role
	return f.err
}

func (f *fakeLedger) AttachArtifacts(_ context.Context, requestID string, role domain.Role, _, _ string) (usecase.RequestResult, error) {
	f.attachCalled = true
	f.requestID = requestID
	f.role = role
	return f.result, f.err
}

type fakeRecorder struct {
	recordCalled bool
	deleteCalled bool

	requestID  string
	approverID string
	decision   domain.Decision
	comment    string
	stepID     string

	result usecase.StepResult
	err    error
}

func (f *fakeRecorder) RecordStep(_ context.Context, requestID, approverID string, decision domain.Decision, comment string) (usecase.StepResult, error) {
	f.recordCalled = true
	f.requestID = requestID
	f.approverID = approverID
	f.decision = decision
	f.comment = comment
	return f.result, f.err
}

func (f *fakeRecorder) DeleteStep(_ context.Context, stepID string) (usecase.StepResult, error) {
	f.deleteCalled = true
	f.stepID = stepID
	return f.result, f.err
}

func TestGatewaySubmit_DelegatesToLedger(t *testing.T) {
	ledger := &fakeLedger{result: usecase.RequestResult{
		ID:             "req-1",
		Amount:         decimal.RequireFromString("250.00"),
		RequiredLevels: 1,
		Status:         domain.StatusPending,
	}}
	gw := NewGateway(nil, nil, ledger, &fakeRecorder{})

	items := []domain.ItemLine{{Name: "Chair", Quantity: 1, UnitPrice: decimal.RequireFromString("250.00")}}
	result, err := gw.Submit(context.Background(), "user-1", "User One", "Chairs", "", "", items)
	require.NoError(t, err)
	require.True(t, ledger.createCalled)
	require.Equal(t, "user-1", ledger.requesterID)
	require.Equal(t, "req-1", result.ID)
	require.Equal(t, domain.StatusPending, result.Status)
}

func TestGatewaySubmit_PropagatesLedgerError(t *testing.T) {
	ledger := &fakeLedger{err: apperrors.BadRequest(apperrors.CodeItemInvalid, "item name is required")}
	gw := NewGateway(nil, nil, ledger, &fakeRecorder{})

	_, err := gw.Submit(context.Background(), "user-1", "User One", "Chairs", "", "", nil)
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeItemInvalid, appErr.Code)
}

func TestGatewaySubmit_UnconfiguredLedgerFails(t *testing.T) {
	gw := NewGateway(nil, nil, nil, &fakeRecorder{})
	_, err := gw.Submit(context.Background(), "user-1", "User One", "Chairs", "", "", nil)
	require.Error(t, err)
}

func TestGatewayDecide_DelegatesToRecorder(t *testing.T) {
	recorder := &fakeRecorder{result: usecase.StepResult{
		StepID:        "step-1",
		RequestID:     "req-1",
		Level:         2,
		Decision:      domain.DecisionApproved,
		RequestStatus: domain.StatusApproved,
	}}
	gw := NewGateway(nil, nil, &fakeLedger{}, recorder)

	result, err := gw.Decide(context.Background(), "req-1", "user-approver", domain.DecisionApproved, "fine")
	require.NoError(t, err)
	require.True(t, recorder.recordCalled)
	require.Equal(t, "req-1", recorder.requestID)
	require.Equal(t, "user-approver", recorder.approverID)
	require.Equal(t, domain.DecisionApproved, recorder.decision)
	require.Equal(t, "fine", recorder.comment)
	require.Equal(t, 2, result.Level)
	require.Equal(t, domain.StatusApproved, result.RequestStatus)
}

func TestGatewayDecide_PropagatesOverflow(t *testing.T) {
	recorder := &fakeRecorder{err: apperrors.LevelOverflow(2)}
	gw := NewGateway(nil, nil, &fakeLedger{}, recorder)

	_, err := gw.Decide(context.Background(), "req-1", "user-approver", domain.DecisionApproved, "")
	require.ErrorIs(t, err, apperrors.ErrLevelOverflow)
}

func TestGatewayRemoveStep_DelegatesToRecorder(t *testing.T) {
	recorder := &fakeRecorder{result: usecase.StepResult{
		StepID:        "step-9",
		RequestID:     "req-1",
		Level:         1,
		Decision:      domain.DecisionRejected,
		RequestStatus: domain.StatusPending,
	}}
	gw := NewGateway(nil, nil, &fakeLedger{}, recorder)

	result, err := gw.RemoveStep(context.Background(), "step-9", "user-admin")
	require.NoError(t, err)
	require.True(t, recorder.deleteCalled)
	require.Equal(t, "step-9", recorder.stepID)
	require.Equal(t, domain.StatusPending, result.RequestStatus)
}

func TestGatewayUpdateItems_PassesRoleThrough(t *testing.T) {
	ledger := &fakeLedger{result: usecase.RequestResult{ID: "req-1", Status: domain.StatusPending}}
	gw := NewGateway(nil, nil, ledger, &fakeRecorder{})

	items := []domain.ItemLine{{Name: "Desk", Quantity: 2, UnitPrice: decimal.RequireFromString("400.00")}}
	_, err := gw.UpdateItems(context.Background(), "req-1", "user-1", domain.RoleStaff, items)
	require.NoError(t, err)
	require.True(t, ledger.replaceCalled)
	require.Equal(t, domain.RoleStaff, ledger.role)
	require.Len(t, ledger.items, 1)
}

func TestGatewayWithdraw_DelegatesToLedger(t *testing.T) {
	ledger := &fakeLedger{}
	gw := NewGateway(nil, nil, ledger, &fakeRecorder{})

	require.NoError(t, gw.Withdraw(context.Background(), "req-1", "user-1", domain.RoleStaff))
	require.True(t, ledger.deleteCalled)
	require.Equal(t, "req-1", ledger.requestID)
	require.Equal(t, "user-1", ledger.actorID)
}

func TestGatewayWithdraw_PropagatesEditLocked(t *testing.T) {
	ledger := &fakeLedger{err: apperrors.EditLocked("terminal requests cannot be deleted")}
	gw := NewGateway(nil, nil, ledger, &fakeRecorder{})

	err := gw.Withdraw(context.Background(), "req-1", "user-1", domain.RoleStaff)
	require.ErrorIs(t, err, apperrors.ErrEditLocked)
}

func TestGatewayAttach_DelegatesToLedger(t *testing.T) {
	ledger := &fakeLedger{result: usecase.RequestResult{ID: "req-1", Status: domain.StatusApproved}}
	gw := NewGateway(nil, nil, ledger, &fakeRecorder{})

	result, err := gw.Attach(context.Background(), "req-1", "user-finance", domain.RoleFinance, "PO-1", "")
	require.NoError(t, err)
	require.True(t, ledger.attachCalled)
	require.Equal(t, domain.RoleFinance, ledger.role)
	require.Equal(t, domain.StatusApproved, result.Status)
}

func TestGatewayDispatch_RunsOnWorkerPool(t *testing.T) {
	pools, err := worker.NewPools(context.Background(), worker.DefaultPoolConfig())
	require.NoError(t, err)
	defer pools.Shutdown()

	gw := NewGateway(nil, nil, &fakeLedger{}, &fakeRecorder{})
	gw.SetPools(pools)

	done := make(chan struct{})
	gw.dispatch("test_effect", func(context.Context) { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pooled side effect never ran")
	}
}

func TestGatewayDispatch_RunsInlineWithoutPools(t *testing.T) {
	gw := NewGateway(nil, nil, &fakeLedger{}, &fakeRecorder{})

	ran := false
	gw.dispatch("test_effect", func(context.Context) { ran = true })
	require.True(t, ran)
}
