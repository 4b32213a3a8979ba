package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"procureflow.io/procureflow/ent"
	entrequestitem "procureflow.io/procureflow/ent/requestitem"
	entuser "procureflow.io/procureflow/ent/user"
	"procureflow.io/procureflow/internal/domain"
	apperrors "procureflow.io/procureflow/internal/pkg/errors"
	"procureflow.io/procureflow/internal/testutil"
)

const testLockTimeout = 500 * time.Millisecond

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// newApprovalFixture provisions an isolated schema with one user per role and
// the baseline policy bands, and returns both writers on that schema.
func newApprovalFixture(t *testing.T, prefix string) (*ent.Client, *RequestWriter, *ApprovalWriter) {
	t.Helper()
	client, pool := testutil.OpenApprovalStore(t, prefix)
	ctx := context.Background()

	for _, role := range []string{"staff", "approver", "finance", "admin"} {
		_, err := client.User.Create().
			SetID("user-" + role).
			SetEmail(role + "@test.local").
			SetFullName("Test " + role).
			SetRole(entuser.Role(role)).
			SetPasswordHash("x").
			Save(ctx)
		require.NoError(t, err)
	}

	policies := []struct {
		id       string
		min, max string
		levels   int
	}{
		{"policy-small", "0.01", "500.00", 1},
		{"policy-medium", "500.01", "5000.00", 2},
		{"policy-large", "5000.01", "999999.99", 3},
	}
	for _, p := range policies {
		_, err := client.ApprovalPolicy.Create().
			SetID(p.id).
			SetTitle(p.id).
			SetMinAmount(dec(t, p.min)).
			SetMaxAmount(dec(t, p.max)).
			SetRequiredLevels(p.levels).
			SetActive(true).
			SetCreatedBy("fixture").
			Save(ctx)
		require.NoError(t, err)
	}

	return client, NewRequestWriter(pool, testLockTimeout, 2), NewApprovalWriter(pool, testLockTimeout)
}

func laptopItems(t *testing.T) []domain.ItemLine {
	return []domain.ItemLine{
		{Name: "Laptop", Quantity: 2, UnitPrice: dec(t, "1299.99")},
		{Name: "Dock", Quantity: 2, UnitPrice: dec(t, "150.00")},
	}
}

func TestRequestWriter_CreateRequest(t *testing.T) {
	client, requests, _ := newApprovalFixture(t, "create_request")
	ctx := context.Background()

	result, err := requests.CreateRequest(ctx, "user-staff", "New laptops", "hardware refresh", "", laptopItems(t))
	require.NoError(t, err)
	require.NotEmpty(t, result.ID)
	require.True(t, dec(t, "2899.98").Equal(result.Amount))
	// 2899.98 falls into the medium band.
	require.Equal(t, 2, result.RequiredLevels)
	require.Equal(t, domain.StatusPending, result.Status)

	stored, err := client.PurchaseRequest.Get(ctx, result.ID)
	require.NoError(t, err)
	require.Equal(t, "user-staff", stored.RequesterID)
	require.True(t, result.Amount.Equal(stored.Amount))
	require.Equal(t, 2, stored.RequiredLevels)

	items, err := client.RequestItem.Query().
		Where(entrequestitem.RequestIDEQ(result.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestRequestWriter_CreateRequest_PolicyBands(t *testing.T) {
	_, requests, _ := newApprovalFixture(t, "create_bands")
	ctx := context.Background()

	small, err := requests.CreateRequest(ctx, "user-staff", "Cables", "", "",
		[]domain.ItemLine{{Name: "HDMI cable", Quantity: 3, UnitPrice: dec(t, "12.50")}})
	require.NoError(t, err)
	require.Equal(t, 1, small.RequiredLevels)

	large, err := requests.CreateRequest(ctx, "user-staff", "Rack servers", "", "",
		[]domain.ItemLine{{Name: "Server", Quantity: 2, UnitPrice: dec(t, "4800.00")}})
	require.NoError(t, err)
	require.Equal(t, 3, large.RequiredLevels)
}

func TestRequestWriter_CreateRequest_EmptyLedgerUsesDefault(t *testing.T) {
	_, requests, _ := newApprovalFixture(t, "create_empty")

	result, err := requests.CreateRequest(context.Background(), "user-staff", "Placeholder", "", "", nil)
	require.NoError(t, err)
	require.True(t, result.Amount.IsZero())
	// Zero amount means no policy evaluation: the configured default applies.
	require.Equal(t, 2, result.RequiredLevels)
}

func TestRequestWriter_CreateRequest_Validation(t *testing.T) {
	_, requests, _ := newApprovalFixture(t, "create_invalid")
	ctx := context.Background()

	_, err := requests.CreateRequest(ctx, "user-staff", "", "", "", nil)
	require.Error(t, err)

	_, err = requests.CreateRequest(ctx, "user-staff", "Bad items", "", "",
		[]domain.ItemLine{{Name: "", Quantity: 1, UnitPrice: dec(t, "1.00")}})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeItemInvalid, appErr.Code)
}

func TestRequestWriter_ReplaceItems_RecomputesAmountAndLevels(t *testing.T) {
	_, requests, _ := newApprovalFixture(t, "replace_items")
	ctx := context.Background()

	created, err := requests.CreateRequest(ctx, "user-staff", "Cables", "", "",
		[]domain.ItemLine{{Name: "HDMI cable", Quantity: 1, UnitPrice: dec(t, "12.50")}})
	require.NoError(t, err)
	require.Equal(t, 1, created.RequiredLevels)

	// Re-pricing into the large band before any decision resizes the chain.
	result, err := requests.ReplaceItems(ctx, created.ID, domain.RoleStaff,
		[]domain.ItemLine{{Name: "Server", Quantity: 1, UnitPrice: dec(t, "9000.00")}})
	require.NoError(t, err)
	require.True(t, dec(t, "9000.00").Equal(result.Amount))
	require.Equal(t, 3, result.RequiredLevels)
	require.Equal(t, domain.StatusPending, result.Status)
}

func TestRequestWriter_ReplaceItems_LevelsFreezeAfterFirstStep(t *testing.T) {
	_, requests, approvals := newApprovalFixture(t, "replace_frozen")
	ctx := context.Background()

	created, err := requests.CreateRequest(ctx, "user-staff", "Monitors", "", "",
		[]domain.ItemLine{{Name: "Monitor", Quantity: 4, UnitPrice: dec(t, "350.00")}})
	require.NoError(t, err)
	require.Equal(t, 2, created.RequiredLevels)

	_, err = approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionApproved, "")
	require.NoError(t, err)

	// Shrinking the amount into the small band must not shrink the chain.
	result, err := requests.ReplaceItems(ctx, created.ID, domain.RoleStaff,
		[]domain.ItemLine{{Name: "Monitor", Quantity: 1, UnitPrice: dec(t, "99.00")}})
	require.NoError(t, err)
	require.True(t, dec(t, "99.00").Equal(result.Amount))
	require.Equal(t, 2, result.RequiredLevels)
}

func TestRequestWriter_ReplaceItems_RejectedIsFrozen(t *testing.T) {
	_, requests, approvals := newApprovalFixture(t, "replace_rejected")
	ctx := context.Background()

	created, err := requests.CreateRequest(ctx, "user-staff", "Chairs", "", "",
		[]domain.ItemLine{{Name: "Chair", Quantity: 2, UnitPrice: dec(t, "180.00")}})
	require.NoError(t, err)

	step, err := approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionRejected, "over budget")
	require.NoError(t, err)
	require.Equal(t, domain.StatusRejected, step.RequestStatus)

	_, err = requests.ReplaceItems(ctx, created.ID, domain.RoleStaff,
		[]domain.ItemLine{{Name: "Chair", Quantity: 1, UnitPrice: dec(t, "90.00")}})
	require.ErrorIs(t, err, apperrors.ErrEditLocked)
}

func TestRequestWriter_ReplaceItems_TerminalEqualSumSwapIsFrozen(t *testing.T) {
	client, requests, approvals := newApprovalFixture(t, "replace_equal_sum")
	ctx := context.Background()

	created, err := requests.CreateRequest(ctx, "user-staff", "Cameras", "", "",
		[]domain.ItemLine{
			{Name: "Camera", Quantity: 2, UnitPrice: dec(t, "100.00")},
			{Name: "Tripod", Quantity: 1, UnitPrice: dec(t, "50.00")},
		})
	require.NoError(t, err)

	step, err := approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionRejected, "")
	require.NoError(t, err)
	require.Equal(t, domain.StatusRejected, step.RequestStatus)

	// The replacement sums to the same 250.00, so no snapshot field changes
	// and the field-diffing guard alone would see nothing to object to. The
	// item rows must stay frozen regardless.
	_, err = requests.ReplaceItems(ctx, created.ID, domain.RoleStaff,
		[]domain.ItemLine{{Name: "Camera bundle", Quantity: 1, UnitPrice: dec(t, "250.00")}})
	require.ErrorIs(t, err, apperrors.ErrEditLocked)

	items, err := client.RequestItem.Query().
		Where(entrequestitem.RequestIDEQ(created.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestRequestWriter_ReplaceItems_NotFound(t *testing.T) {
	_, requests, _ := newApprovalFixture(t, "replace_missing")

	_, err := requests.ReplaceItems(context.Background(), "no-such-request", domain.RoleStaff,
		[]domain.ItemLine{{Name: "Chair", Quantity: 1, UnitPrice: dec(t, "90.00")}})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeRequestNotFound, appErr.Code)
}

func TestRequestWriter_DeleteRequest(t *testing.T) {
	client, requests, _ := newApprovalFixture(t, "delete_request")
	ctx := context.Background()

	created, err := requests.CreateRequest(ctx, "user-staff", "Desks", "", "",
		[]domain.ItemLine{{Name: "Desk", Quantity: 1, UnitPrice: dec(t, "420.00")}})
	require.NoError(t, err)

	// Another staff member may not withdraw someone else's request.
	err = requests.DeleteRequest(ctx, created.ID, "user-finance", domain.RoleStaff)
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, 403, appErr.HTTPStatus)

	require.NoError(t, requests.DeleteRequest(ctx, created.ID, "user-staff", domain.RoleStaff))

	_, err = client.PurchaseRequest.Get(ctx, created.ID)
	require.True(t, ent.IsNotFound(err))

	// Items go with the request.
	count, err := client.RequestItem.Query().
		Where(entrequestitem.RequestIDEQ(created.ID)).
		Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestRequestWriter_DeleteRequest_TerminalIsFrozen(t *testing.T) {
	_, requests, approvals := newApprovalFixture(t, "delete_terminal")
	ctx := context.Background()

	created, err := requests.CreateRequest(ctx, "user-staff", "Pens", "", "",
		[]domain.ItemLine{{Name: "Pen", Quantity: 10, UnitPrice: dec(t, "2.00")}})
	require.NoError(t, err)
	require.Equal(t, 1, created.RequiredLevels)

	step, err := approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionApproved, "")
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, step.RequestStatus)

	err = requests.DeleteRequest(ctx, created.ID, "user-staff", domain.RoleStaff)
	require.ErrorIs(t, err, apperrors.ErrEditLocked)

	// Not even admin: terminal requests stay for the record.
	err = requests.DeleteRequest(ctx, created.ID, "user-admin", domain.RoleAdmin)
	require.ErrorIs(t, err, apperrors.ErrEditLocked)
}

func TestRequestWriter_AttachArtifacts(t *testing.T) {
	client, requests, approvals := newApprovalFixture(t, "attach_artifacts")
	ctx := context.Background()

	created, err := requests.CreateRequest(ctx, "user-staff", "Projector", "", "",
		[]domain.ItemLine{{Name: "Projector", Quantity: 1, UnitPrice: dec(t, "480.00")}})
	require.NoError(t, err)

	// Attachment before approval is locked.
	_, err = requests.AttachArtifacts(ctx, created.ID, domain.RoleFinance, "PO-1001", "")
	require.ErrorIs(t, err, apperrors.ErrEditLocked)

	step, err := approvals.RecordStep(ctx, created.ID, "user-approver", domain.DecisionApproved, "")
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, step.RequestStatus)

	// Only finance may attach.
	_, err = requests.AttachArtifacts(ctx, created.ID, domain.RoleStaff, "PO-1001", "")
	require.ErrorIs(t, err, apperrors.ErrEditLocked)

	result, err := requests.AttachArtifacts(ctx, created.ID, domain.RoleFinance, "PO-1001", "")
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, result.Status)

	// Second call adds the receipt and keeps the purchase order.
	_, err = requests.AttachArtifacts(ctx, created.ID, domain.RoleFinance, "", "RCPT-77")
	require.NoError(t, err)

	stored, err := client.PurchaseRequest.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "PO-1001", stored.PurchaseOrder)
	require.Equal(t, "RCPT-77", stored.Receipt)
}

func TestRequestWriter_AttachArtifacts_RequiresInput(t *testing.T) {
	_, requests, _ := newApprovalFixture(t, "attach_empty")

	_, err := requests.AttachArtifacts(context.Background(), "whatever", domain.RoleFinance, "", "")
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, 400, appErr.HTTPStatus)
}
