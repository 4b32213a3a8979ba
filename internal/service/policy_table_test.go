package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	apperrors "procureflow.io/procureflow/internal/pkg/errors"
	"procureflow.io/procureflow/internal/testutil"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestNewPolicyService_RejectsBadDefault(t *testing.T) {
	t.Parallel()

	_, err := NewPolicyService(nil, 0)
	require.ErrorIs(t, err, apperrors.ErrPolicyMismatch)

	svc, err := NewPolicyService(nil, 3)
	require.NoError(t, err)
	require.Equal(t, 3, svc.DefaultLevels())
}

func TestValidatePolicyInput(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidatePolicyInput(dec(t, "0.00"), dec(t, "500.00"), 1))
	// Point bands (min == max) are allowed.
	require.NoError(t, ValidatePolicyInput(dec(t, "100.00"), dec(t, "100.00"), 2))

	err := ValidatePolicyInput(dec(t, "-1.00"), dec(t, "500.00"), 1)
	require.Error(t, err)

	err = ValidatePolicyInput(dec(t, "500.00"), dec(t, "100.00"), 1)
	require.Error(t, err)

	err = ValidatePolicyInput(dec(t, "0.00"), dec(t, "500.00"), 0)
	require.Error(t, err)

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodePolicyInvalid, appErr.Code)
}

func TestPolicyService_LoadTable(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "policy_load_table")
	ctx := context.Background()

	seed := []struct {
		id       string
		min, max string
		levels   int
		active   bool
	}{
		{"p-small", "0.01", "500.00", 1, true},
		{"p-medium", "500.01", "5000.00", 2, true},
		{"p-retired", "0.01", "999999.99", 9, false},
	}
	for _, p := range seed {
		_, err := client.ApprovalPolicy.Create().
			SetID(p.id).
			SetTitle(p.id).
			SetMinAmount(dec(t, p.min)).
			SetMaxAmount(dec(t, p.max)).
			SetRequiredLevels(p.levels).
			SetActive(p.active).
			SetCreatedBy("fixture").
			Save(ctx)
		require.NoError(t, err)
	}

	svc, err := NewPolicyService(client, 4)
	require.NoError(t, err)

	table, err := svc.LoadTable(ctx)
	require.NoError(t, err)

	// Inactive bands are excluded from the snapshot.
	require.Len(t, table.Bands(), 2)
	require.Equal(t, 1, table.ResolveLevels(dec(t, "250.00")))
	require.Equal(t, 2, table.ResolveLevels(dec(t, "1200.00")))

	// Nothing matches above the active bands: the default applies, not the
	// retired catch-all.
	require.Equal(t, 4, table.ResolveLevels(dec(t, "10000.00")))
}
