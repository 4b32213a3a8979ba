package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	apperrors "procureflow.io/procureflow/internal/pkg/errors"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testBands() []PolicyBand {
	return []PolicyBand{
		{ID: "p-large", Title: "Large", MinAmount: dec("5000.01"), MaxAmount: dec("999999.99"), RequiredLevels: 3},
		{ID: "p-small", Title: "Small", MinAmount: dec("0.01"), MaxAmount: dec("500.00"), RequiredLevels: 1},
		{ID: "p-medium", Title: "Medium", MinAmount: dec("500.01"), MaxAmount: dec("5000.00"), RequiredLevels: 2},
	}
}

func TestPolicyTable_ResolvesMatchingBand(t *testing.T) {
	table, err := NewPolicyTable(testBands(), 2)
	require.NoError(t, err)

	require.Equal(t, 1, table.ResolveLevels(dec("100.00")))
	require.Equal(t, 2, table.ResolveLevels(dec("500.01")))
	require.Equal(t, 3, table.ResolveLevels(dec("7500.00")))
}

func TestPolicyTable_BoundsAreInclusive(t *testing.T) {
	table, err := NewPolicyTable(testBands(), 2)
	require.NoError(t, err)

	require.Equal(t, 1, table.ResolveLevels(dec("0.01")))
	require.Equal(t, 1, table.ResolveLevels(dec("500.00")))
	require.Equal(t, 3, table.ResolveLevels(dec("999999.99")))
}

func TestPolicyTable_NoMatchFallsBackToDefault(t *testing.T) {
	table, err := NewPolicyTable(testBands(), 4)
	require.NoError(t, err)

	// Above every band.
	require.Equal(t, 4, table.ResolveLevels(dec("1000000.00")))
}

func TestPolicyTable_ZeroAmountUsesDefault(t *testing.T) {
	// An empty item ledger sums to zero; zero means no policy evaluation.
	bands := []PolicyBand{
		{ID: "p-zero", MinAmount: dec("0.00"), MaxAmount: dec("100.00"), RequiredLevels: 5},
	}
	table, err := NewPolicyTable(bands, 2)
	require.NoError(t, err)

	require.Equal(t, 2, table.ResolveLevels(decimal.Zero))
}

func TestPolicyTable_OverlapFirstMatchWins(t *testing.T) {
	bands := []PolicyBand{
		{ID: "p-wide", MinAmount: dec("0.01"), MaxAmount: dec("10000.00"), RequiredLevels: 9},
		{ID: "p-narrow", MinAmount: dec("0.01"), MaxAmount: dec("100.00"), RequiredLevels: 1},
	}
	table, err := NewPolicyTable(bands, 2)
	require.NoError(t, err)

	// Both bands contain 50.00 with equal min_amount; the stable sort keeps
	// input order, so the first declared band wins deterministically.
	require.Equal(t, 9, table.ResolveLevels(dec("50.00")))

	// With distinct min_amounts the lower band is consulted first.
	bands[1].MinAmount = dec("0.00")
	table, err = NewPolicyTable(bands, 2)
	require.NoError(t, err)
	require.Equal(t, 1, table.ResolveLevels(dec("50.00")))
}

func TestNewPolicyTable_RejectsBadDefault(t *testing.T) {
	_, err := NewPolicyTable(testBands(), 0)
	require.ErrorIs(t, err, apperrors.ErrPolicyMismatch)

	_, err = NewPolicyTable(nil, -1)
	require.ErrorIs(t, err, apperrors.ErrPolicyMismatch)
}

func TestNewPolicyTable_EmptyBandsResolveToDefault(t *testing.T) {
	table, err := NewPolicyTable(nil, 3)
	require.NoError(t, err)
	require.Equal(t, 3, table.ResolveLevels(dec("42.00")))
	require.Equal(t, 3, table.DefaultLevels())
	require.Empty(t, table.Bands())
}

func TestNewPolicyTable_SortsBandsByMinAmount(t *testing.T) {
	table, err := NewPolicyTable(testBands(), 2)
	require.NoError(t, err)

	bands := table.Bands()
	require.Len(t, bands, 3)
	require.Equal(t, "p-small", bands[0].ID)
	require.Equal(t, "p-medium", bands[1].ID)
	require.Equal(t, "p-large", bands[2].ID)
}
