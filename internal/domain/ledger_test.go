package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	apperrors "procureflow.io/procureflow/internal/pkg/errors"
)

func TestItemLine_Total(t *testing.T) {
	line := ItemLine{Name: "Laptop", Quantity: 3, UnitPrice: dec("1299.99")}
	require.True(t, dec("3899.97").Equal(line.Total()))
}

func TestTotalAmount(t *testing.T) {
	items := []ItemLine{
		{Name: "Laptop", Quantity: 2, UnitPrice: dec("1299.99")},
		{Name: "Mouse", Quantity: 5, UnitPrice: dec("19.90")},
	}
	require.True(t, dec("2699.48").Equal(TotalAmount(items)))
}

func TestTotalAmount_EmptySetIsZero(t *testing.T) {
	require.True(t, TotalAmount(nil).IsZero())
	require.True(t, TotalAmount([]ItemLine{}).IsZero())
}

func TestItemLine_Validate(t *testing.T) {
	valid := ItemLine{Name: "Desk", Quantity: 1, UnitPrice: dec("250.00")}
	require.NoError(t, valid.Validate())

	// Zero unit price is allowed: free items still occupy the ledger.
	free := ItemLine{Name: "Sample", Quantity: 1, UnitPrice: decimal.Zero}
	require.NoError(t, free.Validate())

	cases := []struct {
		name string
		line ItemLine
	}{
		{"empty name", ItemLine{Quantity: 1, UnitPrice: dec("1.00")}},
		{"zero quantity", ItemLine{Name: "Desk", Quantity: 0, UnitPrice: dec("1.00")}},
		{"negative quantity", ItemLine{Name: "Desk", Quantity: -2, UnitPrice: dec("1.00")}},
		{"negative price", ItemLine{Name: "Desk", Quantity: 1, UnitPrice: dec("-0.01")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.line.Validate()
			require.Error(t, err)
			appErr, ok := apperrors.IsAppError(err)
			require.True(t, ok)
			require.Equal(t, apperrors.CodeItemInvalid, appErr.Code)
		})
	}
}

func TestValidateItems_StopsAtFirstInvalid(t *testing.T) {
	items := []ItemLine{
		{Name: "Desk", Quantity: 1, UnitPrice: dec("250.00")},
		{Name: "", Quantity: 1, UnitPrice: dec("1.00")},
	}
	err := ValidateItems(items)
	require.Error(t, err)

	require.NoError(t, ValidateItems(nil))
}
