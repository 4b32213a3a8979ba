package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "procureflow.io/procureflow/internal/pkg/errors"
)

// ItemLine is one line of a purchase request's item ledger.
type ItemLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Total returns quantity * unit_price for the line. Derived, never stored.
func (l ItemLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Validate checks the line invariants: non-empty name, positive integer
// quantity, non-negative unit price.
func (l ItemLine) Validate() error {
	if l.Name == "" {
		return apperrors.BadRequest(apperrors.CodeItemInvalid, "item name is required")
	}
	if l.Quantity < 1 {
		return apperrors.BadRequest(apperrors.CodeItemInvalid,
			fmt.Sprintf("item %q quantity must be a positive integer", l.Name))
	}
	if l.UnitPrice.IsNegative() {
		return apperrors.BadRequest(apperrors.CodeItemInvalid,
			fmt.Sprintf("item %q unit price must not be negative", l.Name))
	}
	return nil
}

// TotalAmount sums qty*unit_price over the item set. An empty set yields
// exactly zero; a reader must never observe an item list whose sum disagrees
// with the request's stored amount, so callers persist the result in the same
// transaction as the item mutation.
func TotalAmount(items []ItemLine) decimal.Decimal {
	total := decimal.Decimal{}
	for _, l := range items {
		total = total.Add(l.Total())
	}
	return total
}

// ValidateItems validates every line of an item set.
func ValidateItems(items []ItemLine) error {
	for _, l := range items {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}
