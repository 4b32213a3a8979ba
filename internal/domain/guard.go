package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "procureflow.io/procureflow/internal/pkg/errors"
)

// Role is the authenticated actor's role. Role gating on routes belongs to
// the API layer; the core consumes the role only inside CheckMutation.
type Role string

// Actor roles.
const (
	RoleStaff    Role = "staff"
	RoleApprover Role = "approver"
	RoleFinance  Role = "finance"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleStaff, RoleApprover, RoleFinance, RoleAdmin:
		return true
	}
	return false
}

// financeFields are the only request fields mutable after approval, and only
// by the finance role.
var financeFields = map[string]struct{}{
	"purchase_order": {},
	"receipt":        {},
}

// Snapshot is an immutable view of a purchase request's guarded fields,
// taken from the persisted row before a proposed write.
type Snapshot struct {
	Title           string
	Description     string
	Amount          decimal.Decimal
	Status          Status
	RequiredLevels  int
	ProformaInvoice string
	PurchaseOrder   string
	Receipt         string
}

// changedFields returns the names of fields that differ between old and new.
func changedFields(old, proposed Snapshot) []string {
	var changed []string
	if old.Title != proposed.Title {
		changed = append(changed, "title")
	}
	if old.Description != proposed.Description {
		changed = append(changed, "description")
	}
	if !old.Amount.Equal(proposed.Amount) {
		changed = append(changed, "amount")
	}
	if old.Status != proposed.Status {
		changed = append(changed, "status")
	}
	if old.RequiredLevels != proposed.RequiredLevels {
		changed = append(changed, "required_levels")
	}
	if old.ProformaInvoice != proposed.ProformaInvoice {
		changed = append(changed, "proforma_invoice")
	}
	if old.PurchaseOrder != proposed.PurchaseOrder {
		changed = append(changed, "purchase_order")
	}
	if old.Receipt != proposed.Receipt {
		changed = append(changed, "receipt")
	}
	return changed
}

// CheckMutation decides whether the proposed write is
// allowed for the given actor role. It is a pure field-by-field diff over
// two immutable snapshots, consulted by the persistence layer immediately
// before any write.
//
// Rules, in priority order:
//  1. REJECTED requests are frozen entirely.
//  2. APPROVED requests are frozen except purchase_order/receipt, and those
//     only for the finance role.
//  3. PENDING requests are mutable (item and step invariants are enforced by
//     the ledger and sequencer, not here).
func CheckMutation(old, proposed Snapshot, role Role) error {
	changed := changedFields(old, proposed)
	if len(changed) == 0 {
		return nil
	}

	switch old.Status {
	case StatusRejected:
		return apperrors.EditLocked("rejected requests are frozen")

	case StatusApproved:
		for _, f := range changed {
			if _, ok := financeFields[f]; !ok {
				return apperrors.EditLocked(fmt.Sprintf(
					"approved requests are frozen except for finance-attached artifacts (field %q)", f))
			}
		}
		if role != RoleFinance {
			return apperrors.EditLocked("only the finance role may attach artifacts to an approved request")
		}
		return nil

	default:
		return nil
	}
}
