// Package service provides domain services that bridge the pure approval
// core and the Ent-backed store.
package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"procureflow.io/procureflow/ent"
	"procureflow.io/procureflow/ent/approvalpolicy"
	"procureflow.io/procureflow/internal/domain"
	apperrors "procureflow.io/procureflow/internal/pkg/errors"
)

// PolicyService loads policy-table snapshots and validates admin edits.
type PolicyService struct {
	client        *ent.Client
	defaultLevels int
}

// NewPolicyService creates a PolicyService. defaultLevels is the configured
// fallback used when no active policy matches; values below 1 are rejected
// at construction (startup) rather than per request.
func NewPolicyService(client *ent.Client, defaultLevels int) (*PolicyService, error) {
	if defaultLevels < 1 {
		return nil, apperrors.ErrPolicyMismatch
	}
	return &PolicyService{client: client, defaultLevels: defaultLevels}, nil
}

// LoadTable reads the active policies ordered by min_amount ascending and
// returns an immutable resolution snapshot.
func (s *PolicyService) LoadTable(ctx context.Context) (*domain.PolicyTable, error) {
	rows, err := s.client.ApprovalPolicy.Query().
		Where(approvalpolicy.ActiveEQ(true)).
		Order(ent.Asc(approvalpolicy.FieldMinAmount)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active approval policies: %w", err)
	}

	bands := make([]domain.PolicyBand, 0, len(rows))
	for _, p := range rows {
		bands = append(bands, domain.PolicyBand{
			ID:             p.ID,
			Title:          p.Title,
			MinAmount:      p.MinAmount,
			MaxAmount:      p.MaxAmount,
			RequiredLevels: p.RequiredLevels,
		})
	}
	return domain.NewPolicyTable(bands, s.defaultLevels)
}

// DefaultLevels returns the configured fallback level count.
func (s *PolicyService) DefaultLevels() int {
	return s.defaultLevels
}

// ValidatePolicyInput checks admin-supplied policy bounds before a write:
// min_amount <= max_amount, required_levels >= 1, both amounts non-negative.
// Overlap with existing policies is accepted by design — resolution is
// first-match-wins over min_amount order.
func ValidatePolicyInput(minAmount, maxAmount decimal.Decimal, requiredLevels int) error {
	if minAmount.IsNegative() || maxAmount.IsNegative() {
		return apperrors.BadRequest(apperrors.CodePolicyInvalid, "policy amounts must not be negative")
	}
	if minAmount.GreaterThan(maxAmount) {
		return apperrors.BadRequest(apperrors.CodePolicyInvalid, "minimum amount cannot be greater than maximum amount")
	}
	if requiredLevels < 1 {
		return apperrors.BadRequest(apperrors.CodePolicyInvalid, "required approval levels must be at least 1")
	}
	return nil
}
