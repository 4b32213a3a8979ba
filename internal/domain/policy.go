package domain

import (
	"sort"

	"github.com/shopspring/decimal"

	apperrors "procureflow.io/procureflow/internal/pkg/errors"
)

// PolicyBand is one amount range in the policy table.
// Invariant: MinAmount <= MaxAmount, RequiredLevels >= 1.
type PolicyBand struct {
	ID             string
	Title          string
	MinAmount      decimal.Decimal
	MaxAmount      decimal.Decimal
	RequiredLevels int
}

// Contains reports whether amount falls inside the band (inclusive bounds).
func (b PolicyBand) Contains(amount decimal.Decimal) bool {
	return b.MinAmount.LessThanOrEqual(amount) && amount.LessThanOrEqual(b.MaxAmount)
}

// PolicyTable resolves a request amount to its required approval-level count.
// It is an immutable snapshot of the active policies at load time; requests
// resolved against an older snapshot are not retroactively re-sized.
type PolicyTable struct {
	bands         []PolicyBand
	defaultLevels int
}

// NewPolicyTable builds a table from active bands and the configured
// fallback. Bands are ordered by ascending MinAmount; overlapping ranges are
// accepted without error and resolve first-match-wins, keeping resolution
// O(n) and side-effect-free. A fallback below 1 is a configuration error
// (PolicyMismatch), surfaced at startup rather than per request.
func NewPolicyTable(bands []PolicyBand, defaultLevels int) (*PolicyTable, error) {
	if defaultLevels < 1 {
		return nil, apperrors.ErrPolicyMismatch
	}
	sorted := make([]PolicyBand, len(bands))
	copy(sorted, bands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinAmount.LessThan(sorted[j].MinAmount)
	})
	return &PolicyTable{bands: sorted, defaultLevels: defaultLevels}, nil
}

// ResolveLevels returns the required approval levels for amount: the
// required_levels of the first (lowest min_amount) band containing it, or the
// default when no band matches. A zero amount means no policy evaluation was
// performed and yields the default.
func (t *PolicyTable) ResolveLevels(amount decimal.Decimal) int {
	if amount.IsZero() {
		return t.defaultLevels
	}
	for _, b := range t.bands {
		if b.Contains(amount) {
			return b.RequiredLevels
		}
	}
	return t.defaultLevels
}

// DefaultLevels returns the configured fallback level count.
func (t *PolicyTable) DefaultLevels() int {
	return t.defaultLevels
}

// Bands returns the snapshot's bands in resolution order.
func (t *PolicyTable) Bands() []PolicyBand {
	return t.bands
}
