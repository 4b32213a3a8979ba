// Package usecase contains the serialized write paths of the approval core.
//
// Every mutation of a purchase request — item changes, approval steps, step
// deletions, artifact attachment — runs in one pgx transaction that first
// locks the request row. Concurrent operations on different requests are
// fully independent; operations on the same request serialize on the row
// lock, so the second writer always observes the first's committed state.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"procureflow.io/procureflow/internal/domain"
	apperrors "procureflow.io/procureflow/internal/pkg/errors"
)

// PostgreSQL error codes surfaced as domain failures.
const (
	pgCodeLockNotAvailable = "55P03"
	pgCodeUniqueViolation  = "23505"
)

// requestRow is the locked snapshot of a purchase request inside a write
// transaction.
type requestRow struct {
	ID              string
	RequesterID     string
	Title           string
	Description     string
	Amount          decimal.Decimal
	Status          domain.Status
	RequiredLevels  int
	LastLevel       int
	ProformaInvoice string
	PurchaseOrder   string
	Receipt         string
}

// snapshot converts the row to an edit-guard snapshot.
func (r requestRow) snapshot() domain.Snapshot {
	return domain.Snapshot{
		Title:           r.Title,
		Description:     r.Description,
		Amount:          r.Amount,
		Status:          r.Status,
		RequiredLevels:  r.RequiredLevels,
		ProformaInvoice: r.ProformaInvoice,
		PurchaseOrder:   r.PurchaseOrder,
		Receipt:         r.Receipt,
	}
}

// lockRequest acquires the per-request row lock under the configured lock
// timeout and returns the current row. Lock expiry maps to the retryable
// Busy failure; a missing row maps to RequestNotFound.
func lockRequest(ctx context.Context, tx pgx.Tx, requestID string, lockTimeout time.Duration) (requestRow, error) {
	var row requestRow

	timeout := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", lockTimeout.Milliseconds())
	if _, err := tx.Exec(ctx, timeout); err != nil {
		return row, fmt.Errorf("set lock timeout: %w", err)
	}

	err := tx.QueryRow(ctx, `
		SELECT id, requester_id, title, COALESCE(description, ''), amount, status, required_levels, last_level,
		       COALESCE(proforma_invoice, ''), COALESCE(purchase_order, ''), COALESCE(receipt, '')
		FROM purchase_requests
		WHERE id = $1
		FOR UPDATE`, requestID).Scan(
		&row.ID, &row.RequesterID, &row.Title, &row.Description, &row.Amount,
		&row.Status, &row.RequiredLevels, &row.LastLevel,
		&row.ProformaInvoice, &row.PurchaseOrder, &row.Receipt,
	)
	if err != nil {
		return row, lockFailure(err, requestID)
	}
	return row, nil
}

// lockFailure maps row-lock errors to their domain failures: a missing row is
// RequestNotFound, lock_timeout expiry is the retryable Busy.
func lockFailure(err error, requestID string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.RequestNotFound(requestID)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgCodeLockNotAvailable {
		return apperrors.Busy(requestID)
	}
	return fmt.Errorf("lock purchase request %s: %w", requestID, err)
}

// stepInsertFailure maps a unique (request_id, level) violation to
// DuplicateLevel. The unique index backs the row lock as the last line of
// defense; anything else is a plain storage error.
func stepInsertFailure(err error, level int) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgCodeUniqueViolation {
		return apperrors.DuplicateLevel(level)
	}
	return fmt.Errorf("insert approval step: %w", err)
}

// loadPolicyTableTx reads the active policy bands inside the transaction so
// amount recompute and level re-resolution see one consistent policy set.
func loadPolicyTableTx(ctx context.Context, tx pgx.Tx, defaultLevels int) (*domain.PolicyTable, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, title, min_amount, max_amount, required_levels
		FROM approval_policies
		WHERE active
		ORDER BY min_amount ASC`)
	if err != nil {
		return nil, fmt.Errorf("query active policies: %w", err)
	}
	defer rows.Close()

	var bands []domain.PolicyBand
	for rows.Next() {
		var b domain.PolicyBand
		if err := rows.Scan(&b.ID, &b.Title, &b.MinAmount, &b.MaxAmount, &b.RequiredLevels); err != nil {
			return nil, fmt.Errorf("scan policy band: %w", err)
		}
		bands = append(bands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate policy bands: %w", err)
	}
	return domain.NewPolicyTable(bands, defaultLevels)
}

// stepDecisions loads the full decision set of a request. The resolver takes
// a set, so ordering is irrelevant; it is fixed here only for determinism of
// query plans.
func stepDecisions(ctx context.Context, tx pgx.Tx, requestID string) ([]domain.Decision, error) {
	rows, err := tx.Query(ctx,
		`SELECT decision FROM approval_steps WHERE request_id = $1 ORDER BY level`, requestID)
	if err != nil {
		return nil, fmt.Errorf("query step decisions: %w", err)
	}
	defer rows.Close()

	var decisions []domain.Decision
	for rows.Next() {
		var d domain.Decision
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan step decision: %w", err)
		}
		decisions = append(decisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate step decisions: %w", err)
	}
	return decisions, nil
}

// resolveAndStoreStatus recomputes the aggregate status from the full step
// set and persists it when it changed. Runs inside the caller's transaction;
// "status always reflects current steps" is enforced at every write path,
// never via hidden hooks.
func resolveAndStoreStatus(ctx context.Context, tx pgx.Tx, row requestRow) (domain.Status, error) {
	decisions, err := stepDecisions(ctx, tx, row.ID)
	if err != nil {
		return row.Status, err
	}
	resolved := domain.ResolveStatus(row.RequiredLevels, decisions)
	if resolved == row.Status {
		return resolved, nil
	}
	if _, err := tx.Exec(ctx,
		`UPDATE purchase_requests SET status = $2, updated_at = now() WHERE id = $1`,
		row.ID, resolved); err != nil {
		return row.Status, fmt.Errorf("update request status: %w", err)
	}
	return resolved, nil
}
