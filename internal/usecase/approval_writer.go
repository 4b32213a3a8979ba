package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"procureflow.io/procureflow/internal/domain"
	apperrors "procureflow.io/procureflow/internal/pkg/errors"
)

// StepResult reports a recorded or removed approval step together with the
// request status that resulted from it.
type StepResult struct {
	StepID        string
	RequestID     string
	Level         int
	Decision      domain.Decision
	RequestStatus domain.Status
}

// ApprovalWriter records and removes approval steps. Each operation locks
// the parent request row first, so level assignment and the status
// recompute are serialized per request.
type ApprovalWriter struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

// NewApprovalWriter creates an ApprovalWriter.
func NewApprovalWriter(pool *pgxpool.Pool, lockTimeout time.Duration) *ApprovalWriter {
	return &ApprovalWriter{pool: pool, lockTimeout: lockTimeout}
}

// RecordStep appends a decision at the next level and recomputes the
// request status in the same transaction.
//
// Levels are assigned server-side from a per-request high-water mark, never
// taken from the caller. The mark is monotone: it survives administrative
// step deletion, so a freed level is never reassigned. A step beyond
// required_levels fails with LevelOverflow; a decision on a terminal
// request fails with EditLocked. The unique (request_id, level) index backs
// the row lock as the last line of defense: a violation surfaces as
// DuplicateLevel instead of a silent double-write.
func (w *ApprovalWriter) RecordStep(
	ctx context.Context,
	requestID, approverID string,
	decision domain.Decision,
	comment string,
) (StepResult, error) {
	var result StepResult
	if w.pool == nil {
		return result, fmt.Errorf("approval writer is not initialized")
	}
	if !decision.Valid() {
		return result, apperrors.BadRequest(apperrors.CodeValidationFailed, "decision must be APPROVED or REJECTED")
	}
	if approverID == "" {
		return result, apperrors.BadRequest(apperrors.CodeValidationFailed, "approver is required")
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("begin record step tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row, err := lockRequest(ctx, tx, requestID, w.lockTimeout)
	if err != nil {
		return result, err
	}
	if row.Status.Terminal() {
		return result, apperrors.EditLocked("request has reached a terminal status")
	}

	levels, err := stepLevels(ctx, tx, requestID)
	if err != nil {
		return result, err
	}
	// The persisted mark wins over the surviving rows: after a step deletion
	// the set alone would hand the freed level out again.
	level := domain.NextLevel(levels)
	if next := row.LastLevel + 1; next > level {
		level = next
	}
	if level > row.RequiredLevels {
		return result, apperrors.LevelOverflow(row.RequiredLevels)
	}

	stepID, err := newID()
	if err != nil {
		return result, err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO approval_steps (id, request_id, approver_id, level, decision, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), now())`,
		stepID, requestID, approverID, level, decision, comment,
	); err != nil {
		return result, stepInsertFailure(err, level)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE purchase_requests SET last_level = $2, updated_at = now() WHERE id = $1`,
		requestID, level,
	); err != nil {
		return result, fmt.Errorf("advance level mark: %w", err)
	}

	status, err := resolveAndStoreStatus(ctx, tx, row)
	if err != nil {
		return result, err
	}

	if err := tx.Commit(ctx); err != nil {
		return result, fmt.Errorf("commit record step tx: %w", err)
	}

	return StepResult{
		StepID:        stepID,
		RequestID:     requestID,
		Level:         level,
		Decision:      decision,
		RequestStatus: status,
	}, nil
}

// DeleteStep removes an approval step and recomputes the request status from
// the remaining set. This is an administrative correction: it bypasses the
// edit guard, so removing the rejecting step of a REJECTED request returns
// the request to whatever the remaining decisions resolve to. The level mark
// is left untouched, so the freed level stays burned.
func (w *ApprovalWriter) DeleteStep(ctx context.Context, stepID string) (StepResult, error) {
	var result StepResult
	if w.pool == nil {
		return result, fmt.Errorf("approval writer is not initialized")
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("begin delete step tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var requestID string
	err = tx.QueryRow(ctx,
		`SELECT request_id FROM approval_steps WHERE id = $1`, stepID).Scan(&requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result, apperrors.NotFound(apperrors.CodeStepNotFound, "approval step not found")
		}
		return result, fmt.Errorf("find approval step %s: %w", stepID, err)
	}

	// Lock the parent before touching the step so concurrent decisions on
	// the same request serialize with the deletion.
	row, err := lockRequest(ctx, tx, requestID, w.lockTimeout)
	if err != nil {
		return result, err
	}

	var level int
	var decision domain.Decision
	err = tx.QueryRow(ctx,
		`DELETE FROM approval_steps WHERE id = $1 RETURNING level, decision`, stepID).Scan(&level, &decision)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result, apperrors.NotFound(apperrors.CodeStepNotFound, "approval step not found")
		}
		return result, fmt.Errorf("delete approval step %s: %w", stepID, err)
	}

	status, err := resolveAndStoreStatus(ctx, tx, row)
	if err != nil {
		return result, err
	}

	if err := tx.Commit(ctx); err != nil {
		return result, fmt.Errorf("commit delete step tx: %w", err)
	}

	return StepResult{
		StepID:        stepID,
		RequestID:     requestID,
		Level:         level,
		Decision:      decision,
		RequestStatus: status,
	}, nil
}

// stepLevels loads the occupied levels of a request.
func stepLevels(ctx context.Context, tx pgx.Tx, requestID string) ([]int, error) {
	rows, err := tx.Query(ctx,
		`SELECT level FROM approval_steps WHERE request_id = $1 ORDER BY level`, requestID)
	if err != nil {
		return nil, fmt.Errorf("query step levels: %w", err)
	}
	defer rows.Close()

	var levels []int
	for rows.Next() {
		var l int
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("scan step level: %w", err)
		}
		levels = append(levels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate step levels: %w", err)
	}
	return levels, nil
}
