package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"procureflow.io/procureflow/internal/domain"
	apperrors "procureflow.io/procureflow/internal/pkg/errors"
)

// RequestResult reports the derived state of a request after a ledger write.
type RequestResult struct {
	ID             string
	Amount         decimal.Decimal
	RequiredLevels int
	Status         domain.Status
}

// RequestWriter executes item-ledger mutations atomically: the item change,
// the amount recompute, and the required-level re-resolution commit together,
// so a reader never observes an item list whose sum disagrees with amount.
type RequestWriter struct {
	pool          *pgxpool.Pool
	lockTimeout   time.Duration
	defaultLevels int
}

// NewRequestWriter creates a RequestWriter.
func NewRequestWriter(pool *pgxpool.Pool, lockTimeout time.Duration, defaultLevels int) *RequestWriter {
	return &RequestWriter{
		pool:          pool,
		lockTimeout:   lockTimeout,
		defaultLevels: defaultLevels,
	}
}

// CreateRequest inserts a new PENDING request with its initial item set.
// amount and required_levels are computed inside the same transaction.
func (w *RequestWriter) CreateRequest(
	ctx context.Context,
	requesterID, title, description, proformaInvoice string,
	items []domain.ItemLine,
) (RequestResult, error) {
	var result RequestResult
	if w.pool == nil {
		return result, fmt.Errorf("request writer is not initialized")
	}
	if requesterID == "" || title == "" {
		return result, apperrors.BadRequest(apperrors.CodeValidationFailed, "requester and title are required")
	}
	if err := domain.ValidateItems(items); err != nil {
		return result, err
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("begin create request tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	table, err := loadPolicyTableTx(ctx, tx, w.defaultLevels)
	if err != nil {
		return result, err
	}

	amount := domain.TotalAmount(items)
	levels := table.ResolveLevels(amount)

	requestID, err := newID()
	if err != nil {
		return result, err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO purchase_requests
			(id, requester_id, title, description, amount, status, required_levels, proforma_invoice, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), now(), now())`,
		requestID, requesterID, title, description, amount, domain.StatusPending, levels, proformaInvoice,
	); err != nil {
		return result, fmt.Errorf("insert purchase request: %w", err)
	}

	if err := insertItems(ctx, tx, requestID, items); err != nil {
		return result, err
	}

	if err := tx.Commit(ctx); err != nil {
		return result, fmt.Errorf("commit create request tx: %w", err)
	}

	return RequestResult{
		ID:             requestID,
		Amount:         amount,
		RequiredLevels: levels,
		Status:         domain.StatusPending,
	}, nil
}

// ReplaceItems swaps the full item set of a request, recomputing amount and
// required_levels in the same transaction. Terminal requests reject the
// mutation with EditLocked before any row is touched; the item set is not a
// snapshot field, so the field-diffing edit guard alone would wave through a
// replacement that happens to sum to the same amount.
//
// required_levels freezes once the first approval step exists: later item
// edits still recompute amount but leave the level count untouched, so a
// re-pricing can never silently shrink an in-flight approval chain.
func (w *RequestWriter) ReplaceItems(
	ctx context.Context,
	requestID string,
	role domain.Role,
	items []domain.ItemLine,
) (RequestResult, error) {
	var result RequestResult
	if w.pool == nil {
		return result, fmt.Errorf("request writer is not initialized")
	}
	if err := domain.ValidateItems(items); err != nil {
		return result, err
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("begin replace items tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row, err := lockRequest(ctx, tx, requestID, w.lockTimeout)
	if err != nil {
		return result, err
	}
	if row.Status.Terminal() {
		return result, apperrors.EditLocked("terminal requests are frozen")
	}

	table, err := loadPolicyTableTx(ctx, tx, w.defaultLevels)
	if err != nil {
		return result, err
	}

	amount := domain.TotalAmount(items)

	// The chain re-sizes only while no step has ever been recorded; the
	// level mark survives corrections, so a re-pricing cannot resize a
	// chain that has been decided on.
	levels := row.RequiredLevels
	if row.LastLevel == 0 {
		levels = table.ResolveLevels(amount)
	}

	proposed := row.snapshot()
	proposed.Amount = amount
	proposed.RequiredLevels = levels
	if err := domain.CheckMutation(row.snapshot(), proposed, role); err != nil {
		return result, err
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM request_items WHERE request_id = $1`, requestID); err != nil {
		return result, fmt.Errorf("delete request items: %w", err)
	}
	if err := insertItems(ctx, tx, requestID, items); err != nil {
		return result, err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE purchase_requests
		SET amount = $2, required_levels = $3, updated_at = now()
		WHERE id = $1`,
		requestID, amount, levels,
	); err != nil {
		return result, fmt.Errorf("update request amount: %w", err)
	}

	status, err := resolveAndStoreStatus(ctx, tx, requestRow{
		ID:             requestID,
		Status:         row.Status,
		RequiredLevels: levels,
	})
	if err != nil {
		return result, err
	}

	if err := tx.Commit(ctx); err != nil {
		return result, fmt.Errorf("commit replace items tx: %w", err)
	}

	return RequestResult{
		ID:             requestID,
		Amount:         amount,
		RequiredLevels: levels,
		Status:         status,
	}, nil
}

// DeleteRequest removes a PENDING request and, via cascade, its items and
// steps. Terminal requests are frozen.
func (w *RequestWriter) DeleteRequest(ctx context.Context, requestID, actorID string, role domain.Role) error {
	if w.pool == nil {
		return fmt.Errorf("request writer is not initialized")
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete request tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row, err := lockRequest(ctx, tx, requestID, w.lockTimeout)
	if err != nil {
		return err
	}
	if row.Status.Terminal() {
		return apperrors.EditLocked("terminal requests cannot be deleted")
	}
	if role != domain.RoleAdmin && row.RequesterID != actorID {
		return apperrors.Forbidden(apperrors.CodeValidationFailed, "only the requester may delete a pending request")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM purchase_requests WHERE id = $1`, requestID); err != nil {
		return fmt.Errorf("delete purchase request: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete request tx: %w", err)
	}
	return nil
}

// AttachArtifacts sets the finance-owned artifact references on an APPROVED
// request. Empty arguments leave the corresponding field unchanged. The edit
// guard enforces that only purchase_order/receipt change and only for the
// finance role.
func (w *RequestWriter) AttachArtifacts(
	ctx context.Context,
	requestID string,
	role domain.Role,
	purchaseOrder, receipt string,
) (RequestResult, error) {
	var result RequestResult
	if w.pool == nil {
		return result, fmt.Errorf("request writer is not initialized")
	}
	if purchaseOrder == "" && receipt == "" {
		return result, apperrors.BadRequest(apperrors.CodeValidationFailed, "no artifact supplied")
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("begin attach artifacts tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row, err := lockRequest(ctx, tx, requestID, w.lockTimeout)
	if err != nil {
		return result, err
	}
	if row.Status != domain.StatusApproved {
		return result, apperrors.EditLocked("artifacts may only be attached to approved requests")
	}

	proposed := row.snapshot()
	if purchaseOrder != "" {
		proposed.PurchaseOrder = purchaseOrder
	}
	if receipt != "" {
		proposed.Receipt = receipt
	}
	if err := domain.CheckMutation(row.snapshot(), proposed, role); err != nil {
		return result, err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE purchase_requests
		SET purchase_order = NULLIF($2, ''), receipt = NULLIF($3, ''), updated_at = now()
		WHERE id = $1`,
		requestID, proposed.PurchaseOrder, proposed.Receipt,
	); err != nil {
		return result, fmt.Errorf("update request artifacts: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return result, fmt.Errorf("commit attach artifacts tx: %w", err)
	}

	return RequestResult{
		ID:             requestID,
		Amount:         row.Amount,
		RequiredLevels: row.RequiredLevels,
		Status:         row.Status,
	}, nil
}

func insertItems(ctx context.Context, tx pgx.Tx, requestID string, items []domain.ItemLine) error {
	for _, item := range items {
		itemID, err := newID()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO request_items (id, request_id, name, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)`,
			itemID, requestID, item.Name, item.Quantity, item.UnitPrice,
		); err != nil {
			return fmt.Errorf("insert request item %q: %w", item.Name, err)
		}
	}
	return nil
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}
