// Package approval implements the purchase approval gateway.
//
// The gateway orchestrates the serialized write paths: it validates input,
// delegates the atomic mutation to the usecase writers, and hands the
// best-effort side effects (audit records, inbox notifications) to the
// general worker pool, outside the transaction.
package approval

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"procureflow.io/procureflow/ent"
	"procureflow.io/procureflow/internal/domain"
	"procureflow.io/procureflow/internal/governance/audit"
	"procureflow.io/procureflow/internal/notification"
	"procureflow.io/procureflow/internal/pkg/logger"
	"procureflow.io/procureflow/internal/pkg/worker"
	"procureflow.io/procureflow/internal/usecase"
)

// RequestLedger defines the atomic item-ledger operations.
type RequestLedger interface {
	CreateRequest(
		ctx context.Context,
		requesterID, title, description, proformaInvoice string,
		items []domain.ItemLine,
	) (usecase.RequestResult, error)
	ReplaceItems(ctx context.Context, requestID string, role domain.Role, items []domain.ItemLine) (usecase.RequestResult, error)
	DeleteRequest(ctx context.Context, requestID, actorID string, role domain.Role) error
	AttachArtifacts(ctx context.Context, requestID string, role domain.Role, purchaseOrder, receipt string) (usecase.RequestResult, error)
}

// StepRecorder defines the atomic approval-step operations.
type StepRecorder interface {
	RecordStep(ctx context.Context, requestID, approverID string, decision domain.Decision, comment string) (usecase.StepResult, error)
	DeleteStep(ctx context.Context, stepID string) (usecase.StepResult, error)
}

// Gateway orchestrates purchase request lifecycle operations.
type Gateway struct {
	client      *ent.Client
	auditLogger *audit.Logger
	ledger      RequestLedger
	recorder    StepRecorder
	notifier    *notification.Triggers // Optional: nil-safe
	pools       *worker.Pools          // Optional: side effects run inline without it
}

// NewGateway creates a new approval Gateway.
func NewGateway(client *ent.Client, auditLogger *audit.Logger, ledger RequestLedger, recorder StepRecorder) *Gateway {
	return &Gateway{
		client:      client,
		auditLogger: auditLogger,
		ledger:      ledger,
		recorder:    recorder,
	}
}

// SetNotifier configures the notification trigger service.
func (g *Gateway) SetNotifier(notifier *notification.Triggers) {
	g.notifier = notifier
}

// SetPools configures the worker pools for best-effort side effects.
func (g *Gateway) SetPools(pools *worker.Pools) {
	g.pools = pools
}

// dispatch runs a best-effort side effect (audit record, inbox notification)
// on the general worker pool, detached from the request context so it
// survives the originating HTTP request. Without pools, or when the pool
// refuses the task, the effect runs inline.
func (g *Gateway) dispatch(effect string, task func(ctx context.Context)) {
	if g.pools == nil {
		task(context.Background())
		return
	}
	if err := g.pools.SubmitDetached(g.pools.General, task); err != nil {
		logger.Warn("side effect ran inline: pool refused task",
			zap.String("effect", effect),
			zap.Error(err),
		)
		task(context.Background())
	}
}

// Submit creates a new purchase request and notifies approvers.
func (g *Gateway) Submit(
	ctx context.Context,
	requesterID, requesterName, title, description, proformaInvoice string,
	items []domain.ItemLine,
) (usecase.RequestResult, error) {
	if g.ledger == nil {
		return usecase.RequestResult{}, fmt.Errorf("request ledger is not configured")
	}

	result, err := g.ledger.CreateRequest(ctx, requesterID, title, description, proformaInvoice, items)
	if err != nil {
		return result, err
	}

	// Audit log and approver fan-out (best-effort, outside transaction).
	amount := result.Amount.StringFixed(2)
	requestID := result.ID
	g.dispatch("request_submitted", func(ctx context.Context) {
		if g.auditLogger != nil {
			_ = g.auditLogger.LogRequestMutation(ctx, "submitted", requestID, requesterID)
		}
		if g.notifier != nil {
			g.notifier.OnRequestSubmitted(ctx, requestID, requesterName, amount)
		}
	})

	logger.Info("Purchase request submitted",
		zap.String("request_id", result.ID),
		zap.String("requester", requesterID),
		zap.String("amount", result.Amount.String()),
		zap.Int("required_levels", result.RequiredLevels),
	)

	return result, nil
}

// Decide records an approval step. The level is assigned server-side; the
// resulting request status is recomputed in the same transaction. Terminal
// transitions notify the requester.
func (g *Gateway) Decide(
	ctx context.Context,
	requestID, approverID string,
	decision domain.Decision,
	comment string,
) (usecase.StepResult, error) {
	if g.recorder == nil {
		return usecase.StepResult{}, fmt.Errorf("step recorder is not configured")
	}

	result, err := g.recorder.RecordStep(ctx, requestID, approverID, decision, comment)
	if err != nil {
		return result, err
	}

	g.dispatch("decision_recorded", func(ctx context.Context) {
		if g.auditLogger != nil {
			_ = g.auditLogger.LogDecision(ctx, requestID, string(result.Decision), approverID, result.Level)
		}
		if g.notifier != nil && result.RequestStatus.Terminal() {
			g.notifyDecision(ctx, result, approverID, comment)
		}
	})

	logger.Info("Approval step recorded",
		zap.String("request_id", requestID),
		zap.String("approver", approverID),
		zap.Int("level", result.Level),
		zap.String("decision", string(result.Decision)),
		zap.String("request_status", string(result.RequestStatus)),
	)

	return result, nil
}

// RemoveStep deletes an approval step as an administrative correction and
// recomputes the request status from the remaining set.
func (g *Gateway) RemoveStep(ctx context.Context, stepID, actorID string) (usecase.StepResult, error) {
	if g.recorder == nil {
		return usecase.StepResult{}, fmt.Errorf("step recorder is not configured")
	}

	result, err := g.recorder.DeleteStep(ctx, stepID)
	if err != nil {
		return result, err
	}

	g.dispatch("step_removed", func(ctx context.Context) {
		if g.auditLogger != nil {
			_ = g.auditLogger.LogStepDeletion(ctx, result.RequestID, stepID, actorID, string(result.RequestStatus))
		}
	})

	logger.Info("Approval step removed",
		zap.String("request_id", result.RequestID),
		zap.String("step_id", stepID),
		zap.String("actor", actorID),
		zap.String("request_status", string(result.RequestStatus)),
	)

	return result, nil
}

// UpdateItems replaces the item set of a request, recomputing amount and,
// while no step exists yet, the required level count.
func (g *Gateway) UpdateItems(
	ctx context.Context,
	requestID, actorID string,
	role domain.Role,
	items []domain.ItemLine,
) (usecase.RequestResult, error) {
	if g.ledger == nil {
		return usecase.RequestResult{}, fmt.Errorf("request ledger is not configured")
	}

	result, err := g.ledger.ReplaceItems(ctx, requestID, role, items)
	if err != nil {
		return result, err
	}

	g.dispatch("items_updated", func(ctx context.Context) {
		if g.auditLogger != nil {
			_ = g.auditLogger.LogRequestMutation(ctx, "items_updated", requestID, actorID)
		}
	})

	logger.Info("Purchase request items updated",
		zap.String("request_id", requestID),
		zap.String("actor", actorID),
		zap.String("amount", result.Amount.String()),
	)

	return result, nil
}

// Withdraw deletes a pending request on behalf of its requester.
func (g *Gateway) Withdraw(ctx context.Context, requestID, actorID string, role domain.Role) error {
	if g.ledger == nil {
		return fmt.Errorf("request ledger is not configured")
	}

	if err := g.ledger.DeleteRequest(ctx, requestID, actorID, role); err != nil {
		return err
	}

	g.dispatch("request_withdrawn", func(ctx context.Context) {
		if g.auditLogger != nil {
			_ = g.auditLogger.LogRequestMutation(ctx, "withdrawn", requestID, actorID)
		}
	})

	logger.Info("Purchase request withdrawn",
		zap.String("request_id", requestID),
		zap.String("actor", actorID),
	)

	return nil
}

// Attach sets finance artifacts on an approved request and notifies the
// requester.
func (g *Gateway) Attach(
	ctx context.Context,
	requestID, actorID string,
	role domain.Role,
	purchaseOrder, receipt string,
) (usecase.RequestResult, error) {
	if g.ledger == nil {
		return usecase.RequestResult{}, fmt.Errorf("request ledger is not configured")
	}

	result, err := g.ledger.AttachArtifacts(ctx, requestID, role, purchaseOrder, receipt)
	if err != nil {
		return result, err
	}

	artifact := "purchase order"
	if purchaseOrder == "" {
		artifact = "receipt"
	}
	g.dispatch("artifact_attached", func(ctx context.Context) {
		if g.auditLogger != nil {
			_ = g.auditLogger.LogRequestMutation(ctx, "artifact_attached", requestID, actorID)
		}
		if g.notifier == nil {
			return
		}
		if requesterID := g.requesterOf(ctx, requestID); requesterID != "" {
			g.notifier.OnArtifactAttached(ctx, requestID, requesterID, artifact)
		}
	})

	logger.Info("Procurement artifact attached",
		zap.String("request_id", requestID),
		zap.String("actor", actorID),
	)

	return result, nil
}

// notifyDecision sends the terminal-decision notification to the requester.
func (g *Gateway) notifyDecision(ctx context.Context, result usecase.StepResult, approverID, comment string) {
	requesterID := g.requesterOf(ctx, result.RequestID)
	if requesterID == "" {
		return
	}
	switch result.RequestStatus {
	case domain.StatusApproved:
		g.notifier.OnRequestApproved(ctx, result.RequestID, requesterID, approverID)
	case domain.StatusRejected:
		g.notifier.OnRequestRejected(ctx, result.RequestID, requesterID, approverID, comment)
	}
}

// requesterOf resolves the requester of a request for notification routing.
// Lookup failures are logged and swallowed; notifications are best-effort.
func (g *Gateway) requesterOf(ctx context.Context, requestID string) string {
	if g.client == nil {
		return ""
	}
	req, err := g.client.PurchaseRequest.Get(ctx, requestID)
	if err != nil {
		logger.Error("failed to resolve requester for notification",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return ""
	}
	return req.RequesterID
}
