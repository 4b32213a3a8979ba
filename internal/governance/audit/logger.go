// Package audit implements the audit logging service.
//
// Audit logs are append-only compliance records. Hard-delete is NOT allowed.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"procureflow.io/procureflow/ent"
	"procureflow.io/procureflow/internal/pkg/logger"
)

// Logger writes audit records to the database.
type Logger struct {
	client *ent.Client
}

// NewLogger creates a new audit Logger.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// LogAction records an auditable action.
func (l *Logger) LogAction(ctx context.Context, action, resourceType, resourceID, actor string, details map[string]interface{}) error {
	_, err := l.client.AuditLog.Create().
		SetID(generateAuditID()).
		SetAction(action).
		SetResourceType(resourceType).
		SetResourceID(resourceID).
		SetActor(actor).
		SetDetails(details).
		Save(ctx)
	if err != nil {
		logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// LogDecision records an approval decision on a purchase request.
func (l *Logger) LogDecision(ctx context.Context, requestID, decision, actor string, level int) error {
	return l.LogAction(ctx, "approval.decision", "purchase_request", requestID, actor, map[string]interface{}{
		"decision": decision,
		"level":    level,
	})
}

// LogStepDeletion records the administrative removal of an approval step.
func (l *Logger) LogStepDeletion(ctx context.Context, requestID, stepID, actor string, resultingStatus string) error {
	return l.LogAction(ctx, "approval.step_deleted", "purchase_request", requestID, actor, map[string]interface{}{
		"step_id":          stepID,
		"resulting_status": resultingStatus,
	})
}

// LogRequestMutation records a purchase request lifecycle change.
func (l *Logger) LogRequestMutation(ctx context.Context, operation, requestID, actor string) error {
	return l.LogAction(ctx, "request."+operation, "purchase_request", requestID, actor, nil)
}

// LogPolicyChange records an admin policy table edit.
func (l *Logger) LogPolicyChange(ctx context.Context, operation, policyID, actor string) error {
	return l.LogAction(ctx, "policy."+operation, "approval_policy", policyID, actor, nil)
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("audit-%s", id.String())
}
