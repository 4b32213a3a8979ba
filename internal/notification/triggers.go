package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"procureflow.io/procureflow/ent"
	"procureflow.io/procureflow/ent/user"
	"procureflow.io/procureflow/internal/pkg/logger"
)

// Triggers encapsulates notification trigger logic for the purchase approval
// lifecycle. Three trigger points:
//  1. DECISION_PENDING — notify approvers when a request is submitted
//  2. REQUEST_APPROVED / REQUEST_REJECTED — notify the requester on the
//     terminal decision
//  3. ARTIFACT_ATTACHED — notify the requester when finance attaches a
//     purchase order or receipt
type Triggers struct {
	sender Sender
	client *ent.Client
}

// NewTriggers creates a new notification trigger service.
func NewTriggers(sender Sender, client *ent.Client) *Triggers {
	return &Triggers{sender: sender, client: client}
}

// OnRequestSubmitted fires when a purchase request is created and needs
// approval. Notifies all enabled users with the approver role.
func (t *Triggers) OnRequestSubmitted(ctx context.Context, requestID, requesterName, amount string) {
	approverIDs, err := t.findApproverUserIDs(ctx)
	if err != nil {
		logger.Error("failed to find approvers for notification",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return
	}

	if len(approverIDs) == 0 {
		logger.Warn("no approvers found for notification", zap.String("request_id", requestID))
		return
	}

	params := Params{
		Type:         TypeDecisionPending,
		Title:        "New purchase request pending approval",
		Message:      fmt.Sprintf("%s submitted a purchase request for %s", requesterName, amount),
		ResourceType: "purchase_request",
		ResourceID:   requestID,
	}

	if err := t.sender.SendToMany(ctx, approverIDs, params); err != nil {
		logger.Error("failed to send DECISION_PENDING notifications",
			zap.String("request_id", requestID),
			zap.Int("approver_count", len(approverIDs)),
			zap.Error(err),
		)
	}
}

// OnRequestApproved fires when the final required approval lands.
// Notifies the requester that their request reached APPROVED.
func (t *Triggers) OnRequestApproved(ctx context.Context, requestID, requesterID, approver string) {
	params := Params{
		RecipientID:  requesterID,
		Type:         TypeRequestApproved,
		Title:        "Your purchase request has been approved",
		Message:      fmt.Sprintf("Your request %s received its final approval from %s", requestID, approver),
		ResourceType: "purchase_request",
		ResourceID:   requestID,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send REQUEST_APPROVED notification",
			zap.String("request_id", requestID),
			zap.String("requester", requesterID),
			zap.Error(err),
		)
	}
}

// OnRequestRejected fires when any approver rejects.
// Notifies the requester that their request was rejected.
func (t *Triggers) OnRequestRejected(ctx context.Context, requestID, requesterID, approver, reason string) {
	msg := fmt.Sprintf("Your request %s was rejected by %s", requestID, approver)
	if reason != "" {
		msg += fmt.Sprintf(": %s", reason)
	}

	params := Params{
		RecipientID:  requesterID,
		Type:         TypeRequestRejected,
		Title:        "Your purchase request has been rejected",
		Message:      msg,
		ResourceType: "purchase_request",
		ResourceID:   requestID,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send REQUEST_REJECTED notification",
			zap.String("request_id", requestID),
			zap.String("requester", requesterID),
			zap.Error(err),
		)
	}
}

// OnArtifactAttached fires when finance attaches a purchase order or receipt
// to an approved request. Notifies the requester.
func (t *Triggers) OnArtifactAttached(ctx context.Context, requestID, requesterID, artifact string) {
	params := Params{
		RecipientID:  requesterID,
		Type:         TypeArtifactAttached,
		Title:        "A procurement document was attached to your request",
		Message:      fmt.Sprintf("Finance attached %s to request %s", artifact, requestID),
		ResourceType: "purchase_request",
		ResourceID:   requestID,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send ARTIFACT_ATTACHED notification",
			zap.String("request_id", requestID),
			zap.String("requester", requesterID),
			zap.Error(err),
		)
	}
}

// findApproverUserIDs queries all enabled users that hold the approver role.
// Admins administer policies and correct steps; they are not decision-makers
// by default, so they are not notified here.
func (t *Triggers) findApproverUserIDs(ctx context.Context) ([]string, error) {
	ids, err := t.client.User.Query().
		Where(
			user.RoleEQ(user.RoleApprover),
			user.EnabledEQ(true),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("query approver users: %w", err)
	}
	return ids, nil
}
