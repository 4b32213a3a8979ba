// Package notification implements the in-app notification system.
//
// Notifications are synchronous DB writes in the caller's context — in-app
// inbox only. External push channels (email, webhook) would go through River
// if they are ever added.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"procureflow.io/procureflow/ent"
	entnotification "procureflow.io/procureflow/ent/notification"
	"procureflow.io/procureflow/internal/pkg/logger"
)

// Type constants matching ent/schema/notification.go enum values.
const (
	TypeDecisionPending  = "DECISION_PENDING"
	TypeRequestApproved  = "REQUEST_APPROVED"
	TypeRequestRejected  = "REQUEST_REJECTED"
	TypeArtifactAttached = "ARTIFACT_ATTACHED"
)

// Params holds the required fields for creating a notification.
type Params struct {
	RecipientID  string // User ID of the recipient
	Type         string // One of Type* constants above
	Title        string // Human-readable title
	Message      string // Body text
	ResourceType string // e.g. "purchase_request"
	ResourceID   string // ID of the related resource for navigation
}

// Sender defines the interface for sending notifications.
type Sender interface {
	// Send creates a notification for a single recipient.
	Send(ctx context.Context, params Params) error

	// SendToMany creates notifications for multiple recipients.
	// Best-effort: logs errors but does not abort on individual failures.
	SendToMany(ctx context.Context, recipientIDs []string, params Params) error
}

// InboxSender writes notifications to the database synchronously within the
// caller's context.
type InboxSender struct {
	client *ent.Client
}

// NewInboxSender creates a new inbox sender.
func NewInboxSender(client *ent.Client) *InboxSender {
	return &InboxSender{client: client}
}

// Send stores a single notification to the database.
func (s *InboxSender) Send(ctx context.Context, params Params) error {
	if err := validateParams(params); err != nil {
		return fmt.Errorf("notification params invalid: %w", err)
	}

	notifType, err := toEntType(params.Type)
	if err != nil {
		return err
	}

	_, err = s.client.Notification.Create().
		SetID(uuid.NewString()).
		SetType(notifType).
		SetTitle(params.Title).
		SetMessage(params.Message).
		SetResourceType(params.ResourceType).
		SetResourceID(params.ResourceID).
		SetRead(false).
		SetRecipientID(params.RecipientID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create notification for user %s: %w", params.RecipientID, err)
	}

	logger.Debug("notification sent",
		zap.String("recipient", params.RecipientID),
		zap.String("type", params.Type),
		zap.String("title", params.Title),
	)

	return nil
}

// SendToMany creates notifications for multiple recipients (best-effort).
// Failures are logged but do not prevent delivery to other recipients.
func (s *InboxSender) SendToMany(ctx context.Context, recipientIDs []string, params Params) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	var failCount int
	for _, recipientID := range recipientIDs {
		p := params
		p.RecipientID = recipientID
		if err := s.Send(ctx, p); err != nil {
			failCount++
			logger.Error("notification delivery failed",
				zap.String("recipient", recipientID),
				zap.String("type", params.Type),
				zap.Error(err),
			)
		}
	}

	if failCount > 0 {
		return fmt.Errorf("notification delivery failed for %d/%d recipients", failCount, len(recipientIDs))
	}
	return nil
}

// compile-time check
var _ Sender = (*InboxSender)(nil)

// --- Helpers ---

func validateParams(p Params) error {
	if p.RecipientID == "" {
		return fmt.Errorf("recipient_id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

func toEntType(t string) (entnotification.Type, error) {
	switch t {
	case TypeDecisionPending:
		return entnotification.TypeDECISION_PENDING, nil
	case TypeRequestApproved:
		return entnotification.TypeREQUEST_APPROVED, nil
	case TypeRequestRejected:
		return entnotification.TypeREQUEST_REJECTED, nil
	case TypeArtifactAttached:
		return entnotification.TypeARTIFACT_ATTACHED, nil
	default:
		return "", fmt.Errorf("unknown notification type: %s", t)
	}
}
