package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"procureflow.io/procureflow/ent"
	"procureflow.io/procureflow/ent/purchaserequest"
	"procureflow.io/procureflow/internal/notification"
	"procureflow.io/procureflow/internal/pkg/logger"
)

const (
	// DefaultPendingReminderAfter is how long a request may sit PENDING with
	// no decision activity before approvers are re-notified.
	DefaultPendingReminderAfter = 72 * time.Hour
)

// PendingReminderArgs is a periodic job that re-notifies approvers about
// requests that have been waiting for a decision too long.
type PendingReminderArgs struct{}

// Kind returns the job kind identifier for the pending-decision reminder.
func (PendingReminderArgs) Kind() string { return "pending_reminder" }

// InsertOpts ensures at most one reminder sweep is enqueued per day.
func (PendingReminderArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// PendingReminderWorker re-sends DECISION_PENDING notifications for stale
// requests.
type PendingReminderWorker struct {
	river.WorkerDefaults[PendingReminderArgs]
	entClient *ent.Client
	notifier  *notification.Triggers
	after     time.Duration
}

// NewPendingReminderWorker creates a reminder worker. Non-positive thresholds
// fall back to the 72-hour default.
func NewPendingReminderWorker(entClient *ent.Client, notifier *notification.Triggers, after time.Duration) *PendingReminderWorker {
	if after <= 0 {
		after = DefaultPendingReminderAfter
	}
	return &PendingReminderWorker{
		entClient: entClient,
		notifier:  notifier,
		after:     after,
	}
}

// Work finds stale PENDING requests and re-notifies approvers. updated_at is
// the staleness clock: any decision or item edit resets it.
func (w *PendingReminderWorker) Work(ctx context.Context, _ *river.Job[PendingReminderArgs]) error {
	if w == nil || w.entClient == nil || w.notifier == nil {
		return fmt.Errorf("pending reminder worker is not initialized")
	}

	cutoff := time.Now().UTC().Add(-w.after)
	stale, err := w.entClient.PurchaseRequest.Query().
		Where(
			purchaserequest.StatusEQ(purchaserequest.StatusPENDING),
			purchaserequest.UpdatedAtLT(cutoff),
		).
		WithRequester().
		All(ctx)
	if err != nil {
		return fmt.Errorf("query stale pending requests: %w", err)
	}

	for _, req := range stale {
		requesterName := req.RequesterID
		if req.Edges.Requester != nil {
			requesterName = req.Edges.Requester.FullName
		}
		w.notifier.OnRequestSubmitted(ctx, req.ID, requesterName, req.Amount.StringFixed(2))
	}

	logger.Info("pending decision reminder sweep completed",
		zap.Int("stale_requests", len(stale)),
		zap.String("cutoff", cutoff.Format(time.RFC3339)),
	)
	return nil
}
