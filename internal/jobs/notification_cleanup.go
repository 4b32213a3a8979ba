// Package jobs defines River Queue job types for periodic maintenance.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"procureflow.io/procureflow/ent"
	"procureflow.io/procureflow/ent/notification"
	"procureflow.io/procureflow/internal/pkg/logger"
)

const (
	// DefaultNotificationRetention bounds how long a read procurement
	// notice stays in the inbox.
	DefaultNotificationRetention = 90 * 24 * time.Hour

	// unreadGraceFactor extends the retention for unread notices: a
	// decision-pending notice stays actionable until it is read or the
	// grace runs out.
	unreadGraceFactor = 2
)

// NotificationCleanupArgs is a periodic maintenance job that sweeps expired
// procurement notices from the inbox.
type NotificationCleanupArgs struct{}

// Kind returns the job kind identifier for periodic notification cleanup.
func (NotificationCleanupArgs) Kind() string { return "notification_cleanup" }

// InsertOpts ensures at most one cleanup job is enqueued within the same day.
func (NotificationCleanupArgs) InsertOpts() river.InsertOpts {
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

// NotificationCleanupWorker deletes read notices past the retention window
// and unread notices past the extended grace window.
type NotificationCleanupWorker struct {
	river.WorkerDefaults[NotificationCleanupArgs]
	entClient *ent.Client
	retention time.Duration
}

// NewNotificationCleanupWorker creates a cleanup worker. Non-positive retention
// falls back to the 90-day default.
func NewNotificationCleanupWorker(entClient *ent.Client, retention time.Duration) *NotificationCleanupWorker {
	if retention <= 0 {
		retention = DefaultNotificationRetention
	}
	return &NotificationCleanupWorker{
		entClient: entClient,
		retention: retention,
	}
}

// Work removes expired notice rows in two passes: read rows at the retention
// cutoff, unread rows only after the grace window on top of it.
func (w *NotificationCleanupWorker) Work(ctx context.Context, _ *river.Job[NotificationCleanupArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("notification cleanup worker is not initialized")
	}

	now := time.Now().UTC()
	readCutoff := now.Add(-w.retention)
	unreadCutoff := now.Add(-unreadGraceFactor * w.retention)

	readDeleted, err := w.entClient.Notification.Delete().
		Where(notification.ReadEQ(true), notification.CreatedAtLT(readCutoff)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete read notices before %s: %w", readCutoff.Format(time.RFC3339), err)
	}

	unreadDeleted, err := w.entClient.Notification.Delete().
		Where(notification.ReadEQ(false), notification.CreatedAtLT(unreadCutoff)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete unread notices before %s: %w", unreadCutoff.Format(time.RFC3339), err)
	}

	logger.Info("notification retention sweep completed",
		zap.Int("read_deleted", readDeleted),
		zap.Int("unread_deleted", unreadDeleted),
		zap.Duration("retention", w.retention),
	)
	return nil
}
