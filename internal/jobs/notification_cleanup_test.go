package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"

	entnotification "procureflow.io/procureflow/ent/notification"
	entuser "procureflow.io/procureflow/ent/user"
	"procureflow.io/procureflow/internal/pkg/logger"
	"procureflow.io/procureflow/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestNotificationCleanupArgsKind(t *testing.T) {
	t.Parallel()

	if got := (NotificationCleanupArgs{}).Kind(); got != "notification_cleanup" {
		t.Fatalf("Kind() = %q, want %q", got, "notification_cleanup")
	}
}

func TestNotificationCleanupArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (NotificationCleanupArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != 24*time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, 24*time.Hour)
	}
	if !opts.UniqueOpts.ByQueue {
		t.Fatal("UniqueOpts.ByQueue = false, want true")
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
}

func TestNewNotificationCleanupWorkerRetention(t *testing.T) {
	t.Parallel()

	t.Run("defaults to ninety days when non-positive", func(t *testing.T) {
		w := NewNotificationCleanupWorker(nil, 0)
		if w.retention != DefaultNotificationRetention {
			t.Fatalf("retention = %s, want %s", w.retention, DefaultNotificationRetention)
		}
	})

	t.Run("uses explicit retention when provided", func(t *testing.T) {
		want := 7 * 24 * time.Hour
		w := NewNotificationCleanupWorker(nil, want)
		if w.retention != want {
			t.Fatalf("retention = %s, want %s", w.retention, want)
		}
	})
}

func TestNotificationCleanupWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var w *NotificationCleanupWorker
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("nil ent client", func(t *testing.T) {
		w := &NotificationCleanupWorker{}
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})
}

func TestNotificationCleanupWorkerWork_SweepsByReadState(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "cleanup_sweep")
	ctx := context.Background()

	_, err := client.User.Create().
		SetID("user-1").
		SetEmail("user-1@test.local").
		SetFullName("User One").
		SetRole(entuser.RoleStaff).
		SetPasswordHash("x").
		Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	retention := 30 * 24 * time.Hour
	now := time.Now().UTC()
	rows := []struct {
		id   string
		read bool
		age  time.Duration
	}{
		{"n-read-old", true, retention + time.Hour},
		{"n-read-fresh", true, retention - time.Hour},
		{"n-unread-old", false, retention + time.Hour},
		{"n-unread-stale", false, 2*retention + time.Hour},
	}
	for _, r := range rows {
		_, err := client.Notification.Create().
			SetID(r.id).
			SetRecipientID("user-1").
			SetType(entnotification.TypeREQUEST_APPROVED).
			SetTitle("A purchase request was approved").
			SetRead(r.read).
			SetCreatedAt(now.Add(-r.age)).
			Save(ctx)
		if err != nil {
			t.Fatalf("create notification %s: %v", r.id, err)
		}
	}

	w := NewNotificationCleanupWorker(client, retention)
	if err := w.Work(ctx, nil); err != nil {
		t.Fatalf("Work() error = %v", err)
	}

	// Read rows go at the retention cutoff; unread rows survive until the
	// grace window on top of it runs out.
	remaining, err := client.Notification.Query().IDs(ctx)
	if err != nil {
		t.Fatalf("query notifications: %v", err)
	}
	got := map[string]bool{}
	for _, id := range remaining {
		got[id] = true
	}
	if len(remaining) != 2 || !got["n-read-fresh"] || !got["n-unread-old"] {
		t.Fatalf("surviving notifications = %v, want n-read-fresh and n-unread-old", remaining)
	}
}

func TestPendingReminderArgsKind(t *testing.T) {
	t.Parallel()

	if got := (PendingReminderArgs{}).Kind(); got != "pending_reminder" {
		t.Fatalf("Kind() = %q, want %q", got, "pending_reminder")
	}
}

func TestPendingReminderArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (PendingReminderArgs{}).InsertOpts()
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != 24*time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, 24*time.Hour)
	}
}

func TestNewPendingReminderWorkerThreshold(t *testing.T) {
	t.Parallel()

	t.Run("defaults to three days when non-positive", func(t *testing.T) {
		w := NewPendingReminderWorker(nil, nil, -time.Hour)
		if w.after != DefaultPendingReminderAfter {
			t.Fatalf("after = %s, want %s", w.after, DefaultPendingReminderAfter)
		}
	})

	t.Run("uses explicit threshold when provided", func(t *testing.T) {
		want := 24 * time.Hour
		w := NewPendingReminderWorker(nil, nil, want)
		if w.after != want {
			t.Fatalf("after = %s, want %s", w.after, want)
		}
	})
}

func TestPendingReminderWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	var w *PendingReminderWorker
	if err := w.Work(context.Background(), nil); err == nil {
		t.Fatal("Work() on nil worker expected error")
	}

	w = &PendingReminderWorker{}
	if err := w.Work(context.Background(), nil); err == nil {
		t.Fatal("Work() on unconfigured worker expected error")
	}
}
