package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	entnotification "procureflow.io/procureflow/ent/notification"
	entuser "procureflow.io/procureflow/ent/user"
	"procureflow.io/procureflow/internal/pkg/logger"
	"procureflow.io/procureflow/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

// fakeSender captures delivered notifications in memory.
type fakeSender struct {
	sent []Params
}

func (f *fakeSender) Send(_ context.Context, params Params) error {
	f.sent = append(f.sent, params)
	return nil
}

func (f *fakeSender) SendToMany(_ context.Context, recipientIDs []string, params Params) error {
	for _, id := range recipientIDs {
		p := params
		p.RecipientID = id
		f.sent = append(f.sent, p)
	}
	return nil
}

func TestTriggers_OnRequestSubmitted_NotifiesEnabledApproversOnly(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "triggers_submit")
	ctx := context.Background()

	users := []struct {
		id      string
		role    string
		enabled bool
	}{
		{"user-approver-a", "approver", true},
		{"user-approver-b", "approver", true},
		{"user-approver-gone", "approver", false},
		{"user-staff", "staff", true},
		{"user-admin", "admin", true},
	}
	for _, u := range users {
		_, err := client.User.Create().
			SetID(u.id).
			SetEmail(u.id + "@test.local").
			SetFullName(u.id).
			SetRole(entuser.Role(u.role)).
			SetPasswordHash("x").
			SetEnabled(u.enabled).
			Save(ctx)
		require.NoError(t, err)
	}

	sender := &fakeSender{}
	triggers := NewTriggers(sender, client)
	triggers.OnRequestSubmitted(ctx, "req-1", "Test Staff", "1234.00")

	require.Len(t, sender.sent, 2)
	recipients := map[string]bool{}
	for _, p := range sender.sent {
		recipients[p.RecipientID] = true
		require.Equal(t, TypeDecisionPending, p.Type)
		require.Equal(t, "purchase_request", p.ResourceType)
		require.Equal(t, "req-1", p.ResourceID)
		require.Contains(t, p.Message, "1234.00")
	}
	require.True(t, recipients["user-approver-a"])
	require.True(t, recipients["user-approver-b"])
}

func TestTriggers_TerminalDecisionsNotifyRequester(t *testing.T) {
	sender := &fakeSender{}
	triggers := NewTriggers(sender, nil)
	ctx := context.Background()

	triggers.OnRequestApproved(ctx, "req-1", "user-staff", "user-approver")
	triggers.OnRequestRejected(ctx, "req-2", "user-staff", "user-approver", "over budget")

	require.Len(t, sender.sent, 2)

	approved := sender.sent[0]
	require.Equal(t, TypeRequestApproved, approved.Type)
	require.Equal(t, "user-staff", approved.RecipientID)

	rejected := sender.sent[1]
	require.Equal(t, TypeRequestRejected, rejected.Type)
	require.Contains(t, rejected.Message, "over budget")
}

func TestTriggers_OnArtifactAttached(t *testing.T) {
	sender := &fakeSender{}
	triggers := NewTriggers(sender, nil)

	triggers.OnArtifactAttached(context.Background(), "req-1", "user-staff", "purchase order")

	require.Len(t, sender.sent, 1)
	require.Equal(t, TypeArtifactAttached, sender.sent[0].Type)
	require.Contains(t, sender.sent[0].Message, "purchase order")
}

func TestInboxSender_SendPersistsNotification(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "inbox_send")
	ctx := context.Background()

	_, err := client.User.Create().
		SetID("user-1").
		SetEmail("user-1@test.local").
		SetFullName("User One").
		SetRole(entuser.RoleStaff).
		SetPasswordHash("x").
		Save(ctx)
	require.NoError(t, err)

	sender := NewInboxSender(client)
	err = sender.Send(ctx, Params{
		RecipientID:  "user-1",
		Type:         TypeRequestApproved,
		Title:        "Your purchase request has been approved",
		Message:      "Your request req-1 received its final approval",
		ResourceType: "purchase_request",
		ResourceID:   "req-1",
	})
	require.NoError(t, err)

	stored, err := client.Notification.Query().
		Where(entnotification.RecipientIDEQ("user-1")).
		Only(ctx)
	require.NoError(t, err)
	require.Equal(t, entnotification.TypeREQUEST_APPROVED, stored.Type)
	require.False(t, stored.Read)
	require.Equal(t, "req-1", stored.ResourceID)
}

func TestInboxSender_SendValidatesParams(t *testing.T) {
	sender := NewInboxSender(nil)
	ctx := context.Background()

	err := sender.Send(ctx, Params{Type: TypeRequestApproved, Title: "t", Message: "m"})
	require.Error(t, err)

	err = sender.Send(ctx, Params{RecipientID: "user-1", Type: "SMOKE_SIGNAL", Title: "t", Message: "m"})
	require.Error(t, err)
}
