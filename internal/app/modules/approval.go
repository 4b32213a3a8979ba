package modules

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"

	"procureflow.io/procureflow/internal/api/handlers"
	"procureflow.io/procureflow/internal/governance/approval"
	"procureflow.io/procureflow/internal/jobs"
	"procureflow.io/procureflow/internal/notification"
	"procureflow.io/procureflow/internal/usecase"
)

// ApprovalModule wires the approval gateway with the atomic pgx writers and
// the notification trigger service.
type ApprovalModule struct {
	infra    *Infrastructure
	gateway  *approval.Gateway
	notifier *notification.Triggers
}

// NewApprovalModule creates the approval module.
func NewApprovalModule(infra *Infrastructure) (*ApprovalModule, error) {
	if infra == nil || infra.EntClient == nil || infra.Pool == nil {
		return nil, fmt.Errorf("approval module requires ent client and pgx pool")
	}

	cfg := infra.Config.Approval
	requestWriter := usecase.NewRequestWriter(infra.Pool, cfg.LockTimeout, cfg.DefaultRequiredLevels)
	approvalWriter := usecase.NewApprovalWriter(infra.Pool, cfg.LockTimeout)
	gateway := approval.NewGateway(infra.EntClient, infra.AuditLogger, requestWriter, approvalWriter)

	inboxSender := notification.NewInboxSender(infra.EntClient)
	notifier := notification.NewTriggers(inboxSender, infra.EntClient)
	gateway.SetNotifier(notifier)
	gateway.SetPools(infra.Pools)

	return &ApprovalModule{infra: infra, gateway: gateway, notifier: notifier}, nil
}

func (m *ApprovalModule) Name() string { return "approval" }

func (m *ApprovalModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Gateway = m.gateway
	deps.Notifier = m.notifier
}

func (m *ApprovalModule) RegisterWorkers(workers *river.Workers) {
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(
		m.infra.EntClient,
		m.infra.Config.River.NotificationRetention,
	))
	river.AddWorker(workers, jobs.NewPendingReminderWorker(
		m.infra.EntClient,
		m.notifier,
		m.infra.Config.Approval.PendingReminderAfter,
	))
}

func (m *ApprovalModule) Shutdown(context.Context) error { return nil }
