package modules

import (
	"context"

	"github.com/riverqueue/river"

	"procureflow.io/procureflow/internal/api/handlers"
)

// AdminModule contributes the policy administration surface. The policy
// service itself lives on Infrastructure because the approval core also
// reads it; this module only wires it into the HTTP server.
type AdminModule struct {
	infra *Infrastructure
}

func NewAdminModule(infra *Infrastructure) *AdminModule {
	return &AdminModule{infra: infra}
}

func (m *AdminModule) Name() string { return "admin" }

func (m *AdminModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.PolicyService = m.infra.PolicyService
}

func (m *AdminModule) RegisterWorkers(_ *river.Workers) {}

func (m *AdminModule) Shutdown(context.Context) error { return nil }
