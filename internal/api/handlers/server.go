// Package handlers implements the HTTP API of ProcureFlow.
//
// Handlers are registered explicitly in internal/app/router.go; they bind
// JSON, delegate to the approval gateway or Ent queries, and translate
// AppError codes to HTTP responses.
package handlers

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"procureflow.io/procureflow/ent"
	"procureflow.io/procureflow/internal/api/middleware"
	"procureflow.io/procureflow/internal/governance/approval"
	"procureflow.io/procureflow/internal/governance/audit"
	"procureflow.io/procureflow/internal/notification"
	"procureflow.io/procureflow/internal/service"
)

// Server implements all API handlers.
type Server struct {
	client        *ent.Client
	pool          *pgxpool.Pool
	jwtCfg        middleware.JWTConfig
	audit         *audit.Logger
	policyService *service.PolicyService
	gateway       *approval.Gateway
	riverClient   *river.Client[pgx.Tx]
	notifier      *notification.Triggers // Optional: notification trigger service
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient     *ent.Client
	Pool          *pgxpool.Pool
	JWTCfg        middleware.JWTConfig
	Audit         *audit.Logger
	PolicyService *service.PolicyService
	Gateway       *approval.Gateway
	RiverClient   *river.Client[pgx.Tx]
	Notifier      *notification.Triggers // Optional: notification trigger service
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:        deps.EntClient,
		pool:          deps.Pool,
		jwtCfg:        deps.JWTCfg,
		audit:         deps.Audit,
		policyService: deps.PolicyService,
		gateway:       deps.Gateway,
		riverClient:   deps.RiverClient,
		notifier:      deps.Notifier,
	}
}

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// defaultPagination normalizes page/per_page query values.
func defaultPagination(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
