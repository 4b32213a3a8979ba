package modules

import (
	"procureflow.io/procureflow/internal/api/handlers"
	"procureflow.io/procureflow/internal/api/middleware"
	"procureflow.io/procureflow/internal/config"
)

// NewServerDeps builds base server deps then lets each module contribute explicit wiring.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		EntClient: infra.EntClient,
		Pool:      infra.Pool,
		JWTCfg: middleware.JWTConfig{
			SigningKey: []byte(cfg.Security.SessionSecret),
			Issuer:     cfg.Security.JWTIssuer,
			ExpiresIn:  cfg.Security.SessionLifetime,
		},
		Audit:       infra.AuditLogger,
		RiverClient: infra.RiverClient,
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.ContributeServerDeps(&deps)
	}
	return deps
}
