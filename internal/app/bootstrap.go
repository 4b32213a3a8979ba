// Package app — composition root. Bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"procureflow.io/procureflow/internal/api/handlers"
	"procureflow.io/procureflow/internal/app/modules"
	"procureflow.io/procureflow/internal/config"
	"procureflow.io/procureflow/internal/infrastructure"
	"procureflow.io/procureflow/internal/jobs"
	"procureflow.io/procureflow/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *infrastructure.DatabaseClients
	Pools   *worker.Pools
	Modules []modules.Module
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	approvalModule, err := modules.NewApprovalModule(infra)
	if err != nil {
		infra.Close()
		return nil, fmt.Errorf("init approval module: %w", err)
	}

	allModules := []modules.Module{
		approvalModule,
		modules.NewAdminModule(infra),
	}

	workers := river.NewWorkers()
	for _, mod := range allModules {
		mod.RegisterWorkers(workers)
	}
	if err := infra.InitRiver(workers); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}

	// Periodic maintenance: inbox retention cleanup and pending-decision
	// reminders, daily, both kicked once on startup.
	if infra.RiverClient != nil {
		infra.RiverClient.PeriodicJobs().Add(
			river.NewPeriodicJob(
				river.PeriodicInterval(24*time.Hour),
				func() (river.JobArgs, *river.InsertOpts) {
					return jobs.NotificationCleanupArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		)
		infra.RiverClient.PeriodicJobs().Add(
			river.NewPeriodicJob(
				river.PeriodicInterval(24*time.Hour),
				func() (river.JobArgs, *river.InsertOpts) {
					return jobs.PendingReminderArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		)
	}

	serverDeps := modules.NewServerDeps(cfg, infra, allModules)
	server := handlers.NewServer(serverDeps)

	return &Application{
		Config:  cfg,
		Router:  newRouter(cfg, server, serverDeps.JWTCfg.SigningKey),
		DB:      infra.DB,
		Pools:   infra.Pools,
		Modules: allModules,
	}, nil
}
