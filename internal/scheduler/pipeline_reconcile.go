package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/automateboss/ops-portal-api/infrastructure/repository"
	"github.com/automateboss/ops-portal-api/internal/config"
	"github.com/automateboss/ops-portal-api/internal/usecases/pipeline"
)

// PipelineReconcileConfig holds the scheduling knobs for the pipeline
// reconciliation job.
type PipelineReconcileConfig struct {
	CronSchedule string
	Enabled      bool
}

// PipelineReconcileService periodically re-runs the pipeline seeder
// over every active organization. Seeding is idempotent, so the job
// only repairs organizations whose webhook-time seeding failed partway
// or that predate a newly added default project type.
type PipelineReconcileService struct {
	scheduler          *gocron.Scheduler
	config             PipelineReconcileConfig
	organizationRepo   repository.OrganizationRepository
	seeder             pipeline.Seeder
	syncRunning        bool
	syncMutex          sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewPipelineReconcileService(
	organizationRepo repository.OrganizationRepository,
	seeder pipeline.Seeder,
	appConfig *config.Config,
) *PipelineReconcileService {
	reconcileConfig := PipelineReconcileConfig{
		CronSchedule: appConfig.PipelineReconcile.CronSchedule,
		Enabled:      appConfig.PipelineReconcile.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reconcileConfig.CronSchedule,
		"enabled":       reconcileConfig.Enabled,
	}).Info("Pipeline reconciliation scheduler configuration loaded")

	return &PipelineReconcileService{
		scheduler:        gocron.NewScheduler(time.Local),
		config:           reconcileConfig,
		organizationRepo: organizationRepo,
		seeder:           seeder,
		syncRunning:      false,
	}
}

// Start schedules the job and runs the scheduler asynchronously. The
// scheduler stops when the context is cancelled.
func (s *PipelineReconcileService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Pipeline reconciliation disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting pipeline reconciliation scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reconcileAll()
	})
	if err != nil {
		return fmt.Errorf("scheduling pipeline reconciliation: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping pipeline reconciliation scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// reconcileAll seeds defaults for every active organization. One
// organization failing does not stop the rest.
func (s *PipelineReconcileService) reconcileAll() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pipeline reconciliation already running, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastRunStartedAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
		s.lastRunCompletedAt = time.Now()
	}()

	logrus.Info("Starting pipeline reconciliation for all active organizations")

	organizations, err := s.organizationRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Failed to list organizations for pipeline reconciliation")
		return
	}

	if len(organizations) == 0 {
		logrus.Info("No active organizations to reconcile")
		return
	}

	failures := 0
	for _, org := range organizations {
		if err := s.seeder.SeedDefaults(org.ID); err != nil {
			failures++
			logrus.WithError(err).WithField("organization_id", org.ID).
				Error("Pipeline reconciliation failed for organization")
		}
	}

	logrus.WithFields(logrus.Fields{
		"organizations": len(organizations),
		"failures":      failures,
		"duration":      time.Since(s.lastRunStartedAt).String(),
	}).Info("Pipeline reconciliation completed")
}
