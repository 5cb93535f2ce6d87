package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/prakanlife/meta-ads-sync/internal/config"
	metasync "github.com/prakanlife/meta-ads-sync/internal/sync"
	"github.com/prakanlife/meta-ads-sync/pkg/log"
)

// MetaSyncService schedules the daily ingestion run and exposes manual
// triggering plus a status snapshot for the operations API
type MetaSyncService struct {
	scheduler    *gocron.Scheduler
	cfg          *config.Config
	orchestrator *metasync.Orchestrator

	syncRunning   bool
	syncMutex     sync.Mutex
	lastRunReport *metasync.RunReport
	lastRunError  error
}

func NewMetaSyncService(cfg *config.Config, orchestrator *metasync.Orchestrator) *MetaSyncService {
	log.L.WithFields(log.Fields{
		"cron_schedule":         cfg.Sync.CronSchedule,
		"lookback_days":         cfg.Sync.LookbackDays,
		"request_delay_seconds": cfg.Sync.RequestDelaySeconds,
		"sync_enabled":          cfg.Sync.Enabled,
	}).Info("Meta sync scheduler configuration loaded")

	return &MetaSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		cfg:          cfg,
		orchestrator: orchestrator,
	}
}

// Start registers the cron job and runs the scheduler until ctx is done.
// With sync disabled it is a no-op; manual triggering still works.
func (s *MetaSyncService) Start(ctx context.Context) error {
	if !s.cfg.Sync.Enabled {
		log.L.Info("Meta sync disabled by configuration")
		return nil
	}

	log.L.WithField("cron", s.cfg.Sync.CronSchedule).Info("Starting Meta sync scheduler")

	_, err := s.scheduler.Cron(s.cfg.Sync.CronSchedule).Do(func() {
		s.runSync(context.Background())
	})
	if err != nil {
		return fmt.Errorf("scheduling Meta sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Stopping Meta sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// runSync executes one orchestrated run, refusing to overlap with a run
// already in flight
func (s *MetaSyncService) runSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Meta sync already in progress, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	report, err := s.orchestrator.Run(ctx)

	s.syncMutex.Lock()
	s.lastRunReport = report
	s.lastRunError = err
	s.syncMutex.Unlock()

	if err != nil {
		log.L.WithError(err).Error("Meta sync run failed")
	}
}

// TriggerManualSync starts a run in the background unless one is already
// in flight
func (s *MetaSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Meta sync already in progress, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("Starting manual Meta sync")
	go s.runSync(context.Background())
}

// GetStatus returns the current scheduler state and the outcome of the
// last run
func (s *MetaSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":         s.cfg.Sync.Enabled,
		"sync_cron":            s.cfg.Sync.CronSchedule,
		"sync_lookback_days":   s.cfg.Sync.LookbackDays,
		"sync_request_delay_s": s.cfg.Sync.RequestDelaySeconds,
		"sync_running":         s.syncRunning,
	}

	if s.lastRunReport != nil {
		status["last_run_id"] = s.lastRunReport.RunID
		status["last_run_started_at"] = s.lastRunReport.StartedAt
		status["last_run_completed_at"] = s.lastRunReport.CompletedAt
		status["last_run_failed_days"] = s.lastRunReport.FailedDays
		status["last_run_partial_days"] = s.lastRunReport.PartialDays
	}
	if s.lastRunError != nil {
		status["last_run_error"] = s.lastRunError.Error()
	}

	return status
}
