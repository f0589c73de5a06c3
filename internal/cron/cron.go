package cron

import (
	"context"
	"sync"

	cronv3 "github.com/robfig/cron/v3"

	"github.com/sendbun/SimpleInbox/config"
	"github.com/sendbun/SimpleInbox/interfaces"
	"github.com/sendbun/SimpleInbox/internal/logger"
	"github.com/sendbun/SimpleInbox/internal/tracing"
)

// GroupLifecycle serializes all jobs that mutate account state.
const GroupLifecycle = "lifecycle"

var jobLocks = struct {
	sync.Mutex
	locks map[string]*sync.Mutex
}{
	locks: map[string]*sync.Mutex{
		GroupLifecycle: new(sync.Mutex),
	},
}

type CronManager struct {
	cfg       *config.CronConfig
	log       logger.Logger
	cron      *cronv3.Cron
	stopCh    chan struct{}
	jobIDs    map[string]cronv3.EntryID
	lifecycle interfaces.LifecycleService
}

func NewCronManager(cfg *config.CronConfig, log logger.Logger, lifecycle interfaces.LifecycleService) *CronManager {
	return &CronManager{
		cfg:       cfg,
		log:       log,
		stopCh:    make(chan struct{}),
		jobIDs:    make(map[string]cronv3.EntryID),
		lifecycle: lifecycle,
	}
}

// Start initializes the scheduler and registers all jobs.
func (cm *CronManager) Start() {
	cm.log.Info("Starting cron manager")
	cronOptions := []cronv3.Option{
		cronv3.WithChain(
			cronv3.SkipIfStillRunning(cronv3.DefaultLogger),
			cronv3.Recover(cronv3.DefaultLogger),
		),
	}
	c := cronv3.New(cronOptions...)
	cm.registerJobs(c)
	c.Start()
	cm.cron = c
}

// Stop gracefully stops the cron manager, waiting for running jobs.
func (cm *CronManager) Stop() {
	if cm.cron != nil {
		cm.log.Info("Stopping cron manager")
		ctx := cm.cron.Stop()
		<-ctx.Done()
	}
	close(cm.stopCh)
}

func (cm *CronManager) registerJobs(c *cronv3.Cron) {
	if cm.cfg.AccountCleanupSchedule != "" {
		id, err := c.AddFunc(cm.cfg.AccountCleanupSchedule, func() {
			defer tracing.RecoverAndLogToJaeger(cm.log)
			jobLocks.locks[GroupLifecycle].Lock()
			defer jobLocks.locks[GroupLifecycle].Unlock()
			cm.cleanupExpiredAccounts()
		})
		if err != nil {
			cm.log.Fatalf("Could not add account cleanup cron job: %v", err)
		}
		cm.jobIDs["account_cleanup"] = id
		cm.log.Infof("Registered account cleanup job with schedule: %s", cm.cfg.AccountCleanupSchedule)
	}
}

func (cm *CronManager) cleanupExpiredAccounts() {
	ctx := context.Background()

	span, ctx := tracing.StartTracerSpan(ctx, "CronManager.cleanupExpiredAccounts")
	defer span.Finish()
	tracing.TagComponentCronJob(span)

	if err := cm.lifecycle.Cleanup(ctx); err != nil {
		tracing.TraceErr(span, err)
		cm.log.Errorf("Failed to clean up expired accounts: %v", err)
		return
	}
}
