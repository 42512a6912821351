// Package scheduler triggers the dispatch runs on cron specs, standing in
// for the hosted platform's timer. A short-lived Redis lock keeps
// overlapping ticks (or a second replica) from double-sending a batch;
// a missed tick is caught up by the next one, so the lock is best-effort.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"salt-notifier/internal/common/config"
	"salt-notifier/internal/common/logger"
	"salt-notifier/internal/dispatch"
)

// Runner is the dispatch surface the scheduled jobs invoke.
type Runner interface {
	RunSignups(ctx context.Context) (*dispatch.Summary, error)
	RunCancellations(ctx context.Context) (*dispatch.Summary, error)
	RunReminders(ctx context.Context) (*dispatch.ReminderSummary, error)
}

type Scheduler struct {
	cron       *cron.Cron
	dispatcher Runner
	redis      *redis.Client
	logger     logger.Logger
	lockTTL    time.Duration
	cfg        config.SchedulerConfig
}

func New(dispatcher Runner, redisClient *redis.Client, log logger.Logger, cfg config.SchedulerConfig) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		dispatcher: dispatcher,
		redis:      redisClient,
		logger:     log.WithFields(map[string]interface{}{"component": "scheduler"}),
		lockTTL:    time.Duration(cfg.LockTTL) * time.Second,
		cfg:        cfg,
	}
}

// Start registers the three dispatch jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	jobs := []struct {
		name string
		spec string
		run  func(ctx context.Context) error
	}{
		{"signups", s.cfg.SignupSpec, func(ctx context.Context) error {
			_, err := s.dispatcher.RunSignups(ctx)
			return err
		}},
		{"cancellations", s.cfg.CancellationSpec, func(ctx context.Context) error {
			_, err := s.dispatcher.RunCancellations(ctx)
			return err
		}},
		{"reminders", s.cfg.ReminderSpec, func(ctx context.Context) error {
			_, err := s.dispatcher.RunReminders(ctx)
			return err
		}},
	}

	for _, job := range jobs {
		job := job
		if _, err := s.cron.AddFunc(job.spec, func() {
			s.runLocked(job.name, job.run)
		}); err != nil {
			return fmt.Errorf("register %s job: %w", job.name, err)
		}
		s.logger.Info("Scheduled dispatch job", map[string]interface{}{
			"job":  job.name,
			"spec": job.spec,
		})
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped", nil)
}

func (s *Scheduler) runLocked(name string, run func(ctx context.Context) error) {
	ctx := context.Background()

	key := lockKey(name)
	acquired, err := s.redis.SetNX(ctx, key, "1", s.lockTTL).Result()
	if err != nil {
		// Redis being down must not stop outbound mail; run unguarded.
		s.logger.WithError(err).Warn("Run lock unavailable, proceeding without it", map[string]interface{}{
			"job": name,
		})
	} else if !acquired {
		s.logger.Info("Run lock held, skipping tick", map[string]interface{}{"job": name})
		return
	}

	if runErr := run(ctx); runErr != nil {
		s.logger.WithError(runErr).Error("Scheduled dispatch run failed", map[string]interface{}{
			"job": name,
		})
	}

	if err == nil {
		if delErr := s.redis.Del(ctx, key).Err(); delErr != nil {
			s.logger.WithError(delErr).Warn("Failed to release run lock", map[string]interface{}{
				"job": name,
			})
		}
	}
}

func lockKey(name string) string {
	return "notifier:lock:" + name
}
