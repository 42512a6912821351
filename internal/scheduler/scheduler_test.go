package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"salt-notifier/internal/common/config"
	"salt-notifier/internal/common/logger"
	"salt-notifier/internal/dispatch"
)

// ==========================
// Test Helper Functions
// ==========================

type mockRunner struct {
	signupRuns       int
	cancellationRuns int
	reminderRuns     int
	err              error
}

func (m *mockRunner) RunSignups(ctx context.Context) (*dispatch.Summary, error) {
	m.signupRuns++
	return &dispatch.Summary{}, m.err
}

func (m *mockRunner) RunCancellations(ctx context.Context) (*dispatch.Summary, error) {
	m.cancellationRuns++
	return &dispatch.Summary{}, m.err
}

func (m *mockRunner) RunReminders(ctx context.Context) (*dispatch.ReminderSummary, error) {
	m.reminderRuns++
	return &dispatch.ReminderSummary{}, m.err
}

func createScheduler(t *testing.T, runner Runner) (*Scheduler, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := config.SchedulerConfig{
		Enabled:          true,
		SignupSpec:       "*/5 * * * *",
		CancellationSpec: "*/5 * * * *",
		ReminderSpec:     "0 * * * *",
		LockTTL:          300,
	}

	return New(runner, client, logger.NewZapAdapter(zaptest.NewLogger(t)), cfg), mr
}

// ==========================
// Lock Behavior
// ==========================

func TestScheduler_RunLocked_AcquiresAndReleases(t *testing.T) {
	runner := &mockRunner{}
	s, mr := createScheduler(t, runner)

	s.runLocked("signups", func(ctx context.Context) error {
		_, err := s.dispatcher.RunSignups(ctx)

		// Lock must be held for the duration of the run.
		assert.True(t, mr.Exists(lockKey("signups")))
		return err
	})

	assert.Equal(t, 1, runner.signupRuns)
	assert.False(t, mr.Exists(lockKey("signups")))
}

func TestScheduler_RunLocked_SkipsWhenLockHeld(t *testing.T) {
	runner := &mockRunner{}
	s, mr := createScheduler(t, runner)

	// Another instance holds the lock.
	mr.Set(lockKey("signups"), "1")

	s.runLocked("signups", func(ctx context.Context) error {
		_, err := s.dispatcher.RunSignups(ctx)
		return err
	})

	assert.Equal(t, 0, runner.signupRuns)
	// The foreign lock is left untouched.
	assert.True(t, mr.Exists(lockKey("signups")))
}

func TestScheduler_RunLocked_ProceedsWhenRedisDown(t *testing.T) {
	runner := &mockRunner{}
	s, mr := createScheduler(t, runner)
	mr.Close()

	s.runLocked("signups", func(ctx context.Context) error {
		_, err := s.dispatcher.RunSignups(ctx)
		return err
	})

	// Lock failure degrades to an unguarded run rather than silence.
	assert.Equal(t, 1, runner.signupRuns)
}

func TestScheduler_RunLocked_RunErrorStillReleasesLock(t *testing.T) {
	runner := &mockRunner{err: errors.New("NOTIFICATION_FETCH_FAILED")}
	s, mr := createScheduler(t, runner)

	s.runLocked("signups", func(ctx context.Context) error {
		_, err := s.dispatcher.RunSignups(ctx)
		return err
	})

	assert.Equal(t, 1, runner.signupRuns)
	assert.False(t, mr.Exists(lockKey("signups")))
}

// ==========================
// Cron Registration
// ==========================

func TestScheduler_Start_RegistersJobs(t *testing.T) {
	runner := &mockRunner{}
	s, _ := createScheduler(t, runner)

	assert.NoError(t, s.Start())
	assert.Len(t, s.cron.Entries(), 3)
	s.Stop()
}

func TestScheduler_Start_RejectsBadSpec(t *testing.T) {
	runner := &mockRunner{}
	s, _ := createScheduler(t, runner)
	s.cfg.SignupSpec = "not a cron spec"

	err := s.Start()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "signups")
}

func TestScheduler_LockExpiry(t *testing.T) {
	runner := &mockRunner{}
	s, mr := createScheduler(t, runner)

	// A crashed holder's lock expires after the TTL and a later tick runs.
	mr.Set(lockKey("reminders"), "1")
	mr.SetTTL(lockKey("reminders"), time.Duration(s.cfg.LockTTL)*time.Second)
	mr.FastForward(time.Duration(s.cfg.LockTTL+1) * time.Second)

	s.runLocked("reminders", func(ctx context.Context) error {
		_, err := s.dispatcher.RunReminders(ctx)
		return err
	})

	assert.Equal(t, 1, runner.reminderRuns)
}
