package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/communityworks/volunteer-platform/internal/repository"
	"github.com/communityworks/volunteer-platform/pkg/logger"
	"github.com/communityworks/volunteer-platform/pkg/mail"
)

const (
	defaultStatusSpec   = "@midnight"
	defaultReminderSpec = "0 8 * * *"
)

// Scheduler runs the two periodic sweeps: the daily status sweep that
// advances task statuses from the calendar, and the morning reminder
// sweep that emails volunteers the day before their task. Both sweeps are
// idempotent per record; the scheduler is expected to run as a singleton.
type Scheduler struct {
	taskRepo   repository.TaskRepository
	signupRepo repository.SignupRepository
	mailer     mail.Mailer
	cron       *cron.Cron
	now        func() time.Time
	log        *zap.Logger

	statusSchedule   string
	reminderSchedule string
}

// Option customises the Scheduler.
type Option func(*Scheduler)

// WithCron injects a preconfigured cron instance, primarily for testing.
func WithCron(c *cron.Cron) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.cron = c
		}
	}
}

// WithNow overrides the clock used for date comparisons.
func WithNow(now func() time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

// WithStatusSchedule overrides the cron specification for the status sweep.
func WithStatusSchedule(spec string) Option {
	return func(s *Scheduler) {
		if spec != "" {
			s.statusSchedule = spec
		}
	}
}

// WithReminderSchedule overrides the cron specification for the reminder sweep.
func WithReminderSchedule(spec string) Option {
	return func(s *Scheduler) {
		if spec != "" {
			s.reminderSchedule = spec
		}
	}
}

// New constructs a Scheduler. A nil mailer disables the reminder sweep;
// the status sweep only needs the task repository.
func New(taskRepo repository.TaskRepository, signupRepo repository.SignupRepository, mailer mail.Mailer, opts ...Option) *Scheduler {
	s := &Scheduler{
		taskRepo:         taskRepo,
		signupRepo:       signupRepo,
		mailer:           mailer,
		now:              time.Now,
		log:              logger.WithModule("scheduler"),
		statusSchedule:   defaultStatusSpec,
		reminderSchedule: defaultReminderSpec,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cron == nil {
		s.cron = cron.New(cron.WithLogger(cron.DiscardLogger))
	}

	return s
}

// Start registers the sweep jobs with the cron scheduler and launches it.
func (s *Scheduler) Start() error {
	if s.taskRepo != nil {
		if _, err := s.cron.AddFunc(s.statusSchedule, func() {
			if _, err := s.SweepTaskStatuses(context.Background()); err != nil {
				s.log.Warn("status sweep failed", zap.Error(err))
			}
		}); err != nil {
			return err
		}
	}

	if s.signupRepo != nil && s.mailer != nil {
		if _, err := s.cron.AddFunc(s.reminderSchedule, func() {
			if _, err := s.SweepReminders(context.Background()); err != nil {
				s.log.Warn("reminder sweep failed", zap.Error(err))
			}
		}); err != nil {
			return err
		}
	}

	s.cron.Start()
	return nil
}

// Stop halts the underlying scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	if s.cron == nil {
		return context.Background()
	}
	return s.cron.Stop()
}

// RunOnce executes both sweeps sequentially. Used by the manual trigger
// endpoint and in tests.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var errs error

	if s.taskRepo != nil {
		if _, err := s.SweepTaskStatuses(ctx); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if s.signupRepo != nil && s.mailer != nil {
		if _, err := s.SweepReminders(ctx); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}
