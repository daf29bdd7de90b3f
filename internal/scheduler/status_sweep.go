package scheduler

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/communityworks/volunteer-platform/internal/models"
	"github.com/communityworks/volunteer-platform/internal/utils"
)

// SweepTaskStatuses advances task statuses from the calendar date and
// returns the number of tasks whose status changed. The transitions are
// monotonic guards on the same date comparison, so re-running the sweep
// on the same day is a no-op.
//
// An AVAILABLE task whose application deadline has passed becomes
// APPLICATION_ENDED. Any task that is not ENDED and whose event date has
// passed becomes ENDED; the guard does not exclude CANCELLED, so a
// cancelled task whose event date passes ends up ENDED as well.
func (s *Scheduler) SweepTaskStatuses(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	tasks, err := s.taskRepo.FindAll()
	if err != nil {
		return 0, fmt.Errorf("status sweep: load tasks: %w", err)
	}

	today := utils.DateOnly(s.now())
	changed := 0
	var errs error

	for i := range tasks {
		task := &tasks[i]
		previous := task.Status

		if task.Status == models.TaskStatusAvailable &&
			utils.DateOnly(task.ApplicationDeadline).Before(today) {
			task.Status = models.TaskStatusApplicationEnded
		}

		if task.Status != models.TaskStatusEnded &&
			utils.DateOnly(task.EventDate).Before(today) {
			task.Status = models.TaskStatusEnded
		}

		if task.Status == previous {
			continue
		}

		if err := s.taskRepo.Update(task); err != nil {
			s.log.Warn("status sweep: persist failed",
				zap.Uint64("task_id", task.ID),
				zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}

		s.log.Info("task status advanced",
			zap.Uint64("task_id", task.ID),
			zap.String("from", string(previous)),
			zap.String("to", string(task.Status)))
		changed++
	}

	return changed, errs
}
