package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/communityworks/volunteer-platform/internal/models"
	"github.com/communityworks/volunteer-platform/internal/repository"
	"github.com/communityworks/volunteer-platform/internal/utils"
)

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrNotTaskOwner         = errors.New("task does not belong to this organization")
	ErrTaskHasSignups       = errors.New("task has signups and can only be cancelled")
	ErrDeadlineInPast       = errors.New("deadlines must not be in the past")
	ErrDeadlineAfterEvent   = errors.New("deadlines must not fall after the event date")
)

// TaskService owns task CRUD, deadline validation and the explicit
// cancellation transition. The date-driven transitions live in the
// scheduler package.
type TaskService struct {
	taskRepo   repository.TaskRepository
	signupRepo repository.SignupRepository
	userRepo   repository.UserRepository
	skills     *SkillService
	now        func() time.Time
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	signupRepo repository.SignupRepository,
	userRepo repository.UserRepository,
	skills *SkillService,
) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		signupRepo: signupRepo,
		userRepo:   userRepo,
		skills:     skills,
		now:        time.Now,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title                string
	Description          string
	Location             string
	EventDate            time.Time
	ApplicationDeadline  time.Time
	CancellationDeadline time.Time
	Skills               []string
}

// UpdateTaskInput represents input for partially updating a task. Only
// non-nil fields are applied.
type UpdateTaskInput struct {
	Title                *string
	Description          *string
	Location             *string
	EventDate            *time.Time
	ApplicationDeadline  *time.Time
	CancellationDeadline *time.Time
}

// CreateTask validates deadline ordering, resolves the named skills and
// persists a new AVAILABLE task for the organization.
func (s *TaskService) CreateTask(organizationID uint64, input CreateTaskInput) (*models.Task, error) {
	if _, err := s.userRepo.FindOrganizationByID(organizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	today := utils.DateOnly(s.now())
	applicationDeadline := utils.DateOnly(input.ApplicationDeadline)
	cancellationDeadline := utils.DateOnly(input.CancellationDeadline)
	eventDate := utils.DateOnly(input.EventDate)

	if applicationDeadline.Before(today) || cancellationDeadline.Before(today) {
		return nil, ErrDeadlineInPast
	}
	if applicationDeadline.After(eventDate) || cancellationDeadline.After(eventDate) {
		return nil, ErrDeadlineAfterEvent
	}

	skills, err := s.skills.ResolveAll(input.Skills)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:                input.Title,
		Description:          input.Description,
		Location:             input.Location,
		EventDate:            eventDate,
		ApplicationDeadline:  applicationDeadline,
		CancellationDeadline: cancellationDeadline,
		Status:               models.TaskStatusAvailable,
		OrganizationID:       organizationID,
		Skills:               skills,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Skills")
}

// UpdateTask applies the non-nil fields of the input over an existing
// task. Deadline ordering is not re-validated on partial update; the full
// check only runs at creation time.
func (s *TaskService) UpdateTask(organizationID, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	if _, err := s.userRepo.FindOrganizationByID(organizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Location != nil {
		task.Location = *input.Location
	}
	if input.EventDate != nil {
		task.EventDate = utils.DateOnly(*input.EventDate)
	}
	if input.ApplicationDeadline != nil {
		task.ApplicationDeadline = utils.DateOnly(*input.ApplicationDeadline)
	}
	if input.CancellationDeadline != nil {
		task.CancellationDeadline = utils.DateOnly(*input.CancellationDeadline)
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Skills")
}

// DeleteTask removes a task that belongs to the organization and has no
// signups. Once volunteers have signed up, cancellation is the only way
// to withdraw the task.
func (s *TaskService) DeleteTask(organizationID, taskID uint64) error {
	if _, err := s.userRepo.FindOrganizationByID(organizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to find organization: %w", err)
	}

	task, err := s.findTask(taskID)
	if err != nil {
		return err
	}

	if task.OrganizationID != organizationID {
		return ErrNotTaskOwner
	}

	signups, err := s.signupRepo.ListByTask(taskID)
	if err != nil {
		return fmt.Errorf("failed to list signups: %w", err)
	}
	if len(signups) > 0 {
		return ErrTaskHasSignups
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// CancelTask sets the task status to CANCELLED. It works regardless of
// existing signups; ownership is still checked.
func (s *TaskService) CancelTask(organizationID, taskID uint64) (*models.Task, error) {
	if _, err := s.userRepo.FindOrganizationByID(organizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	if task.OrganizationID != organizationID {
		return nil, ErrNotTaskOwner
	}

	task.Status = models.TaskStatusCancelled
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to cancel task: %w", err)
	}

	return task, nil
}

// GetTask returns a task with its skills and signups.
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Skills", "Signups")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// ListTasks returns every task on the platform.
func (s *TaskService) ListTasks() ([]models.Task, error) {
	tasks, err := s.taskRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListOrganizationTasks returns the tasks posted by an organization.
func (s *TaskService) ListOrganizationTasks(organizationID uint64) ([]models.Task, error) {
	if _, err := s.userRepo.FindOrganizationByID(organizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	tasks, err := s.taskRepo.ListByOrganization(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// SearchTasks filters tasks by title, location and description fragments.
func (s *TaskService) SearchTasks(filter repository.TaskFilter) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.Search(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search tasks: %w", err)
	}
	return tasks, total, nil
}

func (s *TaskService) findTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}
