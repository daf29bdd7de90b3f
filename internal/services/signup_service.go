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
	ErrVolunteerNotFound          = errors.New("volunteer not found")
	ErrSignupNotFound             = errors.New("signup not found")
	ErrTaskNotAvailable           = errors.New("task is not open for applications")
	ErrCancellationDeadlinePassed = errors.New("cancellation deadline has passed")
)

// SignupService owns the volunteer-to-task relation: one signup per
// (task, volunteer) pair, cancellable strictly before the task's
// cancellation deadline.
type SignupService struct {
	signupRepo repository.SignupRepository
	taskRepo   repository.TaskRepository
	userRepo   repository.UserRepository
	now        func() time.Time
}

// NewSignupService creates a new SignupService
func NewSignupService(
	signupRepo repository.SignupRepository,
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
) *SignupService {
	return &SignupService{
		signupRepo: signupRepo,
		taskRepo:   taskRepo,
		userRepo:   userRepo,
		now:        time.Now,
	}
}

// SignUp registers a volunteer for an AVAILABLE task. Signing up twice is
// not an error: the existing signup is returned and the created flag is
// false. The composite unique index on (task_id, volunteer_id) closes the
// window between the lookup and the insert.
func (s *SignupService) SignUp(volunteerID, taskID uint64) (*models.TaskSignup, bool, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrTaskNotFound
		}
		return nil, false, fmt.Errorf("failed to find task: %w", err)
	}

	if _, err := s.userRepo.FindVolunteerByID(volunteerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrVolunteerNotFound
		}
		return nil, false, fmt.Errorf("failed to find volunteer: %w", err)
	}

	if task.Status != models.TaskStatusAvailable {
		return nil, false, ErrTaskNotAvailable
	}

	existing, err := s.signupRepo.FindByTaskAndVolunteer(taskID, volunteerID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to look up signup: %w", err)
	}

	signup := &models.TaskSignup{
		TaskID:       taskID,
		VolunteerID:  volunteerID,
		SignupDate:   s.now(),
		ReminderSent: false,
	}
	if err := s.signupRepo.Create(signup); err != nil {
		return nil, false, fmt.Errorf("failed to create signup: %w", err)
	}

	return signup, true, nil
}

// CancelSignup removes a volunteer's signup, provided today is not past
// the task's cancellation deadline.
func (s *SignupService) CancelSignup(volunteerID, taskID uint64) error {
	signup, err := s.signupRepo.FindByTaskAndVolunteer(taskID, volunteerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSignupNotFound
		}
		return fmt.Errorf("failed to find signup: %w", err)
	}

	return s.cancel(signup)
}

// CancelSignupByID is the identity-addressed variant of CancelSignup.
func (s *SignupService) CancelSignupByID(signupID uint64) error {
	signup, err := s.signupRepo.FindByID(signupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSignupNotFound
		}
		return fmt.Errorf("failed to find signup: %w", err)
	}

	return s.cancel(signup)
}

func (s *SignupService) cancel(signup *models.TaskSignup) error {
	task, err := s.taskRepo.FindByID(signup.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	today := utils.DateOnly(s.now())
	if today.After(utils.DateOnly(task.CancellationDeadline)) {
		return ErrCancellationDeadlinePassed
	}

	if err := s.signupRepo.Delete(signup.ID); err != nil {
		return fmt.Errorf("failed to delete signup: %w", err)
	}
	return nil
}

// ListByTask returns the signups for a task.
func (s *SignupService) ListByTask(taskID uint64) ([]models.TaskSignup, error) {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	signups, err := s.signupRepo.ListByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list signups: %w", err)
	}
	return signups, nil
}

// ListByVolunteer returns a volunteer's signups.
func (s *SignupService) ListByVolunteer(volunteerID uint64) ([]models.TaskSignup, error) {
	if _, err := s.userRepo.FindVolunteerByID(volunteerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("failed to find volunteer: %w", err)
	}

	signups, err := s.signupRepo.ListByVolunteer(volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list signups: %w", err)
	}
	return signups, nil
}

// ListAll returns every signup on the platform.
func (s *SignupService) ListAll() ([]models.TaskSignup, error) {
	signups, err := s.signupRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list signups: %w", err)
	}
	return signups, nil
}

// IsSignedUp reports whether a volunteer is signed up for a task.
func (s *SignupService) IsSignedUp(volunteerID, taskID uint64) (bool, error) {
	exists, err := s.signupRepo.Exists(volunteerID, taskID)
	if err != nil {
		return false, fmt.Errorf("failed to check signup: %w", err)
	}
	return exists, nil
}

// ReminderStatus is an operational projection of a signup's reminder state.
type ReminderStatus struct {
	SignupID           uint64     `json:"signup_id"`
	TaskTitle          string     `json:"task_title"`
	VolunteerEmail     string     `json:"volunteer_email"`
	EventDate          time.Time  `json:"event_date"`
	ReminderSent       bool       `json:"reminder_sent"`
	LastReminderSentAt *time.Time `json:"last_reminder_sent_at"`
}

// GetReminderStatus reports the reminder state of every signup.
func (s *SignupService) GetReminderStatus() ([]ReminderStatus, error) {
	signups, err := s.signupRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list signups: %w", err)
	}

	statuses := make([]ReminderStatus, 0, len(signups))
	for _, signup := range signups {
		statuses = append(statuses, ReminderStatus{
			SignupID:           signup.ID,
			TaskTitle:          signup.Task.Title,
			VolunteerEmail:     signup.Volunteer.Email,
			EventDate:          signup.Task.EventDate,
			ReminderSent:       signup.ReminderSent,
			LastReminderSentAt: signup.LastReminderSentAt,
		})
	}
	return statuses, nil
}
