package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/communityworks/volunteer-platform/internal/models"
	"github.com/communityworks/volunteer-platform/internal/repository"
)

// UserService covers directory lookups, volunteer skill management and
// the account deletion cascades.
type UserService struct {
	userRepo   repository.UserRepository
	taskRepo   repository.TaskRepository
	signupRepo repository.SignupRepository
	skills     *SkillService
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
	signupRepo repository.SignupRepository,
	skills *SkillService,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		taskRepo:   taskRepo,
		signupRepo: signupRepo,
		skills:     skills,
	}
}

// GetOrganization returns an organization by ID.
func (s *UserService) GetOrganization(id uint64) (*models.User, error) {
	org, err := s.userRepo.FindOrganizationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	return org, nil
}

// GetVolunteer returns a volunteer by ID.
func (s *UserService) GetVolunteer(id uint64) (*models.User, error) {
	volunteer, err := s.userRepo.FindVolunteerByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("failed to find volunteer: %w", err)
	}
	return volunteer, nil
}

// UpdateVolunteerSkills replaces a volunteer's skill set with the named
// skills, creating catalog entries as needed.
func (s *UserService) UpdateVolunteerSkills(volunteerID uint64, names []string) (*models.User, error) {
	volunteer, err := s.GetVolunteer(volunteerID)
	if err != nil {
		return nil, err
	}

	skills, err := s.skills.ResolveAll(names)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.ReplaceSkills(volunteer, skills); err != nil {
		return nil, fmt.Errorf("failed to update skills: %w", err)
	}

	return s.userRepo.FindByID(volunteerID, "Skills")
}

// DeleteVolunteer removes a volunteer account along with their signups.
func (s *UserService) DeleteVolunteer(volunteerID uint64) error {
	if _, err := s.GetVolunteer(volunteerID); err != nil {
		return err
	}

	if err := s.signupRepo.DeleteByVolunteer(volunteerID); err != nil {
		return fmt.Errorf("failed to delete signups: %w", err)
	}
	if err := s.userRepo.Delete(volunteerID); err != nil {
		return fmt.Errorf("failed to delete volunteer: %w", err)
	}
	return nil
}

// DeleteOrganization removes an organization account together with its
// tasks and those tasks' signups.
func (s *UserService) DeleteOrganization(organizationID uint64) error {
	if _, err := s.GetOrganization(organizationID); err != nil {
		return err
	}

	tasks, err := s.taskRepo.ListByOrganization(organizationID)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	for _, task := range tasks {
		if err := s.signupRepo.DeleteByTask(task.ID); err != nil {
			return fmt.Errorf("failed to delete signups for task %d: %w", task.ID, err)
		}
		if err := s.taskRepo.Delete(task.ID); err != nil {
			return fmt.Errorf("failed to delete task %d: %w", task.ID, err)
		}
	}

	if err := s.userRepo.Delete(organizationID); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	return nil
}
