package repository

import (
	"time"

	"github.com/communityworks/volunteer-platform/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// FindAll returns every task; the daily status sweep iterates this
	FindAll() ([]models.Task, error)

	// ListByOrganization lists the tasks posted by an organization
	ListByOrganization(organizationID uint64) ([]models.Task, error)

	// Search retrieves tasks with filtering and pagination
	Search(filter TaskFilter) ([]models.Task, int64, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// Delete removes a task together with its signups and skill links
	Delete(id uint64) error
}

// TaskFilter holds filtering options for searching tasks
type TaskFilter struct {
	Title       string
	Location    string
	Description string
	Status      *models.TaskStatus
	Page        int
	PageSize    int
}

// SignupRepository defines the interface for task signup data access
type SignupRepository interface {
	// Create creates a new signup
	Create(signup *models.TaskSignup) error

	// FindByID finds a signup by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.TaskSignup, error)

	// FindByTaskAndVolunteer finds the signup for a (task, volunteer) pair
	FindByTaskAndVolunteer(taskID, volunteerID uint64) (*models.TaskSignup, error)

	// ListByTask lists signups for a task
	ListByTask(taskID uint64) ([]models.TaskSignup, error)

	// ListByVolunteer lists a volunteer's signups
	ListByVolunteer(volunteerID uint64) ([]models.TaskSignup, error)

	// ListAll returns every signup
	ListAll() ([]models.TaskSignup, error)

	// Exists reports whether a volunteer is signed up for a task
	Exists(volunteerID, taskID uint64) (bool, error)

	// ListDueForReminder returns signups whose task takes place on the
	// given date and whose reminder has not been sent yet
	ListDueForReminder(eventDate time.Time) ([]models.TaskSignup, error)

	// Update persists changes to a signup
	Update(signup *models.TaskSignup) error

	// Delete removes a signup
	Delete(id uint64) error

	// DeleteByTask removes all signups for a task
	DeleteByTask(taskID uint64) error

	// DeleteByVolunteer removes all signups of a volunteer
	DeleteByVolunteer(volunteerID uint64) error
}

// SkillRepository defines the interface for skill data access
type SkillRepository interface {
	// Create creates a new skill
	Create(skill *models.Skill) error

	// FindByID finds a skill by ID
	FindByID(id uint64) (*models.Skill, error)

	// FindByName finds a skill by its normalized name
	FindByName(name string) (*models.Skill, error)

	// ListAll returns every skill
	ListAll() ([]models.Skill, error)

	// Delete removes a skill
	Delete(id uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindOrganizationByID finds a user constrained to the organization type
	FindOrganizationByID(id uint64) (*models.User, error)

	// FindVolunteerByID finds a user constrained to the volunteer type
	FindVolunteerByID(id uint64) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// ReplaceSkills replaces a volunteer's skill associations
	ReplaceSkills(user *models.User, skills []models.Skill) error

	// Delete removes a user
	Delete(id uint64) error
}

// RatingRepository defines the interface for rating data access
type RatingRepository interface {
	// Create creates a new rating
	Create(rating *models.Rating) error

	// FindByID finds a rating by ID
	FindByID(id uint64) (*models.Rating, error)

	// ListForUser lists ratings received by a user
	ListForUser(ratedUserID uint64) ([]models.Rating, error)

	// ListByUser lists ratings authored by a user
	ListByUser(ratedByUserID uint64) ([]models.Rating, error)

	// Update persists changes to a rating
	Update(rating *models.Rating) error

	// Delete removes a rating
	Delete(id uint64) error
}
