package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/communityworks/volunteer-platform/internal/models"
)

// GormSignupRepository is a GORM implementation of SignupRepository
type GormSignupRepository struct {
	db *gorm.DB
}

// NewSignupRepository creates a new SignupRepository
func NewSignupRepository(db *gorm.DB) SignupRepository {
	return &GormSignupRepository{db: db}
}

// Create creates a new signup
func (r *GormSignupRepository) Create(signup *models.TaskSignup) error {
	return r.db.Create(signup).Error
}

// FindByID finds a signup by ID with optional preloading
func (r *GormSignupRepository) FindByID(id uint64, preload ...string) (*models.TaskSignup, error) {
	var signup models.TaskSignup
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&signup, id).Error; err != nil {
		return nil, err
	}

	return &signup, nil
}

// FindByTaskAndVolunteer finds the signup for a (task, volunteer) pair
func (r *GormSignupRepository) FindByTaskAndVolunteer(taskID, volunteerID uint64) (*models.TaskSignup, error) {
	var signup models.TaskSignup
	if err := r.db.Where("task_id = ? AND volunteer_id = ?", taskID, volunteerID).
		First(&signup).Error; err != nil {
		return nil, err
	}
	return &signup, nil
}

// ListByTask lists signups for a task
func (r *GormSignupRepository) ListByTask(taskID uint64) ([]models.TaskSignup, error) {
	var signups []models.TaskSignup
	if err := r.db.Where("task_id = ?", taskID).
		Preload("Volunteer").
		Find(&signups).Error; err != nil {
		return nil, err
	}
	return signups, nil
}

// ListByVolunteer lists a volunteer's signups
func (r *GormSignupRepository) ListByVolunteer(volunteerID uint64) ([]models.TaskSignup, error) {
	var signups []models.TaskSignup
	if err := r.db.Where("volunteer_id = ?", volunteerID).
		Preload("Task").
		Find(&signups).Error; err != nil {
		return nil, err
	}
	return signups, nil
}

// ListAll returns every signup
func (r *GormSignupRepository) ListAll() ([]models.TaskSignup, error) {
	var signups []models.TaskSignup
	if err := r.db.Preload("Task").Preload("Volunteer").Find(&signups).Error; err != nil {
		return nil, err
	}
	return signups, nil
}

// Exists reports whether a volunteer is signed up for a task
func (r *GormSignupRepository) Exists(volunteerID, taskID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.TaskSignup{}).
		Where("volunteer_id = ? AND task_id = ?", volunteerID, taskID).
		Count(&count).Error
	return count > 0, err
}

// ListDueForReminder returns signups whose task takes place on the given
// date and whose reminder has not been sent yet
func (r *GormSignupRepository) ListDueForReminder(eventDate time.Time) ([]models.TaskSignup, error) {
	var signups []models.TaskSignup
	err := r.db.
		Joins("JOIN tasks ON tasks.id = task_signups.task_id").
		Where("tasks.event_date = ? AND task_signups.reminder_sent = ? AND tasks.deleted_at IS NULL", eventDate, false).
		Preload("Task").
		Preload("Volunteer").
		Find(&signups).Error
	if err != nil {
		return nil, err
	}
	return signups, nil
}

// Update persists changes to a signup
func (r *GormSignupRepository) Update(signup *models.TaskSignup) error {
	return r.db.Save(signup).Error
}

// Delete removes a signup
func (r *GormSignupRepository) Delete(id uint64) error {
	return r.db.Delete(&models.TaskSignup{}, id).Error
}

// DeleteByTask removes all signups for a task
func (r *GormSignupRepository) DeleteByTask(taskID uint64) error {
	return r.db.Where("task_id = ?", taskID).Delete(&models.TaskSignup{}).Error
}

// DeleteByVolunteer removes all signups of a volunteer
func (r *GormSignupRepository) DeleteByVolunteer(volunteerID uint64) error {
	return r.db.Where("volunteer_id = ?", volunteerID).Delete(&models.TaskSignup{}).Error
}
