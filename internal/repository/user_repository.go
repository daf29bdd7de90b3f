package repository

import (
	"gorm.io/gorm"

	"github.com/communityworks/volunteer-platform/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID with optional preloading
func (r *GormUserRepository) FindByID(id uint64, preload ...string) (*models.User, error) {
	var user models.User
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindOrganizationByID finds a user constrained to the organization type
func (r *GormUserRepository) FindOrganizationByID(id uint64) (*models.User, error) {
	return r.findByIDAndType(id, models.UserTypeOrganization)
}

// FindVolunteerByID finds a user constrained to the volunteer type
func (r *GormUserRepository) FindVolunteerByID(id uint64) (*models.User, error) {
	return r.findByIDAndType(id, models.UserTypeVolunteer)
}

func (r *GormUserRepository) findByIDAndType(id uint64, userType models.UserType) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ? AND user_type = ?", id, userType).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update persists changes to a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// ReplaceSkills replaces a volunteer's skill associations
func (r *GormUserRepository) ReplaceSkills(user *models.User, skills []models.Skill) error {
	return r.db.Model(user).Association("Skills").Replace(skills)
}

// Delete removes a user
func (r *GormUserRepository) Delete(id uint64) error {
	return r.db.Delete(&models.User{}, id).Error
}
