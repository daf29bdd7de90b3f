package repository

import (
	"gorm.io/gorm"

	"github.com/communityworks/volunteer-platform/internal/models"
)

// GormSkillRepository is a GORM implementation of SkillRepository
type GormSkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &GormSkillRepository{db: db}
}

// Create creates a new skill
func (r *GormSkillRepository) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// FindByID finds a skill by ID
func (r *GormSkillRepository) FindByID(id uint64) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// FindByName finds a skill by its normalized name
func (r *GormSkillRepository) FindByName(name string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Where("name = ?", name).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// ListAll returns every skill
func (r *GormSkillRepository) ListAll() ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.Order("name ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// Delete removes a skill
func (r *GormSkillRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Skill{}, id).Error
}
