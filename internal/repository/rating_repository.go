package repository

import (
	"gorm.io/gorm"

	"github.com/communityworks/volunteer-platform/internal/models"
)

// GormRatingRepository is a GORM implementation of RatingRepository
type GormRatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &GormRatingRepository{db: db}
}

// Create creates a new rating
func (r *GormRatingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// FindByID finds a rating by ID, skipping tombstoned rows
func (r *GormRatingRepository) FindByID(id uint64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.Where("is_deleted = ?", false).
		First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListForUser lists ratings received by a user
func (r *GormRatingRepository) ListForUser(ratedUserID uint64) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.Where("rated_user_id = ? AND is_deleted = ?", ratedUserID, false).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// ListByUser lists ratings authored by a user
func (r *GormRatingRepository) ListByUser(ratedByUserID uint64) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.Where("rated_by_user_id = ? AND is_deleted = ?", ratedByUserID, false).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// Update persists changes to a rating
func (r *GormRatingRepository) Update(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

// Delete tombstones a rating. The ledger keeps the row for audit.
func (r *GormRatingRepository) Delete(id uint64) error {
	return r.db.Model(&models.Rating{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
