package dto

import (
	"time"

	"github.com/communityworks/volunteer-platform/internal/models"
)

// RatingDTO represents a rating in API responses
type RatingDTO struct {
	ID            uint64    `json:"id"`
	RatedByUserID uint64    `json:"rated_by_user_id"`
	RatedUserID   uint64    `json:"rated_user_id"`
	Score         int       `json:"score"`
	Review        string    `json:"review"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToRatingDTO converts a Rating model to RatingDTO
func ToRatingDTO(rating models.Rating) RatingDTO {
	return RatingDTO{
		ID:            rating.ID,
		RatedByUserID: rating.RatedByUserID,
		RatedUserID:   rating.RatedUserID,
		Score:         rating.Score,
		Review:        rating.Review,
		CreatedAt:     rating.CreatedAt,
		UpdatedAt:     rating.UpdatedAt,
	}
}

// ToRatingDTOs converts a slice of Rating models
func ToRatingDTOs(ratings []models.Rating) []RatingDTO {
	dtos := make([]RatingDTO, len(ratings))
	for i, rating := range ratings {
		dtos[i] = ToRatingDTO(rating)
	}
	return dtos
}
