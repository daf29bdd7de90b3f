package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/communityworks/volunteer-platform/internal/models"
	"github.com/communityworks/volunteer-platform/internal/repository"
)

var (
	ErrRatingNotFound   = errors.New("rating not found")
	ErrRatingNotAllowed = errors.New("rating is not allowed yet")
)

// RatingService is the append-mostly ledger of post-task reviews between
// the two parties.
type RatingService struct {
	ratingRepo repository.RatingRepository
}

// NewRatingService creates a new RatingService
func NewRatingService(ratingRepo repository.RatingRepository) *RatingService {
	return &RatingService{ratingRepo: ratingRepo}
}

// SubmitRatingInput represents input for submitting a rating. The score
// bound is enforced by request binding before it reaches here.
type SubmitRatingInput struct {
	RatedByUserID uint64
	RatedUserID   uint64
	Score         int
	Review        string
}

// SubmitRating records a new review after passing the canRate gate.
// Repeated ratings between the same pair are permitted.
func (s *RatingService) SubmitRating(input SubmitRatingInput) (*models.Rating, error) {
	rating := &models.Rating{
		RatedByUserID: input.RatedByUserID,
		RatedUserID:   input.RatedUserID,
		Score:         input.Score,
		Review:        input.Review,
	}

	if !s.canRate(rating) {
		return nil, ErrRatingNotAllowed
	}

	if err := s.ratingRepo.Create(rating); err != nil {
		return nil, fmt.Errorf("failed to submit rating: %w", err)
	}
	return rating, nil
}

// canRate is meant to verify that the rated task's event date has passed.
// Ratings do not yet reference a task, so there is nothing to check the
// date against and the gate currently permits every submission.
func (s *RatingService) canRate(_ *models.Rating) bool {
	return true
}

// EditRating updates the score and review of an existing rating. The
// canRate gate is not re-checked on edit.
func (s *RatingService) EditRating(ratingID uint64, score int, review string) (*models.Rating, error) {
	rating, err := s.findRating(ratingID)
	if err != nil {
		return nil, err
	}

	rating.Score = score
	rating.Review = review

	if err := s.ratingRepo.Update(rating); err != nil {
		return nil, fmt.Errorf("failed to update rating: %w", err)
	}
	return rating, nil
}

// GetRating returns a rating by ID.
func (s *RatingService) GetRating(ratingID uint64) (*models.Rating, error) {
	return s.findRating(ratingID)
}

// ListRatingsForUser returns the ratings a user has received.
func (s *RatingService) ListRatingsForUser(ratedUserID uint64) ([]models.Rating, error) {
	ratings, err := s.ratingRepo.ListForUser(ratedUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}

// ListRatingsByUser returns the ratings a user has authored.
func (s *RatingService) ListRatingsByUser(ratedByUserID uint64) ([]models.Rating, error) {
	ratings, err := s.ratingRepo.ListByUser(ratedByUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}

// DeleteRating removes a rating.
func (s *RatingService) DeleteRating(ratingID uint64) error {
	if _, err := s.findRating(ratingID); err != nil {
		return err
	}

	if err := s.ratingRepo.Delete(ratingID); err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	return nil
}

func (s *RatingService) findRating(ratingID uint64) (*models.Rating, error) {
	rating, err := s.ratingRepo.FindByID(ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, fmt.Errorf("failed to find rating: %w", err)
	}
	return rating, nil
}
