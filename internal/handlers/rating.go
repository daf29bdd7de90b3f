package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/communityworks/volunteer-platform/internal/dto"
	apierrors "github.com/communityworks/volunteer-platform/internal/errors"
	"github.com/communityworks/volunteer-platform/internal/middleware"
	"github.com/communityworks/volunteer-platform/internal/services"
)

// RatingHandler coordinates the rating HTTP handlers.
type RatingHandler struct {
	ratingService *services.RatingService
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(ratingService *services.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// SubmitRating records a review authored by the authenticated user.
func (h *RatingHandler) SubmitRating(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SubmitRatingRequest struct {
		RatedUserID uint64 `json:"rated_user_id" binding:"required"`
		Score       int    `json:"score" binding:"required,gte=1,lte=5"`
		Review      string `json:"review"`
	}

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	rating, err := h.ratingService.SubmitRating(services.SubmitRatingInput{
		RatedByUserID: userID,
		RatedUserID:   req.RatedUserID,
		Score:         req.Score,
		Review:        req.Review,
	})
	if err != nil {
		respondRatingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRatingDTO(*rating))
}

// EditRating updates the score and review of an existing rating.
func (h *RatingHandler) EditRating(c *gin.Context) {
	ratingID, ok := parseIDParam(c, "ratingId")
	if !ok {
		return
	}

	type EditRatingRequest struct {
		Score  int    `json:"score" binding:"required,gte=1,lte=5"`
		Review string `json:"review"`
	}

	var req EditRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	rating, err := h.ratingService.EditRating(ratingID, req.Score, req.Review)
	if err != nil {
		respondRatingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRatingDTO(*rating))
}

// GetRating returns a rating by ID.
func (h *RatingHandler) GetRating(c *gin.Context) {
	ratingID, ok := parseIDParam(c, "ratingId")
	if !ok {
		return
	}

	rating, err := h.ratingService.GetRating(ratingID)
	if err != nil {
		respondRatingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRatingDTO(*rating))
}

// ListRatingsForUser returns the ratings a user has received.
func (h *RatingHandler) ListRatingsForUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	ratings, err := h.ratingService.ListRatingsForUser(userID)
	if err != nil {
		respondRatingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": dto.ToRatingDTOs(ratings)})
}

// ListRatingsByUser returns the ratings a user has authored.
func (h *RatingHandler) ListRatingsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	ratings, err := h.ratingService.ListRatingsByUser(userID)
	if err != nil {
		respondRatingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": dto.ToRatingDTOs(ratings)})
}

// DeleteRating removes a rating.
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	ratingID, ok := parseIDParam(c, "ratingId")
	if !ok {
		return
	}

	if err := h.ratingService.DeleteRating(ratingID); err != nil {
		respondRatingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Rating deleted successfully",
	})
}

func respondRatingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRatingNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrRatingNotAllowed):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
