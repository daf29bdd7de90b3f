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

// SignupHandler coordinates the signup HTTP handlers.
type SignupHandler struct {
	signupService *services.SignupService
}

// NewSignupHandler creates a new SignupHandler.
func NewSignupHandler(signupService *services.SignupService) *SignupHandler {
	return &SignupHandler{
		signupService: signupService,
	}
}

// SignUp registers the authenticated volunteer for a task. Signing up for
// a task the volunteer already holds returns the existing signup with 200
// instead of 201.
func (h *SignupHandler) SignUp(c *gin.Context) {
	volunteerID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	signup, created, err := h.signupService.SignUp(volunteerID, taskID)
	if err != nil {
		respondSignupError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToSignupDTO(*signup))
}

// CancelSignup removes the authenticated volunteer's signup for a task.
func (h *SignupHandler) CancelSignup(c *gin.Context) {
	volunteerID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	if err := h.signupService.CancelSignup(volunteerID, taskID); err != nil {
		respondSignupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Signup cancelled successfully",
	})
}

// CancelSignupByID removes a signup addressed by its own ID.
func (h *SignupHandler) CancelSignupByID(c *gin.Context) {
	signupID, ok := parseIDParam(c, "signupId")
	if !ok {
		return
	}

	if err := h.signupService.CancelSignupByID(signupID); err != nil {
		respondSignupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Signup cancelled successfully",
	})
}

// ListTaskSignups returns the signups for a task.
func (h *SignupHandler) ListTaskSignups(c *gin.Context) {
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	signups, err := h.signupService.ListByTask(taskID)
	if err != nil {
		respondSignupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"signups": dto.ToSignupDTOs(signups)})
}

// ListMySignups returns the authenticated volunteer's signups.
func (h *SignupHandler) ListMySignups(c *gin.Context) {
	volunteerID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	signups, err := h.signupService.ListByVolunteer(volunteerID)
	if err != nil {
		respondSignupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"signups": dto.ToSignupDTOs(signups)})
}

// GetReminderStatus reports the reminder state of every signup.
func (h *SignupHandler) GetReminderStatus(c *gin.Context) {
	statuses, err := h.signupService.GetReminderStatus()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch reminder status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminders": statuses})
}

func respondSignupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrVolunteerNotFound),
		errors.Is(err, services.ErrSignupNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskNotAvailable),
		errors.Is(err, services.ErrCancellationDeadlinePassed):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
