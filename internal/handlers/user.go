package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/communityworks/volunteer-platform/internal/dto"
	apierrors "github.com/communityworks/volunteer-platform/internal/errors"
	"github.com/communityworks/volunteer-platform/internal/middleware"
	"github.com/communityworks/volunteer-platform/internal/models"
	"github.com/communityworks/volunteer-platform/internal/services"
)

// UserHandler coordinates directory lookups and account deletion.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetOrganization returns an organization profile.
func (h *UserHandler) GetOrganization(c *gin.Context) {
	organizationID, ok := parseIDParam(c, "organizationId")
	if !ok {
		return
	}

	org, err := h.userService.GetOrganization(organizationID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*org))
}

// GetVolunteer returns a volunteer profile.
func (h *UserHandler) GetVolunteer(c *gin.Context) {
	volunteerID, ok := parseIDParam(c, "volunteerId")
	if !ok {
		return
	}

	volunteer, err := h.userService.GetVolunteer(volunteerID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*volunteer))
}

// DeleteAccount removes the authenticated user's account together with
// their dependent records.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	userType, _ := middleware.GetUserType(c)
	var err error
	if userType == models.UserTypeOrganization {
		err = h.userService.DeleteOrganization(userID)
	} else {
		err = h.userService.DeleteVolunteer(userID)
	}
	if err != nil {
		respondUserError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()

	c.JSON(http.StatusOK, gin.H{
		"message": "Account deleted successfully",
	})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrganizationNotFound),
		errors.Is(err, services.ErrVolunteerNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
