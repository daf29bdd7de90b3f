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

// SkillHandler coordinates the skill catalog HTTP handlers.
type SkillHandler struct {
	skillService *services.SkillService
	userService  *services.UserService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(skillService *services.SkillService, userService *services.UserService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
		userService:  userService,
	}
}

// ListSkills returns the whole skill catalog.
func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillService.ListSkills()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch skills")
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": dto.ToSkillDTOs(skills)})
}

// GetSkill returns a skill by ID.
func (h *SkillHandler) GetSkill(c *gin.Context) {
	skillID, ok := parseIDParam(c, "skillId")
	if !ok {
		return
	}

	skill, err := h.skillService.GetSkill(skillID)
	if err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSkillDTO(*skill))
}

// GetSkillByName returns the skill with the given name, creating it on
// first reference.
func (h *SkillHandler) GetSkillByName(c *gin.Context) {
	skill, err := h.skillService.Resolve(c.Param("name"))
	if err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSkillDTO(*skill))
}

// CreateSkill adds a skill to the catalog, returning the existing entry
// when the name is already present.
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	type CreateSkillRequest struct {
		Name string `json:"name" binding:"required,max=100"`
	}

	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	skill, err := h.skillService.Resolve(req.Name)
	if err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSkillDTO(*skill))
}

// DeleteSkill removes a skill from the catalog.
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	skillID, ok := parseIDParam(c, "skillId")
	if !ok {
		return
	}

	if err := h.skillService.DeleteSkill(skillID); err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Skill deleted successfully",
	})
}

// UpdateMySkills replaces the authenticated volunteer's skill set.
func (h *SkillHandler) UpdateMySkills(c *gin.Context) {
	volunteerID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateSkillsRequest struct {
		Skills []string `json:"skills" binding:"required"`
	}

	var req UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	volunteer, err := h.userService.UpdateVolunteerSkills(volunteerID, req.Skills)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*volunteer))
}

func respondSkillError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSkillNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSkillNameRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
