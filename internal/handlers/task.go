package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/communityworks/volunteer-platform/internal/dto"
	apierrors "github.com/communityworks/volunteer-platform/internal/errors"
	"github.com/communityworks/volunteer-platform/internal/middleware"
	"github.com/communityworks/volunteer-platform/internal/models"
	"github.com/communityworks/volunteer-platform/internal/repository"
	"github.com/communityworks/volunteer-platform/internal/services"
	"github.com/communityworks/volunteer-platform/internal/utils"
)

// TaskHandler coordinates the task lifecycle HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns tasks matching the optional search filters.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := repository.TaskFilter{
		Title:       c.Query("title"),
		Location:    c.Query("location"),
		Description: c.Query("description"),
		Page:        params.Page,
		PageSize:    params.Limit,
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := models.TaskStatus(statusStr)
		filter.Status = &status
	}

	tasks, total, err := h.taskService.SearchTasks(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, params.Page, params.Limit, total))
}

// GetTask returns a specific task by ID.
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// ListOrganizationTasks returns the tasks posted by an organization.
func (h *TaskHandler) ListOrganizationTasks(c *gin.Context) {
	organizationID, ok := parseIDParam(c, "organizationId")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListOrganizationTasks(organizationID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// CreateTask creates a new task for the authenticated organization.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	organizationID, ok := h.requireOwnOrganization(c)
	if !ok {
		return
	}

	type CreateTaskRequest struct {
		Title                string   `json:"title" binding:"required,max=255"`
		Description          string   `json:"description" binding:"required"`
		Location             string   `json:"location" binding:"max=100"`
		EventDate            string   `json:"event_date" binding:"required,datetime=2006-01-02"`
		ApplicationDeadline  string   `json:"application_deadline" binding:"required,datetime=2006-01-02"`
		CancellationDeadline string   `json:"cancellation_deadline" binding:"required,datetime=2006-01-02"`
		Skills               []string `json:"skills"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	eventDate, _ := time.Parse(dto.DateFormat, req.EventDate)
	applicationDeadline, _ := time.Parse(dto.DateFormat, req.ApplicationDeadline)
	cancellationDeadline, _ := time.Parse(dto.DateFormat, req.CancellationDeadline)

	task, err := h.taskService.CreateTask(organizationID, services.CreateTaskInput{
		Title:                req.Title,
		Description:          req.Description,
		Location:             req.Location,
		EventDate:            eventDate,
		ApplicationDeadline:  applicationDeadline,
		CancellationDeadline: cancellationDeadline,
		Skills:               req.Skills,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask partially updates an existing task. Only the fields present
// in the request body are applied.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	organizationID, ok := h.requireOwnOrganization(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Title                *string `json:"title" binding:"omitempty,max=255"`
		Description          *string `json:"description"`
		Location             *string `json:"location" binding:"omitempty,max=100"`
		EventDate            *string `json:"event_date" binding:"omitempty,datetime=2006-01-02"`
		ApplicationDeadline  *string `json:"application_deadline" binding:"omitempty,datetime=2006-01-02"`
		CancellationDeadline *string `json:"cancellation_deadline" binding:"omitempty,datetime=2006-01-02"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	}
	if req.EventDate != nil {
		eventDate, _ := time.Parse(dto.DateFormat, *req.EventDate)
		input.EventDate = &eventDate
	}
	if req.ApplicationDeadline != nil {
		deadline, _ := time.Parse(dto.DateFormat, *req.ApplicationDeadline)
		input.ApplicationDeadline = &deadline
	}
	if req.CancellationDeadline != nil {
		deadline, _ := time.Parse(dto.DateFormat, *req.CancellationDeadline)
		input.CancellationDeadline = &deadline
	}

	task, err := h.taskService.UpdateTask(organizationID, taskID, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask removes a task without signups.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	organizationID, ok := h.requireOwnOrganization(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(organizationID, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

// CancelTask marks a task as CANCELLED.
func (h *TaskHandler) CancelTask(c *gin.Context) {
	organizationID, ok := h.requireOwnOrganization(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	task, err := h.taskService.CancelTask(organizationID, taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// requireOwnOrganization checks that the authenticated user matches the
// organizationId path parameter.
func (h *TaskHandler) requireOwnOrganization(c *gin.Context) (uint64, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return 0, false
	}

	organizationID, ok := parseIDParam(c, "organizationId")
	if !ok {
		return 0, false
	}

	if organizationID != userID {
		apierrors.Forbidden(c, "You can only manage your own tasks")
		return 0, false
	}

	return organizationID, true
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrganizationNotFound),
		errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotTaskOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTaskHasSignups):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrDeadlineInPast),
		errors.Is(err, services.ErrDeadlineAfterEvent):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
