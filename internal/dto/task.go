package dto

import (
	"time"

	"github.com/communityworks/volunteer-platform/internal/models"
)

// DateFormat is the wire format for the date-only task fields.
const DateFormat = "2006-01-02"

// TaskDTO represents a task in API responses. The three calendar fields
// are date-only strings.
type TaskDTO struct {
	ID                   uint64            `json:"id"`
	Title                string            `json:"title"`
	Description          string            `json:"description"`
	Location             string            `json:"location"`
	EventDate            string            `json:"event_date"`
	ApplicationDeadline  string            `json:"application_deadline"`
	CancellationDeadline string            `json:"cancellation_deadline"`
	Status               models.TaskStatus `json:"status"`
	OrganizationID       uint64            `json:"organization_id"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
	Organization         *UserDTO          `json:"organization,omitempty"`
	Skills               []SkillDTO        `json:"skills,omitempty"`
	SignupCount          *int              `json:"signup_count,omitempty"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO `json:"tasks"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalCount int64     `json:"total_count"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:                   task.ID,
		Title:                task.Title,
		Description:          task.Description,
		Location:             task.Location,
		EventDate:            task.EventDate.Format(DateFormat),
		ApplicationDeadline:  task.ApplicationDeadline.Format(DateFormat),
		CancellationDeadline: task.CancellationDeadline.Format(DateFormat),
		Status:               task.Status,
		OrganizationID:       task.OrganizationID,
		CreatedAt:            task.CreatedAt,
		UpdatedAt:            task.UpdatedAt,
		Skills:               ToSkillDTOs(task.Skills),
	}

	// Include organization if preloaded
	if task.Organization.ID != 0 {
		org := ToUserDTO(task.Organization)
		dto.Organization = &org
	}

	// Include signup count if signups are preloaded
	if task.Signups != nil {
		count := len(task.Signups)
		dto.SignupCount = &count
	}

	return dto
}

// ToTaskDTOs converts a slice of Task models
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}

// ToTaskListResponse converts a slice of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task, page, pageSize int, totalCount int64) TaskListResponse {
	return TaskListResponse{
		Tasks:      ToTaskDTOs(tasks),
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}
}
