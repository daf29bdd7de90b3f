package dto

import (
	"time"

	"github.com/communityworks/volunteer-platform/internal/models"
)

// SignupDTO represents a task signup in API responses
type SignupDTO struct {
	ID                 uint64     `json:"id"`
	TaskID             uint64     `json:"task_id"`
	VolunteerID        uint64     `json:"volunteer_id"`
	SignupDate         time.Time  `json:"signup_date"`
	ReminderSent       bool       `json:"reminder_sent"`
	LastReminderSentAt *time.Time `json:"last_reminder_sent_at,omitempty"`
	Task               *TaskDTO   `json:"task,omitempty"`
	Volunteer          *UserDTO   `json:"volunteer,omitempty"`
}

// ToSignupDTO converts a TaskSignup model to SignupDTO
func ToSignupDTO(signup models.TaskSignup) SignupDTO {
	dto := SignupDTO{
		ID:                 signup.ID,
		TaskID:             signup.TaskID,
		VolunteerID:        signup.VolunteerID,
		SignupDate:         signup.SignupDate,
		ReminderSent:       signup.ReminderSent,
		LastReminderSentAt: signup.LastReminderSentAt,
	}

	if signup.Task.ID != 0 {
		task := ToTaskDTO(signup.Task)
		dto.Task = &task
	}
	if signup.Volunteer.ID != 0 {
		volunteer := ToUserDTO(signup.Volunteer)
		dto.Volunteer = &volunteer
	}

	return dto
}

// ToSignupDTOs converts a slice of TaskSignup models
func ToSignupDTOs(signups []models.TaskSignup) []SignupDTO {
	dtos := make([]SignupDTO, len(signups))
	for i, signup := range signups {
		dtos[i] = ToSignupDTO(signup)
	}
	return dtos
}
