package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusAvailable        TaskStatus = "AVAILABLE"
	TaskStatusFilled           TaskStatus = "FILLED" // reserved for capacity limits
	TaskStatusApplicationEnded TaskStatus = "APPLICATION_ENDED"
	TaskStatusEnded            TaskStatus = "ENDED"
	TaskStatusCancelled        TaskStatus = "CANCELLED"
)

// Task is a volunteering opportunity posted by an organization. All three
// dates are date-only; the application and cancellation deadlines must not
// fall after the event date.
type Task struct {
	ID                   uint64     `gorm:"primarykey" json:"id"`
	Title                string     `gorm:"not null" json:"title"`
	Description          string     `gorm:"type:text;not null" json:"description"`
	Location             string     `gorm:"type:varchar(100)" json:"location"`
	EventDate            time.Time  `gorm:"type:date;not null" json:"event_date"`
	ApplicationDeadline  time.Time  `gorm:"type:date;not null" json:"application_deadline"`
	CancellationDeadline time.Time  `gorm:"type:date;not null" json:"cancellation_deadline"`
	Status               TaskStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE'" json:"status"`
	OrganizationID       uint64     `gorm:"not null;index" json:"organization_id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Organization User         `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Skills       []Skill      `gorm:"many2many:task_skills" json:"skills,omitempty"`
	Signups      []TaskSignup `gorm:"foreignKey:TaskID" json:"signups,omitempty"`
}
