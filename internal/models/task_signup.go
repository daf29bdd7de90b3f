package models

import "time"

// TaskSignup records a volunteer's commitment to a task. At most one row
// exists per (task, volunteer) pair; the composite unique index backs the
// lookup-before-insert check in the service layer. Rows are removed
// outright on cancellation, so a volunteer may sign up again later.
type TaskSignup struct {
	ID                 uint64     `gorm:"primarykey" json:"id"`
	TaskID             uint64     `gorm:"not null;uniqueIndex:idx_signups_task_volunteer" json:"task_id"`
	VolunteerID        uint64     `gorm:"not null;uniqueIndex:idx_signups_task_volunteer" json:"volunteer_id"`
	SignupDate         time.Time  `gorm:"not null" json:"signup_date"`
	ReminderSent       bool       `gorm:"not null;default:false" json:"reminder_sent"`
	LastReminderSentAt *time.Time `json:"last_reminder_sent_at"`

	// Relations
	Task      Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Volunteer User `gorm:"foreignKey:VolunteerID" json:"volunteer,omitempty"`
}
