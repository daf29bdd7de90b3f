package models

import "time"

// Rating is a post-task review between the two parties. Repeated ratings
// between the same pair are permitted; the score is bounded to [1,5] at
// the request layer.
type Rating struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	RatedByUserID uint64    `gorm:"not null;index" json:"rated_by_user_id"`
	RatedUserID   uint64    `gorm:"not null;index" json:"rated_user_id"`
	Score         int       `gorm:"not null" json:"score"`
	Review        string    `gorm:"type:text" json:"review"`
	IsDeleted     bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
