package models

import (
	"time"

	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeOrganization UserType = "ORGANIZATION"
	UserTypeVolunteer    UserType = "VOLUNTEER"
)

type Gender string

const (
	GenderFemale Gender = "FEMALE"
	GenderMale   Gender = "MALE"
	GenderOther  Gender = "OTHER"
)

// User is the shared identity and contact record for both parties.
// The user_type discriminator selects which of the role-specific
// fields are meaningful: volunteers carry a gender and a skill set,
// organizations carry an address and a website.
type User struct {
	ID           uint64   `gorm:"primarykey" json:"id"`
	UserType     UserType `gorm:"type:varchar(20);not null;index" json:"user_type"`
	Name         string   `gorm:"type:varchar(100);not null" json:"name"`
	Email        string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"type:varchar(255);not null" json:"-"`
	PhoneNumber  string   `gorm:"type:varchar(30);uniqueIndex;not null" json:"phone_number"`

	// Volunteer fields
	Gender Gender  `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Skills []Skill `gorm:"many2many:volunteer_skills" json:"skills,omitempty"`

	// Organization fields
	Address string `gorm:"type:varchar(255)" json:"address,omitempty"`
	Website string `gorm:"type:varchar(255)" json:"website,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Tasks   []Task       `gorm:"foreignKey:OrganizationID" json:"tasks,omitempty"`
	Signups []TaskSignup `gorm:"foreignKey:VolunteerID" json:"-"`
}

func (u *User) IsOrganization() bool {
	return u.UserType == UserTypeOrganization
}

func (u *User) IsVolunteer() bool {
	return u.UserType == UserTypeVolunteer
}
