package dto

import (
	"time"

	"github.com/communityworks/volunteer-platform/internal/models"
)

// SkillDTO represents a catalog skill in API responses
type SkillDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// UserDTO represents a user in API responses. Role-specific fields are
// omitted when empty, so volunteers and organizations serialize with
// only their own attributes.
type UserDTO struct {
	ID          uint64          `json:"id"`
	UserType    models.UserType `json:"user_type"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Gender      models.Gender   `json:"gender,omitempty"`
	Skills      []SkillDTO      `json:"skills,omitempty"`
	Address     string          `json:"address,omitempty"`
	Website     string          `json:"website,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToSkillDTO converts a Skill model to SkillDTO
func ToSkillDTO(skill models.Skill) SkillDTO {
	return SkillDTO{
		ID:   skill.ID,
		Name: skill.Name,
	}
}

// ToSkillDTOs converts a slice of Skill models
func ToSkillDTOs(skills []models.Skill) []SkillDTO {
	if len(skills) == 0 {
		return nil
	}
	dtos := make([]SkillDTO, len(skills))
	for i, skill := range skills {
		dtos[i] = ToSkillDTO(skill)
	}
	return dtos
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		UserType:    user.UserType,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Gender:      user.Gender,
		Skills:      ToSkillDTOs(user.Skills),
		Address:     user.Address,
		Website:     user.Website,
		CreatedAt:   user.CreatedAt,
	}
}
