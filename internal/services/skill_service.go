package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/communityworks/volunteer-platform/internal/models"
	"github.com/communityworks/volunteer-platform/internal/repository"
)

var (
	ErrSkillNotFound     = errors.New("skill not found")
	ErrSkillNameRequired = errors.New("skill name is required")
)

// SkillService manages the shared skill catalog. Skills are created
// lazily on first reference and only removed by an explicit delete.
type SkillService struct {
	skillRepo repository.SkillRepository
}

// NewSkillService creates a new SkillService
func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

// Resolve returns the skill with the given name, creating it if absent.
// Names are normalized to lowercase before lookup.
func (s *SkillService) Resolve(name string) (*models.Skill, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return nil, ErrSkillNameRequired
	}

	skill, err := s.skillRepo.FindByName(normalized)
	if err == nil {
		return skill, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up skill: %w", err)
	}

	skill = &models.Skill{Name: normalized}
	if err := s.skillRepo.Create(skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

// ResolveAll resolves a list of skill names, dropping duplicates.
func (s *SkillService) ResolveAll(names []string) ([]models.Skill, error) {
	seen := make(map[string]struct{}, len(names))
	skills := make([]models.Skill, 0, len(names))

	for _, name := range names {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}

		skill, err := s.Resolve(normalized)
		if err != nil {
			return nil, err
		}
		skills = append(skills, *skill)
	}

	return skills, nil
}

// GetSkill returns a skill by ID.
func (s *SkillService) GetSkill(id uint64) (*models.Skill, error) {
	skill, err := s.skillRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}
	return skill, nil
}

// ListSkills returns the whole catalog.
func (s *SkillService) ListSkills() ([]models.Skill, error) {
	skills, err := s.skillRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

// DeleteSkill removes a skill from the catalog. Admin action only; skills
// are never deleted automatically.
func (s *SkillService) DeleteSkill(id uint64) error {
	if _, err := s.skillRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkillNotFound
		}
		return fmt.Errorf("failed to find skill: %w", err)
	}

	if err := s.skillRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}
