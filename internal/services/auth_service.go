package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/communityworks/volunteer-platform/internal/constants"
	"github.com/communityworks/volunteer-platform/internal/models"
	"github.com/communityworks/volunteer-platform/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles registration and credential verification for both
// parties.
type AuthService struct {
	userRepo repository.UserRepository
	skills   *SkillService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, skills *SkillService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		skills:   skills,
	}
}

// RegisterVolunteerInput holds the fields required to register a volunteer.
type RegisterVolunteerInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Gender      models.Gender
	Skills      []string
}

// RegisterOrganizationInput holds the fields required to register an
// organization.
type RegisterOrganizationInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
	Website     string
}

// RegisterVolunteer creates a volunteer account, resolving any named
// skills through the catalog.
func (s *AuthService) RegisterVolunteer(input RegisterVolunteerInput) (*models.User, error) {
	hash, err := s.prepareCredentials(input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	skills, err := s.skills.ResolveAll(input.Skills)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserType:     models.UserTypeVolunteer,
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		PhoneNumber:  strings.TrimSpace(input.PhoneNumber),
		Gender:       input.Gender,
		Skills:       skills,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create volunteer: %w", err)
	}
	return user, nil
}

// RegisterOrganization creates an organization account.
func (s *AuthService) RegisterOrganization(input RegisterOrganizationInput) (*models.User, error) {
	hash, err := s.prepareCredentials(input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserType:     models.UserTypeOrganization,
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		PhoneNumber:  strings.TrimSpace(input.PhoneNumber),
		Address:      strings.TrimSpace(input.Address),
		Website:      strings.TrimSpace(input.Website),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return user, nil
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id, "Skills")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *AuthService) prepareCredentials(email, password string) (string, error) {
	if len(password) < constants.MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	if _, err := s.userRepo.FindByEmail(normalized); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
