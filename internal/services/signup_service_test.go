package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/communityworks/volunteer-platform/internal/models"
	"github.com/communityworks/volunteer-platform/internal/repository"
)

// SignupServiceTestSuite defines the test suite for SignupService
type SignupServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *SignupService
	today   time.Time
}

// SetupTest runs before each test
func (suite *SignupServiceTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.Task{},
		&models.TaskSignup{},
		&models.Rating{},
	)
	suite.Require().NoError(err)

	signupRepo := repository.NewSignupRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)
	userRepo := repository.NewUserRepository(suite.db)

	suite.service = NewSignupService(signupRepo, taskRepo, userRepo)

	suite.today = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	suite.service.now = func() time.Time {
		return suite.today.Add(14 * time.Hour)
	}
}

// TearDownTest runs after each test
func (suite *SignupServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *SignupServiceTestSuite) createOrganization(email string) *models.User {
	org := &models.User{
		UserType:     models.UserTypeOrganization,
		Name:         "Helping Hands",
		Email:        email,
		PasswordHash: "hashedpassword",
		PhoneNumber:  "555-" + email,
	}
	suite.db.Create(org)
	return org
}

func (suite *SignupServiceTestSuite) createVolunteer(email string) *models.User {
	volunteer := &models.User{
		UserType:     models.UserTypeVolunteer,
		Name:         "Alex",
		Email:        email,
		PasswordHash: "hashedpassword",
		PhoneNumber:  "556-" + email,
	}
	suite.db.Create(volunteer)
	return volunteer
}

func (suite *SignupServiceTestSuite) createTask(orgID uint64, status models.TaskStatus, cancellationDeadline time.Time) *models.Task {
	task := &models.Task{
		Title:                "Beach Cleanup",
		Description:          "Collect litter along the shore",
		Location:             "East Beach",
		EventDate:            suite.today.AddDate(0, 0, 10),
		ApplicationDeadline:  suite.today.AddDate(0, 0, 5),
		CancellationDeadline: cancellationDeadline,
		Status:               status,
		OrganizationID:       orgID,
	}
	suite.db.Create(task)
	return task
}

func (suite *SignupServiceTestSuite) TestSignUp_Success() {
	org := suite.createOrganization("org@example.com")
	volunteer := suite.createVolunteer("vol@example.com")
	task := suite.createTask(org.ID, models.TaskStatusAvailable, suite.today.AddDate(0, 0, 8))

	signup, created, err := suite.service.SignUp(volunteer.ID, task.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), created)
	assert.Equal(suite.T(), task.ID, signup.TaskID)
	assert.Equal(suite.T(), volunteer.ID, signup.VolunteerID)
	assert.False(suite.T(), signup.ReminderSent)
}

func (suite *SignupServiceTestSuite) TestSignUp_Idempotent() {
	org := suite.createOrganization("org@example.com")
	volunteer := suite.createVolunteer("vol@example.com")
	task := suite.createTask(org.ID, models.TaskStatusAvailable, suite.today.AddDate(0, 0, 8))

	first, created, err := suite.service.SignUp(volunteer.ID, task.ID)
	suite.Require().NoError(err)
	suite.Require().True(created)

	second, created, err := suite.service.SignUp(volunteer.ID, task.ID)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), created)
	assert.Equal(suite.T(), first.ID, second.ID)

	var count int64
	suite.db.Model(&models.TaskSignup{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *SignupServiceTestSuite) TestSignUp_TaskNotAvailable() {
	org := suite.createOrganization("org@example.com")
	volunteer := suite.createVolunteer("vol@example.com")

	for _, status := range []models.TaskStatus{
		models.TaskStatusApplicationEnded,
		models.TaskStatusEnded,
		models.TaskStatusCancelled,
	} {
		task := suite.createTask(org.ID, status, suite.today.AddDate(0, 0, 8))

		_, _, err := suite.service.SignUp(volunteer.ID, task.ID)

		assert.ErrorIs(suite.T(), err, ErrTaskNotAvailable)
	}
}

func (suite *SignupServiceTestSuite) TestSignUp_TaskNotFound() {
	volunteer := suite.createVolunteer("vol@example.com")

	_, _, err := suite.service.SignUp(volunteer.ID, 9999)

	assert.ErrorIs(suite.T(), err, ErrTaskNotFound)
}

func (suite *SignupServiceTestSuite) TestSignUp_VolunteerNotFound() {
	org := suite.createOrganization("org@example.com")
	task := suite.createTask(org.ID, models.TaskStatusAvailable, suite.today.AddDate(0, 0, 8))

	_, _, err := suite.service.SignUp(9999, task.ID)

	assert.ErrorIs(suite.T(), err, ErrVolunteerNotFound)
}

func (suite *SignupServiceTestSuite) TestSignUp_OrganizationCannotSignUp() {
	org := suite.createOrganization("org@example.com")
	task := suite.createTask(org.ID, models.TaskStatusAvailable, suite.today.AddDate(0, 0, 8))

	// The organization's own user ID is not a volunteer
	_, _, err := suite.service.SignUp(org.ID, task.ID)

	assert.ErrorIs(suite.T(), err, ErrVolunteerNotFound)
}

func (suite *SignupServiceTestSuite) TestCancelSignup_Success() {
	org := suite.createOrganization("org@example.com")
	volunteer := suite.createVolunteer("vol@example.com")
	task := suite.createTask(org.ID, models.TaskStatusAvailable, suite.today.AddDate(0, 0, 8))

	_, _, err := suite.service.SignUp(volunteer.ID, task.ID)
	suite.Require().NoError(err)

	err = suite.service.CancelSignup(volunteer.ID, task.ID)

	assert.NoError(suite.T(), err)

	var count int64
	suite.db.Model(&models.TaskSignup{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *SignupServiceTestSuite) TestCancelSignup_OnDeadlineDay() {
	org := suite.createOrganization("org@example.com")
	volunteer := suite.createVolunteer("vol@example.com")
	task := suite.createTask(org.ID, models.TaskStatusAvailable, suite.today)

	_, _, err := suite.service.SignUp(volunteer.ID, task.ID)
	suite.Require().NoError(err)

	// The deadline day itself still allows cancellation
	err = suite.service.CancelSignup(volunteer.ID, task.ID)

	assert.NoError(suite.T(), err)
}

func (suite *SignupServiceTestSuite) TestCancelSignup_DeadlinePassed() {
	org := suite.createOrganization("org@example.com")
	volunteer := suite.createVolunteer("vol@example.com")
	task := suite.createTask(org.ID, models.TaskStatusAvailable, suite.today.AddDate(0, 0, -1))

	suite.db.Create(&models.TaskSignup{
		TaskID:      task.ID,
		VolunteerID: volunteer.ID,
		SignupDate:  suite.today.AddDate(0, 0, -10),
	})

	err := suite.service.CancelSignup(volunteer.ID, task.ID)

	assert.ErrorIs(suite.T(), err, ErrCancellationDeadlinePassed)

	var count int64
	suite.db.Model(&models.TaskSignup{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *SignupServiceTestSuite) TestCancelSignup_NotFound() {
	org := suite.createOrganization("org@example.com")
	volunteer := suite.createVolunteer("vol@example.com")
	task := suite.createTask(org.ID, models.TaskStatusAvailable, suite.today.AddDate(0, 0, 8))

	err := suite.service.CancelSignup(volunteer.ID, task.ID)

	assert.ErrorIs(suite.T(), err, ErrSignupNotFound)
}

func (suite *SignupServiceTestSuite) TestCancelSignupByID() {
	org := suite.createOrganization("org@example.com")
	volunteer := suite.createVolunteer("vol@example.com")
	task := suite.createTask(org.ID, models.TaskStatusAvailable, suite.today.AddDate(0, 0, 8))

	signup, _, err := suite.service.SignUp(volunteer.ID, task.ID)
	suite.Require().NoError(err)

	err = suite.service.CancelSignupByID(signup.ID)
	assert.NoError(suite.T(), err)

	err = suite.service.CancelSignupByID(signup.ID)
	assert.ErrorIs(suite.T(), err, ErrSignupNotFound)
}

func (suite *SignupServiceTestSuite) TestResignupAfterCancellation() {
	org := suite.createOrganization("org@example.com")
	volunteer := suite.createVolunteer("vol@example.com")
	task := suite.createTask(org.ID, models.TaskStatusAvailable, suite.today.AddDate(0, 0, 8))

	_, _, err := suite.service.SignUp(volunteer.ID, task.ID)
	suite.Require().NoError(err)

	err = suite.service.CancelSignup(volunteer.ID, task.ID)
	suite.Require().NoError(err)

	// The unique index does not block a fresh signup after cancellation
	_, created, err := suite.service.SignUp(volunteer.ID, task.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), created)
}

func (suite *SignupServiceTestSuite) TestListByTask() {
	org := suite.createOrganization("org@example.com")
	task := suite.createTask(org.ID, models.TaskStatusAvailable, suite.today.AddDate(0, 0, 8))

	for _, email := range []string{"a@example.com", "b@example.com"} {
		volunteer := suite.createVolunteer(email)
		_, _, err := suite.service.SignUp(volunteer.ID, task.ID)
		suite.Require().NoError(err)
	}

	signups, err := suite.service.ListByTask(task.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), signups, 2)
}

func (suite *SignupServiceTestSuite) TestListByVolunteer() {
	org := suite.createOrganization("org@example.com")
	volunteer := suite.createVolunteer("vol@example.com")
	other := suite.createVolunteer("other@example.com")
	task := suite.createTask(org.ID, models.TaskStatusAvailable, suite.today.AddDate(0, 0, 8))

	_, _, err := suite.service.SignUp(volunteer.ID, task.ID)
	suite.Require().NoError(err)

	signups, err := suite.service.ListByVolunteer(volunteer.ID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), signups, 1)

	signups, err = suite.service.ListByVolunteer(other.ID)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), signups)
}

func (suite *SignupServiceTestSuite) TestIsSignedUp() {
	org := suite.createOrganization("org@example.com")
	volunteer := suite.createVolunteer("vol@example.com")
	task := suite.createTask(org.ID, models.TaskStatusAvailable, suite.today.AddDate(0, 0, 8))

	signedUp, err := suite.service.IsSignedUp(volunteer.ID, task.ID)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), signedUp)

	_, _, err = suite.service.SignUp(volunteer.ID, task.ID)
	suite.Require().NoError(err)

	signedUp, err = suite.service.IsSignedUp(volunteer.ID, task.ID)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), signedUp)
}

func (suite *SignupServiceTestSuite) TestGetReminderStatus() {
	org := suite.createOrganization("org@example.com")
	volunteer := suite.createVolunteer("vol@example.com")
	task := suite.createTask(org.ID, models.TaskStatusAvailable, suite.today.AddDate(0, 0, 8))

	_, _, err := suite.service.SignUp(volunteer.ID, task.ID)
	suite.Require().NoError(err)

	statuses, err := suite.service.GetReminderStatus()

	assert.NoError(suite.T(), err)
	suite.Require().Len(statuses, 1)
	assert.Equal(suite.T(), task.Title, statuses[0].TaskTitle)
	assert.Equal(suite.T(), volunteer.Email, statuses[0].VolunteerEmail)
	assert.False(suite.T(), statuses[0].ReminderSent)
	assert.Nil(suite.T(), statuses[0].LastReminderSentAt)
}

// TestSuite runs the test suite
func TestSignupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SignupServiceTestSuite))
}
