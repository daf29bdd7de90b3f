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

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *TaskService
	today   time.Time
}

// SetupTest runs before each test
func (suite *TaskServiceTestSuite) SetupTest() {
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

	taskRepo := repository.NewTaskRepository(suite.db)
	signupRepo := repository.NewSignupRepository(suite.db)
	userRepo := repository.NewUserRepository(suite.db)
	skillService := NewSkillService(repository.NewSkillRepository(suite.db))

	suite.service = NewTaskService(taskRepo, signupRepo, userRepo, skillService)

	// Pin the clock so deadline checks are deterministic
	suite.today = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	suite.service.now = func() time.Time {
		return suite.today.Add(10 * time.Hour)
	}
}

// TearDownTest runs after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskServiceTestSuite) createOrganization(email string) *models.User {
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

func (suite *TaskServiceTestSuite) createVolunteer(email string) *models.User {
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

func (suite *TaskServiceTestSuite) validInput() CreateTaskInput {
	return CreateTaskInput{
		Title:                "Beach Cleanup",
		Description:          "Collect litter along the shore",
		Location:             "East Beach",
		EventDate:            suite.today.AddDate(0, 0, 10),
		ApplicationDeadline:  suite.today.AddDate(0, 0, 5),
		CancellationDeadline: suite.today.AddDate(0, 0, 8),
	}
}

func (suite *TaskServiceTestSuite) TestCreateTask_Success() {
	org := suite.createOrganization("org@example.com")

	task, err := suite.service.CreateTask(org.ID, suite.validInput())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Beach Cleanup", task.Title)
	assert.Equal(suite.T(), models.TaskStatusAvailable, task.Status)
	assert.Equal(suite.T(), org.ID, task.OrganizationID)
}

func (suite *TaskServiceTestSuite) TestCreateTask_DeadlineToday() {
	org := suite.createOrganization("org@example.com")

	input := suite.validInput()
	input.ApplicationDeadline = suite.today

	task, err := suite.service.CreateTask(org.ID, input)

	// A deadline on the current day is still acceptable
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), task)
}

func (suite *TaskServiceTestSuite) TestCreateTask_ApplicationDeadlineInPast() {
	org := suite.createOrganization("org@example.com")

	input := suite.validInput()
	input.ApplicationDeadline = suite.today.AddDate(0, 0, -1)

	_, err := suite.service.CreateTask(org.ID, input)

	assert.ErrorIs(suite.T(), err, ErrDeadlineInPast)
}

func (suite *TaskServiceTestSuite) TestCreateTask_CancellationDeadlineInPast() {
	org := suite.createOrganization("org@example.com")

	input := suite.validInput()
	input.CancellationDeadline = suite.today.AddDate(0, 0, -3)

	_, err := suite.service.CreateTask(org.ID, input)

	assert.ErrorIs(suite.T(), err, ErrDeadlineInPast)
}

func (suite *TaskServiceTestSuite) TestCreateTask_DeadlineAfterEvent() {
	org := suite.createOrganization("org@example.com")

	input := suite.validInput()
	input.ApplicationDeadline = input.EventDate.AddDate(0, 0, 1)

	_, err := suite.service.CreateTask(org.ID, input)

	assert.ErrorIs(suite.T(), err, ErrDeadlineAfterEvent)
}

func (suite *TaskServiceTestSuite) TestCreateTask_DeadlineOnEventDay() {
	org := suite.createOrganization("org@example.com")

	input := suite.validInput()
	input.ApplicationDeadline = input.EventDate
	input.CancellationDeadline = input.EventDate

	task, err := suite.service.CreateTask(org.ID, input)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), task)
}

func (suite *TaskServiceTestSuite) TestCreateTask_OrganizationNotFound() {
	_, err := suite.service.CreateTask(9999, suite.validInput())

	assert.ErrorIs(suite.T(), err, ErrOrganizationNotFound)
}

func (suite *TaskServiceTestSuite) TestCreateTask_VolunteerCannotPost() {
	volunteer := suite.createVolunteer("vol@example.com")

	_, err := suite.service.CreateTask(volunteer.ID, suite.validInput())

	assert.ErrorIs(suite.T(), err, ErrOrganizationNotFound)
}

func (suite *TaskServiceTestSuite) TestCreateTask_ResolvesSkills() {
	org := suite.createOrganization("org@example.com")

	input := suite.validInput()
	input.Skills = []string{"Gardening", "gardening", "First Aid"}

	task, err := suite.service.CreateTask(org.ID, input)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), task.Skills, 2)

	var catalogCount int64
	suite.db.Model(&models.Skill{}).Count(&catalogCount)
	assert.Equal(suite.T(), int64(2), catalogCount)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_PartialFields() {
	org := suite.createOrganization("org@example.com")
	task, err := suite.service.CreateTask(org.ID, suite.validInput())
	suite.Require().NoError(err)

	newTitle := "Park Cleanup"
	updated, err := suite.service.UpdateTask(org.ID, task.ID, UpdateTaskInput{
		Title: &newTitle,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Park Cleanup", updated.Title)
	// Untouched fields keep their values
	assert.Equal(suite.T(), task.Description, updated.Description)
	assert.Equal(suite.T(), task.Location, updated.Location)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_NoDeadlineRevalidation() {
	org := suite.createOrganization("org@example.com")
	task, err := suite.service.CreateTask(org.ID, suite.validInput())
	suite.Require().NoError(err)

	// Deadline ordering is only checked at creation; an update may move a
	// deadline into the past without being rejected.
	past := suite.today.AddDate(0, 0, -5)
	updated, err := suite.service.UpdateTask(org.ID, task.ID, UpdateTaskInput{
		ApplicationDeadline: &past,
	})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), updated.ApplicationDeadline.Before(suite.today))
}

func (suite *TaskServiceTestSuite) TestUpdateTask_TaskNotFound() {
	org := suite.createOrganization("org@example.com")

	newTitle := "Missing"
	_, err := suite.service.UpdateTask(org.ID, 9999, UpdateTaskInput{Title: &newTitle})

	assert.ErrorIs(suite.T(), err, ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestDeleteTask_Success() {
	org := suite.createOrganization("org@example.com")
	task, err := suite.service.CreateTask(org.ID, suite.validInput())
	suite.Require().NoError(err)

	err = suite.service.DeleteTask(org.ID, task.ID)

	assert.NoError(suite.T(), err)
	_, err = suite.service.GetTask(task.ID)
	assert.ErrorIs(suite.T(), err, ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestDeleteTask_NotOwner() {
	org := suite.createOrganization("org@example.com")
	other := suite.createOrganization("other@example.com")
	task, err := suite.service.CreateTask(org.ID, suite.validInput())
	suite.Require().NoError(err)

	err = suite.service.DeleteTask(other.ID, task.ID)

	assert.ErrorIs(suite.T(), err, ErrNotTaskOwner)
}

func (suite *TaskServiceTestSuite) TestDeleteTask_WithSignups() {
	org := suite.createOrganization("org@example.com")
	volunteer := suite.createVolunteer("vol@example.com")
	task, err := suite.service.CreateTask(org.ID, suite.validInput())
	suite.Require().NoError(err)

	suite.db.Create(&models.TaskSignup{
		TaskID:      task.ID,
		VolunteerID: volunteer.ID,
		SignupDate:  suite.today,
	})

	err = suite.service.DeleteTask(org.ID, task.ID)

	assert.ErrorIs(suite.T(), err, ErrTaskHasSignups)
	// The task survives; cancellation is the only way out
	_, err = suite.service.GetTask(task.ID)
	assert.NoError(suite.T(), err)
}

func (suite *TaskServiceTestSuite) TestCancelTask_Success() {
	org := suite.createOrganization("org@example.com")
	volunteer := suite.createVolunteer("vol@example.com")
	task, err := suite.service.CreateTask(org.ID, suite.validInput())
	suite.Require().NoError(err)

	suite.db.Create(&models.TaskSignup{
		TaskID:      task.ID,
		VolunteerID: volunteer.ID,
		SignupDate:  suite.today,
	})

	cancelled, err := suite.service.CancelTask(org.ID, task.ID)

	// Cancellation works even with signups in place
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TaskStatusCancelled, cancelled.Status)
}

func (suite *TaskServiceTestSuite) TestCancelTask_NotOwner() {
	org := suite.createOrganization("org@example.com")
	other := suite.createOrganization("other@example.com")
	task, err := suite.service.CreateTask(org.ID, suite.validInput())
	suite.Require().NoError(err)

	_, err = suite.service.CancelTask(other.ID, task.ID)

	assert.ErrorIs(suite.T(), err, ErrNotTaskOwner)
}

func (suite *TaskServiceTestSuite) TestSearchTasks_ByStatus() {
	org := suite.createOrganization("org@example.com")
	task, err := suite.service.CreateTask(org.ID, suite.validInput())
	suite.Require().NoError(err)

	input := suite.validInput()
	input.Title = "Food Drive"
	other, err := suite.service.CreateTask(org.ID, input)
	suite.Require().NoError(err)

	_, err = suite.service.CancelTask(org.ID, other.ID)
	suite.Require().NoError(err)

	status := models.TaskStatusAvailable
	tasks, total, err := suite.service.SearchTasks(repository.TaskFilter{Status: &status})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
	suite.Require().Len(tasks, 1)
	assert.Equal(suite.T(), task.ID, tasks[0].ID)
}

func (suite *TaskServiceTestSuite) TestSearchTasks_ByTitle() {
	org := suite.createOrganization("org@example.com")
	_, err := suite.service.CreateTask(org.ID, suite.validInput())
	suite.Require().NoError(err)

	tasks, total, err := suite.service.SearchTasks(repository.TaskFilter{Title: "Beach"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
	assert.Len(suite.T(), tasks, 1)

	tasks, total, err = suite.service.SearchTasks(repository.TaskFilter{Title: "Marathon"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), total)
	assert.Empty(suite.T(), tasks)
}

func (suite *TaskServiceTestSuite) TestListOrganizationTasks() {
	org := suite.createOrganization("org@example.com")
	other := suite.createOrganization("other@example.com")
	_, err := suite.service.CreateTask(org.ID, suite.validInput())
	suite.Require().NoError(err)

	tasks, err := suite.service.ListOrganizationTasks(org.ID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), tasks, 1)

	tasks, err = suite.service.ListOrganizationTasks(other.ID)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), tasks)
}

// TestSuite runs the test suite
func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
