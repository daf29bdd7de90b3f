package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/communityworks/volunteer-platform/internal/models"
	"github.com/communityworks/volunteer-platform/internal/repository"
)

// SkillServiceTestSuite defines the test suite for SkillService
type SkillServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *SkillService
}

// SetupTest runs before each test
func (suite *SkillServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.Skill{})
	suite.Require().NoError(err)

	suite.service = NewSkillService(repository.NewSkillRepository(suite.db))
}

// TearDownTest runs after each test
func (suite *SkillServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *SkillServiceTestSuite) TestResolve_CreatesOnFirstUse() {
	skill, err := suite.service.Resolve("Gardening")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "gardening", skill.Name)

	again, err := suite.service.Resolve("GARDENING")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), skill.ID, again.ID)

	var count int64
	suite.db.Model(&models.Skill{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *SkillServiceTestSuite) TestResolve_EmptyName() {
	_, err := suite.service.Resolve("   ")

	assert.ErrorIs(suite.T(), err, ErrSkillNameRequired)
}

func (suite *SkillServiceTestSuite) TestResolveAll_Dedupes() {
	skills, err := suite.service.ResolveAll([]string{"First Aid", "first aid", "", "Cooking"})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), skills, 2)
}

func (suite *SkillServiceTestSuite) TestListSkills() {
	_, err := suite.service.ResolveAll([]string{"cooking", "driving"})
	suite.Require().NoError(err)

	skills, err := suite.service.ListSkills()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), skills, 2)
}

func (suite *SkillServiceTestSuite) TestDeleteSkill() {
	skill, err := suite.service.Resolve("cooking")
	suite.Require().NoError(err)

	err = suite.service.DeleteSkill(skill.ID)
	assert.NoError(suite.T(), err)

	err = suite.service.DeleteSkill(skill.ID)
	assert.ErrorIs(suite.T(), err, ErrSkillNotFound)
}

// TestSuite runs the test suite
func TestSkillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SkillServiceTestSuite))
}
