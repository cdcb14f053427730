//go:build integration
// +build integration

package repository

import (
	"testing"

	"pharmatrack-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) TestCreateAndGetByEmail() {
	user := suite.factories.User.WithEmail("pharmacist@test.com")
	suite.NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByEmail("pharmacist@test.com")

	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)
	suite.True(retrieved.AlertsEnabled)
}

func (suite *UserRepositoryTestSuite) TestDuplicateEmailRejected() {
	suite.NoError(suite.repo.Create(suite.factories.User.WithEmail("dup@test.com")))

	err := suite.repo.Create(suite.factories.User.WithEmail("dup@test.com"))

	suite.Error(err)
}

func (suite *UserRepositoryTestSuite) TestSetAlertsEnabled() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	suite.NoError(suite.repo.SetAlertsEnabled(user.ID, false))

	retrieved, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.False(retrieved.AlertsEnabled)
}

func (suite *UserRepositoryTestSuite) TestSetAlertsEnabledNotFound() {
	err := suite.repo.SetAlertsEnabled(uuid.New(), true)

	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
