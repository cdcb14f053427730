package auth_test

import (
	"testing"
	"time"

	"pharmatrack-backend/internal/auth"
	"pharmatrack-backend/internal/config"
	"pharmatrack-backend/internal/database/models"
	apperrors "pharmatrack-backend/internal/errors"
	"pharmatrack-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	authService  *auth.AuthService
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.authService = auth.NewAuthService(suite.mockUserRepo, &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiryHours: 1,
	})
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegister tests creating an account
func (suite *AuthServiceTestSuite) TestRegister() {
	req := auth.RegisterRequest{
		Email:     "  Pharmacist@Test.com ",
		Password:  "supersecret",
		FirstName: "Jane",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail("pharmacist@test.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			assert.Equal(suite.T(), "pharmacist@test.com", user.Email)
			assert.True(suite.T(), user.AlertsEnabled)
			assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
			return nil
		}).
		Times(1)

	user, err := suite.authService.Register(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), user)
	assert.Equal(suite.T(), "pharmacist@test.com", user.Email)
}

// TestRegisterDuplicateEmail tests rejecting an existing account
func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	existing := &models.User{Email: "pharmacist@test.com"}
	suite.mockUserRepo.EXPECT().
		GetByEmail("pharmacist@test.com").
		Return(existing, nil).
		Times(1)

	user, err := suite.authService.Register(auth.RegisterRequest{
		Email:    "pharmacist@test.com",
		Password: "supersecret",
	})

	assert.Nil(suite.T(), user)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestLoginAndValidate tests the full issue-then-validate round trip
func (suite *AuthServiceTestSuite) TestLoginAndValidate() {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	user := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "pharmacist@test.com",
		PasswordHash: string(hash),
		Operator:     true,
	}
	suite.mockUserRepo.EXPECT().
		GetByEmail("pharmacist@test.com").
		Return(user, nil).
		Times(1)

	token, err := suite.authService.Login(auth.LoginRequest{
		Email:    "pharmacist@test.com",
		Password: "supersecret",
	})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), token.Token)
	assert.True(suite.T(), token.ExpiresAt.After(time.Now()))

	claims, err := suite.authService.ValidateJWT(token.Token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.Email, claims.Email)
	assert.True(suite.T(), claims.Operator)

	tenantID, err := claims.TenantID()
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, tenantID)
}

// TestLoginWrongPassword tests credential rejection
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	user := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "pharmacist@test.com",
		PasswordHash: string(hash),
	}
	suite.mockUserRepo.EXPECT().
		GetByEmail("pharmacist@test.com").
		Return(user, nil).
		Times(1)

	token, err := suite.authService.Login(auth.LoginRequest{
		Email:    "pharmacist@test.com",
		Password: "wrong",
	})

	assert.Nil(suite.T(), token)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestLoginUnknownEmail tests that unknown accounts look like bad credentials
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("nobody@test.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	token, err := suite.authService.Login(auth.LoginRequest{
		Email:    "nobody@test.com",
		Password: "whatever",
	})

	assert.Nil(suite.T(), token)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestValidateJWTGarbage tests rejecting a malformed token
func (suite *AuthServiceTestSuite) TestValidateJWTGarbage() {
	claims, err := suite.authService.ValidateJWT("not-a-token")

	assert.Nil(suite.T(), claims)
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

// TestValidateJWTWrongSecret tests rejecting a token signed with another key
func (suite *AuthServiceTestSuite) TestValidateJWTWrongSecret() {
	other := auth.NewAuthService(suite.mockUserRepo, &config.Config{
		JWTSecret:      "different-secret",
		JWTExpiryHours: 1,
	})
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "x@test.com"}
	token, err := other.GenerateToken(user)
	assert.NoError(suite.T(), err)

	claims, err := suite.authService.ValidateJWT(token.Token)

	assert.Nil(suite.T(), claims)
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
