package service

import (
	"errors"
	"fmt"

	"pharmatrack-backend/internal/database/models"
	apperrors "pharmatrack-backend/internal/errors"
	"pharmatrack-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService provides tenant profile logic
type UserService struct {
	repo repository.UserRepositoryInterface
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepositoryInterface) *UserService {
	return &UserService{repo: repo}
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name,omitempty"`
	LastName      string    `json:"last_name,omitempty"`
	AlertsEnabled bool      `json:"alerts_enabled"`
}

// GetByID retrieves a user profile
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	resp := s.toResponse(user)
	return &resp, nil
}

// SetAlertsEnabled toggles the expiry-alert preference
func (s *UserService) SetAlertsEnabled(id uuid.UUID, enabled bool) (*UserResponse, error) {
	if err := s.repo.SetAlertsEnabled(id, enabled); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update alert preference: %w", err)
	}
	return s.GetByID(id)
}

// toResponse converts a User model to API response
func (s *UserService) toResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		AlertsEnabled: user.AlertsEnabled,
	}
}
