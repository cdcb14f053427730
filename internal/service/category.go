package service

import (
	"fmt"

	"pharmatrack-backend/internal/database/models"
	"pharmatrack-backend/internal/repository"

	"github.com/google/uuid"
)

// CategoryService provides category lookup logic
type CategoryService struct {
	repo repository.CategoryRepositoryInterface
}

// Ensure CategoryService implements CategoryServiceInterface
var _ CategoryServiceInterface = (*CategoryService)(nil)

// NewCategoryService creates a new CategoryService
func NewCategoryService(repo repository.CategoryRepositoryInterface) *CategoryService {
	return &CategoryService{repo: repo}
}

// CategoryResponse represents a single category in API responses
type CategoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Title string    `json:"title"`
}

// List retrieves the full category lookup table
func (s *CategoryService) List() ([]CategoryResponse, error) {
	categories, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = s.toResponse(&c)
	}
	return responses, nil
}

// toResponse converts a Category model to API response
func (s *CategoryService) toResponse(cat *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:    cat.ID,
		Name:  cat.Name,
		Title: cat.Title,
	}
}
