package repository

import (
	"time"

	"pharmatrack-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CategoryCount is one row of the per-category aggregate. Both fields are
// pointers because a LEFT JOIN can yield null rows; the service drops them
// instead of coercing to zero.
type CategoryCount struct {
	CategoryName *string
	Count        *int64
}

// DrugRepositoryInterface defines the interface for drug repository operations.
// Every method is owner-scoped except the dispatcher scan methods, which
// re-partition results by owner before anything tenant-visible happens.
type DrugRepositoryInterface interface {
	Create(drug *models.Drug) error
	GetByIDAndOwner(id, ownerID uuid.UUID) (*models.Drug, error)
	Update(drug *models.Drug) error
	Delete(id, ownerID uuid.UUID) error
	DeleteAllForOwner(ownerID uuid.UUID) (int64, error)
	Search(clauses []QueryClause, sort SortKey, limit, offset int) ([]models.Drug, int64, error)
	CountForOwner(ownerID uuid.UUID) (int64, error)
	CountExpiredForOwner(ownerID uuid.UUID, now time.Time) (int64, error)
	CountNotifiedForOwner(ownerID uuid.UUID) (int64, error)
	CountByCategoryForOwner(ownerID uuid.UUID) ([]CategoryCount, error)
	FindOwnersWithUnnotified(cutoff time.Time) ([]uuid.UUID, error)
	FindUnnotifiedForOwner(ownerID uuid.UUID, cutoff time.Time) ([]models.Drug, error)
	MarkNotified(ids []uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	SetAlertsEnabled(id uuid.UUID, enabled bool) error
}

// CategoryRepositoryInterface defines the interface for category repository operations
type CategoryRepositoryInterface interface {
	GetAll() ([]models.Category, error)
	GetByID(id uuid.UUID) (*models.Category, error)
	ResolveByName(name string) (*models.Category, error)
}
