package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// Mailer is the outbound email transport. Synchronous from the caller's
// point of view; a nil error means the message was accepted for delivery.
// Implementations must honor ctx so an expired deadline stops the
// delivery instead of letting it complete after the caller gave up.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// DrugServiceInterface defines the tenant-scoped inventory operations
type DrugServiceInterface interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateDrugRequest) (*DrugResponse, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*DrugResponse, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateDrugRequest) (*DrugResponse, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID, passwordConfirmation string) (int64, error)
	Search(ctx context.Context, ownerID uuid.UUID, req SearchRequest) (*DrugListResponse, error)
	Statistics(ctx context.Context, ownerID uuid.UUID) (*StatisticsResponse, error)
	NotifyExpiring(ctx context.Context, ownerID uuid.UUID, cutoff time.Time) (*AlertResult, error)
}

// AlertServiceInterface defines the alert dispatcher entry points
type AlertServiceInterface interface {
	SendAlertsForTenant(ctx context.Context, ownerID uuid.UUID, horizon time.Duration) (*AlertResult, error)
	SendAlertsForAllTenants(ctx context.Context) (*BatchAlertResult, error)
}

// CategoryServiceInterface defines category lookup operations
type CategoryServiceInterface interface {
	List() ([]CategoryResponse, error)
}

// UserServiceInterface defines tenant profile operations
type UserServiceInterface interface {
	GetByID(id uuid.UUID) (*UserResponse, error)
	SetAlertsEnabled(id uuid.UUID, enabled bool) (*UserResponse, error)
}
