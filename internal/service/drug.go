package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pharmatrack-backend/internal/cache"
	"pharmatrack-backend/internal/database/models"
	apperrors "pharmatrack-backend/internal/errors"
	"pharmatrack-backend/internal/logger"
	"pharmatrack-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DrugService provides the tenant-scoped inventory business logic. It is
// the single entry point for both the API layer and the alert dispatcher;
// every public mutation evicts the acting tenant's cache entries itself,
// so invalidation can never be skipped by an internal call path.
type DrugService struct {
	drugRepo     repository.DrugRepositoryInterface
	categoryRepo repository.CategoryRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	store        cache.Store
	mailer       Mailer
	validator    *validator.Validate
	soonWindow   time.Duration
	now          func() time.Time
}

// Ensure DrugService implements DrugServiceInterface
var _ DrugServiceInterface = (*DrugService)(nil)

// NewDrugService creates a new DrugService. soonWindow is the "expiring
// soon" horizon used by search filters (normally 30 days).
func NewDrugService(
	drugRepo repository.DrugRepositoryInterface,
	categoryRepo repository.CategoryRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	store cache.Store,
	mailer Mailer,
	validator *validator.Validate,
	soonWindow time.Duration,
) *DrugService {
	if soonWindow <= 0 {
		soonWindow = 30 * 24 * time.Hour
	}
	return &DrugService{
		drugRepo:     drugRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		store:        store,
		mailer:       mailer,
		validator:    validator,
		soonWindow:   soonWindow,
		now:          time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *DrugService) WithClock(now func() time.Time) *DrugService {
	s.now = now
	return s
}

// Request / response shapes

// CreateDrugRequest is the payload for creating a drug
type CreateDrugRequest struct {
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	Category    string    `json:"category" validate:"required"`
	ExpiresAt   time.Time `json:"expires_at" validate:"required"`
	Description string    `json:"description" validate:"max=500"`
}

// UpdateDrugRequest is the payload for updating a drug. Nil fields are
// left unchanged. The owner can never be changed.
type UpdateDrugRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=100"`
	Category    *string    `json:"category"`
	ExpiresAt   *time.Time `json:"expires_at"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
}

// SearchRequest carries the optional filter criteria plus pagination and sort
type SearchRequest struct {
	Name            string `form:"name"`
	Category        string `form:"category"`
	Expired         *bool  `form:"expired"`
	ExpiringSoon    *bool  `form:"expiring_soon"`
	ExpirationYear  *int   `form:"expiration_year"`
	ExpirationMonth *int   `form:"expiration_month"`
	Page            int    `form:"page"`
	PageSize        int    `form:"page_size"`
	SortBy          string `form:"sort_by"`
}

// DrugResponse represents a single drug in API responses
type DrugResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	ExpiresAt   time.Time `json:"expires_at"`
	Description string    `json:"description,omitempty"`
	Notified    bool      `json:"notified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DrugListResponse represents a paginated list of drugs
type DrugListResponse struct {
	Drugs    []DrugResponse `json:"drugs"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// StatisticsResponse represents the per-tenant inventory statistics
type StatisticsResponse struct {
	Total       int64            `json:"total"`
	Expired     int64            `json:"expired"`
	Active      int64            `json:"active"`
	Notified    int64            `json:"notified"`
	PerCategory map[string]int64 `json:"per_category"`
}

// AlertResult reports the outcome of one tenant's compose-send-mark unit
type AlertResult struct {
	Sent          bool   `json:"sent"`
	ItemCount     int    `json:"item_count"`
	Recipient     string `json:"recipient,omitempty"`
	SkippedReason string `json:"skipped_reason,omitempty"`
}

// searchKeyArgs is the normalized argument tuple for search cache keys.
// Category is keyed by resolved id, not raw input, so "pills" and "PILLS"
// share an entry.
type searchKeyArgs struct {
	Name            string
	CategoryID      *uuid.UUID
	Expired         *bool
	ExpiringSoon    *bool
	ExpirationYear  *int
	ExpirationMonth *int
	Page            int
	PageSize        int
	Sort            repository.SortKey
}

// Create adds a new drug to the acting tenant's inventory
func (s *DrugService) Create(ctx context.Context, ownerID uuid.UUID, req CreateDrugRequest) (*DrugResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	category, err := s.resolveCategory(req.Category)
	if err != nil {
		return nil, err
	}

	drug := &models.Drug{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(req.Name),
		CategoryID:  category.ID,
		ExpiresAt:   req.ExpiresAt,
		Description: req.Description,
	}
	if err := s.drugRepo.Create(drug); err != nil {
		return nil, fmt.Errorf("failed to create drug: %w", err)
	}
	drug.Category = category

	if err := s.evictOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	resp := s.toResponse(drug)
	return &resp, nil
}

// GetByID retrieves one drug by id, scoped to the acting tenant
func (s *DrugService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*DrugResponse, error) {
	key := cache.Key(ownerID, cache.OpGetByID, id)
	var cached DrugResponse
	if s.readCached(ctx, key, &cached) {
		return &cached, nil
	}

	drug, err := s.drugRepo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDrugNotFound
		}
		return nil, fmt.Errorf("failed to get drug: %w", err)
	}

	resp := s.toResponse(drug)
	s.writeCached(ctx, key, resp)
	return &resp, nil
}

// Update modifies an existing drug of the acting tenant
func (s *DrugService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateDrugRequest) (*DrugResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	drug, err := s.drugRepo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDrugNotFound
		}
		return nil, fmt.Errorf("failed to get drug: %w", err)
	}

	if req.Name != nil {
		drug.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		category, err := s.resolveCategory(*req.Category)
		if err != nil {
			return nil, err
		}
		drug.CategoryID = category.ID
		drug.Category = category
	}
	if req.ExpiresAt != nil {
		drug.ExpiresAt = *req.ExpiresAt
	}
	if req.Description != nil {
		drug.Description = *req.Description
	}

	if err := s.drugRepo.Update(drug); err != nil {
		return nil, fmt.Errorf("failed to update drug: %w", err)
	}

	if err := s.evictOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	resp := s.toResponse(drug)
	return &resp, nil
}

// Delete removes one drug of the acting tenant
func (s *DrugService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.drugRepo.Delete(id, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDrugNotFound
		}
		return fmt.Errorf("failed to delete drug: %w", err)
	}

	return s.evictOwner(ctx, ownerID)
}

// DeleteAllForOwner removes the tenant's entire inventory. Mass deletion
// requires re-confirming the tenant's password; a mismatch deletes nothing.
func (s *DrugService) DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID, passwordConfirmation string) (int64, error) {
	user, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(passwordConfirmation)) != nil {
		return 0, apperrors.ErrReauthFailed
	}

	deleted, err := s.drugRepo.DeleteAllForOwner(ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete drugs: %w", err)
	}

	if err := s.evictOwner(ctx, ownerID); err != nil {
		return 0, err
	}
	return deleted, nil
}

// Search runs a filtered, paginated, sorted query over the tenant's
// inventory. Results are cached only when at least one criterion is set
// and the result is non-empty.
func (s *DrugService) Search(ctx context.Context, ownerID uuid.UUID, req SearchRequest) (*DrugListResponse, error) {
	page, pageSize, err := normalizePage(req.Page, req.PageSize)
	if err != nil {
		return nil, apperrors.NewValidationError("pagination", err.Error())
	}

	sort, err := repository.ParseSortKey(req.SortBy)
	if err != nil {
		return nil, apperrors.NewValidationError("sort_by", err.Error())
	}

	criteria := repository.DrugCriteria{
		NamePattern:     strings.TrimSpace(req.Name),
		Expired:         req.Expired,
		ExpiringSoon:    req.ExpiringSoon,
		ExpirationYear:  req.ExpirationYear,
		ExpirationMonth: req.ExpirationMonth,
	}
	if req.Category != "" {
		category, err := s.resolveCategory(req.Category)
		if err != nil {
			return nil, err
		}
		criteria.CategoryID = &category.ID
	}

	cacheable := criteria.HasAnyFilter()
	keyArgs := searchKeyArgs{
		Name:            criteria.NamePattern,
		CategoryID:      criteria.CategoryID,
		Expired:         criteria.Expired,
		ExpiringSoon:    criteria.ExpiringSoon,
		ExpirationYear:  criteria.ExpirationYear,
		ExpirationMonth: criteria.ExpirationMonth,
		Page:            page,
		PageSize:        pageSize,
		Sort:            sort,
	}
	key := cache.Key(ownerID, cache.OpSearch, keyArgs)

	if cacheable {
		var cached DrugListResponse
		if s.readCached(ctx, key, &cached) {
			return &cached, nil
		}
	}

	clauses, err := repository.BuildDrugQuery(ownerID, criteria, s.now(), s.soonWindow)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidExpirationRange) {
			return nil, apperrors.NewValidationError("expiration", err.Error())
		}
		return nil, err
	}

	drugs, total, err := s.drugRepo.Search(clauses, sort, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search drugs: %w", err)
	}

	resp := &DrugListResponse{
		Drugs:    make([]DrugResponse, len(drugs)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i, d := range drugs {
		resp.Drugs[i] = s.toResponse(&d)
	}

	// Empty results are deliberately not cached so a drug created moments
	// later shows up on the next read.
	if cacheable && len(resp.Drugs) > 0 {
		s.writeCached(ctx, key, resp)
	}

	return resp, nil
}

// Statistics returns the tenant's inventory counts. Aggregate rows with a
// null category or null count are dropped, not coerced to zero.
func (s *DrugService) Statistics(ctx context.Context, ownerID uuid.UUID) (*StatisticsResponse, error) {
	key := cache.Key(ownerID, cache.OpStatistics)
	var cached StatisticsResponse
	if s.readCached(ctx, key, &cached) {
		return &cached, nil
	}

	total, err := s.drugRepo.CountForOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count drugs: %w", err)
	}
	expired, err := s.drugRepo.CountExpiredForOwner(ownerID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to count expired drugs: %w", err)
	}
	notified, err := s.drugRepo.CountNotifiedForOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count notified drugs: %w", err)
	}
	rows, err := s.drugRepo.CountByCategoryForOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate categories: %w", err)
	}

	perCategory := make(map[string]int64, len(rows))
	for _, row := range rows {
		if row.CategoryName == nil || row.Count == nil {
			continue
		}
		perCategory[*row.CategoryName] = *row.Count
	}

	resp := &StatisticsResponse{
		Total:       total,
		Expired:     expired,
		Active:      total - expired,
		Notified:    notified,
		PerCategory: perCategory,
	}
	s.writeCached(ctx, key, resp)
	return resp, nil
}

// NotifyExpiring is the per-tenant compose-send-mark unit invoked by the
// alert dispatcher. It is a public mutation: on a successful send it marks
// the whole batch notified and evicts the tenant's cache before returning.
// An ineligible tenant or an empty batch is a skip, not an error.
func (s *DrugService) NotifyExpiring(ctx context.Context, ownerID uuid.UUID, cutoff time.Time) (*AlertResult, error) {
	log := logger.WithContext(ctx).WithField("owner_id", ownerID.String())

	user, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &AlertResult{SkippedReason: "tenant record missing"}, nil
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.AlertsEnabled {
		return &AlertResult{SkippedReason: "alerts disabled"}, nil
	}
	if strings.TrimSpace(user.Email) == "" {
		return &AlertResult{SkippedReason: "missing email"}, nil
	}

	drugs, err := s.drugRepo.FindUnnotifiedForOwner(ownerID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to collect expiring drugs: %w", err)
	}

	// Defensive re-filter: a stale read must not lead to a duplicate alert.
	batch := drugs[:0]
	for _, d := range drugs {
		if !d.Notified {
			batch = append(batch, d)
		}
	}
	if len(batch) == 0 {
		return &AlertResult{SkippedReason: "no qualifying items"}, nil
	}

	subject, body := composeAlert(batch)
	if err := s.sendWithContext(ctx, user.Email, subject, body); err != nil {
		return nil, apperrors.NewSendFailureError(user.Email, err)
	}

	ids := make([]uuid.UUID, len(batch))
	for i, d := range batch {
		ids[i] = d.ID
	}
	if err := s.drugRepo.MarkNotified(ids); err != nil {
		// The message went out but the flag did not stick; surface it so
		// the failure is visible instead of silently re-alerting tomorrow.
		return nil, fmt.Errorf("alert sent but failed to mark %d drugs notified: %w", len(ids), err)
	}

	if err := s.evictOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	log.WithField("items", len(batch)).Info("expiry alert sent")
	return &AlertResult{Sent: true, ItemCount: len(batch), Recipient: user.Email}, nil
}

// sendWithContext runs the synchronous Send under the caller's deadline.
// An already-expired context never reaches the transport: handing the
// message over after the deadline could deliver it without the notified
// flag ever being set, re-alerting the tenant on the next run.
func (s *DrugService) sendWithContext(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() {
		done <- s.mailer.Send(ctx, to, subject, body)
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// composeAlert renders one consolidated message listing every item
func composeAlert(drugs []models.Drug) (subject, body string) {
	subject = fmt.Sprintf("PharmaTrack: %d item(s) in your inventory are expiring", len(drugs))

	var b strings.Builder
	b.WriteString("The following items in your inventory have expired or are about to expire:\n\n")
	for _, d := range drugs {
		b.WriteString(fmt.Sprintf("  - %s (expires %s)", d.Name, d.ExpiresAt.Format("2006-01-02")))
		if d.Description != "" {
			b.WriteString(": " + d.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nPlease review your inventory and replace expired items.\n")
	return subject, b.String()
}

// Helpers

func (s *DrugService) resolveCategory(name string) (*models.Category, error) {
	category, err := s.categoryRepo.ResolveByName(strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("category", "no such category: "+name)
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	return category, nil
}

// evictOwner drops every cached entry of the acting tenant. Eviction
// failure fails the surrounding write: returning success and then serving
// stale reads is worse than reporting the error.
func (s *DrugService) evictOwner(ctx context.Context, ownerID uuid.UUID) error {
	if err := s.store.DeleteByPrefix(ctx, cache.TenantPrefix(ownerID)); err != nil {
		return apperrors.NewCacheUnavailableError("evict", err)
	}
	return nil
}

// readCached loads and decodes a cached entry. Any cache failure degrades
// to a miss; reads never fail because the cache is down.
func (s *DrugService) readCached(ctx context.Context, key string, out any) bool {
	data, found, err := s.store.Get(ctx, key)
	if err != nil {
		logger.WithContext(ctx).WithField("key", key).Warnf("cache read failed, falling back to store: %v", err)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.WithContext(ctx).WithField("key", key).Warnf("cache entry corrupt, ignoring: %v", err)
		return false
	}
	return true
}

func (s *DrugService) writeCached(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		logger.WithContext(ctx).WithField("key", key).Warnf("cache write failed: %v", err)
	}
}

// normalizePage fills in defaults for absent pagination values and caps
// the page size. Negative values are a caller mistake, not an absence.
func normalizePage(page, pageSize int) (int, int, error) {
	if page < 0 || pageSize < 0 {
		return 0, 0, apperrors.ErrInvalidPaginationParams
	}
	if page == 0 {
		page = 1
	}
	if pageSize == 0 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize, nil
}

// toResponse converts a Drug model to API response
func (s *DrugService) toResponse(drug *models.Drug) DrugResponse {
	categoryName := ""
	if drug.Category != nil {
		categoryName = drug.Category.Name
	}
	return DrugResponse{
		ID:          drug.ID,
		Name:        drug.Name,
		Category:    categoryName,
		ExpiresAt:   drug.ExpiresAt,
		Description: drug.Description,
		Notified:    drug.Notified,
		CreatedAt:   drug.CreatedAt,
		UpdatedAt:   drug.UpdatedAt,
	}
}
