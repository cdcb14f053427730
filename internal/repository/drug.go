package repository

import (
	"time"

	"pharmatrack-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DrugRepository handles database operations for drugs
type DrugRepository struct {
	db *gorm.DB
}

// Ensure DrugRepository implements DrugRepositoryInterface
var _ DrugRepositoryInterface = (*DrugRepository)(nil)

// NewDrugRepository creates a new drug repository
func NewDrugRepository(db *gorm.DB) *DrugRepository {
	return &DrugRepository{db: db}
}

// Create inserts a new drug
func (r *DrugRepository) Create(drug *models.Drug) error {
	return r.db.Create(drug).Error
}

// GetByIDAndOwner retrieves a drug by the id+owner composite. A drug that
// exists but belongs to another owner is reported as not found.
func (r *DrugRepository) GetByIDAndOwner(id, ownerID uuid.UUID) (*models.Drug, error) {
	var drug models.Drug
	err := r.db.Preload("Category").
		First(&drug, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &drug, nil
}

// Update persists changes to an existing drug
func (r *DrugRepository) Update(drug *models.Drug) error {
	return r.db.Save(drug).Error
}

// Delete removes a drug scoped by owner
func (r *DrugRepository) Delete(id, ownerID uuid.UUID) error {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Drug{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAllForOwner removes every drug belonging to the owner and returns
// how many rows were deleted
func (r *DrugRepository) DeleteAllForOwner(ownerID uuid.UUID) (int64, error) {
	result := r.db.Where("owner_id = ?", ownerID).Delete(&models.Drug{})
	return result.RowsAffected, result.Error
}

// Search runs the composed query clauses with pagination and sorting.
// The clause list always carries the owner clause first (see BuildDrugQuery).
func (r *DrugRepository) Search(clauses []QueryClause, sort SortKey, limit, offset int) ([]models.Drug, int64, error) {
	var drugs []models.Drug
	var total int64

	base := ApplyClauses(r.db.Model(&models.Drug{}), clauses)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := ApplyClauses(r.db.Model(&models.Drug{}), clauses).Preload("Category")
	switch sort {
	case SortByName:
		query = query.Order("drugs.name ASC")
	case SortByCategory:
		query = query.
			Joins("LEFT JOIN categories ON categories.id = drugs.category_id").
			Order("categories.name ASC")
	default:
		query = query.Order("drugs.expires_at ASC")
	}

	if err := query.Limit(limit).Offset(offset).Find(&drugs).Error; err != nil {
		return nil, 0, err
	}

	return drugs, total, nil
}

// CountForOwner counts all drugs of one owner
func (r *DrugRepository) CountForOwner(ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Drug{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

// CountExpiredForOwner counts the owner's drugs with an expiration date in the past
func (r *DrugRepository) CountExpiredForOwner(ownerID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Drug{}).
		Where("owner_id = ? AND expires_at < ?", ownerID, now).
		Count(&count).Error
	return count, err
}

// CountNotifiedForOwner counts the owner's drugs already flagged as notified
func (r *DrugRepository) CountNotifiedForOwner(ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Drug{}).
		Where("owner_id = ? AND notified = ?", ownerID, true).
		Count(&count).Error
	return count, err
}

// CountByCategoryForOwner aggregates the owner's drug counts grouped by
// category name. LEFT JOIN so drugs with a dangling category id still
// produce a (null, count) row; the service layer drops those.
func (r *DrugRepository) CountByCategoryForOwner(ownerID uuid.UUID) ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.Model(&models.Drug{}).
		Select("categories.name AS category_name, COUNT(drugs.id) AS count").
		Joins("LEFT JOIN categories ON categories.id = drugs.category_id").
		Where("drugs.owner_id = ?", ownerID).
		Group("categories.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindOwnersWithUnnotified returns the distinct owner ids that have at
// least one unnotified drug expiring at or before the cutoff. This is the
// only cross-tenant scan in the system; callers re-partition per owner
// before any tenant-visible effect.
func (r *DrugRepository) FindOwnersWithUnnotified(cutoff time.Time) ([]uuid.UUID, error) {
	var ownerIDs []uuid.UUID
	err := r.db.Model(&models.Drug{}).
		Distinct("owner_id").
		Where("expires_at <= ? AND notified = ?", cutoff, false).
		Pluck("owner_id", &ownerIDs).Error
	return ownerIDs, err
}

// FindUnnotifiedForOwner returns one owner's unnotified drugs expiring at
// or before the cutoff, ordered by expiration
func (r *DrugRepository) FindUnnotifiedForOwner(ownerID uuid.UUID, cutoff time.Time) ([]models.Drug, error) {
	var drugs []models.Drug
	err := r.db.Preload("Category").
		Where("owner_id = ? AND expires_at <= ? AND notified = ?", ownerID, cutoff, false).
		Order("expires_at ASC").
		Find(&drugs).Error
	return drugs, err
}

// MarkNotified flips the notified flag to true for the whole batch in one
// transaction. Either every id in the batch is marked or none are.
func (r *DrugRepository) MarkNotified(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Drug{}).
			Where("id IN ?", ids).
			Update("notified", true).Error
	})
}
