package repository

import (
	"fmt"
	"strings"
	"time"

	apperrors "pharmatrack-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SortKey is a whitelisted sort column for drug searches.
type SortKey string

const (
	SortByName       SortKey = "name"
	SortByExpiration SortKey = "expiration"
	SortByCategory   SortKey = "category"
)

// ParseSortKey validates a caller-supplied sort key. Anything outside the
// whitelist is an error, never a silent fallback.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortByName:
		return SortByName, nil
	case SortByExpiration:
		return SortByExpiration, nil
	case SortByCategory:
		return SortByCategory, nil
	case "":
		return SortByExpiration, nil
	default:
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidSortKey, s)
	}
}

// DrugCriteria is the sparse set of optional search filters. The zero value
// means "no filtering beyond owner scope". CategoryID must already be
// resolved against the category lookup before building a query.
type DrugCriteria struct {
	NamePattern     string
	CategoryID      *uuid.UUID
	Expired         *bool
	ExpiringSoon    *bool
	ExpirationYear  *int
	ExpirationMonth *int
}

// HasAnyFilter reports whether at least one criterion is set. Unfiltered
// scans are never cached.
func (c DrugCriteria) HasAnyFilter() bool {
	return c.NamePattern != "" ||
		c.CategoryID != nil ||
		c.Expired != nil ||
		c.ExpiringSoon != nil ||
		c.ExpirationYear != nil ||
		c.ExpirationMonth != nil
}

// QueryClause is one named conjunct of a drug query. Naming the clauses
// keeps the owner-scoping clause visible instead of burying it in an
// opaque query value.
type QueryClause struct {
	Name  string
	Apply func(tx *gorm.DB) *gorm.DB
}

// BuildDrugQuery composes an owner-scoped conjunctive query from the given
// criteria. Pure: no I/O, no clock access beyond the caller-supplied now.
// The first clause is always the owner clause; every other clause is ANDed
// after it. soonWindow is the "expiring soon" horizon (normally 30 days).
func BuildDrugQuery(ownerID uuid.UUID, c DrugCriteria, now time.Time, soonWindow time.Duration) ([]QueryClause, error) {
	clauses := []QueryClause{
		{
			Name: "owner",
			Apply: func(tx *gorm.DB) *gorm.DB {
				return tx.Where("drugs.owner_id = ?", ownerID)
			},
		},
	}

	if c.NamePattern != "" {
		pattern := "%" + strings.ToLower(c.NamePattern) + "%"
		clauses = append(clauses, QueryClause{
			Name: "name",
			Apply: func(tx *gorm.DB) *gorm.DB {
				return tx.Where("(LOWER(drugs.name) LIKE ? OR LOWER(drugs.description) LIKE ?)", pattern, pattern)
			},
		})
	}

	if c.CategoryID != nil {
		categoryID := *c.CategoryID
		clauses = append(clauses, QueryClause{
			Name: "category",
			Apply: func(tx *gorm.DB) *gorm.DB {
				return tx.Where("drugs.category_id = ?", categoryID)
			},
		})
	}

	// ExpiringSoon takes precedence over Expired when both are given.
	switch {
	case c.ExpiringSoon != nil && *c.ExpiringSoon:
		until := now.Add(soonWindow)
		clauses = append(clauses, QueryClause{
			Name: "expiring_soon",
			Apply: func(tx *gorm.DB) *gorm.DB {
				return tx.Where("drugs.expires_at >= ? AND drugs.expires_at <= ?", now, until)
			},
		})
	case c.ExpiringSoon != nil && !*c.ExpiringSoon:
		until := now.Add(soonWindow)
		clauses = append(clauses, QueryClause{
			Name: "not_expiring_soon",
			Apply: func(tx *gorm.DB) *gorm.DB {
				return tx.Where("(drugs.expires_at < ? OR drugs.expires_at > ?)", now, until)
			},
		})
	case c.Expired != nil && *c.Expired:
		clauses = append(clauses, QueryClause{
			Name: "expired",
			Apply: func(tx *gorm.DB) *gorm.DB {
				return tx.Where("drugs.expires_at < ?", now)
			},
		})
	case c.Expired != nil && !*c.Expired:
		clauses = append(clauses, QueryClause{
			Name: "not_expired",
			Apply: func(tx *gorm.DB) *gorm.DB {
				return tx.Where("drugs.expires_at >= ?", now)
			},
		})
	}

	if c.ExpirationYear != nil || c.ExpirationMonth != nil {
		upper, err := expirationUpperBound(c.ExpirationYear, c.ExpirationMonth, now)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, QueryClause{
			Name: "expiration_until",
			Apply: func(tx *gorm.DB) *gorm.DB {
				return tx.Where("drugs.expires_at < ?", upper)
			},
		})
	}

	return clauses, nil
}

// expirationUpperBound turns a sparse year/month pair into an exclusive
// upper bound: year-only defaults the month to December, month-only
// defaults the year to the current year. The bound is the first instant of
// the following month.
func expirationUpperBound(year, month *int, now time.Time) (time.Time, error) {
	y := now.Year()
	m := int(time.December)

	if year != nil {
		if *year < 1900 || *year > 9999 {
			return time.Time{}, apperrors.ErrInvalidExpirationRange
		}
		y = *year
	}
	if month != nil {
		if *month < 1 || *month > 12 {
			return time.Time{}, apperrors.ErrInvalidExpirationRange
		}
		m = *month
	}

	start := time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	return start.AddDate(0, 1, 0), nil
}

// ApplyClauses runs every clause against tx in order.
func ApplyClauses(tx *gorm.DB, clauses []QueryClause) *gorm.DB {
	for _, c := range clauses {
		tx = c.Apply(tx)
	}
	return tx
}
