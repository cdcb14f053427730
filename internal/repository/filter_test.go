package repository

import (
	"testing"
	"time"

	apperrors "pharmatrack-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SortKey
		wantErr bool
	}{
		{name: "name", input: "name", want: SortByName},
		{name: "expiration", input: "expiration", want: SortByExpiration},
		{name: "category", input: "category", want: SortByCategory},
		{name: "empty defaults to expiration", input: "", want: SortByExpiration},
		{name: "case insensitive", input: "NAME", want: SortByName},
		{name: "surrounding whitespace", input: "  expiration  ", want: SortByExpiration},
		{name: "unknown key rejected", input: "price", wantErr: true},
		{name: "sql injection rejected", input: "name; DROP TABLE drugs", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortKey(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidSortKey)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasAnyFilter(t *testing.T) {
	catID := uuid.New()

	assert.False(t, DrugCriteria{}.HasAnyFilter())
	assert.True(t, DrugCriteria{NamePattern: "aspirin"}.HasAnyFilter())
	assert.True(t, DrugCriteria{CategoryID: &catID}.HasAnyFilter())
	assert.True(t, DrugCriteria{Expired: boolPtr(false)}.HasAnyFilter())
	assert.True(t, DrugCriteria{ExpiringSoon: boolPtr(true)}.HasAnyFilter())
	assert.True(t, DrugCriteria{ExpirationYear: intPtr(2026)}.HasAnyFilter())
	assert.True(t, DrugCriteria{ExpirationMonth: intPtr(6)}.HasAnyFilter())
}

func clauseNames(clauses []QueryClause) []string {
	names := make([]string, len(clauses))
	for i, c := range clauses {
		names[i] = c.Name
	}
	return names
}

func TestBuildDrugQuery(t *testing.T) {
	ownerID := uuid.New()
	catID := uuid.New()
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	window := 30 * 24 * time.Hour

	tests := []struct {
		name     string
		criteria DrugCriteria
		want     []string
	}{
		{
			name:     "no criteria yields owner clause only",
			criteria: DrugCriteria{},
			want:     []string{"owner"},
		},
		{
			name:     "name filter",
			criteria: DrugCriteria{NamePattern: "aspirin"},
			want:     []string{"owner", "name"},
		},
		{
			name:     "category filter",
			criteria: DrugCriteria{CategoryID: &catID},
			want:     []string{"owner", "category"},
		},
		{
			name:     "expired true",
			criteria: DrugCriteria{Expired: boolPtr(true)},
			want:     []string{"owner", "expired"},
		},
		{
			name:     "expired false",
			criteria: DrugCriteria{Expired: boolPtr(false)},
			want:     []string{"owner", "not_expired"},
		},
		{
			name:     "expiring soon true",
			criteria: DrugCriteria{ExpiringSoon: boolPtr(true)},
			want:     []string{"owner", "expiring_soon"},
		},
		{
			name:     "expiring soon false",
			criteria: DrugCriteria{ExpiringSoon: boolPtr(false)},
			want:     []string{"owner", "not_expiring_soon"},
		},
		{
			name:     "expiring soon wins over expired",
			criteria: DrugCriteria{ExpiringSoon: boolPtr(true), Expired: boolPtr(true)},
			want:     []string{"owner", "expiring_soon"},
		},
		{
			name:     "year and month bound",
			criteria: DrugCriteria{ExpirationYear: intPtr(2026), ExpirationMonth: intPtr(6)},
			want:     []string{"owner", "expiration_until"},
		},
		{
			name:     "year only bound",
			criteria: DrugCriteria{ExpirationYear: intPtr(2027)},
			want:     []string{"owner", "expiration_until"},
		},
		{
			name: "everything combined",
			criteria: DrugCriteria{
				NamePattern:    "asp",
				CategoryID:     &catID,
				Expired:        boolPtr(true),
				ExpirationYear: intPtr(2026),
			},
			want: []string{"owner", "name", "category", "expired", "expiration_until"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clauses, err := BuildDrugQuery(ownerID, tt.criteria, now, window)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, clauseNames(clauses))
		})
	}
}

func TestBuildDrugQueryInvalidRange(t *testing.T) {
	ownerID := uuid.New()
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	window := 30 * 24 * time.Hour

	tests := []struct {
		name     string
		criteria DrugCriteria
	}{
		{name: "month zero", criteria: DrugCriteria{ExpirationMonth: intPtr(0)}},
		{name: "month thirteen", criteria: DrugCriteria{ExpirationMonth: intPtr(13)}},
		{name: "negative month", criteria: DrugCriteria{ExpirationMonth: intPtr(-1)}},
		{name: "year too small", criteria: DrugCriteria{ExpirationYear: intPtr(1800)}},
		{name: "year too large", criteria: DrugCriteria{ExpirationYear: intPtr(10000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clauses, err := BuildDrugQuery(ownerID, tt.criteria, now, window)
			assert.Nil(t, clauses)
			assert.ErrorIs(t, err, apperrors.ErrInvalidExpirationRange)
		})
	}
}

func TestExpirationUpperBound(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		year  *int
		month *int
		want  time.Time
	}{
		{
			name:  "year and month",
			year:  intPtr(2026),
			month: intPtr(6),
			want:  time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "year only defaults month to december",
			year: intPtr(2027),
			want: time.Date(2028, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "month only defaults year to current",
			month: intPtr(3),
			want:  time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "december rolls into next year",
			year:  intPtr(2026),
			month: intPtr(12),
			want:  time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expirationUpperBound(tt.year, tt.month, now)
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}
