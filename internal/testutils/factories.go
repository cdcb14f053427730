package testutils

import (
	"time"

	"pharmatrack-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The password is "password".
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:         "user-" + id.String()[:8] + "@test.com",
		PasswordHash:  string(hash),
		FirstName:     "Jane",
		LastName:      "Doe",
		AlertsEnabled: true,
		Operator:      false,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithAlertsDisabled creates a user who opted out of expiry alerts
func (f *UserFactory) WithAlertsDisabled() *models.User {
	user := f.Create()
	user.AlertsEnabled = false
	return user
}

// WithOperator creates an operator account
func (f *UserFactory) WithOperator() *models.User {
	user := f.Create()
	user.Operator = true
	return user
}

// CategoryFactory provides methods to create test Category data
type CategoryFactory struct{}

// NewCategoryFactory creates a new CategoryFactory
func NewCategoryFactory() *CategoryFactory {
	return &CategoryFactory{}
}

// Create creates a test Category with default values
func (f *CategoryFactory) Create() *models.Category {
	id := uuid.New()
	return &models.Category{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "CAT-" + id.String()[:8],
		Title: "Test Category",
	}
}

// WithName sets a custom name for the category
func (f *CategoryFactory) WithName(name string) *models.Category {
	category := f.Create()
	category.Name = name
	category.Title = name + " Title"
	return category
}

// DrugFactory provides methods to create test Drug data
type DrugFactory struct{}

// NewDrugFactory creates a new DrugFactory
func NewDrugFactory() *DrugFactory {
	return &DrugFactory{}
}

// Create creates a test Drug with default values, expiring in 90 days
func (f *DrugFactory) Create() *models.Drug {
	id := uuid.New()
	return &models.Drug{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerID:     uuid.New(),
		Name:        "Test Drug " + id.String()[:8],
		CategoryID:  uuid.New(),
		ExpiresAt:   time.Now().Add(90 * 24 * time.Hour),
		Description: "A test drug",
		Notified:    false,
	}
}

// WithOwner sets the owner ID for the drug
func (f *DrugFactory) WithOwner(ownerID uuid.UUID) *models.Drug {
	drug := f.Create()
	drug.OwnerID = ownerID
	return drug
}

// WithName sets a custom name for the drug
func (f *DrugFactory) WithName(name string) *models.Drug {
	drug := f.Create()
	drug.Name = name
	return drug
}

// WithCategory sets the category ID for the drug
func (f *DrugFactory) WithCategory(categoryID uuid.UUID) *models.Drug {
	drug := f.Create()
	drug.CategoryID = categoryID
	return drug
}

// WithExpiry sets a custom expiration time for the drug
func (f *DrugFactory) WithExpiry(expiresAt time.Time) *models.Drug {
	drug := f.Create()
	drug.ExpiresAt = expiresAt
	return drug
}

// WithNotified marks the drug as already alerted
func (f *DrugFactory) WithNotified() *models.Drug {
	drug := f.Create()
	drug.Notified = true
	return drug
}

// FactorySet provides access to all factories
type FactorySet struct {
	User     *UserFactory
	Category *CategoryFactory
	Drug     *DrugFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:     NewUserFactory(),
		Category: NewCategoryFactory(),
		Drug:     NewDrugFactory(),
	}
}

// CreateInventory builds a user, a category and n drugs owned by the user.
// Records are not persisted; callers insert what they need.
func (fs *FactorySet) CreateInventory(n int) (*models.User, *models.Category, []*models.Drug) {
	user := fs.User.Create()
	category := fs.Category.Create()

	drugs := make([]*models.Drug, 0, n)
	for i := 0; i < n; i++ {
		drug := fs.Drug.WithOwner(user.ID)
		drug.CategoryID = category.ID
		drugs = append(drugs, drug)
	}
	return user, category, drugs
}
