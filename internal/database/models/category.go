package models

// Category is one entry of the fixed drug-category lookup table.
// Names are resolved case-insensitively; the set is seeded at startup
// and never mutated through the API.
type Category struct {
	BaseModel
	Name  string `json:"name" gorm:"uniqueIndex;not null;size:50" validate:"required,min=2,max=50"`
	Title string `json:"title" gorm:"not null;size:100" validate:"required,max=100"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}

// Seeded category names. Kept here so the seed script and tests share one list.
var DefaultCategoryNames = []string{
	"PILLS",
	"SYRUP",
	"INJECTION",
	"OINTMENT",
	"DROPS",
	"SPRAY",
	"OTHER",
}
