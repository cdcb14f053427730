package models

// User represents a tenant owning a set of drugs. All inventory access is
// scoped to one user at a time. AlertsEnabled plus a non-blank email make
// the user eligible for expiry notifications.
type User struct {
	BaseModel
	Email         string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash  string `json:"-" gorm:"not null;size:100"`
	FirstName     string `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName      string `json:"last_name" gorm:"size:100" validate:"max=100"`
	AlertsEnabled bool   `json:"alerts_enabled" gorm:"not null;default:true"`
	Operator      bool   `json:"operator" gorm:"not null;default:false"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
