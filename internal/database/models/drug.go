package models

import (
	"time"

	"github.com/google/uuid"
)

// Drug represents one perishable inventory item owned by exactly one user.
// OwnerID is immutable after creation; items never change owner.
// Notified goes false->true once, after a confirmed successful alert send,
// and is never reset except by deleting and recreating the item.
type Drug struct {
	BaseModel
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	CategoryID  uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index" validate:"required"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ExpiresAt   time.Time `json:"expires_at" gorm:"not null;index" validate:"required"`
	Description string    `json:"description" gorm:"size:500" validate:"max=500"`
	Notified    bool      `json:"notified" gorm:"not null;default:false"`
}

// TableName returns the table name for Drug
func (Drug) TableName() string {
	return "drugs"
}

// IsExpired reports whether the drug is already past its expiration date.
func (d *Drug) IsExpired(now time.Time) bool {
	return d.ExpiresAt.Before(now)
}
