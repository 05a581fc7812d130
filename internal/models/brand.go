package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Brand is a restaurant chain owned by a marketplace user. Pizzerias hang
// off a brand; search filters by brand id.
type Brand struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string `gorm:"uniqueIndex;not null" json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
	OwnerID uint   `gorm:"index" json:"owner_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Brand) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
