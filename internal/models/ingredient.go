package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is a tag attached to pizzas. The two flags drive dietary
// badges in the storefront.
type Ingredient struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string `gorm:"uniqueIndex;not null" json:"name"`
	IsAllergen bool   `json:"is_allergen"`
	IsMeat     bool   `json:"is_meat"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Ingredient) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
