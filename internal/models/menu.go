package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Menu groups the pizzas a pizzeria offers. At most one menu per pizzeria is
// active at a time; only pizzas on the active menu are search-eligible. The
// invariant is maintained by the activation workflow, which deactivates
// sibling menus in the same transaction.
type Menu struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	PizzeriaID  string `gorm:"type:uuid;index;not null" json:"pizzeria_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	IsActive    bool   `gorm:"index" json:"is_active"`

	Pizzas []Pizza `gorm:"constraint:OnDelete:CASCADE" json:"pizzas,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Menu) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
