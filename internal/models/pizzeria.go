package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pizzeria is a physical restaurant location operating under a brand.
type Pizzeria struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID     string `gorm:"type:uuid;index;not null" json:"brand_id"`
	AddressID   string `gorm:"type:uuid;not null" json:"address_id"`
	Name        string `gorm:"not null" json:"name"`
	PhoneNumber string `json:"phone_number"`

	DeliveryCost                  decimal.Decimal `gorm:"type:decimal(10,2)" json:"delivery_cost"`
	MinOrderAmount                decimal.Decimal `gorm:"type:decimal(10,2)" json:"min_order_amount"`
	ServiceFee                    decimal.Decimal `gorm:"type:decimal(10,2)" json:"service_fee"`
	AveragePreparationTimeMinutes int             `json:"average_preparation_time_minutes"`
	MaxDeliveryRangeKm            float64         `json:"max_delivery_range_km"`

	Brand   Brand   `json:"brand,omitempty"`
	Address Address `json:"address,omitempty"`
	Menus   []Menu  `json:"menus,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the plural form; gorm's pluralizer would otherwise
// derive "pizzeria", which disagrees with the handwritten SQL joins.
func (Pizzeria) TableName() string {
	return "pizzerias"
}

func (p *Pizzeria) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
