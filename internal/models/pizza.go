package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pizza is a single catalog item on a menu. Dimensions are shape-dependent:
// a Round pizza carries DiameterCm, a Rectangle pizza carries WidthCm and
// LengthCm, and the inactive pair stays zero.
type Pizza struct {
	ID          string          `gorm:"type:uuid;primaryKey" json:"id"`
	MenuID      string          `gorm:"type:uuid;index;not null" json:"menu_id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`

	Style     PizzaStyle     `gorm:"type:varchar(32);index" json:"style"`
	Dough     DoughType      `gorm:"type:varchar(32);index" json:"dough"`
	BaseSauce SauceType      `gorm:"type:varchar(32);index" json:"base_sauce"`
	Thickness CrustThickness `gorm:"type:varchar(32);index" json:"thickness"`
	Shape     PizzaShape     `gorm:"type:varchar(16);index" json:"shape"`

	DiameterCm  float64 `json:"diameter_cm"`
	WidthCm     float64 `json:"width_cm"`
	LengthCm    float64 `json:"length_cm"`
	WeightGrams float64 `json:"weight_grams"`
	Kcal        float64 `json:"kcal"`

	Ingredients []Ingredient `gorm:"many2many:pizza_ingredients" json:"ingredients,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Pizza) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// SurfaceAreaCm2 returns the top surface of the pizza in square centimeters:
// π·(d/2)² for Round, width·length for Rectangle. Unknown shapes yield zero
// so that derived per-area metrics degrade to zero instead of dividing by it.
func (p *Pizza) SurfaceAreaCm2() float64 {
	switch p.Shape {
	case ShapeRound:
		radius := p.DiameterCm / 2
		return math.Pi * radius * radius
	case ShapeRectangle:
		return p.WidthCm * p.LengthCm
	default:
		return 0
	}
}
