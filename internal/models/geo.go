package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Country is top-level geographic reference data.
type Country struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string `gorm:"uniqueIndex;not null" json:"name"`
	ISOCode string `gorm:"column:iso_code;size:2" json:"iso_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Country) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// City anchors pizzeria addresses; it is the required axis of every search.
type City struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	CountryID string `gorm:"type:uuid;index" json:"country_id"`
	Name      string `gorm:"index;not null" json:"name"`
	Region    string `json:"region"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *City) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Address locates a pizzeria inside a city.
type Address struct {
	ID              string `gorm:"type:uuid;primaryKey" json:"id"`
	CityID          string `gorm:"type:uuid;index;not null" json:"city_id"`
	Street          string `gorm:"not null" json:"street"`
	BuildingNumber  string `json:"building_number"`
	ApartmentNumber string `json:"apartment_number,omitempty"`
	ZipCode         string `json:"zip_code"`

	City City `json:"city,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Address) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// FullAddress renders the address as a single display line.
func (a *Address) FullAddress() string {
	line := fmt.Sprintf("%s %s", a.Street, a.BuildingNumber)
	if a.ApartmentNumber != "" {
		line += "/" + a.ApartmentNumber
	}
	return fmt.Sprintf("%s, %s %s", line, a.ZipCode, a.City.Name)
}
