package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Unfiltered pizzeria quick searches return at most this many rows.
const quickSearchLimit = 20

// CreatePizzeriaInput opens a new location under an existing brand. The city
// is matched by name and created on the fly when unknown; a first, active
// menu is bootstrapped alongside.
type CreatePizzeriaInput struct {
	BrandID     string `json:"brand_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number"`

	DeliveryCost                  decimal.Decimal `json:"delivery_cost"`
	MinOrderAmount                decimal.Decimal `json:"min_order_amount"`
	ServiceFee                    decimal.Decimal `json:"service_fee"`
	AveragePreparationTimeMinutes int             `json:"average_preparation_time_minutes"`
	MaxDeliveryRangeKm            float64         `json:"max_delivery_range_km"`

	Address CreateAddressInput `json:"address" binding:"required"`
}

// CreateAddressInput locates the new pizzeria.
type CreateAddressInput struct {
	Street          string `json:"street" binding:"required"`
	BuildingNumber  string `json:"building_number"`
	ApartmentNumber string `json:"apartment_number"`
	ZipCode         string `json:"zip_code"`
	CityName        string `json:"city_name" binding:"required"`
	Region          string `json:"region"`
}

// PizzeriaDetails is the public single-pizzeria view.
type PizzeriaDetails struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BrandName   string `json:"brand_name"`
	PhoneNumber string `json:"phone_number"`

	DeliveryCost                  decimal.Decimal `json:"delivery_cost"`
	MinOrderAmount                decimal.Decimal `json:"min_order_amount"`
	ServiceFee                    decimal.Decimal `json:"service_fee"`
	AveragePreparationTimeMinutes int             `json:"average_preparation_time_minutes"`

	// IsOpen is a stub: real-time availability is not implemented.
	IsOpen bool `json:"is_open"`

	ActiveMenuID string `json:"active_menu_id,omitempty"`

	Street      string `json:"street"`
	City        string `json:"city"`
	FullAddress string `json:"full_address"`
}

// PizzeriaListItem is one row of the pizzeria quick search.
type PizzeriaListItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BrandName string `json:"brand_name"`
	LogoURL   string `json:"logo_url,omitempty"`
	City      string `json:"city"`
	Street    string `json:"street"`

	DeliveryCost                  decimal.Decimal `json:"delivery_cost"`
	AveragePreparationTimeMinutes int             `json:"average_preparation_time_minutes"`
	MinOrderAmount                decimal.Decimal `json:"min_order_amount"`
	IsOpen                        bool            `json:"is_open"`
}

// PizzeriaService manages restaurant locations.
type PizzeriaService interface {
	CreatePizzeria(input CreatePizzeriaInput, ownerID uint, isAdmin bool) (*models.Pizzeria, error)
	GetPizzeria(id string) (*PizzeriaDetails, error)
	// QuickSearch filters pizzerias by partial city name and a phrase
	// matched against pizzeria or brand names. With no filters the result
	// is capped instead of dumping the whole table.
	QuickSearch(city, phrase string) ([]PizzeriaListItem, error)
}

type pizzeriaService struct {
	db *gorm.DB
}

// NewPizzeriaService creates a new instance of PizzeriaService
func NewPizzeriaService(db *gorm.DB) PizzeriaService {
	return &pizzeriaService{db: db}
}

func (s *pizzeriaService) CreatePizzeria(input CreatePizzeriaInput, ownerID uint, isAdmin bool) (*models.Pizzeria, error) {
	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", input.BrandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("brand %s: %w", input.BrandID, ErrNotFound)
		}
		return nil, err
	}
	if !isAdmin && brand.OwnerID != ownerID {
		return nil, fmt.Errorf("brand %s belongs to another owner: %w", brand.ID, ErrForbidden)
	}

	var pizzeria models.Pizzeria
	err := s.db.Transaction(func(tx *gorm.DB) error {
		city, err := findOrCreateCity(tx, input.Address.CityName, input.Address.Region)
		if err != nil {
			return err
		}

		address := models.Address{
			CityID:          city.ID,
			Street:          input.Address.Street,
			BuildingNumber:  input.Address.BuildingNumber,
			ApartmentNumber: input.Address.ApartmentNumber,
			ZipCode:         input.Address.ZipCode,
		}
		if err := tx.Create(&address).Error; err != nil {
			return err
		}

		pizzeria = models.Pizzeria{
			BrandID:                       brand.ID,
			AddressID:                     address.ID,
			Name:                          input.Name,
			PhoneNumber:                   input.PhoneNumber,
			DeliveryCost:                  input.DeliveryCost,
			MinOrderAmount:                input.MinOrderAmount,
			ServiceFee:                    input.ServiceFee,
			AveragePreparationTimeMinutes: input.AveragePreparationTimeMinutes,
			MaxDeliveryRangeKm:            input.MaxDeliveryRangeKm,
		}
		if err := tx.Create(&pizzeria).Error; err != nil {
			return err
		}

		// A pizzeria always starts with one active menu.
		menu := models.Menu{
			PizzeriaID: pizzeria.ID,
			Name:       fmt.Sprintf("Menu %s", input.Name),
			IsActive:   true,
		}
		return tx.Create(&menu).Error
	})
	if err != nil {
		return nil, err
	}
	return &pizzeria, nil
}

func (s *pizzeriaService) GetPizzeria(id string) (*PizzeriaDetails, error) {
	var pizzeria models.Pizzeria
	err := s.db.Preload("Brand").Preload("Address.City").Preload("Menus").
		First(&pizzeria, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("pizzeria %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	details := &PizzeriaDetails{
		ID:                            pizzeria.ID,
		Name:                          pizzeria.Name,
		BrandName:                     pizzeria.Brand.Name,
		PhoneNumber:                   pizzeria.PhoneNumber,
		DeliveryCost:                  pizzeria.DeliveryCost,
		MinOrderAmount:                pizzeria.MinOrderAmount,
		ServiceFee:                    pizzeria.ServiceFee,
		AveragePreparationTimeMinutes: pizzeria.AveragePreparationTimeMinutes,
		IsOpen:                        true,
		Street:                        pizzeria.Address.Street,
		City:                          pizzeria.Address.City.Name,
		FullAddress:                   pizzeria.Address.FullAddress(),
	}
	for _, menu := range pizzeria.Menus {
		if menu.IsActive {
			details.ActiveMenuID = menu.ID
			break
		}
	}
	return details, nil
}

func (s *pizzeriaService) QuickSearch(city, phrase string) ([]PizzeriaListItem, error) {
	query := s.db.Model(&models.Pizzeria{}).
		Preload("Brand").Preload("Address.City").
		Joins("LEFT JOIN brands ON brands.id = pizzerias.brand_id").
		Joins("JOIN addresses ON addresses.id = pizzerias.address_id").
		Joins("JOIN cities ON cities.id = addresses.city_id")

	if city != "" {
		query = query.Where("cities.name LIKE ?", "%"+city+"%")
	}
	if phrase != "" {
		query = query.Where("pizzerias.name LIKE ? OR brands.name LIKE ?", "%"+phrase+"%", "%"+phrase+"%")
	}
	if city == "" && phrase == "" {
		query = query.Limit(quickSearchLimit)
	}

	var pizzerias []models.Pizzeria
	if err := query.Find(&pizzerias).Error; err != nil {
		return nil, err
	}

	items := make([]PizzeriaListItem, 0, len(pizzerias))
	for _, pizzeria := range pizzerias {
		items = append(items, PizzeriaListItem{
			ID:                            pizzeria.ID,
			Name:                          pizzeria.Name,
			BrandName:                     pizzeria.Brand.Name,
			LogoURL:                       pizzeria.Brand.LogoURL,
			City:                          pizzeria.Address.City.Name,
			Street:                        pizzeria.Address.Street,
			DeliveryCost:                  pizzeria.DeliveryCost,
			AveragePreparationTimeMinutes: pizzeria.AveragePreparationTimeMinutes,
			MinOrderAmount:                pizzeria.MinOrderAmount,
			IsOpen:                        true,
		})
	}
	return items, nil
}

func findOrCreateCity(tx *gorm.DB, name, region string) (*models.City, error) {
	var city models.City
	err := tx.Where("name = ?", name).First(&city).Error
	if err == nil {
		return &city, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	city = models.City{Name: name, Region: region}
	if err := tx.Create(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}
