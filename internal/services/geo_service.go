package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"gorm.io/gorm"
)

// CreateCountryInput adds a country to the reference data.
type CreateCountryInput struct {
	Name    string `json:"name" binding:"required"`
	ISOCode string `json:"iso_code" binding:"required,len=2"`
}

// CreateCityInput adds a city under an existing country.
type CreateCityInput struct {
	CountryID string `json:"country_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Region    string `json:"region"`
}

// GeoService manages the country/city reference data addresses resolve
// against.
type GeoService interface {
	CreateCountry(input CreateCountryInput) (*models.Country, error)
	GetCountries() ([]models.Country, error)

	CreateCity(input CreateCityInput) (*models.City, error)
	GetCities() ([]models.City, error)
	GetCityByID(id string) (*models.City, error)
}

type geoService struct {
	db *gorm.DB
}

// NewGeoService creates a new instance of GeoService
func NewGeoService(db *gorm.DB) GeoService {
	return &geoService{db: db}
}

func (s *geoService) CreateCountry(input CreateCountryInput) (*models.Country, error) {
	var count int64
	if err := s.db.Model(&models.Country{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("country %q already exists: %w", input.Name, ErrConflict)
	}

	country := models.Country{Name: input.Name, ISOCode: input.ISOCode}
	if err := s.db.Create(&country).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

func (s *geoService) GetCountries() ([]models.Country, error) {
	var countries []models.Country
	if err := s.db.Order("name ASC").Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

func (s *geoService) CreateCity(input CreateCityInput) (*models.City, error) {
	var countryCount int64
	if err := s.db.Model(&models.Country{}).Where("id = ?", input.CountryID).Count(&countryCount).Error; err != nil {
		return nil, err
	}
	if countryCount == 0 {
		return nil, fmt.Errorf("country %s: %w", input.CountryID, ErrNotFound)
	}

	city := models.City{
		CountryID: input.CountryID,
		Name:      input.Name,
		Region:    input.Region,
	}
	if err := s.db.Create(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (s *geoService) GetCities() ([]models.City, error) {
	var cities []models.City
	if err := s.db.Order("name ASC").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (s *geoService) GetCityByID(id string) (*models.City, error) {
	var city models.City
	if err := s.db.First(&city, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("city %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &city, nil
}
