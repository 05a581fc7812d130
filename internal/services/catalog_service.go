package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"gorm.io/gorm"
)

// CreateBrandInput registers a new restaurant chain for the calling owner.
type CreateBrandInput struct {
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logo_url"`
}

// CreateIngredientInput adds a new ingredient tag to the catalog.
type CreateIngredientInput struct {
	Name       string `json:"name" binding:"required"`
	IsAllergen bool   `json:"is_allergen"`
	IsMeat     bool   `json:"is_meat"`
}

// CatalogService manages brands and ingredient tags, the reference data the
// catalog and search filters hang off.
type CatalogService interface {
	CreateBrand(input CreateBrandInput, ownerID uint) (*models.Brand, error)
	GetBrands() ([]models.Brand, error)
	GetBrandByID(id string) (*models.Brand, error)

	CreateIngredient(input CreateIngredientInput) (*models.Ingredient, error)
	GetIngredients() ([]models.Ingredient, error)
	DeleteIngredient(id string) error
}

type catalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(db *gorm.DB) CatalogService {
	return &catalogService{db: db}
}

func (s *catalogService) CreateBrand(input CreateBrandInput, ownerID uint) (*models.Brand, error) {
	var count int64
	if err := s.db.Model(&models.Brand{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("brand %q already exists: %w", input.Name, ErrConflict)
	}

	brand := models.Brand{
		Name:    input.Name,
		LogoURL: input.LogoURL,
		OwnerID: ownerID,
	}
	if err := s.db.Create(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (s *catalogService) GetBrands() ([]models.Brand, error) {
	var brands []models.Brand
	if err := s.db.Order("name ASC").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (s *catalogService) GetBrandByID(id string) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("brand %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &brand, nil
}

func (s *catalogService) CreateIngredient(input CreateIngredientInput) (*models.Ingredient, error) {
	var count int64
	if err := s.db.Model(&models.Ingredient{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("ingredient %q already exists: %w", input.Name, ErrConflict)
	}

	ingredient := models.Ingredient{
		Name:       input.Name,
		IsAllergen: input.IsAllergen,
		IsMeat:     input.IsMeat,
	}
	if err := s.db.Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (s *catalogService) GetIngredients() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.Order("name ASC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *catalogService) DeleteIngredient(id string) error {
	result := s.db.Delete(&models.Ingredient{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ingredient %s: %w", id, ErrNotFound)
	}
	return nil
}
