package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sentinel errors shared by the catalog services. Controllers translate
// them into HTTP status codes.
var (
	ErrNotFound  = errors.New("not_found")
	ErrConflict  = errors.New("conflict")
	ErrForbidden = errors.New("forbidden")
)

// CreatePizzaInput is the payload for adding a pizza to a menu. Facets come
// in as raw ids and are validated strictly here, unlike in search where
// unknown ids merely degrade the filter.
type CreatePizzaInput struct {
	MenuID      string          `json:"menu_id" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"image_url"`

	Style     string `json:"style" binding:"required"`
	Dough     string `json:"dough" binding:"required"`
	BaseSauce string `json:"base_sauce" binding:"required"`
	Thickness string `json:"thickness" binding:"required"`
	Shape     string `json:"shape" binding:"required"`

	DiameterCm  *float64 `json:"diameter_cm"`
	WidthCm     *float64 `json:"width_cm"`
	LengthCm    *float64 `json:"length_cm"`
	WeightGrams float64  `json:"weight_grams"`
	Kcal        float64  `json:"kcal"`

	IngredientIDs []string `json:"ingredient_ids"`
}

// UpdatePizzaInput mirrors CreatePizzaInput minus the menu, which a pizza
// cannot move between.
type UpdatePizzaInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"image_url"`

	Style     string `json:"style" binding:"required"`
	Dough     string `json:"dough" binding:"required"`
	BaseSauce string `json:"base_sauce" binding:"required"`
	Thickness string `json:"thickness" binding:"required"`
	Shape     string `json:"shape" binding:"required"`

	DiameterCm  *float64 `json:"diameter_cm"`
	WidthCm     *float64 `json:"width_cm"`
	LengthCm    *float64 `json:"length_cm"`
	WeightGrams float64  `json:"weight_grams"`
	Kcal        float64  `json:"kcal"`

	IngredientIDs []string `json:"ingredient_ids"`
}

// PizzaListItem is the lightweight projection used by menu listings.
type PizzaListItem struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"image_url,omitempty"`
	IngredientNames []string        `json:"ingredient_names"`
}

// PizzaDetails is the full single-pizza view with facet labels and complete
// ingredient records.
type PizzaDetails struct {
	ID          string          `json:"id"`
	MenuID      string          `json:"menu_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`

	Style     models.LookUpItem `json:"style"`
	Dough     models.LookUpItem `json:"dough"`
	BaseSauce models.LookUpItem `json:"base_sauce"`
	Thickness models.LookUpItem `json:"thickness"`
	Shape     models.LookUpItem `json:"shape"`

	DiameterCm  float64 `json:"diameter_cm"`
	WidthCm     float64 `json:"width_cm"`
	LengthCm    float64 `json:"length_cm"`
	WeightGrams float64 `json:"weight_grams"`
	Kcal        float64 `json:"kcal"`

	Ingredients []models.Ingredient `json:"ingredients"`
}

// PizzaService manages pizzas on menus.
type PizzaService interface {
	CreatePizza(input CreatePizzaInput) (*models.Pizza, error)
	GetPizzas() ([]PizzaListItem, error)
	GetPizzaByID(id string) (*PizzaDetails, error)
	UpdatePizza(id string, input UpdatePizzaInput) (*models.Pizza, error)
	DeletePizza(id string) error
}

type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) CreatePizza(input CreatePizzaInput) (*models.Pizza, error) {
	var menuCount int64
	if err := s.db.Model(&models.Menu{}).Where("id = ?", input.MenuID).Count(&menuCount).Error; err != nil {
		return nil, err
	}
	if menuCount == 0 {
		return nil, fmt.Errorf("menu %s: %w", input.MenuID, ErrNotFound)
	}

	var nameCount int64
	if err := s.db.Model(&models.Pizza{}).
		Where("menu_id = ? AND name = ?", input.MenuID, input.Name).
		Count(&nameCount).Error; err != nil {
		return nil, err
	}
	if nameCount > 0 {
		return nil, fmt.Errorf("pizza %q already exists on this menu: %w", input.Name, ErrConflict)
	}

	pizza := models.Pizza{
		MenuID:      input.MenuID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		WeightGrams: input.WeightGrams,
		Kcal:        input.Kcal,
	}

	if err := applyFacets(&pizza, input.Style, input.Dough, input.BaseSauce, input.Thickness, input.Shape); err != nil {
		return nil, err
	}
	if err := applyDimensions(&pizza, input.DiameterCm, input.WidthCm, input.LengthCm); err != nil {
		return nil, err
	}

	ingredients, err := s.resolveIngredients(input.IngredientIDs)
	if err != nil {
		return nil, err
	}
	pizza.Ingredients = ingredients

	if err := s.db.Create(&pizza).Error; err != nil {
		return nil, err
	}
	return &pizza, nil
}

func (s *pizzaService) GetPizzas() ([]PizzaListItem, error) {
	var pizzas []models.Pizza
	if err := s.db.Preload("Ingredients").Find(&pizzas).Error; err != nil {
		return nil, err
	}

	items := make([]PizzaListItem, 0, len(pizzas))
	for _, pizza := range pizzas {
		names := make([]string, 0, len(pizza.Ingredients))
		for _, ingredient := range pizza.Ingredients {
			names = append(names, ingredient.Name)
		}
		items = append(items, PizzaListItem{
			ID:              pizza.ID,
			Name:            pizza.Name,
			Description:     pizza.Description,
			Price:           pizza.Price,
			ImageURL:        pizza.ImageURL,
			IngredientNames: names,
		})
	}
	return items, nil
}

func (s *pizzaService) GetPizzaByID(id string) (*PizzaDetails, error) {
	var pizza models.Pizza
	if err := s.db.Preload("Ingredients").First(&pizza, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("pizza %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	return &PizzaDetails{
		ID:          pizza.ID,
		MenuID:      pizza.MenuID,
		Name:        pizza.Name,
		Description: pizza.Description,
		Price:       pizza.Price,
		ImageURL:    pizza.ImageURL,
		Style:       pizza.Style.LookUp(),
		Dough:       pizza.Dough.LookUp(),
		BaseSauce:   pizza.BaseSauce.LookUp(),
		Thickness:   pizza.Thickness.LookUp(),
		Shape:       pizza.Shape.LookUp(),
		DiameterCm:  pizza.DiameterCm,
		WidthCm:     pizza.WidthCm,
		LengthCm:    pizza.LengthCm,
		WeightGrams: pizza.WeightGrams,
		Kcal:        pizza.Kcal,
		Ingredients: pizza.Ingredients,
	}, nil
}

func (s *pizzaService) UpdatePizza(id string, input UpdatePizzaInput) (*models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.First(&pizza, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("pizza %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	pizza.Name = input.Name
	pizza.Description = input.Description
	pizza.Price = input.Price
	pizza.ImageURL = input.ImageURL
	pizza.WeightGrams = input.WeightGrams
	pizza.Kcal = input.Kcal

	if err := applyFacets(&pizza, input.Style, input.Dough, input.BaseSauce, input.Thickness, input.Shape); err != nil {
		return nil, err
	}
	if err := applyDimensions(&pizza, input.DiameterCm, input.WidthCm, input.LengthCm); err != nil {
		return nil, err
	}

	ingredients, err := s.resolveIngredients(input.IngredientIDs)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&pizza).Error; err != nil {
			return err
		}
		return tx.Model(&pizza).Association("Ingredients").Replace(ingredients)
	})
	if err != nil {
		return nil, err
	}
	return &pizza, nil
}

func (s *pizzaService) DeletePizza(id string) error {
	result := s.db.Delete(&models.Pizza{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("pizza %s: %w", id, ErrNotFound)
	}
	return nil
}

// applyFacets resolves and assigns the five facet tags. Catalog writes are
// strict: any unknown id rejects the request.
func applyFacets(pizza *models.Pizza, style, dough, sauce, thickness, shape string) error {
	parsedStyle, err := models.ParsePizzaStyle(style)
	if err != nil {
		return &ValidationError{Field: "style", Reason: err.Error()}
	}
	parsedDough, err := models.ParseDoughType(dough)
	if err != nil {
		return &ValidationError{Field: "dough", Reason: err.Error()}
	}
	parsedSauce, err := models.ParseSauceType(sauce)
	if err != nil {
		return &ValidationError{Field: "base_sauce", Reason: err.Error()}
	}
	parsedThickness, err := models.ParseCrustThickness(thickness)
	if err != nil {
		return &ValidationError{Field: "thickness", Reason: err.Error()}
	}
	parsedShape, err := models.ParsePizzaShape(shape)
	if err != nil {
		return &ValidationError{Field: "shape", Reason: err.Error()}
	}

	pizza.Style = parsedStyle
	pizza.Dough = parsedDough
	pizza.BaseSauce = parsedSauce
	pizza.Thickness = parsedThickness
	pizza.Shape = parsedShape
	return nil
}

// applyDimensions enforces the shape invariant: a Round pizza carries a
// positive diameter and zeroed sides, a Rectangle pizza carries positive
// sides and a zeroed diameter.
func applyDimensions(pizza *models.Pizza, diameter, width, length *float64) error {
	switch pizza.Shape {
	case models.ShapeRound:
		if diameter == nil || *diameter <= 0 {
			return &ValidationError{Field: "diameter_cm", Reason: "is required for a round pizza"}
		}
		pizza.DiameterCm = *diameter
		pizza.WidthCm = 0
		pizza.LengthCm = 0
	case models.ShapeRectangle:
		if width == nil || length == nil || *width <= 0 || *length <= 0 {
			return &ValidationError{Field: "width_cm/length_cm", Reason: "are required for a rectangular pizza"}
		}
		pizza.WidthCm = *width
		pizza.LengthCm = *length
		pizza.DiameterCm = 0
	}
	return nil
}

func (s *pizzaService) resolveIngredients(ids []string) ([]models.Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ingredients []models.Ingredient
	if err := s.db.Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	if len(ingredients) != len(ids) {
		return nil, &ValidationError{Field: "ingredient_ids", Reason: "contain unknown ingredients"}
	}
	return ingredients, nil
}
