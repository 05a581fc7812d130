package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"gorm.io/gorm"
)

// CreateMenuInput creates a new, inactive menu for a pizzeria.
type CreateMenuInput struct {
	PizzeriaID  string `json:"pizzeria_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// MenuListItem is the per-pizzeria menu listing row.
type MenuListItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
	PizzasCount int    `json:"pizzas_count"`
}

// MenuDetails is a menu with its pizzas.
type MenuDetails struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	IsActive    bool            `json:"is_active"`
	PizzasCount int             `json:"pizzas_count"`
	Pizzas      []PizzaListItem `json:"pizzas"`
}

// MenuService manages menus and the single-active-menu invariant.
type MenuService interface {
	CreateMenu(input CreateMenuInput, ownerID uint, isAdmin bool) (*models.Menu, error)
	GetMenu(id string) (*MenuDetails, error)
	GetMenusForPizzeria(pizzeriaID string) ([]MenuListItem, error)
	// ActivateMenu marks the menu active and deactivates its siblings in
	// the same transaction, so at most one menu per pizzeria is ever
	// active.
	ActivateMenu(id string, ownerID uint, isAdmin bool) error
	// DeleteMenu removes an inactive menu; the active menu cannot be
	// deleted.
	DeleteMenu(id string, ownerID uint, isAdmin bool) error
}

type menuService struct {
	db *gorm.DB
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

func (s *menuService) CreateMenu(input CreateMenuInput, ownerID uint, isAdmin bool) (*models.Menu, error) {
	if err := s.authorizePizzeria(input.PizzeriaID, ownerID, isAdmin); err != nil {
		return nil, err
	}

	menu := models.Menu{
		PizzeriaID:  input.PizzeriaID,
		Name:        input.Name,
		Description: input.Description,
		IsActive:    false,
	}
	if err := s.db.Create(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (s *menuService) GetMenu(id string) (*MenuDetails, error) {
	var menu models.Menu
	err := s.db.Preload("Pizzas.Ingredients").First(&menu, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	pizzas := make([]PizzaListItem, 0, len(menu.Pizzas))
	for _, pizza := range menu.Pizzas {
		names := make([]string, 0, len(pizza.Ingredients))
		for _, ingredient := range pizza.Ingredients {
			names = append(names, ingredient.Name)
		}
		pizzas = append(pizzas, PizzaListItem{
			ID:              pizza.ID,
			Name:            pizza.Name,
			Description:     pizza.Description,
			Price:           pizza.Price,
			ImageURL:        pizza.ImageURL,
			IngredientNames: names,
		})
	}

	return &MenuDetails{
		ID:          menu.ID,
		Name:        menu.Name,
		Description: menu.Description,
		IsActive:    menu.IsActive,
		PizzasCount: len(pizzas),
		Pizzas:      pizzas,
	}, nil
}

func (s *menuService) GetMenusForPizzeria(pizzeriaID string) ([]MenuListItem, error) {
	var pizzeriaCount int64
	if err := s.db.Model(&models.Pizzeria{}).Where("id = ?", pizzeriaID).Count(&pizzeriaCount).Error; err != nil {
		return nil, err
	}
	if pizzeriaCount == 0 {
		return nil, fmt.Errorf("pizzeria %s: %w", pizzeriaID, ErrNotFound)
	}

	var menus []models.Menu
	if err := s.db.Preload("Pizzas").Where("pizzeria_id = ?", pizzeriaID).Find(&menus).Error; err != nil {
		return nil, err
	}

	items := make([]MenuListItem, 0, len(menus))
	for _, menu := range menus {
		items = append(items, MenuListItem{
			ID:          menu.ID,
			Name:        menu.Name,
			Description: menu.Description,
			IsActive:    menu.IsActive,
			PizzasCount: len(menu.Pizzas),
		})
	}
	return items, nil
}

func (s *menuService) ActivateMenu(id string, ownerID uint, isAdmin bool) error {
	menu, err := s.loadAuthorizedMenu(id, ownerID, isAdmin)
	if err != nil {
		return err
	}
	if menu.IsActive {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Menu{}).
			Where("pizzeria_id = ? AND id <> ? AND is_active = ?", menu.PizzeriaID, menu.ID, true).
			Update("is_active", false).Error
		if err != nil {
			return err
		}
		return tx.Model(menu).Update("is_active", true).Error
	})
}

func (s *menuService) DeleteMenu(id string, ownerID uint, isAdmin bool) error {
	menu, err := s.loadAuthorizedMenu(id, ownerID, isAdmin)
	if err != nil {
		return err
	}
	if menu.IsActive {
		return fmt.Errorf("active menu cannot be deleted, activate another menu first: %w", ErrConflict)
	}

	// Pizzas cascade with the menu.
	return s.db.Select("Pizzas").Delete(menu).Error
}

// loadAuthorizedMenu fetches the menu and checks that the caller owns the
// brand behind it (or is an admin).
func (s *menuService) loadAuthorizedMenu(id string, ownerID uint, isAdmin bool) (*models.Menu, error) {
	var menu models.Menu
	if err := s.db.First(&menu, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if err := s.authorizePizzeria(menu.PizzeriaID, ownerID, isAdmin); err != nil {
		return nil, err
	}
	return &menu, nil
}

func (s *menuService) authorizePizzeria(pizzeriaID string, ownerID uint, isAdmin bool) error {
	var pizzeria models.Pizzeria
	if err := s.db.Preload("Brand").First(&pizzeria, "id = ?", pizzeriaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("pizzeria %s: %w", pizzeriaID, ErrNotFound)
		}
		return err
	}
	if !isAdmin && pizzeria.Brand.OwnerID != ownerID {
		return fmt.Errorf("pizzeria %s belongs to another brand owner: %w", pizzeriaID, ErrForbidden)
	}
	return nil
}
