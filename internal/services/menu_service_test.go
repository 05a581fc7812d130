package services

import (
	"testing"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivateMenuDeactivatesSiblings(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)
	service := NewMenuService(db)

	err := service.ActivateMenu(fx.warsawInactiveMenuID, 1, false)
	require.NoError(t, err)

	var menus []models.Menu
	require.NoError(t, db.Where("pizzeria_id = (SELECT pizzeria_id FROM menus WHERE id = ?)", fx.warsawInactiveMenuID).Find(&menus).Error)

	activeCount := 0
	for _, menu := range menus {
		if menu.IsActive {
			activeCount++
			assert.Equal(t, fx.warsawInactiveMenuID, menu.ID)
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestActivateMenuIsIdempotentForActiveMenu(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)
	service := NewMenuService(db)

	require.NoError(t, service.ActivateMenu(fx.warsawActiveMenuID, 1, false))

	var menu models.Menu
	require.NoError(t, db.First(&menu, "id = ?", fx.warsawActiveMenuID).Error)
	assert.True(t, menu.IsActive)
}

func TestDeleteMenuRejectsActiveMenu(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)
	service := NewMenuService(db)

	err := service.DeleteMenu(fx.warsawActiveMenuID, 1, false)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteMenuRemovesInactiveMenuWithPizzas(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)
	service := NewMenuService(db)

	pizza := storedPizza(fx.warsawInactiveMenuID, "Leftover", 25)
	require.NoError(t, db.Create(&pizza).Error)

	require.NoError(t, service.DeleteMenu(fx.warsawInactiveMenuID, 1, false))

	var menuCount, pizzaCount int64
	require.NoError(t, db.Model(&models.Menu{}).Where("id = ?", fx.warsawInactiveMenuID).Count(&menuCount).Error)
	require.NoError(t, db.Model(&models.Pizza{}).Where("menu_id = ?", fx.warsawInactiveMenuID).Count(&pizzaCount).Error)
	assert.Zero(t, menuCount)
	assert.Zero(t, pizzaCount)
}

func TestMenuOwnershipIsEnforced(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)
	service := NewMenuService(db)

	// Brand "Bella Napoli" belongs to owner 1
	err := service.ActivateMenu(fx.warsawInactiveMenuID, 99, false)
	assert.ErrorIs(t, err, ErrForbidden)

	// Admins bypass the ownership check
	require.NoError(t, service.ActivateMenu(fx.warsawInactiveMenuID, 99, true))
}

func TestCreateMenuStartsInactive(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)
	service := NewMenuService(db)

	var pizzeria models.Pizzeria
	require.NoError(t, db.First(&pizzeria, "brand_id = ?", fx.brandNapoliID).Error)

	menu, err := service.CreateMenu(CreateMenuInput{
		PizzeriaID: pizzeria.ID,
		Name:       "Summer Specials",
	}, 1, false)
	require.NoError(t, err)
	assert.False(t, menu.IsActive)
	assert.NotEmpty(t, menu.ID)
}

func TestCreateMenuUnknownPizzeria(t *testing.T) {
	db := setupCatalogDB(t)
	seedCatalog(t, db)
	service := NewMenuService(db)

	_, err := service.CreateMenu(CreateMenuInput{
		PizzeriaID: "no-such-pizzeria",
		Name:       "Ghost Menu",
	}, 1, false)
	assert.ErrorIs(t, err, ErrNotFound)
}
