package services

import (
	"testing"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func validPizzaInput(menuID string) CreatePizzaInput {
	return CreatePizzaInput{
		MenuID:      menuID,
		Name:        "Margherita",
		Price:       decimal.NewFromFloat(29.99),
		Style:       "Neapolitan",
		Dough:       "Wheat",
		BaseSauce:   "Tomato",
		Thickness:   "Thin",
		Shape:       "Round",
		DiameterCm:  floatPtr(32),
		WeightGrams: 480,
		Kcal:        1120,
	}
}

func TestCreatePizzaStoresFacetsAndDimensions(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)
	service := NewPizzaService(db)

	pizza, err := service.CreatePizza(validPizzaInput(fx.warsawActiveMenuID))
	require.NoError(t, err)

	assert.Equal(t, models.StyleNeapolitan, pizza.Style)
	assert.Equal(t, models.ShapeRound, pizza.Shape)
	assert.Equal(t, 32.0, pizza.DiameterCm)
	assert.Zero(t, pizza.WidthCm)
	assert.Zero(t, pizza.LengthCm)
}

func TestCreatePizzaRejectsUnknownFacet(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)
	service := NewPizzaService(db)

	input := validPizzaInput(fx.warsawActiveMenuID)
	input.Style = "DeepSpace"

	_, err := service.CreatePizza(input)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "style", validationErr.Field)
}

func TestCreatePizzaShapeDimensionRules(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)
	service := NewPizzaService(db)

	t.Run("round without diameter", func(t *testing.T) {
		input := validPizzaInput(fx.warsawActiveMenuID)
		input.Name = "No Diameter"
		input.DiameterCm = nil

		_, err := service.CreatePizza(input)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("rectangle needs width and length", func(t *testing.T) {
		input := validPizzaInput(fx.warsawActiveMenuID)
		input.Name = "Half Rect"
		input.Shape = "Rectangle"
		input.WidthCm = floatPtr(25)
		input.LengthCm = nil

		_, err := service.CreatePizza(input)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("rectangle zeroes the diameter", func(t *testing.T) {
		input := validPizzaInput(fx.warsawActiveMenuID)
		input.Name = "Full Rect"
		input.Shape = "Rectangle"
		input.WidthCm = floatPtr(25)
		input.LengthCm = floatPtr(35)

		pizza, err := service.CreatePizza(input)
		require.NoError(t, err)
		assert.Zero(t, pizza.DiameterCm)
		assert.Equal(t, 25.0, pizza.WidthCm)
		assert.Equal(t, 35.0, pizza.LengthCm)
	})
}

func TestCreatePizzaNameUniquePerMenu(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)
	service := NewPizzaService(db)

	_, err := service.CreatePizza(validPizzaInput(fx.warsawActiveMenuID))
	require.NoError(t, err)

	_, err = service.CreatePizza(validPizzaInput(fx.warsawActiveMenuID))
	assert.ErrorIs(t, err, ErrConflict)

	// Same name on a different menu is fine
	_, err = service.CreatePizza(validPizzaInput(fx.warsawInactiveMenuID))
	assert.NoError(t, err)
}

func TestCreatePizzaRejectsUnknownIngredients(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)
	service := NewPizzaService(db)

	input := validPizzaInput(fx.warsawActiveMenuID)
	input.IngredientIDs = []string{"missing-ingredient-id"}

	_, err := service.CreatePizza(input)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "ingredient_ids", validationErr.Field)
}

func TestUpdatePizzaReplacesIngredients(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)
	service := NewPizzaService(db)

	mozzarella := models.Ingredient{Name: "Mozzarella"}
	pepperoni := models.Ingredient{Name: "Pepperoni", IsMeat: true}
	require.NoError(t, db.Create(&[]*models.Ingredient{&mozzarella, &pepperoni}).Error)

	input := validPizzaInput(fx.warsawActiveMenuID)
	input.IngredientIDs = []string{mozzarella.ID}
	pizza, err := service.CreatePizza(input)
	require.NoError(t, err)

	update := UpdatePizzaInput{
		Name:          "Margherita",
		Price:         decimal.NewFromFloat(31.99),
		Style:         "Neapolitan",
		Dough:         "Wheat",
		BaseSauce:     "Tomato",
		Thickness:     "Thin",
		Shape:         "Round",
		DiameterCm:    floatPtr(32),
		WeightGrams:   480,
		Kcal:          1120,
		IngredientIDs: []string{pepperoni.ID},
	}
	_, err = service.UpdatePizza(pizza.ID, update)
	require.NoError(t, err)

	details, err := service.GetPizzaByID(pizza.ID)
	require.NoError(t, err)
	require.Len(t, details.Ingredients, 1)
	assert.Equal(t, "Pepperoni", details.Ingredients[0].Name)
	assert.Equal(t, "31.99", details.Price.String())
}

func TestDeletePizza(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)
	service := NewPizzaService(db)

	pizza, err := service.CreatePizza(validPizzaInput(fx.warsawActiveMenuID))
	require.NoError(t, err)

	require.NoError(t, service.DeletePizza(pizza.ID))
	assert.ErrorIs(t, service.DeletePizza(pizza.ID), ErrNotFound)
}
