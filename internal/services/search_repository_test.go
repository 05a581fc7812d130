package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Country{}, &models.City{}, &models.Address{},
		&models.User{}, &models.Brand{}, &models.Pizzeria{},
		&models.Menu{}, &models.Ingredient{}, &models.Pizza{},
	)
	require.NoError(t, err)

	return db
}

// catalogFixture is a two-city catalog: Warsaw has one pizzeria with an
// active and an inactive menu, Krakow has one pizzeria with an active menu.
type catalogFixture struct {
	warsawID string
	krakowID string

	brandNapoliID string
	brandCrustID  string

	warsawActiveMenuID   string
	warsawInactiveMenuID string
	krakowActiveMenuID   string
}

func seedCatalog(t *testing.T, db *gorm.DB) catalogFixture {
	t.Helper()

	warsaw := models.City{Name: "Warsaw"}
	krakow := models.City{Name: "Krakow"}
	require.NoError(t, db.Create(&warsaw).Error)
	require.NoError(t, db.Create(&krakow).Error)

	napoli := models.Brand{Name: "Bella Napoli", OwnerID: 1}
	crust := models.Brand{Name: "Crust & Co", OwnerID: 2}
	require.NoError(t, db.Create(&napoli).Error)
	require.NoError(t, db.Create(&crust).Error)

	warsawAddr := models.Address{CityID: warsaw.ID, Street: "Nowy Świat", BuildingNumber: "15"}
	krakowAddr := models.Address{CityID: krakow.ID, Street: "Floriańska", BuildingNumber: "3"}
	require.NoError(t, db.Create(&warsawAddr).Error)
	require.NoError(t, db.Create(&krakowAddr).Error)

	warsawPizzeria := models.Pizzeria{BrandID: napoli.ID, AddressID: warsawAddr.ID, Name: "Bella Napoli Centrum"}
	krakowPizzeria := models.Pizzeria{BrandID: crust.ID, AddressID: krakowAddr.ID, Name: "Crust & Co Rynek"}
	require.NoError(t, db.Create(&warsawPizzeria).Error)
	require.NoError(t, db.Create(&krakowPizzeria).Error)

	warsawActive := models.Menu{PizzeriaID: warsawPizzeria.ID, Name: "Current", IsActive: true}
	warsawInactive := models.Menu{PizzeriaID: warsawPizzeria.ID, Name: "Winter", IsActive: false}
	krakowActive := models.Menu{PizzeriaID: krakowPizzeria.ID, Name: "Current", IsActive: true}
	require.NoError(t, db.Create(&warsawActive).Error)
	require.NoError(t, db.Create(&warsawInactive).Error)
	require.NoError(t, db.Create(&krakowActive).Error)

	return catalogFixture{
		warsawID:             warsaw.ID,
		krakowID:             krakow.ID,
		brandNapoliID:        napoli.ID,
		brandCrustID:         crust.ID,
		warsawActiveMenuID:   warsawActive.ID,
		warsawInactiveMenuID: warsawInactive.ID,
		krakowActiveMenuID:   krakowActive.ID,
	}
}

func storedPizza(menuID, name string, price float64) models.Pizza {
	return models.Pizza{
		MenuID:      menuID,
		Name:        name,
		Price:       decimal.NewFromFloat(price),
		Style:       models.StyleNeapolitan,
		Dough:       models.DoughWheat,
		BaseSauce:   models.SauceTomato,
		Thickness:   models.ThicknessThin,
		Shape:       models.ShapeRound,
		DiameterCm:  32,
		WeightGrams: 500,
		Kcal:        1200,
	}
}

func fetch(t *testing.T, db *gorm.DB, filter CandidateFilter) []PizzaCandidate {
	t.Helper()
	repo := NewCatalogRepository(db)
	candidates, err := repo.FetchCandidates(context.Background(), filter)
	require.NoError(t, err)
	return candidates
}

func candidateNames(candidates []PizzaCandidate) []string {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Name)
	}
	return names
}

func TestFetchCandidatesScopesToCity(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)

	require.NoError(t, db.Create(&[]models.Pizza{
		storedPizza(fx.warsawActiveMenuID, "Warsaw Margherita", 30),
		storedPizza(fx.krakowActiveMenuID, "Krakow Margherita", 28),
	}).Error)

	candidates := fetch(t, db, CandidateFilter{CityID: fx.warsawID, ActiveMenusOnly: true})

	assert.Equal(t, []string{"Warsaw Margherita"}, candidateNames(candidates))
	assert.Equal(t, fx.warsawID, candidates[0].CityID)
	assert.Equal(t, "Bella Napoli", candidates[0].BrandName)
}

func TestFetchCandidatesSkipsInactiveMenus(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)

	require.NoError(t, db.Create(&[]models.Pizza{
		storedPizza(fx.warsawActiveMenuID, "On Active Menu", 30),
		storedPizza(fx.warsawInactiveMenuID, "On Winter Menu", 25),
	}).Error)

	candidates := fetch(t, db, CandidateFilter{CityID: fx.warsawID, ActiveMenusOnly: true})

	assert.Equal(t, []string{"On Active Menu"}, candidateNames(candidates))
}

func TestFetchCandidatesAppliesFacetAndBrandFilters(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)

	sicilian := storedPizza(fx.warsawActiveMenuID, "Sicilian Slab", 40)
	sicilian.Style = models.StyleSicilian
	sicilian.BaseSauce = models.SauceCream
	require.NoError(t, db.Create(&[]models.Pizza{
		storedPizza(fx.warsawActiveMenuID, "Margherita", 30),
		sicilian,
	}).Error)

	t.Run("style filter", func(t *testing.T) {
		candidates := fetch(t, db, CandidateFilter{
			CityID:          fx.warsawID,
			ActiveMenusOnly: true,
			Styles:          []models.PizzaStyle{models.StyleSicilian},
		})
		assert.Equal(t, []string{"Sicilian Slab"}, candidateNames(candidates))
	})

	t.Run("sauce filter", func(t *testing.T) {
		candidates := fetch(t, db, CandidateFilter{
			CityID:          fx.warsawID,
			ActiveMenusOnly: true,
			Sauces:          []models.SauceType{models.SauceTomato},
		})
		assert.Equal(t, []string{"Margherita"}, candidateNames(candidates))
	})

	t.Run("brand filter excludes other brands", func(t *testing.T) {
		candidates := fetch(t, db, CandidateFilter{
			CityID:          fx.warsawID,
			ActiveMenusOnly: true,
			BrandIDs:        []string{fx.brandCrustID},
		})
		assert.Empty(t, candidates)
	})
}

func TestFetchCandidatesAppliesPriceBounds(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)

	require.NoError(t, db.Create(&[]models.Pizza{
		storedPizza(fx.warsawActiveMenuID, "Cheap", 20),
		storedPizza(fx.warsawActiveMenuID, "Mid", 35),
		storedPizza(fx.warsawActiveMenuID, "Pricey", 50),
	}).Error)

	minPrice := decimal.NewFromInt(25)
	maxPrice := decimal.NewFromInt(40)
	candidates := fetch(t, db, CandidateFilter{
		CityID:          fx.warsawID,
		ActiveMenusOnly: true,
		MinPrice:        &minPrice,
		MaxPrice:        &maxPrice,
	})

	assert.Equal(t, []string{"Mid"}, candidateNames(candidates))
}

func TestFetchCandidatesMinDiameterSparesRectangles(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)

	small := storedPizza(fx.warsawActiveMenuID, "Small Round", 30)
	small.DiameterCm = 26

	large := storedPizza(fx.warsawActiveMenuID, "Large Round", 36)
	large.DiameterCm = 42

	slab := storedPizza(fx.warsawActiveMenuID, "Rect Slab", 40)
	slab.Shape = models.ShapeRectangle
	slab.DiameterCm = 0
	slab.WidthCm = 25
	slab.LengthCm = 35

	require.NoError(t, db.Create(&[]models.Pizza{small, large, slab}).Error)

	minDiameter := 30.0
	candidates := fetch(t, db, CandidateFilter{
		CityID:              fx.warsawID,
		ActiveMenusOnly:     true,
		MinDiameterForRound: &minDiameter,
	})

	assert.ElementsMatch(t, []string{"Large Round", "Rect Slab"}, candidateNames(candidates))
}

func TestFetchCandidatesLoadsSortedIngredientNames(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)

	mozzarella := models.Ingredient{Name: "Mozzarella"}
	basil := models.Ingredient{Name: "Basil"}
	tomato := models.Ingredient{Name: "Tomato Sauce"}
	require.NoError(t, db.Create(&[]*models.Ingredient{&mozzarella, &basil, &tomato}).Error)

	pizza := storedPizza(fx.warsawActiveMenuID, "Margherita", 30)
	pizza.Ingredients = []models.Ingredient{mozzarella, basil, tomato}
	require.NoError(t, db.Create(&pizza).Error)

	candidates := fetch(t, db, CandidateFilter{CityID: fx.warsawID, ActiveMenusOnly: true})

	require.Len(t, candidates, 1)
	assert.Equal(t, []string{"Basil", "Mozzarella", "Tomato Sauce"}, candidates[0].IngredientNames)
}

func TestFetchCandidatesStorageOrderPushdown(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)

	require.NoError(t, db.Create(&[]models.Pizza{
		storedPizza(fx.warsawActiveMenuID, "Bravo", 50),
		storedPizza(fx.warsawActiveMenuID, "Alpha", 30),
		storedPizza(fx.warsawActiveMenuID, "Charlie", 40),
	}).Error)

	candidates := fetch(t, db, CandidateFilter{
		CityID:          fx.warsawID,
		ActiveMenusOnly: true,
		OrderBy:         models.SortPriceAsc,
	})

	assert.Equal(t, []string{"Alpha", "Charlie", "Bravo"}, candidateNames(candidates))
}

// End to end through the search service: storage filter, derived metrics,
// in-memory sort and pagination against a real database.
func TestSearchPizzasEndToEnd(t *testing.T) {
	db := setupCatalogDB(t)
	fx := seedCatalog(t, db)

	require.NoError(t, db.Create(&[]models.Pizza{
		storedPizza(fx.warsawActiveMenuID, "Margherita", 30),
		storedPizza(fx.warsawActiveMenuID, "Diavola", 38),
		storedPizza(fx.warsawActiveMenuID, "Capricciosa", 36),
		storedPizza(fx.krakowActiveMenuID, "Krakow Special", 33),
	}).Error)

	service := NewSearchService(NewCatalogRepository(db))

	page, err := service.SearchPizzas(context.Background(), SearchCriteria{
		CityID:   fx.warsawID,
		SortBy:   models.SortPriceDesc.String(),
		PageSize: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, page.TotalCount)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Diavola", page.Items[0].Name)
	assert.Equal(t, "Capricciosa", page.Items[1].Name)

	// derived metrics come back populated
	assert.True(t, page.Items[0].PricePerSqCm.IsPositive())
	assert.Equal(t, "2.4", page.Items[0].KcalPerGram.String())
}
