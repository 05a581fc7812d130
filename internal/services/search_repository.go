package services

import (
	"context"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"gorm.io/gorm"
)

// gormCatalogRepository resolves search candidates with one joined query
// across pizzas → menus → pizzerias → brands/addresses, plus a single batch
// query for ingredient names. It never queries per candidate.
type gormCatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a GORM-backed CatalogRepository.
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &gormCatalogRepository{db: db}
}

type candidateRow struct {
	models.Pizza `gorm:"embedded"`
	BrandName    string
	CityID       string
}

func (r *gormCatalogRepository) FetchCandidates(ctx context.Context, filter CandidateFilter) ([]PizzaCandidate, error) {
	query := r.db.WithContext(ctx).
		Table("pizzas").
		Select("pizzas.*, brands.name AS brand_name, addresses.city_id AS city_id").
		Joins("JOIN menus ON menus.id = pizzas.menu_id").
		Joins("JOIN pizzerias ON pizzerias.id = menus.pizzeria_id").
		Joins("JOIN addresses ON addresses.id = pizzerias.address_id").
		Joins("LEFT JOIN brands ON brands.id = pizzerias.brand_id").
		Where("addresses.city_id = ?", filter.CityID)

	if filter.ActiveMenusOnly {
		query = query.Where("menus.is_active = ?", true)
	}
	if len(filter.BrandIDs) > 0 {
		query = query.Where("pizzerias.brand_id IN ?", filter.BrandIDs)
	}
	if len(filter.Styles) > 0 {
		query = query.Where("pizzas.style IN ?", filter.Styles)
	}
	if len(filter.Doughs) > 0 {
		query = query.Where("pizzas.dough IN ?", filter.Doughs)
	}
	if len(filter.Thicknesses) > 0 {
		query = query.Where("pizzas.thickness IN ?", filter.Thicknesses)
	}
	if len(filter.Shapes) > 0 {
		query = query.Where("pizzas.shape IN ?", filter.Shapes)
	}
	if len(filter.Sauces) > 0 {
		query = query.Where("pizzas.base_sauce IN ?", filter.Sauces)
	}
	if filter.MinPrice != nil {
		query = query.Where("pizzas.price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("pizzas.price <= ?", filter.MaxPrice)
	}
	if filter.MinDiameterForRound != nil {
		// Shape-conditional: rectangles pass regardless of their (unused)
		// diameter column.
		query = query.Where("pizzas.shape <> ? OR pizzas.diameter_cm >= ?",
			models.ShapeRound, *filter.MinDiameterForRound)
	}

	query = applyStorageOrder(query, filter.OrderBy)

	var rows []candidateRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	names, err := r.ingredientNames(ctx, rows)
	if err != nil {
		return nil, err
	}

	candidates := make([]PizzaCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, PizzaCandidate{
			Pizza:           row.Pizza,
			BrandName:       row.BrandName,
			CityID:          row.CityID,
			IngredientNames: names[row.Pizza.ID],
		})
	}
	return candidates, nil
}

// applyStorageOrder pushes a stored-column ordering into SQL. This is an
// optimization only; the search service re-sorts the materialized set.
func applyStorageOrder(query *gorm.DB, orderBy models.SortOption) *gorm.DB {
	switch orderBy {
	case models.SortPriceAsc:
		return query.Order("pizzas.price ASC")
	case models.SortPriceDesc:
		return query.Order("pizzas.price DESC")
	case models.SortNameDesc:
		return query.Order("pizzas.name DESC")
	case models.SortNameAsc, models.SortDefault:
		return query.Order("pizzas.name ASC")
	default:
		return query
	}
}

// ingredientNames loads the ingredient names for every candidate in one
// batch query and groups them by pizza id, sorted by name.
func (r *gormCatalogRepository) ingredientNames(ctx context.Context, rows []candidateRow) (map[string][]string, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Pizza.ID)
	}

	type ingredientRow struct {
		PizzaID string
		Name    string
	}
	var ingredientRows []ingredientRow
	err := r.db.WithContext(ctx).
		Table("pizza_ingredients").
		Select("pizza_ingredients.pizza_id AS pizza_id, ingredients.name AS name").
		Joins("JOIN ingredients ON ingredients.id = pizza_ingredients.ingredient_id").
		Where("pizza_ingredients.pizza_id IN ?", ids).
		Order("ingredients.name ASC").
		Scan(&ingredientRows).Error
	if err != nil {
		return nil, err
	}

	names := make(map[string][]string, len(rows))
	for _, row := range ingredientRows {
		names[row.PizzaID] = append(names[row.PizzaID], row.Name)
	}
	return names, nil
}
