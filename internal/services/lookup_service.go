package services

import (
	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PizzaFilters is everything the search UI needs to render its filter
// panel: brand lookups from the database plus every closed facet set.
type PizzaFilters struct {
	Restaurants   []models.LookUpItem `json:"restaurants"`
	Styles        []models.LookUpItem `json:"styles"`
	Doughs        []models.LookUpItem `json:"doughs"`
	Thicknesses   []models.LookUpItem `json:"thicknesses"`
	Shapes        []models.LookUpItem `json:"shapes"`
	Sauces        []models.LookUpItem `json:"sauces"`
	SortOptions   []models.LookUpItem `json:"sort_options"`
	MaxPriceLimit decimal.Decimal     `json:"max_price_limit"`
}

// maxPriceLimit caps the price slider in the filter panel.
var maxPriceLimit = decimal.NewFromInt(150)

// LookupService serves filter metadata.
type LookupService interface {
	GetPizzaFilters() (*PizzaFilters, error)
}

type lookupService struct {
	db *gorm.DB
}

// NewLookupService creates a new instance of LookupService
func NewLookupService(db *gorm.DB) LookupService {
	return &lookupService{db: db}
}

func (s *lookupService) GetPizzaFilters() (*PizzaFilters, error) {
	var brands []models.Brand
	if err := s.db.Order("name ASC").Find(&brands).Error; err != nil {
		return nil, err
	}

	restaurants := make([]models.LookUpItem, 0, len(brands))
	for _, brand := range brands {
		restaurants = append(restaurants, models.LookUpItem{ID: brand.ID, Name: brand.Name})
	}

	return &PizzaFilters{
		Restaurants:   restaurants,
		Styles:        models.StyleLookUps(),
		Doughs:        models.DoughLookUps(),
		Thicknesses:   models.ThicknessLookUps(),
		Shapes:        models.ShapeLookUps(),
		Sauces:        models.SauceLookUps(),
		SortOptions:   sortOptionLookUps(),
		MaxPriceLimit: maxPriceLimit,
	}, nil
}

func sortOptionLookUps() []models.LookUpItem {
	options := []models.SortOption{
		models.SortDefault,
		models.SortPriceAsc,
		models.SortPriceDesc,
		models.SortNameAsc,
		models.SortNameDesc,
		models.SortProfitabilityAsc,
		models.SortKcalDensityAsc,
		models.SortKcalDensityDesc,
	}
	items := make([]models.LookUpItem, 0, len(options))
	for _, option := range options {
		items = append(items, models.LookUpItem{ID: option.String(), Name: option.Label()})
	}
	return items
}
