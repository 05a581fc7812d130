package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Search paging defaults.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
)

// SearchCriteria is the structured pizza search request. CityID is the only
// required field. Facet id slices carry raw strings from the client; ids
// that do not resolve to a known facet member are dropped with a warning
// instead of failing the whole request. Zero page values mean "use default".
type SearchCriteria struct {
	CityID   string   `json:"city_id"`
	BrandIDs []string `json:"brand_ids,omitempty"`

	Styles      []string `json:"styles,omitempty"`
	Doughs      []string `json:"doughs,omitempty"`
	Thicknesses []string `json:"thicknesses,omitempty"`
	Shapes      []string `json:"shapes,omitempty"`
	Sauces      []string `json:"sauces,omitempty"`

	// MinDiameterCm only constrains Round pizzas; Rectangle pizzas always
	// pass this filter.
	MinDiameterCm *float64         `json:"min_diameter_cm,omitempty"`
	MinPrice      *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice      *decimal.Decimal `json:"max_price,omitempty"`

	SortBy     string `json:"sort_by,omitempty"`
	PageNumber int    `json:"page_number,omitempty"`
	PageSize   int    `json:"page_size,omitempty"`
}

// CandidateFilter is the storage-level portion of the criteria, with facet
// ids already resolved to their closed enum types. OrderBy is set only for
// stored-column sort keys and is purely an optimization hint; the engine
// re-sorts the materialized set either way.
type CandidateFilter struct {
	CityID          string
	ActiveMenusOnly bool
	BrandIDs        []string

	Styles      []models.PizzaStyle
	Doughs      []models.DoughType
	Thicknesses []models.CrustThickness
	Shapes      []models.PizzaShape
	Sauces      []models.SauceType

	MinPrice            *decimal.Decimal
	MaxPrice            *decimal.Decimal
	MinDiameterForRound *float64

	OrderBy models.SortOption
}

// PizzaCandidate is one storage row: the pizza plus the joined context the
// result view needs (brand name, city, ingredient names).
type PizzaCandidate struct {
	models.Pizza
	BrandName       string
	CityID          string
	IngredientNames []string
}

// CatalogRepository fetches search candidates. Implementations perform the
// menu→pizzeria→brand→address→city join themselves and must not issue one
// query per candidate.
type CatalogRepository interface {
	FetchCandidates(ctx context.Context, filter CandidateFilter) ([]PizzaCandidate, error)
}

// PizzaSearchResult is one row of the search response, with derived metrics
// attached. DiameterCm is present only for Round pizzas; rectangle
// dimensions are not surfaced in the list view.
type PizzaSearchResult struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	BrandName   string            `json:"brand_name"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	ImageURL    string            `json:"image_url,omitempty"`
	WeightGrams float64           `json:"weight_grams"`
	Kcal        float64           `json:"kcal"`
	DiameterCm  *float64          `json:"diameter_cm,omitempty"`
	Style       models.LookUpItem `json:"style"`

	// PricePerSqCm is price divided by surface area, rounded to 4 decimal
	// places half away from zero; zero when the area is zero.
	PricePerSqCm decimal.Decimal `json:"price_per_sq_cm"`
	// KcalPerGram is kcal divided by weight, rounded to 2 decimal places
	// half away from zero; zero when the weight is zero.
	KcalPerGram decimal.Decimal `json:"kcal_per_gram"`

	IngredientNames []string `json:"ingredient_names"`
}

// SearchPage is one page of sorted results plus the match count before
// slicing.
type SearchPage struct {
	Items      []PizzaSearchResult `json:"items"`
	TotalCount int                 `json:"total_count"`
	PageNumber int                 `json:"page_number"`
	PageSize   int                 `json:"page_size"`
}

// ValidationError rejects a request before any storage call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid search criteria: %s %s", e.Field, e.Reason)
}

// SearchService runs faceted pizza searches and pizzeria quick searches.
type SearchService interface {
	// SearchPizzas filters the catalog by the given criteria, computes
	// derived metrics, sorts and paginates.
	SearchPizzas(ctx context.Context, criteria SearchCriteria) (SearchPage, error)
}

type searchService struct {
	repo CatalogRepository
}

// NewSearchService creates a SearchService backed by the given repository.
func NewSearchService(repo CatalogRepository) SearchService {
	return &searchService{repo: repo}
}

// SearchPizzas runs the two-phase pipeline: storage-filterable predicates go
// into a single repository query, then the full candidate set is
// materialized so that derived-metric sort keys can be computed. Pagination
// happens last, after the in-memory sort.
func (s *searchService) SearchPizzas(ctx context.Context, criteria SearchCriteria) (SearchPage, error) {
	page, size, err := normalizePaging(criteria.PageNumber, criteria.PageSize)
	if err != nil {
		return SearchPage{}, err
	}
	if strings.TrimSpace(criteria.CityID) == "" {
		return SearchPage{}, &ValidationError{Field: "city_id", Reason: "is required"}
	}

	sortBy := parseSortBy(criteria.SortBy)
	filter := buildCandidateFilter(criteria, sortBy)

	candidates, err := s.repo.FetchCandidates(ctx, filter)
	if err != nil {
		return SearchPage{}, fmt.Errorf("fetching search candidates: %w", err)
	}

	results := make([]PizzaSearchResult, 0, len(candidates))
	for i := range candidates {
		results = append(results, newSearchResult(&candidates[i]))
	}

	sortResults(results, sortBy)

	return SearchPage{
		Items:      slicePage(results, page, size),
		TotalCount: len(results),
		PageNumber: page,
		PageSize:   size,
	}, nil
}

// normalizePaging maps zero values to the defaults and rejects negatives.
// JSON cannot distinguish an absent page from an explicit zero, so zero is
// treated as "absent".
func normalizePaging(page, size int) (int, int, error) {
	if page == 0 {
		page = DefaultPageNumber
	}
	if size == 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		return 0, 0, &ValidationError{Field: "page_number", Reason: "must be at least 1"}
	}
	if size < 1 {
		return 0, 0, &ValidationError{Field: "page_size", Reason: "must be at least 1"}
	}
	return page, size, nil
}

// parseSortBy resolves the requested sort key. Unknown keys degrade to the
// default ordering, mirroring how unknown facet ids are handled.
func parseSortBy(raw string) models.SortOption {
	if raw == "" {
		return models.SortDefault
	}
	sortBy, err := models.ParseSortOption(raw)
	if err != nil {
		log.WithField("sort_by", raw).Warn("Ignoring unknown sort option, using default")
		return models.SortDefault
	}
	return sortBy
}

// buildCandidateFilter composes every storage-filterable predicate. Facet
// ids that fail to parse are logged and skipped so a partially malformed
// request still succeeds with the remaining valid filters.
func buildCandidateFilter(criteria SearchCriteria, sortBy models.SortOption) CandidateFilter {
	filter := CandidateFilter{
		CityID:              criteria.CityID,
		ActiveMenusOnly:     true,
		BrandIDs:            criteria.BrandIDs,
		Styles:              parseFacetSet("style", criteria.Styles, models.ParsePizzaStyle),
		Doughs:              parseFacetSet("dough", criteria.Doughs, models.ParseDoughType),
		Thicknesses:         parseFacetSet("thickness", criteria.Thicknesses, models.ParseCrustThickness),
		Shapes:              parseFacetSet("shape", criteria.Shapes, models.ParsePizzaShape),
		Sauces:              parseFacetSet("sauce", criteria.Sauces, models.ParseSauceType),
		MinPrice:            criteria.MinPrice,
		MaxPrice:            criteria.MaxPrice,
		MinDiameterForRound: criteria.MinDiameterCm,
	}
	if sortBy.StorageSortable() {
		filter.OrderBy = sortBy
	}
	return filter
}

func parseFacetSet[T any](facet string, raw []string, parse func(string) (T, error)) []T {
	var out []T
	for _, id := range raw {
		value, err := parse(id)
		if err != nil {
			log.WithFields(log.Fields{
				"facet": facet,
				"id":    id,
			}).Warn("Ignoring unknown facet id in search criteria")
			continue
		}
		out = append(out, value)
	}
	return out
}

// newSearchResult shapes a candidate into a result row and computes the
// derived metrics, guarding both divisions against zero denominators.
func newSearchResult(c *PizzaCandidate) PizzaSearchResult {
	result := PizzaSearchResult{
		ID:              c.ID,
		Name:            c.Name,
		BrandName:       c.BrandName,
		Description:     c.Description,
		Price:           c.Price,
		ImageURL:        c.ImageURL,
		WeightGrams:     c.WeightGrams,
		Kcal:            c.Kcal,
		Style:           c.Style.LookUp(),
		PricePerSqCm:    decimal.Zero,
		KcalPerGram:     decimal.Zero,
		IngredientNames: c.IngredientNames,
	}

	if area := c.SurfaceAreaCm2(); area > 0 {
		result.PricePerSqCm = c.Price.DivRound(decimal.NewFromFloat(area), 4)
	}
	if c.WeightGrams > 0 {
		result.KcalPerGram = decimal.NewFromFloat(c.Kcal).DivRound(decimal.NewFromFloat(c.WeightGrams), 2)
	}
	if c.Shape == models.ShapeRound {
		diameter := c.DiameterCm
		result.DiameterCm = &diameter
	}
	return result
}

// sortResults orders the materialized set by the single requested key, with
// a deterministic tie-break by name then id.
func sortResults(results []PizzaSearchResult, sortBy models.SortOption) {
	sort.Slice(results, func(i, j int) bool {
		a, b := &results[i], &results[j]
		if c := compareByKey(a, b, sortBy); c != 0 {
			return c < 0
		}
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})
}

func compareByKey(a, b *PizzaSearchResult, sortBy models.SortOption) int {
	switch sortBy {
	case models.SortPriceAsc:
		return a.Price.Cmp(b.Price)
	case models.SortPriceDesc:
		return b.Price.Cmp(a.Price)
	case models.SortNameDesc:
		return strings.Compare(b.Name, a.Name)
	case models.SortProfitabilityAsc:
		return a.PricePerSqCm.Cmp(b.PricePerSqCm)
	case models.SortKcalDensityAsc:
		return a.KcalPerGram.Cmp(b.KcalPerGram)
	case models.SortKcalDensityDesc:
		return b.KcalPerGram.Cmp(a.KcalPerGram)
	default: // Default and NameAsc
		return strings.Compare(a.Name, b.Name)
	}
}

// slicePage returns the requested window. A page past the end of the set is
// an empty page, not an error.
func slicePage(results []PizzaSearchResult, page, size int) []PizzaSearchResult {
	start := (page - 1) * size
	if start >= len(results) {
		return []PizzaSearchResult{}
	}
	end := start + size
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}
