package services

import (
	"context"
	"errors"
	"testing"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalogRepo records the filter it was called with and returns canned
// candidates, so engine behavior can be tested without a database.
type stubCatalogRepo struct {
	calls      int
	lastFilter CandidateFilter
	candidates []PizzaCandidate
	err        error
}

func (s *stubCatalogRepo) FetchCandidates(_ context.Context, filter CandidateFilter) ([]PizzaCandidate, error) {
	s.calls++
	s.lastFilter = filter
	return s.candidates, s.err
}

func roundCandidate(id, name, price string, diameterCm, weightGrams, kcal float64) PizzaCandidate {
	return PizzaCandidate{
		Pizza: models.Pizza{
			ID:          id,
			Name:        name,
			Price:       decimal.RequireFromString(price),
			Shape:       models.ShapeRound,
			Style:       models.StyleNeapolitan,
			DiameterCm:  diameterCm,
			WeightGrams: weightGrams,
			Kcal:        kcal,
		},
		BrandName: "Mamma Mia",
		CityID:    "city-1",
	}
}

func rectCandidate(id, name, price string, widthCm, lengthCm, weightGrams, kcal float64) PizzaCandidate {
	return PizzaCandidate{
		Pizza: models.Pizza{
			ID:          id,
			Name:        name,
			Price:       decimal.RequireFromString(price),
			Shape:       models.ShapeRectangle,
			Style:       models.StyleSicilian,
			WidthCm:     widthCm,
			LengthCm:    lengthCm,
			WeightGrams: weightGrams,
			Kcal:        kcal,
		},
		BrandName: "Mamma Mia",
		CityID:    "city-1",
	}
}

func search(t *testing.T, repo *stubCatalogRepo, criteria SearchCriteria) SearchPage {
	t.Helper()
	page, err := NewSearchService(repo).SearchPizzas(context.Background(), criteria)
	require.NoError(t, err)
	return page
}

func resultNames(page SearchPage) []string {
	names := make([]string, 0, len(page.Items))
	for _, item := range page.Items {
		names = append(names, item.Name)
	}
	return names
}

func TestSearchRequiresCityID(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := NewSearchService(repo)

	_, err := svc.SearchPizzas(context.Background(), SearchCriteria{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "city_id", validationErr.Field)
	assert.Zero(t, repo.calls, "validation failures must not reach storage")
}

func TestSearchRejectsNegativePaging(t *testing.T) {
	testCases := []struct {
		name     string
		criteria SearchCriteria
		field    string
	}{
		{
			name:     "negative page number",
			criteria: SearchCriteria{CityID: "city-1", PageNumber: -1},
			field:    "page_number",
		},
		{
			name:     "negative page size",
			criteria: SearchCriteria{CityID: "city-1", PageSize: -5},
			field:    "page_size",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubCatalogRepo{}
			_, err := NewSearchService(repo).SearchPizzas(context.Background(), tt.criteria)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Zero(t, repo.calls)
		})
	}
}

func TestSearchAppliesPagingDefaults(t *testing.T) {
	repo := &stubCatalogRepo{}

	page := search(t, repo, SearchCriteria{CityID: "city-1"})

	assert.Equal(t, DefaultPageNumber, page.PageNumber)
	assert.Equal(t, DefaultPageSize, page.PageSize)
	assert.Equal(t, 1, repo.calls)
}

func TestSearchSkipsUnknownFacetIDs(t *testing.T) {
	repo := &stubCatalogRepo{candidates: []PizzaCandidate{
		roundCandidate("p1", "Margherita", "25.00", 30, 450, 900),
	}}

	page := search(t, repo, SearchCriteria{
		CityID: "city-1",
		Styles: []string{"Neapolitan", "NotARealStyle"},
		Shapes: []string{"Octagon"},
		Doughs: []string{"Sourdough"},
	})

	assert.Equal(t, []models.PizzaStyle{models.StyleNeapolitan}, repo.lastFilter.Styles)
	assert.Equal(t, []models.DoughType{models.DoughSourdough}, repo.lastFilter.Doughs)
	assert.Empty(t, repo.lastFilter.Shapes, "a facet with only unknown ids behaves as if absent")
	assert.Len(t, page.Items, 1, "the request still succeeds")
}

func TestSearchComposesStorageFilter(t *testing.T) {
	repo := &stubCatalogRepo{}
	minDiameter := 32.0
	minPrice := decimal.RequireFromString("10")
	maxPrice := decimal.RequireFromString("60")

	search(t, repo, SearchCriteria{
		CityID:        "city-1",
		BrandIDs:      []string{"brand-1", "brand-2"},
		MinDiameterCm: &minDiameter,
		MinPrice:      &minPrice,
		MaxPrice:      &maxPrice,
		SortBy:        "PriceAsc",
	})

	filter := repo.lastFilter
	assert.Equal(t, "city-1", filter.CityID)
	assert.True(t, filter.ActiveMenusOnly)
	assert.Equal(t, []string{"brand-1", "brand-2"}, filter.BrandIDs)
	require.NotNil(t, filter.MinDiameterForRound)
	assert.Equal(t, 32.0, *filter.MinDiameterForRound)
	assert.True(t, filter.MinPrice.Equal(minPrice))
	assert.True(t, filter.MaxPrice.Equal(maxPrice))
	assert.Equal(t, models.SortPriceAsc, filter.OrderBy, "stored-column sorts are pushed down")
}

func TestSearchNeverPushesComputedSortToStorage(t *testing.T) {
	repo := &stubCatalogRepo{}

	search(t, repo, SearchCriteria{CityID: "city-1", SortBy: "ProfitabilityAsc"})

	assert.Empty(t, repo.lastFilter.OrderBy)
}

func TestSearchUnknownSortFallsBackToDefault(t *testing.T) {
	repo := &stubCatalogRepo{candidates: []PizzaCandidate{
		roundCandidate("p2", "Diavola", "30.00", 30, 500, 1100),
		roundCandidate("p1", "Capricciosa", "30.00", 30, 500, 1100),
	}}

	page := search(t, repo, SearchCriteria{CityID: "city-1", SortBy: "SortByVibes"})

	assert.Equal(t, []string{"Capricciosa", "Diavola"}, resultNames(page))
}

func TestDerivedMetricRounding(t *testing.T) {
	// 9.97 / (20*10) = 0.04985 -> half away from zero at 4 decimals.
	// 1001 / 200 = 5.005 -> half away from zero at 2 decimals.
	repo := &stubCatalogRepo{candidates: []PizzaCandidate{
		rectCandidate("p1", "Sicilian Slab", "9.97", 20, 10, 200, 1001),
	}}

	page := search(t, repo, SearchCriteria{CityID: "city-1"})

	require.Len(t, page.Items, 1)
	assert.Equal(t, "0.0499", page.Items[0].PricePerSqCm.String())
	assert.Equal(t, "5.01", page.Items[0].KcalPerGram.String())
}

func TestDerivedMetricZeroGuards(t *testing.T) {
	zeroArea := roundCandidate("p1", "Phantom", "25.00", 0, 0, 500)
	zeroWeight := rectCandidate("p2", "Airy", "25.00", 20, 10, 0, 500)
	repo := &stubCatalogRepo{candidates: []PizzaCandidate{zeroArea, zeroWeight}}

	page := search(t, repo, SearchCriteria{CityID: "city-1", SortBy: "NameAsc"})

	require.Len(t, page.Items, 2)
	assert.True(t, page.Items[1].PricePerSqCm.IsZero(), "zero area yields zero price per sq cm")
	assert.True(t, page.Items[1].KcalPerGram.IsZero(), "zero area also means zero weight here")
	assert.True(t, page.Items[0].KcalPerGram.IsZero(), "zero weight yields zero kcal density")
	assert.False(t, page.Items[0].PricePerSqCm.IsZero())
}

func TestDiameterSurfacedOnlyForRoundPizzas(t *testing.T) {
	repo := &stubCatalogRepo{candidates: []PizzaCandidate{
		roundCandidate("p1", "Margherita", "25.00", 30, 450, 900),
		rectCandidate("p2", "Sicilian Slab", "28.00", 30, 40, 800, 1600),
	}}

	page := search(t, repo, SearchCriteria{CityID: "city-1", SortBy: "NameAsc"})

	require.Len(t, page.Items, 2)
	require.NotNil(t, page.Items[0].DiameterCm)
	assert.Equal(t, 30.0, *page.Items[0].DiameterCm)
	assert.Nil(t, page.Items[1].DiameterCm, "rectangle dimensions are not surfaced in the list view")
}

func TestSortProfitabilityAscEqualAreas(t *testing.T) {
	// Equal 30cm rounds: price-per-area order degenerates to price order.
	repo := &stubCatalogRepo{candidates: []PizzaCandidate{
		roundCandidate("p3", "Fifty", "50.00", 30, 500, 1000),
		roundCandidate("p1", "Thirty", "30.00", 30, 500, 1000),
		roundCandidate("p2", "Forty", "40.00", 30, 500, 1000),
	}}

	page := search(t, repo, SearchCriteria{CityID: "city-1", SortBy: "ProfitabilityAsc"})

	assert.Equal(t, []string{"Thirty", "Forty", "Fifty"}, resultNames(page))
}

func TestSortOrderings(t *testing.T) {
	candidates := []PizzaCandidate{
		roundCandidate("p1", "Alpha", "40.00", 30, 400, 1200), // 3.00 kcal/g
		roundCandidate("p2", "Bravo", "20.00", 30, 500, 500),  // 1.00 kcal/g
		roundCandidate("p3", "Charlie", "30.00", 30, 500, 1000), // 2.00 kcal/g
	}

	testCases := []struct {
		sortBy   string
		expected []string
	}{
		{sortBy: "", expected: []string{"Alpha", "Bravo", "Charlie"}},
		{sortBy: "NameAsc", expected: []string{"Alpha", "Bravo", "Charlie"}},
		{sortBy: "NameDesc", expected: []string{"Charlie", "Bravo", "Alpha"}},
		{sortBy: "PriceAsc", expected: []string{"Bravo", "Charlie", "Alpha"}},
		{sortBy: "PriceDesc", expected: []string{"Alpha", "Charlie", "Bravo"}},
		{sortBy: "KcalDensityAsc", expected: []string{"Bravo", "Charlie", "Alpha"}},
		{sortBy: "KcalDensityDesc", expected: []string{"Alpha", "Charlie", "Bravo"}},
	}

	for _, tt := range testCases {
		t.Run("sort_"+tt.sortBy, func(t *testing.T) {
			repo := &stubCatalogRepo{candidates: candidates}
			page := search(t, repo, SearchCriteria{CityID: "city-1", SortBy: tt.sortBy})
			assert.Equal(t, tt.expected, resultNames(page))
		})
	}
}

func TestSortTieBreakIsDeterministic(t *testing.T) {
	// Equal prices: ties fall back to name, then id.
	repo := &stubCatalogRepo{candidates: []PizzaCandidate{
		roundCandidate("p9", "Margherita", "25.00", 30, 450, 900),
		roundCandidate("p1", "Margherita", "25.00", 30, 450, 900),
		roundCandidate("p5", "Capricciosa", "25.00", 30, 450, 900),
	}}

	first := search(t, repo, SearchCriteria{CityID: "city-1", SortBy: "PriceAsc"})
	for i := 0; i < 5; i++ {
		again := search(t, repo, SearchCriteria{CityID: "city-1", SortBy: "PriceAsc"})
		assert.Equal(t, first.Items, again.Items)
	}

	assert.Equal(t, []string{"Capricciosa", "Margherita", "Margherita"}, resultNames(first))
	assert.Equal(t, "p1", first.Items[1].ID)
	assert.Equal(t, "p9", first.Items[2].ID)
}

func TestPaginationWindows(t *testing.T) {
	repo := &stubCatalogRepo{candidates: []PizzaCandidate{
		roundCandidate("p1", "A", "10.00", 30, 400, 800),
		roundCandidate("p2", "B", "11.00", 30, 400, 800),
		roundCandidate("p3", "C", "12.00", 30, 400, 800),
		roundCandidate("p4", "D", "13.00", 30, 400, 800),
		roundCandidate("p5", "E", "14.00", 30, 400, 800),
	}}

	page2 := search(t, repo, SearchCriteria{CityID: "city-1", SortBy: "NameAsc", PageNumber: 2, PageSize: 2})
	assert.Equal(t, []string{"C", "D"}, resultNames(page2))
	assert.Equal(t, 5, page2.TotalCount, "total counts matches before slicing")

	beyond := search(t, repo, SearchCriteria{CityID: "city-1", SortBy: "NameAsc", PageNumber: 4, PageSize: 2})
	assert.Empty(t, beyond.Items, "out-of-range page is an empty page, not an error")
	assert.Equal(t, 5, beyond.TotalCount)

	// Concatenating every page reconstructs the sorted set exactly once.
	var all []string
	for pageNumber := 1; pageNumber <= 3; pageNumber++ {
		page := search(t, repo, SearchCriteria{CityID: "city-1", SortBy: "NameAsc", PageNumber: pageNumber, PageSize: 2})
		all = append(all, resultNames(page)...)
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, all)
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	repoErr := errors.New("connection reset")
	repo := &stubCatalogRepo{err: repoErr}

	_, err := NewSearchService(repo).SearchPizzas(context.Background(), SearchCriteria{CityID: "city-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestEmptyResultIsSuccess(t *testing.T) {
	repo := &stubCatalogRepo{}

	page := search(t, repo, SearchCriteria{CityID: "city-without-pizzerias"})

	assert.Empty(t, page.Items)
	assert.Zero(t, page.TotalCount)
}
