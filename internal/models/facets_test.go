package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePizzaStyle(t *testing.T) {
	style, err := ParsePizzaStyle("ChicagoStyle")
	require.NoError(t, err)
	assert.Equal(t, StyleChicagoStyle, style)
	assert.Equal(t, "Chicago Style", style.Label())

	_, err = ParsePizzaStyle("Hawaiian")
	assert.Error(t, err)

	// ids are case sensitive
	_, err = ParsePizzaStyle("neapolitan")
	assert.Error(t, err)
}

func TestParseDoughType(t *testing.T) {
	dough, err := ParseDoughType("GlutenFree")
	require.NoError(t, err)
	assert.Equal(t, "Gluten Free", dough.Label())

	_, err = ParseDoughType("Spelt")
	assert.Error(t, err)
}

func TestSauceLabels(t *testing.T) {
	assert.Equal(t, "Cream (White)", SauceCream.Label())
	assert.Equal(t, "Spicy Arrabbiata", SauceSpicyArrabbiata.Label())
	assert.Equal(t, "Tomato", SauceTomato.Label())
}

func TestCrustThicknessLabels(t *testing.T) {
	assert.Equal(t, "Traditional", ThicknessMedium.Label())
	assert.Equal(t, "Stuffed Crust", ThicknessStuffed.Label())
}

func TestParsePizzaShape(t *testing.T) {
	shape, err := ParsePizzaShape("Rectangle")
	require.NoError(t, err)
	assert.Equal(t, ShapeRectangle, shape)

	_, err = ParsePizzaShape("Oval")
	assert.Error(t, err)
}

func TestFacetLookUpsCoverEveryValue(t *testing.T) {
	styles := StyleLookUps()
	require.Len(t, styles, 6)
	assert.Equal(t, LookUpItem{ID: "Neapolitan", Name: "Neapolitan"}, styles[0])
	assert.Equal(t, LookUpItem{ID: "ChicagoStyle", Name: "Chicago Style"}, styles[2])

	assert.Len(t, DoughLookUps(), 4)
	assert.Len(t, SauceLookUps(), 6)
	assert.Len(t, ThicknessLookUps(), 4)
	assert.Len(t, ShapeLookUps(), 2)

	for _, item := range SauceLookUps() {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Name)
	}
}

func TestParseSortOption(t *testing.T) {
	option, err := ParseSortOption("KcalDensityDesc")
	require.NoError(t, err)
	assert.Equal(t, SortKcalDensityDesc, option)

	_, err = ParseSortOption("Random")
	assert.Error(t, err)
}

func TestStorageSortable(t *testing.T) {
	assert.True(t, SortDefault.StorageSortable())
	assert.True(t, SortPriceAsc.StorageSortable())
	assert.True(t, SortNameDesc.StorageSortable())

	// derived-metric orderings run in memory only
	assert.False(t, SortProfitabilityAsc.StorageSortable())
	assert.False(t, SortKcalDensityAsc.StorageSortable())
	assert.False(t, SortKcalDensityDesc.StorageSortable())
}
