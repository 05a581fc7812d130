package models

import "fmt"

// SortOption is a search result ordering. Price and name keys map to stored
// columns; the profitability and kcal-density keys are computed from derived
// metrics after materialization and can never be pushed into storage.
type SortOption string

const (
	SortDefault          SortOption = "Default"
	SortPriceAsc         SortOption = "PriceAsc"
	SortPriceDesc        SortOption = "PriceDesc"
	SortNameAsc          SortOption = "NameAsc"
	SortNameDesc         SortOption = "NameDesc"
	SortProfitabilityAsc SortOption = "ProfitabilityAsc"
	SortKcalDensityAsc   SortOption = "KcalDensityAsc"
	SortKcalDensityDesc  SortOption = "KcalDensityDesc"
)

var sortOptionLabels = map[SortOption]string{
	SortDefault:          "Default",
	SortPriceAsc:         "Price: low to high",
	SortPriceDesc:        "Price: high to low",
	SortNameAsc:          "Name: A-Z",
	SortNameDesc:         "Name: Z-A",
	SortProfitabilityAsc: "Best value per cm²",
	SortKcalDensityAsc:   "Kcal per gram: low to high",
	SortKcalDensityDesc:  "Kcal per gram: high to low",
}

// storageSortableOptions is an explicit allow-list of orderings backed by
// stored columns. Derived-metric keys are intentionally absent.
var storageSortableOptions = map[SortOption]bool{
	SortDefault:   true,
	SortPriceAsc:  true,
	SortPriceDesc: true,
	SortNameAsc:   true,
	SortNameDesc:  true,
}

func (o SortOption) String() string { return string(o) }

func (o SortOption) IsValid() bool {
	_, ok := sortOptionLabels[o]
	return ok
}

func (o SortOption) Label() string { return sortOptionLabels[o] }

// StorageSortable reports whether the ordering can be delegated to the
// storage layer.
func (o SortOption) StorageSortable() bool { return storageSortableOptions[o] }

// ParseSortOption resolves a raw id to a SortOption.
func ParseSortOption(raw string) (SortOption, error) {
	o := SortOption(raw)
	if !o.IsValid() {
		return "", fmt.Errorf("unknown sort option %q", raw)
	}
	return o, nil
}
