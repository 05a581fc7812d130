package models

import "fmt"

// LookUpItem is the id/label pair lookup endpoints and facet views expose.
type LookUpItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PizzaStyle is the regional style of a pizza. The set is closed; values are
// stored as strings and validated on every write.
type PizzaStyle string

const (
	StyleNeapolitan   PizzaStyle = "Neapolitan"
	StyleAmerican     PizzaStyle = "American"
	StyleChicagoStyle PizzaStyle = "ChicagoStyle"
	StyleSicilian     PizzaStyle = "Sicilian"
	StyleRoman        PizzaStyle = "Roman"
	StyleCalzone      PizzaStyle = "Calzone"
)

var allPizzaStyles = []PizzaStyle{
	StyleNeapolitan, StyleAmerican, StyleChicagoStyle,
	StyleSicilian, StyleRoman, StyleCalzone,
}

var pizzaStyleLabels = map[PizzaStyle]string{
	StyleNeapolitan:   "Neapolitan",
	StyleAmerican:     "American",
	StyleChicagoStyle: "Chicago Style",
	StyleSicilian:     "Sicilian",
	StyleRoman:        "Roman",
	StyleCalzone:      "Calzone",
}

func (s PizzaStyle) String() string { return string(s) }

func (s PizzaStyle) IsValid() bool {
	_, ok := pizzaStyleLabels[s]
	return ok
}

func (s PizzaStyle) Label() string { return pizzaStyleLabels[s] }

func (s PizzaStyle) LookUp() LookUpItem {
	return LookUpItem{ID: string(s), Name: s.Label()}
}

// ParsePizzaStyle resolves a raw id to a PizzaStyle.
func ParsePizzaStyle(raw string) (PizzaStyle, error) {
	s := PizzaStyle(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown pizza style %q", raw)
	}
	return s, nil
}

// DoughType is the dough a pizza is made from.
type DoughType string

const (
	DoughWheat      DoughType = "Wheat"
	DoughWholeGrain DoughType = "WholeGrain"
	DoughGlutenFree DoughType = "GlutenFree"
	DoughSourdough  DoughType = "Sourdough"
)

var allDoughTypes = []DoughType{
	DoughWheat, DoughWholeGrain, DoughGlutenFree, DoughSourdough,
}

var doughTypeLabels = map[DoughType]string{
	DoughWheat:      "Wheat",
	DoughWholeGrain: "Whole Grain",
	DoughGlutenFree: "Gluten Free",
	DoughSourdough:  "Sourdough",
}

func (d DoughType) String() string { return string(d) }

func (d DoughType) IsValid() bool {
	_, ok := doughTypeLabels[d]
	return ok
}

func (d DoughType) Label() string { return doughTypeLabels[d] }

func (d DoughType) LookUp() LookUpItem {
	return LookUpItem{ID: string(d), Name: d.Label()}
}

// ParseDoughType resolves a raw id to a DoughType.
func ParseDoughType(raw string) (DoughType, error) {
	d := DoughType(raw)
	if !d.IsValid() {
		return "", fmt.Errorf("unknown dough type %q", raw)
	}
	return d, nil
}

// SauceType is the base sauce of a pizza.
type SauceType string

const (
	SauceTomato          SauceType = "Tomato"
	SauceCream           SauceType = "Cream"
	SauceBBQ             SauceType = "BBQ"
	SaucePesto           SauceType = "Pesto"
	SauceSpicyArrabbiata SauceType = "SpicyArrabbiata"
	SauceTruffleCream    SauceType = "TruffleCream"
)

var allSauceTypes = []SauceType{
	SauceTomato, SauceCream, SauceBBQ,
	SaucePesto, SauceSpicyArrabbiata, SauceTruffleCream,
}

var sauceTypeLabels = map[SauceType]string{
	SauceTomato:          "Tomato",
	SauceCream:           "Cream (White)",
	SauceBBQ:             "BBQ",
	SaucePesto:           "Pesto",
	SauceSpicyArrabbiata: "Spicy Arrabbiata",
	SauceTruffleCream:    "Truffle Cream",
}

func (s SauceType) String() string { return string(s) }

func (s SauceType) IsValid() bool {
	_, ok := sauceTypeLabels[s]
	return ok
}

func (s SauceType) Label() string { return sauceTypeLabels[s] }

func (s SauceType) LookUp() LookUpItem {
	return LookUpItem{ID: string(s), Name: s.Label()}
}

// ParseSauceType resolves a raw id to a SauceType.
func ParseSauceType(raw string) (SauceType, error) {
	s := SauceType(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown sauce type %q", raw)
	}
	return s, nil
}

// CrustThickness is the crust profile of a pizza.
type CrustThickness string

const (
	ThicknessThin    CrustThickness = "Thin"
	ThicknessMedium  CrustThickness = "Medium"
	ThicknessThick   CrustThickness = "Thick"
	ThicknessStuffed CrustThickness = "Stuffed"
)

var allCrustThicknesses = []CrustThickness{
	ThicknessThin, ThicknessMedium, ThicknessThick, ThicknessStuffed,
}

var crustThicknessLabels = map[CrustThickness]string{
	ThicknessThin:    "Thin",
	ThicknessMedium:  "Traditional",
	ThicknessThick:   "Thick",
	ThicknessStuffed: "Stuffed Crust",
}

func (t CrustThickness) String() string { return string(t) }

func (t CrustThickness) IsValid() bool {
	_, ok := crustThicknessLabels[t]
	return ok
}

func (t CrustThickness) Label() string { return crustThicknessLabels[t] }

func (t CrustThickness) LookUp() LookUpItem {
	return LookUpItem{ID: string(t), Name: t.Label()}
}

// ParseCrustThickness resolves a raw id to a CrustThickness.
func ParseCrustThickness(raw string) (CrustThickness, error) {
	t := CrustThickness(raw)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown crust thickness %q", raw)
	}
	return t, nil
}

// PizzaShape decides which dimensions a pizza carries: Round pizzas have a
// diameter, Rectangle pizzas have width and length.
type PizzaShape string

const (
	ShapeRound     PizzaShape = "Round"
	ShapeRectangle PizzaShape = "Rectangle"
)

var allPizzaShapes = []PizzaShape{ShapeRound, ShapeRectangle}

var pizzaShapeLabels = map[PizzaShape]string{
	ShapeRound:     "Round",
	ShapeRectangle: "Rectangle",
}

func (s PizzaShape) String() string { return string(s) }

func (s PizzaShape) IsValid() bool {
	_, ok := pizzaShapeLabels[s]
	return ok
}

func (s PizzaShape) Label() string { return pizzaShapeLabels[s] }

func (s PizzaShape) LookUp() LookUpItem {
	return LookUpItem{ID: string(s), Name: s.Label()}
}

// ParsePizzaShape resolves a raw id to a PizzaShape.
func ParsePizzaShape(raw string) (PizzaShape, error) {
	s := PizzaShape(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown pizza shape %q", raw)
	}
	return s, nil
}

func lookUps[T interface{ LookUp() LookUpItem }](values []T) []LookUpItem {
	items := make([]LookUpItem, 0, len(values))
	for _, value := range values {
		items = append(items, value.LookUp())
	}
	return items
}

// StyleLookUps returns the full pizza style facet as lookup items.
func StyleLookUps() []LookUpItem { return lookUps(allPizzaStyles) }

// DoughLookUps returns the full dough type facet as lookup items.
func DoughLookUps() []LookUpItem { return lookUps(allDoughTypes) }

// SauceLookUps returns the full sauce type facet as lookup items.
func SauceLookUps() []LookUpItem { return lookUps(allSauceTypes) }

// ThicknessLookUps returns the full crust thickness facet as lookup items.
func ThicknessLookUps() []LookUpItem { return lookUps(allCrustThicknesses) }

// ShapeLookUps returns the full pizza shape facet as lookup items.
func ShapeLookUps() []LookUpItem { return lookUps(allPizzaShapes) }
