package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/franciscosanchezn/pizza-market-api/internal/services"
	"github.com/gin-gonic/gin"
)

// SearchController handles HTTP requests for the faceted pizza search and
// the pizzeria quick search
type SearchController interface {
	// SearchPizzas runs a faceted search over the catalog
	SearchPizzas(c *gin.Context)
	// SearchPizzerias runs the pizzeria quick search
	SearchPizzerias(c *gin.Context)
}

type searchController struct {
	searchService   services.SearchService
	pizzeriaService services.PizzeriaService
}

// NewSearchController creates a new instance of SearchController
func NewSearchController(searchService services.SearchService, pizzeriaService services.PizzeriaService) *searchController {
	return &searchController{
		searchService:   searchService,
		pizzeriaService: pizzeriaService,
	}
}

// SearchPizzas godoc
// @Summary Search pizzas
// @Description Faceted pizza search within a city, with derived price-per-area and kcal-per-gram metrics
// @Tags search
// @Accept json
// @Produce json
// @Param criteria body services.SearchCriteria true "Search criteria; city_id is required"
// @Success 200 {object} services.SearchPage
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/search/pizzas [post]
func (c *searchController) SearchPizzas(ctx *gin.Context) {
	var criteria services.SearchCriteria
	if err := ctx.ShouldBindJSON(&criteria); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	page, err := c.searchService.SearchPizzas(ctx.Request.Context(), criteria)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrSearchInvalidCriteria, validationErr.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to search pizzas"))
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// SearchPizzerias godoc
// @Summary Quick search pizzerias
// @Description Find pizzerias by partial city name and a phrase matched against pizzeria or brand names
// @Tags search
// @Accept json
// @Produce json
// @Param city query string false "Partial city name"
// @Param phrase query string false "Phrase matched against pizzeria or brand names"
// @Success 200 {array} services.PizzeriaListItem
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/search/pizzerias [get]
func (c *searchController) SearchPizzerias(ctx *gin.Context) {
	city := ctx.Query("city")
	phrase := ctx.Query("phrase")

	items, err := c.pizzeriaService.QuickSearch(city, phrase)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to search pizzerias"))
		return
	}

	ctx.JSON(http.StatusOK, items)
}
