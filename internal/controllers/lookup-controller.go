package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/franciscosanchezn/pizza-market-api/internal/services"
	"github.com/gin-gonic/gin"
)

// LookupController serves the filter metadata the search UI renders.
type LookupController interface {
	GetPizzaFilters(c *gin.Context)
}

type lookupController struct {
	service services.LookupService
}

// NewLookupController creates a new instance of LookupController
func NewLookupController(service services.LookupService) *lookupController {
	return &lookupController{service: service}
}

// GetPizzaFilters godoc
// @Summary Get pizza search filters
// @Description All facet sets, sort options, brand lookups and the price slider cap
// @Tags lookups
// @Accept json
// @Produce json
// @Success 200 {object} services.PizzaFilters
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/lookups/pizza-filters [get]
func (c *lookupController) GetPizzaFilters(ctx *gin.Context) {
	filters, err := c.service.GetPizzaFilters()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to load filters"))
		return
	}
	ctx.JSON(http.StatusOK, filters)
}
