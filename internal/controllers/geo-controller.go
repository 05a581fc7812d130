package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/franciscosanchezn/pizza-market-api/internal/services"
	"github.com/gin-gonic/gin"
)

// GeoController manages the country/city reference data.
type GeoController interface {
	CreateCountry(c *gin.Context)
	GetCountries(c *gin.Context)
	CreateCity(c *gin.Context)
	GetCities(c *gin.Context)
	GetCityByID(c *gin.Context)
}

type geoController struct {
	service services.GeoService
}

// NewGeoController creates a new instance of GeoController
func NewGeoController(service services.GeoService) *geoController {
	return &geoController{service: service}
}

// CreateCountry godoc
// @Summary Create a country
// @Tags geo
// @Accept json
// @Produce json
// @Param country body services.CreateCountryInput true "Country payload"
// @Success 201 {object} models.Country
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/countries [post]
func (c *geoController) CreateCountry(ctx *gin.Context) {
	var input services.CreateCountryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	country, err := c.service.CreateCountry(input)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, country)
}

// GetCountries godoc
// @Summary List countries
// @Tags geo
// @Accept json
// @Produce json
// @Success 200 {array} models.Country
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/countries [get]
func (c *geoController) GetCountries(ctx *gin.Context) {
	countries, err := c.service.GetCountries()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve countries"))
		return
	}
	ctx.JSON(http.StatusOK, countries)
}

// CreateCity godoc
// @Summary Create a city
// @Tags geo
// @Accept json
// @Produce json
// @Param city body services.CreateCityInput true "City payload"
// @Success 201 {object} models.City
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/cities [post]
func (c *geoController) CreateCity(ctx *gin.Context) {
	var input services.CreateCityInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	city, err := c.service.CreateCity(input)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, city)
}

// GetCities godoc
// @Summary List cities
// @Tags geo
// @Accept json
// @Produce json
// @Success 200 {array} models.City
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/cities [get]
func (c *geoController) GetCities(ctx *gin.Context) {
	cities, err := c.service.GetCities()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve cities"))
		return
	}
	ctx.JSON(http.StatusOK, cities)
}

// GetCityByID godoc
// @Summary Get city by ID
// @Tags geo
// @Accept json
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} models.City
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/cities/{id} [get]
func (c *geoController) GetCityByID(ctx *gin.Context) {
	city, err := c.service.GetCityByID(ctx.Param("id"))
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, city)
}
