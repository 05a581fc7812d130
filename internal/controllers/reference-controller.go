package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/franciscosanchezn/pizza-market-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ReferenceController manages brands and ingredients.
type ReferenceController interface {
	CreateBrand(c *gin.Context)
	GetBrands(c *gin.Context)
	GetBrandByID(c *gin.Context)
	CreateIngredient(c *gin.Context)
	GetIngredients(c *gin.Context)
	DeleteIngredient(c *gin.Context)
}

type referenceController struct {
	service services.CatalogService
}

// NewReferenceController creates a new instance of ReferenceController
func NewReferenceController(service services.CatalogService) *referenceController {
	return &referenceController{service: service}
}

// CreateBrand godoc
// @Summary Create a brand
// @Description Register a restaurant chain owned by the caller
// @Tags brands
// @Accept json
// @Produce json
// @Param brand body services.CreateBrandInput true "Brand payload"
// @Success 201 {object} models.Brand
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/owner/brands [post]
func (c *referenceController) CreateBrand(ctx *gin.Context) {
	var input services.CreateBrandInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	brand, err := c.service.CreateBrand(input, currentUserID(ctx))
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, brand)
}

// GetBrands godoc
// @Summary List brands
// @Tags brands
// @Accept json
// @Produce json
// @Success 200 {array} models.Brand
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/brands [get]
func (c *referenceController) GetBrands(ctx *gin.Context) {
	brands, err := c.service.GetBrands()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve brands"))
		return
	}
	ctx.JSON(http.StatusOK, brands)
}

// GetBrandByID godoc
// @Summary Get brand by ID
// @Tags brands
// @Accept json
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} models.Brand
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/brands/{id} [get]
func (c *referenceController) GetBrandByID(ctx *gin.Context) {
	brand, err := c.service.GetBrandByID(ctx.Param("id"))
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, brand)
}

// CreateIngredient godoc
// @Summary Create an ingredient
// @Description Add an ingredient tag to the catalog
// @Tags ingredients
// @Accept json
// @Produce json
// @Param ingredient body services.CreateIngredientInput true "Ingredient payload"
// @Success 201 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/owner/ingredients [post]
func (c *referenceController) CreateIngredient(ctx *gin.Context) {
	var input services.CreateIngredientInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	ingredient, err := c.service.CreateIngredient(input)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, ingredient)
}

// GetIngredients godoc
// @Summary List ingredients
// @Tags ingredients
// @Accept json
// @Produce json
// @Success 200 {array} models.Ingredient
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/ingredients [get]
func (c *referenceController) GetIngredients(ctx *gin.Context) {
	ingredients, err := c.service.GetIngredients()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve ingredients"))
		return
	}
	ctx.JSON(http.StatusOK, ingredients)
}

// DeleteIngredient godoc
// @Summary Delete an ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path string true "Ingredient ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/ingredients/{id} [delete]
func (c *referenceController) DeleteIngredient(ctx *gin.Context) {
	if err := c.service.DeleteIngredient(ctx.Param("id")); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
