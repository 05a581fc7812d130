package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/franciscosanchezn/pizza-market-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzeriaController handles HTTP requests related to pizzerias
type PizzeriaController interface {
	CreatePizzeria(c *gin.Context)
	GetPizzeria(c *gin.Context)
}

type pizzeriaController struct {
	service services.PizzeriaService
}

// NewPizzeriaController creates a new instance of PizzeriaController
func NewPizzeriaController(service services.PizzeriaService) *pizzeriaController {
	return &pizzeriaController{service: service}
}

// CreatePizzeria godoc
// @Summary Open a pizzeria
// @Description Create a pizzeria under a brand the caller owns. The city is matched by name or created; a first active menu is bootstrapped.
// @Tags pizzerias
// @Accept json
// @Produce json
// @Param pizzeria body services.CreatePizzeriaInput true "Pizzeria payload"
// @Success 201 {object} models.Pizzeria
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/owner/pizzerias [post]
func (c *pizzeriaController) CreatePizzeria(ctx *gin.Context) {
	var input services.CreatePizzeriaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	pizzeria, err := c.service.CreatePizzeria(input, currentUserID(ctx), isAdmin(ctx))
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, pizzeria)
}

// GetPizzeria godoc
// @Summary Get pizzeria by ID
// @Description Get a pizzeria with brand, address and active menu reference
// @Tags pizzerias
// @Accept json
// @Produce json
// @Param id path string true "Pizzeria ID"
// @Success 200 {object} services.PizzeriaDetails
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/pizzerias/{id} [get]
func (c *pizzeriaController) GetPizzeria(ctx *gin.Context) {
	pizzeria, err := c.service.GetPizzeria(ctx.Param("id"))
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzeria)
}
