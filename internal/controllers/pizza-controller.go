package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/franciscosanchezn/pizza-market-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza updates an existing pizza
	UpdatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) *pizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas in the catalog
// @Tags pizzas
// @Accept json
// @Produce json
// @Success 200 {array} services.PizzaListItem
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetPizzas()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve pizzas"))
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza with facet labels and ingredients
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path string true "Pizza ID"
// @Success 200 {object} services.PizzaDetails
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	id := ctx.Param("id")

	pizza, err := c.service.GetPizzaByID(id)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Add a pizza to a menu. Facet ids are validated strictly; dimensions must match the shape.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body services.CreatePizzaInput true "Pizza payload"
// @Success 201 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/owner/pizzas [post]
func (c *pizzaController) CreatePizza(ctx *gin.Context) {
	var input services.CreatePizzaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	pizza, err := c.service.CreatePizza(input)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, pizza)
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Replace a pizza's attributes and ingredient set
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path string true "Pizza ID"
// @Param pizza body services.UpdatePizzaInput true "Pizza payload"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/owner/pizzas/{id} [put]
func (c *pizzaController) UpdatePizza(ctx *gin.Context) {
	id := ctx.Param("id")

	var input services.UpdatePizzaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	pizza, err := c.service.UpdatePizza(id, input)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Remove a pizza from its menu
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path string true "Pizza ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/owner/pizzas/{id} [delete]
func (c *pizzaController) DeletePizza(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.service.DeletePizza(id); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
