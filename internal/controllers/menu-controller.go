package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/franciscosanchezn/pizza-market-api/internal/services"
	"github.com/gin-gonic/gin"
)

// MenuController handles HTTP requests related to menus
type MenuController interface {
	CreateMenu(c *gin.Context)
	GetMenu(c *gin.Context)
	GetMenusForPizzeria(c *gin.Context)
	ActivateMenu(c *gin.Context)
	DeleteMenu(c *gin.Context)
}

type menuController struct {
	service services.MenuService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(service services.MenuService) *menuController {
	return &menuController{service: service}
}

// CreateMenu godoc
// @Summary Create a menu
// @Description Create a new, inactive menu for a pizzeria the caller owns
// @Tags menus
// @Accept json
// @Produce json
// @Param menu body services.CreateMenuInput true "Menu payload"
// @Success 201 {object} models.Menu
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/owner/menus [post]
func (c *menuController) CreateMenu(ctx *gin.Context) {
	var input services.CreateMenuInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	menu, err := c.service.CreateMenu(input, currentUserID(ctx), isAdmin(ctx))
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, menu)
}

// GetMenu godoc
// @Summary Get menu by ID
// @Description Get a menu with its pizzas
// @Tags menus
// @Accept json
// @Produce json
// @Param id path string true "Menu ID"
// @Success 200 {object} services.MenuDetails
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/menus/{id} [get]
func (c *menuController) GetMenu(ctx *gin.Context) {
	menu, err := c.service.GetMenu(ctx.Param("id"))
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, menu)
}

// GetMenusForPizzeria godoc
// @Summary List menus for a pizzeria
// @Description Get all menus of a pizzeria, active and inactive
// @Tags menus
// @Accept json
// @Produce json
// @Param id path string true "Pizzeria ID"
// @Success 200 {array} services.MenuListItem
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/pizzerias/{id}/menus [get]
func (c *menuController) GetMenusForPizzeria(ctx *gin.Context) {
	menus, err := c.service.GetMenusForPizzeria(ctx.Param("id"))
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, menus)
}

// ActivateMenu godoc
// @Summary Activate a menu
// @Description Mark a menu active and deactivate its siblings atomically
// @Tags menus
// @Accept json
// @Produce json
// @Param id path string true "Menu ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/owner/menus/{id}/activate [post]
func (c *menuController) ActivateMenu(ctx *gin.Context) {
	if err := c.service.ActivateMenu(ctx.Param("id"), currentUserID(ctx), isAdmin(ctx)); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "menu_activated"})
}

// DeleteMenu godoc
// @Summary Delete a menu
// @Description Delete an inactive menu with its pizzas; the active menu cannot be deleted
// @Tags menus
// @Accept json
// @Produce json
// @Param id path string true "Menu ID"
// @Success 204
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/owner/menus/{id} [delete]
func (c *menuController) DeleteMenu(ctx *gin.Context) {
	if err := c.service.DeleteMenu(ctx.Param("id"), currentUserID(ctx), isAdmin(ctx)); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
