package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/franciscosanchezn/pizza-market-api/internal/services"
	"github.com/gin-gonic/gin"
)

// respondWithServiceError translates service-layer errors into HTTP status
// codes with the shared APIError body. Anything unrecognized is a 500.
func respondWithServiceError(ctx *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, validationErr.Error()))
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, err.Error()))
	case errors.Is(err, services.ErrConflict):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict, err.Error()))
	case errors.Is(err, services.ErrForbidden):
		ctx.JSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden, err.Error()))
	default:
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "internal server error"))
	}
}

// currentUserID reads the authenticated user id set by the JWT middleware.
func currentUserID(ctx *gin.Context) uint {
	return ctx.GetUint("userID")
}

// isAdmin reports whether the caller holds the admin role.
func isAdmin(ctx *gin.Context) bool {
	role, _ := ctx.Get("userRole")
	return role == models.RoleAdmin
}
