// internal/handlers/favorite.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/services"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/utils"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// GET /favorites
func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	userIDStr, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c, "Invalid user context")
		return
	}

	properties, err := h.favoriteService.ListFavorites(userID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"favorites": properties,
	})
}

// POST /favorites/:propertyId/toggle
func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	userIDStr, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c, "Invalid user context")
		return
	}

	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	favorited, err := h.favoriteService.Toggle(userID, propertyID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Property not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	message := "Property removed from favorites"
	if favorited {
		message = "Property added to favorites"
	}

	utils.SuccessResponse(c, gin.H{
		"message":   message,
		"favorited": favorited,
	})
}
