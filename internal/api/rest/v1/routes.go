package v1

import (
	"items_service/internal/domain/items"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, itemService items.ItemService, rateLimitPerMin int) {
	r.Use(RequestID())
	r.Use(RateLimit(rateLimitPerMin))

	// Items Routes
	itemHandler := NewItemHandler(itemService)
	itemsGroup := r.Group("/items")
	itemsGroup.POST("", itemHandler.Create)
	itemsGroup.GET("", itemHandler.List)
	itemsGroup.GET("/:id", itemHandler.GetByID)
	itemsGroup.PUT("/:id", itemHandler.UpdateByID)
	itemsGroup.DELETE("/:id", itemHandler.DeleteByID)
}
