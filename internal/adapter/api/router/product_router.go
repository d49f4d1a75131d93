package router

import (
	"github.com/labstack/echo/v4"

	"tokohub/internal/adapter/api/handler"
)

func SetupProductRouter(e *echo.Echo) {
	productHandler := handler.GetProductHandler()
	interactionHandler := handler.GetInteractionHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.SearchProducts)
	products.POST("", productHandler.CreateProduct)
	products.GET("/:id", productHandler.GetProduct)
	products.PUT("/:id", productHandler.UpdateProduct)

	products.POST("/:id/like", interactionHandler.ToggleLike)
	products.POST("/:id/comments", interactionHandler.UpsertComment)
	products.POST("/:id/ratings", interactionHandler.UpsertRating)
}
