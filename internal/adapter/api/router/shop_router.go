package router

import (
	"github.com/labstack/echo/v4"

	"tokohub/internal/adapter/api/handler"
)

func SetupShopRouter(e *echo.Echo) {
	shopHandler := handler.GetShopHandler()

	shops := e.Group("/v1/shops")
	shops.POST("", shopHandler.CreateShop)
	shops.GET("/user/:userId", shopHandler.GetShopByUserID)
	shops.PUT("/:id", shopHandler.UpdateShop)
	shops.PUT("/:id/products", shopHandler.AttachProduct)
}
