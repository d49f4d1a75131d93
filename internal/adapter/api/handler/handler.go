package handler

import (
	"tokohub/internal/usecase"
)

var (
	productHandler     *ProductHandler
	shopHandler        *ShopHandler
	interactionHandler *InteractionHandler
)

func Setup(
	productUseCase *usecase.ProductUseCase,
	shopUseCase *usecase.ShopUseCase,
	interactionUseCase *usecase.InteractionUseCase,
	commentUseCase *usecase.CommentUseCase,
	ratingUseCase *usecase.RatingUseCase,
) {
	productHandler = NewProductHandler(productUseCase)
	shopHandler = NewShopHandler(shopUseCase)
	interactionHandler = NewInteractionHandler(interactionUseCase, commentUseCase, ratingUseCase)
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetShopHandler() *ShopHandler {
	return shopHandler
}

func GetInteractionHandler() *InteractionHandler {
	return interactionHandler
}
