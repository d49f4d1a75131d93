package handler

import (
	"github.com/labstack/echo/v4"

	"tokohub/internal/domain/entity"
	"tokohub/internal/usecase"
	"tokohub/pkg/response"
)

type ShopHandler struct {
	shopUseCase *usecase.ShopUseCase
}

func NewShopHandler(shopUseCase *usecase.ShopUseCase) *ShopHandler {
	return &ShopHandler{
		shopUseCase: shopUseCase,
	}
}

type shopAddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code"`
}

type createShopRequest struct {
	UserID          string             `json:"user_id" validate:"required"`
	ShopName        string             `json:"shop_name" validate:"required"`
	ShopAddress     shopAddressRequest `json:"shop_address" validate:"required"`
	ShopDescription string             `json:"shop_description"`
	ContactNumber   string             `json:"contact_number" validate:"omitempty,len=10,numeric"`
}

func (h *ShopHandler) CreateShop(c echo.Context) error {
	var req createShopRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	shop, err := h.shopUseCase.CreateShop(c.Request().Context(), usecase.CreateShopInput{
		UserID:   req.UserID,
		ShopName: req.ShopName,
		ShopAddress: entity.ShopAddress{
			Street:     req.ShopAddress.Street,
			City:       req.ShopAddress.City,
			PostalCode: req.ShopAddress.PostalCode,
		},
		ShopDescription: req.ShopDescription,
		ContactNumber:   req.ContactNumber,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, shop)
}

func (h *ShopHandler) GetShopByUserID(c echo.Context) error {
	userID := c.Param("userId")

	shop, err := h.shopUseCase.GetShopByUserID(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shop)
}

type updateShopRequest struct {
	ShopName        *string             `json:"shop_name"`
	ShopAddress     *shopAddressRequest `json:"shop_address"`
	ShopDescription *string             `json:"shop_description"`
	ContactNumber   *string             `json:"contact_number"`
}

func (h *ShopHandler) UpdateShop(c echo.Context) error {
	id := c.Param("id")

	var req updateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdateShopInput{
		ShopName:        req.ShopName,
		ShopDescription: req.ShopDescription,
		ContactNumber:   req.ContactNumber,
	}
	if req.ShopAddress != nil {
		input.ShopAddress = &entity.ShopAddress{
			Street:     req.ShopAddress.Street,
			City:       req.ShopAddress.City,
			PostalCode: req.ShopAddress.PostalCode,
		}
	}

	shop, err := h.shopUseCase.UpdateShop(c.Request().Context(), id, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shop)
}

type attachProductRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (h *ShopHandler) AttachProduct(c echo.Context) error {
	id := c.Param("id")

	var req attachProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	shop, err := h.shopUseCase.AttachProduct(c.Request().Context(), id, req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shop)
}
