package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"tokohub/internal/usecase"
	"tokohub/pkg/response"
	"tokohub/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	Name               string   `json:"name" validate:"required"`
	Caption            string   `json:"caption"`
	ImageURLs          []string `json:"image_urls" validate:"required,min=1,dive,url"`
	OwnerUserID        string   `json:"owner_user_id" validate:"required"`
	Price              float64  `json:"price" validate:"required,gte=1,lte=10000"`
	DiscountPercentage float64  `json:"discount_percentage" validate:"gte=0,lte=99"`
	Category           string   `json:"category"`
	Subcategory        string   `json:"subcategory"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:               req.Name,
		Caption:            req.Caption,
		ImageURLs:          req.ImageURLs,
		OwnerUserID:        req.OwnerUserID,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Category:           req.Category,
		Subcategory:        req.Subcategory,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

// updateProductRequest uses pointers so that an omitted field and a field
// explicitly sent as its zero value stay distinguishable.
type updateProductRequest struct {
	Name               *string  `json:"name"`
	Caption            *string  `json:"caption"`
	ImageURLs          []string `json:"image_urls"`
	Price              *float64 `json:"price"`
	DiscountPercentage *float64 `json:"discount_percentage"`
	Category           *string  `json:"category"`
	Subcategory        *string  `json:"subcategory"`
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:               req.Name,
		Caption:            req.Caption,
		ImageURLs:          req.ImageURLs,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Category:           req.Category,
		Subcategory:        req.Subcategory,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	detail, err := h.productUseCase.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, detail)
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	criteria := usecase.SearchCriteria{
		NameContains:        c.QueryParam("searchTerm"),
		CategoryContains:    c.QueryParam("category"),
		SubcategoryContains: c.QueryParam("subcategory"),
		CityContains:        c.QueryParam("city"),
	}

	if v := c.QueryParam("minPrice"); v != "" {
		minPrice, err := strconv.ParseFloat(v, 64)
		if err == nil {
			criteria.MinPrice = minPrice
		}
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		maxPrice, err := strconv.ParseFloat(v, 64)
		if err == nil {
			criteria.MaxPrice = maxPrice
		}
	}
	if v := c.QueryParam("rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err == nil {
			criteria.MinRating = &rating
		}
	}

	products, err := h.productUseCase.Search(c.Request().Context(), criteria)
	if err != nil {
		return response.Error(c, err)
	}

	pagination := utils.GetPaginationParams(c)
	total := int64(len(products))

	start := pagination.Offset
	if start > len(products) {
		start = len(products)
	}
	end := start + pagination.PageSize
	if end > len(products) {
		end = len(products)
	}

	return response.Paginated(c, products[start:end], total, pagination.Page, pagination.PageSize)
}
