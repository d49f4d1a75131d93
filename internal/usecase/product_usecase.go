package usecase

import (
	"context"
	"strings"
	"time"

	"tokohub/internal/domain/entity"
	"tokohub/internal/domain/repository"
	"tokohub/pkg/errors"
	"tokohub/pkg/logger"
)

const (
	minProductPrice = 1
	maxProductPrice = 10000
	maxDiscount     = 99
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
	userRepo    repository.UserRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	shopRepo repository.ShopRepository,
	userRepo repository.UserRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		shopRepo:    shopRepo,
		userRepo:    userRepo,
	}
}

type CreateProductInput struct {
	Name               string
	Caption            string
	ImageURLs          []string
	OwnerUserID        string
	Price              float64
	DiscountPercentage float64
	Category           string
	Subcategory        string
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	// The owner reference is the shopkeeper's account id; the product stores
	// the shop id it resolves to, fixed for the product's lifetime.
	shop, err := uc.shopRepo.GetByUserID(ctx, input.OwnerUserID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.BadRequest("Owner has no shop", err)
		}
		return nil, err
	}

	if len(input.ImageURLs) == 0 {
		return nil, errors.BadRequest("At least one image is required", nil)
	}
	if input.Price < minProductPrice || input.Price > maxProductPrice {
		return nil, errors.BadRequest("Price must be between 1 and 10000", nil)
	}
	if input.DiscountPercentage < 0 || input.DiscountPercentage > maxDiscount {
		return nil, errors.BadRequest("Discount must be between 0 and 99", nil)
	}

	product := &entity.Product{
		Name:               input.Name,
		Caption:            input.Caption,
		ImageURLs:          input.ImageURLs,
		OwnerID:            shop.ID,
		Price:              input.Price,
		DiscountPercentage: input.DiscountPercentage,
		Category:           input.Category,
		Subcategory:        input.Subcategory,
		Likes:              []string{},
		Comments:           []entity.Comment{},
		Ratings:            []entity.Rating{},
		CreatedAt:          time.Now(),
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	// Maintain the shop's denormalized product list. The product itself is the
	// source of truth for ownership, so a failure here is logged, not fatal.
	if _, err := uc.shopRepo.Mutate(ctx, shop.ID, func(s *entity.Shop) error {
		s.AttachProduct(product.ID)
		return nil
	}); err != nil {
		logger.Warn("Failed to attach product %s to shop %s: %v", product.ID, shop.ID, err)
	}

	product.Owner = shop
	return product, nil
}

// UpdateProductInput carries a partial update. Nil pointers mean "leave the
// field alone"; a pointer to a zero value is an explicit update, so sending
// price 0 is rejected by range validation instead of silently ignored.
type UpdateProductInput struct {
	Name               *string
	Caption            *string
	ImageURLs          []string
	Price              *float64
	DiscountPercentage *float64
	Category           *string
	Subcategory        *string
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*entity.Product, error) {
	if input.Price != nil && (*input.Price < minProductPrice || *input.Price > maxProductPrice) {
		return nil, errors.BadRequest("Price must be between 1 and 10000", nil)
	}
	if input.DiscountPercentage != nil && (*input.DiscountPercentage < 0 || *input.DiscountPercentage > maxDiscount) {
		return nil, errors.BadRequest("Discount must be between 0 and 99", nil)
	}
	if input.ImageURLs != nil && len(input.ImageURLs) == 0 {
		return nil, errors.BadRequest("At least one image is required", nil)
	}

	return uc.productRepo.Mutate(ctx, id, func(product *entity.Product) error {
		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Caption != nil {
			product.Caption = *input.Caption
		}
		if input.ImageURLs != nil {
			product.ImageURLs = input.ImageURLs
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.DiscountPercentage != nil {
			product.DiscountPercentage = *input.DiscountPercentage
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Subcategory != nil {
			product.Subcategory = *input.Subcategory
		}
		return nil
	})
}

// UserRef is the public slice of a user account attached to likes/comments.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

type CommentView struct {
	User UserRef `json:"user"`
	Text string  `json:"text"`
}

type ProductDetail struct {
	Product  *entity.Product `json:"product"`
	LikedBy  []UserRef       `json:"liked_by"`
	Comments []CommentView   `json:"comments"`
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*ProductDetail, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if shop, err := uc.shopRepo.GetByID(ctx, product.OwnerID); err == nil {
		product.Owner = shop
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	ids := make([]string, 0, len(product.Likes)+len(product.Comments))
	ids = append(ids, product.Likes...)
	for _, c := range product.Comments {
		ids = append(ids, c.UserID)
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	detail := &ProductDetail{
		Product:  product,
		LikedBy:  make([]UserRef, 0, len(product.Likes)),
		Comments: make([]CommentView, 0, len(product.Comments)),
	}
	for _, userID := range product.Likes {
		detail.LikedBy = append(detail.LikedBy, userRef(userID, users))
	}
	for _, c := range product.Comments {
		detail.Comments = append(detail.Comments, CommentView{
			User: userRef(c.UserID, users),
			Text: c.Text,
		})
	}

	return detail, nil
}

func userRef(userID string, users map[string]*entity.User) UserRef {
	if u, ok := users[userID]; ok {
		return UserRef{ID: u.ID, Name: u.Name, Role: u.Role}
	}
	// Account no longer resolvable; keep the bare reference.
	return UserRef{ID: userID}
}

// SearchCriteria is the full multi-criteria search input. CityContains
// targets the owning shop, not the product, and is applied after the owner
// join resolves.
type SearchCriteria struct {
	NameContains        string
	CategoryContains    string
	SubcategoryContains string
	MinPrice            float64
	MaxPrice            float64
	MinRating           *float64
	CityContains        string
}

// Search runs the store-side filter, then resolves each product's owner and
// applies the city criterion in process. Products whose owner reference does
// not resolve are dropped. Owner data for every store-side match is fetched
// before the city filter runs; that is the cost of not having a native
// cross-collection join.
func (uc *ProductUseCase) Search(ctx context.Context, criteria SearchCriteria) ([]*entity.Product, error) {
	products, err := uc.productRepo.Find(ctx, repository.ProductFilter{
		NameContains:        criteria.NameContains,
		CategoryContains:    criteria.CategoryContains,
		SubcategoryContains: criteria.SubcategoryContains,
		MinPrice:            criteria.MinPrice,
		MaxPrice:            criteria.MaxPrice,
		MinRating:           criteria.MinRating,
	})
	if err != nil {
		return nil, err
	}

	city := strings.ToLower(criteria.CityContains)
	shops := make(map[string]*entity.Shop)

	results := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		shop, seen := shops[product.OwnerID]
		if !seen {
			shop, err = uc.shopRepo.GetByID(ctx, product.OwnerID)
			if err != nil {
				if !errors.Is(err, "NOT_FOUND") {
					return nil, err
				}
				shop = nil
			}
			shops[product.OwnerID] = shop
		}
		if shop == nil {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(shop.ShopAddress.City), city) {
			continue
		}

		product.Owner = shop
		results = append(results, product)
	}

	return results, nil
}
