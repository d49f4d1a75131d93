package usecase

import (
	"context"
	"time"

	"tokohub/internal/domain/entity"
	"tokohub/internal/domain/repository"
	"tokohub/pkg/errors"
)

type ShopUseCase struct {
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewShopUseCase(
	shopRepo repository.ShopRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *ShopUseCase {
	return &ShopUseCase{
		shopRepo:    shopRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

type CreateShopInput struct {
	UserID          string
	ShopName        string
	ShopAddress     entity.ShopAddress
	ShopDescription string
	ContactNumber   string
}

func (uc *ShopUseCase) CreateShop(ctx context.Context, input CreateShopInput) (*entity.Shop, error) {
	user, err := uc.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.BadRequest("User not found", err)
		}
		return nil, err
	}
	if user.Role != entity.RoleShopkeeper {
		return nil, errors.BadRequest("Your role is not shopkeeper", nil)
	}

	if _, err := uc.shopRepo.GetByUserID(ctx, input.UserID); err == nil {
		return nil, errors.Conflict("Shop already created for this user")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	shop := &entity.Shop{
		UserID:          input.UserID,
		ShopName:        input.ShopName,
		ShopAddress:     input.ShopAddress,
		ShopDescription: input.ShopDescription,
		ContactNumber:   input.ContactNumber,
		ProductIDs:      []string{},
		CreatedAt:       time.Now(),
	}

	if err := uc.shopRepo.Create(ctx, shop); err != nil {
		return nil, err
	}

	return shop, nil
}

// GetShopByUserID returns the user's shop with its product back-references
// resolved.
func (uc *ShopUseCase) GetShopByUserID(ctx context.Context, userID string) (*entity.Shop, error) {
	shop, err := uc.shopRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	products, err := uc.productRepo.GetByIDs(ctx, shop.ProductIDs)
	if err != nil {
		return nil, err
	}
	shop.Products = products

	return shop, nil
}

type UpdateShopInput struct {
	ShopName        *string
	ShopAddress     *entity.ShopAddress
	ShopDescription *string
	ContactNumber   *string
}

func (uc *ShopUseCase) UpdateShop(ctx context.Context, id string, input UpdateShopInput) (*entity.Shop, error) {
	return uc.shopRepo.Mutate(ctx, id, func(shop *entity.Shop) error {
		if input.ShopName != nil {
			shop.ShopName = *input.ShopName
		}
		if input.ShopAddress != nil {
			shop.ShopAddress = *input.ShopAddress
		}
		if input.ShopDescription != nil {
			shop.ShopDescription = *input.ShopDescription
		}
		if input.ContactNumber != nil {
			shop.ContactNumber = *input.ContactNumber
		}
		return nil
	})
}

// AttachProduct adds an existing product to the shop's denormalized list.
// The product must belong to the shop, and repeat attachment is rejected.
func (uc *ShopUseCase) AttachProduct(ctx context.Context, shopID, productID string) (*entity.Shop, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.OwnerID != shopID {
		return nil, errors.Forbidden("You are not the product owner", nil)
	}

	return uc.shopRepo.Mutate(ctx, shopID, func(shop *entity.Shop) error {
		if !shop.AttachProduct(productID) {
			return errors.Conflict("Product already added to shop")
		}
		return nil
	})
}
