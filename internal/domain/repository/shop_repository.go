package repository

import (
	"context"

	"tokohub/internal/domain/entity"
)

type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	GetByID(ctx context.Context, id string) (*entity.Shop, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Shop, error)
	Update(ctx context.Context, shop *entity.Shop) error

	// Mutate is the shop counterpart of ProductRepository.Mutate; used to keep
	// the denormalized product list safe under concurrent attachment.
	Mutate(ctx context.Context, id string, fn func(shop *entity.Shop) error) (*entity.Shop, error)
}
