package repository

import (
	"context"

	"tokohub/internal/domain/entity"
)

// ProductFilter is the store-side portion of a product search. Substring
// fields match case-insensitively; empty means match-all. MaxPrice <= 0 means
// unbounded. MinRating is applied only when non-nil so that products without
// any ratings are not excluded by default.
type ProductFilter struct {
	NameContains        string
	CategoryContains    string
	SubcategoryContains string
	MinPrice            float64
	MaxPrice            float64
	MinRating           *float64
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	Find(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error

	// Mutate runs fn against the current stored state of the product and
	// persists the result as one atomic read-modify-write. Concurrent calls
	// for the same id must not lose updates. Returning an error from fn
	// aborts the write and propagates the error unchanged.
	Mutate(ctx context.Context, id string, fn func(product *entity.Product) error) (*entity.Product, error)
}
