package usecase

import (
	"context"

	"tokohub/internal/domain/entity"
	"tokohub/internal/domain/repository"
	"tokohub/pkg/errors"
)

type RatingUseCase struct {
	productRepo repository.ProductRepository
}

func NewRatingUseCase(productRepo repository.ProductRepository) *RatingUseCase {
	return &RatingUseCase{
		productRepo: productRepo,
	}
}

// UpsertRating records the user's rating for the product and returns the
// product with its refreshed overall rating. The rating list mutation and the
// aggregate recompute commit together; a reader can never observe one without
// the other.
func (uc *RatingUseCase) UpsertRating(ctx context.Context, productID, userID string, value int) (*entity.Product, error) {
	if userID == "" {
		return nil, errors.BadRequest("User id is required", nil)
	}
	if value < 1 || value > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	return uc.productRepo.Mutate(ctx, productID, func(p *entity.Product) error {
		p.UpsertRating(userID, value)
		return nil
	})
}
