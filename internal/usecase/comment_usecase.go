package usecase

import (
	"context"
	"strings"

	"tokohub/internal/domain/entity"
	"tokohub/internal/domain/repository"
	"tokohub/pkg/errors"
)

type CommentUseCase struct {
	productRepo repository.ProductRepository
}

func NewCommentUseCase(productRepo repository.ProductRepository) *CommentUseCase {
	return &CommentUseCase{
		productRepo: productRepo,
	}
}

// UpsertComment stores the user's comment on the product, replacing any
// earlier comment by the same user in place. Reports whether an existing
// comment was replaced.
func (uc *CommentUseCase) UpsertComment(ctx context.Context, productID, userID, text string) (bool, error) {
	if userID == "" {
		return false, errors.BadRequest("User id is required", nil)
	}
	if strings.TrimSpace(text) == "" {
		return false, errors.BadRequest("Comment text is required", nil)
	}

	var replaced bool
	_, err := uc.productRepo.Mutate(ctx, productID, func(p *entity.Product) error {
		replaced = p.UpsertComment(userID, text)
		return nil
	})
	if err != nil {
		return false, err
	}

	return replaced, nil
}
