package usecase

import (
	"context"
	"time"

	"tokohub/internal/domain/entity"
	"tokohub/internal/domain/repository"
	"tokohub/internal/domain/service"
	"tokohub/pkg/logger"
)

type InteractionUseCase struct {
	productRepo   repository.ProductRepository
	shopRepo      repository.ShopRepository
	userRepo      repository.UserRepository
	notifier      service.Notifier
	notifyTimeout time.Duration
}

func NewInteractionUseCase(
	productRepo repository.ProductRepository,
	shopRepo repository.ShopRepository,
	userRepo repository.UserRepository,
	notifier service.Notifier,
	notifyTimeout time.Duration,
) *InteractionUseCase {
	return &InteractionUseCase{
		productRepo:   productRepo,
		shopRepo:      shopRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
	}
}

type LikeResult struct {
	Liked   bool `json:"liked"`
	Changed bool `json:"changed"`
}

// ToggleLike likes the product on behalf of actorID, or removes the like when
// one is already present. A missing actor id is a deliberate no-op, not an
// error: the caller chose not to supply identity, and the product state must
// stay untouched. A fresh like notifies the shop owner after the write has
// committed; delivery problems never surface to the caller.
func (uc *InteractionUseCase) ToggleLike(ctx context.Context, productID, actorID, actorName string) (LikeResult, error) {
	if actorID == "" {
		if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
			return LikeResult{}, err
		}
		return LikeResult{}, nil
	}

	var liked bool
	product, err := uc.productRepo.Mutate(ctx, productID, func(p *entity.Product) error {
		liked = p.ToggleLike(actorID)
		return nil
	})
	if err != nil {
		return LikeResult{}, err
	}

	if liked {
		uc.notifyLiked(product, actorID, actorName)
	}

	return LikeResult{Liked: liked, Changed: true}, nil
}

// notifyLiked runs in the background so notification latency never holds up
// the like response. The timeout bounds the whole resolve-and-deliver path.
func (uc *InteractionUseCase) notifyLiked(product *entity.Product, actorID, actorName string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), uc.notifyTimeout)
		defer cancel()

		shop, err := uc.shopRepo.GetByID(ctx, product.OwnerID)
		if err != nil {
			logger.Warn("Like notification skipped, owner lookup failed for product %s: %v", product.ID, err)
			return
		}

		name := actorName
		if name == "" {
			if user, err := uc.userRepo.GetByID(ctx, actorID); err == nil {
				name = user.Name
			} else {
				name = actorID
			}
		}

		event := service.LikeEvent{ProductName: product.Name, ActorName: name}
		if err := uc.notifier.NotifyProductLiked(ctx, shop.UserID, event); err != nil {
			logger.Error("Like notification delivery failed for product %s: %v", product.ID, err)
		}
	}()
}
