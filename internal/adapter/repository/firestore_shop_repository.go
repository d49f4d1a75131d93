package repository

import (
	"context"
	stderrors "errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tokohub/internal/domain/entity"
	"tokohub/internal/domain/repository"
	"tokohub/pkg/errors"
)

type firestoreShopRepository struct {
	client *firestore.Client
}

func NewFirestoreShopRepository(client *firestore.Client) repository.ShopRepository {
	return &firestoreShopRepository{
		client: client,
	}
}

func (r *firestoreShopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	if shop.ID == "" {
		doc := r.client.Collection("shops").NewDoc()
		shop.ID = doc.ID
	}

	now := time.Now()
	if shop.CreatedAt.IsZero() {
		shop.CreatedAt = now
	}
	shop.UpdatedAt = now

	_, err := r.client.Collection("shops").Doc(shop.ID).Set(ctx, shop)
	if err != nil {
		return errors.Internal("Failed to create shop", err)
	}

	return nil
}

func (r *firestoreShopRepository) GetByID(ctx context.Context, id string) (*entity.Shop, error) {
	doc, err := r.client.Collection("shops").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Shop", err)
		}
		return nil, errors.Internal("Failed to get shop", err)
	}

	var shop entity.Shop
	if err := doc.DataTo(&shop); err != nil {
		return nil, errors.Internal("Failed to parse shop data", err)
	}

	return &shop, nil
}

func (r *firestoreShopRepository) GetByUserID(ctx context.Context, userID string) (*entity.Shop, error) {
	iter := r.client.Collection("shops").Where("userId", "==", userID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Shop", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query shop", err)
	}

	var shop entity.Shop
	if err := doc.DataTo(&shop); err != nil {
		return nil, errors.Internal("Failed to parse shop data", err)
	}

	return &shop, nil
}

func (r *firestoreShopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shop.UpdatedAt = time.Now()

	_, err := r.client.Collection("shops").Doc(shop.ID).Set(ctx, shop)
	if err != nil {
		return errors.Internal("Failed to update shop", err)
	}

	return nil
}

func (r *firestoreShopRepository) Mutate(ctx context.Context, id string, fn func(shop *entity.Shop) error) (*entity.Shop, error) {
	var result *entity.Shop

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.client.Collection("shops").Doc(id)
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Shop", err)
			}
			return err
		}

		var shop entity.Shop
		if err := doc.DataTo(&shop); err != nil {
			return err
		}

		if err := fn(&shop); err != nil {
			return err
		}

		shop.UpdatedAt = time.Now()
		result = &shop

		return tx.Set(docRef, &shop)
	})

	if err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, errors.Internal("Failed to update shop", err)
	}

	return result, nil
}
