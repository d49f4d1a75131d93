package repository

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tokohub/internal/domain/entity"
	"tokohub/internal/domain/repository"
	"tokohub/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	refs := make([]*firestore.DocumentRef, len(ids))
	for i, id := range ids {
		refs[i] = r.client.Collection("products").Doc(id)
	}

	docs, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Internal("Failed to get products", err)
	}

	var products []*entity.Product
	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, nil
}

// Find pushes the numeric bounds down to Firestore and applies the substring
// criteria in process afterwards; Firestore has no substring predicate, so
// every candidate in the price/rating window is fetched. Fine at catalog
// scale, a known limit beyond it.
func (r *firestoreProductRepository) Find(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := r.client.Collection("products").Query

	if filter.MinPrice > 0 {
		query = query.Where("price", ">=", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price", "<=", filter.MaxPrice)
	}
	if filter.MinRating != nil {
		query = query.Where("overallRating", ">=", *filter.MinRating)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}

		if matchesText(&product, filter) {
			products = append(products, &product)
		}
	}

	return products, nil
}

// matchesText applies the in-process half of a ProductFilter: the
// case-insensitive substring criteria. Empty criteria match everything.
func matchesText(product *entity.Product, filter repository.ProductFilter) bool {
	return containsFold(product.Name, filter.NameContains) &&
		containsFold(product.Category, filter.CategoryContains) &&
		containsFold(product.Subcategory, filter.SubcategoryContains)
}

func containsFold(value, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(substr))
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

// Mutate wraps the read-modify-write in a Firestore transaction. Firestore
// retries the whole function when a concurrent writer touched the document
// between our read and commit, so concurrent mutations of the same product
// never overwrite each other.
func (r *firestoreProductRepository) Mutate(ctx context.Context, id string, fn func(product *entity.Product) error) (*entity.Product, error) {
	var result *entity.Product

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.client.Collection("products").Doc(id)
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Product", err)
			}
			return err
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return err
		}

		if err := fn(&product); err != nil {
			return err
		}

		product.UpdatedAt = time.Now()
		result = &product

		return tx.Set(docRef, &product)
	})

	if err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, errors.Internal("Failed to update product", err)
	}

	return result, nil
}
