package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"tokohub/internal/domain/entity"
	"tokohub/internal/domain/repository"
	"tokohub/internal/domain/service"
	"tokohub/pkg/errors"
)

// In-memory repository fakes. Mutate holds the store lock for the whole
// read-modify-write, which satisfies the same no-lost-update contract the
// Firestore transaction provides.

type memoryProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	seq      int
}

func newMemoryProductRepo() *memoryProductRepo {
	return &memoryProductRepo{products: make(map[string]*entity.Product)}
}

func cloneProduct(p *entity.Product) *entity.Product {
	clone := *p
	clone.ImageURLs = append([]string(nil), p.ImageURLs...)
	clone.Likes = append([]string(nil), p.Likes...)
	clone.Comments = append([]entity.Comment(nil), p.Comments...)
	clone.Ratings = append([]entity.Rating(nil), p.Ratings...)
	if p.OverallRating != nil {
		v := *p.OverallRating
		clone.OverallRating = &v
	}
	clone.Owner = nil
	return &clone
}

func (r *memoryProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		r.seq++
		product.ID = fmt.Sprintf("product-%d", r.seq)
	}
	r.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *memoryProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return cloneProduct(p), nil
}

func (r *memoryProductRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var products []*entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			products = append(products, cloneProduct(p))
		}
	}
	return products, nil
}

func (r *memoryProductRepo) Find(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var products []*entity.Product
	for _, p := range r.products {
		if filter.MinPrice > 0 && p.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		if filter.MinRating != nil && (p.OverallRating == nil || *p.OverallRating < *filter.MinRating) {
			continue
		}
		if !containsFold(p.Name, filter.NameContains) ||
			!containsFold(p.Category, filter.CategoryContains) ||
			!containsFold(p.Subcategory, filter.SubcategoryContains) {
			continue
		}
		products = append(products, cloneProduct(p))
	}
	return products, nil
}

func containsFold(value, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(substr))
}

func (r *memoryProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	r.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *memoryProductRepo) Mutate(ctx context.Context, id string, fn func(product *entity.Product) error) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	working := cloneProduct(stored)
	if err := fn(working); err != nil {
		return nil, err
	}
	r.products[id] = cloneProduct(working)
	return working, nil
}

type memoryShopRepo struct {
	mu    sync.Mutex
	shops map[string]*entity.Shop
	seq   int
}

func newMemoryShopRepo() *memoryShopRepo {
	return &memoryShopRepo{shops: make(map[string]*entity.Shop)}
}

func cloneShop(s *entity.Shop) *entity.Shop {
	clone := *s
	clone.ProductIDs = append([]string(nil), s.ProductIDs...)
	clone.Products = nil
	return &clone
}

func (r *memoryShopRepo) Create(ctx context.Context, shop *entity.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if shop.ID == "" {
		r.seq++
		shop.ID = fmt.Sprintf("shop-%d", r.seq)
	}
	r.shops[shop.ID] = cloneShop(shop)
	return nil
}

func (r *memoryShopRepo) GetByID(ctx context.Context, id string) (*entity.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shops[id]
	if !ok {
		return nil, errors.NotFound("Shop", nil)
	}
	return cloneShop(s), nil
}

func (r *memoryShopRepo) GetByUserID(ctx context.Context, userID string) (*entity.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shops {
		if s.UserID == userID {
			return cloneShop(s), nil
		}
	}
	return nil, errors.NotFound("Shop", nil)
}

func (r *memoryShopRepo) Update(ctx context.Context, shop *entity.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shops[shop.ID]; !ok {
		return errors.NotFound("Shop", nil)
	}
	r.shops[shop.ID] = cloneShop(shop)
	return nil
}

func (r *memoryShopRepo) Mutate(ctx context.Context, id string, fn func(shop *entity.Shop) error) (*entity.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.shops[id]
	if !ok {
		return nil, errors.NotFound("Shop", nil)
	}
	working := cloneShop(stored)
	if err := fn(working); err != nil {
		return nil, err
	}
	r.shops[id] = cloneShop(working)
	return working, nil
}

type memoryUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*entity.User)}
}

func (r *memoryUserRepo) add(user *entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *u
	return &copied, nil
}

func (r *memoryUserRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make(map[string]*entity.User, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			copied := *u
			users[id] = &copied
		}
	}
	return users, nil
}

type likeDelivery struct {
	Recipient string
	Event     service.LikeEvent
}

type stubNotifier struct {
	deliveries chan likeDelivery
	err        error
}

func newStubNotifier() *stubNotifier {
	return &stubNotifier{deliveries: make(chan likeDelivery, 16)}
}

func (n *stubNotifier) NotifyProductLiked(ctx context.Context, recipientUserID string, event service.LikeEvent) error {
	n.deliveries <- likeDelivery{Recipient: recipientUserID, Event: event}
	return n.err
}
