package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokohub/internal/domain/entity"
	"tokohub/pkg/errors"
)

func newShopFixture(t *testing.T) (*ShopUseCase, *memoryShopRepo, *memoryProductRepo, *memoryUserRepo) {
	t.Helper()
	shops := newMemoryShopRepo()
	products := newMemoryProductRepo()
	users := newMemoryUserRepo()
	return NewShopUseCase(shops, products, users), shops, products, users
}

func TestCreateShop(t *testing.T) {
	uc, _, _, users := newShopFixture(t)
	users.add(&entity.User{ID: "u1", Name: "Budi", Role: entity.RoleShopkeeper})

	shop, err := uc.CreateShop(context.Background(), CreateShopInput{
		UserID:      "u1",
		ShopName:    "Toko Budi",
		ShopAddress: entity.ShopAddress{City: "Surabaya"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, shop.ID)
	assert.Equal(t, "u1", shop.UserID)
}

func TestCreateShopUnknownUser(t *testing.T) {
	uc, _, _, _ := newShopFixture(t)

	_, err := uc.CreateShop(context.Background(), CreateShopInput{UserID: "missing", ShopName: "X"})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateShopWrongRole(t *testing.T) {
	uc, _, _, users := newShopFixture(t)
	users.add(&entity.User{ID: "u1", Name: "Budi", Role: "customer"})

	_, err := uc.CreateShop(context.Background(), CreateShopInput{UserID: "u1", ShopName: "X"})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateShopOnlyOnePerUser(t *testing.T) {
	uc, _, _, users := newShopFixture(t)
	users.add(&entity.User{ID: "u1", Name: "Budi", Role: entity.RoleShopkeeper})
	ctx := context.Background()

	_, err := uc.CreateShop(ctx, CreateShopInput{UserID: "u1", ShopName: "First"})
	require.NoError(t, err)

	_, err = uc.CreateShop(ctx, CreateShopInput{UserID: "u1", ShopName: "Second"})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestGetShopByUserIDPopulatesProducts(t *testing.T) {
	uc, shops, products, _ := newShopFixture(t)
	ctx := context.Background()

	shops.Create(ctx, &entity.Shop{ID: "shop-1", UserID: "u1", ProductIDs: []string{"p1", "p2"}})
	products.Create(ctx, &entity.Product{ID: "p1", Name: "A", Price: 10})
	products.Create(ctx, &entity.Product{ID: "p2", Name: "B", Price: 20})

	shop, err := uc.GetShopByUserID(ctx, "u1")
	require.NoError(t, err)

	assert.Len(t, shop.Products, 2)
}

func TestGetShopByUserIDNotFound(t *testing.T) {
	uc, _, _, _ := newShopFixture(t)

	_, err := uc.GetShopByUserID(context.Background(), "missing")

	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestUpdateShopPartial(t *testing.T) {
	uc, shops, _, _ := newShopFixture(t)
	ctx := context.Background()
	shops.Create(ctx, &entity.Shop{ID: "shop-1", UserID: "u1", ShopName: "Old", ShopAddress: entity.ShopAddress{City: "Medan"}})

	name := "New"
	shop, err := uc.UpdateShop(ctx, "shop-1", UpdateShopInput{ShopName: &name})
	require.NoError(t, err)

	assert.Equal(t, "New", shop.ShopName)
	assert.Equal(t, "Medan", shop.ShopAddress.City)
}

func TestAttachProduct(t *testing.T) {
	uc, shops, products, _ := newShopFixture(t)
	ctx := context.Background()
	shops.Create(ctx, &entity.Shop{ID: "shop-1", UserID: "u1"})
	products.Create(ctx, &entity.Product{ID: "p1", OwnerID: "shop-1", Price: 10})

	shop, err := uc.AttachProduct(ctx, "shop-1", "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, shop.ProductIDs)

	_, err = uc.AttachProduct(ctx, "shop-1", "p1")
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestAttachProductOwnershipEnforced(t *testing.T) {
	uc, shops, products, _ := newShopFixture(t)
	ctx := context.Background()
	shops.Create(ctx, &entity.Shop{ID: "shop-1", UserID: "u1"})
	products.Create(ctx, &entity.Product{ID: "p1", OwnerID: "other-shop", Price: 10})

	_, err := uc.AttachProduct(ctx, "shop-1", "p1")

	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
