package sqlite

import (
	"context"
	"testing"
	"time"

	"vibecart/internal/domain/entity"
	"vibecart/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(":memory:", logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)

	return db
}

func seedProducts(t *testing.T, db *gorm.DB, products ...*entity.Product) {
	t.Helper()

	repo := NewProductRepository(db)
	require.NoError(t, repo.CreateProducts(context.Background(), products))
}

func newCartItem(productID string, qty int) *entity.CartItem {
	return &entity.CartItem{
		ID:        uuid.New(),
		ProductID: productID,
		Qty:       qty,
		CreatedAt: time.Now().UTC(),
	}
}

func TestCartRepository_ListCartLines(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	seedProducts(t, db,
		&entity.Product{ID: "p1", Name: "Vibe T-Shirt", Price: 399},
		&entity.Product{ID: "p2", Name: "Vibe Hoodie", Price: 1299},
	)

	require.NoError(t, repo.CreateCartItem(ctx, newCartItem("p1", 2)))
	require.NoError(t, repo.CreateCartItem(ctx, newCartItem("p2", 1)))
	// Line for a product the catalog no longer knows.
	require.NoError(t, repo.CreateCartItem(ctx, newCartItem("ghost", 4)))

	lines, err := repo.ListCartLines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	byProduct := make(map[string]*entity.CartLine, len(lines))
	for _, line := range lines {
		byProduct[line.ProductID] = line
	}

	require.NotNil(t, byProduct["p1"].Name)
	assert.Equal(t, "Vibe T-Shirt", *byProduct["p1"].Name)
	assert.Equal(t, float64(798), byProduct["p1"].Subtotal)
	assert.Equal(t, float64(1299), byProduct["p2"].Subtotal)

	assert.Nil(t, byProduct["ghost"].Name)
	assert.Equal(t, float64(0), byProduct["ghost"].Price)
	assert.Equal(t, float64(0), byProduct["ghost"].Subtotal)
	assert.Equal(t, 4, byProduct["ghost"].Qty)
}

func TestCartRepository_FindAndMutate(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	item := newCartItem("p1", 2)
	require.NoError(t, repo.CreateCartItem(ctx, item))

	t.Run("find by product", func(t *testing.T) {
		found, err := repo.FindCartItemByProduct(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, item.ID, found.ID)
		assert.Equal(t, 2, found.Qty)
	})

	t.Run("find missing product", func(t *testing.T) {
		_, err := repo.FindCartItemByProduct(ctx, "p9")
		require.ErrorIs(t, err, repository.ErrCartItemNotFound)
	})

	t.Run("increment qty", func(t *testing.T) {
		require.NoError(t, repo.IncrementQty(ctx, item.ID, 3))

		found, err := repo.FindCartItemByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, found.Qty)
	})

	t.Run("increment unknown line", func(t *testing.T) {
		err := repo.IncrementQty(ctx, uuid.New(), 1)
		require.ErrorIs(t, err, repository.ErrCartItemNotFound)
	})

	t.Run("update qty", func(t *testing.T) {
		require.NoError(t, repo.UpdateQty(ctx, item.ID, 7))

		found, err := repo.FindCartItemByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, found.Qty)
	})

	t.Run("update unknown line", func(t *testing.T) {
		err := repo.UpdateQty(ctx, uuid.New(), 3)
		require.ErrorIs(t, err, repository.ErrCartItemNotFound)
	})

	t.Run("delete unknown line", func(t *testing.T) {
		err := repo.DeleteCartItem(ctx, uuid.New())
		require.ErrorIs(t, err, repository.ErrCartItemNotFound)
	})

	t.Run("delete line", func(t *testing.T) {
		require.NoError(t, repo.DeleteCartItem(ctx, item.ID))

		_, err := repo.FindCartItemByID(ctx, item.ID)
		require.ErrorIs(t, err, repository.ErrCartItemNotFound)
	})
}

func TestCartRepository_ClearCart(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateCartItem(ctx, newCartItem("p1", 1)))
	require.NoError(t, repo.CreateCartItem(ctx, newCartItem("p2", 2)))

	require.NoError(t, repo.ClearCart(ctx))

	lines, err := repo.ListCartLines(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// Clearing an already empty cart is not an error.
	require.NoError(t, repo.ClearCart(ctx))
}
