package impl

import (
	"context"
	"testing"

	domainerrors "vibecart/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddToCart_MergesSameProduct(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	ctx := context.Background()

	first, created, err := env.cartUC.AddToCart(ctx, "p1", 2)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 2, first.Qty)

	second, created, err := env.cartUC.AddToCart(ctx, "p1", 3)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Qty)

	cart, err := env.cartUC.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Qty)
}

func TestCartService_AddToCart_RejectsInvalidInput(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		productID string
		qty       int
	}{
		{name: "empty product id", productID: "", qty: 1},
		{name: "zero qty", productID: "p1", qty: 0},
		{name: "negative qty", productID: "p1", qty: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := env.cartUC.AddToCart(ctx, tt.productID, tt.qty)
			require.ErrorIs(t, err, domainerrors.ErrProductIDRequired)
		})
	}

	// No mutation happened.
	cart, err := env.cartUC.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_GetCart_ComputesSubtotalsAndTotal(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	ctx := context.Background()

	_, _, err := env.cartUC.AddToCart(ctx, "p1", 2) // 399 * 2
	require.NoError(t, err)
	_, _, err = env.cartUC.AddToCart(ctx, "p3", 1) // 2499 * 1
	require.NoError(t, err)

	cart, err := env.cartUC.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	var sum float64
	for _, line := range cart.Items {
		assert.Equal(t, line.Price*float64(line.Qty), line.Subtotal)
		sum += line.Subtotal
	}
	assert.Equal(t, sum, cart.Total)
	assert.Equal(t, float64(399*2+2499), cart.Total)
}

func TestCartService_GetCart_DanglingProductDegradesToZeroPrice(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	ctx := context.Background()

	// The product reference is weak; an id absent from the catalog still
	// produces a line, just with no name and a zero subtotal.
	_, _, err := env.cartUC.AddToCart(ctx, "ghost", 4)
	require.NoError(t, err)

	cart, err := env.cartUC.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Nil(t, cart.Items[0].Name)
	assert.Equal(t, float64(0), cart.Items[0].Price)
	assert.Equal(t, float64(0), cart.Items[0].Subtotal)
	assert.Equal(t, float64(0), cart.Total)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	ctx := context.Background()

	item, _, err := env.cartUC.AddToCart(ctx, "p2", 1)
	require.NoError(t, err)

	t.Run("replaces quantity", func(t *testing.T) {
		updated, err := env.cartUC.UpdateQuantity(ctx, item.ID, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, updated.Qty)
	})

	t.Run("rejects non-positive qty and leaves the line unchanged", func(t *testing.T) {
		_, err := env.cartUC.UpdateQuantity(ctx, item.ID, 0)
		require.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

		cart, err := env.cartUC.GetCart(ctx)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 7, cart.Items[0].Qty)
	})

	t.Run("unknown line reports not found", func(t *testing.T) {
		_, err := env.cartUC.UpdateQuantity(ctx, uuid.New(), 2)
		require.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
	})
}

func TestCartService_RemoveFromCart(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	ctx := context.Background()

	item, _, err := env.cartUC.AddToCart(ctx, "p4", 1)
	require.NoError(t, err)

	t.Run("unknown id leaves the ledger unchanged", func(t *testing.T) {
		err := env.cartUC.RemoveFromCart(ctx, uuid.New())
		require.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)

		cart, err := env.cartUC.GetCart(ctx)
		require.NoError(t, err)
		assert.Len(t, cart.Items, 1)
	})

	t.Run("deletes the line", func(t *testing.T) {
		require.NoError(t, env.cartUC.RemoveFromCart(ctx, item.ID))

		cart, err := env.cartUC.GetCart(ctx)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	})
}
