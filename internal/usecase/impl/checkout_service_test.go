package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "vibecart/internal/domain/errors"
	"vibecart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_Checkout_RequiresCustomerInfo(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	ctx := context.Background()

	_, _, err := env.cartUC.AddToCart(ctx, "p1", 1)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input *usecase.CheckoutInput
	}{
		{name: "nil input", input: nil},
		{name: "missing name", input: &usecase.CheckoutInput{CustomerEmail: "jane@example.com"}},
		{name: "missing email", input: &usecase.CheckoutInput{CustomerName: "Jane"}},
		{name: "blank fields", input: &usecase.CheckoutInput{CustomerName: "  ", CustomerEmail: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.checkoutUC.Checkout(ctx, tt.input)
			require.ErrorIs(t, err, domainerrors.ErrCustomerInfoRequired)
		})
	}

	// The failed checkouts had no side effects.
	cart, err := env.cartUC.GetCart(ctx)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	receipts, err := env.checkoutUC.ListReceipts(ctx)
	require.NoError(t, err)
	assert.Empty(t, receipts)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	ctx := context.Background()

	_, err := env.checkoutUC.Checkout(ctx, &usecase.CheckoutInput{
		CustomerName:  "Jane",
		CustomerEmail: "jane@example.com",
	})
	require.ErrorIs(t, err, domainerrors.ErrEmptyCart)

	receipts, err := env.checkoutUC.ListReceipts(ctx)
	require.NoError(t, err)
	assert.Empty(t, receipts)
}

func TestCheckoutService_Checkout_RecordsReceiptAndClearsCart(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	ctx := context.Background()

	_, _, err := env.cartUC.AddToCart(ctx, "p1", 2) // Vibe T-Shirt, 399
	require.NoError(t, err)
	_, _, err = env.cartUC.AddToCart(ctx, "p2", 1) // Vibe Hoodie, 1299
	require.NoError(t, err)

	receipt, err := env.checkoutUC.Checkout(ctx, &usecase.CheckoutInput{
		CustomerName:  "Jane",
		CustomerEmail: "jane@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane", receipt.CustomerName)
	assert.Equal(t, "jane@example.com", receipt.CustomerEmail)
	assert.Equal(t, float64(399*2+1299), receipt.Total)
	require.Len(t, receipt.Items, 2)
	assert.False(t, receipt.CreatedAt.IsZero())

	for _, line := range receipt.Items {
		assert.Equal(t, line.Price*float64(line.Qty), line.Subtotal)
		require.NotNil(t, line.Name)
	}

	cart, err := env.cartUC.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, float64(0), cart.Total)

	receipts, err := env.checkoutUC.ListReceipts(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, receipt.ID, receipts[0].ID)
}

func TestCheckoutService_ListReceipts_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	ctx := context.Background()

	input := &usecase.CheckoutInput{CustomerName: "Jane", CustomerEmail: "jane@example.com"}

	_, _, err := env.cartUC.AddToCart(ctx, "p1", 1)
	require.NoError(t, err)
	first, err := env.checkoutUC.Checkout(ctx, input)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, _, err = env.cartUC.AddToCart(ctx, "p2", 1)
	require.NoError(t, err)
	second, err := env.checkoutUC.Checkout(ctx, input)
	require.NoError(t, err)

	receipts, err := env.checkoutUC.ListReceipts(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.Equal(t, second.ID, receipts[0].ID)
	assert.Equal(t, first.ID, receipts[1].ID)
}

func TestCheckoutService_ReceiptSnapshotSurvivesCartChanges(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	ctx := context.Background()

	_, _, err := env.cartUC.AddToCart(ctx, "p3", 2) // Vibe Sneakers, 2499
	require.NoError(t, err)

	receipt, err := env.checkoutUC.Checkout(ctx, &usecase.CheckoutInput{
		CustomerName:  "Jane",
		CustomerEmail: "jane@example.com",
	})
	require.NoError(t, err)

	// Mutate the cart after checkout; the archived snapshot must not move.
	_, _, err = env.cartUC.AddToCart(ctx, "p3", 9)
	require.NoError(t, err)

	receipts, err := env.checkoutUC.ListReceipts(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 1)

	stored := receipts[0]
	require.Len(t, stored.Items, 1)
	require.NotNil(t, stored.Items[0].Name)
	assert.Equal(t, "Vibe Sneakers", *stored.Items[0].Name)
	assert.Equal(t, float64(2499), stored.Items[0].Price)
	assert.Equal(t, 2, stored.Items[0].Qty)
	assert.Equal(t, float64(4998), stored.Items[0].Subtotal)
	assert.Equal(t, receipt.Total, stored.Total)
}
