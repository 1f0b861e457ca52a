package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vibecart/internal/domain/repository"
	"vibecart/internal/infra/persistence/sqlite"
	"vibecart/internal/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv bundles the services under test, wired against a real in-memory
// SQLite store.
type testEnv struct {
	db         *gorm.DB
	catalogUC  usecase.CatalogUsecase
	cartUC     usecase.CartUsecase
	checkoutUC usecase.CheckoutUsecase
	cartRepo   repository.CartRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.Open(":memory:", logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	productRepo := sqlite.NewProductRepository(db)
	cartRepo := sqlite.NewCartRepository(db)
	receiptRepo := sqlite.NewReceiptRepository(db)
	txManager := sqlite.NewTransactionManager(db)

	return &testEnv{
		db: db,
		catalogUC: NewCatalogService(CatalogServiceParams{
			ProductRepo: productRepo,
			Logger:      testLogger,
		}),
		cartUC: NewCartService(CartServiceParams{
			CartRepo:  cartRepo,
			TxManager: txManager,
		}),
		checkoutUC: NewCheckoutService(CheckoutServiceParams{
			ReceiptRepo: receiptRepo,
			TxManager:   txManager,
		}),
		cartRepo: cartRepo,
	}
}

// seedCatalog loads the default catalog (p1 Vibe T-Shirt 399, p2 Vibe Hoodie
// 1299, ...) into the test store.
func (env *testEnv) seedCatalog(t *testing.T) {
	t.Helper()

	if err := env.catalogUC.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
}
