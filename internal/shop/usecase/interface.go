// Package usecase implements the store-management flows: shop login, cashier
// provisioning, the customer statistics report and bulk inventory upload.
package usecase

import (
	"context"
	"io"

	identityBackend "github.com/pointward/gateway/internal/backend/identity"
	inventoryBackend "github.com/pointward/gateway/internal/backend/inventory"
)

// InventoryBackend defines the inventory backend operations the
// store-management flows use.
type InventoryBackend interface {
	ShopLogin(ctx context.Context, accountName, password string) (*inventoryBackend.Shop, error)
	CreateCashier(ctx context.Context, params inventoryBackend.CreateCashierParams) (*inventoryBackend.Cashier, error)
	CreateItems(ctx context.Context, items []inventoryBackend.ItemCreate) ([]inventoryBackend.Item, error)
}

// IdentityBackend defines the identity backend operations the
// store-management flows use.
type IdentityBackend interface {
	StatsReport(ctx context.Context, userIDs []string) (*identityBackend.StatsReport, error)
}

// LedgerBackend defines the ledger backend operations the store-management
// flows use.
type LedgerBackend interface {
	GetShopCustomers(ctx context.Context, shopID string) ([]string, error)
}

// ShopUseCase defines the store-management business logic.
type ShopUseCase interface {
	// Login verifies shop credentials and returns a STORE_MANAGEMENT-tier
	// token naming the shop.
	Login(ctx context.Context, accountName, password string) (string, error)
	// Stats builds the aggregated customer report for the shop.
	Stats(ctx context.Context, shopID string) (*identityBackend.StatsReport, error)
	// CreateCashier provisions a cashier account bound to the shop.
	CreateCashier(ctx context.Context, shopID, accountName, password string) (*inventoryBackend.Cashier, error)
	// UploadInventory parses an xlsx workbook and registers its rows as
	// catalog items of the shop in one write.
	UploadInventory(ctx context.Context, shopID string, sheet io.Reader) ([]inventoryBackend.Item, error)
}
