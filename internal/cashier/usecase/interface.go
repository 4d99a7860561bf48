// Package usecase implements the register-side flows: cashier login, catalog
// reads, customer lookup and the transaction recording pipeline.
package usecase

import (
	"context"

	identityBackend "github.com/pointward/gateway/internal/backend/identity"
	inventoryBackend "github.com/pointward/gateway/internal/backend/inventory"
	ledgerBackend "github.com/pointward/gateway/internal/backend/ledger"
	cashierDomain "github.com/pointward/gateway/internal/cashier/domain"
)

// InventoryBackend defines the inventory backend operations the register
// flows use. GetItemsByID returns records in the same order as the requested
// ids.
type InventoryBackend interface {
	CashierLogin(ctx context.Context, accountName, password string) (*inventoryBackend.Cashier, error)
	ListItems(ctx context.Context, shopID string) ([]inventoryBackend.Item, error)
	GetItemsByID(ctx context.Context, ids []string) ([]inventoryBackend.Item, error)
}

// IdentityBackend defines the identity backend operations the register flows
// use.
type IdentityBackend interface {
	GetByName(ctx context.Context, name string) ([]identityBackend.User, error)
}

// LedgerBackend defines the ledger backend operations the register flows use.
type LedgerBackend interface {
	CreateTransaction(ctx context.Context, shopID, buyerID string, lines []ledgerBackend.LineItem) (*ledgerBackend.Transaction, error)
}

// CashierUseCase defines the register-side business logic.
type CashierUseCase interface {
	// Login verifies cashier credentials and returns a CASHIER-tier token
	// bound to the cashier's shop.
	Login(ctx context.Context, accountName, password string) (string, error)
	// Inventory lists the catalog of the cashier's shop.
	Inventory(ctx context.Context, shopID string) ([]inventoryBackend.Item, error)
	// LookupByName searches customer accounts by display name.
	LookupByName(ctx context.Context, name string) ([]identityBackend.User, error)
	// ItemDetails fetches one catalog item.
	ItemDetails(ctx context.Context, itemID string) (*inventoryBackend.Item, error)
	// RecordTransaction prices the order via one batched inventory lookup and
	// submits it to the ledger as a single write.
	RecordTransaction(ctx context.Context, shopID, buyerID string, order []cashierDomain.OrderLine) (*ledgerBackend.Transaction, error)
}
