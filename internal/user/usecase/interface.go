// Package usecase implements the customer-facing flows: registration, login
// and the enriched transaction history and balance views.
package usecase

import (
	"context"

	identityBackend "github.com/pointward/gateway/internal/backend/identity"
	ledgerBackend "github.com/pointward/gateway/internal/backend/ledger"
	userDomain "github.com/pointward/gateway/internal/user/domain"
)

// IdentityBackend defines the identity backend operations the user flows use.
type IdentityBackend interface {
	Login(ctx context.Context, email, password string) (*identityBackend.User, error)
	Create(ctx context.Context, params identityBackend.CreateUserParams) (*identityBackend.User, error)
	GetByID(ctx context.Context, uid string) (*identityBackend.User, error)
}

// LedgerBackend defines the ledger backend operations the user flows use.
type LedgerBackend interface {
	ListTransactions(ctx context.Context, userID string, offset, limit int) ([]ledgerBackend.Transaction, error)
	GetBalances(ctx context.Context, userID string) ([]ledgerBackend.Balance, error)
}

// InventoryBackend defines the inventory backend operations the user flows
// use. ResolveNames returns names in the same order as the requested ids.
type InventoryBackend interface {
	ResolveNames(ctx context.Context, shopIDs []string) ([]string, error)
}

// UserUseCase defines the customer-facing business logic.
type UserUseCase interface {
	// Login verifies credentials and returns a USER-tier capability token.
	Login(ctx context.Context, email, password string) (string, error)
	// Create registers an account, optionally claiming a temporary identity,
	// and returns a USER-tier capability token for the new account.
	Create(ctx context.Context, params identityBackend.CreateUserParams) (string, error)
	// GetSelf fetches the account record behind a verified token.
	GetSelf(ctx context.Context, uid string) (*identityBackend.User, error)
	// Transactions fetches one page of purchase history with shop names
	// attached.
	Transactions(ctx context.Context, uid string, offset, limit int) ([]userDomain.EnrichedTransaction, error)
	// Balances fetches the per-shop point balances with shop names attached.
	Balances(ctx context.Context, uid string) ([]userDomain.EnrichedBalance, error)
}
