package usecase

import (
	"context"
	"log/slog"

	authDomain "github.com/pointward/gateway/internal/auth/domain"
	authService "github.com/pointward/gateway/internal/auth/service"
	identityBackend "github.com/pointward/gateway/internal/backend/identity"
	ledgerBackend "github.com/pointward/gateway/internal/backend/ledger"
	"github.com/pointward/gateway/internal/enrich"
	apperrors "github.com/pointward/gateway/internal/errors"
	userDomain "github.com/pointward/gateway/internal/user/domain"
)

// userUseCase implements UserUseCase.
type userUseCase struct {
	identityBackend  IdentityBackend
	ledgerBackend    LedgerBackend
	inventoryBackend InventoryBackend
	tokenCodec       authService.TokenCodec
	logger           *slog.Logger
}

// Login verifies credentials against the identity backend and issues a
// USER-tier token for the account.
func (u *userUseCase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.identityBackend.Login(ctx, email, password)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to log user in")
	}

	token, err := u.tokenCodec.Issue(user.UID, authDomain.UserLevel, nil)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to issue user token")
	}

	u.logger.Info("user logged in", slog.String("uid", user.UID))
	return token, nil
}

// Create registers the account and issues a USER-tier token so the customer
// is logged in right after registering.
func (u *userUseCase) Create(ctx context.Context, params identityBackend.CreateUserParams) (string, error) {
	user, err := u.identityBackend.Create(ctx, params)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to create user")
	}

	token, err := u.tokenCodec.Issue(user.UID, authDomain.UserLevel, nil)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to issue user token")
	}

	u.logger.Info("user created",
		slog.String("uid", user.UID),
		slog.Bool("claimed_temporary_identity", params.UID != ""))
	return token, nil
}

// GetSelf fetches the account record for the token's identity.
func (u *userUseCase) GetSelf(ctx context.Context, uid string) (*identityBackend.User, error) {
	user, err := u.identityBackend.GetByID(ctx, uid)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to fetch user")
	}
	return user, nil
}

// Transactions fetches one history page from the ledger, resolves the shop
// name for each record in one batched inventory call, and zips the two lists
// positionally.
func (u *userUseCase) Transactions(
	ctx context.Context,
	uid string,
	offset, limit int,
) ([]userDomain.EnrichedTransaction, error) {
	transactions, err := u.ledgerBackend.ListTransactions(ctx, uid, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list transactions")
	}
	if len(transactions) == 0 {
		return []userDomain.EnrichedTransaction{}, nil
	}

	shopIDs := make([]string, len(transactions))
	for i, transaction := range transactions {
		shopIDs[i] = transaction.ShopID
	}

	names, err := u.inventoryBackend.ResolveNames(ctx, shopIDs)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to resolve shop names")
	}

	return enrich.Zip(transactions, names,
		func(transaction ledgerBackend.Transaction, name string) userDomain.EnrichedTransaction {
			return userDomain.EnrichedTransaction{Transaction: transaction, ShopName: name}
		})
}

// Balances fetches the per-shop balances from the ledger, resolves shop names
// in one batched inventory call, and zips the two lists positionally.
func (u *userUseCase) Balances(ctx context.Context, uid string) ([]userDomain.EnrichedBalance, error) {
	balances, err := u.ledgerBackend.GetBalances(ctx, uid)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to fetch balances")
	}
	if len(balances) == 0 {
		return []userDomain.EnrichedBalance{}, nil
	}

	shopIDs := make([]string, len(balances))
	for i, balance := range balances {
		shopIDs[i] = balance.ShopID
	}

	names, err := u.inventoryBackend.ResolveNames(ctx, shopIDs)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to resolve shop names")
	}

	return enrich.Zip(balances, names,
		func(balance ledgerBackend.Balance, name string) userDomain.EnrichedBalance {
			return userDomain.EnrichedBalance{
				ShopID:   balance.ShopID,
				ShopName: name,
				Balance:  balance.Balance,
			}
		})
}

// NewUserUseCase creates a new UserUseCase with the provided dependencies.
func NewUserUseCase(
	identityBackend IdentityBackend,
	ledgerBackend LedgerBackend,
	inventoryBackend InventoryBackend,
	tokenCodec authService.TokenCodec,
	logger *slog.Logger,
) UserUseCase {
	return &userUseCase{
		identityBackend:  identityBackend,
		ledgerBackend:    ledgerBackend,
		inventoryBackend: inventoryBackend,
		tokenCodec:       tokenCodec,
		logger:           logger,
	}
}
