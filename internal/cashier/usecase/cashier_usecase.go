package usecase

import (
	"context"
	"log/slog"

	authDomain "github.com/pointward/gateway/internal/auth/domain"
	authService "github.com/pointward/gateway/internal/auth/service"
	identityBackend "github.com/pointward/gateway/internal/backend/identity"
	inventoryBackend "github.com/pointward/gateway/internal/backend/inventory"
	ledgerBackend "github.com/pointward/gateway/internal/backend/ledger"
	cashierDomain "github.com/pointward/gateway/internal/cashier/domain"
	"github.com/pointward/gateway/internal/enrich"
	apperrors "github.com/pointward/gateway/internal/errors"
)

// cashierUseCase implements CashierUseCase.
type cashierUseCase struct {
	inventoryBackend InventoryBackend
	identityBackend  IdentityBackend
	ledgerBackend    LedgerBackend
	tokenCodec       authService.TokenCodec
	logger           *slog.Logger
}

// Login verifies credentials against the inventory backend and issues a
// CASHIER-tier token carrying the shop the account is bound to. Every later
// register operation resolves its shop from that binding, never from the
// request.
func (u *cashierUseCase) Login(ctx context.Context, accountName, password string) (string, error) {
	cashier, err := u.inventoryBackend.CashierLogin(ctx, accountName, password)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to log cashier in")
	}

	token, err := u.tokenCodec.Issue(
		cashier.CID,
		authDomain.CashierLevel,
		map[string]string{"shop_id": cashier.ShopID},
	)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to issue cashier token")
	}

	u.logger.Info("cashier logged in",
		slog.String("cid", cashier.CID),
		slog.String("shop_id", cashier.ShopID))
	return token, nil
}

// Inventory lists the catalog of the cashier's shop.
func (u *cashierUseCase) Inventory(ctx context.Context, shopID string) ([]inventoryBackend.Item, error) {
	items, err := u.inventoryBackend.ListItems(ctx, shopID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list inventory")
	}
	return items, nil
}

// LookupByName searches customer accounts by display name.
func (u *cashierUseCase) LookupByName(ctx context.Context, name string) ([]identityBackend.User, error) {
	users, err := u.identityBackend.GetByName(ctx, name)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to look up customers")
	}
	return users, nil
}

// ItemDetails fetches one catalog item through the batched lookup.
func (u *cashierUseCase) ItemDetails(ctx context.Context, itemID string) (*inventoryBackend.Item, error) {
	items, err := u.inventoryBackend.GetItemsByID(ctx, []string{itemID})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to fetch item")
	}
	if len(items) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "item not in inventory response")
	}
	return &items[0], nil
}

// RecordTransaction runs the transaction pipeline:
//
//  1. Resolve the full item records for the order's ids in one batched
//     inventory call.
//  2. Pair each record with its requested quantity by position. The inventory
//     backend returns records in request order; a length mismatch means a
//     backend broke that contract and the request fails as inconsistent.
//  3. Submit the priced line items to the ledger as one write and return the
//     created record verbatim.
func (u *cashierUseCase) RecordTransaction(
	ctx context.Context,
	shopID, buyerID string,
	order []cashierDomain.OrderLine,
) (*ledgerBackend.Transaction, error) {
	itemIDs := make([]string, len(order))
	for i, line := range order {
		itemIDs[i] = line.ItemID
	}

	items, err := u.inventoryBackend.GetItemsByID(ctx, itemIDs)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to resolve order items")
	}

	lines, err := enrich.Zip(order, items,
		func(line cashierDomain.OrderLine, item inventoryBackend.Item) ledgerBackend.LineItem {
			return ledgerBackend.LineItem{
				ItemID:                 line.ItemID,
				Quantity:               line.Quantity,
				UnitCost:               item.Price,
				PercentPointAllocation: item.PercentPointAllocation,
			}
		})
	if err != nil {
		return nil, err
	}

	transaction, err := u.ledgerBackend.CreateTransaction(ctx, shopID, buyerID, lines)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to record transaction")
	}

	u.logger.Info("transaction recorded",
		slog.String("tid", transaction.TID),
		slog.String("shop_id", shopID),
		slog.Int("line_count", len(lines)))

	return transaction, nil
}

// NewCashierUseCase creates a new CashierUseCase with the provided
// dependencies.
func NewCashierUseCase(
	inventoryBackend InventoryBackend,
	identityBackend IdentityBackend,
	ledgerBackend LedgerBackend,
	tokenCodec authService.TokenCodec,
	logger *slog.Logger,
) CashierUseCase {
	return &cashierUseCase{
		inventoryBackend: inventoryBackend,
		identityBackend:  identityBackend,
		ledgerBackend:    ledgerBackend,
		tokenCodec:       tokenCodec,
		logger:           logger,
	}
}
