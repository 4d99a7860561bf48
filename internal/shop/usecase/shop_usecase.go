package usecase

import (
	"context"
	"io"
	"log/slog"

	authDomain "github.com/pointward/gateway/internal/auth/domain"
	authService "github.com/pointward/gateway/internal/auth/service"
	identityBackend "github.com/pointward/gateway/internal/backend/identity"
	inventoryBackend "github.com/pointward/gateway/internal/backend/inventory"
	apperrors "github.com/pointward/gateway/internal/errors"
	shopService "github.com/pointward/gateway/internal/shop/service"
)

// shopUseCase implements ShopUseCase.
type shopUseCase struct {
	inventoryBackend InventoryBackend
	identityBackend  IdentityBackend
	ledgerBackend    LedgerBackend
	sheetParser      shopService.SheetParser
	tokenCodec       authService.TokenCodec
	logger           *slog.Logger
}

// Login verifies credentials against the inventory backend and issues a
// STORE_MANAGEMENT-tier token whose principal is the shop itself.
func (u *shopUseCase) Login(ctx context.Context, accountName, password string) (string, error) {
	shop, err := u.inventoryBackend.ShopLogin(ctx, accountName, password)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to log shop in")
	}

	token, err := u.tokenCodec.Issue(shop.SID, authDomain.StoreManagementLevel, nil)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to issue shop token")
	}

	u.logger.Info("shop logged in", slog.String("sid", shop.SID))
	return token, nil
}

// Stats builds the customer report in two steps: the ledger names which
// accounts bought at the shop, then the identity backend aggregates them. The
// gateway never sees individual customer records, only the aggregate.
func (u *shopUseCase) Stats(ctx context.Context, shopID string) (*identityBackend.StatsReport, error) {
	customerIDs, err := u.ledgerBackend.GetShopCustomers(ctx, shopID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list shop customers")
	}

	// A shop with no sales yet has an empty report, not an upstream call.
	if len(customerIDs) == 0 {
		return &identityBackend.StatsReport{
			Genders:       map[string]int{},
			Nationalities: map[string]int{},
		}, nil
	}

	report, err := u.identityBackend.StatsReport(ctx, customerIDs)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build stats report")
	}
	return report, nil
}

// CreateCashier provisions a cashier account. The shop binding comes from the
// caller's token, so a shop can only provision cashiers for itself.
func (u *shopUseCase) CreateCashier(
	ctx context.Context,
	shopID, accountName, password string,
) (*inventoryBackend.Cashier, error) {
	cashier, err := u.inventoryBackend.CreateCashier(ctx, inventoryBackend.CreateCashierParams{
		AccountName: accountName,
		ShopID:      shopID,
		Password:    password,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create cashier")
	}

	u.logger.Info("cashier created",
		slog.String("cid", cashier.CID),
		slog.String("shop_id", shopID))
	return cashier, nil
}

// UploadInventory parses the workbook and registers every row as a catalog
// item of the shop in one inventory write. A parse failure registers nothing.
func (u *shopUseCase) UploadInventory(
	ctx context.Context,
	shopID string,
	sheet io.Reader,
) ([]inventoryBackend.Item, error) {
	rows, err := u.sheetParser.Parse(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "workbook has no catalog rows")
	}

	creates := make([]inventoryBackend.ItemCreate, len(rows))
	for i, row := range rows {
		creates[i] = inventoryBackend.ItemCreate{
			ShopID:                 shopID,
			Name:                   row.Name,
			Description:            row.Description,
			PhotoURL:               row.PhotoURL,
			Price:                  row.Price,
			PercentPointAllocation: row.PercentPointAllocation,
		}
	}

	items, err := u.inventoryBackend.CreateItems(ctx, creates)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to register catalog items")
	}

	u.logger.Info("inventory uploaded",
		slog.String("shop_id", shopID),
		slog.Int("item_count", len(items)))
	return items, nil
}

// NewShopUseCase creates a new ShopUseCase with the provided dependencies.
func NewShopUseCase(
	inventoryBackend InventoryBackend,
	identityBackend IdentityBackend,
	ledgerBackend LedgerBackend,
	sheetParser shopService.SheetParser,
	tokenCodec authService.TokenCodec,
	logger *slog.Logger,
) ShopUseCase {
	return &shopUseCase{
		inventoryBackend: inventoryBackend,
		identityBackend:  identityBackend,
		ledgerBackend:    ledgerBackend,
		sheetParser:      sheetParser,
		tokenCodec:       tokenCodec,
		logger:           logger,
	}
}
