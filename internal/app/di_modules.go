package app

import (
	"fmt"

	auditRepository "github.com/pointward/gateway/internal/audit/repository"
	auditUseCase "github.com/pointward/gateway/internal/audit/usecase"
	cashierHTTP "github.com/pointward/gateway/internal/cashier/http"
	cashierUseCase "github.com/pointward/gateway/internal/cashier/usecase"
	recognitionHTTP "github.com/pointward/gateway/internal/recognition/http"
	recognitionUseCase "github.com/pointward/gateway/internal/recognition/usecase"
	shopHTTP "github.com/pointward/gateway/internal/shop/http"
	shopService "github.com/pointward/gateway/internal/shop/service"
	shopUseCase "github.com/pointward/gateway/internal/shop/usecase"
	userHTTP "github.com/pointward/gateway/internal/user/http"
	userUseCase "github.com/pointward/gateway/internal/user/usecase"
)

// EventRepository returns the audit event repository based on database driver.
func (c *Container) EventRepository() (auditUseCase.EventRepository, error) {
	c.eventRepositoryInit.Do(func() {
		repo, err := c.initEventRepository()
		if err != nil {
			c.initErrors["eventRepository"] = err
			return
		}
		c.eventRepository = repo
	})
	if storedErr, exists := c.initErrors["eventRepository"]; exists {
		return nil, storedErr
	}
	return c.eventRepository, nil
}

// Recorder returns the audit event recorder.
func (c *Container) Recorder() (auditUseCase.Recorder, error) {
	c.recorderInit.Do(func() {
		eventRepository, err := c.EventRepository()
		if err != nil {
			c.initErrors["recorder"] = err
			return
		}
		c.recorder = auditUseCase.NewRecorder(eventRepository, c.Logger())
	})
	if storedErr, exists := c.initErrors["recorder"]; exists {
		return nil, storedErr
	}
	return c.recorder, nil
}

// SheetParser returns the inventory workbook parser.
func (c *Container) SheetParser() shopService.SheetParser {
	c.sheetParserInit.Do(func() {
		c.sheetParser = shopService.NewSheetParser()
	})
	return c.sheetParser
}

// UserUseCase returns the customer-facing use case.
func (c *Container) UserUseCase() (userUseCase.UserUseCase, error) {
	c.userUCInit.Do(func() {
		useCase, err := c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		c.userUC = useCase
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUC, nil
}

// CashierUseCase returns the register-side use case.
func (c *Container) CashierUseCase() (cashierUseCase.CashierUseCase, error) {
	c.cashierUCInit.Do(func() {
		useCase, err := c.initCashierUseCase()
		if err != nil {
			c.initErrors["cashierUseCase"] = err
			return
		}
		c.cashierUC = useCase
	})
	if storedErr, exists := c.initErrors["cashierUseCase"]; exists {
		return nil, storedErr
	}
	return c.cashierUC, nil
}

// ShopUseCase returns the store-management use case.
func (c *Container) ShopUseCase() (shopUseCase.ShopUseCase, error) {
	c.shopUCInit.Do(func() {
		useCase, err := c.initShopUseCase()
		if err != nil {
			c.initErrors["shopUseCase"] = err
			return
		}
		c.shopUC = useCase
	})
	if storedErr, exists := c.initErrors["shopUseCase"]; exists {
		return nil, storedErr
	}
	return c.shopUC, nil
}

// RecognitionUseCase returns the face recognition use case.
func (c *Container) RecognitionUseCase() (recognitionUseCase.RecognitionUseCase, error) {
	c.recognitionUCInit.Do(func() {
		useCase, err := c.initRecognitionUseCase()
		if err != nil {
			c.initErrors["recognitionUseCase"] = err
			return
		}
		c.recognitionUC = useCase
	})
	if storedErr, exists := c.initErrors["recognitionUseCase"]; exists {
		return nil, storedErr
	}
	return c.recognitionUC, nil
}

// UserHandler returns the HTTP handler for the customer-facing routes.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	c.userHandlerInit.Do(func() {
		useCase, err := c.UserUseCase()
		if err != nil {
			c.initErrors["userHandler"] = err
			return
		}
		c.userHandler = userHTTP.NewUserHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["userHandler"]; exists {
		return nil, storedErr
	}
	return c.userHandler, nil
}

// CashierHandler returns the HTTP handler for the register routes.
func (c *Container) CashierHandler() (*cashierHTTP.CashierHandler, error) {
	c.cashierHandlerInit.Do(func() {
		useCase, err := c.CashierUseCase()
		if err != nil {
			c.initErrors["cashierHandler"] = err
			return
		}
		tokenCodec, err := c.TokenCodec()
		if err != nil {
			c.initErrors["cashierHandler"] = err
			return
		}
		c.cashierHandler = cashierHTTP.NewCashierHandler(useCase, tokenCodec, c.Logger())
	})
	if storedErr, exists := c.initErrors["cashierHandler"]; exists {
		return nil, storedErr
	}
	return c.cashierHandler, nil
}

// ShopHandler returns the HTTP handler for the store-management routes.
func (c *Container) ShopHandler() (*shopHTTP.ShopHandler, error) {
	c.shopHandlerInit.Do(func() {
		useCase, err := c.ShopUseCase()
		if err != nil {
			c.initErrors["shopHandler"] = err
			return
		}
		c.shopHandler = shopHTTP.NewShopHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["shopHandler"]; exists {
		return nil, storedErr
	}
	return c.shopHandler, nil
}

// RecognitionHandler returns the HTTP handler for the recognition routes.
func (c *Container) RecognitionHandler() (*recognitionHTTP.RecognitionHandler, error) {
	c.recognitionHandlerInit.Do(func() {
		useCase, err := c.RecognitionUseCase()
		if err != nil {
			c.initErrors["recognitionHandler"] = err
			return
		}
		c.recognitionHandler = recognitionHTTP.NewRecognitionHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["recognitionHandler"]; exists {
		return nil, storedErr
	}
	return c.recognitionHandler, nil
}

// initEventRepository creates the audit event repository based on the database driver.
func (c *Container) initEventRepository() (auditUseCase.EventRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for event repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return auditRepository.NewPostgreSQLEventRepository(db), nil
	case "mysql":
		return auditRepository.NewMySQLEventRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initUserUseCase creates the customer-facing use case with all its dependencies.
func (c *Container) initUserUseCase() (userUseCase.UserUseCase, error) {
	identityClient, err := c.IdentityClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity client for user use case: %w", err)
	}
	ledgerClient, err := c.LedgerClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger client for user use case: %w", err)
	}
	inventoryClient, err := c.InventoryClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory client for user use case: %w", err)
	}
	tokenCodec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for user use case: %w", err)
	}

	return userUseCase.NewUserUseCase(identityClient, ledgerClient, inventoryClient, tokenCodec, c.Logger()), nil
}

// initCashierUseCase creates the register-side use case with all its dependencies.
func (c *Container) initCashierUseCase() (cashierUseCase.CashierUseCase, error) {
	inventoryClient, err := c.InventoryClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory client for cashier use case: %w", err)
	}
	identityClient, err := c.IdentityClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity client for cashier use case: %w", err)
	}
	ledgerClient, err := c.LedgerClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger client for cashier use case: %w", err)
	}
	tokenCodec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for cashier use case: %w", err)
	}

	return cashierUseCase.NewCashierUseCase(inventoryClient, identityClient, ledgerClient, tokenCodec, c.Logger()), nil
}

// initShopUseCase creates the store-management use case with all its dependencies.
func (c *Container) initShopUseCase() (shopUseCase.ShopUseCase, error) {
	inventoryClient, err := c.InventoryClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory client for shop use case: %w", err)
	}
	identityClient, err := c.IdentityClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity client for shop use case: %w", err)
	}
	ledgerClient, err := c.LedgerClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger client for shop use case: %w", err)
	}
	tokenCodec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for shop use case: %w", err)
	}

	return shopUseCase.NewShopUseCase(
		inventoryClient,
		identityClient,
		ledgerClient,
		c.SheetParser(),
		tokenCodec,
		c.Logger(),
	), nil
}

// initRecognitionUseCase creates the face recognition use case with all its dependencies.
func (c *Container) initRecognitionUseCase() (recognitionUseCase.RecognitionUseCase, error) {
	recognitionClient, err := c.RecognitionClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get recognition client for recognition use case: %w", err)
	}
	identityClient, err := c.IdentityClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity client for recognition use case: %w", err)
	}
	recorder, err := c.Recorder()
	if err != nil {
		return nil, fmt.Errorf("failed to get recorder for recognition use case: %w", err)
	}
	recognitionMetrics, err := c.RecognitionMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get recognition metrics for recognition use case: %w", err)
	}

	return recognitionUseCase.NewRecognitionUseCase(
		recognitionClient,
		identityClient,
		recorder,
		recognitionMetrics,
		c.Logger(),
	), nil
}
