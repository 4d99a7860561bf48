// Package http provides HTTP handlers for the register-side flows.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/pointward/gateway/internal/auth/domain"
	authHTTP "github.com/pointward/gateway/internal/auth/http"
	authService "github.com/pointward/gateway/internal/auth/service"
	"github.com/pointward/gateway/internal/cashier/http/dto"
	cashierUseCase "github.com/pointward/gateway/internal/cashier/usecase"
	apperrors "github.com/pointward/gateway/internal/errors"
	"github.com/pointward/gateway/internal/httputil"
	customValidation "github.com/pointward/gateway/internal/validation"
)

// customerTokenHeader carries the buyer's own capability token on a sale. The
// buyer is never named in the request body; presenting a valid USER-tier token
// is what authorizes charging that account.
const customerTokenHeader = "X-Customer-Token"

// CashierHandler handles HTTP requests for the register: login, catalog reads,
// customer lookup and transaction recording.
type CashierHandler struct {
	cashierUseCase cashierUseCase.CashierUseCase
	tokenCodec     authService.TokenCodec
	logger         *slog.Logger
}

// NewCashierHandler creates a new cashier handler with required dependencies.
func NewCashierHandler(
	useCase cashierUseCase.CashierUseCase,
	tokenCodec authService.TokenCodec,
	logger *slog.Logger,
) *CashierHandler {
	return &CashierHandler{
		cashierUseCase: useCase,
		tokenCodec:     tokenCodec,
		logger:         logger,
	}
}

// LoginHandler verifies cashier credentials and issues a CASHIER-tier token
// bound to the cashier's shop.
// POST /v1/cashiers/login - Unauthenticated.
// Returns 200 OK with the token.
func (h *CashierHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.cashierUseCase.Login(c.Request.Context(), req.AccountName, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Msg: "success", Token: token})
}

// InventoryHandler lists the catalog of the cashier's own shop. The shop is
// resolved from the token's shop binding, never from the request.
// GET /v1/inventory - Requires CASHIER tier.
// Returns 200 OK with the catalog.
func (h *CashierHandler) InventoryHandler(c *gin.Context) {
	shopID, err := h.shopFromClaims(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	items, err := h.cashierUseCase.Inventory(c.Request.Context(), shopID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapItemsToListResponse(items))
}

// LookupHandler searches customer accounts by display name.
// GET /v1/users/lookup?name=<name> - Requires CASHIER tier.
// Returns 200 OK with the matches.
func (h *CashierHandler) LookupHandler(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		httputil.HandleValidationErrorGin(c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "name query parameter is required"), h.logger)
		return
	}

	users, err := h.cashierUseCase.LookupByName(c.Request.Context(), name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToLookupResponse(users))
}

// ItemDetailsHandler fetches one catalog item.
// GET /v1/items/:id - Requires CASHIER tier.
// Returns 200 OK with the item.
func (h *CashierHandler) ItemDetailsHandler(c *gin.Context) {
	itemID := c.Param("id")

	item, err := h.cashierUseCase.ItemDetails(c.Request.Context(), itemID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapItemToResponse(item))
}

// CreateTransactionHandler records a sale. The shop comes from the cashier
// token's shop binding and the buyer from the customer's own USER-tier token
// in the X-Customer-Token header; the body names only items and quantities.
// POST /v1/transactions - Requires CASHIER tier plus a valid customer token.
// Returns 201 Created with the ledger's transaction record.
func (h *CashierHandler) CreateTransactionHandler(c *gin.Context) {
	var req dto.CreateTransactionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	shopID, err := h.shopFromClaims(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	buyerID, err := h.buyerFromCustomerToken(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	transaction, err := h.cashierUseCase.RecordTransaction(c.Request.Context(), shopID, buyerID, req.ToOrderLines())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTransactionToResponse(transaction))
}

// shopFromClaims resolves the shop binding of the admitted cashier token. A
// CASHIER token without a shop binding cannot act on any shop.
func (h *CashierHandler) shopFromClaims(c *gin.Context) (string, error) {
	claims, ok := authHTTP.GetClaims(c.Request.Context())
	if !ok {
		return "", apperrors.ErrUnauthorized
	}

	shopID, ok := claims.ShopID()
	if !ok {
		h.logger.Warn("cashier token carries no shop binding",
			slog.String("cid", claims.EntityID))
		return "", apperrors.Wrap(apperrors.ErrForbidden, "token carries no shop binding")
	}
	return shopID, nil
}

// buyerFromCustomerToken verifies the customer token header and returns the
// account it belongs to. Only a USER-tier token identifies a buyer.
func (h *CashierHandler) buyerFromCustomerToken(c *gin.Context) (string, error) {
	token := c.GetHeader(customerTokenHeader)
	if token == "" {
		return "", apperrors.Wrap(apperrors.ErrUnauthorized, "missing customer token")
	}

	claims, err := h.tokenCodec.Verify(token)
	if err != nil {
		return "", apperrors.Wrap(err, "invalid customer token")
	}
	if claims.AccessLevel != authDomain.UserLevel {
		return "", apperrors.Wrap(apperrors.ErrForbidden, "customer token is not a user token")
	}
	return claims.EntityID, nil
}
