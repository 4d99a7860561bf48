// Package http provides HTTP handlers for the store-management flows.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/pointward/gateway/internal/auth/http"
	apperrors "github.com/pointward/gateway/internal/errors"
	"github.com/pointward/gateway/internal/httputil"
	"github.com/pointward/gateway/internal/shop/http/dto"
	shopUseCase "github.com/pointward/gateway/internal/shop/usecase"
	customValidation "github.com/pointward/gateway/internal/validation"
)

// maxSheetSize caps the accepted inventory workbook at 16 MiB.
const maxSheetSize = 16 << 20

// ShopHandler handles HTTP requests for store management: login, cashier
// provisioning, the customer report and bulk inventory upload.
type ShopHandler struct {
	shopUseCase shopUseCase.ShopUseCase
	logger      *slog.Logger
}

// NewShopHandler creates a new shop handler with required dependencies.
func NewShopHandler(useCase shopUseCase.ShopUseCase, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{
		shopUseCase: useCase,
		logger:      logger,
	}
}

// LoginHandler verifies shop credentials and issues a STORE_MANAGEMENT-tier
// token.
// POST /v1/shops/login - Unauthenticated.
// Returns 200 OK with the token.
func (h *ShopHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.shopUseCase.Login(c.Request.Context(), req.AccountName, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Msg: "success", Token: token})
}

// StatsHandler builds the aggregated customer report for the caller's shop.
// GET /v1/shops/stats - Requires STORE_MANAGEMENT tier.
// Returns 200 OK with the report.
func (h *ShopHandler) StatsHandler(c *gin.Context) {
	claims, ok := authHTTP.GetClaims(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	report, err := h.shopUseCase.Stats(c.Request.Context(), claims.EntityID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapStatsToResponse(report))
}

// CreateCashierHandler provisions a cashier account for the caller's shop.
// POST /v1/cashiers - Requires STORE_MANAGEMENT tier.
// Returns 201 Created with the account.
func (h *ShopHandler) CreateCashierHandler(c *gin.Context) {
	claims, ok := authHTTP.GetClaims(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateCashierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	cashier, err := h.shopUseCase.CreateCashier(c.Request.Context(), claims.EntityID, req.AccountName, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCashierToResponse(cashier))
}

// UploadInventoryHandler registers a workbook of catalog items for the
// caller's shop.
// POST /v1/inventory/items - multipart form with a "file" field holding an
// xlsx workbook. Requires STORE_MANAGEMENT tier.
// Returns 201 Created with the registered items.
func (h *ShopHandler) UploadInventoryHandler(c *gin.Context) {
	claims, ok := authHTTP.GetClaims(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("missing file field: %w", err),
			h.logger,
		)
		return
	}
	if fileHeader.Size > maxSheetSize {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("file exceeds %d bytes", maxSheetSize),
			h.logger,
		)
		return
	}

	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if extension != ".xlsx" && extension != ".xls" {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("unsupported file type %q, expected an Excel workbook", extension),
			h.logger,
		)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("unreadable file: %w", err), h.logger)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	items, err := h.shopUseCase.UploadInventory(c.Request.Context(), claims.EntityID, file)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapItemsToUploadResponse(items))
}
