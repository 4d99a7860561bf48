// Package http provides HTTP handlers for the customer-facing flows.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/pointward/gateway/internal/auth/http"
	apperrors "github.com/pointward/gateway/internal/errors"
	"github.com/pointward/gateway/internal/httputil"
	"github.com/pointward/gateway/internal/user/http/dto"
	userUseCase "github.com/pointward/gateway/internal/user/usecase"
	customValidation "github.com/pointward/gateway/internal/validation"
)

// UserHandler handles HTTP requests for customer registration, login and the
// enriched history and balance views.
type UserHandler struct {
	userUseCase userUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(useCase userUseCase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: useCase,
		logger:      logger,
	}
}

// LoginHandler verifies credentials and issues a USER-tier token.
// POST /v1/users/login - Unauthenticated.
// Returns 200 OK with the token.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.userUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Msg: "success", Token: token})
}

// CreateHandler registers an account and issues a USER-tier token.
// POST /v1/users - Unauthenticated: registration precedes token issuance.
// Returns 201 Created with the token.
func (h *UserHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.userUseCase.Create(c.Request.Context(), req.ToCreateUserParams())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.LoginResponse{Msg: "success", Token: token})
}

// GetSelfHandler fetches the account behind the presented token.
// GET /v1/users/me - Requires USER tier.
// Returns 200 OK with the account record.
func (h *UserHandler) GetSelfHandler(c *gin.Context) {
	claims, ok := authHTTP.GetClaims(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	user, err := h.userUseCase.GetSelf(c.Request.Context(), claims.EntityID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// TransactionsHandler fetches one page of purchase history with shop names.
// GET /v1/users/me/transactions?offset=0&limit=50 - Requires USER tier.
// Returns 200 OK with the enriched page.
func (h *UserHandler) TransactionsHandler(c *gin.Context) {
	claims, ok := authHTTP.GetClaims(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	transactions, err := h.userUseCase.Transactions(c.Request.Context(), claims.EntityID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTransactionsToResponse(transactions, offset, limit))
}

// BalancesHandler fetches the per-shop point balances with shop names.
// GET /v1/users/me/balances - Requires USER tier.
// Returns 200 OK with the enriched balances.
func (h *UserHandler) BalancesHandler(c *gin.Context) {
	claims, ok := authHTTP.GetClaims(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	balances, err := h.userUseCase.Balances(c.Request.Context(), claims.EntityID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBalancesToResponse(balances))
}
