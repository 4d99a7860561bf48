package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/pointward/gateway/internal/auth/domain"
	authHTTP "github.com/pointward/gateway/internal/auth/http"
	identityBackend "github.com/pointward/gateway/internal/backend/identity"
	apperrors "github.com/pointward/gateway/internal/errors"
	"github.com/pointward/gateway/internal/testutil"
	userDomain "github.com/pointward/gateway/internal/user/domain"
	"github.com/pointward/gateway/internal/user/http/dto"
)

type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *mockUserUseCase) Create(ctx context.Context, params identityBackend.CreateUserParams) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

func (m *mockUserUseCase) GetSelf(ctx context.Context, uid string) (*identityBackend.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityBackend.User), args.Error(1)
}

func (m *mockUserUseCase) Transactions(ctx context.Context, uid string, offset, limit int) ([]userDomain.EnrichedTransaction, error) {
	args := m.Called(ctx, uid, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]userDomain.EnrichedTransaction), args.Error(1)
}

func (m *mockUserUseCase) Balances(ctx context.Context, uid string) ([]userDomain.EnrichedBalance, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]userDomain.EnrichedBalance), args.Error(1)
}

func setupTestHandler(t *testing.T) (*UserHandler, *mockUserUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockUseCase := &mockUserUseCase{}
	return NewUserHandler(mockUseCase, testutil.DiscardLogger()), mockUseCase
}

func createJSONContext(t *testing.T, path string, payload any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	return c, w
}

func createAuthedContext(t *testing.T, target string, uid string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)

	claims := &authDomain.Claims{EntityID: uid, AccessLevel: authDomain.UserLevel}
	c.Request = c.Request.WithContext(authHTTP.WithClaims(c.Request.Context(), claims))

	return c, w
}

func TestUserHandler_LoginHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Login", mock.Anything, "jane@example.com", "password1").
			Return("signed-token", nil).Once()

		c, w := createJSONContext(t, "/v1/users/login", dto.LoginRequest{
			Email:    "jane@example.com",
			Password: "password1",
		})
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "success", response.Msg)
		assert.Equal(t, "signed-token", response.Token)
	})

	t.Run("Error_InvalidEmail", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createJSONContext(t, "/v1/users/login", dto.LoginRequest{
			Email:    "not-an-email",
			Password: "password1",
		})
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_BadCredentials", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Login", mock.Anything, "jane@example.com", "wrongpass1").
			Return("", apperrors.ErrForbidden).Once()

		c, w := createJSONContext(t, "/v1/users/login", dto.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrongpass1",
		})
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestUserHandler_CreateHandler(t *testing.T) {
	validRequest := dto.CreateUserRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		DateOfBirth: "1990-04-01",
		Gender:      "female",
		Nationality: "GB",
		Password:    "password1",
	}

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Create", mock.Anything, validRequest.ToCreateUserParams()).
			Return("signed-token", nil).Once()

		c, w := createJSONContext(t, "/v1/users", validRequest)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "signed-token")
	})

	t.Run("Error_Duplicate", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Create", mock.Anything, mock.Anything).
			Return("", apperrors.ErrConflict).Once()

		c, w := createJSONContext(t, "/v1/users", validRequest)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Error_ShortPassword", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := validRequest
		request.Password = "short"

		c, w := createJSONContext(t, "/v1/users", request)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserHandler_GetSelfHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("GetSelf", mock.Anything, "user-1").
			Return(&identityBackend.User{UID: "user-1", FirstName: "Jane"}, nil).Once()

		c, w := createAuthedContext(t, "/v1/users/me", "user-1")
		handler.GetSelfHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Jane")
	})

	t.Run("Error_NoClaims", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
		handler.GetSelfHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "GetSelf", mock.Anything, mock.Anything)
	})
}

func TestUserHandler_TransactionsHandler(t *testing.T) {
	t.Run("Success_DefaultPagination", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Transactions", mock.Anything, "user-1", 0, 50).
			Return([]userDomain.EnrichedTransaction{}, nil).Once()

		c, w := createAuthedContext(t, "/v1/users/me/transactions", "user-1")
		handler.TransactionsHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_MismatchedEnrichmentIsInternal", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Transactions", mock.Anything, "user-1", 0, 50).
			Return(nil, apperrors.ErrInconsistent).Once()

		c, w := createAuthedContext(t, "/v1/users/me/transactions", "user-1")
		handler.TransactionsHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestUserHandler_BalancesHandler(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)

	mockUseCase.On("Balances", mock.Anything, "user-1").
		Return([]userDomain.EnrichedBalance{
			{ShopID: "shop-1", ShopName: "Acme", Balance: 100},
		}, nil).Once()

	c, w := createAuthedContext(t, "/v1/users/me/balances", "user-1")
	handler.BalancesHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acme")
}
