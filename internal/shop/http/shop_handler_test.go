package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
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
	inventoryBackend "github.com/pointward/gateway/internal/backend/inventory"
	apperrors "github.com/pointward/gateway/internal/errors"
	"github.com/pointward/gateway/internal/shop/http/dto"
	"github.com/pointward/gateway/internal/testutil"
)

type mockShopUseCase struct {
	mock.Mock
}

func (m *mockShopUseCase) Login(ctx context.Context, accountName, password string) (string, error) {
	args := m.Called(ctx, accountName, password)
	return args.String(0), args.Error(1)
}

func (m *mockShopUseCase) Stats(ctx context.Context, shopID string) (*identityBackend.StatsReport, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityBackend.StatsReport), args.Error(1)
}

func (m *mockShopUseCase) CreateCashier(ctx context.Context, shopID, accountName, password string) (*inventoryBackend.Cashier, error) {
	args := m.Called(ctx, shopID, accountName, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventoryBackend.Cashier), args.Error(1)
}

func (m *mockShopUseCase) UploadInventory(ctx context.Context, shopID string, sheet io.Reader) ([]inventoryBackend.Item, error) {
	args := m.Called(ctx, shopID, sheet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventoryBackend.Item), args.Error(1)
}

func setupTestHandler(t *testing.T) (*ShopHandler, *mockShopUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockUseCase := &mockShopUseCase{}
	return NewShopHandler(mockUseCase, testutil.DiscardLogger()), mockUseCase
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

func createMultipartContext(t *testing.T, field, filename string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("workbook-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/inventory/items", &body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	return c, w
}

// withShopClaims attaches admitted STORE_MANAGEMENT claims to the request
// context, as the access guard would after verification.
func withShopClaims(c *gin.Context, shopID string) {
	claims := &authDomain.Claims{EntityID: shopID, AccessLevel: authDomain.StoreManagementLevel}
	c.Request = c.Request.WithContext(authHTTP.WithClaims(c.Request.Context(), claims))
}

func TestShopHandler_LoginHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Login", mock.Anything, "acme", "password1").
			Return("signed-token", nil).Once()

		c, w := createJSONContext(t, "/v1/shops/login", dto.LoginRequest{
			AccountName: "acme",
			Password:    "password1",
		})
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "success", response.Msg)
		assert.Equal(t, "signed-token", response.Token)
	})

	t.Run("Error_BadCredentials", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Login", mock.Anything, "acme", "wrongpass").
			Return("", apperrors.ErrForbidden).Once()

		c, w := createJSONContext(t, "/v1/shops/login", dto.LoginRequest{
			AccountName: "acme",
			Password:    "wrongpass",
		})
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestShopHandler_StatsHandler(t *testing.T) {
	t.Run("Success_ShopResolvedFromToken", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Stats", mock.Anything, "shop-1").
			Return(&identityBackend.StatsReport{
				TotalCustomers: 12,
				AverageAge:     29.5,
				Genders:        map[string]int{"female": 7, "male": 5},
			}, nil).Once()

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/v1/shops/stats", nil)
		withShopClaims(c, "shop-1")
		handler.StatsHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.StatsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 12, response.TotalCustomers)
		assert.Equal(t, 29.5, response.AverageAge)
	})

	t.Run("Error_NoClaims", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/v1/shops/stats", nil)
		handler.StatsHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Stats", mock.Anything, mock.Anything)
	})
}

func TestShopHandler_CreateCashierHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("CreateCashier", mock.Anything, "shop-1", "till-3", "password1").
			Return(&inventoryBackend.Cashier{CID: "cashier-1", ShopID: "shop-1", AccountName: "till-3"}, nil).Once()

		c, w := createJSONContext(t, "/v1/cashiers", dto.CreateCashierRequest{
			AccountName: "till-3",
			Password:    "password1",
		})
		withShopClaims(c, "shop-1")
		handler.CreateCashierHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "cashier-1")
	})

	t.Run("Error_ShortPassword", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createJSONContext(t, "/v1/cashiers", dto.CreateCashierRequest{
			AccountName: "till-3",
			Password:    "short",
		})
		withShopClaims(c, "shop-1")
		handler.CreateCashierHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "CreateCashier", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_Duplicate", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("CreateCashier", mock.Anything, "shop-1", "till-3", "password1").
			Return(nil, apperrors.ErrConflict).Once()

		c, w := createJSONContext(t, "/v1/cashiers", dto.CreateCashierRequest{
			AccountName: "till-3",
			Password:    "password1",
		})
		withShopClaims(c, "shop-1")
		handler.CreateCashierHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestShopHandler_UploadInventoryHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("UploadInventory", mock.Anything, "shop-1", mock.Anything).
			Return([]inventoryBackend.Item{{ID: "item-a", Name: "Coffee"}}, nil).Once()

		c, w := createMultipartContext(t, "file", "catalog.xlsx")
		withShopClaims(c, "shop-1")
		handler.UploadInventoryHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Coffee")
	})

	t.Run("Error_MissingFile", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createMultipartContext(t, "attachment", "catalog.xlsx")
		withShopClaims(c, "shop-1")
		handler.UploadInventoryHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "UploadInventory", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_NotAWorkbookExtension", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createMultipartContext(t, "file", "catalog.csv")
		withShopClaims(c, "shop-1")
		handler.UploadInventoryHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "UploadInventory", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_UnparsableWorkbook", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("UploadInventory", mock.Anything, "shop-1", mock.Anything).
			Return(nil, apperrors.ErrInvalidInput).Once()

		c, w := createMultipartContext(t, "file", "catalog.xlsx")
		withShopClaims(c, "shop-1")
		handler.UploadInventoryHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
