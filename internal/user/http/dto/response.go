package dto

import (
	identityBackend "github.com/pointward/gateway/internal/backend/identity"
	userDomain "github.com/pointward/gateway/internal/user/domain"
)

// LoginResponse carries the issued capability token.
type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// UserResponse is the account record returned to the customer.
type UserResponse struct {
	UID         string `json:"uid"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
}

// TransactionResponse is one history entry with the shop name attached.
type TransactionResponse struct {
	TID          string             `json:"tid"`
	ShopID       string             `json:"shop_id"`
	ShopName     string             `json:"shop_name"`
	CreatedAt    string             `json:"created_at"`
	Total        float64            `json:"total"`
	PointsEarned float64            `json:"points_earned"`
	Lines        []LineItemResponse `json:"lines"`
}

// LineItemResponse is one purchased item within a transaction.
type LineItemResponse struct {
	ItemID                 string  `json:"item_id"`
	Quantity               int     `json:"quantity"`
	UnitCost               float64 `json:"unit_cost"`
	PercentPointAllocation float64 `json:"percent_point_allocation"`
}

// ListTransactionsResponse is one page of enriched history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Offset       int                   `json:"offset"`
	Limit        int                   `json:"limit"`
}

// BalanceResponse is one per-shop point balance with the shop name attached.
type BalanceResponse struct {
	ShopID   string  `json:"shop_id"`
	ShopName string  `json:"shop_name"`
	Balance  float64 `json:"balance"`
}

// ListBalancesResponse is the full set of a customer's balances.
type ListBalancesResponse struct {
	Balances []BalanceResponse `json:"balances"`
}

// MapUserToResponse converts a backend account record to its response form.
func MapUserToResponse(user *identityBackend.User) UserResponse {
	return UserResponse{
		UID:         user.UID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		DateOfBirth: user.DateOfBirth,
		Gender:      user.Gender,
		Nationality: user.Nationality,
	}
}

// MapTransactionsToResponse converts enriched transactions to one response
// page.
func MapTransactionsToResponse(
	transactions []userDomain.EnrichedTransaction,
	offset, limit int,
) ListTransactionsResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		lines := make([]LineItemResponse, len(transaction.Lines))
		for j, line := range transaction.Lines {
			lines[j] = LineItemResponse{
				ItemID:                 line.ItemID,
				Quantity:               line.Quantity,
				UnitCost:               line.UnitCost,
				PercentPointAllocation: line.PercentPointAllocation,
			}
		}
		out[i] = TransactionResponse{
			TID:          transaction.TID,
			ShopID:       transaction.ShopID,
			ShopName:     transaction.ShopName,
			CreatedAt:    transaction.CreatedAt,
			Total:        transaction.Total,
			PointsEarned: transaction.PointsEarned,
			Lines:        lines,
		}
	}
	return ListTransactionsResponse{Transactions: out, Offset: offset, Limit: limit}
}

// MapBalancesToResponse converts enriched balances to their response form.
func MapBalancesToResponse(balances []userDomain.EnrichedBalance) ListBalancesResponse {
	out := make([]BalanceResponse, len(balances))
	for i, balance := range balances {
		out[i] = BalanceResponse{
			ShopID:   balance.ShopID,
			ShopName: balance.ShopName,
			Balance:  balance.Balance,
		}
	}
	return ListBalancesResponse{Balances: out}
}
