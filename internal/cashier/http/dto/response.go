package dto

import (
	identityBackend "github.com/pointward/gateway/internal/backend/identity"
	inventoryBackend "github.com/pointward/gateway/internal/backend/inventory"
	ledgerBackend "github.com/pointward/gateway/internal/backend/ledger"
)

// LoginResponse carries the issued capability token.
type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// ItemResponse is one catalog item.
type ItemResponse struct {
	ID                     string  `json:"id"`
	ShopID                 string  `json:"shop_id"`
	Name                   string  `json:"name"`
	Description            string  `json:"description"`
	PhotoURL               string  `json:"photo_url"`
	Price                  float64 `json:"price"`
	PercentPointAllocation float64 `json:"percent_point_allocation"`
}

// ListItemsResponse is a shop's catalog.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// CustomerResponse is one customer account match.
type CustomerResponse struct {
	UID       string `json:"uid"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LookupResponse is the customer search result.
type LookupResponse struct {
	Users []CustomerResponse `json:"users"`
}

// TransactionResponse is the ledger's created-transaction record, returned
// verbatim to the register.
type TransactionResponse struct {
	TID          string             `json:"tid"`
	ShopID       string             `json:"shop_id"`
	BuyerID      string             `json:"buyer_id"`
	CreatedAt    string             `json:"created_at"`
	Total        float64            `json:"total"`
	PointsEarned float64            `json:"points_earned"`
	Lines        []LineItemResponse `json:"lines"`
}

// LineItemResponse is one recorded line item.
type LineItemResponse struct {
	ItemID                 string  `json:"item_id"`
	Quantity               int     `json:"quantity"`
	UnitCost               float64 `json:"unit_cost"`
	PercentPointAllocation float64 `json:"percent_point_allocation"`
}

// MapItemToResponse converts a backend item to its response form.
func MapItemToResponse(item *inventoryBackend.Item) ItemResponse {
	return ItemResponse{
		ID:                     item.ID,
		ShopID:                 item.ShopID,
		Name:                   item.Name,
		Description:            item.Description,
		PhotoURL:               item.PhotoURL,
		Price:                  item.Price,
		PercentPointAllocation: item.PercentPointAllocation,
	}
}

// MapItemsToListResponse converts backend items to a catalog response.
func MapItemsToListResponse(items []inventoryBackend.Item) ListItemsResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = MapItemToResponse(&items[i])
	}
	return ListItemsResponse{Items: out}
}

// MapUsersToLookupResponse converts account matches to a search response.
func MapUsersToLookupResponse(users []identityBackend.User) LookupResponse {
	out := make([]CustomerResponse, len(users))
	for i, user := range users {
		out[i] = CustomerResponse{
			UID:       user.UID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		}
	}
	return LookupResponse{Users: out}
}

// MapTransactionToResponse converts the ledger record to its response form.
func MapTransactionToResponse(transaction *ledgerBackend.Transaction) TransactionResponse {
	lines := make([]LineItemResponse, len(transaction.Lines))
	for i, line := range transaction.Lines {
		lines[i] = LineItemResponse{
			ItemID:                 line.ItemID,
			Quantity:               line.Quantity,
			UnitCost:               line.UnitCost,
			PercentPointAllocation: line.PercentPointAllocation,
		}
	}
	return TransactionResponse{
		TID:          transaction.TID,
		ShopID:       transaction.ShopID,
		BuyerID:      transaction.BuyerID,
		CreatedAt:    transaction.CreatedAt,
		Total:        transaction.Total,
		PointsEarned: transaction.PointsEarned,
		Lines:        lines,
	}
}
