package dto

import (
	identityBackend "github.com/pointward/gateway/internal/backend/identity"
	inventoryBackend "github.com/pointward/gateway/internal/backend/inventory"
)

// LoginResponse carries the issued capability token.
type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// CashierResponse is a provisioned cashier account.
type CashierResponse struct {
	CID         string `json:"cid"`
	ShopID      string `json:"shop_id"`
	AccountName string `json:"account_name"`
}

// StatsResponse is the aggregated customer report.
type StatsResponse struct {
	TotalCustomers int            `json:"total_customers"`
	AverageAge     float64        `json:"average_age"`
	Genders        map[string]int `json:"genders"`
	Nationalities  map[string]int `json:"nationalities"`
}

// ItemResponse is one registered catalog item.
type ItemResponse struct {
	ID                     string  `json:"id"`
	ShopID                 string  `json:"shop_id"`
	Name                   string  `json:"name"`
	Description            string  `json:"description"`
	PhotoURL               string  `json:"photo_url"`
	Price                  float64 `json:"price"`
	PercentPointAllocation float64 `json:"percent_point_allocation"`
}

// UploadInventoryResponse lists the catalog items an upload registered.
type UploadInventoryResponse struct {
	Items []ItemResponse `json:"items"`
}

// MapCashierToResponse converts a provisioned cashier to its response form.
func MapCashierToResponse(cashier *inventoryBackend.Cashier) CashierResponse {
	return CashierResponse{
		CID:         cashier.CID,
		ShopID:      cashier.ShopID,
		AccountName: cashier.AccountName,
	}
}

// MapStatsToResponse converts the aggregated report to its response form.
func MapStatsToResponse(report *identityBackend.StatsReport) StatsResponse {
	return StatsResponse{
		TotalCustomers: report.TotalCustomers,
		AverageAge:     report.AverageAge,
		Genders:        report.Genders,
		Nationalities:  report.Nationalities,
	}
}

// MapItemsToUploadResponse converts registered items to the upload response.
func MapItemsToUploadResponse(items []inventoryBackend.Item) UploadInventoryResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = ItemResponse{
			ID:                     item.ID,
			ShopID:                 item.ShopID,
			Name:                   item.Name,
			Description:            item.Description,
			PhotoURL:               item.PhotoURL,
			Price:                  item.Price,
			PercentPointAllocation: item.PercentPointAllocation,
		}
	}
	return UploadInventoryResponse{Items: out}
}
