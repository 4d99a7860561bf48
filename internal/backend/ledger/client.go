// Package ledger is the typed client for the transaction backend. It records
// purchases and serves per-user transaction history, per-shop point balances
// and the customer set of a shop.
package ledger

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pointward/gateway/internal/backend"
)

// LineItem is one purchased item with the pricing captured at sale time.
type LineItem struct {
	ItemID                 string  `json:"item_id"`
	Quantity               int     `json:"quantity"`
	UnitCost               float64 `json:"unit_cost"`
	PercentPointAllocation float64 `json:"percent_point_allocation"`
}

// Transaction is a recorded purchase as the ledger stores it.
type Transaction struct {
	TID          string     `json:"tid"`
	ShopID       string     `json:"shop_id"`
	BuyerID      string     `json:"buyer_id"`
	CreatedAt    string     `json:"created_at"`
	Total        float64    `json:"total"`
	PointsEarned float64    `json:"points_earned"`
	Lines        []LineItem `json:"lines"`
}

// Balance is a user's point balance at one shop.
type Balance struct {
	ShopID  string  `json:"shop_id"`
	Balance float64 `json:"balance"`
}

// Client calls the ledger backend.
type Client struct {
	caller *backend.Caller
}

// NewClient creates a Client on top of the shared caller.
func NewClient(caller *backend.Caller) *Client {
	return &Client{caller: caller}
}

// CreateTransaction records a purchase as one atomic ledger write and returns
// the created record.
func (c *Client) CreateTransaction(ctx context.Context, shopID, buyerID string, lines []LineItem) (*Transaction, error) {
	body := struct {
		ShopID  string     `json:"shop_id"`
		BuyerID string     `json:"buyer_id"`
		Lines   []LineItem `json:"lines"`
	}{ShopID: shopID, BuyerID: buyerID, Lines: lines}

	transaction := &Transaction{}
	if err := c.caller.PostJSON(ctx, "/transactions", body, transaction, nil); err != nil {
		return nil, err
	}
	return transaction, nil
}

// ListTransactions fetches one page of a user's purchase history, newest
// first.
func (c *Client) ListTransactions(ctx context.Context, userID string, offset, limit int) ([]Transaction, error) {
	query := url.Values{
		"offset": []string{strconv.Itoa(offset)},
		"limit":  []string{strconv.Itoa(limit)},
	}
	var out struct {
		Transactions []Transaction `json:"transactions"`
	}
	err := c.caller.GetJSON(ctx, fmt.Sprintf("/userdata/transactions/%s", userID), query, &out, nil)
	if err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// GetBalances fetches a user's point balance at every shop they have
// purchased from.
func (c *Client) GetBalances(ctx context.Context, userID string) ([]Balance, error) {
	var out struct {
		Balances []Balance `json:"balances"`
	}
	err := c.caller.GetJSON(ctx, fmt.Sprintf("/userdata/balance/%s", userID), nil, &out, nil)
	if err != nil {
		return nil, err
	}
	return out.Balances, nil
}

// GetShopCustomers fetches the ids of every user who has purchased at the
// given shop.
func (c *Client) GetShopCustomers(ctx context.Context, shopID string) ([]string, error) {
	var out struct {
		Users []string `json:"users"`
	}
	err := c.caller.GetJSON(ctx, fmt.Sprintf("/shopdata/%s", shopID), nil, &out, nil)
	if err != nil {
		return nil, err
	}
	return out.Users, nil
}
