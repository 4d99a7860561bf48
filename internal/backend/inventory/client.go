// Package inventory is the typed client for the shop backend. It owns shop
// and cashier accounts, the item catalog, and shop display names.
//
// GetItemsByID and ResolveNames return results in the same order as the
// requested ids. Callers pair those results positionally with other lists,
// so the ordering is part of the backend contract, not a convenience.
package inventory

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/pointward/gateway/internal/backend"
	apperrors "github.com/pointward/gateway/internal/errors"
)

// Shop is a shop account as returned by the backend.
type Shop struct {
	SID  string `json:"sid"`
	Name string `json:"name"`
}

// Cashier is a cashier account bound to one shop.
type Cashier struct {
	CID         string `json:"cid"`
	ShopID      string `json:"shop_id"`
	AccountName string `json:"account_name"`
}

// Item is a catalog item with the pricing fields the ledger needs.
type Item struct {
	ID                     string  `json:"id"`
	ShopID                 string  `json:"shop_id"`
	Name                   string  `json:"name"`
	Description            string  `json:"description"`
	PhotoURL               string  `json:"photo_url"`
	Price                  float64 `json:"price"`
	PercentPointAllocation float64 `json:"percent_point_allocation"`
}

// ItemCreate carries one new catalog item.
type ItemCreate struct {
	ShopID                 string  `json:"shop_id"`
	Name                   string  `json:"name"`
	Description            string  `json:"description"`
	PhotoURL               string  `json:"photo_url"`
	Price                  float64 `json:"price"`
	PercentPointAllocation float64 `json:"percent_point_allocation"`
}

// CreateCashierParams carries a new cashier account request.
type CreateCashierParams struct {
	AccountName string `json:"account_name"`
	ShopID      string `json:"shop_id"`
	Password    string `json:"password"`
}

// Client calls the inventory backend.
type Client struct {
	caller *backend.Caller
}

// NewClient creates a Client on top of the shared caller.
func NewClient(caller *backend.Caller) *Client {
	return &Client{caller: caller}
}

// ShopLogin verifies shop-owner credentials.
func (c *Client) ShopLogin(ctx context.Context, accountName, password string) (*Shop, error) {
	body := map[string]string{"account_name": accountName, "password": password}
	shop := &Shop{}
	err := c.caller.PostJSON(ctx, "/shop/login", body, shop, backend.StatusMap{
		http.StatusForbidden: apperrors.ErrForbidden,
	})
	if err != nil {
		return nil, err
	}
	return shop, nil
}

// CashierLogin verifies cashier credentials. The returned Cashier carries the
// shop id the account is bound to.
func (c *Client) CashierLogin(ctx context.Context, accountName, password string) (*Cashier, error) {
	body := map[string]string{"account_name": accountName, "password": password}
	cashier := &Cashier{}
	err := c.caller.PostJSON(ctx, "/cashier/login", body, cashier, backend.StatusMap{
		http.StatusForbidden: apperrors.ErrForbidden,
	})
	if err != nil {
		return nil, err
	}
	return cashier, nil
}

// CreateCashier registers a cashier account under a shop. A taken account
// name surfaces as ErrConflict.
func (c *Client) CreateCashier(ctx context.Context, params CreateCashierParams) (*Cashier, error) {
	cashier := &Cashier{}
	err := c.caller.PostJSON(ctx, "/cashier", params, cashier, backend.StatusMap{
		http.StatusBadRequest: apperrors.ErrConflict,
	})
	if err != nil {
		return nil, err
	}
	return cashier, nil
}

// GetItemsByID fetches full item records for the given ids, in request order.
// Any unknown id fails the whole lookup with ErrNotFound.
func (c *Client) GetItemsByID(ctx context.Context, ids []string) ([]Item, error) {
	query := url.Values{"ids": []string{strings.Join(ids, ",")}}
	var items []Item
	err := c.caller.GetJSON(ctx, "/items", query, &items, backend.StatusMap{
		http.StatusNotFound: apperrors.ErrNotFound,
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListItems fetches the full catalog of one shop.
func (c *Client) ListItems(ctx context.Context, shopID string) ([]Item, error) {
	query := url.Values{"shop_id": []string{shopID}}
	var items []Item
	if err := c.caller.GetJSON(ctx, "/items", query, &items, nil); err != nil {
		return nil, err
	}
	return items, nil
}

// ResolveNames maps shop ids to display names, in request order.
func (c *Client) ResolveNames(ctx context.Context, shopIDs []string) ([]string, error) {
	var names []string
	err := c.caller.PostJSON(ctx, "/shop/names", shopIDs, &names, backend.StatusMap{
		http.StatusNotFound: apperrors.ErrNotFound,
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// CreateItems registers a batch of catalog items in one call.
func (c *Client) CreateItems(ctx context.Context, items []ItemCreate) ([]Item, error) {
	var created []Item
	if err := c.caller.PostJSON(ctx, "/items", items, &created, nil); err != nil {
		return nil, err
	}
	return created, nil
}
