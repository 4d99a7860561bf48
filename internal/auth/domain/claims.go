package domain

// Claims is the verified claim set carried by a capability token.
//
// EntityID identifies the principal the token was issued to (a user, cashier
// or shop id, depending on the tier). Extra carries optional typed extension
// fields; the only one currently issued is "shop_id" on cashier tokens.
// Claims are immutable once issued; the gateway never persists them.
type Claims struct {
	EntityID    string
	AccessLevel AccessLevel
	Extra       map[string]string
}

// ShopID returns the shop identifier carried in the extra claims, if any.
func (c *Claims) ShopID() (string, bool) {
	if c.Extra == nil {
		return "", false
	}
	shopID, ok := c.Extra["shop_id"]
	return shopID, ok && shopID != ""
}
