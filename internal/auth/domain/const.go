// Package domain defines the capability-token domain models.
// A capability token is a signed claim set proving caller identity and
// privilege tier; it is issued at login and verified on every protected request.
package domain

// AccessLevel is the privilege tier encoded in a capability token.
//
// Tiers are a closed set compared by equality only: a route requiring one tier
// never admits another, and there is no ordering or hierarchy between them.
type AccessLevel string

const (
	// UserLevel is the tier issued to registered end users.
	UserLevel AccessLevel = "user"

	// CashierLevel is the tier issued to cashier accounts of a shop.
	CashierLevel AccessLevel = "cashier"

	// StoreManagementLevel is the tier issued to shop management accounts.
	StoreManagementLevel AccessLevel = "store_management"
)

// IsValid reports whether the level is one of the known privilege tiers.
func (l AccessLevel) IsValid() bool {
	switch l {
	case UserLevel, CashierLevel, StoreManagementLevel:
		return true
	}
	return false
}
