// Package domain defines the enriched views the gateway assembles for
// customers: ledger records joined with shop display names resolved from the
// inventory backend.
package domain

import (
	ledgerBackend "github.com/pointward/gateway/internal/backend/ledger"
)

// EnrichedTransaction is one ledger transaction with the shop's display name
// attached.
type EnrichedTransaction struct {
	ledgerBackend.Transaction
	ShopName string
}

// EnrichedBalance is one per-shop point balance with the shop's display name
// attached.
type EnrichedBalance struct {
	ShopID   string
	ShopName string
	Balance  float64
}
