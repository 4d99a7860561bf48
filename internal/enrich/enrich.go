// Package enrich merges two backend result lists into one enriched list.
//
// Both the balance and transaction-history endpoints fetch base records from
// the ledger backend and display names from the inventory backend in a single
// batched call each. The two lists pair up by position: the inventory backend
// guarantees its results come back in request order. A length mismatch means a
// backend broke that contract and the request must fail rather than return a
// silently truncated list.
package enrich

import (
	"fmt"

	apperrors "github.com/pointward/gateway/internal/errors"
)

// Zip pairs two equal-length lists element by index and merges each pair.
// Returns ErrInconsistent if the lengths differ.
func Zip[B, L, R any](base []B, lookup []L, merge func(B, L) R) ([]R, error) {
	if len(base) != len(lookup) {
		return nil, apperrors.Wrap(
			apperrors.ErrInconsistent,
			fmt.Sprintf("cannot pair %d base records with %d lookup values", len(base), len(lookup)),
		)
	}

	enriched := make([]R, len(base))
	for i := range base {
		enriched[i] = merge(base[i], lookup[i])
	}
	return enriched, nil
}
