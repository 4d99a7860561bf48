// Package domain contains the store-management side domain types.
package domain

// SheetItem is one catalog row parsed from an uploaded inventory workbook,
// before it is bound to a shop.
type SheetItem struct {
	Name                   string
	Description            string
	PhotoURL               string
	Price                  float64
	PercentPointAllocation float64
}
