// Package domain defines the order shapes the register submits when
// recording a sale.
package domain

// OrderLine is one requested item with its quantity, in the order the
// register scanned it. The inventory lookup returns item records in this same
// order, and the two lists are paired by position.
type OrderLine struct {
	ItemID   string
	Quantity int
}
