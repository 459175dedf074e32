package core

import (
	"github.com/shopspring/decimal"
)

// DefaultImageURL is assigned to items created without a product photo.
const DefaultImageURL = "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=400&fit=crop"

// Categories is the fixed set of product categories the store stocks.
// The filter bar prepends the "all" sentinel. Mutation validation stays
// presence-only: the set constrains the form, not the API.
var Categories = []string{"Baked Goods", "Meat", "Self Care"}

// Item is a stocked product in the catalog.
type Item struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	ReorderLevel int             `json:"reorderLevel"`
	Image        string          `json:"image"`
}

// StockStatus is the derived stock band of an item.
type StockStatus string

const (
	StockOut StockStatus = "out"
	StockLow StockStatus = "low"
	StockIn  StockStatus = "in"
)

// Classify maps a quantity/reorder-level pair to its stock band.
// First match wins: zero on hand is out of stock, anything at or
// below the reorder level is low, the rest is in stock.
func Classify(quantity, reorderLevel int) StockStatus {
	switch {
	case quantity == 0:
		return StockOut
	case quantity <= reorderLevel:
		return StockLow
	default:
		return StockIn
	}
}

// Status returns the item's current stock band.
func (it Item) Status() StockStatus {
	return Classify(it.Quantity, it.ReorderLevel)
}

// AnnotatedItem is an Item together with its derived stock band,
// the shape the grid renders.
type AnnotatedItem struct {
	Item
	StockStatus StockStatus `json:"stockStatus"`
}

// Annotate pairs each item with its stock band, preserving order.
func Annotate(items []Item) []AnnotatedItem {
	out := make([]AnnotatedItem, 0, len(items))
	for _, it := range items {
		out = append(out, AnnotatedItem{Item: it, StockStatus: it.Status()})
	}
	return out
}
