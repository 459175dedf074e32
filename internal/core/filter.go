package core

import (
	"strings"
)

// CategoryAll is the category filter sentinel that matches every item.
const CategoryAll = "all"

// StockFilter selects items by stock band.
type StockFilter string

const (
	StockFilterAll StockFilter = "all"
	StockFilterIn  StockFilter = StockFilter(StockIn)
	StockFilterLow StockFilter = StockFilter(StockLow)
	StockFilterOut StockFilter = StockFilter(StockOut)
)

// ParseStockFilter validates a stock filter value from the query string.
// The empty string means "all".
func ParseStockFilter(s string) (StockFilter, error) {
	switch StockFilter(s) {
	case "", StockFilterAll:
		return StockFilterAll, nil
	case StockFilterIn, StockFilterLow, StockFilterOut:
		return StockFilter(s), nil
	default:
		return "", &ValidationError{Field: "stock", Reason: `must be one of "all", "in", "low", "out"`}
	}
}

// Filter is the conjunction of the three grid predicates. The zero value
// (empty search, empty category, empty stock) matches everything.
type Filter struct {
	Search   string
	Category string
	Stock    StockFilter
}

// Matches reports whether the item passes all three predicates.
func (f Filter) Matches(it Item) bool {
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(it.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Category != "" && f.Category != CategoryAll && it.Category != f.Category {
		return false
	}
	if f.Stock != "" && f.Stock != StockFilterAll && StockFilter(it.Status()) != f.Stock {
		return false
	}
	return true
}

// Apply filters items in one order-preserving pass and annotates the
// survivors with their stock band. The input is never mutated; each call
// re-reads it from the start.
func (f Filter) Apply(items []Item) []AnnotatedItem {
	out := make([]AnnotatedItem, 0, len(items))
	for _, it := range items {
		if f.Matches(it) {
			out = append(out, AnnotatedItem{Item: it, StockStatus: it.Status()})
		}
	}
	return out
}
