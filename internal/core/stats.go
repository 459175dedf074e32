package core

// Stats are the dashboard counters, derived from the full unfiltered
// collection regardless of the grid's current filter.
type Stats struct {
	TotalProducts int `json:"totalProducts"`
	TotalUnits    int `json:"totalUnits"`
	LowStock      int `json:"lowStockCount"`
	OutOfStock    int `json:"outOfStockCount"`
}

// Aggregate recomputes the counters from scratch. At catalog scale
// (tens to low hundreds of items) there is nothing worth caching.
func Aggregate(items []Item) Stats {
	st := Stats{TotalProducts: len(items)}
	for _, it := range items {
		st.TotalUnits += it.Quantity
		switch it.Status() {
		case StockLow:
			st.LowStock++
		case StockOut:
			st.OutOfStock++
		}
	}
	return st
}
