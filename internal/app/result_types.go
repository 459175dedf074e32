package app

import "inventory-tracker/internal/core"

// InventoryListResult is returned by ListInventory.
type InventoryListResult struct {
	Items []core.AnnotatedItem `json:"items"`
	Total int                  `json:"total"`
}

// StatsResult is returned by GetStats.
type StatsResult struct {
	Stats core.Stats `json:"stats"`
}

// CategoriesResult is returned by ListCategories.
type CategoriesResult struct {
	Categories []string `json:"categories"`
}

// ItemResult is returned by AddItem and UpdateItem.
type ItemResult struct {
	Item core.AnnotatedItem `json:"item"`
}

// RemovalTicketResult is returned by RequestItemRemoval.
type RemovalTicketResult struct {
	Token string `json:"token"`
}

// SignupResult is returned by CreateOwner.
type SignupResult struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
