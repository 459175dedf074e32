package app

import (
	"context"

	"inventory-tracker/internal/core"
)

// ApplicationService is the single interface the HTTP adapter calls. It
// decouples the transport from the inventory logic; implementations contain
// no HTTP types and no display logic.
type ApplicationService interface {
	// ListInventory returns the filtered, status-annotated view of the catalog.
	ListInventory(ctx context.Context, req ListInventoryRequest) (*InventoryListResult, error)

	// GetStats returns the dashboard counters over the full unfiltered catalog.
	GetStats(ctx context.Context) (*StatsResult, error)

	// ListCategories returns the fixed category set with the "all" sentinel
	// prepended, the shape the filter bar expects.
	ListCategories(ctx context.Context) (*CategoriesResult, error)

	// AddItem appends a new item to the catalog. Requires an authenticated
	// session; fails with core.ErrAuthRequired otherwise.
	AddItem(ctx context.Context, input ItemInput) (*ItemResult, error)

	// UpdateItem replaces the whole record with the given id.
	UpdateItem(ctx context.Context, id string, input ItemInput) (*ItemResult, error)

	// RequestItemRemoval opens the two-step delete and returns the
	// confirmation token. Nothing is removed until the token is confirmed.
	RequestItemRemoval(ctx context.Context, id string) (*RemovalTicketResult, error)

	// ConfirmItemRemoval consumes the token and performs the removal.
	// Removing an id that no longer exists is a silent no-op.
	ConfirmItemRemoval(ctx context.Context, token string) error

	// AuthenticateOwner verifies credentials against the identity service and
	// opens the session the auth gate guards mutations with.
	AuthenticateOwner(ctx context.Context, email, password string) (*core.Session, error)

	// LogoutOwner closes the current session.
	LogoutOwner(ctx context.Context) error

	// RestoreSession performs the one-shot startup session check.
	RestoreSession(ctx context.Context, token string) error

	// CurrentSession returns the active session, or nil.
	CurrentSession(ctx context.Context) *core.Session

	// CreateOwner registers a pre-confirmed store-owner account with the
	// identity service.
	CreateOwner(ctx context.Context, req SignupRequest) (*SignupResult, error)
}
