package app

import (
	"context"
	"fmt"

	"inventory-tracker/internal/core"
	"inventory-tracker/internal/identity"
)

// AccountCreator is the administrative slice of the identity service used by
// the signup endpoint. Tests substitute a fake.
type AccountCreator interface {
	CreateOwner(ctx context.Context, email, password, name string) (*identity.Owner, error)
}

type appService struct {
	store    *core.Store
	gate     *core.AuthGate
	accounts AccountCreator
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(store *core.Store, gate *core.AuthGate, accounts AccountCreator) ApplicationService {
	return &appService{store: store, gate: gate, accounts: accounts}
}

func (s *appService) ListInventory(_ context.Context, req ListInventoryRequest) (*InventoryListResult, error) {
	stock, err := core.ParseStockFilter(req.Stock)
	if err != nil {
		return nil, err
	}
	f := core.Filter{Search: req.Search, Category: req.Category, Stock: stock}
	items := f.Apply(s.store.List())
	return &InventoryListResult{Items: items, Total: len(items)}, nil
}

func (s *appService) GetStats(context.Context) (*StatsResult, error) {
	return &StatsResult{Stats: core.Aggregate(s.store.List())}, nil
}

func (s *appService) ListCategories(context.Context) (*CategoriesResult, error) {
	cats := make([]string, 0, len(core.Categories)+1)
	cats = append(cats, core.CategoryAll)
	cats = append(cats, core.Categories...)
	return &CategoriesResult{Categories: cats}, nil
}

func (s *appService) AddItem(ctx context.Context, input ItemInput) (*ItemResult, error) {
	item, err := s.gate.Add(ctx, itemFromInput(input))
	if err != nil {
		return nil, err
	}
	return &ItemResult{Item: core.AnnotatedItem{Item: item, StockStatus: item.Status()}}, nil
}

func (s *appService) UpdateItem(ctx context.Context, id string, input ItemInput) (*ItemResult, error) {
	item, err := s.gate.Update(ctx, id, itemFromInput(input))
	if err != nil {
		return nil, err
	}
	return &ItemResult{Item: core.AnnotatedItem{Item: item, StockStatus: item.Status()}}, nil
}

func (s *appService) RequestItemRemoval(_ context.Context, id string) (*RemovalTicketResult, error) {
	token, err := s.gate.RequestRemoval(id)
	if err != nil {
		return nil, err
	}
	return &RemovalTicketResult{Token: token}, nil
}

func (s *appService) ConfirmItemRemoval(ctx context.Context, token string) error {
	return s.gate.ConfirmRemoval(ctx, token)
}

func (s *appService) AuthenticateOwner(ctx context.Context, email, password string) (*core.Session, error) {
	return s.gate.Login(ctx, email, password)
}

func (s *appService) LogoutOwner(ctx context.Context) error {
	return s.gate.Logout(ctx)
}

func (s *appService) RestoreSession(ctx context.Context, token string) error {
	return s.gate.Restore(ctx, token)
}

func (s *appService) CurrentSession(context.Context) *core.Session {
	return s.gate.CurrentSession()
}

func (s *appService) CreateOwner(ctx context.Context, req SignupRequest) (*SignupResult, error) {
	if req.Email == "" {
		return nil, &core.ValidationError{Field: "email"}
	}
	if req.Password == "" {
		return nil, &core.ValidationError{Field: "password"}
	}
	owner, err := s.accounts.CreateOwner(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, fmt.Errorf("create owner account: %w", err)
	}
	return &SignupResult{ID: owner.ID, Email: owner.Email}, nil
}

func itemFromInput(in ItemInput) core.Item {
	return core.Item{
		Name:         in.Name,
		Category:     in.Category,
		Quantity:     in.Quantity,
		Price:        in.Price,
		ReorderLevel: in.ReorderLevel,
		Image:        in.Image,
	}
}
