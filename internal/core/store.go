package core

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// removalTTL bounds how long a removal confirmation token stays valid.
const removalTTL = 15 * time.Minute

// Persister is an optional write-behind snapshot of the catalog. The in-memory
// store remains authoritative; persister failures are logged, never surfaced,
// and never roll back a completed mutation.
type Persister interface {
	Load(ctx context.Context) ([]Item, error)
	SaveItem(ctx context.Context, item Item) error
	DeleteItem(ctx context.Context, id string) error
}

type pendingRemoval struct {
	itemID    string
	createdAt time.Time
}

// Store owns the authoritative ordered collection of inventory items.
// All operations are synchronous and immediately consistent; the mutex only
// guards against concurrent HTTP requests, there are no suspension points
// inside any operation.
type Store struct {
	mu        sync.Mutex
	items     []Item
	pending   map[string]pendingRemoval
	persister Persister
}

// NewStore creates an empty store. persister may be nil.
func NewStore(persister Persister) *Store {
	return &Store{
		pending:   make(map[string]pendingRemoval),
		persister: persister,
	}
}

// LoadSnapshot replaces the collection with the persisted snapshot.
// Called once at startup, before the store is shared.
func (s *Store) LoadSnapshot(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	items, err := s.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog snapshot: %w", err)
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Seed fills an empty store with the given items, assigning ids where missing.
// A non-empty store is left untouched.
func (s *Store) Seed(ctx context.Context, items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) > 0 {
		return
	}
	for _, it := range items {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if it.Image == "" {
			it.Image = DefaultImageURL
		}
		s.items = append(s.items, it)
		s.persist(ctx, it)
	}
}

// List returns a snapshot copy of the ordered collection. Mutating the
// returned slice never affects store state.
func (s *Store) List() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Add validates the candidate, assigns a fresh unique id, and appends it to
// the end of the collection. The candidate's ID field is ignored.
func (s *Store) Add(ctx context.Context, candidate Item) (Item, error) {
	if err := validate(candidate); err != nil {
		return Item{}, err
	}
	candidate.ID = uuid.NewString()
	if candidate.Image == "" {
		candidate.Image = DefaultImageURL
	}

	s.mu.Lock()
	s.items = append(s.items, candidate)
	s.persist(ctx, candidate)
	s.mu.Unlock()
	return candidate, nil
}

// Update replaces the whole record at the position of id, keeping order.
// Partial field updates are not supported; callers supply the full record.
func (s *Store) Update(ctx context.Context, id string, item Item) (Item, error) {
	if err := validate(item); err != nil {
		return Item{}, err
	}
	item.ID = id
	if item.Image == "" {
		item.Image = DefaultImageURL
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = item
			s.persist(ctx, item)
			return item, nil
		}
	}
	return Item{}, &NotFoundError{ID: id}
}

// RequestRemoval opens the two-step removal protocol: it hands back a
// single-use confirmation token for the given id. No state changes until the
// token is confirmed. Tokens expire after removalTTL.
func (s *Store) RequestRemoval(id string) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	for t, p := range s.pending {
		if time.Since(p.createdAt) > removalTTL {
			delete(s.pending, t)
		}
	}
	s.pending[token] = pendingRemoval{itemID: id, createdAt: time.Now()}
	return token
}

// ConfirmRemoval consumes the token and removes the item it points at.
// Removal is idempotent: a confirmed removal of an id no longer present is a
// silent no-op. Unknown, reused, or expired tokens return ErrTokenUnknown.
func (s *Store) ConfirmRemoval(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[token]
	if !ok {
		return ErrTokenUnknown
	}
	delete(s.pending, token)
	if time.Since(p.createdAt) > removalTTL {
		return ErrTokenUnknown
	}

	for i := range s.items {
		if s.items[i].ID == p.itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			if s.persister != nil {
				if err := s.persister.DeleteItem(ctx, p.itemID); err != nil {
					log.Printf("catalog snapshot delete %s: %v", p.itemID, err)
				}
			}
			return nil
		}
	}
	return nil
}

// persist writes one item to the snapshot. Caller holds the mutex.
func (s *Store) persist(ctx context.Context, item Item) {
	if s.persister == nil {
		return
	}
	if err := s.persister.SaveItem(ctx, item); err != nil {
		log.Printf("catalog snapshot save %s: %v", item.ID, err)
	}
}

func validate(item Item) error {
	if item.Name == "" {
		return &ValidationError{Field: "name"}
	}
	if item.Category == "" {
		return &ValidationError{Field: "category"}
	}
	if item.Quantity < 0 {
		return &ValidationError{Field: "quantity", Reason: "cannot be negative"}
	}
	if item.ReorderLevel < 0 {
		return &ValidationError{Field: "reorderLevel", Reason: "cannot be negative"}
	}
	if item.Price.IsNegative() {
		return &ValidationError{Field: "price", Reason: "cannot be negative"}
	}
	return nil
}
