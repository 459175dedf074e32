package core_test

import (
	"context"
	"errors"
	"testing"

	"inventory-tracker/internal/core"

	"github.com/shopspring/decimal"
)

func seedStore(t *testing.T, items ...core.Item) *core.Store {
	t.Helper()
	store := core.NewStore(nil)
	ctx := context.Background()
	for _, it := range items {
		if _, err := store.Add(ctx, it); err != nil {
			t.Fatalf("seed Add(%s): %v", it.Name, err)
		}
	}
	return store
}

func TestStore_AddAppendsWithUniqueID(t *testing.T) {
	store := seedStore(t,
		item("Sourdough Loaf", "Baked Goods", 18, 6),
		item("Ground Beef 1lb", "Meat", 32, 12),
	)

	added, err := store.Add(context.Background(), item("Goat Milk Soap", "Self Care", 41, 15))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.ID == "" {
		t.Fatal("Add returned an empty id")
	}

	got := store.List()
	if len(got) != 3 {
		t.Fatalf("List() has %d items, want 3", len(got))
	}
	if got[2].ID != added.ID || got[2].Name != "Goat Milk Soap" {
		t.Errorf("new item not appended last: %+v", got[2])
	}
	seen := map[string]bool{}
	for _, it := range got {
		if seen[it.ID] {
			t.Errorf("duplicate id %s", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestStore_AddValidation(t *testing.T) {
	tests := []struct {
		name      string
		candidate core.Item
		wantField string
	}{
		{"missing name", core.Item{Category: "Meat"}, "name"},
		{"missing category", core.Item{Name: "Smoked Bacon"}, "category"},
		{"negative quantity", core.Item{Name: "Smoked Bacon", Category: "Meat", Quantity: -1}, "quantity"},
		{"negative reorder level", core.Item{Name: "Smoked Bacon", Category: "Meat", ReorderLevel: -2}, "reorderLevel"},
		{"negative price", core.Item{Name: "Smoked Bacon", Category: "Meat", Price: decimal.NewFromInt(-1)}, "price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := core.NewStore(nil)
			_, err := store.Add(context.Background(), tt.candidate)

			var vErr *core.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Add error = %v, want ValidationError", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", vErr.Field, tt.wantField)
			}
			if len(store.List()) != 0 {
				t.Error("rejected add left a partial insert behind")
			}
		})
	}
}

func TestStore_AddAssignsDefaultImage(t *testing.T) {
	store := core.NewStore(nil)
	added, err := store.Add(context.Background(), item("Honey Bath Bar", "Self Care", 12, 12))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.Image != core.DefaultImageURL {
		t.Errorf("Image = %q, want the default fallback", added.Image)
	}
}

func TestStore_UpdateReplacesExactlyOneRecord(t *testing.T) {
	store := seedStore(t,
		item("Sourdough Loaf", "Baked Goods", 18, 6),
		item("Ground Beef 1lb", "Meat", 32, 12),
		item("Goat Milk Soap", "Self Care", 41, 15),
	)
	before := store.List()
	target := before[1]

	replacement := item("Grass-Fed Beef 1lb", "Meat", 5, 12)
	updated, err := store.Update(context.Background(), target.ID, replacement)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != target.ID {
		t.Errorf("Update changed the id: %q -> %q", target.ID, updated.ID)
	}

	after := store.List()
	if len(after) != len(before) {
		t.Fatalf("Update changed the collection size: %d -> %d", len(before), len(after))
	}
	for i := range after {
		if i == 1 {
			if after[i].Name != "Grass-Fed Beef 1lb" || after[i].Quantity != 5 {
				t.Errorf("target record not replaced: %+v", after[i])
			}
			continue
		}
		if after[i] != before[i] {
			t.Errorf("record %d touched by update of another id: %+v", i, after[i])
		}
	}
}

func TestStore_UpdateMissingID(t *testing.T) {
	store := seedStore(t, item("Sourdough Loaf", "Baked Goods", 18, 6))

	_, err := store.Update(context.Background(), "missing-id", item("Rye Loaf", "Baked Goods", 9, 6))
	var nfErr *core.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("Update error = %v, want NotFoundError", err)
	}
	if nfErr.ID != "missing-id" {
		t.Errorf("NotFoundError.ID = %q, want %q", nfErr.ID, "missing-id")
	}
}

func TestStore_TwoStepRemoval(t *testing.T) {
	store := seedStore(t,
		item("Sourdough Loaf", "Baked Goods", 18, 6),
		item("Ground Beef 1lb", "Meat", 32, 12),
	)
	ctx := context.Background()
	target := store.List()[0]

	token := store.RequestRemoval(target.ID)
	if token == "" {
		t.Fatal("RequestRemoval returned an empty token")
	}
	if len(store.List()) != 2 {
		t.Fatal("RequestRemoval mutated the collection before confirmation")
	}

	if err := store.ConfirmRemoval(ctx, token); err != nil {
		t.Fatalf("ConfirmRemoval: %v", err)
	}
	after := store.List()
	if len(after) != 1 || after[0].Name != "Ground Beef 1lb" {
		t.Errorf("removal left the wrong collection: %v", after)
	}

	// Tokens are single-use.
	if err := store.ConfirmRemoval(ctx, token); !errors.Is(err, core.ErrTokenUnknown) {
		t.Errorf("reused token error = %v, want ErrTokenUnknown", err)
	}
}

func TestStore_RemovalOfMissingIDIsNoOp(t *testing.T) {
	store := seedStore(t,
		item("Sourdough Loaf", "Baked Goods", 18, 6),
		item("Ground Beef 1lb", "Meat", 32, 12),
		item("Goat Milk Soap", "Self Care", 41, 15),
	)
	ctx := context.Background()
	before := store.List()

	token := store.RequestRemoval("missing-id")
	if err := store.ConfirmRemoval(ctx, token); err != nil {
		t.Fatalf("ConfirmRemoval of a missing id should be a no-op, got %v", err)
	}

	after := store.List()
	if len(after) != len(before) {
		t.Fatalf("no-op removal changed the collection size: %d -> %d", len(before), len(after))
	}
	for i := range after {
		if after[i] != before[i] {
			t.Errorf("record %d changed by no-op removal: %+v", i, after[i])
		}
	}
}

func TestStore_ConfirmRemovalUnknownToken(t *testing.T) {
	store := core.NewStore(nil)
	if err := store.ConfirmRemoval(context.Background(), "never-issued"); !errors.Is(err, core.ErrTokenUnknown) {
		t.Errorf("ConfirmRemoval error = %v, want ErrTokenUnknown", err)
	}
}

func TestStore_ListIsASnapshot(t *testing.T) {
	store := seedStore(t, item("Sourdough Loaf", "Baked Goods", 18, 6))

	snapshot := store.List()
	snapshot[0].Name = "Tampered"

	if got := store.List()[0].Name; got != "Sourdough Loaf" {
		t.Errorf("mutating a List() snapshot leaked into the store: %q", got)
	}
}

func TestStore_SeedOnlyFillsEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := core.NewStore(nil)
	store.Seed(ctx, core.SeedCatalog())
	if len(store.List()) != 12 {
		t.Fatalf("seeded store has %d items, want 12", len(store.List()))
	}

	store.Seed(ctx, core.SeedCatalog())
	if len(store.List()) != 12 {
		t.Errorf("re-seeding a non-empty store duplicated items: %d", len(store.List()))
	}
}
