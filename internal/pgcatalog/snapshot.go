// Package pgcatalog persists a best-effort snapshot of the in-memory catalog
// to Postgres. The store stays authoritative; this adapter only makes the
// catalog survive restarts.
package pgcatalog

import (
	"context"
	"fmt"

	"inventory-tracker/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Snapshot implements core.Persister over an inventory_snapshot table.
type Snapshot struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Snapshot {
	return &Snapshot{pool: pool}
}

// Load returns the persisted catalog in insertion order.
func (s *Snapshot) Load(ctx context.Context) ([]core.Item, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, category, quantity, price, reorder_level, image
		FROM inventory_snapshot
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query inventory snapshot: %w", err)
	}
	defer rows.Close()

	var items []core.Item
	for rows.Next() {
		var it core.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Quantity, &it.Price, &it.ReorderLevel, &it.Image); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// SaveItem upserts one item, appending it to the snapshot order when new.
func (s *Snapshot) SaveItem(ctx context.Context, item core.Item) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO inventory_snapshot (id, name, category, quantity, price, reorder_level, image, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM inventory_snapshot))
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			quantity = EXCLUDED.quantity,
			price = EXCLUDED.price,
			reorder_level = EXCLUDED.reorder_level,
			image = EXCLUDED.image
	`, item.ID, item.Name, item.Category, item.Quantity, item.Price, item.ReorderLevel, item.Image)
	if err != nil {
		return fmt.Errorf("upsert snapshot item %s: %w", item.ID, err)
	}
	return nil
}

// DeleteItem removes one item from the snapshot.
func (s *Snapshot) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM inventory_snapshot WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete snapshot item %s: %w", id, err)
	}
	return nil
}
