package core_test

import (
	"testing"

	"inventory-tracker/internal/core"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name  string
		items []core.Item
		want  core.Stats
	}{
		{
			name:  "empty collection",
			items: nil,
			want:  core.Stats{},
		},
		{
			name: "one item per band",
			items: []core.Item{
				item("A", "Meat", 0, 5),
				item("B", "Meat", 3, 5),
				item("C", "Meat", 10, 5),
			},
			want: core.Stats{TotalProducts: 3, TotalUnits: 13, LowStock: 1, OutOfStock: 1},
		},
		{
			name: "counts are independent of category",
			items: []core.Item{
				item("A", "Baked Goods", 0, 1),
				item("B", "Meat", 0, 1),
				item("C", "Self Care", 2, 2),
				item("D", "Self Care", 7, 2),
			},
			want: core.Stats{TotalProducts: 4, TotalUnits: 9, LowStock: 1, OutOfStock: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.Aggregate(tt.items); got != tt.want {
				t.Errorf("Aggregate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Stats are derived from the full collection, never the filtered view.
func TestAggregate_IgnoresFilters(t *testing.T) {
	items := []core.Item{
		item("A", "Meat", 0, 5),
		item("B", "Meat", 3, 5),
		item("C", "Baked Goods", 10, 5),
	}
	_ = core.Filter{Category: "Meat"}.Apply(items)

	want := core.Stats{TotalProducts: 3, TotalUnits: 13, LowStock: 1, OutOfStock: 1}
	if got := core.Aggregate(items); got != want {
		t.Errorf("Aggregate() = %+v, want %+v", got, want)
	}
}
