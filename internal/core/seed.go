package core

import "github.com/shopspring/decimal"

// SeedCatalog is the starter catalog loaded into an empty store so the grid
// has something to show on first boot.
func SeedCatalog() []Item {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return []Item{
		{Name: "Sourdough Loaf", Category: "Baked Goods", Quantity: 18, Price: price("7.50"), ReorderLevel: 6,
			Image: "https://images.unsplash.com/photo-1585478259715-876acc5be8eb?w=400&h=400&fit=crop"},
		{Name: "Cinnamon Rolls", Category: "Baked Goods", Quantity: 4, Price: price("12.00"), ReorderLevel: 8,
			Image: "https://images.unsplash.com/photo-1509365465985-25d11c17e812?w=400&h=400&fit=crop"},
		{Name: "Blueberry Muffins", Category: "Baked Goods", Quantity: 24, Price: price("9.00"), ReorderLevel: 10,
			Image: "https://images.unsplash.com/photo-1607958996333-41aef7caefaa?w=400&h=400&fit=crop"},
		{Name: "Apple Pie", Category: "Baked Goods", Quantity: 0, Price: price("16.00"), ReorderLevel: 4,
			Image: "https://images.unsplash.com/photo-1535920527002-b35e96722969?w=400&h=400&fit=crop"},
		{Name: "Ground Beef 1lb", Category: "Meat", Quantity: 32, Price: price("8.99"), ReorderLevel: 12,
			Image: "https://images.unsplash.com/photo-1603048297172-c92544798d5a?w=400&h=400&fit=crop"},
		{Name: "Pork Sausage", Category: "Meat", Quantity: 9, Price: price("6.49"), ReorderLevel: 10,
			Image: "https://images.unsplash.com/photo-1597712679225-e7f8cd090f10?w=400&h=400&fit=crop"},
		{Name: "Whole Chicken", Category: "Meat", Quantity: 14, Price: price("11.25"), ReorderLevel: 6,
			Image: "https://images.unsplash.com/photo-1587593810167-a84920ea0781?w=400&h=400&fit=crop"},
		{Name: "Smoked Bacon", Category: "Meat", Quantity: 0, Price: price("9.75"), ReorderLevel: 8,
			Image: "https://images.unsplash.com/photo-1528607929212-2636ec44253e?w=400&h=400&fit=crop"},
		{Name: "Goat Milk Soap", Category: "Self Care", Quantity: 41, Price: price("5.50"), ReorderLevel: 15,
			Image: "https://images.unsplash.com/photo-1600857544200-b2f666a9a2ec?w=400&h=400&fit=crop"},
		{Name: "Lavender Lotion", Category: "Self Care", Quantity: 7, Price: price("13.00"), ReorderLevel: 10,
			Image: "https://images.unsplash.com/photo-1556228720-195a672e8a03?w=400&h=400&fit=crop"},
		{Name: "Beeswax Lip Balm", Category: "Self Care", Quantity: 58, Price: price("3.25"), ReorderLevel: 20,
			Image: "https://images.unsplash.com/photo-1599305090598-fe179d501227?w=400&h=400&fit=crop"},
		{Name: "Honey Bath Bar", Category: "Self Care", Quantity: 12, Price: price("6.00"), ReorderLevel: 12,
			Image: "https://images.unsplash.com/photo-1607006344380-b6775a0824a7?w=400&h=400&fit=crop"},
	}
}
