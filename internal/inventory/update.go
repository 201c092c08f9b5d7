package inventory

import "github.com/mamadbah2/gildedrose/internal/domain/models"

// Advance moves a single item forward by one day using the rule for its name.
func Advance(item *models.Item) {
	rules[CategoryOf(item.Name)](item)
}

// UpdateQuality advances every item by one day. Items are mutated in place and
// keep their order.
func UpdateQuality(items []models.Item) {
	for i := range items {
		Advance(&items[i])
	}
}

// Simulate applies UpdateQuality the given number of times. Non-positive day counts do nothing.
func Simulate(items []models.Item, days int) {
	for d := 0; d < days; d++ {
		UpdateQuality(items)
	}
}

// IsExpired reports whether the item is past its sell-by date. Legendary items never expire.
func IsExpired(item models.Item) bool {
	return CategoryOf(item.Name) != Legendary && item.SellIn < 0
}
