// Package inventory holds the per-category rules that age items by one day.
package inventory

// Names that select a special rule. Any other name is a regular item.
const (
	AgedBrieName      = "Aged Brie"
	SulfurasName      = "Sulfuras, Hand of Ragnaros"
	BackstagePassName = "Backstage passes to a TAFKAL80ETC concert"
)

// Category is the closed set of rules an item can follow.
type Category int

const (
	Regular Category = iota
	AgedBrie
	Legendary
	BackstagePass
)

var categoryNames = [...]string{
	Regular:       "regular",
	AgedBrie:      "aged_brie",
	Legendary:     "legendary",
	BackstagePass: "backstage_pass",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

var categoriesByName = map[string]Category{
	AgedBrieName:      AgedBrie,
	SulfurasName:      Legendary,
	BackstagePassName: BackstagePass,
}

// CategoryOf returns the rule category for an item name. Unknown names are Regular.
func CategoryOf(name string) Category {
	if c, ok := categoriesByName[name]; ok {
		return c
	}
	return Regular
}
