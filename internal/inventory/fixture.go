package inventory

import "github.com/mamadbah2/gildedrose/internal/domain/models"

// FixtureItems returns the stock the inn opens with.
func FixtureItems() []models.Item {
	return []models.Item{
		models.NewItem("+5 Dexterity Vest", 10, 20),
		models.NewItem(AgedBrieName, 2, 0),
		models.NewItem("Elixir of the Mongoose", 5, 7),
		models.NewItem(SulfurasName, 0, 80),
		models.NewItem(SulfurasName, -1, 80),
		models.NewItem(BackstagePassName, 15, 20),
		models.NewItem(BackstagePassName, 10, 49),
		models.NewItem(BackstagePassName, 5, 49),
		models.NewItem("Conjured Mana Cake", 3, 6),
	}
}
