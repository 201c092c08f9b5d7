package inventory

import "github.com/mamadbah2/gildedrose/internal/domain/models"

// Quality bounds for every non-legendary item.
const (
	MinQuality = 0
	MaxQuality = 50
)

// Backstage pass thresholds, compared against sellIn after it has been decremented.
const (
	backstageDoubleBelow = 10
	backstageTripleBelow = 5
)

type rule func(item *models.Item)

var rules = [...]rule{
	Regular:       updateRegular,
	AgedBrie:      updateAgedBrie,
	Legendary:     updateLegendary,
	BackstagePass: updateBackstagePass,
}

func updateRegular(item *models.Item) {
	item.SellIn--
	item.Quality--
	if item.SellIn < 0 {
		item.Quality--
	}
	item.Quality = clampQuality(item.Quality)
}

func updateAgedBrie(item *models.Item) {
	item.SellIn--
	item.Quality++
	if item.SellIn < 0 {
		item.Quality++
	}
	item.Quality = clampQuality(item.Quality)
}

// Legendary items never change and are not bound by the quality range.
func updateLegendary(*models.Item) {}

func updateBackstagePass(item *models.Item) {
	item.SellIn--
	item.Quality++
	if item.SellIn < backstageDoubleBelow {
		item.Quality++
	}
	if item.SellIn < backstageTripleBelow {
		item.Quality++
	}
	if item.SellIn < 0 {
		item.Quality = 0
	}
	item.Quality = clampQuality(item.Quality)
}

func clampQuality(q int) int {
	if q > MaxQuality {
		return MaxQuality
	}
	if q < MinQuality {
		return MinQuality
	}
	return q
}
