package reporting

import (
	"fmt"
	"strings"

	"github.com/mamadbah2/gildedrose/internal/domain/models"
	"github.com/mamadbah2/gildedrose/internal/inventory"
)

const (
	dateLayout = "2006-01-02"
	header     = "name, sellIn, quality"
)

// FormatDay renders the inventory block printed for a single day.
func FormatDay(day int, items []models.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-------- day %d --------\n", day)
	b.WriteString(header)
	b.WriteByte('\n')
	for _, item := range items {
		b.WriteString(item.String())
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

// Summarize counts the notable items of a snapshot.
func Summarize(snapshot models.Snapshot) models.Summary {
	summary := models.Summary{Day: snapshot.Day, Total: len(snapshot.Items)}
	for _, item := range snapshot.Items {
		if inventory.CategoryOf(item.Name) == inventory.Legendary {
			continue
		}
		if inventory.IsExpired(item) {
			summary.Expired++
		}
		if item.Quality >= inventory.MaxQuality {
			summary.AtMaxQuality++
		}
		if item.Quality <= inventory.MinQuality {
			summary.Worthless++
		}
	}
	return summary
}

// Message builds the notification body sent after a day has been applied.
func Message(snapshot models.Snapshot) string {
	s := Summarize(snapshot)

	var b strings.Builder
	fmt.Fprintf(&b, "Inventory day %d (%s)\n", s.Day, snapshot.Date.Format(dateLayout))
	fmt.Fprintf(&b, "%d items, %d expired, %d at max quality, %d worthless.\n\n", s.Total, s.Expired, s.AtMaxQuality, s.Worthless)
	b.WriteString(FormatDay(snapshot.Day, snapshot.Items))
	return strings.TrimRight(b.String(), "\n")
}
