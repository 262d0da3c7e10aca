package view

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ovenfresh/storefront/internal/models"
)

// Sort orders items by the given key and returns a new slice; the input is
// never modified. "popular" is a stable partition (flagged items first,
// ties keep catalog order); an unknown key returns the input order.
func Sort(items []models.MenuItem, key models.SortKey) []models.MenuItem {
	sorted := make([]models.MenuItem, len(items))
	copy(sorted, items)

	switch key {
	case models.SortPopular:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Popular && !sorted[j].Popular
		})
	case models.SortName:
		c := collate.New(language.English)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case models.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case models.SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	}

	return sorted
}
