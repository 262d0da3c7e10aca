// Package view derives the displayed catalog from the current filter,
// search and sort selections. All functions are pure: they never mutate
// their input and return fresh slices.
package view

import (
	"strings"

	"github.com/ovenfresh/storefront/internal/models"
)

// Filter returns the items matching the selected category and search text.
// An item is included iff the category matches (or "all" is selected) and
// the search text is a case-insensitive substring of its name or
// description. Empty search text matches everything.
func Filter(items []models.MenuItem, category, search string) []models.MenuItem {
	search = strings.ToLower(strings.TrimSpace(search))

	result := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if category != models.CategoryAll && item.Category != category {
			continue
		}
		if search != "" && !matchesSearch(item, search) {
			continue
		}
		result = append(result, item)
	}
	return result
}

func matchesSearch(item models.MenuItem, search string) bool {
	return strings.Contains(strings.ToLower(item.Name), search) ||
		strings.Contains(strings.ToLower(item.Description), search)
}
