package models

import "fmt"

// SortKey selects the ordering applied to the filtered catalog view.
type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// CategoryAll is the category selection that matches every item.
const CategoryAll = "all"

// ParseSortKey validates a sort key received from the client.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortPopular, SortName, SortPriceLow, SortPriceHigh, SortRating:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key: %q", s)
}

// ViewState holds the transient filter/sort/search selections of a session.
// It is recomputed input, not derived data: the filtered view is rebuilt
// from it on every read.
type ViewState struct {
	Category string  `json:"category"`
	Search   string  `json:"search"`
	Sort     SortKey `json:"sort"`
	CartOpen bool    `json:"cartOpen"`
}

// DefaultViewState is the selection a fresh session starts with.
func DefaultViewState() ViewState {
	return ViewState{
		Category: CategoryAll,
		Search:   "",
		Sort:     SortPopular,
		CartOpen: false,
	}
}
