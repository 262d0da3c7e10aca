package models

// MenuItem represents one orderable item in the catalog.
// Items are created once at load time and never mutated.
type MenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Popular     bool    `json:"popular,omitempty"`
	PrepTime    string  `json:"prepTime"`
}

// Category is a static grouping of menu items.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Catalog is the dataset shape read once at startup.
type Catalog struct {
	Items      []MenuItem `json:"items"`
	Categories []Category `json:"categories"`
}
