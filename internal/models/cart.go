package models

// CartLine is one row in the cart: a distinct item and its quantity.
// Display fields are copied from the item at insertion time so the cart
// renders without a catalog lookup.
type CartLine struct {
	ItemID   int64   `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}
