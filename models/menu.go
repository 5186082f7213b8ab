package models

// MenuItem is a single dish on the cafeteria menu for a given weekday.
type MenuItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// Weekday is the ISO weekday the item is served on (1 = Monday).
	Weekday int `json:"weekday"`

	// PriceCents is the item price in integer cents to avoid floating-point
	// money arithmetic.
	PriceCents int64 `json:"price_cents"`
}
