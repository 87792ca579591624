package models

// MenuItem represents a single dish on the restaurant menu.
type MenuItem struct {
	// ID is the server-assigned identifier of the menu item.
	ID int64 `json:"id"`

	// Title is the display name of the dish.
	Title string `json:"title"`

	// Price is the price of one portion.
	Price float64 `json:"price"`

	// Inventory is the number of portions currently available.
	Inventory int64 `json:"inventory"`
}

// TableName returns the name of the database table
// associated with the MenuItem model.
func (m MenuItem) TableName() string {
	return "menu"
}
