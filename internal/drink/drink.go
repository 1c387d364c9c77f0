package drink

import "time"

// Drink represents a menu item and maps to the `drink` table. Inactive
// drinks stay in the catalog for admins but are hidden from customers.
type Drink struct {
	ID          int       `json:"drinkId"`
	Name        string    `json:"drinkName"`
	CategoryID  *int      `json:"categoryId,omitempty"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Quantity    int       `json:"quantity"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
