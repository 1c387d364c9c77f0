package cart

// Item is one cart line: a drink with its quantity and option selections.
// Lines merge on (drink, ice, sugar); differing options stay separate lines.
type Item struct {
	DrinkID    int    `json:"drinkId"`
	Quantity   int    `json:"quantity"`
	IceLevel   string `json:"iceLevel"`
	SugarLevel string `json:"sugarLevel"`
}

// DetailedItem is a cart line enriched with drink details for display.
type DetailedItem struct {
	Item
	DrinkName string  `json:"drinkName"`
	UnitPrice float64 `json:"unitPrice"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	LineTotal float64 `json:"lineTotal"`
}
