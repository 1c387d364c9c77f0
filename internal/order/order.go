package order

import "time"

// Item is one line of an order. Name and unit price are snapshots taken at
// checkout so later catalog edits do not rewrite past orders.
type Item struct {
	DrinkID    int     `json:"drinkId"`
	DrinkName  string  `json:"drinkName"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
	IceLevel   string  `json:"iceLevel"`
	SugarLevel string  `json:"sugarLevel"`
}

// HistoryEntry is one immutable line of an order's audit log.
type HistoryEntry struct {
	At     time.Time `json:"at"`
	Action string    `json:"action"`
	Actor  string    `json:"actor"`
}

// Order represents a purchase made by a user. Orders are never deleted,
// only transitioned. Version guards concurrent status updates.
type Order struct {
	ID        int            `json:"orderId"`
	Number    string         `json:"orderNumber"`
	UserID    int            `json:"userId"`
	Items     []Item         `json:"items"`
	Total     float64        `json:"total"`
	Status    Status         `json:"status"`
	Version   int            `json:"version"`
	History   []HistoryEntry `json:"history,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
