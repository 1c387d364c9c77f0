// Package review holds customer ratings and comments on drinks.
package review

import "time"

type Review struct {
	ID        int       `json:"id"`
	DrinkID   int       `json:"drinkId"`
	UserID    int       `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
