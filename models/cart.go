package models

import "time"

type Cart struct {
	ID          string     `bson:"id" json:"id"`
	UserID      string     `bson:"user_id" json:"user_id"` // one cart per user
	Items       []CartItem `bson:"items" json:"items"`
	TotalAmount float64    `bson:"total_amount" json:"total_amount"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

// CartItem captures the unit price at add-time; it is not re-read from the
// menu afterwards.
type CartItem struct {
	MenuItemID string  `bson:"menu_item_id" json:"menu_item_id"`
	Quantity   int     `bson:"quantity" json:"quantity"`
	Price      float64 `bson:"price" json:"price"`
}

// RecalculateTotal restores the cart invariant
// total_amount == Σ quantity × price.
func (c *Cart) RecalculateTotal() {
	var total float64
	for _, item := range c.Items {
		total += float64(item.Quantity) * item.Price
	}
	c.TotalAmount = total
}

// TotalQuantity is the summed item count, used as total weight in KG for
// courier pricing.
func (c *Cart) TotalQuantity() int {
	var qty int
	for _, item := range c.Items {
		qty += item.Quantity
	}
	return qty
}
