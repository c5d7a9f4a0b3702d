package models

import "time"

type OrderStatus string

const (
	// OrderStatusPending is the only status an order reaches today; the
	// field is kept for the usual confirmation/shipping flow later.
	OrderStatusPending OrderStatus = "pending"
)

// Order is an immutable snapshot of a cart at checkout time. Orders are
// append-only; a user may have many.
type Order struct {
	ID              string      `bson:"id" json:"id"`
	UserID          string      `bson:"user_id" json:"user_id"`
	Items           []CartItem  `bson:"items" json:"items"`
	Subtotal        float64     `bson:"subtotal" json:"subtotal"`
	CourierCharges  float64     `bson:"courier_charges" json:"courier_charges"`
	TotalAmount     float64     `bson:"total_amount" json:"total_amount"`
	DeliveryAddress string      `bson:"delivery_address" json:"delivery_address"`
	Pincode         string      `bson:"pincode" json:"pincode"`
	Phone           string      `bson:"phone" json:"phone"`
	State           string      `bson:"state" json:"state"`
	Status          OrderStatus `bson:"status" json:"status"`
	CreatedAt       time.Time   `bson:"created_at" json:"created_at"`
}
