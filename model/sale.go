package model

import "time"

// SaleEntity represents the sales table. SessionID is the customer session
// token that was active at purchase time.
type SaleEntity struct {
	OrderID   string    `db:"order_id" json:"order_id"`
	SessionID string    `db:"session_id" json:"session_id"`
	CarID     string    `db:"car_id" json:"car_id"`
	Price     int64     `db:"price" json:"price"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

// SaleListItem is a sale joined with its car's display name.
type SaleListItem struct {
	OrderID   string    `json:"order_id"`
	CarID     string    `json:"car_id"`
	CarName   string    `json:"car_name"`
	Price     int64     `json:"price"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
}

type AddOrderRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	CarID     string `json:"car_id" validate:"required"`
	Price     int64  `json:"price" validate:"gte=0"`
}

type CheckoutResponse struct {
	Message string   `json:"message"`
	Orders  []string `json:"order_ids"`
}
