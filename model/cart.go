package model

import "time"

// CartEntity is the one cart row per customer session. ItemsJSON holds an
// ordered JSON array of car ids; duplicates are allowed.
type CartEntity struct {
	SessionID string    `db:"session_id" json:"session_id"`
	ItemsJSON string    `db:"items_json" json:"items_json"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CartItemRequest struct {
	CarID string `json:"car_id" validate:"required"`
}
