package model

import "time"

// SellRequestEntity represents the sell_requests table.
type SellRequestEntity struct {
	RequestID   string    `db:"request_id" json:"request_id"`
	OwnerName   string    `db:"owner_name" json:"owner_name"`
	Phone       string    `db:"phone" json:"phone"`
	Make        string    `db:"make" json:"make"`
	Model       string    `db:"model" json:"model"`
	Year        int       `db:"year" json:"year"`
	AskingPrice int64     `db:"asking_price" json:"asking_price"`
	Notes       string    `db:"notes" json:"notes"`
	Status      string    `db:"status" json:"status"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
}

type SellRequestCreate struct {
	OwnerName   string `json:"owner_name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Make        string `json:"make" validate:"required"`
	Model       string `json:"model" validate:"required"`
	Year        int    `json:"year" validate:"required,gt=1900"`
	AskingPrice int64  `json:"asking_price" validate:"required,gt=0"`
	Notes       string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
