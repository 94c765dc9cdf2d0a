package model

import "time"

// ServiceEntity represents the services table.
type ServiceEntity struct {
	ServiceID   string    `db:"service_id" json:"service_id"`
	OwnerName   string    `db:"owner_name" json:"owner_name"`
	Phone       string    `db:"phone" json:"phone"`
	CarID       string    `db:"car_id" json:"car_id"`
	ServiceDate string    `db:"service_date" json:"service_date"`
	Notes       string    `db:"notes" json:"notes"`
	Status      string    `db:"status" json:"status"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
}

type ServiceCreate struct {
	OwnerName   string `json:"owner_name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	CarID       string `json:"car_id"`
	ServiceDate string `json:"service_date"`
	Notes       string `json:"notes"`
}
