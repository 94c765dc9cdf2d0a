package model

import "time"

// CustomerEntity represents the customers table. Phone is the login identity.
type CustomerEntity struct {
	Phone        string    `db:"phone" json:"phone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type CustomerRegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type CustomerLoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CustomerInfo struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CustomerIdentity is what the auth guard resolves a customer cookie into.
type CustomerIdentity struct {
	Token string `json:"token"`
	Phone string `json:"phone"`
}

// ProfileResponse aggregates everything tied to a customer account.
type ProfileResponse struct {
	User         CustomerInfo         `json:"user"`
	Orders       []ProfileOrder       `json:"orders"`
	SellRequests []ProfileSellRequest `json:"sell_requests"`
	Services     []ProfileService     `json:"services"`
}

type ProfileOrder struct {
	OrderID   string    `json:"order_id"`
	CarID     string    `json:"car_id"`
	CarName   string    `json:"car_name"`
	Year      int       `json:"year"`
	Price     int64     `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

type ProfileSellRequest struct {
	RequestID   string    `json:"request_id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	AskingPrice int64     `json:"asking_price"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

type ProfileService struct {
	ServiceID   string    `json:"service_id"`
	CarID       string    `json:"car_id"`
	ServiceDate string    `json:"service_date"`
	Notes       string    `json:"notes"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}
