package model

// Car is a row of the cars table. Price and mileage are whole INR/km values.
type Car struct {
	ID           string `db:"id" json:"id"`
	Make         string `db:"make" json:"make"`
	Model        string `db:"model" json:"model"`
	Year         int    `db:"year" json:"year"`
	Price        int64  `db:"price" json:"price"`
	Mileage      int64  `db:"mileage" json:"mileage"`
	Fuel         string `db:"fuel" json:"fuel"`
	Transmission string `db:"transmission" json:"transmission"`
	Owner        string `db:"owner" json:"owner"`
	Type         string `db:"type" json:"type"`
	Image        string `db:"image" json:"image"`
	Description  string `db:"description" json:"description"`
	Status       string `db:"status" json:"status"`
}

type CreateCarRequest struct {
	Make         string `json:"make" validate:"required"`
	Model        string `json:"model" validate:"required"`
	Year         int    `json:"year" validate:"required,gt=1900"`
	Price        int64  `json:"price" validate:"gte=0"`
	Mileage      int64  `json:"mileage" validate:"gte=0"`
	Fuel         string `json:"fuel"`
	Transmission string `json:"transmission"`
	Owner        string `json:"owner"`
	Type         string `json:"type"`
	Image        string `json:"image"`
	Description  string `json:"description"`
	Status       string `json:"status"`
}

// UpdateCarRequest carries only the fields to overwrite; nil means keep.
type UpdateCarRequest struct {
	Make         *string `json:"make"`
	Model        *string `json:"model"`
	Year         *int    `json:"year"`
	Price        *int64  `json:"price"`
	Mileage      *int64  `json:"mileage"`
	Fuel         *string `json:"fuel"`
	Transmission *string `json:"transmission"`
	Owner        *string `json:"owner"`
	Type         *string `json:"type"`
	Image        *string `json:"image"`
	Description  *string `json:"description"`
	Status       *string `json:"status"`
}
