package model

// EmployeeEntity represents the employees table.
type EmployeeEntity struct {
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
	Name         string `db:"name" json:"name"`
}

type EmployeeLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type EmployeeInfo struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

type AddEmployeeRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
}

// UpdateEmployeeRequest: nil name keeps the current one, empty password keeps
// the current hash.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name"`
	Password string  `json:"password"`
}

type EmployeeCheckResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	Name          string `json:"name,omitempty"`
}
