package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sbmotors/dealership/constant"
	"github.com/sbmotors/dealership/model"
	utilsContext "github.com/sbmotors/dealership/utils/context"
	"github.com/sbmotors/dealership/utils/errors"
	validatorx "github.com/sbmotors/dealership/utils/validator"
)

// LoginEmployee handler
// @Summary Employee login
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body model.EmployeeLoginRequest true "Credentials"
// @Success 200 {object} transport.Response{data=model.EmployeeInfo}
// @Failure 401 {object} transport.Response
// @Router /api/employee/login [post]
func (s *RestHandler) LoginEmployee(w http.ResponseWriter, r *http.Request) {
	var req model.EmployeeLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	token, info, err := s.AuthApp.LoginEmployee(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	setSessionCookie(w, constant.EmployeeSessionCookie, token, s.Config.Auth.EmployeeCookieMaxAge)
	writeSuccess(w, info)
}

// LogoutEmployee handler
// @Summary Employee logout
// @Tags Employee
// @Produce json
// @Success 200 {object} transport.Response
// @Router /api/employee/logout [post]
func (s *RestHandler) LogoutEmployee(w http.ResponseWriter, r *http.Request) {
	token := cookieValue(r, constant.EmployeeSessionCookie)
	if err := s.AuthApp.LogoutEmployee(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	clearSessionCookie(w, constant.EmployeeSessionCookie)
	writeSuccess(w, map[string]string{"message": "logged out"})
}

// CheckEmployee handler
// @Summary Check the employee session
// @Description Reports whether the dashboard cookie is still valid
// @Tags Employee
// @Produce json
// @Success 200 {object} transport.Response{data=model.EmployeeCheckResponse}
// @Router /api/employee/check [get]
func (s *RestHandler) CheckEmployee(w http.ResponseWriter, r *http.Request) {
	token := cookieValue(r, constant.EmployeeSessionCookie)
	resp, err := s.AuthApp.CheckEmployee(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, resp)
}

// Stats handler
// @Summary Dashboard statistics
// @Tags Employee
// @Produce json
// @Success 200 {object} transport.Response{data=model.StatsResponse}
// @Failure 401 {object} transport.Response
// @Router /api/employee/stats [get]
func (s *RestHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.AdminApp.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, stats)
}

// ListAllCars handler
// @Summary List all cars for the dashboard
// @Tags Employee
// @Produce json
// @Success 200 {object} transport.Response{data=[]model.Car}
// @Failure 401 {object} transport.Response
// @Router /api/employee/cars [get]
func (s *RestHandler) ListAllCars(w http.ResponseWriter, r *http.Request) {
	cars, err := s.InventoryApp.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, cars)
}

// CreateCar handler
// @Summary Add a car to inventory
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body model.CreateCarRequest true "New car"
// @Success 200 {object} transport.Response{data=model.Car}
// @Failure 400 {object} transport.Response
// @Router /api/employee/cars [post]
func (s *RestHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	car, err := s.InventoryApp.CreateCar(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, car)
}

// UpdateCar handler
// @Summary Update a car
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Car id"
// @Param request body model.UpdateCarRequest true "Fields to overwrite"
// @Success 200 {object} transport.Response{data=model.Car}
// @Failure 404 {object} transport.Response
// @Router /api/employee/cars/{id} [put]
func (s *RestHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	car, err := s.InventoryApp.UpdateCar(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, car)
}

// DeleteCar handler
// @Summary Remove a car
// @Tags Employee
// @Produce json
// @Param id path string true "Car id"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/employee/cars/{id} [delete]
func (s *RestHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	if err := s.InventoryApp.DeleteCar(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "car deleted"})
}

// ListSellRequests handler
// @Summary List sell requests
// @Tags Employee
// @Produce json
// @Success 200 {object} transport.Response{data=[]model.SellRequestEntity}
// @Failure 401 {object} transport.Response
// @Router /api/employee/sell-requests [get]
func (s *RestHandler) ListSellRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := s.LeadApp.ListSellRequests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, reqs)
}

// UpdateSellRequestStatus handler
// @Summary Update a sell request's status
// @Description Approving also creates the offered car in inventory
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Request id"
// @Param request body model.UpdateStatusRequest true "New status"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/employee/sell-requests/{id} [put]
func (s *RestHandler) UpdateSellRequestStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.LeadApp.UpdateSellRequestStatus(r.Context(), mux.Vars(r)["id"], req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "status updated"})
}

// ListServices handler
// @Summary List service bookings
// @Tags Employee
// @Produce json
// @Success 200 {object} transport.Response{data=[]model.ServiceEntity}
// @Failure 401 {object} transport.Response
// @Router /api/employee/services [get]
func (s *RestHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := s.LeadApp.ListServices(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, services)
}

// UpdateServiceStatus handler
// @Summary Update a service booking's status
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Service id"
// @Param request body model.UpdateStatusRequest true "New status"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/employee/services/{id} [put]
func (s *RestHandler) UpdateServiceStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.LeadApp.UpdateServiceStatus(r.Context(), mux.Vars(r)["id"], req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "status updated"})
}

// ListContacts handler
// @Summary List contact messages
// @Tags Employee
// @Produce json
// @Success 200 {object} transport.Response{data=[]model.ContactEntity}
// @Failure 401 {object} transport.Response
// @Router /api/employee/contacts [get]
func (s *RestHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.LeadApp.ListContacts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, contacts)
}

// ListSales handler
// @Summary Sales ledger with car names
// @Tags Employee
// @Produce json
// @Success 200 {object} transport.Response{data=[]model.SaleListItem}
// @Failure 401 {object} transport.Response
// @Router /api/employee/sales [get]
func (s *RestHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	sales, err := s.AdminApp.ListSales(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, sales)
}

// AddOrder handler
// @Summary Record a walk-in sale
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body model.AddOrderRequest true "Sale"
// @Success 200 {object} transport.Response{data=model.SaleEntity}
// @Failure 404 {object} transport.Response
// @Router /api/employee/orders [post]
func (s *RestHandler) AddOrder(w http.ResponseWriter, r *http.Request) {
	var req model.AddOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	sale, err := s.AdminApp.AddOrder(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, sale)
}

// DeleteOrder handler
// @Summary Delete a sale row
// @Tags Employee
// @Produce json
// @Param id path string true "Order id"
// @Success 200 {object} transport.Response
// @Failure 401 {object} transport.Response
// @Router /api/employee/orders/{id} [delete]
func (s *RestHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := s.AdminApp.DeleteOrder(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "order deleted"})
}

// ListEmployees handler
// @Summary List staff accounts (admin only)
// @Tags Employee
// @Produce json
// @Success 200 {object} transport.Response{data=[]model.EmployeeInfo}
// @Failure 403 {object} transport.Response
// @Router /api/employee/employees [get]
func (s *RestHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	actor, ok := utilsContext.GetEmployeeUsername(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	employees, err := s.AdminApp.ListEmployees(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, employees)
}

// AddEmployee handler
// @Summary Add a staff account (admin only)
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body model.AddEmployeeRequest true "New employee"
// @Success 200 {object} transport.Response
// @Failure 403 {object} transport.Response
// @Router /api/employee/employees [post]
func (s *RestHandler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	actor, ok := utilsContext.GetEmployeeUsername(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.AddEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdminApp.AddEmployee(r.Context(), actor, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "employee added"})
}

// UpdateEmployee handler
// @Summary Update a staff account (admin only)
// @Tags Employee
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param request body model.UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/employee/employees/{username} [put]
func (s *RestHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	actor, ok := utilsContext.GetEmployeeUsername(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdminApp.UpdateEmployee(r.Context(), actor, mux.Vars(r)["username"], &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "employee updated"})
}

// RemoveEmployee handler
// @Summary Remove a staff account (admin only)
// @Tags Employee
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} transport.Response
// @Failure 403 {object} transport.Response
// @Router /api/employee/employees/{username} [delete]
func (s *RestHandler) RemoveEmployee(w http.ResponseWriter, r *http.Request) {
	actor, ok := utilsContext.GetEmployeeUsername(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.AdminApp.RemoveEmployee(r.Context(), actor, mux.Vars(r)["username"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "employee removed"})
}
