package transport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbmotors/dealership/constant"
	"github.com/sbmotors/dealership/model"
	utilsContext "github.com/sbmotors/dealership/utils/context"
	"github.com/sbmotors/dealership/utils/errors"
	validatorx "github.com/sbmotors/dealership/utils/validator"
)

func setSessionCookie(w http.ResponseWriter, name, token string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// RegisterCustomer handler
// @Summary Register a customer account
// @Description Registers by phone number and logs the customer in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.CustomerRegisterRequest true "Registration"
// @Success 200 {object} transport.Response{data=model.CustomerInfo}
// @Failure 400 {object} transport.Response
// @Router /api/register [post]
func (s *RestHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req model.CustomerRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	token, info, err := s.AuthApp.RegisterCustomer(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	setSessionCookie(w, constant.CustomerSessionCookie, token, s.Config.Auth.CustomerCookieMaxAge)
	writeSuccess(w, info)
}

// LoginCustomer handler
// @Summary Customer login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.CustomerLoginRequest true "Credentials"
// @Success 200 {object} transport.Response{data=model.CustomerInfo}
// @Failure 401 {object} transport.Response
// @Router /api/login [post]
func (s *RestHandler) LoginCustomer(w http.ResponseWriter, r *http.Request) {
	var req model.CustomerLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	token, info, err := s.AuthApp.LoginCustomer(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	setSessionCookie(w, constant.CustomerSessionCookie, token, s.Config.Auth.CustomerCookieMaxAge)
	writeSuccess(w, info)
}

// LogoutCustomer handler
// @Summary Customer logout
// @Tags Auth
// @Produce json
// @Success 200 {object} transport.Response
// @Router /api/logout [post]
func (s *RestHandler) LogoutCustomer(w http.ResponseWriter, r *http.Request) {
	token := cookieValue(r, constant.CustomerSessionCookie)
	if err := s.AuthApp.LogoutCustomer(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	clearSessionCookie(w, constant.CustomerSessionCookie)
	writeSuccess(w, map[string]string{"message": "logged out"})
}

// CurrentCustomer handler
// @Summary Current customer
// @Tags Auth
// @Produce json
// @Success 200 {object} transport.Response{data=model.CustomerInfo}
// @Failure 401 {object} transport.Response
// @Router /api/user [get]
func (s *RestHandler) CurrentCustomer(w http.ResponseWriter, r *http.Request) {
	ident, ok := utilsContext.GetCustomer(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	info, err := s.AuthApp.GetCustomerInfo(r.Context(), ident.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, info)
}

// Profile handler
// @Summary Customer profile with orders, sell requests and services
// @Tags Auth
// @Produce json
// @Success 200 {object} transport.Response{data=model.ProfileResponse}
// @Failure 401 {object} transport.Response
// @Router /api/profile [get]
func (s *RestHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ident, ok := utilsContext.GetCustomer(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	profile, err := s.LeadApp.Profile(r.Context(), ident.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, profile)
}

// SubmitSellRequest handler
// @Summary Offer a car to the dealership
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body model.SellRequestCreate true "Sell request"
// @Success 200 {object} transport.Response{data=model.SellRequestEntity}
// @Failure 400 {object} transport.Response
// @Router /api/sell-requests [post]
func (s *RestHandler) SubmitSellRequest(w http.ResponseWriter, r *http.Request) {
	ident, ok := utilsContext.GetCustomer(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.SellRequestCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	entity, err := s.LeadApp.SubmitSellRequest(r.Context(), ident.Phone, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, entity)
}

// BookService handler
// @Summary Book a service slot
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body model.ServiceCreate true "Service booking"
// @Success 200 {object} transport.Response{data=model.ServiceEntity}
// @Failure 400 {object} transport.Response
// @Router /api/services [post]
func (s *RestHandler) BookService(w http.ResponseWriter, r *http.Request) {
	ident, ok := utilsContext.GetCustomer(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ServiceCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	entity, err := s.LeadApp.BookService(r.Context(), ident.Phone, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, entity)
}
