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

// ViewCart handler
// @Summary View the cart
// @Description Resolves cart entries into car rows, dropping stale ids
// @Tags Cart
// @Produce json
// @Success 200 {object} transport.Response{data=[]model.Car}
// @Failure 401 {object} transport.Response
// @Router /api/cart [get]
func (s *RestHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	ident, ok := utilsContext.GetCustomer(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	cars, err := s.CartApp.List(r.Context(), ident.Token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, cars)
}

// AddToCart handler
// @Summary Add a car to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.CartItemRequest true "Car to add"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/cart [post]
func (s *RestHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ident, ok := utilsContext.GetCustomer(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	count, err := s.CartApp.Add(r.Context(), ident.Token, req.CarID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]int{"items": count})
}

// RemoveFromCart handler
// @Summary Remove one occurrence of a car from the cart
// @Tags Cart
// @Produce json
// @Param car_id path string true "Car id"
// @Success 200 {object} transport.Response
// @Failure 401 {object} transport.Response
// @Router /api/cart/{car_id} [delete]
func (s *RestHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ident, ok := utilsContext.GetCustomer(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	count, err := s.CartApp.Remove(r.Context(), ident.Token, mux.Vars(r)["car_id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]int{"items": count})
}

// ClearCart handler
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} transport.Response
// @Failure 401 {object} transport.Response
// @Router /api/cart [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ident, ok := utilsContext.GetCustomer(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.CartApp.Clear(r.Context(), ident.Token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "cart cleared"})
}

// Checkout handler
// @Summary Convert the cart into orders
// @Tags Cart
// @Produce json
// @Success 200 {object} transport.Response{data=model.CheckoutResponse}
// @Failure 400 {object} transport.Response
// @Router /api/checkout [post]
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ident, ok := utilsContext.GetCustomer(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	resp, err := s.CartApp.Checkout(r.Context(), ident.Token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, resp)
}
