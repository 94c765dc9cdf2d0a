package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sbmotors/dealership/constant"
	"github.com/sbmotors/dealership/model"
	"github.com/sbmotors/dealership/utils/errors"
	validatorx "github.com/sbmotors/dealership/utils/validator"
)

// ListCars handler
// @Summary List cars
// @Description List the catalogue, optionally filtered by body type
// @Tags Cars
// @Produce json
// @Param type query string false "Body type filter, 'all' disables"
// @Success 200 {object} transport.Response{data=[]model.Car}
// @Router /api/cars [get]
func (s *RestHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := s.InventoryApp.ListPublic(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, cars)
}

// GetCar handler
// @Summary Get one car
// @Tags Cars
// @Produce json
// @Param id path string true "Car id"
// @Success 200 {object} transport.Response{data=model.Car}
// @Failure 404 {object} transport.Response
// @Router /api/cars/{id} [get]
func (s *RestHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	car, err := s.InventoryApp.GetCar(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, car)
}

// SubmitContact handler
// @Summary Submit a contact message
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body model.ContactCreate true "Contact message"
// @Success 200 {object} transport.Response{data=model.ContactEntity}
// @Failure 400 {object} transport.Response
// @Router /api/contact [post]
func (s *RestHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req model.ContactCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	contact, err := s.LeadApp.SubmitContact(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, contact)
}

// GetHeroVideo handler
// @Summary Landing page hero video URL
// @Tags Settings
// @Produce json
// @Success 200 {object} transport.Response
// @Router /api/settings/hero-video [get]
func (s *RestHandler) GetHeroVideo(w http.ResponseWriter, r *http.Request) {
	url, err := s.SettingsApp.HeroVideo(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"url": url})
}

// GetLogo handler
// @Summary Site logo URL
// @Tags Settings
// @Produce json
// @Success 200 {object} transport.Response
// @Router /api/settings/logo [get]
func (s *RestHandler) GetLogo(w http.ResponseWriter, r *http.Request) {
	url, err := s.SettingsApp.LogoURL(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"url": url})
}

// GetSocialLinks handler
// @Summary Social profile links
// @Tags Settings
// @Produce json
// @Success 200 {object} transport.Response{data=model.SocialLinksResponse}
// @Router /api/settings/social-links [get]
func (s *RestHandler) GetSocialLinks(w http.ResponseWriter, r *http.Request) {
	links, err := s.SettingsApp.SocialLinks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, links)
}
