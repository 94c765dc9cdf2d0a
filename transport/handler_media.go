package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sbmotors/dealership/constant"
	"github.com/sbmotors/dealership/model"
	utilsContext "github.com/sbmotors/dealership/utils/context"
	"github.com/sbmotors/dealership/utils/errors"
)

// maxUploadSize caps multipart uploads at 100 MiB; hero videos are the
// largest legitimate payload.
const maxUploadSize = 100 << 20

func (s *RestHandler) uploadedFile(r *http.Request) (io.ReadCloser, string, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, "", errors.SetCustomError(constant.ErrInvalidRequest)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return file, header.Filename, nil
}

// UploadCarImage handler
// @Summary Upload a car photo
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} transport.Response{data=model.UploadResponse}
// @Failure 400 {object} transport.Response
// @Router /api/employee/upload/car-image [post]
func (s *RestHandler) UploadCarImage(w http.ResponseWriter, r *http.Request) {
	file, filename, err := s.uploadedFile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	defer file.Close()

	resp, err := s.SettingsApp.UploadCarImage(r.Context(), filename, file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, resp)
}

// UploadHeroVideo handler
// @Summary Upload the landing page hero video
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Video file"
// @Success 200 {object} transport.Response{data=model.UploadResponse}
// @Failure 400 {object} transport.Response
// @Router /api/employee/upload/hero-video [post]
func (s *RestHandler) UploadHeroVideo(w http.ResponseWriter, r *http.Request) {
	file, filename, err := s.uploadedFile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	defer file.Close()

	resp, err := s.SettingsApp.UploadHeroVideo(r.Context(), filename, file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, resp)
}

// UploadLogo handler
// @Summary Upload the site logo
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Logo file"
// @Success 200 {object} transport.Response{data=model.UploadResponse}
// @Failure 400 {object} transport.Response
// @Router /api/employee/upload/logo [post]
func (s *RestHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	file, filename, err := s.uploadedFile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	defer file.Close()

	resp, err := s.SettingsApp.UploadLogo(r.Context(), filename, file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, resp)
}

// SetHeroVideo handler
// @Summary Point the hero video at an external URL
// @Tags Media
// @Accept json
// @Produce json
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /api/employee/settings/hero-video [put]
func (s *RestHandler) SetHeroVideo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.SettingsApp.SetHeroVideo(r.Context(), req.URL); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "hero video updated"})
}

// RemoveHeroVideo handler
// @Summary Remove the hero video
// @Tags Media
// @Produce json
// @Success 200 {object} transport.Response
// @Failure 401 {object} transport.Response
// @Router /api/employee/settings/hero-video [delete]
func (s *RestHandler) RemoveHeroVideo(w http.ResponseWriter, r *http.Request) {
	if err := s.SettingsApp.RemoveHeroVideo(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "hero video removed"})
}

// SaveSocialLinks handler
// @Summary Save social profile links
// @Description Empty values clear the corresponding link
// @Tags Media
// @Accept json
// @Produce json
// @Param request body model.SocialLinksRequest true "Links"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /api/employee/settings/social-links [post]
func (s *RestHandler) SaveSocialLinks(w http.ResponseWriter, r *http.Request) {
	var req model.SocialLinksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.SettingsApp.SaveSocialLinks(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "social links saved"})
}

// ExportTable handler
// @Summary Export a table as CSV (admin only)
// @Tags Dataset
// @Produce text/csv
// @Param table path string true "Table name"
// @Success 200 {string} string "CSV payload"
// @Failure 403 {object} transport.Response
// @Router /api/employee/export/{table} [get]
func (s *RestHandler) ExportTable(w http.ResponseWriter, r *http.Request) {
	actor, ok := utilsContext.GetEmployeeUsername(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	if actor != constant.AdminUsername {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	table := mux.Vars(r)["table"]
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", table))
	if err := s.DatasetApp.Export(r.Context(), table, w); err != nil {
		writeError(w, err)
		return
	}
}

// ImportTable handler
// @Summary Replace a table from a CSV upload (admin only)
// @Tags Dataset
// @Accept multipart/form-data
// @Produce json
// @Param table path string true "Table name"
// @Param file formData file true "CSV file"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /api/employee/import/{table} [post]
func (s *RestHandler) ImportTable(w http.ResponseWriter, r *http.Request) {
	actor, ok := utilsContext.GetEmployeeUsername(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	if actor != constant.AdminUsername {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	file, _, err := s.uploadedFile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	defer file.Close()

	count, err := s.DatasetApp.Import(r.Context(), mux.Vars(r)["table"], file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]int{"imported": count})
}
