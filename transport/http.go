package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	adminapp "github.com/sbmotors/dealership/application/admin"
	authapp "github.com/sbmotors/dealership/application/auth"
	cartapp "github.com/sbmotors/dealership/application/cart"
	datasetapp "github.com/sbmotors/dealership/application/dataset"
	inventoryapp "github.com/sbmotors/dealership/application/inventory"
	leadapp "github.com/sbmotors/dealership/application/lead"
	settingsapp "github.com/sbmotors/dealership/application/settings"
	"github.com/sbmotors/dealership/cmd/config"
)

type RestHandler struct {
	Config       *config.Config
	AuthApp      authapp.AuthApp
	InventoryApp inventoryapp.InventoryApp
	CartApp      cartapp.CartApp
	LeadApp      leadapp.LeadApp
	AdminApp     adminapp.AdminApp
	SettingsApp  settingsapp.SettingsApp
	DatasetApp   datasetapp.DatasetApp
}

func NewTransport(cfg *config.Config, authApp authapp.AuthApp, inventoryApp inventoryapp.InventoryApp, cartApp cartapp.CartApp, leadApp leadapp.LeadApp, adminApp adminapp.AdminApp, settingsApp settingsapp.SettingsApp, datasetApp datasetapp.DatasetApp) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		Config:       cfg,
		AuthApp:      authApp,
		InventoryApp: inventoryApp,
		CartApp:      cartApp,
		LeadApp:      leadApp,
		AdminApp:     adminApp,
		SettingsApp:  settingsApp,
		DatasetApp:   datasetApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Uploaded media
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.Media.StaticDir))))

	// Public routes
	router.HandleFunc("/api/health", rh.Health).Methods(http.MethodGet)
	router.HandleFunc("/api/cars", rh.ListCars).Methods(http.MethodGet)
	router.HandleFunc("/api/cars/{id}", rh.GetCar).Methods(http.MethodGet)
	router.HandleFunc("/api/contact", rh.SubmitContact).Methods(http.MethodPost)
	router.HandleFunc("/api/settings/hero-video", rh.GetHeroVideo).Methods(http.MethodGet)
	router.HandleFunc("/api/settings/logo", rh.GetLogo).Methods(http.MethodGet)
	router.HandleFunc("/api/settings/social-links", rh.GetSocialLinks).Methods(http.MethodGet)

	// Customer auth
	router.HandleFunc("/api/register", rh.RegisterCustomer).Methods(http.MethodPost)
	router.HandleFunc("/api/login", rh.LoginCustomer).Methods(http.MethodPost)
	router.HandleFunc("/api/logout", rh.LogoutCustomer).Methods(http.MethodPost)

	// Customer routes (customer cookie required)
	router.HandleFunc("/api/user", rh.CurrentCustomer).Methods(http.MethodGet)
	router.HandleFunc("/api/profile", rh.Profile).Methods(http.MethodGet)
	router.HandleFunc("/api/cart", rh.ViewCart).Methods(http.MethodGet)
	router.HandleFunc("/api/cart", rh.AddToCart).Methods(http.MethodPost)
	router.HandleFunc("/api/cart/{car_id}", rh.RemoveFromCart).Methods(http.MethodDelete)
	router.HandleFunc("/api/cart", rh.ClearCart).Methods(http.MethodDelete)
	router.HandleFunc("/api/checkout", rh.Checkout).Methods(http.MethodPost)
	router.HandleFunc("/api/sell-requests", rh.SubmitSellRequest).Methods(http.MethodPost)
	router.HandleFunc("/api/services", rh.BookService).Methods(http.MethodPost)

	// Employee auth
	router.HandleFunc("/api/employee/login", rh.LoginEmployee).Methods(http.MethodPost)
	router.HandleFunc("/api/employee/logout", rh.LogoutEmployee).Methods(http.MethodPost)
	router.HandleFunc("/api/employee/check", rh.CheckEmployee).Methods(http.MethodGet)

	// Employee routes (employee cookie required)
	router.HandleFunc("/api/employee/stats", rh.Stats).Methods(http.MethodGet)
	router.HandleFunc("/api/employee/cars", rh.ListAllCars).Methods(http.MethodGet)
	router.HandleFunc("/api/employee/cars", rh.CreateCar).Methods(http.MethodPost)
	router.HandleFunc("/api/employee/cars/{id}", rh.UpdateCar).Methods(http.MethodPut)
	router.HandleFunc("/api/employee/cars/{id}", rh.DeleteCar).Methods(http.MethodDelete)
	router.HandleFunc("/api/employee/sell-requests", rh.ListSellRequests).Methods(http.MethodGet)
	router.HandleFunc("/api/employee/sell-requests/{id}", rh.UpdateSellRequestStatus).Methods(http.MethodPut)
	router.HandleFunc("/api/employee/services", rh.ListServices).Methods(http.MethodGet)
	router.HandleFunc("/api/employee/services/{id}", rh.UpdateServiceStatus).Methods(http.MethodPut)
	router.HandleFunc("/api/employee/contacts", rh.ListContacts).Methods(http.MethodGet)
	router.HandleFunc("/api/employee/sales", rh.ListSales).Methods(http.MethodGet)
	router.HandleFunc("/api/employee/orders", rh.AddOrder).Methods(http.MethodPost)
	router.HandleFunc("/api/employee/orders/{id}", rh.DeleteOrder).Methods(http.MethodDelete)

	// Staff management (admin account only, enforced by the application)
	router.HandleFunc("/api/employee/employees", rh.ListEmployees).Methods(http.MethodGet)
	router.HandleFunc("/api/employee/employees", rh.AddEmployee).Methods(http.MethodPost)
	router.HandleFunc("/api/employee/employees/{username}", rh.UpdateEmployee).Methods(http.MethodPut)
	router.HandleFunc("/api/employee/employees/{username}", rh.RemoveEmployee).Methods(http.MethodDelete)

	// Media and site settings (employee cookie required)
	router.HandleFunc("/api/employee/upload/car-image", rh.UploadCarImage).Methods(http.MethodPost)
	router.HandleFunc("/api/employee/upload/hero-video", rh.UploadHeroVideo).Methods(http.MethodPost)
	router.HandleFunc("/api/employee/upload/logo", rh.UploadLogo).Methods(http.MethodPost)
	router.HandleFunc("/api/employee/settings/hero-video", rh.SetHeroVideo).Methods(http.MethodPut)
	router.HandleFunc("/api/employee/settings/hero-video", rh.RemoveHeroVideo).Methods(http.MethodDelete)
	router.HandleFunc("/api/employee/settings/social-links", rh.SaveSocialLinks).Methods(http.MethodPost)

	// Dataset backup (admin account only, enforced in the handlers)
	router.HandleFunc("/api/employee/export/{table}", rh.ExportTable).Methods(http.MethodGet)
	router.HandleFunc("/api/employee/import/{table}", rh.ImportTable).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(authApp))

	return router
}

// Health handler
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} transport.Response
// @Router /api/health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}
