package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	adminapp "github.com/sbmotors/dealership/application/admin"
	authapp "github.com/sbmotors/dealership/application/auth"
	cartapp "github.com/sbmotors/dealership/application/cart"
	datasetapp "github.com/sbmotors/dealership/application/dataset"
	inventoryapp "github.com/sbmotors/dealership/application/inventory"
	leadapp "github.com/sbmotors/dealership/application/lead"
	settingsapp "github.com/sbmotors/dealership/application/settings"
	"github.com/sbmotors/dealership/cmd/config"
	redisclient "github.com/sbmotors/dealership/cmd/redis"
	"github.com/sbmotors/dealership/database"
	_ "github.com/sbmotors/dealership/docs"
	carRepo "github.com/sbmotors/dealership/repository/car"
	cartRepo "github.com/sbmotors/dealership/repository/cart"
	contactRepo "github.com/sbmotors/dealership/repository/contact"
	customerRepo "github.com/sbmotors/dealership/repository/customer"
	employeeRepo "github.com/sbmotors/dealership/repository/employee"
	redisRepo "github.com/sbmotors/dealership/repository/redis"
	saleRepo "github.com/sbmotors/dealership/repository/sale"
	sellRequestRepo "github.com/sbmotors/dealership/repository/sellrequest"
	serviceRepo "github.com/sbmotors/dealership/repository/service"
	sessionRepo "github.com/sbmotors/dealership/repository/session"
	settingsRepo "github.com/sbmotors/dealership/repository/settings"
	txRepo "github.com/sbmotors/dealership/repository/tx"
	"github.com/sbmotors/dealership/thirdparty/rabbitmq"
	"github.com/sbmotors/dealership/transport"
	"github.com/sbmotors/dealership/utils/logger"
	validatorx "github.com/sbmotors/dealership/utils/validator"
)

// @title SB Motors Dealership API
// @version 1.0
// @description Web backend for the SB Motors used-car dealership
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Migrate schema and seed starter data
	if err := database.Migrate(db, cfg.Database.Name); err != nil {
		logger.Fatal("err migrate db", zap.Error(err))
	}
	if err := database.Seed(context.Background(), db, cfg.Auth.AdminPassword); err != nil {
		logger.Fatal("err seed db", zap.Error(err))
	}

	// Initialize Redis client; without it the service runs uncached
	if err := redisclient.New(cfg); err != nil {
		logger.Warn("redis unavailable, caching disabled", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Connect to RabbitMQ; without it sale events are not published
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, sale events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	CarRepo := carRepo.NewCarRepository(db)
	CartRepo := cartRepo.NewCartRepository(db)
	SaleRepo := saleRepo.NewSaleRepository(db)
	CustomerRepo := customerRepo.NewCustomerRepository(db)
	EmployeeRepo := employeeRepo.NewEmployeeRepository(db)
	SellRequestRepo := sellRequestRepo.NewSellRequestRepository(db)
	ServiceRepo := serviceRepo.NewServiceRepository(db)
	ContactRepo := contactRepo.NewContactRepository(db)
	SettingsRepo := settingsRepo.NewSettingsRepository(db)
	CustomerSessions := sessionRepo.NewCustomerSessionRepository(db)
	EmployeeSessions := sessionRepo.NewEmployeeSessionRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, CustomerRepo, EmployeeRepo, CustomerSessions, EmployeeSessions)
	InventoryApp := inventoryapp.NewInventoryApp(cfg, CarRepo, RedisRepo)
	CartApp := cartapp.NewCartApp(TxRepo, CartRepo, CarRepo, SaleRepo, RedisRepo, publisher)
	LeadApp := leadapp.NewLeadApp(TxRepo, SellRequestRepo, ServiceRepo, ContactRepo, CarRepo, SaleRepo, CustomerRepo, RedisRepo)
	AdminApp := adminapp.NewAdminApp(TxRepo, CarRepo, SaleRepo, EmployeeRepo, SellRequestRepo, ServiceRepo, RedisRepo, publisher)
	SettingsApp := settingsapp.NewSettingsApp(cfg, SettingsRepo)
	DatasetApp := datasetapp.NewDatasetApp(TxRepo, CarRepo, EmployeeRepo, CustomerRepo, SaleRepo, SellRequestRepo, ServiceRepo, ContactRepo, CartRepo, RedisRepo)

	importLegacyData(cfg, DatasetApp)

	httpTransport := transport.NewTransport(cfg, AuthApp, InventoryApp, CartApp, LeadApp, AdminApp, SettingsApp, DatasetApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}

// importLegacyData loads data/<table>.csv exports left behind by the previous
// deployment, once; imported files are renamed so a restart does not replay
// them over live data.
func importLegacyData(cfg *config.Config, datasetApp datasetapp.DatasetApp) {
	ctx := context.Background()
	for _, table := range datasetApp.Tables() {
		path := filepath.Join(cfg.Media.DataDir, table+".csv")
		file, err := os.Open(path)
		if err != nil {
			continue
		}

		count, err := datasetApp.Import(ctx, table, file)
		_ = file.Close()
		if err != nil {
			logger.Warn("legacy import failed", zap.String("table", table), zap.Error(err))
			continue
		}
		if err := os.Rename(path, path+".imported"); err != nil {
			logger.Warn("legacy import rename failed", zap.String("table", table), zap.Error(err))
		}
		logger.Info("legacy data imported", zap.String("table", table), zap.Int("rows", count))
	}
}
