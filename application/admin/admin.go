package admin

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbmotors/dealership/constant"
	"github.com/sbmotors/dealership/model"
	carrepo "github.com/sbmotors/dealership/repository/car"
	employeerepo "github.com/sbmotors/dealership/repository/employee"
	redisrepo "github.com/sbmotors/dealership/repository/redis"
	salerepo "github.com/sbmotors/dealership/repository/sale"
	sellrequestrepo "github.com/sbmotors/dealership/repository/sellrequest"
	servicerepo "github.com/sbmotors/dealership/repository/service"
	txrepo "github.com/sbmotors/dealership/repository/tx"
	"github.com/sbmotors/dealership/thirdparty/rabbitmq"
	"github.com/sbmotors/dealership/utils/errors"
	"github.com/sbmotors/dealership/utils/ident"
	"github.com/sbmotors/dealership/utils/logger"
)

// AdminApp is the employee dashboard backend: aggregate stats, sales ledger,
// manual orders, and staff management. Staff management is restricted to the
// admin account; callers pass the acting employee's username.
type AdminApp interface {
	Stats(ctx context.Context) (*model.StatsResponse, error)
	ListSales(ctx context.Context) ([]model.SaleListItem, error)
	AddOrder(ctx context.Context, req *model.AddOrderRequest) (*model.SaleEntity, error)
	DeleteOrder(ctx context.Context, orderID string) error

	ListEmployees(ctx context.Context, actor string) ([]model.EmployeeInfo, error)
	AddEmployee(ctx context.Context, actor string, req *model.AddEmployeeRequest) error
	UpdateEmployee(ctx context.Context, actor, username string, req *model.UpdateEmployeeRequest) error
	RemoveEmployee(ctx context.Context, actor, username string) error
}

type adminAppImpl struct {
	txRepo          txrepo.TxRepository
	carRepo         carrepo.CarRepository
	saleRepo        salerepo.SaleRepository
	employeeRepo    employeerepo.EmployeeRepository
	sellRequestRepo sellrequestrepo.SellRequestRepository
	serviceRepo     servicerepo.ServiceRepository
	redisRepo       redisrepo.Repository
	publisher       *rabbitmq.Publisher
}

func NewAdminApp(txRepo txrepo.TxRepository, carRepo carrepo.CarRepository, saleRepo salerepo.SaleRepository, employeeRepo employeerepo.EmployeeRepository, sellRequestRepo sellrequestrepo.SellRequestRepository, serviceRepo servicerepo.ServiceRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) AdminApp {
	return &adminAppImpl{
		txRepo:          txRepo,
		carRepo:         carRepo,
		saleRepo:        saleRepo,
		employeeRepo:    employeeRepo,
		sellRequestRepo: sellRequestRepo,
		serviceRepo:     serviceRepo,
		redisRepo:       redisRepo,
		publisher:       publisher,
	}
}

func (s *adminAppImpl) Stats(ctx context.Context) (*model.StatsResponse, error) {
	totalCars, err := s.carRepo.Count(ctx)
	if err != nil {
		logger.Error("[Stats] count cars", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	availableCars, err := s.carRepo.CountByStatus(ctx, constant.CarStatusAvailable)
	if err != nil {
		logger.Error("[Stats] count available cars", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	totalSales, err := s.saleRepo.Count(ctx)
	if err != nil {
		logger.Error("[Stats] count sales", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	pendingSellRequests, err := s.sellRequestRepo.CountByStatus(ctx, constant.SellRequestStatusPending)
	if err != nil {
		logger.Error("[Stats] count sell requests", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	pendingServices, err := s.serviceRepo.CountByStatus(ctx, constant.ServiceStatusScheduled)
	if err != nil {
		logger.Error("[Stats] count services", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.StatsResponse{
		TotalCars:           totalCars,
		AvailableCars:       availableCars,
		TotalSales:          totalSales,
		PendingSellRequests: pendingSellRequests,
		PendingServices:     pendingServices,
	}, nil
}

func (s *adminAppImpl) ListSales(ctx context.Context) ([]model.SaleListItem, error) {
	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		logger.Error("[ListSales] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]model.SaleListItem, 0, len(sales))
	for _, sale := range sales {
		item := model.SaleListItem{
			OrderID:   sale.OrderID,
			CarID:     sale.CarID,
			Price:     sale.Price,
			Timestamp: sale.Timestamp,
			SessionID: sale.SessionID,
		}
		car, err := s.carRepo.Get(ctx, sale.CarID)
		if err != nil {
			logger.Error("[ListSales] get car", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if car != nil {
			item.CarName = car.Make + " " + car.Model
		}
		items = append(items, item)
	}
	return items, nil
}

// AddOrder records a walk-in sale against an arbitrary session id and marks
// the car sold, in one transaction.
func (s *adminAppImpl) AddOrder(ctx context.Context, req *model.AddOrderRequest) (*model.SaleEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AddOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	car, err := s.carRepo.GetTx(ctx, tx, req.CarID)
	if err != nil {
		logger.Error("[AddOrder] get car", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	price := req.Price
	if price == 0 {
		price = car.Price
	}
	sale := &model.SaleEntity{
		OrderID:   ident.New("ord-"),
		SessionID: req.SessionID,
		CarID:     car.ID,
		Price:     price,
		Timestamp: time.Now(),
	}
	if err := s.saleRepo.InsertTx(ctx, tx, sale); err != nil {
		logger.Error("[AddOrder] insert sale", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.carRepo.SetStatusTx(ctx, tx, car.ID, constant.CarStatusSold); err != nil {
		logger.Error("[AddOrder] mark car sold", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AddOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if err := s.redisRepo.Delete(ctx, constant.CacheKeyCars); err != nil {
		logger.Warn("[AddOrder] invalidate car cache", zap.String("error", err.Error()))
	}
	if s.publisher != nil {
		msg := rabbitmq.SaleRecordedMessage{
			OrderID:   sale.OrderID,
			SessionID: sale.SessionID,
			CarID:     sale.CarID,
			Price:     sale.Price,
			Timestamp: sale.Timestamp,
		}
		if err := s.publisher.PublishSaleRecorded(msg); err != nil {
			logger.Error("[AddOrder] publish sale", zap.String("error", err.Error()))
		}
	}

	logger.Info("[AddOrder] recorded", zap.String("order_id", sale.OrderID), zap.String("car_id", car.ID))
	return sale, nil
}

// DeleteOrder removes the sale row only; the car keeps its sold status, as a
// returned car re-enters inventory through an explicit car update.
func (s *adminAppImpl) DeleteOrder(ctx context.Context, orderID string) error {
	if err := s.saleRepo.Delete(ctx, orderID); err != nil {
		logger.Error("[DeleteOrder] delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *adminAppImpl) ListEmployees(ctx context.Context, actor string) ([]model.EmployeeInfo, error) {
	if actor != constant.AdminUsername {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		logger.Error("[ListEmployees] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	infos := make([]model.EmployeeInfo, 0, len(employees))
	for _, e := range employees {
		infos = append(infos, model.EmployeeInfo{Username: e.Username, Name: e.Name})
	}
	return infos, nil
}

func (s *adminAppImpl) AddEmployee(ctx context.Context, actor string, req *model.AddEmployeeRequest) error {
	if actor != constant.AdminUsername {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	existing, err := s.employeeRepo.Get(ctx, req.Username)
	if err != nil {
		logger.Error("[AddEmployee] get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return errors.SetCustomError(constant.ErrCredentialExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[AddEmployee] hash password", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.employeeRepo.Insert(ctx, &model.EmployeeEntity{
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
	}); err != nil {
		logger.Error("[AddEmployee] insert", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[AddEmployee] added", zap.String("username", req.Username))
	return nil
}

func (s *adminAppImpl) UpdateEmployee(ctx context.Context, actor, username string, req *model.UpdateEmployeeRequest) error {
	if actor != constant.AdminUsername {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	existing, err := s.employeeRepo.Get(ctx, username)
	if err != nil {
		logger.Error("[UpdateEmployee] get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	var passwordHash *string
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("[UpdateEmployee] hash password", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		h := string(hash)
		passwordHash = &h
	}
	if err := s.employeeRepo.Update(ctx, username, req.Name, passwordHash); err != nil {
		logger.Error("[UpdateEmployee] update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// RemoveEmployee deletes a staff account. The admin account itself cannot be
// removed.
func (s *adminAppImpl) RemoveEmployee(ctx context.Context, actor, username string) error {
	if actor != constant.AdminUsername {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	if username == constant.AdminUsername {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	existing, err := s.employeeRepo.Get(ctx, username)
	if err != nil {
		logger.Error("[RemoveEmployee] get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err := s.employeeRepo.Delete(ctx, username); err != nil {
		logger.Error("[RemoveEmployee] delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[RemoveEmployee] removed", zap.String("username", username))
	return nil
}
