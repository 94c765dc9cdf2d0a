package lead

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sbmotors/dealership/constant"
	"github.com/sbmotors/dealership/model"
	carrepo "github.com/sbmotors/dealership/repository/car"
	contactrepo "github.com/sbmotors/dealership/repository/contact"
	customerrepo "github.com/sbmotors/dealership/repository/customer"
	redisrepo "github.com/sbmotors/dealership/repository/redis"
	salerepo "github.com/sbmotors/dealership/repository/sale"
	sellrequestrepo "github.com/sbmotors/dealership/repository/sellrequest"
	servicerepo "github.com/sbmotors/dealership/repository/service"
	txrepo "github.com/sbmotors/dealership/repository/tx"
	"github.com/sbmotors/dealership/utils/errors"
	"github.com/sbmotors/dealership/utils/ident"
	"github.com/sbmotors/dealership/utils/logger"
)

// LeadApp handles everything a customer initiates besides buying: selling a
// car to the dealership, booking a service slot, contact messages, and the
// aggregated profile view.
type LeadApp interface {
	SubmitSellRequest(ctx context.Context, customerPhone string, req *model.SellRequestCreate) (*model.SellRequestEntity, error)
	ListSellRequests(ctx context.Context) ([]model.SellRequestEntity, error)
	UpdateSellRequestStatus(ctx context.Context, requestID, status string) error

	BookService(ctx context.Context, customerPhone string, req *model.ServiceCreate) (*model.ServiceEntity, error)
	ListServices(ctx context.Context) ([]model.ServiceEntity, error)
	UpdateServiceStatus(ctx context.Context, serviceID, status string) error

	SubmitContact(ctx context.Context, req *model.ContactCreate) (*model.ContactEntity, error)
	ListContacts(ctx context.Context) ([]model.ContactEntity, error)

	Profile(ctx context.Context, phone string) (*model.ProfileResponse, error)
}

type leadAppImpl struct {
	txRepo          txrepo.TxRepository
	sellRequestRepo sellrequestrepo.SellRequestRepository
	serviceRepo     servicerepo.ServiceRepository
	contactRepo     contactrepo.ContactRepository
	carRepo         carrepo.CarRepository
	saleRepo        salerepo.SaleRepository
	customerRepo    customerrepo.CustomerRepository
	redisRepo       redisrepo.Repository
}

func NewLeadApp(txRepo txrepo.TxRepository, sellRequestRepo sellrequestrepo.SellRequestRepository, serviceRepo servicerepo.ServiceRepository, contactRepo contactrepo.ContactRepository, carRepo carrepo.CarRepository, saleRepo salerepo.SaleRepository, customerRepo customerrepo.CustomerRepository, redisRepo redisrepo.Repository) LeadApp {
	return &leadAppImpl{
		txRepo:          txRepo,
		sellRequestRepo: sellRequestRepo,
		serviceRepo:     serviceRepo,
		contactRepo:     contactRepo,
		carRepo:         carRepo,
		saleRepo:        saleRepo,
		customerRepo:    customerRepo,
		redisRepo:       redisRepo,
	}
}

// SubmitSellRequest records a pending sell request. The phone on the form
// must match the logged-in customer so requests stay attributable.
func (s *leadAppImpl) SubmitSellRequest(ctx context.Context, customerPhone string, req *model.SellRequestCreate) (*model.SellRequestEntity, error) {
	if req.Phone != customerPhone {
		return nil, errors.SetCustomError(constant.ErrPhoneMismatch)
	}

	entity := &model.SellRequestEntity{
		RequestID:   ident.New("req-"),
		OwnerName:   req.OwnerName,
		Phone:       req.Phone,
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		AskingPrice: req.AskingPrice,
		Notes:       req.Notes,
		Status:      constant.SellRequestStatusPending,
		Timestamp:   time.Now(),
	}
	if err := s.sellRequestRepo.Insert(ctx, entity); err != nil {
		logger.Error("[SubmitSellRequest] insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[SubmitSellRequest] submitted", zap.String("request_id", entity.RequestID))
	return entity, nil
}

func (s *leadAppImpl) ListSellRequests(ctx context.Context) ([]model.SellRequestEntity, error) {
	reqs, err := s.sellRequestRepo.List(ctx)
	if err != nil {
		logger.Error("[ListSellRequests] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return reqs, nil
}

// UpdateSellRequestStatus sets the request status. Moving to approved also
// creates the car in inventory, atomically with the status flip.
func (s *leadAppImpl) UpdateSellRequestStatus(ctx context.Context, requestID, status string) error {
	if status == constant.SellRequestStatusApproved {
		return s.approveSellRequest(ctx, requestID)
	}

	existing, err := s.sellRequestRepo.Get(ctx, requestID)
	if err != nil {
		logger.Error("[UpdateSellRequestStatus] get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err := s.sellRequestRepo.UpdateStatus(ctx, requestID, status); err != nil {
		logger.Error("[UpdateSellRequestStatus] update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// approveSellRequest turns the offered vehicle into an available car priced
// at the asking price. Re-approving an already approved request is a no-op so
// a double click cannot create a second car.
func (s *leadAppImpl) approveSellRequest(ctx context.Context, requestID string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ApproveSellRequest] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	req, err := s.sellRequestRepo.GetTx(ctx, tx, requestID)
	if err != nil {
		logger.Error("[ApproveSellRequest] get request", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if req == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if req.Status == constant.SellRequestStatusApproved {
		return nil
	}

	car := &model.Car{
		ID:           ident.New("car-"),
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Price:        req.AskingPrice,
		Mileage:      0,
		Fuel:         "Petrol",
		Transmission: "Manual",
		Owner:        "1st Owner",
		Type:         "sedan",
		Description:  req.Notes,
		Status:       constant.CarStatusAvailable,
	}
	if err := s.carRepo.InsertTx(ctx, tx, car); err != nil {
		logger.Error("[ApproveSellRequest] insert car", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.sellRequestRepo.SetStatusTx(ctx, tx, requestID, constant.SellRequestStatusApproved); err != nil {
		logger.Error("[ApproveSellRequest] set status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ApproveSellRequest] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if err := s.redisRepo.Delete(ctx, constant.CacheKeyCars); err != nil {
		logger.Warn("[ApproveSellRequest] invalidate car cache", zap.String("error", err.Error()))
	}
	logger.Info("[ApproveSellRequest] approved", zap.String("request_id", requestID), zap.String("car_id", car.ID))
	return nil
}

func (s *leadAppImpl) BookService(ctx context.Context, customerPhone string, req *model.ServiceCreate) (*model.ServiceEntity, error) {
	if req.Phone != customerPhone {
		return nil, errors.SetCustomError(constant.ErrPhoneMismatch)
	}

	entity := &model.ServiceEntity{
		ServiceID:   ident.New("svc-"),
		OwnerName:   req.OwnerName,
		Phone:       req.Phone,
		CarID:       req.CarID,
		ServiceDate: req.ServiceDate,
		Notes:       req.Notes,
		Status:      constant.ServiceStatusScheduled,
		Timestamp:   time.Now(),
	}
	if err := s.serviceRepo.Insert(ctx, entity); err != nil {
		logger.Error("[BookService] insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[BookService] booked", zap.String("service_id", entity.ServiceID))
	return entity, nil
}

func (s *leadAppImpl) ListServices(ctx context.Context) ([]model.ServiceEntity, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		logger.Error("[ListServices] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return services, nil
}

func (s *leadAppImpl) UpdateServiceStatus(ctx context.Context, serviceID, status string) error {
	existing, err := s.serviceRepo.Get(ctx, serviceID)
	if err != nil {
		logger.Error("[UpdateServiceStatus] get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err := s.serviceRepo.UpdateStatus(ctx, serviceID, status); err != nil {
		logger.Error("[UpdateServiceStatus] update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *leadAppImpl) SubmitContact(ctx context.Context, req *model.ContactCreate) (*model.ContactEntity, error) {
	entity := &model.ContactEntity{
		ContactID: ident.New("msg-"),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		Timestamp: time.Now(),
	}
	if err := s.contactRepo.Insert(ctx, entity); err != nil {
		logger.Error("[SubmitContact] insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *leadAppImpl) ListContacts(ctx context.Context) ([]model.ContactEntity, error) {
	contacts, err := s.contactRepo.List(ctx)
	if err != nil {
		logger.Error("[ListContacts] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return contacts, nil
}

// Profile aggregates the customer's account, orders, sell requests and
// service bookings into one response. Orders whose car was since deleted keep
// the sale row but fall back to an empty car name.
func (s *leadAppImpl) Profile(ctx context.Context, phone string) (*model.ProfileResponse, error) {
	customer, err := s.customerRepo.Get(ctx, phone)
	if err != nil {
		logger.Error("[Profile] get customer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if customer == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	resp := &model.ProfileResponse{
		User: model.CustomerInfo{
			Name:      customer.Name,
			Phone:     customer.Phone,
			CreatedAt: customer.CreatedAt.Format(time.RFC3339),
		},
		Orders:       make([]model.ProfileOrder, 0),
		SellRequests: make([]model.ProfileSellRequest, 0),
		Services:     make([]model.ProfileService, 0),
	}

	sales, err := s.saleRepo.ListByPhone(ctx, phone)
	if err != nil {
		logger.Error("[Profile] list sales", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	for _, sale := range sales {
		order := model.ProfileOrder{
			OrderID:   sale.OrderID,
			CarID:     sale.CarID,
			Price:     sale.Price,
			Timestamp: sale.Timestamp,
		}
		car, err := s.carRepo.Get(ctx, sale.CarID)
		if err != nil {
			logger.Error("[Profile] get car", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if car != nil {
			order.CarName = car.Make + " " + car.Model
			order.Year = car.Year
		}
		resp.Orders = append(resp.Orders, order)
	}

	reqs, err := s.sellRequestRepo.ListByPhone(ctx, phone)
	if err != nil {
		logger.Error("[Profile] list sell requests", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	for _, r := range reqs {
		resp.SellRequests = append(resp.SellRequests, model.ProfileSellRequest{
			RequestID:   r.RequestID,
			Make:        r.Make,
			Model:       r.Model,
			Year:        r.Year,
			AskingPrice: r.AskingPrice,
			Status:      r.Status,
			Timestamp:   r.Timestamp,
		})
	}

	services, err := s.serviceRepo.ListByPhone(ctx, phone)
	if err != nil {
		logger.Error("[Profile] list services", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	for _, svc := range services {
		resp.Services = append(resp.Services, model.ProfileService{
			ServiceID:   svc.ServiceID,
			CarID:       svc.CarID,
			ServiceDate: svc.ServiceDate,
			Notes:       svc.Notes,
			Status:      svc.Status,
			Timestamp:   svc.Timestamp,
		})
	}

	return resp, nil
}
