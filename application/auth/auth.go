package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbmotors/dealership/cmd/config"
	"github.com/sbmotors/dealership/constant"
	"github.com/sbmotors/dealership/model"
	customerrepo "github.com/sbmotors/dealership/repository/customer"
	employeerepo "github.com/sbmotors/dealership/repository/employee"
	sessionrepo "github.com/sbmotors/dealership/repository/session"
	"github.com/sbmotors/dealership/utils/errors"
	"github.com/sbmotors/dealership/utils/logger"
)

// AuthApp owns both identity classes: customers (phone + password, long-lived
// cookie) and employees (username + password, work-shift cookie). Session
// tokens are opaque uuids resolved against the session tables on every
// guarded request.
type AuthApp interface {
	RegisterCustomer(ctx context.Context, req *model.CustomerRegisterRequest) (string, *model.CustomerInfo, error)
	LoginCustomer(ctx context.Context, req *model.CustomerLoginRequest) (string, *model.CustomerInfo, error)
	LogoutCustomer(ctx context.Context, token string) error
	ResolveCustomer(ctx context.Context, token string) (*model.CustomerIdentity, error)
	GetCustomerInfo(ctx context.Context, phone string) (*model.CustomerInfo, error)

	LoginEmployee(ctx context.Context, req *model.EmployeeLoginRequest) (string, *model.EmployeeInfo, error)
	LogoutEmployee(ctx context.Context, token string) error
	ResolveEmployee(ctx context.Context, token string) (string, error)
	CheckEmployee(ctx context.Context, token string) (*model.EmployeeCheckResponse, error)
}

type authAppImpl struct {
	config           *config.Config
	customerRepo     customerrepo.CustomerRepository
	employeeRepo     employeerepo.EmployeeRepository
	customerSessions sessionrepo.SessionRepository
	employeeSessions sessionrepo.SessionRepository
}

func NewAuthApp(config *config.Config, customerRepo customerrepo.CustomerRepository, employeeRepo employeerepo.EmployeeRepository, customerSessions, employeeSessions sessionrepo.SessionRepository) AuthApp {
	return &authAppImpl{
		config:           config,
		customerRepo:     customerRepo,
		employeeRepo:     employeeRepo,
		customerSessions: customerSessions,
		employeeSessions: employeeSessions,
	}
}

func (s *authAppImpl) RegisterCustomer(ctx context.Context, req *model.CustomerRegisterRequest) (string, *model.CustomerInfo, error) {
	existing, err := s.customerRepo.Get(ctx, req.Phone)
	if err != nil {
		logger.Error("[RegisterCustomer] get customer", zap.String("error", err.Error()))
		return "", nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return "", nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[RegisterCustomer] hash password", zap.String("error", err.Error()))
		return "", nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := time.Now()
	customer := &model.CustomerEntity{
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Name:         req.Name,
		CreatedAt:    now,
	}
	if err := s.customerRepo.Insert(ctx, customer); err != nil {
		logger.Error("[RegisterCustomer] insert customer", zap.String("error", err.Error()))
		return "", nil, errors.SetCustomError(constant.ErrInternal)
	}

	token, err := s.openSession(ctx, s.customerSessions, req.Phone)
	if err != nil {
		return "", nil, err
	}

	logger.Info("[RegisterCustomer] registered", zap.String("phone", req.Phone))
	return token, &model.CustomerInfo{Name: customer.Name, Phone: customer.Phone}, nil
}

func (s *authAppImpl) LoginCustomer(ctx context.Context, req *model.CustomerLoginRequest) (string, *model.CustomerInfo, error) {
	customer, err := s.customerRepo.Get(ctx, req.Phone)
	if err != nil {
		logger.Error("[LoginCustomer] get customer", zap.String("error", err.Error()))
		return "", nil, errors.SetCustomError(constant.ErrInternal)
	}
	if customer == nil {
		return "", nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)) != nil {
		return "", nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, err := s.openSession(ctx, s.customerSessions, customer.Phone)
	if err != nil {
		return "", nil, err
	}
	return token, &model.CustomerInfo{Name: customer.Name, Phone: customer.Phone}, nil
}

func (s *authAppImpl) LogoutCustomer(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.customerSessions.Delete(ctx, token); err != nil {
		logger.Error("[LogoutCustomer] delete session", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// ResolveCustomer maps a cookie token to the owning customer, or
// ErrUnauthorize when the token is unknown.
func (s *authAppImpl) ResolveCustomer(ctx context.Context, token string) (*model.CustomerIdentity, error) {
	if token == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	sess, err := s.customerSessions.Get(ctx, token)
	if err != nil {
		logger.Error("[ResolveCustomer] get session", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if sess == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return &model.CustomerIdentity{Token: sess.Token, Phone: sess.Identity}, nil
}

func (s *authAppImpl) GetCustomerInfo(ctx context.Context, phone string) (*model.CustomerInfo, error) {
	customer, err := s.customerRepo.Get(ctx, phone)
	if err != nil {
		logger.Error("[GetCustomerInfo] get customer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if customer == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return &model.CustomerInfo{
		Name:      customer.Name,
		Phone:     customer.Phone,
		CreatedAt: customer.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *authAppImpl) LoginEmployee(ctx context.Context, req *model.EmployeeLoginRequest) (string, *model.EmployeeInfo, error) {
	employee, err := s.employeeRepo.Get(ctx, req.Username)
	if err != nil {
		logger.Error("[LoginEmployee] get employee", zap.String("error", err.Error()))
		return "", nil, errors.SetCustomError(constant.ErrInternal)
	}
	if employee == nil {
		return "", nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}
	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)) != nil {
		return "", nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, err := s.openSession(ctx, s.employeeSessions, employee.Username)
	if err != nil {
		return "", nil, err
	}

	logger.Info("[LoginEmployee] logged in", zap.String("username", employee.Username))
	return token, &model.EmployeeInfo{Username: employee.Username, Name: employee.Name}, nil
}

func (s *authAppImpl) LogoutEmployee(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.employeeSessions.Delete(ctx, token); err != nil {
		logger.Error("[LogoutEmployee] delete session", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *authAppImpl) ResolveEmployee(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", errors.SetCustomError(constant.ErrUnauthorize)
	}
	sess, err := s.employeeSessions.Get(ctx, token)
	if err != nil {
		logger.Error("[ResolveEmployee] get session", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if sess == nil {
		return "", errors.SetCustomError(constant.ErrUnauthorize)
	}
	return sess.Identity, nil
}

// CheckEmployee never errors on an unknown token; the dashboard polls it to
// decide whether to show the login form.
func (s *authAppImpl) CheckEmployee(ctx context.Context, token string) (*model.EmployeeCheckResponse, error) {
	if token == "" {
		return &model.EmployeeCheckResponse{Authenticated: false}, nil
	}
	sess, err := s.employeeSessions.Get(ctx, token)
	if err != nil {
		logger.Error("[CheckEmployee] get session", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if sess == nil {
		return &model.EmployeeCheckResponse{Authenticated: false}, nil
	}

	resp := &model.EmployeeCheckResponse{Authenticated: true, Username: sess.Identity}
	employee, err := s.employeeRepo.Get(ctx, sess.Identity)
	if err != nil {
		logger.Error("[CheckEmployee] get employee", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if employee != nil {
		resp.Name = employee.Name
	}
	return resp, nil
}

func (s *authAppImpl) openSession(ctx context.Context, sessions sessionrepo.SessionRepository, identity string) (string, error) {
	token := uuid.NewString()
	sess := &model.Session{Token: token, Identity: identity, LoginAt: time.Now()}
	if err := sessions.Insert(ctx, sess); err != nil {
		logger.Error("[openSession] insert session", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	return token, nil
}
