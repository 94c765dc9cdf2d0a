package admin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appadmin "github.com/sbmotors/dealership/application/admin"
	"github.com/sbmotors/dealership/constant"
	carmocks "github.com/sbmotors/dealership/mocks/repository/car"
	employeemocks "github.com/sbmotors/dealership/mocks/repository/employee"
	redismocks "github.com/sbmotors/dealership/mocks/repository/redis"
	salemocks "github.com/sbmotors/dealership/mocks/repository/sale"
	sellrequestmocks "github.com/sbmotors/dealership/mocks/repository/sellrequest"
	servicemocks "github.com/sbmotors/dealership/mocks/repository/service"
	txmocks "github.com/sbmotors/dealership/mocks/repository/tx"
	"github.com/sbmotors/dealership/model"
	cerr "github.com/sbmotors/dealership/utils/errors"
	"github.com/stretchr/testify/mock"
)

type adminFields struct {
	txRepo          *txmocks.TxRepository
	carRepo         *carmocks.CarRepository
	saleRepo        *salemocks.SaleRepository
	employeeRepo    *employeemocks.EmployeeRepository
	sellRequestRepo *sellrequestmocks.SellRequestRepository
	serviceRepo     *servicemocks.ServiceRepository
	redisRepo       *redismocks.Repository
}

func newAdminFields(t *testing.T) adminFields {
	return adminFields{
		txRepo:          txmocks.NewTxRepository(t),
		carRepo:         carmocks.NewCarRepository(t),
		saleRepo:        salemocks.NewSaleRepository(t),
		employeeRepo:    employeemocks.NewEmployeeRepository(t),
		sellRequestRepo: sellrequestmocks.NewSellRequestRepository(t),
		serviceRepo:     servicemocks.NewServiceRepository(t),
		redisRepo:       redismocks.NewRepository(t),
	}
}

func newAdminApp(f adminFields) appadmin.AdminApp {
	// nil publisher; admin.go checks for nil before publishing
	return appadmin.NewAdminApp(f.txRepo, f.carRepo, f.saleRepo, f.employeeRepo, f.sellRequestRepo, f.serviceRepo, f.redisRepo, nil)
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestAdminApp_AddOrder(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.AddOrderRequest
		mockCall func(f adminFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: zero price falls back to the listed price",
			req:  &model.AddOrderRequest{CarID: "car-1", SessionID: "walk-in", Price: 0},
			mockCall: func(f adminFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.carRepo.On("GetTx", mock.Anything, tx, "car-1").Return(&model.Car{
					ID:    "car-1",
					Price: 550000,
				}, nil).Once()
				f.saleRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(s *model.SaleEntity) bool {
					return s.CarID == "car-1" && s.SessionID == "walk-in" && s.Price == 550000
				})).Return(nil).Once()
				f.carRepo.On("SetStatusTx", mock.Anything, tx, "car-1", constant.CarStatusSold).Return(nil).Once()

				f.redisRepo.On("Delete", mock.Anything, constant.CacheKeyCars).Return(nil).Once()
			},
		},
		{
			name: "success: explicit price wins",
			req:  &model.AddOrderRequest{CarID: "car-1", SessionID: "walk-in", Price: 525000},
			mockCall: func(f adminFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.carRepo.On("GetTx", mock.Anything, tx, "car-1").Return(&model.Car{
					ID:    "car-1",
					Price: 550000,
				}, nil).Once()
				f.saleRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(s *model.SaleEntity) bool {
					return s.Price == 525000
				})).Return(nil).Once()
				f.carRepo.On("SetStatusTx", mock.Anything, tx, "car-1", constant.CarStatusSold).Return(nil).Once()

				f.redisRepo.On("Delete", mock.Anything, constant.CacheKeyCars).Return(nil).Once()
			},
		},
		{
			name: "error: unknown car",
			req:  &model.AddOrderRequest{CarID: "car-404", SessionID: "walk-in"},
			mockCall: func(f adminFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.carRepo.On("GetTx", mock.Anything, tx, "car-404").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newAdminFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newAdminApp(f)

			got, err := app.AddOrder(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.OrderID == "" {
				t.Fatal("AddOrder() order id should not be empty")
			}
		})
	}
}

func TestAdminApp_AddEmployee(t *testing.T) {
	tests := []struct {
		name     string
		actor    string
		req      *model.AddEmployeeRequest
		mockCall func(f adminFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: admin adds a new employee",
			actor: constant.AdminUsername,
			req:   &model.AddEmployeeRequest{Username: "sales1", Password: "secret123", Name: "Sales One"},
			mockCall: func(f adminFields) {
				f.employeeRepo.On("Get", mock.Anything, "sales1").Return(nil, nil).Once()
				f.employeeRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *model.EmployeeEntity) bool {
					return e.Username == "sales1" && e.Name == "Sales One" && e.PasswordHash != "secret123"
				})).Return(nil).Once()
			},
		},
		{
			name:    "error: duplicate username",
			actor:   constant.AdminUsername,
			req:     &model.AddEmployeeRequest{Username: "sales1", Password: "secret123"},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
			mockCall: func(f adminFields) {
				f.employeeRepo.On("Get", mock.Anything, "sales1").Return(&model.EmployeeEntity{
					Username: "sales1",
				}, nil).Once()
			},
		},
		{
			name:    "error: non-admin actor",
			actor:   "sales1",
			req:     &model.AddEmployeeRequest{Username: "sales2", Password: "secret123"},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newAdminFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newAdminApp(f)

			err := app.AddEmployee(context.Background(), tt.actor, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddEmployee() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestAdminApp_RemoveEmployee(t *testing.T) {
	tests := []struct {
		name     string
		actor    string
		username string
		mockCall func(f adminFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: remove a regular employee",
			actor:    constant.AdminUsername,
			username: "sales1",
			mockCall: func(f adminFields) {
				f.employeeRepo.On("Get", mock.Anything, "sales1").Return(&model.EmployeeEntity{
					Username: "sales1",
				}, nil).Once()
				f.employeeRepo.On("Delete", mock.Anything, "sales1").Return(nil).Once()
			},
		},
		{
			name:     "error: the admin account cannot be removed",
			actor:    constant.AdminUsername,
			username: constant.AdminUsername,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name:     "error: unknown employee",
			actor:    constant.AdminUsername,
			username: "ghost",
			mockCall: func(f adminFields) {
				f.employeeRepo.On("Get", mock.Anything, "ghost").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:     "error: non-admin actor",
			actor:    "sales1",
			username: "sales2",
			wantErr:  true,
			errCode:  constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newAdminFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newAdminApp(f)

			err := app.RemoveEmployee(context.Background(), tt.actor, tt.username)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RemoveEmployee() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestAdminApp_Stats(t *testing.T) {
	f := newAdminFields(t)
	f.carRepo.On("Count", mock.Anything).Return(int64(12), nil).Once()
	f.carRepo.On("CountByStatus", mock.Anything, constant.CarStatusAvailable).Return(int64(9), nil).Once()
	f.saleRepo.On("Count", mock.Anything).Return(int64(3), nil).Once()
	f.sellRequestRepo.On("CountByStatus", mock.Anything, constant.SellRequestStatusPending).Return(int64(2), nil).Once()
	f.serviceRepo.On("CountByStatus", mock.Anything, constant.ServiceStatusScheduled).Return(int64(1), nil).Once()

	app := newAdminApp(f)
	got, err := app.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if got.TotalCars != 12 || got.AvailableCars != 9 || got.TotalSales != 3 ||
		got.PendingSellRequests != 2 || got.PendingServices != 1 {
		t.Fatalf("Stats() = %+v", got)
	}
}
