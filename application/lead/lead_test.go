package lead_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	applead "github.com/sbmotors/dealership/application/lead"
	"github.com/sbmotors/dealership/constant"
	carmocks "github.com/sbmotors/dealership/mocks/repository/car"
	contactmocks "github.com/sbmotors/dealership/mocks/repository/contact"
	customermocks "github.com/sbmotors/dealership/mocks/repository/customer"
	redismocks "github.com/sbmotors/dealership/mocks/repository/redis"
	salemocks "github.com/sbmotors/dealership/mocks/repository/sale"
	sellrequestmocks "github.com/sbmotors/dealership/mocks/repository/sellrequest"
	servicemocks "github.com/sbmotors/dealership/mocks/repository/service"
	txmocks "github.com/sbmotors/dealership/mocks/repository/tx"
	"github.com/sbmotors/dealership/model"
	cerr "github.com/sbmotors/dealership/utils/errors"
	"github.com/stretchr/testify/mock"
)

type leadFields struct {
	txRepo          *txmocks.TxRepository
	sellRequestRepo *sellrequestmocks.SellRequestRepository
	serviceRepo     *servicemocks.ServiceRepository
	contactRepo     *contactmocks.ContactRepository
	carRepo         *carmocks.CarRepository
	saleRepo        *salemocks.SaleRepository
	customerRepo    *customermocks.CustomerRepository
	redisRepo       *redismocks.Repository
}

func newLeadFields(t *testing.T) leadFields {
	return leadFields{
		txRepo:          txmocks.NewTxRepository(t),
		sellRequestRepo: sellrequestmocks.NewSellRequestRepository(t),
		serviceRepo:     servicemocks.NewServiceRepository(t),
		contactRepo:     contactmocks.NewContactRepository(t),
		carRepo:         carmocks.NewCarRepository(t),
		saleRepo:        salemocks.NewSaleRepository(t),
		customerRepo:    customermocks.NewCustomerRepository(t),
		redisRepo:       redismocks.NewRepository(t),
	}
}

func newLeadApp(f leadFields) applead.LeadApp {
	return applead.NewLeadApp(f.txRepo, f.sellRequestRepo, f.serviceRepo, f.contactRepo, f.carRepo, f.saleRepo, f.customerRepo, f.redisRepo)
}

func TestLeadApp_SubmitSellRequest(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		req      *model.SellRequestCreate
		mockCall func(f leadFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: request recorded as pending",
			phone: "9876543210",
			req: &model.SellRequestCreate{
				OwnerName:   "Ravi Kumar",
				Phone:       "9876543210",
				Make:        "Toyota",
				Model:       "Yaris",
				Year:        2021,
				AskingPrice: 500000,
			},
			mockCall: func(f leadFields) {
				f.sellRequestRepo.On("Insert", mock.Anything, mock.MatchedBy(func(r *model.SellRequestEntity) bool {
					return r.Status == constant.SellRequestStatusPending &&
						r.Phone == "9876543210" && r.RequestID != ""
				})).Return(nil).Once()
			},
		},
		{
			name:  "error: phone does not match logged-in customer",
			phone: "9876543210",
			req: &model.SellRequestCreate{
				OwnerName:   "Ravi Kumar",
				Phone:       "1112223334",
				Make:        "Toyota",
				Model:       "Yaris",
				Year:        2021,
				AskingPrice: 500000,
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrPhoneMismatch,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newLeadFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newLeadApp(f)

			got, err := app.SubmitSellRequest(context.Background(), tt.phone, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SubmitSellRequest() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Status != constant.SellRequestStatusPending {
				t.Fatalf("status = %s, want %s", got.Status, constant.SellRequestStatusPending)
			}
		})
	}
}

func TestLeadApp_UpdateSellRequestStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		mockCall func(f leadFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: approval creates the car at asking price",
			status: constant.SellRequestStatusApproved,
			mockCall: func(f leadFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.sellRequestRepo.On("GetTx", mock.Anything, tx, "req-1").Return(&model.SellRequestEntity{
					RequestID:   "req-1",
					Make:        "Toyota",
					Model:       "Yaris",
					Year:        2021,
					AskingPrice: 500000,
					Notes:       "single owner, garage kept",
					Status:      constant.SellRequestStatusPending,
				}, nil).Once()

				f.carRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(c *model.Car) bool {
					return c.Make == "Toyota" && c.Model == "Yaris" && c.Year == 2021 &&
						c.Price == 500000 && c.Mileage == 0 &&
						c.Status == constant.CarStatusAvailable &&
						c.Description == "single owner, garage kept"
				})).Return(nil).Once()
				f.sellRequestRepo.On("SetStatusTx", mock.Anything, tx, "req-1", constant.SellRequestStatusApproved).Return(nil).Once()

				f.redisRepo.On("Delete", mock.Anything, constant.CacheKeyCars).Return(nil).Once()
			},
		},
		{
			name:   "success: re-approving an approved request is a no-op",
			status: constant.SellRequestStatusApproved,
			mockCall: func(f leadFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.sellRequestRepo.On("GetTx", mock.Anything, tx, "req-1").Return(&model.SellRequestEntity{
					RequestID: "req-1",
					Status:    constant.SellRequestStatusApproved,
				}, nil).Once()
			},
		},
		{
			name:   "error: approving an unknown request",
			status: constant.SellRequestStatusApproved,
			mockCall: func(f leadFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.sellRequestRepo.On("GetTx", mock.Anything, tx, "req-1").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "success: rejection is a plain status update",
			status: "rejected",
			mockCall: func(f leadFields) {
				f.sellRequestRepo.On("Get", mock.Anything, "req-1").Return(&model.SellRequestEntity{
					RequestID: "req-1",
					Status:    constant.SellRequestStatusPending,
				}, nil).Once()
				f.sellRequestRepo.On("UpdateStatus", mock.Anything, "req-1", "rejected").Return(nil).Once()
			},
		},
		{
			name:   "error: rejecting an unknown request",
			status: "rejected",
			mockCall: func(f leadFields) {
				f.sellRequestRepo.On("Get", mock.Anything, "req-1").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newLeadFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newLeadApp(f)

			err := app.UpdateSellRequestStatus(context.Background(), "req-1", tt.status)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateSellRequestStatus() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestLeadApp_BookService(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		req      *model.ServiceCreate
		mockCall func(f leadFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: booking starts scheduled",
			phone: "9876543210",
			req: &model.ServiceCreate{
				OwnerName:   "Ravi Kumar",
				Phone:       "9876543210",
				ServiceDate: "2026-09-15",
			},
			mockCall: func(f leadFields) {
				f.serviceRepo.On("Insert", mock.Anything, mock.MatchedBy(func(s *model.ServiceEntity) bool {
					return s.Status == constant.ServiceStatusScheduled && s.ServiceID != ""
				})).Return(nil).Once()
			},
		},
		{
			name:  "error: phone does not match logged-in customer",
			phone: "9876543210",
			req: &model.ServiceCreate{
				OwnerName:   "Ravi Kumar",
				Phone:       "1112223334",
				ServiceDate: "2026-09-15",
			},
			wantErr: true,
			errCode: constant.ErrPhoneMismatch,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newLeadFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newLeadApp(f)

			_, err := app.BookService(context.Background(), tt.phone, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BookService() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestLeadApp_Profile(t *testing.T) {
	t.Run("success: sale of a deleted car keeps the order row", func(t *testing.T) {
		f := newLeadFields(t)
		f.customerRepo.On("Get", mock.Anything, "9876543210").Return(&model.CustomerEntity{
			Phone: "9876543210",
			Name:  "Ravi Kumar",
		}, nil).Once()
		f.saleRepo.On("ListByPhone", mock.Anything, "9876543210").Return([]model.SaleEntity{
			{OrderID: "ord-1", CarID: "car-gone", Price: 550000},
		}, nil).Once()
		f.carRepo.On("Get", mock.Anything, "car-gone").Return(nil, nil).Once()
		f.sellRequestRepo.On("ListByPhone", mock.Anything, "9876543210").Return(nil, nil).Once()
		f.serviceRepo.On("ListByPhone", mock.Anything, "9876543210").Return(nil, nil).Once()

		app := newLeadApp(f)
		got, err := app.Profile(context.Background(), "9876543210")
		if err != nil {
			t.Fatalf("Profile() error = %v", err)
		}
		if len(got.Orders) != 1 {
			t.Fatalf("orders = %d, want 1", len(got.Orders))
		}
		if got.Orders[0].CarName != "" {
			t.Fatalf("car name = %q, want empty for deleted car", got.Orders[0].CarName)
		}
	})

	t.Run("error: unknown customer", func(t *testing.T) {
		f := newLeadFields(t)
		f.customerRepo.On("Get", mock.Anything, "0000000000").Return(nil, nil).Once()

		app := newLeadApp(f)
		_, err := app.Profile(context.Background(), "0000000000")
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrUnauthorize] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrUnauthorize])
		}
	})
}
