package auth_test

import (
	"context"
	"errors"
	"testing"

	appauth "github.com/sbmotors/dealership/application/auth"
	"github.com/sbmotors/dealership/cmd/config"
	"github.com/sbmotors/dealership/constant"
	customermocks "github.com/sbmotors/dealership/mocks/repository/customer"
	employeemocks "github.com/sbmotors/dealership/mocks/repository/employee"
	sessionmocks "github.com/sbmotors/dealership/mocks/repository/session"
	"github.com/sbmotors/dealership/model"
	cerr "github.com/sbmotors/dealership/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthApp_RegisterCustomer(t *testing.T) {
	type fields struct {
		config           *config.Config
		customerRepo     *customermocks.CustomerRepository
		employeeRepo     *employeemocks.EmployeeRepository
		customerSessions *sessionmocks.SessionRepository
		employeeSessions *sessionmocks.SessionRepository
	}
	type args struct {
		ctx context.Context
		req *model.CustomerRegisterRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new customer",
			fields: fields{
				config:           &config.Config{},
				customerRepo:     customermocks.NewCustomerRepository(t),
				employeeRepo:     employeemocks.NewEmployeeRepository(t),
				customerSessions: sessionmocks.NewSessionRepository(t),
				employeeSessions: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CustomerRegisterRequest{
					Name:     "Ravi Kumar",
					Phone:    "9876543210",
					Password: "secret123",
				},
			},
			mockCall: func(f fields) {
				f.customerRepo.On("Get", mock.Anything, "9876543210").Return(nil, nil).Once()
				f.customerRepo.On("Insert", mock.Anything, mock.MatchedBy(func(c *model.CustomerEntity) bool {
					return c.Phone == "9876543210" && c.Name == "Ravi Kumar" && c.PasswordHash != "secret123"
				})).Return(nil).Once()
				f.customerSessions.On("Insert", mock.Anything, mock.MatchedBy(func(s *model.Session) bool {
					return s.Identity == "9876543210" && s.Token != ""
				})).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: phone already registered",
			fields: fields{
				config:           &config.Config{},
				customerRepo:     customermocks.NewCustomerRepository(t),
				employeeRepo:     employeemocks.NewEmployeeRepository(t),
				customerSessions: sessionmocks.NewSessionRepository(t),
				employeeSessions: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CustomerRegisterRequest{
					Name:     "Ravi Kumar",
					Phone:    "9876543210",
					Password: "secret123",
				},
			},
			mockCall: func(f fields) {
				f.customerRepo.On("Get", mock.Anything, "9876543210").Return(&model.CustomerEntity{
					Phone: "9876543210",
					Name:  "Ravi Kumar",
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: Get returns error",
			fields: fields{
				config:           &config.Config{},
				customerRepo:     customermocks.NewCustomerRepository(t),
				employeeRepo:     employeemocks.NewEmployeeRepository(t),
				customerSessions: sessionmocks.NewSessionRepository(t),
				employeeSessions: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CustomerRegisterRequest{
					Name:     "Ravi Kumar",
					Phone:    "9876543210",
					Password: "secret123",
				},
			},
			mockCall: func(f fields) {
				f.customerRepo.On("Get", mock.Anything, "9876543210").Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(tt.fields.config, tt.fields.customerRepo, tt.fields.employeeRepo, tt.fields.customerSessions, tt.fields.employeeSessions)

			token, info, err := app.RegisterCustomer(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RegisterCustomer() error = %v, wantErr %v", err, tt.wantErr)
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

			if token == "" {
				t.Fatal("RegisterCustomer() token should not be empty")
			}
			if info.Phone != tt.args.req.Phone {
				t.Fatalf("RegisterCustomer() phone = %s, want %s", info.Phone, tt.args.req.Phone)
			}
		})
	}
}

func TestAuthApp_LoginCustomer(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	type fields struct {
		config           *config.Config
		customerRepo     *customermocks.CustomerRepository
		employeeRepo     *employeemocks.EmployeeRepository
		customerSessions *sessionmocks.SessionRepository
		employeeSessions *sessionmocks.SessionRepository
	}
	type args struct {
		ctx context.Context
		req *model.CustomerLoginRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: valid credentials",
			fields: fields{
				config:           &config.Config{},
				customerRepo:     customermocks.NewCustomerRepository(t),
				employeeRepo:     employeemocks.NewEmployeeRepository(t),
				customerSessions: sessionmocks.NewSessionRepository(t),
				employeeSessions: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CustomerLoginRequest{Phone: "9876543210", Password: "secret123"},
			},
			mockCall: func(f fields) {
				f.customerRepo.On("Get", mock.Anything, "9876543210").Return(&model.CustomerEntity{
					Phone:        "9876543210",
					PasswordHash: string(hash),
					Name:         "Ravi Kumar",
				}, nil).Once()
				f.customerSessions.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: wrong password",
			fields: fields{
				config:           &config.Config{},
				customerRepo:     customermocks.NewCustomerRepository(t),
				employeeRepo:     employeemocks.NewEmployeeRepository(t),
				customerSessions: sessionmocks.NewSessionRepository(t),
				employeeSessions: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CustomerLoginRequest{Phone: "9876543210", Password: "wrong"},
			},
			mockCall: func(f fields) {
				f.customerRepo.On("Get", mock.Anything, "9876543210").Return(&model.CustomerEntity{
					Phone:        "9876543210",
					PasswordHash: string(hash),
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: unknown phone",
			fields: fields{
				config:           &config.Config{},
				customerRepo:     customermocks.NewCustomerRepository(t),
				employeeRepo:     employeemocks.NewEmployeeRepository(t),
				customerSessions: sessionmocks.NewSessionRepository(t),
				employeeSessions: sessionmocks.NewSessionRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CustomerLoginRequest{Phone: "0000000000", Password: "secret123"},
			},
			mockCall: func(f fields) {
				f.customerRepo.On("Get", mock.Anything, "0000000000").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(tt.fields.config, tt.fields.customerRepo, tt.fields.employeeRepo, tt.fields.customerSessions, tt.fields.employeeSessions)

			token, _, err := app.LoginCustomer(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoginCustomer() error = %v, wantErr %v", err, tt.wantErr)
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

			if token == "" {
				t.Fatal("LoginCustomer() token should not be empty")
			}
		})
	}
}

func TestAuthApp_ResolveCustomer(t *testing.T) {
	type fields struct {
		config           *config.Config
		customerRepo     *customermocks.CustomerRepository
		employeeRepo     *employeemocks.EmployeeRepository
		customerSessions *sessionmocks.SessionRepository
		employeeSessions *sessionmocks.SessionRepository
	}
	type args struct {
		ctx   context.Context
		token string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.CustomerIdentity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: known token",
			fields: fields{
				config:           &config.Config{},
				customerRepo:     customermocks.NewCustomerRepository(t),
				employeeRepo:     employeemocks.NewEmployeeRepository(t),
				customerSessions: sessionmocks.NewSessionRepository(t),
				employeeSessions: sessionmocks.NewSessionRepository(t),
			},
			args: args{ctx: context.Background(), token: "tok-1"},
			mockCall: func(f fields) {
				f.customerSessions.On("Get", mock.Anything, "tok-1").Return(&model.Session{
					Token:    "tok-1",
					Identity: "9876543210",
				}, nil).Once()
			},
			want: &model.CustomerIdentity{Token: "tok-1", Phone: "9876543210"},
		},
		{
			name: "error: unknown token",
			fields: fields{
				config:           &config.Config{},
				customerRepo:     customermocks.NewCustomerRepository(t),
				employeeRepo:     employeemocks.NewEmployeeRepository(t),
				customerSessions: sessionmocks.NewSessionRepository(t),
				employeeSessions: sessionmocks.NewSessionRepository(t),
			},
			args: args{ctx: context.Background(), token: "tok-unknown"},
			mockCall: func(f fields) {
				f.customerSessions.On("Get", mock.Anything, "tok-unknown").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name: "error: empty token",
			fields: fields{
				config:           &config.Config{},
				customerRepo:     customermocks.NewCustomerRepository(t),
				employeeRepo:     employeemocks.NewEmployeeRepository(t),
				customerSessions: sessionmocks.NewSessionRepository(t),
				employeeSessions: sessionmocks.NewSessionRepository(t),
			},
			args:     args{ctx: context.Background(), token: ""},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrUnauthorize,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(tt.fields.config, tt.fields.customerRepo, tt.fields.employeeRepo, tt.fields.customerSessions, tt.fields.employeeSessions)

			got, err := app.ResolveCustomer(tt.args.ctx, tt.args.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveCustomer() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Phone != tt.want.Phone || got.Token != tt.want.Token {
				t.Fatalf("ResolveCustomer() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAuthApp_CheckEmployee(t *testing.T) {
	type fields struct {
		config           *config.Config
		customerRepo     *customermocks.CustomerRepository
		employeeRepo     *employeemocks.EmployeeRepository
		customerSessions *sessionmocks.SessionRepository
		employeeSessions *sessionmocks.SessionRepository
	}
	type args struct {
		ctx   context.Context
		token string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.EmployeeCheckResponse
		wantErr  bool
	}{
		{
			name: "success: authenticated",
			fields: fields{
				config:           &config.Config{},
				customerRepo:     customermocks.NewCustomerRepository(t),
				employeeRepo:     employeemocks.NewEmployeeRepository(t),
				customerSessions: sessionmocks.NewSessionRepository(t),
				employeeSessions: sessionmocks.NewSessionRepository(t),
			},
			args: args{ctx: context.Background(), token: "tok-emp"},
			mockCall: func(f fields) {
				f.employeeSessions.On("Get", mock.Anything, "tok-emp").Return(&model.Session{
					Token:    "tok-emp",
					Identity: "admin",
				}, nil).Once()
				f.employeeRepo.On("Get", mock.Anything, "admin").Return(&model.EmployeeEntity{
					Username: "admin",
					Name:     "Administrator",
				}, nil).Once()
			},
			want: &model.EmployeeCheckResponse{Authenticated: true, Username: "admin", Name: "Administrator"},
		},
		{
			name: "success: unknown token is not an error",
			fields: fields{
				config:           &config.Config{},
				customerRepo:     customermocks.NewCustomerRepository(t),
				employeeRepo:     employeemocks.NewEmployeeRepository(t),
				customerSessions: sessionmocks.NewSessionRepository(t),
				employeeSessions: sessionmocks.NewSessionRepository(t),
			},
			args: args{ctx: context.Background(), token: "tok-stale"},
			mockCall: func(f fields) {
				f.employeeSessions.On("Get", mock.Anything, "tok-stale").Return(nil, nil).Once()
			},
			want: &model.EmployeeCheckResponse{Authenticated: false},
		},
		{
			name: "success: empty token is not an error",
			fields: fields{
				config:           &config.Config{},
				customerRepo:     customermocks.NewCustomerRepository(t),
				employeeRepo:     employeemocks.NewEmployeeRepository(t),
				customerSessions: sessionmocks.NewSessionRepository(t),
				employeeSessions: sessionmocks.NewSessionRepository(t),
			},
			args:     args{ctx: context.Background(), token: ""},
			mockCall: nil,
			want:     &model.EmployeeCheckResponse{Authenticated: false},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(tt.fields.config, tt.fields.customerRepo, tt.fields.employeeRepo, tt.fields.customerSessions, tt.fields.employeeSessions)

			got, err := app.CheckEmployee(tt.args.ctx, tt.args.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckEmployee() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got.Authenticated != tt.want.Authenticated || got.Username != tt.want.Username || got.Name != tt.want.Name {
				t.Fatalf("CheckEmployee() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
