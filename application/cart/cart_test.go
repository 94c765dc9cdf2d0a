package cart_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appcart "github.com/sbmotors/dealership/application/cart"
	"github.com/sbmotors/dealership/constant"
	carmocks "github.com/sbmotors/dealership/mocks/repository/car"
	cartmocks "github.com/sbmotors/dealership/mocks/repository/cart"
	redismocks "github.com/sbmotors/dealership/mocks/repository/redis"
	salemocks "github.com/sbmotors/dealership/mocks/repository/sale"
	txmocks "github.com/sbmotors/dealership/mocks/repository/tx"
	"github.com/sbmotors/dealership/model"
	cerr "github.com/sbmotors/dealership/utils/errors"
	"github.com/stretchr/testify/mock"
)

// Note: cart.go checks if publisher is nil before publishing, so tests can
// pass a nil publisher without panicking.

func TestCartApp_Add(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		cartRepo  *cartmocks.CartRepository
		carRepo   *carmocks.CarRepository
		saleRepo  *salemocks.SaleRepository
		redisRepo *redismocks.Repository
	}
	type args struct {
		ctx       context.Context
		sessionID string
		carID     string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: append to existing cart",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				cartRepo:  cartmocks.NewCartRepository(t),
				carRepo:   carmocks.NewCarRepository(t),
				saleRepo:  salemocks.NewSaleRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background(), sessionID: "sess-1", carID: "car-2"},
			mockCall: func(f fields) {
				f.carRepo.On("Get", mock.Anything, "car-2").Return(&model.Car{ID: "car-2"}, nil).Once()
				f.cartRepo.On("Get", mock.Anything, "sess-1").Return(&model.CartEntity{
					SessionID: "sess-1",
					ItemsJSON: `["car-1"]`,
				}, nil).Once()
				f.cartRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(c *model.CartEntity) bool {
					var items []string
					if err := json.Unmarshal([]byte(c.ItemsJSON), &items); err != nil {
						return false
					}
					return c.SessionID == "sess-1" && len(items) == 2 && items[0] == "car-1" && items[1] == "car-2"
				})).Return(nil).Once()
			},
			want: 2,
		},
		{
			name: "success: duplicate adds are kept",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				cartRepo:  cartmocks.NewCartRepository(t),
				carRepo:   carmocks.NewCarRepository(t),
				saleRepo:  salemocks.NewSaleRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background(), sessionID: "sess-1", carID: "car-1"},
			mockCall: func(f fields) {
				f.carRepo.On("Get", mock.Anything, "car-1").Return(&model.Car{ID: "car-1"}, nil).Once()
				f.cartRepo.On("Get", mock.Anything, "sess-1").Return(&model.CartEntity{
					SessionID: "sess-1",
					ItemsJSON: `["car-1"]`,
				}, nil).Once()
				f.cartRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(c *model.CartEntity) bool {
					var items []string
					if err := json.Unmarshal([]byte(c.ItemsJSON), &items); err != nil {
						return false
					}
					return len(items) == 2 && items[0] == "car-1" && items[1] == "car-1"
				})).Return(nil).Once()
			},
			want: 2,
		},
		{
			name: "error: car not found",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				cartRepo:  cartmocks.NewCartRepository(t),
				carRepo:   carmocks.NewCarRepository(t),
				saleRepo:  salemocks.NewSaleRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background(), sessionID: "sess-1", carID: "car-404"},
			mockCall: func(f fields) {
				f.carRepo.On("Get", mock.Anything, "car-404").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcart.NewCartApp(tt.fields.txRepo, tt.fields.cartRepo, tt.fields.carRepo, tt.fields.saleRepo, tt.fields.redisRepo, nil)

			got, err := app.Add(tt.args.ctx, tt.args.sessionID, tt.args.carID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Add() error = %v, wantErr %v", err, tt.wantErr)
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

			if got != tt.want {
				t.Fatalf("Add() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCartApp_Remove(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		cartRepo  *cartmocks.CartRepository
		carRepo   *carmocks.CarRepository
		saleRepo  *salemocks.SaleRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		carID    string
		mockCall func(f fields)
		want     int
	}{
		{
			name: "removes one occurrence, keeps the duplicate",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				cartRepo:  cartmocks.NewCartRepository(t),
				carRepo:   carmocks.NewCarRepository(t),
				saleRepo:  salemocks.NewSaleRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			carID: "car-1",
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "sess-1").Return(&model.CartEntity{
					SessionID: "sess-1",
					ItemsJSON: `["car-1","car-1","car-2"]`,
				}, nil).Once()
				f.cartRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(c *model.CartEntity) bool {
					var items []string
					if err := json.Unmarshal([]byte(c.ItemsJSON), &items); err != nil {
						return false
					}
					return len(items) == 2 && items[0] == "car-1" && items[1] == "car-2"
				})).Return(nil).Once()
			},
			want: 2,
		},
		{
			name: "absent id leaves the cart unchanged",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				cartRepo:  cartmocks.NewCartRepository(t),
				carRepo:   carmocks.NewCarRepository(t),
				saleRepo:  salemocks.NewSaleRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			carID: "car-404",
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "sess-1").Return(&model.CartEntity{
					SessionID: "sess-1",
					ItemsJSON: `["car-1"]`,
				}, nil).Once()
				f.cartRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(c *model.CartEntity) bool {
					var items []string
					if err := json.Unmarshal([]byte(c.ItemsJSON), &items); err != nil {
						return false
					}
					return len(items) == 1 && items[0] == "car-1"
				})).Return(nil).Once()
			},
			want: 1,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.mockCall(tt.fields)
			app := appcart.NewCartApp(tt.fields.txRepo, tt.fields.cartRepo, tt.fields.carRepo, tt.fields.saleRepo, tt.fields.redisRepo, nil)

			got, err := app.Remove(context.Background(), "sess-1", tt.carID)
			if err != nil {
				t.Fatalf("Remove() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Remove() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCartApp_Checkout(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		cartRepo  *cartmocks.CartRepository
		carRepo   *carmocks.CarRepository
		saleRepo  *salemocks.SaleRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name       string
		fields     fields
		mockCall   func(f fields)
		wantOrders int
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: entries with a deleted car are skipped",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				cartRepo:  cartmocks.NewCartRepository(t),
				carRepo:   carmocks.NewCarRepository(t),
				saleRepo:  salemocks.NewSaleRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.cartRepo.On("GetTx", mock.Anything, tx, "sess-1").Return(&model.CartEntity{
					SessionID: "sess-1",
					ItemsJSON: `["car-1","car-gone"]`,
				}, nil).Once()

				f.carRepo.On("GetTx", mock.Anything, tx, "car-1").Return(&model.Car{
					ID:    "car-1",
					Price: 550000,
				}, nil).Once()
				f.carRepo.On("GetTx", mock.Anything, tx, "car-gone").Return(nil, nil).Once()

				f.saleRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(s *model.SaleEntity) bool {
					return s.SessionID == "sess-1" && s.CarID == "car-1" && s.Price == 550000 && s.OrderID != ""
				})).Return(nil).Once()
				f.carRepo.On("SetStatusTx", mock.Anything, tx, "car-1", constant.CarStatusSold).Return(nil).Once()

				f.cartRepo.On("DeleteTx", mock.Anything, tx, "sess-1").Return(nil).Once()
				f.redisRepo.On("Delete", mock.Anything, constant.CacheKeyCars).Return(nil).Once()
			},
			wantOrders: 1,
		},
		{
			name: "error: empty cart",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				cartRepo:  cartmocks.NewCartRepository(t),
				carRepo:   carmocks.NewCarRepository(t),
				saleRepo:  salemocks.NewSaleRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.cartRepo.On("GetTx", mock.Anything, tx, "sess-1").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrEmptyCart,
		},
		{
			name: "error: BeginTx returns error",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				cartRepo:  cartmocks.NewCartRepository(t),
				carRepo:   carmocks.NewCarRepository(t),
				saleRepo:  salemocks.NewSaleRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: InsertTx returns error",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				cartRepo:  cartmocks.NewCartRepository(t),
				carRepo:   carmocks.NewCarRepository(t),
				saleRepo:  salemocks.NewSaleRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.cartRepo.On("GetTx", mock.Anything, tx, "sess-1").Return(&model.CartEntity{
					SessionID: "sess-1",
					ItemsJSON: `["car-1"]`,
				}, nil).Once()
				f.carRepo.On("GetTx", mock.Anything, tx, "car-1").Return(&model.Car{ID: "car-1", Price: 550000}, nil).Once()
				f.saleRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(errors.New("db error")).Once()
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
			app := appcart.NewCartApp(tt.fields.txRepo, tt.fields.cartRepo, tt.fields.carRepo, tt.fields.saleRepo, tt.fields.redisRepo, nil)

			got, err := app.Checkout(context.Background(), "sess-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Checkout() error = %v, wantErr %v", err, tt.wantErr)
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

			if len(got.Orders) != tt.wantOrders {
				t.Fatalf("Checkout() orders = %d, want %d", len(got.Orders), tt.wantOrders)
			}
		})
	}
}

// memCartRepo is a mutex-protected in-memory cart store for the concurrency
// test below.
type memCartRepo struct {
	mu    sync.Mutex
	carts map[string]model.CartEntity
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: make(map[string]model.CartEntity)}
}

func (r *memCartRepo) Get(_ context.Context, sessionID string) (*model.CartEntity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[sessionID]
	if !ok {
		return nil, nil
	}
	return &cart, nil
}

func (r *memCartRepo) Upsert(_ context.Context, cart *model.CartEntity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.SessionID] = *cart
	return nil
}

func (r *memCartRepo) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}

func (r *memCartRepo) List(context.Context) ([]model.CartEntity, error) { return nil, nil }

func (r *memCartRepo) GetTx(ctx context.Context, _ *sqlx.Tx, sessionID string) (*model.CartEntity, error) {
	return r.Get(ctx, sessionID)
}

func (r *memCartRepo) DeleteTx(ctx context.Context, _ *sqlx.Tx, sessionID string) error {
	return r.Delete(ctx, sessionID)
}

func (r *memCartRepo) ReplaceAllTx(context.Context, *sqlx.Tx, []model.CartEntity) error { return nil }

// staticCarRepo answers every Get with the same available car.
type staticCarRepo struct {
	car model.Car
}

func (r *staticCarRepo) List(context.Context) ([]model.Car, error) {
	return []model.Car{r.car}, nil
}
func (r *staticCarRepo) Get(context.Context, string) (*model.Car, error) {
	car := r.car
	return &car, nil
}
func (r *staticCarRepo) Insert(context.Context, *model.Car) error                   { return nil }
func (r *staticCarRepo) Update(context.Context, string, *model.UpdateCarRequest) error { return nil }
func (r *staticCarRepo) Delete(context.Context, string) error                       { return nil }
func (r *staticCarRepo) Count(context.Context) (int64, error)                       { return 1, nil }
func (r *staticCarRepo) CountByStatus(context.Context, string) (int64, error)       { return 1, nil }
func (r *staticCarRepo) GetTx(ctx context.Context, _ *sqlx.Tx, id string) (*model.Car, error) {
	return r.Get(ctx, id)
}
func (r *staticCarRepo) InsertTx(context.Context, *sqlx.Tx, *model.Car) error       { return nil }
func (r *staticCarRepo) SetStatusTx(context.Context, *sqlx.Tx, string, string) error { return nil }
func (r *staticCarRepo) ReplaceAllTx(context.Context, *sqlx.Tx, []model.Car) error  { return nil }

// Concurrent adds to the same session race on the read-modify-write of the
// items column; one write may overwrite the other, but the stored cart must
// stay a valid list holding one or two entries.
func TestCartApp_ConcurrentAdd(t *testing.T) {
	cartRepo := newMemCartRepo()
	carRepo := &staticCarRepo{car: model.Car{ID: "car-1", Price: 550000, Status: constant.CarStatusAvailable}}
	app := appcart.NewCartApp(nil, cartRepo, carRepo, nil, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := app.Add(context.Background(), "sess-1", "car-1"); err != nil {
				t.Errorf("Add() error = %v", err)
			}
		}()
	}
	wg.Wait()

	cart, err := cartRepo.Get(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if cart == nil {
		t.Fatal("cart row should exist after concurrent adds")
	}
	var items []string
	if err := json.Unmarshal([]byte(cart.ItemsJSON), &items); err != nil {
		t.Fatalf("cart payload is not valid JSON: %v", err)
	}
	if len(items) < 1 || len(items) > 2 {
		t.Fatalf("cart has %d items, want 1 or 2", len(items))
	}
	for _, id := range items {
		if id != "car-1" {
			t.Fatalf("unexpected item %q", id)
		}
	}
	if cart.UpdatedAt.After(time.Now()) {
		t.Fatal("cart UpdatedAt is in the future")
	}
}
