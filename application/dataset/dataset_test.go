package dataset_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	appdataset "github.com/sbmotors/dealership/application/dataset"
	"github.com/sbmotors/dealership/constant"
	carmocks "github.com/sbmotors/dealership/mocks/repository/car"
	cartmocks "github.com/sbmotors/dealership/mocks/repository/cart"
	contactmocks "github.com/sbmotors/dealership/mocks/repository/contact"
	customermocks "github.com/sbmotors/dealership/mocks/repository/customer"
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

type datasetFields struct {
	txRepo          *txmocks.TxRepository
	carRepo         *carmocks.CarRepository
	employeeRepo    *employeemocks.EmployeeRepository
	customerRepo    *customermocks.CustomerRepository
	saleRepo        *salemocks.SaleRepository
	sellRequestRepo *sellrequestmocks.SellRequestRepository
	serviceRepo     *servicemocks.ServiceRepository
	contactRepo     *contactmocks.ContactRepository
	cartRepo        *cartmocks.CartRepository
	redisRepo       *redismocks.Repository
}

func newDatasetFields(t *testing.T) datasetFields {
	return datasetFields{
		txRepo:          txmocks.NewTxRepository(t),
		carRepo:         carmocks.NewCarRepository(t),
		employeeRepo:    employeemocks.NewEmployeeRepository(t),
		customerRepo:    customermocks.NewCustomerRepository(t),
		saleRepo:        salemocks.NewSaleRepository(t),
		sellRequestRepo: sellrequestmocks.NewSellRequestRepository(t),
		serviceRepo:     servicemocks.NewServiceRepository(t),
		contactRepo:     contactmocks.NewContactRepository(t),
		cartRepo:        cartmocks.NewCartRepository(t),
		redisRepo:       redismocks.NewRepository(t),
	}
}

func newDatasetApp(f datasetFields) appdataset.DatasetApp {
	return appdataset.NewDatasetApp(f.txRepo, f.carRepo, f.employeeRepo, f.customerRepo, f.saleRepo, f.sellRequestRepo, f.serviceRepo, f.contactRepo, f.cartRepo, f.redisRepo)
}

const carsHeader = "id,make,model,year,price,mileage,fuel,transmission,owner,type,image,description,status"

func TestDatasetApp_Tables(t *testing.T) {
	app := newDatasetApp(newDatasetFields(t))
	tables := app.Tables()
	if len(tables) != 8 {
		t.Fatalf("Tables() = %d entries, want 8", len(tables))
	}
	for i := 1; i < len(tables); i++ {
		if tables[i-1] >= tables[i] {
			t.Fatalf("Tables() not sorted: %v", tables)
		}
	}
}

func TestDatasetApp_Export(t *testing.T) {
	t.Run("success: cars table", func(t *testing.T) {
		f := newDatasetFields(t)
		f.carRepo.On("List", mock.Anything).Return([]model.Car{
			{
				ID: "car-1", Make: "Maruti Suzuki", Model: "Swift", Year: 2020,
				Price: 550000, Mileage: 30000, Fuel: "Petrol", Transmission: "Manual",
				Owner: "1st Owner", Type: "hatchback", Status: constant.CarStatusAvailable,
			},
		}, nil).Once()

		var buf bytes.Buffer
		if err := newDatasetApp(f).Export(context.Background(), "cars", &buf); err != nil {
			t.Fatalf("Export() error = %v", err)
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 2 {
			t.Fatalf("Export() wrote %d lines, want 2", len(lines))
		}
		if lines[0] != carsHeader {
			t.Fatalf("header = %q, want %q", lines[0], carsHeader)
		}
		if !strings.HasPrefix(lines[1], "car-1,Maruti Suzuki,Swift,2020,550000,30000") {
			t.Fatalf("row = %q", lines[1])
		}
	})

	t.Run("error: unknown table", func(t *testing.T) {
		f := newDatasetFields(t)
		var buf bytes.Buffer
		err := newDatasetApp(f).Export(context.Background(), "nope", &buf)
		assertDatasetErr(t, err, constant.ErrNotFound)
	})
}

func TestDatasetApp_Import(t *testing.T) {
	validCSV := carsHeader + "\n" +
		"car-1,Maruti Suzuki,Swift,2020,550000,30000,Petrol,Manual,1st Owner,hatchback,,,available\n"

	t.Run("success: replaces the table and drops the car cache", func(t *testing.T) {
		f := newDatasetFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.carRepo.On("ReplaceAllTx", mock.Anything, tx, mock.MatchedBy(func(cars []model.Car) bool {
			return len(cars) == 1 && cars[0].ID == "car-1" && cars[0].Price == 550000 && cars[0].Year == 2020
		})).Return(nil).Once()
		f.redisRepo.On("Delete", mock.Anything, constant.CacheKeyCars).Return(nil).Once()

		count, err := newDatasetApp(f).Import(context.Background(), "cars", strings.NewReader(validCSV))
		if err != nil {
			t.Fatalf("Import() error = %v", err)
		}
		if count != 1 {
			t.Fatalf("Import() = %d rows, want 1", count)
		}
	})

	t.Run("error: wrong header", func(t *testing.T) {
		f := newDatasetFields(t)
		csv := "id,make\ncar-1,Maruti Suzuki\n"
		_, err := newDatasetApp(f).Import(context.Background(), "cars", strings.NewReader(csv))
		assertDatasetErr(t, err, constant.ErrInvalidRequest)
	})

	t.Run("error: malformed csv", func(t *testing.T) {
		f := newDatasetFields(t)
		csv := carsHeader + "\n\"unterminated\n"
		_, err := newDatasetApp(f).Import(context.Background(), "cars", strings.NewReader(csv))
		assertDatasetErr(t, err, constant.ErrInvalidRequest)
	})

	t.Run("error: non-numeric price rolls back", func(t *testing.T) {
		f := newDatasetFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		csv := carsHeader + "\n" +
			"car-1,Maruti Suzuki,Swift,2020,not-a-number,30000,Petrol,Manual,1st Owner,hatchback,,,available\n"
		_, err := newDatasetApp(f).Import(context.Background(), "cars", strings.NewReader(csv))
		assertDatasetErr(t, err, constant.ErrInvalidRequest)
	})

	t.Run("error: unknown table", func(t *testing.T) {
		f := newDatasetFields(t)
		_, err := newDatasetApp(f).Import(context.Background(), "nope", strings.NewReader(validCSV))
		assertDatasetErr(t, err, constant.ErrNotFound)
	})
}

func assertDatasetErr(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}
