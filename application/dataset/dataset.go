package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/sbmotors/dealership/constant"
	"github.com/sbmotors/dealership/model"
	carrepo "github.com/sbmotors/dealership/repository/car"
	cartrepo "github.com/sbmotors/dealership/repository/cart"
	contactrepo "github.com/sbmotors/dealership/repository/contact"
	customerrepo "github.com/sbmotors/dealership/repository/customer"
	employeerepo "github.com/sbmotors/dealership/repository/employee"
	redisrepo "github.com/sbmotors/dealership/repository/redis"
	salerepo "github.com/sbmotors/dealership/repository/sale"
	sellrequestrepo "github.com/sbmotors/dealership/repository/sellrequest"
	servicerepo "github.com/sbmotors/dealership/repository/service"
	txrepo "github.com/sbmotors/dealership/repository/tx"
	"github.com/sbmotors/dealership/utils/errors"
	"github.com/sbmotors/dealership/utils/logger"
)

// timeLayout is the timestamp format used in CSV columns.
const timeLayout = time.RFC3339

// DatasetApp exports and imports whole tables as CSV for backup and
// migration. An import replaces the table's contents atomically; a malformed
// file leaves the table untouched.
type DatasetApp interface {
	Tables() []string
	Export(ctx context.Context, table string, w io.Writer) error
	Import(ctx context.Context, table string, r io.Reader) (int, error)
}

type datasetAppImpl struct {
	txRepo    txrepo.TxRepository
	redisRepo redisrepo.Repository
	tables    map[string]tableCodec
}

// tableCodec binds one table to its CSV layout.
type tableCodec struct {
	header  []string
	export  func(ctx context.Context) ([][]string, error)
	replace func(ctx context.Context, tx *sqlx.Tx, rows [][]string) (int, error)
}

func NewDatasetApp(txRepo txrepo.TxRepository, carRepo carrepo.CarRepository, employeeRepo employeerepo.EmployeeRepository, customerRepo customerrepo.CustomerRepository, saleRepo salerepo.SaleRepository, sellRequestRepo sellrequestrepo.SellRequestRepository, serviceRepo servicerepo.ServiceRepository, contactRepo contactrepo.ContactRepository, cartRepo cartrepo.CartRepository, redisRepo redisrepo.Repository) DatasetApp {
	app := &datasetAppImpl{txRepo: txRepo, redisRepo: redisRepo}
	app.tables = map[string]tableCodec{
		"cars": {
			header: []string{"id", "make", "model", "year", "price", "mileage", "fuel", "transmission", "owner", "type", "image", "description", "status"},
			export: func(ctx context.Context) ([][]string, error) {
				cars, err := carRepo.List(ctx)
				if err != nil {
					return nil, err
				}
				rows := make([][]string, 0, len(cars))
				for _, c := range cars {
					rows = append(rows, []string{
						c.ID, c.Make, c.Model, strconv.Itoa(c.Year),
						strconv.FormatInt(c.Price, 10), strconv.FormatInt(c.Mileage, 10),
						c.Fuel, c.Transmission, c.Owner, c.Type, c.Image, c.Description, c.Status,
					})
				}
				return rows, nil
			},
			replace: func(ctx context.Context, tx *sqlx.Tx, rows [][]string) (int, error) {
				cars := make([]model.Car, 0, len(rows))
				for _, row := range rows {
					year, err := strconv.Atoi(row[3])
					if err != nil {
						return 0, err
					}
					price, err := strconv.ParseInt(row[4], 10, 64)
					if err != nil {
						return 0, err
					}
					mileage, err := strconv.ParseInt(row[5], 10, 64)
					if err != nil {
						return 0, err
					}
					cars = append(cars, model.Car{
						ID: row[0], Make: row[1], Model: row[2], Year: year,
						Price: price, Mileage: mileage, Fuel: row[6], Transmission: row[7],
						Owner: row[8], Type: row[9], Image: row[10], Description: row[11], Status: row[12],
					})
				}
				return len(cars), carRepo.ReplaceAllTx(ctx, tx, cars)
			},
		},
		"employees": {
			header: []string{"username", "password_hash", "name"},
			export: func(ctx context.Context) ([][]string, error) {
				employees, err := employeeRepo.List(ctx)
				if err != nil {
					return nil, err
				}
				rows := make([][]string, 0, len(employees))
				for _, e := range employees {
					rows = append(rows, []string{e.Username, e.PasswordHash, e.Name})
				}
				return rows, nil
			},
			replace: func(ctx context.Context, tx *sqlx.Tx, rows [][]string) (int, error) {
				employees := make([]model.EmployeeEntity, 0, len(rows))
				for _, row := range rows {
					employees = append(employees, model.EmployeeEntity{
						Username: row[0], PasswordHash: row[1], Name: row[2],
					})
				}
				return len(employees), employeeRepo.ReplaceAllTx(ctx, tx, employees)
			},
		},
		"customers": {
			header: []string{"phone", "password_hash", "name", "created_at"},
			export: func(ctx context.Context) ([][]string, error) {
				customers, err := customerRepo.List(ctx)
				if err != nil {
					return nil, err
				}
				rows := make([][]string, 0, len(customers))
				for _, c := range customers {
					rows = append(rows, []string{c.Phone, c.PasswordHash, c.Name, c.CreatedAt.Format(timeLayout)})
				}
				return rows, nil
			},
			replace: func(ctx context.Context, tx *sqlx.Tx, rows [][]string) (int, error) {
				customers := make([]model.CustomerEntity, 0, len(rows))
				for _, row := range rows {
					createdAt, err := time.Parse(timeLayout, row[3])
					if err != nil {
						return 0, err
					}
					customers = append(customers, model.CustomerEntity{
						Phone: row[0], PasswordHash: row[1], Name: row[2], CreatedAt: createdAt,
					})
				}
				return len(customers), customerRepo.ReplaceAllTx(ctx, tx, customers)
			},
		},
		"sales": {
			header: []string{"order_id", "session_id", "car_id", "price", "timestamp"},
			export: func(ctx context.Context) ([][]string, error) {
				sales, err := saleRepo.List(ctx)
				if err != nil {
					return nil, err
				}
				rows := make([][]string, 0, len(sales))
				for _, s := range sales {
					rows = append(rows, []string{
						s.OrderID, s.SessionID, s.CarID,
						strconv.FormatInt(s.Price, 10), s.Timestamp.Format(timeLayout),
					})
				}
				return rows, nil
			},
			replace: func(ctx context.Context, tx *sqlx.Tx, rows [][]string) (int, error) {
				sales := make([]model.SaleEntity, 0, len(rows))
				for _, row := range rows {
					price, err := strconv.ParseInt(row[3], 10, 64)
					if err != nil {
						return 0, err
					}
					ts, err := time.Parse(timeLayout, row[4])
					if err != nil {
						return 0, err
					}
					sales = append(sales, model.SaleEntity{
						OrderID: row[0], SessionID: row[1], CarID: row[2], Price: price, Timestamp: ts,
					})
				}
				return len(sales), saleRepo.ReplaceAllTx(ctx, tx, sales)
			},
		},
		"sell_requests": {
			header: []string{"request_id", "owner_name", "phone", "make", "model", "year", "asking_price", "notes", "status", "timestamp"},
			export: func(ctx context.Context) ([][]string, error) {
				reqs, err := sellRequestRepo.List(ctx)
				if err != nil {
					return nil, err
				}
				rows := make([][]string, 0, len(reqs))
				for _, r := range reqs {
					rows = append(rows, []string{
						r.RequestID, r.OwnerName, r.Phone, r.Make, r.Model,
						strconv.Itoa(r.Year), strconv.FormatInt(r.AskingPrice, 10),
						r.Notes, r.Status, r.Timestamp.Format(timeLayout),
					})
				}
				return rows, nil
			},
			replace: func(ctx context.Context, tx *sqlx.Tx, rows [][]string) (int, error) {
				reqs := make([]model.SellRequestEntity, 0, len(rows))
				for _, row := range rows {
					year, err := strconv.Atoi(row[5])
					if err != nil {
						return 0, err
					}
					askingPrice, err := strconv.ParseInt(row[6], 10, 64)
					if err != nil {
						return 0, err
					}
					ts, err := time.Parse(timeLayout, row[9])
					if err != nil {
						return 0, err
					}
					reqs = append(reqs, model.SellRequestEntity{
						RequestID: row[0], OwnerName: row[1], Phone: row[2], Make: row[3], Model: row[4],
						Year: year, AskingPrice: askingPrice, Notes: row[7], Status: row[8], Timestamp: ts,
					})
				}
				return len(reqs), sellRequestRepo.ReplaceAllTx(ctx, tx, reqs)
			},
		},
		"services": {
			header: []string{"service_id", "owner_name", "phone", "car_id", "service_date", "notes", "status", "timestamp"},
			export: func(ctx context.Context) ([][]string, error) {
				services, err := serviceRepo.List(ctx)
				if err != nil {
					return nil, err
				}
				rows := make([][]string, 0, len(services))
				for _, s := range services {
					rows = append(rows, []string{
						s.ServiceID, s.OwnerName, s.Phone, s.CarID, s.ServiceDate,
						s.Notes, s.Status, s.Timestamp.Format(timeLayout),
					})
				}
				return rows, nil
			},
			replace: func(ctx context.Context, tx *sqlx.Tx, rows [][]string) (int, error) {
				services := make([]model.ServiceEntity, 0, len(rows))
				for _, row := range rows {
					ts, err := time.Parse(timeLayout, row[7])
					if err != nil {
						return 0, err
					}
					services = append(services, model.ServiceEntity{
						ServiceID: row[0], OwnerName: row[1], Phone: row[2], CarID: row[3],
						ServiceDate: row[4], Notes: row[5], Status: row[6], Timestamp: ts,
					})
				}
				return len(services), serviceRepo.ReplaceAllTx(ctx, tx, services)
			},
		},
		"contacts": {
			header: []string{"contact_id", "name", "email", "message", "timestamp"},
			export: func(ctx context.Context) ([][]string, error) {
				contacts, err := contactRepo.List(ctx)
				if err != nil {
					return nil, err
				}
				rows := make([][]string, 0, len(contacts))
				for _, c := range contacts {
					rows = append(rows, []string{c.ContactID, c.Name, c.Email, c.Message, c.Timestamp.Format(timeLayout)})
				}
				return rows, nil
			},
			replace: func(ctx context.Context, tx *sqlx.Tx, rows [][]string) (int, error) {
				contacts := make([]model.ContactEntity, 0, len(rows))
				for _, row := range rows {
					ts, err := time.Parse(timeLayout, row[4])
					if err != nil {
						return 0, err
					}
					contacts = append(contacts, model.ContactEntity{
						ContactID: row[0], Name: row[1], Email: row[2], Message: row[3], Timestamp: ts,
					})
				}
				return len(contacts), contactRepo.ReplaceAllTx(ctx, tx, contacts)
			},
		},
		"carts": {
			header: []string{"session_id", "items_json", "updated_at"},
			export: func(ctx context.Context) ([][]string, error) {
				carts, err := cartRepo.List(ctx)
				if err != nil {
					return nil, err
				}
				rows := make([][]string, 0, len(carts))
				for _, c := range carts {
					rows = append(rows, []string{c.SessionID, c.ItemsJSON, c.UpdatedAt.Format(timeLayout)})
				}
				return rows, nil
			},
			replace: func(ctx context.Context, tx *sqlx.Tx, rows [][]string) (int, error) {
				carts := make([]model.CartEntity, 0, len(rows))
				for _, row := range rows {
					updatedAt, err := time.Parse(timeLayout, row[2])
					if err != nil {
						return 0, err
					}
					carts = append(carts, model.CartEntity{SessionID: row[0], ItemsJSON: row[1], UpdatedAt: updatedAt})
				}
				return len(carts), cartRepo.ReplaceAllTx(ctx, tx, carts)
			},
		},
	}
	return app
}

func (s *datasetAppImpl) Tables() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *datasetAppImpl) Export(ctx context.Context, table string, w io.Writer) error {
	codec, ok := s.tables[table]
	if !ok {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	rows, err := codec.export(ctx)
	if err != nil {
		logger.Error("[Export] read table", zap.String("table", table), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(codec.header); err != nil {
		return errors.SetCustomError(constant.ErrInternal)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		logger.Error("[Export] flush", zap.String("table", table), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// Import parses the CSV, validates the header and row widths, and swaps the
// table contents inside one transaction. It returns the number of imported
// rows.
func (s *datasetAppImpl) Import(ctx context.Context, table string, r io.Reader) (int, error) {
	codec, ok := s.tables[table]
	if !ok {
		return 0, errors.SetCustomError(constant.ErrNotFound)
	}

	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		logger.Info("[Import] malformed csv", zap.String("table", table), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if len(records) == 0 || !headerMatches(records[0], codec.header) {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	rows := records[1:]
	for _, row := range rows {
		if len(row) != len(codec.header) {
			return 0, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Import] begin tx", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	count, err := codec.replace(ctx, tx, rows)
	if err != nil {
		logger.Info("[Import] replace failed", zap.String("table", table), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Import] commit tx", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if table == "cars" {
		if err := s.redisRepo.Delete(ctx, constant.CacheKeyCars); err != nil {
			logger.Warn("[Import] invalidate car cache", zap.String("error", err.Error()))
		}
	}

	logger.Info("[Import] imported", zap.String("table", table), zap.Int("rows", count))
	return count, nil
}

func headerMatches(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
