package car

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbmotors/dealership/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CarRepository interface {
	List(ctx context.Context) ([]model.Car, error)
	Get(ctx context.Context, id string) (*model.Car, error)
	Insert(ctx context.Context, car *model.Car) error
	Update(ctx context.Context, id string, req *model.UpdateCarRequest) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Car, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, car *model.Car) error
	SetStatusTx(ctx context.Context, tx *sqlx.Tx, id, status string) error
	ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, cars []model.Car) error
}

func NewCarRepository(conn *sqlx.DB) CarRepository {
	return &SQL{conn: conn}
}

const (
	carColumns = "id, make, model, year, price, mileage, fuel, transmission, owner, type, image, description, status"

	listCarsBase = "SELECT " + carColumns + " FROM cars"

	getCarQuery = listCarsBase + " WHERE id = ?"

	insertCarQuery = `INSERT INTO cars (` + carColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
)

func (s *SQL) List(ctx context.Context) ([]model.Car, error) {
	rows, err := s.conn.QueryxContext(ctx, listCarsBase+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := make([]model.Car, 0)
	for rows.Next() {
		var c model.Car
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func (s *SQL) Get(ctx context.Context, id string) (*model.Car, error) {
	var c model.Car
	if err := s.conn.QueryRowxContext(ctx, getCarQuery, id).StructScan(&c); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *SQL) Insert(ctx context.Context, car *model.Car) error {
	_, err := s.conn.ExecContext(ctx, insertCarQuery,
		car.ID, car.Make, car.Model, car.Year, car.Price, car.Mileage,
		car.Fuel, car.Transmission, car.Owner, car.Type, car.Image, car.Description, car.Status)
	return err
}

func (s *SQL) Update(ctx context.Context, id string, req *model.UpdateCarRequest) error {
	sets := make([]string, 0, 12)
	args := make([]any, 0, 13)

	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if req.Make != nil {
		add("make", *req.Make)
	}
	if req.Model != nil {
		add("model", *req.Model)
	}
	if req.Year != nil {
		add("year", *req.Year)
	}
	if req.Price != nil {
		add("price", *req.Price)
	}
	if req.Mileage != nil {
		add("mileage", *req.Mileage)
	}
	if req.Fuel != nil {
		add("fuel", *req.Fuel)
	}
	if req.Transmission != nil {
		add("transmission", *req.Transmission)
	}
	if req.Owner != nil {
		add("owner", *req.Owner)
	}
	if req.Type != nil {
		add("type", *req.Type)
	}
	if req.Image != nil {
		add("image", *req.Image)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Status != nil {
		add("status", *req.Status)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE cars SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM cars WHERE id = ?", id)
	return err
}

func (s *SQL) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM cars")
	return total, err
}

func (s *SQL) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM cars WHERE status = ?", status)
	return total, err
}

func (s *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Car, error) {
	var c model.Car
	if err := tx.QueryRowxContext(ctx, getCarQuery, id).StructScan(&c); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, car *model.Car) error {
	_, err := tx.ExecContext(ctx, insertCarQuery,
		car.ID, car.Make, car.Model, car.Year, car.Price, car.Mileage,
		car.Fuel, car.Transmission, car.Owner, car.Type, car.Image, car.Description, car.Status)
	return err
}

func (s *SQL) SetStatusTx(ctx context.Context, tx *sqlx.Tx, id, status string) error {
	_, err := tx.ExecContext(ctx, "UPDATE cars SET status = ? WHERE id = ?", status, id)
	return err
}

// ReplaceAllTx swaps the whole table, used by CSV import.
func (s *SQL) ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, cars []model.Car) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM cars"); err != nil {
		return err
	}
	for i := range cars {
		c := cars[i]
		if _, err := tx.ExecContext(ctx, insertCarQuery,
			c.ID, c.Make, c.Model, c.Year, c.Price, c.Mileage,
			c.Fuel, c.Transmission, c.Owner, c.Type, c.Image, c.Description, c.Status); err != nil {
			return err
		}
	}
	return nil
}
