package customer

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sbmotors/dealership/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CustomerRepository interface {
	Get(ctx context.Context, phone string) (*model.CustomerEntity, error)
	Insert(ctx context.Context, cust *model.CustomerEntity) error
	List(ctx context.Context) ([]model.CustomerEntity, error)
	ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, customers []model.CustomerEntity) error
}

func NewCustomerRepository(conn *sqlx.DB) CustomerRepository {
	return &SQL{conn: conn}
}

const (
	getCustomerQuery    = `SELECT phone, password_hash, name, created_at FROM customers WHERE phone = ?`
	insertCustomerQuery = `INSERT INTO customers (phone, password_hash, name, created_at) VALUES (?, ?, ?, ?)`
	listCustomersQuery  = `SELECT phone, password_hash, name, created_at FROM customers ORDER BY created_at`
)

func (s *SQL) Get(ctx context.Context, phone string) (*model.CustomerEntity, error) {
	var entity model.CustomerEntity
	if err := s.conn.QueryRowxContext(ctx, getCustomerQuery, phone).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Insert(ctx context.Context, cust *model.CustomerEntity) error {
	_, err := s.conn.ExecContext(ctx, insertCustomerQuery, cust.Phone, cust.PasswordHash, cust.Name, cust.CreatedAt)
	return err
}

func (s *SQL) List(ctx context.Context) ([]model.CustomerEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listCustomersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]model.CustomerEntity, 0)
	for rows.Next() {
		var c model.CustomerEntity
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (s *SQL) ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, customers []model.CustomerEntity) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM customers"); err != nil {
		return err
	}
	for i := range customers {
		c := customers[i]
		if _, err := tx.ExecContext(ctx, insertCustomerQuery, c.Phone, c.PasswordHash, c.Name, c.CreatedAt); err != nil {
			return err
		}
	}
	return nil
}
