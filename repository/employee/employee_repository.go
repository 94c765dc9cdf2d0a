package employee

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

type EmployeeRepository interface {
	Get(ctx context.Context, username string) (*model.EmployeeEntity, error)
	List(ctx context.Context) ([]model.EmployeeEntity, error)
	Insert(ctx context.Context, emp *model.EmployeeEntity) error
	Update(ctx context.Context, username string, name *string, passwordHash *string) error
	Delete(ctx context.Context, username string) error
	ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, employees []model.EmployeeEntity) error
}

func NewEmployeeRepository(conn *sqlx.DB) EmployeeRepository {
	return &SQL{conn: conn}
}

const (
	getEmployeeQuery    = `SELECT username, password_hash, name FROM employees WHERE username = ?`
	listEmployeesQuery  = `SELECT username, password_hash, name FROM employees ORDER BY username`
	insertEmployeeQuery = `INSERT INTO employees (username, password_hash, name) VALUES (?, ?, ?)`
)

func (s *SQL) Get(ctx context.Context, username string) (*model.EmployeeEntity, error) {
	var entity model.EmployeeEntity
	if err := s.conn.QueryRowxContext(ctx, getEmployeeQuery, username).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.EmployeeEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listEmployeesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]model.EmployeeEntity, 0)
	for rows.Next() {
		var e model.EmployeeEntity
		if err := rows.StructScan(&e); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (s *SQL) Insert(ctx context.Context, emp *model.EmployeeEntity) error {
	_, err := s.conn.ExecContext(ctx, insertEmployeeQuery, emp.Username, emp.PasswordHash, emp.Name)
	return err
}

func (s *SQL) Update(ctx context.Context, username string, name *string, passwordHash *string) error {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)
	if name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *name)
	}
	if passwordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *passwordHash)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, username)
	_, err := s.conn.ExecContext(ctx, "UPDATE employees SET "+strings.Join(sets, ", ")+" WHERE username = ?", args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, username string) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM employees WHERE username = ?", username)
	return err
}

func (s *SQL) ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, employees []model.EmployeeEntity) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM employees"); err != nil {
		return err
	}
	for i := range employees {
		e := employees[i]
		if _, err := tx.ExecContext(ctx, insertEmployeeQuery, e.Username, e.PasswordHash, e.Name); err != nil {
			return err
		}
	}
	return nil
}
