package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbmotors/dealership/model"
)

// SessionRepository is the token-keyed login record store. The same
// implementation serves both session tables; only the table and the name of
// the identity column differ (employee_sessions.username,
// customer_sessions.phone). Rows have no TTL and live until explicit logout.
type SessionRepository interface {
	Get(ctx context.Context, token string) (*model.Session, error)
	Insert(ctx context.Context, sess *model.Session) error
	Delete(ctx context.Context, token string) error
}

type SQL struct {
	conn        *sqlx.DB
	table       string
	identityCol string
}

func NewEmployeeSessionRepository(conn *sqlx.DB) SessionRepository {
	return &SQL{conn: conn, table: "employee_sessions", identityCol: "username"}
}

func NewCustomerSessionRepository(conn *sqlx.DB) SessionRepository {
	return &SQL{conn: conn, table: "customer_sessions", identityCol: "phone"}
}

func (s *SQL) Get(ctx context.Context, token string) (*model.Session, error) {
	query := fmt.Sprintf("SELECT token, %s AS identity, login_at FROM %s WHERE token = ?", s.identityCol, s.table)
	var sess model.Session
	if err := s.conn.QueryRowxContext(ctx, query, token).StructScan(&sess); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &sess, nil
}

func (s *SQL) Insert(ctx context.Context, sess *model.Session) error {
	query := fmt.Sprintf("INSERT INTO %s (token, %s, login_at) VALUES (?, ?, ?)", s.table, s.identityCol)
	_, err := s.conn.ExecContext(ctx, query, sess.Token, sess.Identity, sess.LoginAt)
	return err
}

func (s *SQL) Delete(ctx context.Context, token string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE token = ?", s.table)
	_, err := s.conn.ExecContext(ctx, query, token)
	return err
}

