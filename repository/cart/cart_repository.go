package cart

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sbmotors/dealership/model"
)

type SQL struct {
	conn *sqlx.DB
}

// CartRepository stores one row per customer session. Upsert rewrites the
// whole items_json column, so two racing writers keep last-writer-wins
// semantics on the item list.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*model.CartEntity, error)
	Upsert(ctx context.Context, cart *model.CartEntity) error
	Delete(ctx context.Context, sessionID string) error
	List(ctx context.Context) ([]model.CartEntity, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, sessionID string) (*model.CartEntity, error)
	DeleteTx(ctx context.Context, tx *sqlx.Tx, sessionID string) error
	ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, carts []model.CartEntity) error
}

func NewCartRepository(conn *sqlx.DB) CartRepository {
	return &SQL{conn: conn}
}

const (
	getCartQuery    = `SELECT session_id, items_json, updated_at FROM carts WHERE session_id = ?`
	upsertCartQuery = `INSERT INTO carts (session_id, items_json, updated_at) VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE items_json = VALUES(items_json), updated_at = VALUES(updated_at)`
	insertCartQuery = `INSERT INTO carts (session_id, items_json, updated_at) VALUES (?, ?, ?)`
)

func (s *SQL) Get(ctx context.Context, sessionID string) (*model.CartEntity, error) {
	var entity model.CartEntity
	if err := s.conn.QueryRowxContext(ctx, getCartQuery, sessionID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Upsert(ctx context.Context, cart *model.CartEntity) error {
	_, err := s.conn.ExecContext(ctx, upsertCartQuery, cart.SessionID, cart.ItemsJSON, cart.UpdatedAt)
	return err
}

func (s *SQL) Delete(ctx context.Context, sessionID string) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM carts WHERE session_id = ?", sessionID)
	return err
}

func (s *SQL) List(ctx context.Context) ([]model.CartEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, "SELECT session_id, items_json, updated_at FROM carts")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	carts := make([]model.CartEntity, 0)
	for rows.Next() {
		var c model.CartEntity
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		carts = append(carts, c)
	}
	return carts, rows.Err()
}

func (s *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, sessionID string) (*model.CartEntity, error) {
	var entity model.CartEntity
	if err := tx.QueryRowxContext(ctx, getCartQuery, sessionID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, sessionID string) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM carts WHERE session_id = ?", sessionID)
	return err
}

func (s *SQL) ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, carts []model.CartEntity) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM carts"); err != nil {
		return err
	}
	for i := range carts {
		c := carts[i]
		if _, err := tx.ExecContext(ctx, insertCartQuery, c.SessionID, c.ItemsJSON, c.UpdatedAt); err != nil {
			return err
		}
	}
	return nil
}
