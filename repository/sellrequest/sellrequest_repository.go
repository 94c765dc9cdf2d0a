package sellrequest

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sbmotors/dealership/model"
)

type SQL struct {
	conn *sqlx.DB
}

type SellRequestRepository interface {
	Insert(ctx context.Context, req *model.SellRequestEntity) error
	Get(ctx context.Context, requestID string) (*model.SellRequestEntity, error)
	List(ctx context.Context) ([]model.SellRequestEntity, error)
	ListByPhone(ctx context.Context, phone string) ([]model.SellRequestEntity, error)
	UpdateStatus(ctx context.Context, requestID, status string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, requestID string) (*model.SellRequestEntity, error)
	SetStatusTx(ctx context.Context, tx *sqlx.Tx, requestID, status string) error
	ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, reqs []model.SellRequestEntity) error
}

func NewSellRequestRepository(conn *sqlx.DB) SellRequestRepository {
	return &SQL{conn: conn}
}

const (
	sellRequestColumns = "request_id, owner_name, phone, make, model, year, asking_price, notes, status, timestamp"
	insertSellRequest  = `INSERT INTO sell_requests (` + sellRequestColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	getSellRequest     = `SELECT ` + sellRequestColumns + ` FROM sell_requests WHERE request_id = ?`
)

func (s *SQL) Insert(ctx context.Context, req *model.SellRequestEntity) error {
	_, err := s.conn.ExecContext(ctx, insertSellRequest,
		req.RequestID, req.OwnerName, req.Phone, req.Make, req.Model, req.Year,
		req.AskingPrice, req.Notes, req.Status, req.Timestamp)
	return err
}

func (s *SQL) Get(ctx context.Context, requestID string) (*model.SellRequestEntity, error) {
	var entity model.SellRequestEntity
	if err := s.conn.QueryRowxContext(ctx, getSellRequest, requestID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.SellRequestEntity, error) {
	return s.scanList(ctx, "SELECT "+sellRequestColumns+" FROM sell_requests ORDER BY timestamp")
}

func (s *SQL) ListByPhone(ctx context.Context, phone string) ([]model.SellRequestEntity, error) {
	return s.scanList(ctx, "SELECT "+sellRequestColumns+" FROM sell_requests WHERE phone = ? ORDER BY timestamp", phone)
}

func (s *SQL) scanList(ctx context.Context, query string, args ...any) ([]model.SellRequestEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := make([]model.SellRequestEntity, 0)
	for rows.Next() {
		var r model.SellRequestEntity
		if err := rows.StructScan(&r); err != nil {
			return nil, err
		}
		reqs = append(reqs, r)
	}
	return reqs, rows.Err()
}

func (s *SQL) UpdateStatus(ctx context.Context, requestID, status string) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE sell_requests SET status = ? WHERE request_id = ?", status, requestID)
	return err
}

func (s *SQL) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM sell_requests WHERE status = ?", status)
	return total, err
}

func (s *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, requestID string) (*model.SellRequestEntity, error) {
	var entity model.SellRequestEntity
	if err := tx.QueryRowxContext(ctx, getSellRequest, requestID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) SetStatusTx(ctx context.Context, tx *sqlx.Tx, requestID, status string) error {
	_, err := tx.ExecContext(ctx, "UPDATE sell_requests SET status = ? WHERE request_id = ?", status, requestID)
	return err
}

func (s *SQL) ReplaceAllTx(ctx context.Context, tx *sqlx.Tx, reqs []model.SellRequestEntity) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM sell_requests"); err != nil {
		return err
	}
	for i := range reqs {
		r := reqs[i]
		if _, err := tx.ExecContext(ctx, insertSellRequest,
			r.RequestID, r.OwnerName, r.Phone, r.Make, r.Model, r.Year,
			r.AskingPrice, r.Notes, r.Status, r.Timestamp); err != nil {
			return err
		}
	}
	return nil
}
